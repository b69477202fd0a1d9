package model

import (
	"net/url"
	"strconv"
)

// Pagination defaults applied when the query string omits or mangles a value.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageQuery captures pagination and sorting parameters for listing endpoints.
// SortBy is resolved against the target entity's column set by the
// repository; an unknown column silently falls back to the id column.
type PageQuery struct {
	Page       int
	PageSize   int
	SortBy     string
	Descending bool
}

// ParsePageQuery reads page, pageSize, sortBy and descending from a query
// string. Missing or non-positive numeric values fall back to the defaults;
// descending defaults to true.
func ParsePageQuery(values url.Values, defaultSort string) PageQuery {
	q := PageQuery{
		Page:       DefaultPage,
		PageSize:   DefaultPageSize,
		SortBy:     defaultSort,
		Descending: true,
	}

	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.Page = n
		}
	}
	if v := values.Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.PageSize = n
		}
	}
	if v := values.Get("sortBy"); v != "" {
		q.SortBy = v
	}
	if v := values.Get("descending"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			q.Descending = b
		}
	}

	return q
}
