package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUserReference  = errors.New("referenced user does not exist")
)

// RowScanner is satisfied by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapper is the static column map for an entity table. It replaces runtime
// reflection over entity fields: the table name, column lists and scan
// function are written out once per entity and checked at compile time.
//
// Writable must exclude the id and creation_date columns — both are
// server-assigned and never client-writable.
type Mapper[T any] struct {
	Table    string
	IDColumn string
	Columns  []string // full select list, id first
	Writable []string // insert/update columns

	ID        func(*T) int
	WriteArgs func(*T) []any // values in Writable order
	Scan      func(RowScanner) (*T, error)
}

// Generic provides CRUD and paginated listing for any entity sharing the
// {id, creation_date} shape. All statements are assembled once from the
// mapper's column lists; only the ORDER BY column varies per call, and it is
// always resolved against the mapper's allow-list before interpolation.
type Generic[T any] struct {
	db *sql.DB
	m  Mapper[T]

	insertStmt string
	selectStmt string
	updateStmt string
	deleteStmt string
}

func NewGeneric[T any](db *sql.DB, m Mapper[T]) *Generic[T] {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(m.Writable)), ", ")
	sets := make([]string, len(m.Writable))
	for i, c := range m.Writable {
		sets[i] = c + " = ?"
	}

	return &Generic[T]{
		db: db,
		m:  m,
		insertStmt: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			m.Table, strings.Join(m.Writable, ", "), placeholders),
		selectStmt: fmt.Sprintf("SELECT %s FROM %s", strings.Join(m.Columns, ", "), m.Table),
		updateStmt: fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
			m.Table, strings.Join(sets, ", "), m.IDColumn),
		deleteStmt: fmt.Sprintf("DELETE FROM %s WHERE %s = ?", m.Table, m.IDColumn),
	}
}

// Add inserts a row from the entity's writable columns and returns the stored
// row, including the server-generated id and creation timestamp.
func (g *Generic[T]) Add(ctx context.Context, entity *T) (*T, error) {
	res, err := g.db.ExecContext(ctx, g.insertStmt, g.m.WriteArgs(entity)...)
	if err != nil {
		return nil, translateError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return g.GetByID(ctx, int(id))
}

// GetByID returns the matching row or ErrNotFound.
func (g *Generic[T]) GetByID(ctx context.Context, id int) (*T, error) {
	return g.FindOne(ctx, g.m.IDColumn+" = ?", id)
}

// GetPage returns up to PageSize rows ordered by the resolved sort column.
// An unknown SortBy silently falls back to the id column; that is documented
// policy, not an error surfaced to the caller.
func (g *Generic[T]) GetPage(ctx context.Context, q model.PageQuery) ([]T, error) {
	direction := "ASC"
	if q.Descending {
		direction = "DESC"
	}
	offset := (q.Page - 1) * q.PageSize

	query := fmt.Sprintf("%s ORDER BY %s %s LIMIT ? OFFSET ?",
		g.selectStmt, g.resolveSortColumn(q.SortBy), direction)

	return g.Query(ctx, query, q.PageSize, offset)
}

// Update replaces all writable columns of the row matching the entity's id.
// Zero matched rows means the id does not exist and yields ErrNotFound.
// The updated row is re-read and returned.
func (g *Generic[T]) Update(ctx context.Context, entity *T) (*T, error) {
	args := append(g.m.WriteArgs(entity), g.m.ID(entity))
	res, err := g.db.ExecContext(ctx, g.updateStmt, args...)
	if err != nil {
		return nil, translateError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return g.GetByID(ctx, g.m.ID(entity))
}

// Delete removes the row by id. Deleting an id that does not exist is not an
// error; delete is idempotent.
func (g *Generic[T]) Delete(ctx context.Context, id int) error {
	_, err := g.db.ExecContext(ctx, g.deleteStmt, id)
	return err
}

// FindOne runs the mapper's select list with the given WHERE condition and
// scans a single row. Specialized natural-key lookups layer on this so the
// row-to-entity mapping is never duplicated.
func (g *Generic[T]) FindOne(ctx context.Context, condition string, args ...any) (*T, error) {
	row := g.db.QueryRowContext(ctx, g.selectStmt+" WHERE "+condition, args...)
	entity, err := g.m.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entity, nil
}

// Query executes a full SELECT statement whose column list matches the
// mapper's and scans every row. An empty result is an empty slice, not an
// error.
func (g *Generic[T]) Query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		entity, err := g.m.Scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *entity)
	}

	return out, rows.Err()
}

// resolveSortColumn matches sortBy against the mapper's column set, ignoring
// case and underscores so that both "sizeUS" and "size_us" resolve to the
// same column. Anything unknown falls back to the id column.
func (g *Generic[T]) resolveSortColumn(sortBy string) string {
	want := normalizeColumn(sortBy)
	for _, c := range g.m.Columns {
		if normalizeColumn(c) == want {
			return c
		}
	}
	return g.m.IDColumn
}

func normalizeColumn(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// translateError maps MySQL constraint violations onto sentinel errors.
// 1062 is a duplicate key, 1452 a failed foreign-key reference.
func translateError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062:
			return ErrDuplicateEmail
		case 1452:
			return ErrUserReference
		}
	}
	return err
}
