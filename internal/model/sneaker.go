package model

import "time"

// DefaultSneakerSort is the column sneakers are ordered by when no sortBy is given.
const DefaultSneakerSort = "year"

// Sneaker represents a sneaker row in the sneakers table. Every sneaker
// belongs to exactly one user; the foreign key is enforced by the schema.
type Sneaker struct {
	ID           int
	Name         string
	Brand        string
	Price        float64
	SizeUS       float32
	Year         int
	Rate         int
	CreationDate time.Time
	UserID       int
}

// SneakerCreateDTO is the payload for POST /api/Sneaker.
// Rate is optional; zero means unrated.
type SneakerCreateDTO struct {
	Name   string  `json:"name"   validate:"required"`
	Brand  string  `json:"brand"  validate:"required"`
	Price  float64 `json:"price"  validate:"gte=0"`
	SizeUS float32 `json:"sizeUS" validate:"required,gt=0"`
	Year   int     `json:"year"   validate:"required,min=1,max=9999"`
	Rate   int     `json:"rate"   validate:"omitempty,min=1,max=5"`
	UserID int     `json:"userId" validate:"required,gt=0"`
}

// SneakerUpdateDTO is the payload for PATCH /api/Sneaker. Despite the PATCH
// verb, all non-key columns are replaced with the values given here.
type SneakerUpdateDTO struct {
	ID     int     `json:"id"     validate:"required,gt=0"`
	Name   string  `json:"name"   validate:"required"`
	Brand  string  `json:"brand"  validate:"required"`
	Price  float64 `json:"price"  validate:"gte=0"`
	SizeUS float32 `json:"sizeUS" validate:"required,gt=0"`
	Year   int     `json:"year"   validate:"required,min=1,max=9999"`
	Rate   int     `json:"rate"   validate:"omitempty,min=1,max=5"`
	UserID int     `json:"userId" validate:"required,gt=0"`
}

// SneakerDTO is the sneaker shape returned by the API.
type SneakerDTO struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Price        float64   `json:"price"`
	SizeUS       float32   `json:"sizeUS"`
	Year         int       `json:"year"`
	Rate         int       `json:"rate"`
	CreationDate time.Time `json:"creationDate"`
	UserID       int       `json:"userId"`
}
