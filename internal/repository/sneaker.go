package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

func sneakerMapper() Mapper[model.Sneaker] {
	return Mapper[model.Sneaker]{
		Table:    "sneakers",
		IDColumn: "id",
		Columns:  []string{"id", "name", "brand", "price", "size_us", "year", "rate", "creation_date", "user_id"},
		Writable: []string{"name", "brand", "price", "size_us", "year", "rate", "user_id"},
		ID:       func(s *model.Sneaker) int { return s.ID },
		WriteArgs: func(s *model.Sneaker) []any {
			return []any{s.Name, s.Brand, s.Price, s.SizeUS, s.Year, s.Rate, s.UserID}
		},
		Scan: func(rs RowScanner) (*model.Sneaker, error) {
			s := &model.Sneaker{}
			err := rs.Scan(&s.ID, &s.Name, &s.Brand, &s.Price, &s.SizeUS,
				&s.Year, &s.Rate, &s.CreationDate, &s.UserID)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}

// SneakerRepository handles sneaker persistence operations.
type SneakerRepository struct {
	*Generic[model.Sneaker]
	m Mapper[model.Sneaker]
}

// NewSneakerRepository creates a new SneakerRepository.
func NewSneakerRepository(db *sql.DB) *SneakerRepository {
	m := sneakerMapper()
	return &SneakerRepository{Generic: NewGeneric(db, m), m: m}
}

// GetByUserID retrieves all sneakers owned by the given user.
func (r *SneakerRepository) GetByUserID(ctx context.Context, userID int) ([]model.Sneaker, error) {
	query := "SELECT " + strings.Join(r.m.Columns, ", ") + " FROM sneakers WHERE user_id = ?"
	return r.Query(ctx, query, userID)
}

// GetByUserEmail retrieves all sneakers owned by the user with the given
// email, joining through the users table.
func (r *SneakerRepository) GetByUserEmail(ctx context.Context, email string) ([]model.Sneaker, error) {
	cols := make([]string, len(r.m.Columns))
	for i, c := range r.m.Columns {
		cols[i] = "s." + c
	}
	query := "SELECT " + strings.Join(cols, ", ") +
		" FROM sneakers s JOIN users u ON s.user_id = u.id WHERE u.email = ?"
	return r.Query(ctx, query, email)
}
