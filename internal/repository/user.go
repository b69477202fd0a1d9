package repository

import (
	"context"
	"database/sql"

	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

func userMapper() Mapper[model.User] {
	return Mapper[model.User]{
		Table:    "users",
		IDColumn: "id",
		Columns:  []string{"id", "email", "password", "creation_date"},
		Writable: []string{"email", "password"},
		ID:       func(u *model.User) int { return u.ID },
		WriteArgs: func(u *model.User) []any {
			return []any{u.Email, u.Password}
		},
		Scan: func(s RowScanner) (*model.User, error) {
			u := &model.User{}
			if err := s.Scan(&u.ID, &u.Email, &u.Password, &u.CreationDate); err != nil {
				return nil, err
			}
			return u, nil
		},
	}
}

// UserRepository handles user persistence operations.
type UserRepository struct {
	*Generic[model.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{Generic: NewGeneric(db, userMapper())}
}

// GetByEmail retrieves a user by their email address, or ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FindOne(ctx, "email = ?", email)
}
