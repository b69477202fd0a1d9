package model

import "time"

// DefaultUserSort is the column users are ordered by when no sortBy is given.
const DefaultUserSort = "email"

// User represents a user row in the users table.
//
// Password is stored and compared as a plain string. This mirrors the
// documented simplification of the system; a real deployment would hash.
type User struct {
	ID           int
	Email        string
	Password     string
	CreationDate time.Time
}

// UserLoginDTO is the payload for authentication and user creation.
type UserLoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateDTO is the payload for PATCH /api/User. All non-key columns are
// replaced with the values given here.
type UserUpdateDTO struct {
	ID       int    `json:"id"       validate:"required,gt=0"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password"`
}

// UserDTO is the user shape returned by the API.
type UserDTO struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	CreationDate time.Time `json:"creationDate"`
}
