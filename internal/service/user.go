package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sneakercollection/sneakercollection-go/internal/model"
	"github.com/sneakercollection/sneakercollection-go/internal/repository"
)

// UserRepository is the persistence seam the user service depends on.
type UserRepository interface {
	Add(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetPage(ctx context.Context, q model.PageQuery) ([]model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Delete(ctx context.Context, id int) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// UserService wraps the user repository with the business-visible error
// contract: empty reads become NotFoundError, everything else unexpected
// becomes CommonError. DTO conversion happens at this boundary.
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Add creates a new user from the login-shaped DTO.
func (s *UserService) Add(ctx context.Context, dto model.UserLoginDTO) (model.UserDTO, error) {
	user := &model.User{
		Email:    dto.Email,
		Password: dto.Password,
	}

	added, err := s.repo.Add(ctx, user)
	if err != nil {
		return model.UserDTO{}, &CommonError{Message: err.Error()}
	}

	return userToDTO(added), nil
}

// Get returns a page of users, or NotFoundError when the page is empty.
func (s *UserService) Get(ctx context.Context, q model.PageQuery) ([]model.UserDTO, error) {
	users, err := s.repo.GetPage(ctx, q)
	if err != nil {
		return nil, &CommonError{Message: err.Error()}
	}
	if len(users) == 0 {
		return nil, &NotFoundError{Message: "No Users were found"}
	}

	dtos := make([]model.UserDTO, len(users))
	for i := range users {
		dtos[i] = userToDTO(&users[i])
	}
	return dtos, nil
}

// GetByID returns the user with the given id, or NotFoundError.
func (s *UserService) GetByID(ctx context.Context, id int) (model.UserDTO, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserDTO{}, &NotFoundError{Message: fmt.Sprintf("User with Id: '%d' was not found", id)}
		}
		return model.UserDTO{}, &CommonError{Message: err.Error()}
	}
	return userToDTO(user), nil
}

// GetByEmail returns the user with the given email, or NotFoundError.
func (s *UserService) GetByEmail(ctx context.Context, email string) (model.UserDTO, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserDTO{}, &NotFoundError{Message: fmt.Sprintf("User with Email: '%s' was not found", email)}
		}
		return model.UserDTO{}, &CommonError{Message: err.Error()}
	}
	return userToDTO(user), nil
}

// Update replaces all non-key columns of the user identified by dto.ID.
// Existence is confirmed with a read before the write; the two steps are not
// atomic, so concurrent updates of the same row can lose one of the writes.
func (s *UserService) Update(ctx context.Context, dto model.UserUpdateDTO) (model.UserDTO, error) {
	if _, err := s.repo.GetByID(ctx, dto.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserDTO{}, &NotFoundError{Message: fmt.Sprintf("User with Id: '%d' was not found", dto.ID)}
		}
		return model.UserDTO{}, &CommonError{Message: err.Error()}
	}

	updated, err := s.repo.Update(ctx, &model.User{
		ID:       dto.ID,
		Email:    dto.Email,
		Password: dto.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserDTO{}, &NotFoundError{Message: fmt.Sprintf("User with Id: '%d' was not found", dto.ID)}
		}
		return model.UserDTO{}, &CommonError{Message: err.Error()}
	}

	return userToDTO(updated), nil
}

// Delete removes the user by id. Deleting an id that does not exist is not an
// error.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &CommonError{Message: err.Error()}
	}
	return nil
}

func userToDTO(u *model.User) model.UserDTO {
	return model.UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		Password:     u.Password,
		CreationDate: u.CreationDate,
	}
}
