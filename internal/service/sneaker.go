package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sneakercollection/sneakercollection-go/internal/model"
	"github.com/sneakercollection/sneakercollection-go/internal/repository"
)

// SneakerRepository is the persistence seam the sneaker service depends on.
type SneakerRepository interface {
	Add(ctx context.Context, s *model.Sneaker) (*model.Sneaker, error)
	GetByID(ctx context.Context, id int) (*model.Sneaker, error)
	GetPage(ctx context.Context, q model.PageQuery) ([]model.Sneaker, error)
	Update(ctx context.Context, s *model.Sneaker) (*model.Sneaker, error)
	Delete(ctx context.Context, id int) error
	GetByUserID(ctx context.Context, userID int) ([]model.Sneaker, error)
	GetByUserEmail(ctx context.Context, email string) ([]model.Sneaker, error)
}

// SneakerService wraps the sneaker repository with DTO conversion and the
// NotFound/Common error contract.
type SneakerService struct {
	repo SneakerRepository
}

// NewSneakerService creates a new SneakerService.
func NewSneakerService(repo SneakerRepository) *SneakerService {
	return &SneakerService{repo: repo}
}

// Add creates a new sneaker. A create referencing a user id that does not
// exist fails the storage foreign key and surfaces as NotFoundError.
func (s *SneakerService) Add(ctx context.Context, dto model.SneakerCreateDTO) (model.SneakerDTO, error) {
	sneaker := &model.Sneaker{
		Name:   dto.Name,
		Brand:  dto.Brand,
		Price:  dto.Price,
		SizeUS: dto.SizeUS,
		Year:   dto.Year,
		Rate:   dto.Rate,
		UserID: dto.UserID,
	}

	added, err := s.repo.Add(ctx, sneaker)
	if err != nil {
		if errors.Is(err, repository.ErrUserReference) {
			return model.SneakerDTO{}, &NotFoundError{Message: fmt.Sprintf("User with Id: '%d' was not found", dto.UserID)}
		}
		return model.SneakerDTO{}, &CommonError{Message: err.Error()}
	}

	return sneakerToDTO(added), nil
}

// Get returns a page of sneakers, or NotFoundError when the page is empty.
func (s *SneakerService) Get(ctx context.Context, q model.PageQuery) ([]model.SneakerDTO, error) {
	sneakers, err := s.repo.GetPage(ctx, q)
	if err != nil {
		return nil, &CommonError{Message: err.Error()}
	}
	if len(sneakers) == 0 {
		return nil, &NotFoundError{Message: "No Sneakers were found"}
	}
	return sneakersToDTO(sneakers), nil
}

// GetByID returns the sneaker with the given id, or NotFoundError.
func (s *SneakerService) GetByID(ctx context.Context, id int) (model.SneakerDTO, error) {
	sneaker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.SneakerDTO{}, &NotFoundError{Message: fmt.Sprintf("Sneaker with Id: '%d' was not found", id)}
		}
		return model.SneakerDTO{}, &CommonError{Message: err.Error()}
	}
	return sneakerToDTO(sneaker), nil
}

// GetByUserID returns every sneaker owned by the given user, or
// NotFoundError when the user owns none.
func (s *SneakerService) GetByUserID(ctx context.Context, userID int) ([]model.SneakerDTO, error) {
	sneakers, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, &CommonError{Message: err.Error()}
	}
	if len(sneakers) == 0 {
		return nil, &NotFoundError{Message: fmt.Sprintf("No Sneakers found for UserId: '%d'", userID)}
	}
	return sneakersToDTO(sneakers), nil
}

// GetByUserEmail returns every sneaker owned by the user with the given
// email, or NotFoundError when there are none.
func (s *SneakerService) GetByUserEmail(ctx context.Context, email string) ([]model.SneakerDTO, error) {
	sneakers, err := s.repo.GetByUserEmail(ctx, email)
	if err != nil {
		return nil, &CommonError{Message: err.Error()}
	}
	if len(sneakers) == 0 {
		return nil, &NotFoundError{Message: fmt.Sprintf("No Sneakers found for User Email: '%s'", email)}
	}
	return sneakersToDTO(sneakers), nil
}

// Update replaces all non-key columns of the sneaker identified by dto.ID.
// Same read-then-write pattern as the user service; the existence check and
// the write are not atomic.
func (s *SneakerService) Update(ctx context.Context, dto model.SneakerUpdateDTO) (model.SneakerDTO, error) {
	if _, err := s.repo.GetByID(ctx, dto.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.SneakerDTO{}, &NotFoundError{Message: fmt.Sprintf("Sneaker with Id: '%d' was not found", dto.ID)}
		}
		return model.SneakerDTO{}, &CommonError{Message: err.Error()}
	}

	updated, err := s.repo.Update(ctx, &model.Sneaker{
		ID:     dto.ID,
		Name:   dto.Name,
		Brand:  dto.Brand,
		Price:  dto.Price,
		SizeUS: dto.SizeUS,
		Year:   dto.Year,
		Rate:   dto.Rate,
		UserID: dto.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return model.SneakerDTO{}, &NotFoundError{Message: fmt.Sprintf("Sneaker with Id: '%d' was not found", dto.ID)}
		case errors.Is(err, repository.ErrUserReference):
			return model.SneakerDTO{}, &NotFoundError{Message: fmt.Sprintf("User with Id: '%d' was not found", dto.UserID)}
		}
		return model.SneakerDTO{}, &CommonError{Message: err.Error()}
	}

	return sneakerToDTO(updated), nil
}

// Delete removes the sneaker by id. Idempotent.
func (s *SneakerService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &CommonError{Message: err.Error()}
	}
	return nil
}

func sneakerToDTO(s *model.Sneaker) model.SneakerDTO {
	return model.SneakerDTO{
		ID:           s.ID,
		Name:         s.Name,
		Brand:        s.Brand,
		Price:        s.Price,
		SizeUS:       s.SizeUS,
		Year:         s.Year,
		Rate:         s.Rate,
		CreationDate: s.CreationDate,
		UserID:       s.UserID,
	}
}

func sneakersToDTO(sneakers []model.Sneaker) []model.SneakerDTO {
	dtos := make([]model.SneakerDTO, len(sneakers))
	for i := range sneakers {
		dtos[i] = sneakerToDTO(&sneakers[i])
	}
	return dtos
}
