package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Add(ctx context.Context, u *model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetPage(ctx context.Context, q model.PageQuery) ([]model.User, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSneakerRepo struct {
	mock.Mock
}

func (m *mockSneakerRepo) Add(ctx context.Context, s *model.Sneaker) (*model.Sneaker, error) {
	args := m.Called(ctx, s)
	if v := args.Get(0); v != nil {
		return v.(*model.Sneaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerRepo) GetByID(ctx context.Context, id int) (*model.Sneaker, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Sneaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerRepo) GetPage(ctx context.Context, q model.PageQuery) ([]model.Sneaker, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.([]model.Sneaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerRepo) Update(ctx context.Context, s *model.Sneaker) (*model.Sneaker, error) {
	args := m.Called(ctx, s)
	if v := args.Get(0); v != nil {
		return v.(*model.Sneaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSneakerRepo) GetByUserID(ctx context.Context, userID int) ([]model.Sneaker, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]model.Sneaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerRepo) GetByUserEmail(ctx context.Context, email string) ([]model.Sneaker, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.([]model.Sneaker), args.Error(1)
	}
	return nil, args.Error(1)
}
