package handler

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Authenticate(ctx context.Context, login model.UserLoginDTO) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthService) GenerateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Add(ctx context.Context, dto model.UserLoginDTO) (model.UserDTO, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(model.UserDTO), args.Error(1)
}

func (m *mockUserService) Get(ctx context.Context, q model.PageQuery) ([]model.UserDTO, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.([]model.UserDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) GetByID(ctx context.Context, id int) (model.UserDTO, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.UserDTO), args.Error(1)
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (model.UserDTO, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.UserDTO), args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, dto model.UserUpdateDTO) (model.UserDTO, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(model.UserDTO), args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockSneakerService struct {
	mock.Mock
}

func (m *mockSneakerService) Add(ctx context.Context, dto model.SneakerCreateDTO) (model.SneakerDTO, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(model.SneakerDTO), args.Error(1)
}

func (m *mockSneakerService) Get(ctx context.Context, q model.PageQuery) ([]model.SneakerDTO, error) {
	args := m.Called(ctx, q)
	if v := args.Get(0); v != nil {
		return v.([]model.SneakerDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerService) GetByID(ctx context.Context, id int) (model.SneakerDTO, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.SneakerDTO), args.Error(1)
}

func (m *mockSneakerService) GetByUserID(ctx context.Context, userID int) ([]model.SneakerDTO, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]model.SneakerDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerService) GetByUserEmail(ctx context.Context, email string) ([]model.SneakerDTO, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.([]model.SneakerDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSneakerService) Update(ctx context.Context, dto model.SneakerUpdateDTO) (model.SneakerDTO, error) {
	args := m.Called(ctx, dto)
	return args.Get(0).(model.SneakerDTO), args.Error(1)
}

func (m *mockSneakerService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
