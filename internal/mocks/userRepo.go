package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sholaoke/churchbase/internal/models"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetOne(ctx context.Context, id int) (*models.User, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int, hashedPassword string) error {
	return nil
}
