package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
)

type MockChurchRepo struct {
	mock.Mock
}

func (m *MockChurchRepo) Insert(ctx context.Context, church *models.Church) (*models.Church, error) {
	args := m.Called(ctx, church)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Church), args.Error(1)
}

func (m *MockChurchRepo) GetOne(ctx context.Context, id int) (*models.Church, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Church), args.Bool(1), args.Error(2)
}

func (m *MockChurchRepo) List(ctx context.Context, filter repository.ListFilter) ([]models.Church, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Church), args.Int(1), args.Error(2)
}

func (m *MockChurchRepo) ListAll(ctx context.Context, isActive *bool) ([]models.Church, error) {
	args := m.Called(ctx, isActive)
	return args.Get(0).([]models.Church), args.Error(1)
}

func (m *MockChurchRepo) Update(ctx context.Context, church *models.Church) (*models.Church, error) {
	args := m.Called(ctx, church)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Church), args.Error(1)
}

func (m *MockChurchRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChurchRepo) DependentCounts(ctx context.Context, id int) ([]repository.DependentCount, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]repository.DependentCount), args.Error(1)
}
