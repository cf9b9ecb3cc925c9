package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
)

type MockPersonRepo struct {
	mock.Mock
}

func (m *MockPersonRepo) CreateWithDependents(ctx context.Context, person *models.Person, deps *models.PersonDependents) (*models.Person, error) {
	args := m.Called(ctx, person, deps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepo) GetOne(ctx context.Context, kind string, id int) (*models.Person, bool, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Person), args.Bool(1), args.Error(2)
}

func (m *MockPersonRepo) GetComplete(ctx context.Context, kind string, id int) (*models.Person, *models.PersonDependents, bool, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, nil, args.Bool(2), args.Error(3)
	}
	return args.Get(0).(*models.Person), args.Get(1).(*models.PersonDependents), args.Bool(2), args.Error(3)
}

func (m *MockPersonRepo) List(ctx context.Context, kind string, filter repository.ListFilter) ([]models.Person, int, error) {
	args := m.Called(ctx, kind, filter)
	return args.Get(0).([]models.Person), args.Int(1), args.Error(2)
}

func (m *MockPersonRepo) ListAll(ctx context.Context, kind string, isActive *bool) ([]models.Person, error) {
	args := m.Called(ctx, kind, isActive)
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonRepo) Update(ctx context.Context, person *models.Person) (*models.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepo) Delete(ctx context.Context, kind string, id int) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockPersonRepo) GetCollection(ctx context.Context, personID int, kind repository.DependentKind) (any, error) {
	args := m.Called(ctx, personID, kind)
	return args.Get(0), args.Error(1)
}

func (m *MockPersonRepo) ReplaceCollection(ctx context.Context, personID int, kind repository.DependentKind, deps *models.PersonDependents) error {
	args := m.Called(ctx, personID, kind, deps)
	return args.Error(0)
}

func (m *MockPersonRepo) CountByChurch(ctx context.Context, kind string, churchID int) (int, error) {
	return 0, nil
}

func (m *MockPersonRepo) MonthlyRegistrations(ctx context.Context, kind string, months int) ([]repository.MonthCount, error) {
	args := m.Called(ctx, kind, months)
	return args.Get(0).([]repository.MonthCount), args.Error(1)
}
