package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
)

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Insert(ctx context.Context, skill *models.MinistrySkill) (*models.MinistrySkill, error) {
	args := m.Called(ctx, skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MinistrySkill), args.Error(1)
}

func (m *MockSkillRepo) GetOne(ctx context.Context, id int) (*models.MinistrySkill, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.MinistrySkill), args.Bool(1), args.Error(2)
}

func (m *MockSkillRepo) List(ctx context.Context, filter repository.ListFilter) ([]models.MinistrySkill, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.MinistrySkill), args.Int(1), args.Error(2)
}

func (m *MockSkillRepo) Update(ctx context.Context, skill *models.MinistrySkill) (*models.MinistrySkill, error) {
	args := m.Called(ctx, skill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MinistrySkill), args.Error(1)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepo) UsageCount(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
