package mocks

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/sholaoke/churchbase/internal/repository"
)

// MockDatabase hands out whichever mock repositories a test assigns; the
// rest stay nil so an unexpected call fails loudly.
type MockDatabase struct {
	UserRepo          repository.UserRepository
	ChurchRepo        repository.ChurchRepository
	PersonRepo        repository.PersonRepository
	EventRepo         repository.EventRepository
	LocationRepo      repository.LocationRepository
	ContactRepo       repository.ContactRepository
	MinistryRankRepo  repository.MinistryRankRepository
	MinistrySkillRepo repository.MinistrySkillRepository
	StatsRepo         repository.StatsRepository
}

func (m *MockDatabase) User() repository.UserRepository                   { return m.UserRepo }
func (m *MockDatabase) Church() repository.ChurchRepository               { return m.ChurchRepo }
func (m *MockDatabase) Person() repository.PersonRepository               { return m.PersonRepo }
func (m *MockDatabase) Event() repository.EventRepository                 { return m.EventRepo }
func (m *MockDatabase) Location() repository.LocationRepository           { return m.LocationRepo }
func (m *MockDatabase) Contact() repository.ContactRepository             { return m.ContactRepo }
func (m *MockDatabase) MinistryRank() repository.MinistryRankRepository   { return m.MinistryRankRepo }
func (m *MockDatabase) MinistrySkill() repository.MinistrySkillRepository { return m.MinistrySkillRepo }
func (m *MockDatabase) Stats() repository.StatsRepository                 { return m.StatsRepo }

func (m *MockDatabase) Close() error { return nil }

func (m *MockDatabase) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, nil
}
