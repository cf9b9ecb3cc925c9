package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/sholaoke/churchbase/assets"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/lib/pq"
)

const defaultTimeout = 3 * time.Second

// Database exposes one repository per aggregate.
type Database interface {
	User() UserRepository
	Church() ChurchRepository
	Person() PersonRepository
	Event() EventRepository
	Location() LocationRepository
	Contact() ContactRepository
	MinistryRank() MinistryRankRepository
	MinistrySkill() MinistrySkillRepository
	Stats() StatsRepository

	Close() error
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type DatabaseImpl struct {
	db                *sqlx.DB
	userRepo          UserRepository
	churchRepo        ChurchRepository
	personRepo        PersonRepository
	eventRepo         EventRepository
	locationRepo      LocationRepository
	contactRepo       ContactRepository
	ministryRankRepo  MinistryRankRepository
	ministrySkillRepo MinistrySkillRepository
	statsRepo         StatsRepository

	mu sync.Mutex
}

// New initializes a database connection and runs migrations if enabled
func New(dsn string, automigrate bool) (Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", "postgres://"+dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	if automigrate {
		iofsDriver, err := iofs.New(assets.EmbeddedFiles, "migrations")
		if err != nil {
			return nil, err
		}

		migrator, err := migrate.NewWithSourceInstance("iofs", iofsDriver, "postgres://"+dsn)
		if err != nil {
			return nil, err
		}

		if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return nil, err
		}
	}

	return &DatabaseImpl{db: db}, nil
}

func (d *DatabaseImpl) Close() error {
	return d.db.Close()
}

func (d *DatabaseImpl) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return d.db.BeginTxx(ctx, opts)
}

func (d *DatabaseImpl) User() UserRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.userRepo == nil {
		d.userRepo = NewUserRepository(d.db)
	}
	return d.userRepo
}

func (d *DatabaseImpl) Church() ChurchRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.churchRepo == nil {
		d.churchRepo = NewChurchRepository(d.db)
	}
	return d.churchRepo
}

func (d *DatabaseImpl) Person() PersonRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.personRepo == nil {
		d.personRepo = NewPersonRepository(d.db)
	}
	return d.personRepo
}

func (d *DatabaseImpl) Event() EventRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.eventRepo == nil {
		d.eventRepo = NewEventRepository(d.db)
	}
	return d.eventRepo
}

func (d *DatabaseImpl) Location() LocationRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.locationRepo == nil {
		d.locationRepo = NewLocationRepository(d.db)
	}
	return d.locationRepo
}

func (d *DatabaseImpl) Contact() ContactRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.contactRepo == nil {
		d.contactRepo = NewContactRepository(d.db)
	}
	return d.contactRepo
}

func (d *DatabaseImpl) MinistryRank() MinistryRankRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ministryRankRepo == nil {
		d.ministryRankRepo = NewMinistryRankRepository(d.db)
	}
	return d.ministryRankRepo
}

func (d *DatabaseImpl) MinistrySkill() MinistrySkillRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ministrySkillRepo == nil {
		d.ministrySkillRepo = NewMinistrySkillRepository(d.db)
	}
	return d.ministrySkillRepo
}

func (d *DatabaseImpl) Stats() StatsRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.statsRepo == nil {
		d.statsRepo = NewStatsRepository(d.db)
	}
	return d.statsRepo
}
