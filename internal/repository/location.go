package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sholaoke/churchbase/internal/models"
)

type LocationRepository interface {
	Insert(ctx context.Context, location *models.Location) (*models.Location, error)
	GetOne(ctx context.Context, id int) (*models.Location, bool, error)
	List(ctx context.Context, filter ListFilter) ([]models.Location, int, error)
	Update(ctx context.Context, location *models.Location) (*models.Location, error)
	Delete(ctx context.Context, id int) error
	UsageCount(ctx context.Context, id int) (int, error)
}

var locationSearchColumns = []string{"name", "address", "landmark"}

type LocationRepositoryImpl struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) LocationRepository {
	return &LocationRepositoryImpl{db: db}
}

func (repo *LocationRepositoryImpl) Insert(ctx context.Context, location *models.Location) (*models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO locations (name, address, latitude, longitude, landmark)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		location.Name,
		location.Address,
		location.Latitude,
		location.Longitude,
		location.Landmark,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return location, nil
}

func (repo *LocationRepositoryImpl) GetOne(ctx context.Context, id int) (*models.Location, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var location models.Location

	err := repo.db.GetContext(ctx, &location, `SELECT * FROM locations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	return &location, true, err
}

func (repo *LocationRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.Location, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter.Normalize("name", "name", "created_at", "updated_at")

	where := "TRUE"
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = searchClause(locationSearchColumns, len(args))
	}

	var total int
	if err := repo.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM locations WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT * FROM locations WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, filter.SortBy, strings.ToUpper(filter.SortOrder), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	locations := []models.Location{}
	if err := repo.db.SelectContext(ctx, &locations, query, args...); err != nil {
		return nil, 0, err
	}

	return locations, total, nil
}

func (repo *LocationRepositoryImpl) Update(ctx context.Context, location *models.Location) (*models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		UPDATE locations SET
			name = $1, address = $2, latitude = $3, longitude = $4, landmark = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		location.Name,
		location.Address,
		location.Latitude,
		location.Longitude,
		location.Landmark,
		location.ID,
	).Scan(&location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return location, nil
}

func (repo *LocationRepositoryImpl) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := repo.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	return MapError(err)
}

func (repo *LocationRepositoryImpl) UsageCount(ctx context.Context, id int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var count int
	err := repo.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events WHERE location_id = $1`, id)
	return count, err
}
