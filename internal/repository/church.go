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

type ChurchRepository interface {
	Insert(ctx context.Context, church *models.Church) (*models.Church, error)
	GetOne(ctx context.Context, id int) (*models.Church, bool, error)
	List(ctx context.Context, filter ListFilter) ([]models.Church, int, error)
	ListAll(ctx context.Context, isActive *bool) ([]models.Church, error)
	Update(ctx context.Context, church *models.Church) (*models.Church, error)
	Delete(ctx context.Context, id int) error
	DependentCounts(ctx context.Context, id int) ([]DependentCount, error)
}

// DependentCount names how many rows of a given kind still reference a parent
// entity; a non-zero count blocks deletion.
type DependentCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

var churchSearchColumns = []string{"name", "address", "city", "province", "pastor_name"}

type ChurchRepositoryImpl struct {
	db *sqlx.DB
}

func NewChurchRepository(db *sqlx.DB) ChurchRepository {
	return &ChurchRepositoryImpl{db: db}
}

func (repo *ChurchRepositoryImpl) Insert(ctx context.Context, church *models.Church) (*models.Church, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO churches (name, address, city, province, latitude, longitude, pastor_name, contact_email, contact_phone, date_established, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		church.Name,
		church.Address,
		church.City,
		church.Province,
		church.Latitude,
		church.Longitude,
		church.PastorName,
		church.ContactEmail,
		church.ContactPhone,
		church.DateEstablished,
		church.IsActive,
	).Scan(&church.ID, &church.CreatedAt, &church.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return church, nil
}

func (repo *ChurchRepositoryImpl) GetOne(ctx context.Context, id int) (*models.Church, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var church models.Church

	query := `SELECT * FROM churches WHERE id = $1`

	err := repo.db.GetContext(ctx, &church, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	return &church, true, err
}

func (repo *ChurchRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.Church, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter.Normalize("created_at", "name", "city", "created_at", "updated_at")

	where := []string{"TRUE"}
	args := []any{}

	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, searchClause(churchSearchColumns, len(args)))
	}

	whereSQL := strings.Join(where, " AND ")

	var total int
	if err := repo.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM churches WHERE `+whereSQL, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT * FROM churches WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		whereSQL, filter.SortBy, strings.ToUpper(filter.SortOrder), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	churches := []models.Church{}
	if err := repo.db.SelectContext(ctx, &churches, query, args...); err != nil {
		return nil, 0, err
	}

	return churches, total, nil
}

func (repo *ChurchRepositoryImpl) ListAll(ctx context.Context, isActive *bool) ([]models.Church, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	churches := []models.Church{}

	if isActive != nil {
		err := repo.db.SelectContext(ctx, &churches, `SELECT * FROM churches WHERE is_active = $1 ORDER BY name ASC`, *isActive)
		return churches, err
	}

	err := repo.db.SelectContext(ctx, &churches, `SELECT * FROM churches ORDER BY name ASC`)
	return churches, err
}

func (repo *ChurchRepositoryImpl) Update(ctx context.Context, church *models.Church) (*models.Church, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		UPDATE churches SET
			name = $1, address = $2, city = $3, province = $4, latitude = $5, longitude = $6,
			pastor_name = $7, contact_email = $8, contact_phone = $9, date_established = $10,
			is_active = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		church.Name,
		church.Address,
		church.City,
		church.Province,
		church.Latitude,
		church.Longitude,
		church.PastorName,
		church.ContactEmail,
		church.ContactPhone,
		church.DateEstablished,
		church.IsActive,
		church.ID,
	).Scan(&church.CreatedAt, &church.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return church, nil
}

func (repo *ChurchRepositoryImpl) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := repo.db.ExecContext(ctx, `DELETE FROM churches WHERE id = $1`, id)
	return MapError(err)
}

// DependentCounts reports the rows still referencing the church, in the order
// they should be named in a blocked-delete message.
func (repo *ChurchRepositoryImpl) DependentCounts(ctx context.Context, id int) ([]DependentCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	checks := []struct {
		kind  string
		query string
	}{
		{"member", `SELECT COUNT(*) FROM people WHERE kind = 'member' AND church_id = $1`},
		{"minister", `SELECT COUNT(*) FROM people WHERE kind = 'minister' AND church_id = $1`},
		{"event", `SELECT COUNT(*) FROM events WHERE church_id = $1`},
	}

	counts := []DependentCount{}
	for _, check := range checks {
		var count int
		if err := repo.db.GetContext(ctx, &count, check.query, id); err != nil {
			return nil, err
		}
		if count > 0 {
			counts = append(counts, DependentCount{Kind: check.kind, Count: count})
		}
	}

	return counts, nil
}
