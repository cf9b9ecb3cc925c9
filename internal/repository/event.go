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

type EventRepository interface {
	Insert(ctx context.Context, event *models.Event) (*models.Event, error)
	GetOne(ctx context.Context, id int) (*models.Event, bool, error)
	List(ctx context.Context, filter ListFilter) ([]models.Event, int, error)
	Update(ctx context.Context, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id int) error
}

var eventSearchColumns = []string{"title", "description"}

type EventRepositoryImpl struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (repo *EventRepositoryImpl) Insert(ctx context.Context, event *models.Event) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO events (title, description, event_date, event_time, church_id, location_id, banner_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		event.Title,
		event.Description,
		event.EventDate,
		event.EventTime,
		event.ChurchID,
		event.LocationID,
		event.BannerURL,
		event.IsActive,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return event, nil
}

func (repo *EventRepositoryImpl) GetOne(ctx context.Context, id int) (*models.Event, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var event models.Event

	err := repo.db.GetContext(ctx, &event, `SELECT * FROM events WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	return &event, true, err
}

func (repo *EventRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter.Normalize("event_date", "title", "event_date", "created_at", "updated_at")

	where := []string{"TRUE"}
	args := []any{}

	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, searchClause(eventSearchColumns, len(args)))
	}

	whereSQL := strings.Join(where, " AND ")

	var total int
	if err := repo.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM events WHERE `+whereSQL, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT * FROM events WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		whereSQL, filter.SortBy, strings.ToUpper(filter.SortOrder), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	events := []models.Event{}
	if err := repo.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (repo *EventRepositoryImpl) Update(ctx context.Context, event *models.Event) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		UPDATE events SET
			title = $1, description = $2, event_date = $3, event_time = $4,
			church_id = $5, location_id = $6, banner_url = $7, is_active = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		event.Title,
		event.Description,
		event.EventDate,
		event.EventTime,
		event.ChurchID,
		event.LocationID,
		event.BannerURL,
		event.IsActive,
		event.ID,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return event, nil
}

func (repo *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := repo.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	return MapError(err)
}
