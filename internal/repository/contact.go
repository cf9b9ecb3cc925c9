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

type ContactRepository interface {
	Insert(ctx context.Context, submission *models.ContactSubmission) (*models.ContactSubmission, error)
	GetOne(ctx context.Context, id int) (*models.ContactSubmission, bool, error)
	List(ctx context.Context, filter ListFilter, status string) ([]models.ContactSubmission, int, error)
	MarkRead(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

var contactSearchColumns = []string{"name", "email", "subject", "message"}

type ContactRepositoryImpl struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (repo *ContactRepositoryImpl) Insert(ctx context.Context, submission *models.ContactSubmission) (*models.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		INSERT INTO contact_submissions (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
	).Scan(&submission.ID, &submission.Status, &submission.CreatedAt, &submission.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return submission, nil
}

func (repo *ContactRepositoryImpl) GetOne(ctx context.Context, id int) (*models.ContactSubmission, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var submission models.ContactSubmission

	err := repo.db.GetContext(ctx, &submission, `SELECT * FROM contact_submissions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	return &submission, true, err
}

func (repo *ContactRepositoryImpl) List(ctx context.Context, filter ListFilter, status string) ([]models.ContactSubmission, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter.Normalize("created_at", "name", "created_at", "updated_at")

	where := []string{"TRUE"}
	args := []any{}

	if status != "" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, searchClause(contactSearchColumns, len(args)))
	}

	whereSQL := strings.Join(where, " AND ")

	var total int
	if err := repo.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM contact_submissions WHERE `+whereSQL, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT * FROM contact_submissions WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		whereSQL, filter.SortBy, strings.ToUpper(filter.SortOrder), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	submissions := []models.ContactSubmission{}
	if err := repo.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

func (repo *ContactRepositoryImpl) MarkRead(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE contact_submissions SET status = $1, updated_at = NOW() WHERE id = $2`

	_, err := repo.db.ExecContext(ctx, query, models.ContactStatusRead, id)
	return err
}

func (repo *ContactRepositoryImpl) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := repo.db.ExecContext(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	return err
}
