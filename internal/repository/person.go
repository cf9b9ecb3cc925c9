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

type PersonRepository interface {
	CreateWithDependents(ctx context.Context, person *models.Person, deps *models.PersonDependents) (*models.Person, error)
	GetOne(ctx context.Context, kind string, id int) (*models.Person, bool, error)
	GetComplete(ctx context.Context, kind string, id int) (*models.Person, *models.PersonDependents, bool, error)
	List(ctx context.Context, kind string, filter ListFilter) ([]models.Person, int, error)
	ListAll(ctx context.Context, kind string, isActive *bool) ([]models.Person, error)
	Update(ctx context.Context, person *models.Person) (*models.Person, error)
	Delete(ctx context.Context, kind string, id int) error
	GetCollection(ctx context.Context, personID int, kind DependentKind) (any, error)
	ReplaceCollection(ctx context.Context, personID int, kind DependentKind, deps *models.PersonDependents) error
	CountByChurch(ctx context.Context, kind string, churchID int) (int, error)
	MonthlyRegistrations(ctx context.Context, kind string, months int) ([]MonthCount, error)
}

// personSearchColumns are the fields the free-text list search is ORed
// across. Matching occupation alone is enough to return a row.
var personSearchColumns = []string{
	"first_name", "middle_name", "last_name", "nickname", "email", "occupation",
}

const personInsertQuery = `
	INSERT INTO people (
		kind, first_name, middle_name, last_name, suffix, nickname,
		gender, civil_status, date_of_birth, place_of_birth,
		email, telephone, mobile,
		present_address, permanent_address, home_address,
		occupation, ministry_status, church_id, ministry_rank_id,
		profile_picture, signature_url, is_active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	RETURNING id, created_at, updated_at`

type PersonRepositoryImpl struct {
	db *sqlx.DB
}

func NewPersonRepository(db *sqlx.DB) PersonRepository {
	return &PersonRepositoryImpl{db: db}
}

// CreateWithDependents persists the parent row plus every supplied dependent
// collection in one transaction. A failure at any point leaves no rows behind.
func (repo *PersonRepositoryImpl) CreateWithDependents(ctx context.Context, person *models.Person, deps *models.PersonDependents) (*models.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	err = tx.QueryRowxContext(ctx, personInsertQuery,
		person.Kind,
		person.FirstName,
		person.MiddleName,
		person.LastName,
		person.Suffix,
		person.Nickname,
		person.Gender,
		person.CivilStatus,
		person.DateOfBirth,
		person.PlaceOfBirth,
		person.Email,
		person.Telephone,
		person.Mobile,
		person.PresentAddress,
		person.PermanentAddress,
		person.HomeAddress,
		person.Occupation,
		person.MinistryStatus,
		person.ChurchID,
		person.MinistryRankID,
		person.ProfilePicture,
		person.SignatureURL,
		person.IsActive,
	).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	if deps != nil && deps.Count() > 0 {
		err = insertDependents(ctx, tx, person.ID, deps)
		if err != nil {
			return nil, MapError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return person, nil
}

func (repo *PersonRepositoryImpl) GetOne(ctx context.Context, kind string, id int) (*models.Person, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var person models.Person

	query := `SELECT * FROM people WHERE kind = $1 AND id = $2`

	err := repo.db.GetContext(ctx, &person, query, kind, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	return &person, true, err
}

// GetComplete fetches the parent row and all nine dependent collections inside
// a single read-only transaction so the view is snapshot-consistent.
func (repo *PersonRepositoryImpl) GetComplete(ctx context.Context, kind string, id int) (*models.Person, *models.PersonDependents, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := repo.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, nil, false, err
	}
	defer tx.Rollback()

	var person models.Person
	err = tx.GetContext(ctx, &person, `SELECT * FROM people WHERE kind = $1 AND id = $2`, kind, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, err
	}

	deps, err := selectDependents(ctx, tx, person.ID)
	if err != nil {
		return nil, nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, false, err
	}

	return &person, deps, true, nil
}

func (repo *PersonRepositoryImpl) List(ctx context.Context, kind string, filter ListFilter) ([]models.Person, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter.Normalize("created_at", "first_name", "last_name", "created_at", "updated_at")

	where, args := personWhere(kind, filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM people WHERE ` + where
	if err := repo.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT * FROM people WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, filter.SortBy, strings.ToUpper(filter.SortOrder), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	people := []models.Person{}
	if err := repo.db.SelectContext(ctx, &people, query, args...); err != nil {
		return nil, 0, err
	}

	return people, total, nil
}

func (repo *PersonRepositoryImpl) ListAll(ctx context.Context, kind string, isActive *bool) ([]models.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := ListFilter{}
	filter.IsActive = isActive
	where, args := personWhere(kind, filter)

	people := []models.Person{}
	query := `SELECT * FROM people WHERE ` + where + ` ORDER BY last_name ASC, first_name ASC`

	err := repo.db.SelectContext(ctx, &people, query, args...)
	return people, err
}

func personWhere(kind string, filter ListFilter) (string, []any) {
	where := []string{"kind = $1"}
	args := []any{kind}

	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, searchClause(personSearchColumns, len(args)))
	}

	return strings.Join(where, " AND "), args
}

// Update replaces the scalar columns only; dependent collections have their
// own narrower operations. updated_at is stamped by the database.
func (repo *PersonRepositoryImpl) Update(ctx context.Context, person *models.Person) (*models.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		UPDATE people SET
			first_name = $1, middle_name = $2, last_name = $3, suffix = $4, nickname = $5,
			gender = $6, civil_status = $7, date_of_birth = $8, place_of_birth = $9,
			email = $10, telephone = $11, mobile = $12,
			present_address = $13, permanent_address = $14, home_address = $15,
			occupation = $16, ministry_status = $17, church_id = $18, ministry_rank_id = $19,
			profile_picture = $20, signature_url = $21, is_active = $22,
			updated_at = NOW()
		WHERE kind = $23 AND id = $24
		RETURNING created_at, updated_at`

	err := repo.db.QueryRowxContext(ctx, query,
		person.FirstName,
		person.MiddleName,
		person.LastName,
		person.Suffix,
		person.Nickname,
		person.Gender,
		person.CivilStatus,
		person.DateOfBirth,
		person.PlaceOfBirth,
		person.Email,
		person.Telephone,
		person.Mobile,
		person.PresentAddress,
		person.PermanentAddress,
		person.HomeAddress,
		person.Occupation,
		person.MinistryStatus,
		person.ChurchID,
		person.MinistryRankID,
		person.ProfilePicture,
		person.SignatureURL,
		person.IsActive,
		person.Kind,
		person.ID,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	return person, nil
}

// Delete removes the person and every owned dependent row in one transaction.
// Dependent rows are owned sub-records, so they go with the parent; this is
// the uniform policy for person records.
func (repo *PersonRepositoryImpl) Delete(ctx context.Context, kind string, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range dependentTables {
		if _, err = tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE person_id = $1`, id); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM people WHERE kind = $1 AND id = $2`, kind, id); err != nil {
		return MapError(err)
	}

	return tx.Commit()
}

func (repo *PersonRepositoryImpl) CountByChurch(ctx context.Context, kind string, churchID int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM people WHERE kind = $1 AND church_id = $2`

	err := repo.db.GetContext(ctx, &count, query, kind, churchID)
	return count, err
}

type MonthCount struct {
	Month string `db:"month" json:"month"`
	Count int    `db:"count" json:"count"`
}

// MonthlyRegistrations returns per-month creation counts over the trailing
// window, oldest first. Months with no registrations are absent.
func (repo *PersonRepositoryImpl) MonthlyRegistrations(ctx context.Context, kind string, months int) ([]MonthCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `
		SELECT TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count
		FROM people
		WHERE kind = $1 AND created_at >= DATE_TRUNC('month', NOW()) - ($2 * INTERVAL '1 month')
		GROUP BY 1
		ORDER BY 1 ASC`

	counts := []MonthCount{}
	err := repo.db.SelectContext(ctx, &counts, query, kind, months)
	return counts, err
}
