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

// The two reference tables share a schema, so their repositories share an
// implementation parameterized by table name and usage query.

type MinistryRankRepository interface {
	Insert(ctx context.Context, rank *models.MinistryRank) (*models.MinistryRank, error)
	GetOne(ctx context.Context, id int) (*models.MinistryRank, bool, error)
	List(ctx context.Context, filter ListFilter) ([]models.MinistryRank, int, error)
	Update(ctx context.Context, rank *models.MinistryRank) (*models.MinistryRank, error)
	Delete(ctx context.Context, id int) error
	UsageCount(ctx context.Context, id int) (int, error)
}

type MinistrySkillRepository interface {
	Insert(ctx context.Context, skill *models.MinistrySkill) (*models.MinistrySkill, error)
	GetOne(ctx context.Context, id int) (*models.MinistrySkill, bool, error)
	List(ctx context.Context, filter ListFilter) ([]models.MinistrySkill, int, error)
	Update(ctx context.Context, skill *models.MinistrySkill) (*models.MinistrySkill, error)
	Delete(ctx context.Context, id int) error
	UsageCount(ctx context.Context, id int) (int, error)
}

type referenceTable struct {
	db         *sqlx.DB
	table      string
	usageQuery string
}

func NewMinistryRankRepository(db *sqlx.DB) MinistryRankRepository {
	return &MinistryRankRepositoryImpl{referenceTable{
		db:         db,
		table:      "ministry_ranks",
		usageQuery: `SELECT COUNT(*) FROM people WHERE ministry_rank_id = $1`,
	}}
}

func NewMinistrySkillRepository(db *sqlx.DB) MinistrySkillRepository {
	return &MinistrySkillRepositoryImpl{referenceTable{
		db:         db,
		table:      "ministry_skills",
		usageQuery: `SELECT COUNT(*) FROM person_skills WHERE skill_id = $1`,
	}}
}

type MinistryRankRepositoryImpl struct {
	referenceTable
}

type MinistrySkillRepositoryImpl struct {
	referenceTable
}

func (r *referenceTable) insert(ctx context.Context, name string, description *string, dst ...any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `INSERT INTO ` + r.table + ` (name, description) VALUES ($1, $2) RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, name, description).Scan(dst...)
	return MapError(err)
}

func (r *referenceTable) update(ctx context.Context, id int, name string, description *string, dst ...any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE ` + r.table + ` SET name = $1, description = $2, updated_at = NOW() WHERE id = $3 RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, name, description, id).Scan(dst...)
	return MapError(err)
}

func (r *referenceTable) getOne(ctx context.Context, id int, dst any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.GetContext(ctx, dst, `SELECT * FROM `+r.table+` WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	return true, err
}

func (r *referenceTable) list(ctx context.Context, filter ListFilter, dst any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter.Normalize("name", "name", "created_at", "updated_at")

	where := "TRUE"
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = searchClause([]string{"name", "description"}, len(args))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM `+r.table+` WHERE `+where, args...); err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		r.table, where, filter.SortBy, strings.ToUpper(filter.SortOrder), len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	if err := r.db.SelectContext(ctx, dst, query, args...); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *referenceTable) delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	return MapError(err)
}

func (r *referenceTable) usageCount(ctx context.Context, id int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var count int
	err := r.db.GetContext(ctx, &count, r.usageQuery, id)
	return count, err
}

func (repo *MinistryRankRepositoryImpl) Insert(ctx context.Context, rank *models.MinistryRank) (*models.MinistryRank, error) {
	err := repo.insert(ctx, rank.Name, rank.Description, &rank.ID, &rank.CreatedAt, &rank.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rank, nil
}

func (repo *MinistryRankRepositoryImpl) GetOne(ctx context.Context, id int) (*models.MinistryRank, bool, error) {
	var rank models.MinistryRank
	found, err := repo.getOne(ctx, id, &rank)
	if !found || err != nil {
		return nil, found, err
	}
	return &rank, true, nil
}

func (repo *MinistryRankRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.MinistryRank, int, error) {
	ranks := []models.MinistryRank{}
	total, err := repo.list(ctx, filter, &ranks)
	return ranks, total, err
}

func (repo *MinistryRankRepositoryImpl) Update(ctx context.Context, rank *models.MinistryRank) (*models.MinistryRank, error) {
	err := repo.update(ctx, rank.ID, rank.Name, rank.Description, &rank.CreatedAt, &rank.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rank, nil
}

func (repo *MinistryRankRepositoryImpl) Delete(ctx context.Context, id int) error {
	return repo.delete(ctx, id)
}

func (repo *MinistryRankRepositoryImpl) UsageCount(ctx context.Context, id int) (int, error) {
	return repo.usageCount(ctx, id)
}

func (repo *MinistrySkillRepositoryImpl) Insert(ctx context.Context, skill *models.MinistrySkill) (*models.MinistrySkill, error) {
	err := repo.insert(ctx, skill.Name, skill.Description, &skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (repo *MinistrySkillRepositoryImpl) GetOne(ctx context.Context, id int) (*models.MinistrySkill, bool, error) {
	var skill models.MinistrySkill
	found, err := repo.getOne(ctx, id, &skill)
	if !found || err != nil {
		return nil, found, err
	}
	return &skill, true, nil
}

func (repo *MinistrySkillRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.MinistrySkill, int, error) {
	skills := []models.MinistrySkill{}
	total, err := repo.list(ctx, filter, &skills)
	return skills, total, err
}

func (repo *MinistrySkillRepositoryImpl) Update(ctx context.Context, skill *models.MinistrySkill) (*models.MinistrySkill, error) {
	err := repo.update(ctx, skill.ID, skill.Name, skill.Description, &skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (repo *MinistrySkillRepositoryImpl) Delete(ctx context.Context, id int) error {
	return repo.delete(ctx, id)
}

func (repo *MinistrySkillRepositoryImpl) UsageCount(ctx context.Context, id int) (int, error) {
	return repo.usageCount(ctx, id)
}
