package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sholaoke/churchbase/internal/models"
)

// DependentKind names one of the nine dependent collections a person record
// owns. The values double as URL path segments.
type DependentKind string

const (
	DependentChildren          DependentKind = "children"
	DependentEmergencyContacts DependentKind = "emergency-contacts"
	DependentEducation         DependentKind = "education-records"
	DependentExperiences       DependentKind = "ministry-experiences"
	DependentSkills            DependentKind = "ministry-skills"
	DependentMinistryRecords   DependentKind = "ministry-records"
	DependentAwards            DependentKind = "awards"
	DependentEmployment        DependentKind = "employment-records"
	DependentSeminars          DependentKind = "seminars"
)

var dependentTables = []string{
	"person_children",
	"person_emergency_contacts",
	"person_education",
	"person_experiences",
	"person_skills",
	"person_ministry_records",
	"person_awards",
	"person_employment",
	"person_seminars",
}

var dependentTableByKind = map[DependentKind]string{
	DependentChildren:          "person_children",
	DependentEmergencyContacts: "person_emergency_contacts",
	DependentEducation:         "person_education",
	DependentExperiences:       "person_experiences",
	DependentSkills:            "person_skills",
	DependentMinistryRecords:   "person_ministry_records",
	DependentAwards:            "person_awards",
	DependentEmployment:        "person_employment",
	DependentSeminars:          "person_seminars",
}

func IsDependentKind(s string) bool {
	_, ok := dependentTableByKind[DependentKind(s)]
	return ok
}

const (
	insertChildrenQuery = `
		INSERT INTO person_children (person_id, name, gender, date_of_birth, place_of_birth)
		VALUES (:person_id, :name, :gender, :date_of_birth, :place_of_birth)`

	insertEmergencyContactsQuery = `
		INSERT INTO person_emergency_contacts (person_id, name, relationship, address, contact_number)
		VALUES (:person_id, :name, :relationship, :address, :contact_number)`

	insertEducationQuery = `
		INSERT INTO person_education (person_id, school, attainment, course, year_graduated)
		VALUES (:person_id, :school, :attainment, :course, :year_graduated)`

	insertExperiencesQuery = `
		INSERT INTO person_experiences (person_id, title, description, year_started, year_ended)
		VALUES (:person_id, :title, :description, :year_started, :year_ended)`

	insertSkillsQuery = `
		INSERT INTO person_skills (person_id, skill_id)
		VALUES (:person_id, :skill_id)`

	insertMinistryRecordsQuery = `
		INSERT INTO person_ministry_records (person_id, church_location, year_started, year_ended, contribution)
		VALUES (:person_id, :church_location, :year_started, :year_ended, :contribution)`

	insertAwardsQuery = `
		INSERT INTO person_awards (person_id, year, description)
		VALUES (:person_id, :year, :description)`

	insertEmploymentQuery = `
		INSERT INTO person_employment (person_id, company, position, year_started, year_ended)
		VALUES (:person_id, :company, :position, :year_started, :year_ended)`

	insertSeminarsQuery = `
		INSERT INTO person_seminars (person_id, title, place, year, hours)
		VALUES (:person_id, :title, :place, :year, :hours)`
)

// insertDependents bulk-inserts every non-empty collection, stamping the
// owning person id on each row first. Runs inside the caller's transaction.
func insertDependents(ctx context.Context, tx *sqlx.Tx, personID int, deps *models.PersonDependents) error {
	if len(deps.Children) > 0 {
		for i := range deps.Children {
			deps.Children[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertChildrenQuery, deps.Children); err != nil {
			return err
		}
	}

	if len(deps.EmergencyContacts) > 0 {
		for i := range deps.EmergencyContacts {
			deps.EmergencyContacts[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertEmergencyContactsQuery, deps.EmergencyContacts); err != nil {
			return err
		}
	}

	if len(deps.Education) > 0 {
		for i := range deps.Education {
			deps.Education[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertEducationQuery, deps.Education); err != nil {
			return err
		}
	}

	if len(deps.Experiences) > 0 {
		for i := range deps.Experiences {
			deps.Experiences[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertExperiencesQuery, deps.Experiences); err != nil {
			return err
		}
	}

	if len(deps.Skills) > 0 {
		for i := range deps.Skills {
			deps.Skills[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertSkillsQuery, deps.Skills); err != nil {
			return err
		}
	}

	if len(deps.MinistryRecords) > 0 {
		for i := range deps.MinistryRecords {
			deps.MinistryRecords[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertMinistryRecordsQuery, deps.MinistryRecords); err != nil {
			return err
		}
	}

	if len(deps.Awards) > 0 {
		for i := range deps.Awards {
			deps.Awards[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertAwardsQuery, deps.Awards); err != nil {
			return err
		}
	}

	if len(deps.Employment) > 0 {
		for i := range deps.Employment {
			deps.Employment[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertEmploymentQuery, deps.Employment); err != nil {
			return err
		}
	}

	if len(deps.Seminars) > 0 {
		for i := range deps.Seminars {
			deps.Seminars[i].PersonID = personID
		}
		if _, err := tx.NamedExecContext(ctx, insertSeminarsQuery, deps.Seminars); err != nil {
			return err
		}
	}

	return nil
}

const selectSkillsQuery = `
	SELECT ps.id, ps.person_id, ps.skill_id, ms.name AS skill_name
	FROM person_skills ps
	JOIN ministry_skills ms ON ms.id = ps.skill_id
	WHERE ps.person_id = $1
	ORDER BY ps.id ASC`

func selectDependents(ctx context.Context, q sqlx.QueryerContext, personID int) (*models.PersonDependents, error) {
	deps := &models.PersonDependents{
		Children:          []models.PersonChild{},
		EmergencyContacts: []models.EmergencyContact{},
		Education:         []models.EducationRecord{},
		Experiences:       []models.MinistryExperience{},
		Skills:            []models.PersonSkill{},
		MinistryRecords:   []models.MinistryRecord{},
		Awards:            []models.AwardRecord{},
		Employment:        []models.EmploymentRecord{},
		Seminars:          []models.SeminarRecord{},
	}

	selects := []struct {
		dst   any
		query string
	}{
		{&deps.Children, `SELECT * FROM person_children WHERE person_id = $1 ORDER BY id ASC`},
		{&deps.EmergencyContacts, `SELECT * FROM person_emergency_contacts WHERE person_id = $1 ORDER BY id ASC`},
		{&deps.Education, `SELECT * FROM person_education WHERE person_id = $1 ORDER BY id ASC`},
		{&deps.Experiences, `SELECT * FROM person_experiences WHERE person_id = $1 ORDER BY id ASC`},
		{&deps.Skills, selectSkillsQuery},
		{&deps.MinistryRecords, `SELECT * FROM person_ministry_records WHERE person_id = $1 ORDER BY id ASC`},
		{&deps.Awards, `SELECT * FROM person_awards WHERE person_id = $1 ORDER BY id ASC`},
		{&deps.Employment, `SELECT * FROM person_employment WHERE person_id = $1 ORDER BY id ASC`},
		{&deps.Seminars, `SELECT * FROM person_seminars WHERE person_id = $1 ORDER BY id ASC`},
	}

	for _, s := range selects {
		if err := sqlx.SelectContext(ctx, q, s.dst, s.query, personID); err != nil {
			return nil, err
		}
	}

	return deps, nil
}

func (repo *PersonRepositoryImpl) GetCollection(ctx context.Context, personID int, kind DependentKind) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	table, ok := dependentTableByKind[kind]
	if !ok {
		return nil, fmt.Errorf("unknown dependent collection %q", kind)
	}

	if kind == DependentSkills {
		rows := []models.PersonSkill{}
		err := repo.db.SelectContext(ctx, &rows, selectSkillsQuery, personID)
		return rows, err
	}

	query := `SELECT * FROM ` + table + ` WHERE person_id = $1 ORDER BY id ASC`

	switch kind {
	case DependentChildren:
		rows := []models.PersonChild{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	case DependentEmergencyContacts:
		rows := []models.EmergencyContact{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	case DependentEducation:
		rows := []models.EducationRecord{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	case DependentExperiences:
		rows := []models.MinistryExperience{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	case DependentMinistryRecords:
		rows := []models.MinistryRecord{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	case DependentAwards:
		rows := []models.AwardRecord{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	case DependentEmployment:
		rows := []models.EmploymentRecord{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	case DependentSeminars:
		rows := []models.SeminarRecord{}
		err := repo.db.SelectContext(ctx, &rows, query, personID)
		return rows, err
	}

	return nil, fmt.Errorf("unknown dependent collection %q", kind)
}

// ReplaceCollection swaps the named collection's rows for the person in one
// transaction: delete existing, bulk-insert the supplied set, stamp the
// parent's updated_at.
func (repo *PersonRepositoryImpl) ReplaceCollection(ctx context.Context, personID int, kind DependentKind, deps *models.PersonDependents) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	table, ok := dependentTableByKind[kind]
	if !ok {
		return fmt.Errorf("unknown dependent collection %q", kind)
	}

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE person_id = $1`, personID); err != nil {
		return err
	}

	only := &models.PersonDependents{}
	switch kind {
	case DependentChildren:
		only.Children = deps.Children
	case DependentEmergencyContacts:
		only.EmergencyContacts = deps.EmergencyContacts
	case DependentEducation:
		only.Education = deps.Education
	case DependentExperiences:
		only.Experiences = deps.Experiences
	case DependentSkills:
		only.Skills = deps.Skills
	case DependentMinistryRecords:
		only.MinistryRecords = deps.MinistryRecords
	case DependentAwards:
		only.Awards = deps.Awards
	case DependentEmployment:
		only.Employment = deps.Employment
	case DependentSeminars:
		only.Seminars = deps.Seminars
	}

	if err = insertDependents(ctx, tx, personID, only); err != nil {
		return MapError(err)
	}

	if _, err = tx.ExecContext(ctx, `UPDATE people SET updated_at = NOW() WHERE id = $1`, personID); err != nil {
		return err
	}

	return tx.Commit()
}
