package models

import (
	"strings"
	"time"
)

// People covers both members and ministers; Kind tells them apart. The two
// record types share one lifecycle, one schema, and one set of dependent
// collections.
const (
	PersonKindMember   = "member"
	PersonKindMinister = "minister"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	CivilStatusSingle    = "single"
	CivilStatusMarried   = "married"
	CivilStatusWidowed   = "widowed"
	CivilStatusSeparated = "separated"
	CivilStatusDivorced  = "divorced"
)

type Person struct {
	ID               int       `db:"id" json:"id"`
	Kind             string    `db:"kind" json:"-"`
	FirstName        string    `db:"first_name" json:"firstName"`
	MiddleName       *string   `db:"middle_name" json:"middleName,omitempty"`
	LastName         string    `db:"last_name" json:"lastName"`
	Suffix           *string   `db:"suffix" json:"suffix,omitempty"`
	Nickname         *string   `db:"nickname" json:"nickname,omitempty"`
	Gender           string    `db:"gender" json:"gender"`
	CivilStatus      string    `db:"civil_status" json:"civilStatus"`
	DateOfBirth      *string   `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	PlaceOfBirth     *string   `db:"place_of_birth" json:"placeOfBirth,omitempty"`
	Email            *string   `db:"email" json:"email,omitempty"`
	Telephone        *string   `db:"telephone" json:"telephone,omitempty"`
	Mobile           *string   `db:"mobile" json:"mobile,omitempty"`
	PresentAddress   *string   `db:"present_address" json:"presentAddress,omitempty"`
	PermanentAddress *string   `db:"permanent_address" json:"permanentAddress,omitempty"`
	HomeAddress      *string   `db:"home_address" json:"homeAddress,omitempty"`
	Occupation       *string   `db:"occupation" json:"occupation,omitempty"`
	MinistryStatus   *string   `db:"ministry_status" json:"ministryStatus,omitempty"`
	ChurchID         int       `db:"church_id" json:"churchId"`
	MinistryRankID   *int      `db:"ministry_rank_id" json:"ministryRankId,omitempty"`
	ProfilePicture   *string   `db:"profile_picture" json:"profilePicture,omitempty"`
	SignatureURL     *string   `db:"signature_url" json:"signatureUrl,omitempty"`
	IsActive         bool      `db:"is_active" json:"isActive"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName joins the name parts that are present, in display order.
func (p *Person) FullName() string {
	parts := []string{p.FirstName}
	if p.MiddleName != nil && *p.MiddleName != "" {
		parts = append(parts, *p.MiddleName)
	}
	parts = append(parts, p.LastName)
	if p.Suffix != nil && *p.Suffix != "" {
		parts = append(parts, *p.Suffix)
	}
	return strings.Join(parts, " ")
}

type PersonChild struct {
	ID           int     `db:"id" json:"id"`
	PersonID     int     `db:"person_id" json:"personId"`
	Name         string  `db:"name" json:"name"`
	Gender       *string `db:"gender" json:"gender,omitempty"`
	DateOfBirth  *string `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	PlaceOfBirth *string `db:"place_of_birth" json:"placeOfBirth,omitempty"`
}

type EmergencyContact struct {
	ID            int     `db:"id" json:"id"`
	PersonID      int     `db:"person_id" json:"personId"`
	Name          string  `db:"name" json:"name"`
	Relationship  *string `db:"relationship" json:"relationship,omitempty"`
	Address       *string `db:"address" json:"address,omitempty"`
	ContactNumber *string `db:"contact_number" json:"contactNumber,omitempty"`
}

type EducationRecord struct {
	ID            int     `db:"id" json:"id"`
	PersonID      int     `db:"person_id" json:"personId"`
	School        string  `db:"school" json:"school"`
	Attainment    *string `db:"attainment" json:"attainment,omitempty"`
	Course        *string `db:"course" json:"course,omitempty"`
	YearGraduated *int    `db:"year_graduated" json:"yearGraduated,omitempty"`
}

type MinistryExperience struct {
	ID          int     `db:"id" json:"id"`
	PersonID    int     `db:"person_id" json:"personId"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description,omitempty"`
	YearStarted *int    `db:"year_started" json:"yearStarted,omitempty"`
	YearEnded   *int    `db:"year_ended" json:"yearEnded,omitempty"`
}

type PersonSkill struct {
	ID        int    `db:"id" json:"id"`
	PersonID  int    `db:"person_id" json:"personId"`
	SkillID   int    `db:"skill_id" json:"skillId"`
	SkillName string `db:"skill_name" json:"skillName,omitempty"`
}

type MinistryRecord struct {
	ID             int     `db:"id" json:"id"`
	PersonID       int     `db:"person_id" json:"personId"`
	ChurchLocation string  `db:"church_location" json:"churchLocation"`
	YearStarted    *int    `db:"year_started" json:"yearStarted,omitempty"`
	YearEnded      *int    `db:"year_ended" json:"yearEnded,omitempty"`
	Contribution   *string `db:"contribution" json:"contribution,omitempty"`
}

type AwardRecord struct {
	ID          int    `db:"id" json:"id"`
	PersonID    int    `db:"person_id" json:"personId"`
	Year        *int   `db:"year" json:"year,omitempty"`
	Description string `db:"description" json:"description"`
}

type EmploymentRecord struct {
	ID          int     `db:"id" json:"id"`
	PersonID    int     `db:"person_id" json:"personId"`
	Company     string  `db:"company" json:"company"`
	Position    *string `db:"position" json:"position,omitempty"`
	YearStarted *int    `db:"year_started" json:"yearStarted,omitempty"`
	YearEnded   *int    `db:"year_ended" json:"yearEnded,omitempty"`
}

type SeminarRecord struct {
	ID       int     `db:"id" json:"id"`
	PersonID int     `db:"person_id" json:"personId"`
	Title    string  `db:"title" json:"title"`
	Place    *string `db:"place" json:"place,omitempty"`
	Year     *int    `db:"year" json:"year,omitempty"`
	Hours    *int    `db:"hours" json:"hours,omitempty"`
}

// PersonDependents bundles all nine dependent collections of a person record.
// A nil/empty slice means "none supplied" on create and "none stored" on read.
type PersonDependents struct {
	Children          []PersonChild        `json:"children"`
	EmergencyContacts []EmergencyContact   `json:"emergencyContacts"`
	Education         []EducationRecord    `json:"educationRecords"`
	Experiences       []MinistryExperience `json:"ministryExperiences"`
	Skills            []PersonSkill        `json:"ministrySkills"`
	MinistryRecords   []MinistryRecord     `json:"ministryRecords"`
	Awards            []AwardRecord        `json:"awards"`
	Employment        []EmploymentRecord   `json:"employmentRecords"`
	Seminars          []SeminarRecord      `json:"seminars"`
}

func (d *PersonDependents) Count() int {
	if d == nil {
		return 0
	}

	return len(d.Children) + len(d.EmergencyContacts) + len(d.Education) +
		len(d.Experiences) + len(d.Skills) + len(d.MinistryRecords) +
		len(d.Awards) + len(d.Employment) + len(d.Seminars)
}
