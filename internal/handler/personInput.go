package handler

import (
	"fmt"
	"time"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/validator"
)

// Field length ceilings protect storage and spreadsheet export formatting.
const (
	maxNameLength    = 100
	maxAddressLength = 500
	maxTextLength    = 2000
	minRecordYear    = 1900
	maxRecordYear    = 2100
)

type childInput struct {
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth"`
}

type emergencyContactInput struct {
	Name          string `json:"name"`
	Relationship  string `json:"relationship"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

type educationInput struct {
	School        string `json:"school"`
	Attainment    string `json:"attainment"`
	Course        string `json:"course"`
	YearGraduated int    `json:"yearGraduated"`
}

type experienceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	YearStarted int    `json:"yearStarted"`
	YearEnded   int    `json:"yearEnded"`
}

type ministryRecordInput struct {
	ChurchLocation string `json:"churchLocation"`
	YearStarted    int    `json:"yearStarted"`
	YearEnded      int    `json:"yearEnded"`
	Contribution   string `json:"contribution"`
}

type awardInput struct {
	Year        int    `json:"year"`
	Description string `json:"description"`
}

type employmentInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	YearStarted int    `json:"yearStarted"`
	YearEnded   int    `json:"yearEnded"`
}

type seminarInput struct {
	Title string `json:"title"`
	Place string `json:"place"`
	Year  int    `json:"year"`
	Hours int    `json:"hours"`
}

type personInput struct {
	FirstName        string `json:"firstName"`
	MiddleName       string `json:"middleName"`
	LastName         string `json:"lastName"`
	Suffix           string `json:"suffix"`
	Nickname         string `json:"nickname"`
	Gender           string `json:"gender"`
	CivilStatus      string `json:"civilStatus"`
	DateOfBirth      string `json:"dateOfBirth"`
	PlaceOfBirth     string `json:"placeOfBirth"`
	Email            string `json:"email"`
	Telephone        string `json:"telephone"`
	Mobile           string `json:"mobile"`
	PresentAddress   string `json:"presentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	HomeAddress      string `json:"homeAddress"`
	Occupation       string `json:"occupation"`
	MinistryStatus   string `json:"ministryStatus"`
	ChurchID         int    `json:"churchId"`
	MinistryRankID   int    `json:"ministryRankId"`
	ProfilePicture   string `json:"profilePicture"`
	SignatureURL     string `json:"signatureUrl"`
	IsActive         *bool  `json:"isActive"`

	Children          []childInput            `json:"children"`
	EmergencyContacts []emergencyContactInput `json:"emergencyContacts"`
	Education         []educationInput        `json:"educationRecords"`
	Experiences       []experienceInput       `json:"ministryExperiences"`
	SkillIDs          []int                   `json:"ministrySkillIds"`
	MinistryRecords   []ministryRecordInput   `json:"ministryRecords"`
	Awards            []awardInput            `json:"awards"`
	Employment        []employmentInput       `json:"employmentRecords"`
	Seminars          []seminarInput          `json:"seminars"`
}

// validate checks the parent fields and every supplied dependent element.
// Errors carry the JSON field path, indexed for collection elements, so the
// admin form can highlight the exact offending input. Nothing is written
// until this passes.
func (input *personInput) validate(v *validator.Validator) {
	v.CheckField(validator.NotBlank(input.FirstName), "firstName", "First name is required")
	v.CheckField(validator.MaxRunes(input.FirstName, maxNameLength), "firstName", "First name is too long")
	v.CheckField(validator.MaxRunes(input.MiddleName, maxNameLength), "middleName", "Middle name is too long")
	v.CheckField(validator.NotBlank(input.LastName), "lastName", "Last name is required")
	v.CheckField(validator.MaxRunes(input.LastName, maxNameLength), "lastName", "Last name is too long")
	v.CheckField(validator.MaxRunes(input.Suffix, 20), "suffix", "Suffix is too long")
	v.CheckField(validator.MaxRunes(input.Nickname, maxNameLength), "nickname", "Nickname is too long")

	v.CheckField(validator.NotBlank(input.Gender), "gender", "Gender is required")
	if input.Gender != "" {
		v.CheckField(validator.In(input.Gender, models.GenderMale, models.GenderFemale),
			"gender", "Gender must be male or female")
	}

	v.CheckField(validator.NotBlank(input.CivilStatus), "civilStatus", "Civil status is required")
	if input.CivilStatus != "" {
		v.CheckField(validator.In(input.CivilStatus,
			models.CivilStatusSingle, models.CivilStatusMarried, models.CivilStatusWidowed,
			models.CivilStatusSeparated, models.CivilStatusDivorced),
			"civilStatus", "Civil status must be single, married, widowed, separated or divorced")
	}

	if input.DateOfBirth != "" {
		_, err := time.Parse("2006-01-02", input.DateOfBirth)
		v.CheckField(err == nil, "dateOfBirth", "Date of birth must be in YYYY-MM-DD format")
	}

	if input.Email != "" {
		v.CheckField(validator.IsEmail(input.Email), "email", "Must be a valid email address")
	}

	v.CheckField(validator.MaxRunes(input.PresentAddress, maxAddressLength), "presentAddress", "Present address is too long")
	v.CheckField(validator.MaxRunes(input.PermanentAddress, maxAddressLength), "permanentAddress", "Permanent address is too long")
	v.CheckField(validator.MaxRunes(input.HomeAddress, maxAddressLength), "homeAddress", "Home address is too long")
	v.CheckField(validator.MaxRunes(input.Occupation, maxNameLength), "occupation", "Occupation is too long")

	v.CheckField(input.ChurchID > 0, "churchId", "Owning church is required")
	v.CheckField(input.MinistryRankID >= 0, "ministryRankId", "Ministry rank reference is invalid")

	input.validateDependents(v)
}

func (input *personInput) validateDependents(v *validator.Validator) {
	for i, child := range input.Children {
		field := func(name string) string { return fmt.Sprintf("children[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(child.Name), field("name"), "Child name is required")
		v.CheckField(validator.MaxRunes(child.Name, maxNameLength), field("name"), "Child name is too long")
		if child.Gender != "" {
			v.CheckField(validator.In(child.Gender, models.GenderMale, models.GenderFemale),
				field("gender"), "Gender must be male or female")
		}
		if child.DateOfBirth != "" {
			_, err := time.Parse("2006-01-02", child.DateOfBirth)
			v.CheckField(err == nil, field("dateOfBirth"), "Date of birth must be in YYYY-MM-DD format")
		}
	}

	for i, contact := range input.EmergencyContacts {
		field := func(name string) string { return fmt.Sprintf("emergencyContacts[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(contact.Name), field("name"), "Contact name is required")
		v.CheckField(validator.MaxRunes(contact.Name, maxNameLength), field("name"), "Contact name is too long")
		v.CheckField(validator.MaxRunes(contact.Address, maxAddressLength), field("address"), "Address is too long")
	}

	for i, education := range input.Education {
		field := func(name string) string { return fmt.Sprintf("educationRecords[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(education.School), field("school"), "School is required")
		v.CheckField(validator.MaxRunes(education.School, maxNameLength+100), field("school"), "School name is too long")
		if education.YearGraduated != 0 {
			v.CheckField(validator.Between(education.YearGraduated, minRecordYear, maxRecordYear),
				field("yearGraduated"), "Year graduated is out of range")
		}
	}

	for i, experience := range input.Experiences {
		field := func(name string) string { return fmt.Sprintf("ministryExperiences[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(experience.Title), field("title"), "Title is required")
		v.CheckField(validator.MaxRunes(experience.Description, maxTextLength), field("description"), "Description is too long")
		checkYearRange(v, field, experience.YearStarted, experience.YearEnded)
	}

	for i, skillID := range input.SkillIDs {
		v.CheckField(skillID > 0, fmt.Sprintf("ministrySkillIds[%d]", i), "Skill reference is invalid")
	}
	v.CheckField(validator.NoDuplicates(input.SkillIDs), "ministrySkillIds", "Duplicate skill references")

	for i, record := range input.MinistryRecords {
		field := func(name string) string { return fmt.Sprintf("ministryRecords[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(record.ChurchLocation), field("churchLocation"), "Church location is required")
		v.CheckField(validator.MaxRunes(record.Contribution, maxTextLength), field("contribution"), "Contribution is too long")
		checkYearRange(v, field, record.YearStarted, record.YearEnded)
	}

	for i, award := range input.Awards {
		field := func(name string) string { return fmt.Sprintf("awards[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(award.Description), field("description"), "Description is required")
		v.CheckField(validator.MaxRunes(award.Description, maxTextLength), field("description"), "Description is too long")
		if award.Year != 0 {
			v.CheckField(validator.Between(award.Year, minRecordYear, maxRecordYear), field("year"), "Year is out of range")
		}
	}

	for i, employment := range input.Employment {
		field := func(name string) string { return fmt.Sprintf("employmentRecords[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(employment.Company), field("company"), "Company is required")
		v.CheckField(validator.MaxRunes(employment.Company, maxNameLength+100), field("company"), "Company name is too long")
		checkYearRange(v, field, employment.YearStarted, employment.YearEnded)
	}

	for i, seminar := range input.Seminars {
		field := func(name string) string { return fmt.Sprintf("seminars[%d].%s", i, name) }
		v.CheckField(validator.NotBlank(seminar.Title), field("title"), "Title is required")
		if seminar.Year != 0 {
			v.CheckField(validator.Between(seminar.Year, minRecordYear, maxRecordYear), field("year"), "Year is out of range")
		}
		v.CheckField(seminar.Hours >= 0, field("hours"), "Hours must not be negative")
	}
}

func checkYearRange(v *validator.Validator, field func(string) string, started, ended int) {
	if started != 0 {
		v.CheckField(validator.Between(started, minRecordYear, maxRecordYear), field("yearStarted"), "Year started is out of range")
	}
	if ended != 0 {
		v.CheckField(validator.Between(ended, minRecordYear, maxRecordYear), field("yearEnded"), "Year ended is out of range")
		if started != 0 {
			v.CheckField(ended >= started, field("yearEnded"), "Year ended must not be before year started")
		}
	}
}

// toModels maps the validated input onto storage structs. Blank optional
// strings become NULLs rather than empty text.
func (input *personInput) toModels(kind string) (*models.Person, *models.PersonDependents) {
	person := &models.Person{
		Kind:             kind,
		FirstName:        input.FirstName,
		MiddleName:       optString(input.MiddleName),
		LastName:         input.LastName,
		Suffix:           optString(input.Suffix),
		Nickname:         optString(input.Nickname),
		Gender:           input.Gender,
		CivilStatus:      input.CivilStatus,
		DateOfBirth:      optString(input.DateOfBirth),
		PlaceOfBirth:     optString(input.PlaceOfBirth),
		Email:            optString(input.Email),
		Telephone:        optString(input.Telephone),
		Mobile:           optString(input.Mobile),
		PresentAddress:   optString(input.PresentAddress),
		PermanentAddress: optString(input.PermanentAddress),
		HomeAddress:      optString(input.HomeAddress),
		Occupation:       optString(input.Occupation),
		MinistryStatus:   optString(input.MinistryStatus),
		ChurchID:         input.ChurchID,
		MinistryRankID:   optInt(input.MinistryRankID),
		ProfilePicture:   optString(input.ProfilePicture),
		SignatureURL:     optString(input.SignatureURL),
		IsActive:         true,
	}

	if input.IsActive != nil {
		person.IsActive = *input.IsActive
	}

	deps := &models.PersonDependents{}

	for _, child := range input.Children {
		deps.Children = append(deps.Children, models.PersonChild{
			Name:         child.Name,
			Gender:       optString(child.Gender),
			DateOfBirth:  optString(child.DateOfBirth),
			PlaceOfBirth: optString(child.PlaceOfBirth),
		})
	}

	for _, contact := range input.EmergencyContacts {
		deps.EmergencyContacts = append(deps.EmergencyContacts, models.EmergencyContact{
			Name:          contact.Name,
			Relationship:  optString(contact.Relationship),
			Address:       optString(contact.Address),
			ContactNumber: optString(contact.ContactNumber),
		})
	}

	for _, education := range input.Education {
		deps.Education = append(deps.Education, models.EducationRecord{
			School:        education.School,
			Attainment:    optString(education.Attainment),
			Course:        optString(education.Course),
			YearGraduated: optInt(education.YearGraduated),
		})
	}

	for _, experience := range input.Experiences {
		deps.Experiences = append(deps.Experiences, models.MinistryExperience{
			Title:       experience.Title,
			Description: optString(experience.Description),
			YearStarted: optInt(experience.YearStarted),
			YearEnded:   optInt(experience.YearEnded),
		})
	}

	for _, skillID := range input.SkillIDs {
		deps.Skills = append(deps.Skills, models.PersonSkill{SkillID: skillID})
	}

	for _, record := range input.MinistryRecords {
		deps.MinistryRecords = append(deps.MinistryRecords, models.MinistryRecord{
			ChurchLocation: record.ChurchLocation,
			YearStarted:    optInt(record.YearStarted),
			YearEnded:      optInt(record.YearEnded),
			Contribution:   optString(record.Contribution),
		})
	}

	for _, award := range input.Awards {
		deps.Awards = append(deps.Awards, models.AwardRecord{
			Year:        optInt(award.Year),
			Description: award.Description,
		})
	}

	for _, employment := range input.Employment {
		deps.Employment = append(deps.Employment, models.EmploymentRecord{
			Company:     employment.Company,
			Position:    optString(employment.Position),
			YearStarted: optInt(employment.YearStarted),
			YearEnded:   optInt(employment.YearEnded),
		})
	}

	for _, seminar := range input.Seminars {
		deps.Seminars = append(deps.Seminars, models.SeminarRecord{
			Title: seminar.Title,
			Place: optString(seminar.Place),
			Year:  optInt(seminar.Year),
			Hours: optInt(seminar.Hours),
		})
	}

	return person, deps
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
