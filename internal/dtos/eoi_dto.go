package dtos

import (
	"time"

	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"github.com/watertight-recruitment/recruitment-backend/internal/validation"
)

// EoiSubmission is a validated application form.
type EoiSubmission struct {
	JobReferenceID string
	FirstName      string
	LastName       string
	EmailAddress   string
	PhoneNumber    string
	Gender         *string
	DateOfBirth    *time.Time
	State          models.AustraliaState
	StreetAddress  *string
	Suburb         *string
	Postcode       *int
	Skills         []string

	CommentsAndOtherSkills *string
}

// BindEoiSubmission reads the public application form. Every field is
// evaluated; nil is returned when the form recorded any error.
func BindEoiSubmission(form *validation.Form, now func() time.Time) *EoiSubmission {
	ref := validation.Input(form, "reference", required(jobRefRule))
	firstName := validation.Input(form, "first_name", required(firstNameRule))
	lastName := validation.Input(form, "last_name", required(lastNameRule))
	dob := validation.Input(form, "dob", dateOfBirthRule(now))
	gender := validation.Input(form, "gender", validation.Rule[string]{
		Name: "Gender",
		Mapper: validation.OneOfMapper{
			Allowed: models.Genders,
			Phrase:  "is not one of the listed options",
		},
	})
	street := validation.Input(form, "street_address", validation.Rule[string]{
		Name:      "Street Address",
		MaxLength: 40,
	})
	suburb := validation.Input(form, "suburb", suburbRule)
	state := validation.Input(form, "state", required(stateRule))
	postcode := validation.Input(form, "postcode", postcodeRule)
	email := validation.Input(form, "email", required(emailRule))
	phone := validation.Input(form, "phone", required(phoneRule))
	skills := validation.InputArray(form, "skills", required(skillsRule))
	otherSkills := validation.Input(form, "other_skills", validation.Rule[string]{
		Name:      "Other Skills",
		MaxLength: 2000,
	})

	if form.HasErrors() {
		return nil
	}

	return &EoiSubmission{
		JobReferenceID:         *ref,
		FirstName:              *firstName,
		LastName:               *lastName,
		EmailAddress:           *email,
		PhoneNumber:            *phone,
		Gender:                 gender,
		DateOfBirth:            dob,
		State:                  *state,
		StreetAddress:          street,
		Suburb:                 suburb,
		Postcode:               postcode,
		Skills:                 skills,
		CommentsAndOtherSkills: otherSkills,
	}
}

// EoiCriteria is a sparse set of filters for listing EOIs. Nil fields are
// not applied. Skills keeps EOIs that have every listed skill.
type EoiCriteria struct {
	JobReferenceID *string
	Status         *models.EoiStatus
	FirstName      *string
	LastName       *string
	EmailAddress   *string
	PhoneNumber    *string
	State          *models.AustraliaState
	Suburb         *string
	Postcode       *int
	Skills         []string

	SortBy        models.EoiSortBy
	SortDirection models.SortDirection
}

// BindEoiCriteria reads the dashboard's search query string.
func BindEoiCriteria(form *validation.Form) EoiCriteria {
	c := EoiCriteria{
		JobReferenceID: validation.Input(form, "filterJobRef", jobRefRule),
		Status:         validation.Input(form, "filterStatus", statusRule),
		FirstName:      validation.Input(form, "filterFirstName", firstNameRule),
		LastName:       validation.Input(form, "filterLastName", lastNameRule),
		EmailAddress:   validation.Input(form, "filterEmailAddress", emailRule),
		PhoneNumber:    validation.Input(form, "filterPhoneNumber", phoneRule),
		State:          validation.Input(form, "filterState", stateRule),
		Suburb:         validation.Input(form, "filterSuburb", suburbRule),
		Postcode:       validation.Input(form, "filterPostcode", postcodeRule),
		Skills:         validation.InputArray(form, "filterSkills", skillsRule),
	}

	c.SortBy = validation.InputOr(form, "sortBy", validation.Rule[models.EoiSortBy]{
		Name: "Sort By",
		Mapper: validation.EnumMapper[models.EoiSortBy]{
			Parse:  models.ParseEoiSortBy,
			Phrase: "is not a valid sorting method.",
		},
	}, models.SortByRecency)

	c.SortDirection = validation.InputOr(form, "sortDirection", validation.Rule[models.SortDirection]{
		Name: "Sort Direction",
		Mapper: validation.EnumMapper[models.SortDirection]{
			Parse:  models.ParseSortDirection,
			Phrase: "is not a valid sorting direction.",
		},
	}, models.Descending)

	return c
}

// StatusChange is the admin form for moving an EOI between statuses.
type StatusChange struct {
	EoiID  uint
	Status models.EoiStatus
}

func BindStatusChange(form *validation.Form) *StatusChange {
	id := validation.Input(form, "eoiId", required(eoiIDRule))
	status := validation.Input(form, "status", required(named(statusRule, "Status to set")))
	if form.HasErrors() {
		return nil
	}
	return &StatusChange{EoiID: uint(*id), Status: *status}
}

// EoiDeletion selects either one EOI or every EOI for a job.
type EoiDeletion struct {
	EoiID          *uint
	JobReferenceID *string
}

// BindEoiDeletion returns nil when the form has errors. Both fields may be
// nil; the caller decides what that means.
func BindEoiDeletion(form *validation.Form) *EoiDeletion {
	id := validation.Input(form, "eoiId", eoiIDRule)
	ref := validation.Input(form, "reference", jobRefRule)
	if form.HasErrors() {
		return nil
	}
	d := &EoiDeletion{JobReferenceID: ref}
	if id != nil {
		v := uint(*id)
		d.EoiID = &v
	}
	return d
}

// Credentials is the login form.
type Credentials struct {
	Name     string
	Password string
}

func BindCredentials(form *validation.Form) *Credentials {
	name := validation.Input(form, "name", validation.Rule[string]{Name: "User Name", Required: true, MaxLength: 32})
	password := validation.Input(form, "password", validation.Rule[string]{Name: "Password", Required: true})
	if form.HasErrors() {
		return nil
	}
	return &Credentials{Name: *name, Password: *password}
}
