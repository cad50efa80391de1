package dtos

import (
	"regexp"
	"time"

	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"github.com/watertight-recruitment/recruitment-backend/internal/validation"
)

var (
	jobRefPattern = regexp.MustCompile(`^J[0-9]{4}$`)
	namePattern   = regexp.MustCompile(`^[\p{L}' -]+$`)
)

// Rules shared by the application form and the admin filters.
var (
	jobRefRule = validation.Rule[string]{
		Name:    "Job Reference ID",
		Pattern: jobRefPattern,
	}

	firstNameRule = validation.Rule[string]{
		Name:      "First Name",
		MaxLength: 20,
		Pattern:   namePattern,
	}

	lastNameRule = validation.Rule[string]{
		Name:      "Last Name",
		MaxLength: 20,
		Pattern:   namePattern,
	}

	emailRule = validation.Rule[string]{
		Name:      "Email Address",
		Filter:    validation.FilterEmail,
		MaxLength: 64,
	}

	// 8-12 digits, no spaces.
	phoneRule = validation.Rule[string]{
		Name:      "Phone Number",
		Filter:    validation.FilterDigits,
		MinLength: 8,
		MaxLength: 12,
	}

	stateRule = validation.Rule[models.AustraliaState]{
		Name: "State",
		Mapper: validation.EnumMapper[models.AustraliaState]{
			Parse:  models.ParseAustraliaState,
			Phrase: "is not an Australian state or territory",
		},
	}

	suburbRule = validation.Rule[string]{
		Name:      "Suburb",
		MaxLength: 40,
		Pattern:   namePattern,
	}

	// Australian postcodes are always four digits.
	postcodeRule = validation.Rule[int]{
		Name:      "Postcode",
		Filter:    validation.FilterDigits,
		MinLength: 4,
		MaxLength: 4,
		Mapper:    validation.IntMapper{},
	}

	skillsRule = validation.Rule[string]{
		Name: "Skills",
		Mapper: validation.OneOfMapper{
			Allowed: models.Skills,
			Phrase:  "is not one of the listed skills",
		},
	}

	statusRule = validation.Rule[models.EoiStatus]{
		Name: "Status",
		Mapper: validation.EnumMapper[models.EoiStatus]{
			Parse:  models.ParseEoiStatus,
			Phrase: "is not a valid status.",
		},
	}

	eoiIDRule = validation.Rule[int]{
		Name:   "EOI ID",
		Filter: validation.FilterDigits,
		Mapper: validation.IntMapper{},
	}
)

func required[T any](r validation.Rule[T]) validation.Rule[T] {
	r.Required = true
	return r
}

func named[T any](r validation.Rule[T], name string) validation.Rule[T] {
	r.Name = name
	return r
}

func dateOfBirthRule(now func() time.Time) validation.Rule[time.Time] {
	return validation.Rule[time.Time]{
		Name:   "Date of Birth",
		Mapper: validation.DateMapper{Layout: "02/01/2006", Past: true, Now: now},
	}
}
