package models

import (
	"time"
)

// JobListing is a posted position. The ref is the immutable primary key that
// applicants quote on the application form (e.g. "J0115").
type JobListing struct {
	Ref               string  `gorm:"primaryKey;type:char(5)" json:"ref"`
	Title             string  `gorm:"size:50;not null" json:"title"`
	SalaryLowBracket  int     `gorm:"not null" json:"salary_low_bracket"`
	SalaryHighBracket int     `gorm:"not null" json:"salary_high_bracket"`
	ReportingLine     string  `gorm:"size:50;not null" json:"reporting_line"`
	AboutHTML         string  `gorm:"type:text;not null" json:"about_html"`
	AsideInfoHTML     *string `gorm:"type:text" json:"aside_info_html,omitempty"`

	// Filled from Requirements by the listing service, in insertion order.
	EssentialRequirements []string `gorm:"-" json:"essential_requirements"`
	PreferredRequirements []string `gorm:"-" json:"preferred_requirements"`

	// Owned rows. Removing a listing removes its requirements and every EOI filed against it.
	Requirements []JobRequirement `gorm:"foreignKey:JobRef;references:Ref;constraint:OnDelete:CASCADE" json:"-"`
	Eois         []Eoi            `gorm:"foreignKey:JobReferenceID;references:Ref;constraint:OnDelete:CASCADE" json:"-"`
}

type JobRequirement struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	JobRef string          `gorm:"type:char(5);not null;index" json:"job_ref"`
	Kind   RequirementKind `gorm:"size:16;not null" json:"kind"`
	Text   string          `gorm:"type:text;not null" json:"text"`
}

// Eoi is an expression of interest: one applicant's submission against one listing.
type Eoi struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	JobReferenceID string    `gorm:"type:char(5);not null;index" json:"job_reference_id"`
	Status         EoiStatus `gorm:"size:16;not null;default:New" json:"status"`

	// Unix seconds. Stored as a 64-bit integer rather than a TIMESTAMP column.
	SubmissionTimestamp int64 `gorm:"not null;index" json:"submission_timestamp"`

	FirstName    string     `gorm:"size:32;not null" json:"first_name"`
	LastName     string     `gorm:"size:32;not null" json:"last_name"`
	EmailAddress string     `gorm:"size:64;not null" json:"email_address"`
	PhoneNumber  string     `gorm:"size:20;not null" json:"phone_number"`
	Gender       *string    `gorm:"size:16" json:"gender,omitempty"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`

	State         AustraliaState `gorm:"size:3;not null" json:"state"`
	StreetAddress *string        `gorm:"size:40" json:"street_address,omitempty"`
	Suburb        *string        `gorm:"size:40" json:"suburb,omitempty"`
	Postcode      *int           `json:"postcode,omitempty"`

	CommentsAndOtherSkills *string `gorm:"type:text" json:"comments_and_other_skills,omitempty"`

	Skills []EoiSkill `gorm:"foreignKey:EoiID;constraint:OnDelete:CASCADE" json:"-"`
}

// EoiSkill is one skill an applicant ticked. (EoiID, Skill) is unique.
type EoiSkill struct {
	EoiID uint   `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Skill string `gorm:"primaryKey;size:32" json:"skill"`
}

// SubmittedAt converts the stored unix timestamp.
func (e *Eoi) SubmittedAt() time.Time {
	return time.Unix(e.SubmissionTimestamp, 0).UTC()
}

// SkillNames returns the skills as plain strings, in the order they were loaded.
func (e *Eoi) SkillNames() []string {
	names := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		names = append(names, s.Skill)
	}
	return names
}

// HasSkills reports whether the EOI's skill set is a superset of required.
// An empty requirement matches everything.
func (e *Eoi) HasSkills(required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(e.Skills))
	for _, s := range e.Skills {
		have[s.Skill] = struct{}{}
	}
	for _, r := range required {
		if _, ok := have[r]; !ok {
			return false
		}
	}
	return true
}

// User is an administrator who can reach the management endpoints.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `gorm:"size:32;uniqueIndex;not null" json:"name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`

	Sessions []Session `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Session is a server-side login session keyed by an opaque token.
type Session struct {
	Token     string    `gorm:"primaryKey;size:36"`
	UserID    uint      `gorm:"not null;index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// All lists every table, in dependency order, for migration.
func All() []any {
	return []any{&JobListing{}, &JobRequirement{}, &Eoi{}, &EoiSkill{}, &User{}, &Session{}}
}
