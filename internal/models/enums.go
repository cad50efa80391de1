package models

import "fmt"

// EoiStatus is where an application sits in the review process.
// Tokens round-trip exactly through the database and URL query parameters.
type EoiStatus string

const (
	StatusNew     EoiStatus = "New"
	StatusCurrent EoiStatus = "Current"
	StatusFinal   EoiStatus = "Final"
)

// EoiStatuses lists the statuses in review order.
var EoiStatuses = []EoiStatus{StatusNew, StatusCurrent, StatusFinal}

// ParseEoiStatus converts a raw token to an EoiStatus.
func ParseEoiStatus(s string) (EoiStatus, error) {
	st := EoiStatus(s)
	switch st {
	case StatusNew, StatusCurrent, StatusFinal:
		return st, nil
	}
	return "", fmt.Errorf("unknown eoi status %q", s)
}

// Rank is the position of the status in review order, starting at 0.
func (s EoiStatus) Rank() int {
	for i, v := range EoiStatuses {
		if v == s {
			return i
		}
	}
	return len(EoiStatuses)
}

type AustraliaState string

const (
	StateVIC AustraliaState = "VIC"
	StateNSW AustraliaState = "NSW"
	StateQLD AustraliaState = "QLD"
	StateNT  AustraliaState = "NT"
	StateWA  AustraliaState = "WA"
	StateSA  AustraliaState = "SA"
	StateTAS AustraliaState = "TAS"
	StateACT AustraliaState = "ACT"
)

var AustraliaStates = []AustraliaState{StateVIC, StateNSW, StateQLD, StateNT, StateWA, StateSA, StateTAS, StateACT}

func ParseAustraliaState(s string) (AustraliaState, error) {
	for _, st := range AustraliaStates {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown australian state %q", s)
}

// RequirementKind tags a listing requirement row.
type RequirementKind string

const (
	RequirementEssential RequirementKind = "Essential"
	RequirementPreferred RequirementKind = "Preferred"
)

func ParseRequirementKind(s string) (RequirementKind, error) {
	k := RequirementKind(s)
	switch k {
	case RequirementEssential, RequirementPreferred:
		return k, nil
	}
	return "", fmt.Errorf("unknown requirement kind %q", s)
}

// Skills offered as checkboxes on the application form.
var Skills = []string{
	"soc_siem",
	"incident_response",
	"vuln_mgmt",
	"cloud_security",
	"iam_mfa",
	"network_security",
	"scripting",
	"other",
}

// Genders accepted on the application form.
var Genders = []string{"female", "male", "nonbinary", "prefer_not"}
