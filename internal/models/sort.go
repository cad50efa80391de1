package models

import "fmt"

// SortDirection is shared by every sortable query.
type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

func ParseSortDirection(s string) (SortDirection, error) {
	d := SortDirection(s)
	switch d {
	case Ascending, Descending:
		return d, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// EoiSortBy names the fields an EOI list can be ordered by.
type EoiSortBy string

const (
	// SortByRecency orders by submission time.
	SortByRecency EoiSortBy = "Recency"
	// SortByJobReferenceID orders lexicographically by the job reference.
	SortByJobReferenceID EoiSortBy = "JobReferenceId"
	// SortByStatus orders by how far the application is through review.
	SortByStatus EoiSortBy = "Status"
)

func ParseEoiSortBy(s string) (EoiSortBy, error) {
	b := EoiSortBy(s)
	switch b {
	case SortByRecency, SortByJobReferenceID, SortByStatus:
		return b, nil
	}
	return "", fmt.Errorf("unknown eoi sort field %q", s)
}
