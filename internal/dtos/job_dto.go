package dtos

import (
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
)

// JobCreationRequest is the admin JSON body for a new listing.
type JobCreationRequest struct {
	Ref               string `json:"ref" binding:"required,len=5,alphanum"`
	Title             string `json:"title" binding:"required,max=50"`
	SalaryLowBracket  int    `json:"salary_low_bracket" binding:"gte=0"`
	SalaryHighBracket int    `json:"salary_high_bracket" binding:"gte=0"`
	ReportingLine     string `json:"reporting_line" binding:"required,max=50"`
	AboutHTML         string `json:"about_html" binding:"required"`

	// Optional Fields
	AsideInfoHTML         *string  `json:"aside_info_html"`
	EssentialRequirements []string `json:"essential_requirements" binding:"dive,required"`
	PreferredRequirements []string `json:"preferred_requirements" binding:"dive,required"`
}

func (r *JobCreationRequest) ToModel() *models.JobListing {
	return &models.JobListing{
		Ref:                   r.Ref,
		Title:                 r.Title,
		SalaryLowBracket:      r.SalaryLowBracket,
		SalaryHighBracket:     r.SalaryHighBracket,
		ReportingLine:         r.ReportingLine,
		AboutHTML:             r.AboutHTML,
		AsideInfoHTML:         r.AsideInfoHTML,
		EssentialRequirements: r.EssentialRequirements,
		PreferredRequirements: r.PreferredRequirements,
	}
}

// JobListResponse is returned by the public listing endpoint.
type JobListResponse struct {
	Count int64               `json:"count"`
	Jobs  []models.JobListing `json:"jobs"`
}
