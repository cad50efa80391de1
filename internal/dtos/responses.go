package dtos

import (
	"time"

	"github.com/watertight-recruitment/recruitment-backend/internal/models"
)

// EoiResponse is how an EOI is shown on the dashboard.
type EoiResponse struct {
	models.Eoi
	Skills      []string  `json:"skills"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewEoiResponse(e *models.Eoi) EoiResponse {
	return EoiResponse{Eoi: *e, Skills: e.SkillNames(), SubmittedAt: e.SubmittedAt()}
}

func NewEoiResponses(eois []models.Eoi) []EoiResponse {
	out := make([]EoiResponse, 0, len(eois))
	for i := range eois {
		out = append(out, NewEoiResponse(&eois[i]))
	}
	return out
}

// EoiListResponse is the dashboard listing, also bucketed by status.
type EoiListResponse struct {
	Count    int                                `json:"count"`
	Eois     []EoiResponse                      `json:"eois"`
	ByStatus map[models.EoiStatus][]EoiResponse `json:"by_status"`
}

// ValidationErrorResponse lists every problem with a submitted form.
type ValidationErrorResponse struct {
	Errors []string          `json:"errors"`
	Fields map[string]string `json:"fields"`
}
