package dtos

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestJobCreationRequest_Binding(t *testing.T) {
	valid := JobCreationRequest{
		Ref:                   "J0400",
		Title:                 "Penetration Tester",
		SalaryLowBracket:      90000,
		SalaryHighBracket:     110000,
		ReportingLine:         "Red Team Lead",
		AboutHTML:             "<p>Break things.</p>",
		EssentialRequirements: []string{"OSCP"},
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	tests := []struct {
		name   string
		mutate func(r *JobCreationRequest)
	}{
		{"short ref", func(r *JobCreationRequest) { r.Ref = "J04" }},
		{"punctuated ref", func(r *JobCreationRequest) { r.Ref = "J-400" }},
		{"missing title", func(r *JobCreationRequest) { r.Title = "" }},
		{"negative salary", func(r *JobCreationRequest) { r.SalaryLowBracket = -1 }},
		{"blank requirement", func(r *JobCreationRequest) { r.PreferredRequirements = []string{""} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, binding.Validator.ValidateStruct(&r))
		})
	}
}

func TestJobCreationRequest_ToModel(t *testing.T) {
	aside := "<h3>Note</h3>"
	req := JobCreationRequest{
		Ref:                   "J0400",
		Title:                 "Penetration Tester",
		AsideInfoHTML:         &aside,
		PreferredRequirements: []string{"OSCP"},
	}
	job := req.ToModel()
	assert.Equal(t, "J0400", job.Ref)
	assert.Equal(t, &aside, job.AsideInfoHTML)
	assert.Equal(t, []string{"OSCP"}, job.PreferredRequirements)
	assert.Empty(t, job.Requirements)
}
