package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
)

func refs(jobs []models.JobListing) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Ref)
	}
	return out
}

func TestJobService_SeedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newTestDB(t))

	added, err := SeedDefaultJobs(ctx, svc)
	require.NoError(t, err)
	assert.Zero(t, added)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestJobService_GetByRef(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newTestDB(t))

	job, err := svc.GetByRef(ctx, "J0201")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Incident Response Specialist", job.Title)
	assert.Equal(t, []string{
		"Consistent and strong history of field-based cybersecurity response",
		"Deep understanding of current, deprecated, and potential attack vectors",
		"Availability to be on-call for emergencies",
	}, job.EssentialRequirements)
	assert.Equal(t, []string{
		"Industry certifications in cybersecurity",
		"Skills in automation and event detection",
	}, job.PreferredRequirements)
	require.NotNil(t, job.AsideInfoHTML)

	missing, err := svc.GetByRef(ctx, "J9999")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJobService_CreateJob(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newTestDB(t))

	job := &models.JobListing{
		Ref:                   "J0400",
		Title:                 "Penetration Tester",
		SalaryLowBracket:      90000,
		SalaryHighBracket:     110000,
		ReportingLine:         "Red Team Lead",
		AboutHTML:             "Break things before attackers do.",
		PreferredRequirements: []string{"OSCP", "Bug bounty history"},
	}
	require.NoError(t, svc.CreateJob(ctx, job))

	got, err := svc.GetByRef(ctx, "J0400")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.EssentialRequirements)
	assert.Equal(t, []string{"OSCP", "Bug bounty history"}, got.PreferredRequirements)
	assert.Nil(t, got.AsideInfoHTML)

	err = svc.CreateJob(ctx, &models.JobListing{Ref: "J0400", Title: "Again", ReportingLine: "x", AboutHTML: "x"})
	assert.ErrorIs(t, err, ErrJobExists)
}

func TestJobService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newTestDB(t))

	tests := []struct {
		name   string
		search *string
		want   []string
	}{
		{"no search", nil, []string{"J0115", "J0201", "J0302"}},
		{"blank search", ptr(" \t "), []string{"J0115", "J0201", "J0302"}},
		{"title word", ptr("incident"), []string{"J0201"}},
		{"description word", ptr("Phishing"), []string{"J0302"}},
		{"any word matches", ptr("phishing, incident!"), []string{"J0201", "J0302"}},
		{"no match", ptr("zebra"), []string{}},
		{"only punctuation", ptr("  %%  "), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := svc.GetAll(ctx, tt.search)
			require.NoError(t, err)
			assert.Equal(t, tt.want, refs(jobs))
		})
	}

	all, err := svc.GetAll(ctx, nil)
	require.NoError(t, err)
	for _, j := range all {
		assert.NotEmpty(t, j.EssentialRequirements, j.Ref)
		assert.NotEmpty(t, j.PreferredRequirements, j.Ref)
	}
}

func TestJobService_UnknownRequirementKind(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newTestDB(t))

	require.NoError(t, svc.DB.Create(&models.JobRequirement{JobRef: "J0115", Kind: "Optional", Text: "Bring snacks"}).Error)

	_, err := svc.GetByRef(ctx, "J0115")
	assert.ErrorContains(t, err, `unknown requirement kind "Optional"`)
	_, err = svc.GetAll(ctx, nil)
	assert.Error(t, err)

	other, err := svc.GetByRef(ctx, "J0201")
	require.NoError(t, err)
	assert.NotNil(t, other)
}

func TestSearchTerms(t *testing.T) {
	assert.Equal(t, []string{"secure", "culture"}, searchTerms("  Secure--CULTURE "))
	assert.Empty(t, searchTerms("%_%"))
	assert.Equal(t, []string{"it", "team"}, searchTerms("IT team"))
}
