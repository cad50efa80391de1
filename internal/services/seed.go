package services

import (
	"context"

	"github.com/watertight-recruitment/recruitment-backend/internal/models"
)

func strPtr(s string) *string { return &s }

// DefaultJobs are the listings a fresh site starts with.
func DefaultJobs() []models.JobListing {
	return []models.JobListing{
		{
			Ref:               "J0115",
			Title:             "Security Analyst",
			SalaryLowBracket:  80000,
			SalaryHighBracket: 100000,
			ReportingLine:     "Analyst Team Lead",
			AboutHTML: "As a security analyst, you will work with our IT team to analyse and respond to emerging " +
				"and existing threats. You will be tasked with monitoring our existing clients' projects " +
				"and ensuring security. We ask you to keep up with modern and emerging attack vectors and " +
				"potential vulnerabilities to pre-empt attacks.",
			EssentialRequirements: []string{
				"A relevant degree, or equivalent certification or training",
				"Strong previous experience with cybersecurity and project maintenance",
				"Knowledge of a range of languages and computer systems",
			},
			PreferredRequirements: []string{
				"Problem solving skills and an analytical focus",
				"Understanding of legal security requirements",
			},
		},
		{
			Ref:               "J0201",
			Title:             "Incident Response Specialist",
			SalaryLowBracket:  120000,
			SalaryHighBracket: 160000,
			ReportingLine:     "Incident Team Coordinator",
			AboutHTML: "As an Incident Response Specialist, you will join our threat strike team and work on " +
				"mitigating time-critical active threats. You will work with our analysts and clients to " +
				"respond to cyberattacks as they happen, and assist in recovery afterwards. When there " +
				"are no current incidents, you will be expected to proactively seek out new or advanced " +
				"threats, which may evade regular detection.",
			AsideInfoHTML: strPtr("<h3>Strike Teams</h3>" +
				"<p>If you wish to be considered for our strike teams that require security clearance, " +
				`please <a href="mailto:hiring@watertightcybersec.com">contact us</a></p>`),
			EssentialRequirements: []string{
				"Consistent and strong history of field-based cybersecurity response",
				"Deep understanding of current, deprecated, and potential attack vectors",
				"Availability to be on-call for emergencies",
			},
			PreferredRequirements: []string{
				"Industry certifications in cybersecurity",
				"Skills in automation and event detection",
			},
		},
		{
			Ref:               "J0302",
			Title:             "Secure Culture Coordinator",
			SalaryLowBracket:  100000,
			SalaryHighBracket: 120000,
			ReportingLine:     "Chief Communications Officer",
			AboutHTML: "As our Secure Culture Coordinator, you will work with our clients to ensure that their " +
				"organisation has good individual-level cybersecurity practices. You will be responsible " +
				"for coordinating outreach, and ensuring that every employee at the clients' business " +
				"is aware of common attack vectors like phishing.",
			EssentialRequirements: []string{
				"Understanding of common cyber attacks and how to avoid vulnerability",
				"People skills and an enthusiasm for communication",
				"Demonstrated history of coordination or outreach measures",
			},
			PreferredRequirements: []string{
				"A relevant degree in either cybersecurity or human resources",
				"Knowledge of attack simulations and their ethical use",
			},
		},
	}
}

// SeedDefaultJobs inserts DefaultJobs when there are no listings yet and
// reports how many were added.
func SeedDefaultJobs(ctx context.Context, jobs *JobService) (int, error) {
	n, err := jobs.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	defaults := DefaultJobs()
	for i := range defaults {
		if err := jobs.CreateJob(ctx, &defaults[i]); err != nil {
			return i, err
		}
	}
	return len(defaults), nil
}
