package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobExists = errors.New("job listing already exists")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// CreateJob inserts the listing and then its requirements, essential first,
// each group in the order given.
func (s *JobService) CreateJob(ctx context.Context, job *models.JobListing) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(job).Error; err != nil {
			return err
		}
		reqs := requirementRows(job)
		if len(reqs) == 0 {
			return nil
		}
		return tx.Create(&reqs).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return ErrJobExists
		}
		return fmt.Errorf("create job %s: %w", job.Ref, err)
	}
	return nil
}

func requirementRows(job *models.JobListing) []models.JobRequirement {
	rows := make([]models.JobRequirement, 0, len(job.EssentialRequirements)+len(job.PreferredRequirements))
	for _, text := range job.EssentialRequirements {
		rows = append(rows, models.JobRequirement{JobRef: job.Ref, Kind: models.RequirementEssential, Text: text})
	}
	for _, text := range job.PreferredRequirements {
		rows = append(rows, models.JobRequirement{JobRef: job.Ref, Kind: models.RequirementPreferred, Text: text})
	}
	return rows
}

// GetByRef returns nil without an error when no listing has that ref.
func (s *JobService) GetByRef(ctx context.Context, ref string) (*models.JobListing, error) {
	var job models.JobListing
	err := s.DB.WithContext(ctx).
		Preload("Requirements", orderedRequirements).
		Where("ref = ?", ref).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", ref, err)
	}
	if err := hydrate(&job); err != nil {
		return nil, fmt.Errorf("get job %s: %w", ref, err)
	}
	return &job, nil
}

// GetAll lists every listing by ref. A non-blank search narrows the list to
// listings whose title or description mention any of its words, best match
// first where the database can rank.
func (s *JobService) GetAll(ctx context.Context, search *string) ([]models.JobListing, error) {
	q := s.DB.WithContext(ctx).Preload("Requirements", orderedRequirements)

	if search != nil && strings.TrimSpace(*search) != "" {
		terms := searchTerms(*search)
		if len(terms) == 0 {
			return []models.JobListing{}, nil
		}
		q = s.matchTerms(q, terms)
	}

	var jobs []models.JobListing
	if err := q.Order("ref").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	for i := range jobs {
		if err := hydrate(&jobs[i]); err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
	}
	return jobs, nil
}

const jobDocument = "to_tsvector('english', title || ' ' || about_html)"

func (s *JobService) matchTerms(q *gorm.DB, terms []string) *gorm.DB {
	if s.DB.Dialector.Name() == "postgres" {
		tsq := strings.Join(terms, " | ")
		return q.
			Where(jobDocument+" @@ to_tsquery('english', ?)", tsq).
			Order(clause.OrderBy{Expression: clause.Expr{
				SQL:                "ts_rank(" + jobDocument + ", to_tsquery('english', ?)) DESC",
				Vars:               []any{tsq},
				WithoutParentheses: true,
			}})
	}

	// No full-text index elsewhere: any term appearing in the title or description matches.
	conds := make([]string, 0, len(terms))
	args := make([]any, 0, 2*len(terms))
	for _, t := range terms {
		conds = append(conds, "(LOWER(title) LIKE ? OR LOWER(about_html) LIKE ?)")
		args = append(args, "%"+t+"%", "%"+t+"%")
	}
	return q.Where(strings.Join(conds, " OR "), args...)
}

// searchTerms lowercases the query and splits it into words.
func searchTerms(query string) []string {
	return strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (s *JobService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.JobListing{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

// hydrate splits the loaded requirement rows into the two ordered lists.
func hydrate(job *models.JobListing) error {
	job.EssentialRequirements = []string{}
	job.PreferredRequirements = []string{}
	for _, r := range job.Requirements {
		kind, err := models.ParseRequirementKind(string(r.Kind))
		if err != nil {
			return fmt.Errorf("requirement %d: %w", r.ID, err)
		}
		switch kind {
		case models.RequirementEssential:
			job.EssentialRequirements = append(job.EssentialRequirements, r.Text)
		case models.RequirementPreferred:
			job.PreferredRequirements = append(job.PreferredRequirements, r.Text)
		}
	}
	return nil
}

func orderedRequirements(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
