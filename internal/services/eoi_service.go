package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/watertight-recruitment/recruitment-backend/internal/dtos"
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EoiService stores applications and their ticked skills.
type EoiService struct {
	DB *gorm.DB
	// Now stamps new submissions.
	Now func() time.Time
}

func NewEoiService(db *gorm.DB) *EoiService {
	return &EoiService{
		DB:  db,
		Now: time.Now,
	}
}

// Submit stores a validated application and returns its id. The row and its
// skills are written in one transaction, so a failure leaves nothing behind.
// An unknown job reference yields ErrNoSuchJobReference.
func (s *EoiService) Submit(ctx context.Context, sub *dtos.EoiSubmission) (uint, error) {
	eoi := models.Eoi{
		JobReferenceID:         sub.JobReferenceID,
		Status:                 models.StatusNew,
		SubmissionTimestamp:    s.Now().Unix(),
		FirstName:              sub.FirstName,
		LastName:               sub.LastName,
		EmailAddress:           sub.EmailAddress,
		PhoneNumber:            sub.PhoneNumber,
		Gender:                 sub.Gender,
		DateOfBirth:            sub.DateOfBirth,
		State:                  sub.State,
		StreetAddress:          sub.StreetAddress,
		Suburb:                 sub.Suburb,
		Postcode:               sub.Postcode,
		CommentsAndOtherSkills: sub.CommentsAndOtherSkills,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&eoi).Error; err != nil {
			return err
		}
		skills := skillRows(eoi.ID, sub.Skills)
		if len(skills) == 0 {
			return nil
		}
		return tx.Create(&skills).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrNoSuchJobReference
		}
		return 0, fmt.Errorf("submit eoi: %w", err)
	}
	return eoi.ID, nil
}

// skillRows drops repeated skills, keeping the first occurrence.
func skillRows(eoiID uint, skills []string) []models.EoiSkill {
	seen := make(map[string]struct{}, len(skills))
	rows := make([]models.EoiSkill, 0, len(skills))
	for _, skill := range skills {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		rows = append(rows, models.EoiSkill{EoiID: eoiID, Skill: skill})
	}
	return rows
}

// Delete removes one EOI and its skills. Deleting a missing id is not an
// error; the bool reports whether a row was removed.
func (s *EoiService) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.DB.WithContext(ctx).Delete(&models.Eoi{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete eoi %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteForJob removes every EOI filed against ref and returns how many went.
func (s *EoiService) DeleteForJob(ctx context.Context, ref string) (int64, error) {
	res := s.DB.WithContext(ctx).Where("job_reference_id = ?", ref).Delete(&models.Eoi{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete eois for %s: %w", ref, res.Error)
	}
	return res.RowsAffected, nil
}

// SetStatus moves an EOI to any status. It returns false, and changes
// nothing, when no EOI has that id.
func (s *EoiService) SetStatus(ctx context.Context, id uint, status models.EoiStatus) (bool, error) {
	db := s.DB.WithContext(ctx)

	var exists int64
	if err := db.Model(&models.Eoi{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return false, fmt.Errorf("set status of eoi %d: %w", id, err)
	}
	if exists == 0 {
		return false, nil
	}

	if err := db.Model(&models.Eoi{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return false, fmt.Errorf("set status of eoi %d: %w", id, err)
	}
	return true, nil
}

// GetByID returns nil without an error when the EOI does not exist.
func (s *EoiService) GetByID(ctx context.Context, id uint) (*models.Eoi, error) {
	var eoi models.Eoi
	err := s.DB.WithContext(ctx).
		Preload("Skills", orderedSkills).
		First(&eoi, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get eoi %d: %w", id, err)
	}
	return &eoi, nil
}

// Find applies the equality filters in the database, sorts, and then keeps
// only EOIs whose skills include every skill in c.Skills.
func (s *EoiService) Find(ctx context.Context, c dtos.EoiCriteria) ([]models.Eoi, error) {
	q := applyFilters(s.DB.WithContext(ctx).Model(&models.Eoi{}),
		eq("job_reference_id", c.JobReferenceID),
		eq("status", c.Status),
		eq("first_name", c.FirstName),
		eq("last_name", c.LastName),
		eq("email_address", c.EmailAddress),
		eq("phone_number", c.PhoneNumber),
		eq("state", c.State),
		eq("suburb", c.Suburb),
		eq("postcode", c.Postcode),
	)

	switch c.SortBy {
	case models.SortByJobReferenceID:
		q = orderBy(q, "job_reference_id", c.SortDirection, "id")
	case models.SortByStatus:
		q = orderBy(q, statusRankExpr(), c.SortDirection, "id")
	default:
		q = orderBy(q, "submission_timestamp", c.SortDirection, "id")
	}

	var eois []models.Eoi
	if err := q.Preload("Skills", orderedSkills).Find(&eois).Error; err != nil {
		return nil, fmt.Errorf("find eois: %w", err)
	}

	matched := eois[:0]
	for _, e := range eois {
		if e.HasSkills(c.Skills) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (s *EoiService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.Eoi{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count eois: %w", err)
	}
	return n, nil
}

// GroupByStatus buckets EOIs by status in review order, keeping their order.
func GroupByStatus(eois []models.Eoi) map[models.EoiStatus][]models.Eoi {
	groups := make(map[models.EoiStatus][]models.Eoi, len(models.EoiStatuses))
	for _, st := range models.EoiStatuses {
		groups[st] = []models.Eoi{}
	}
	for _, e := range eois {
		groups[e.Status] = append(groups[e.Status], e)
	}
	return groups
}

func orderedSkills(db *gorm.DB) *gorm.DB {
	return db.Order("skill")
}
