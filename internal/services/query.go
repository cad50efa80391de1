package services

import (
	"fmt"

	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"gorm.io/gorm"
)

// filter is one optional equality predicate. Unset filters are skipped.
type filter struct {
	column string
	value  any
	set    bool
}

func eq[T any](column string, v *T) filter {
	if v == nil {
		return filter{column: column}
	}
	return filter{column: column, value: *v, set: true}
}

// applyFilters ANDs every set filter onto the query.
func applyFilters(q *gorm.DB, filters ...filter) *gorm.DB {
	for _, f := range filters {
		if f.set {
			q = q.Where(fmt.Sprintf("%s = ?", f.column), f.value)
		}
	}
	return q
}

// orderBy sorts by expr and then by tiebreak, both in dir, so flipping the
// direction reverses the result exactly.
func orderBy(q *gorm.DB, expr string, dir models.SortDirection, tiebreak string) *gorm.DB {
	if dir != models.Ascending {
		dir = models.Descending
	}
	q = q.Order(fmt.Sprintf("%s %s", expr, dir))
	if tiebreak != "" && tiebreak != expr {
		q = q.Order(fmt.Sprintf("%s %s", tiebreak, dir))
	}
	return q
}

// statusRankExpr orders statuses by review progression instead of lexically.
func statusRankExpr() string {
	expr := "CASE status"
	for _, s := range models.EoiStatuses {
		expr += fmt.Sprintf(" WHEN '%s' THEN %d", s, s.Rank())
	}
	return expr + fmt.Sprintf(" ELSE %d END", models.EoiStatus("").Rank())
}
