package engine

import (
	"github.com/ukydev/moto-maintenance/internal/models"
)

// LastPerformed returns the odometer value of the most recent service record
// referencing ruleID, by creation timestamp. The second return value is false
// when the rule has never been serviced. Records with equal timestamps are
// resolved in favor of the later one in the slice.
func LastPerformed(history []models.ServiceRecord, ruleID string) (int, bool) {
	var (
		bestOdo int
		found   bool
		bestAt  = int64(0)
	)
	for _, rec := range history {
		ref, ok := rec.RuleRef()
		if !ok || ref != ruleID {
			continue
		}
		at := rec.CreatedAt.UnixNano()
		if !found || at >= bestAt {
			bestOdo = rec.PerformedAtOdo
			bestAt = at
			found = true
		}
	}
	return bestOdo, found
}
