package engine

import (
	"sort"

	"github.com/ukydev/moto-maintenance/internal/models"
)

const (
	templateNoteFallback = "Per manufacturer recommendation"
	personalNote         = "Your personal schedule"
)

// BuildSchedule computes the full schedule view: one item per effective
// template rule and per personal rule, floor-baseline policy throughout.
// Personal rules are computed as never serviced even when matching history
// exists; the history lookup only applies to template rules. Distance-tracked
// items come first, soonest due leading; interval-less items keep their
// original order at the end.
func BuildSchedule(templateRules []models.EffectiveRule, personalRules []models.PersonalRule, history []models.ServiceRecord, currentOdo int) ([]models.ScheduleItem, error) {
	if currentOdo < 0 {
		return nil, ErrInvalidOdometer
	}

	items := make([]models.ScheduleItem, 0, len(templateRules)+len(personalRules))

	for _, rule := range templateRules {
		lastOdo, serviced := LastPerformed(history, rule.ID)
		due, err := ComputeDue(rule, lastOdo, serviced, currentOdo, PolicyScheduleFloor)
		if err != nil {
			continue
		}
		note := rule.Note
		if note == "" {
			note = templateNoteFallback
		}
		items = append(items, models.ScheduleItem{Rule: rule, Due: due, Note: note})
	}

	for _, personal := range personalRules {
		rule := FromPersonal(personal)
		due, err := ComputeDue(rule, 0, false, currentOdo, PolicyScheduleFloor)
		if err != nil {
			continue
		}
		items = append(items, models.ScheduleItem{Rule: rule, Due: due, Note: personalNote})
	}

	sort.SliceStable(items, func(i, j int) bool {
		iTracked := IsDistanceTracked(items[i].Rule.IntervalKm)
		jTracked := IsDistanceTracked(items[j].Rule.IntervalKm)
		if iTracked != jTracked {
			return iTracked
		}
		if !iTracked {
			return false
		}
		return items[i].Due.RemainingKm < items[j].Due.RemainingKm
	})
	return items, nil
}
