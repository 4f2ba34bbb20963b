package engine

import (
	"errors"

	"github.com/ukydev/moto-maintenance/internal/models"
)

var (
	ErrInvalidOdometer = errors.New("odometer must be non-negative")
	ErrInvalidInterval = errors.New("rule interval must be positive")
)

// BaselinePolicy selects how the baseline odometer is derived for a rule that
// has never been serviced. The two policies produce different observable
// results and both are load-bearing: the schedule view can show a rule as
// already overdue on first sight, the home-alert view never does.
type BaselinePolicy int

const (
	// PolicyScheduleFloor snaps the baseline to the nearest interval
	// multiple at or below the current odometer.
	PolicyScheduleFloor BaselinePolicy = iota

	// PolicyAlertCeiling takes the next interval multiple strictly above the
	// current odometer as the due point.
	PolicyAlertCeiling
)

// ComputeDue computes the due state of one effective rule. lastPerformedOdo
// is only meaningful when hasHistory is true.
func ComputeDue(rule models.EffectiveRule, lastPerformedOdo int, hasHistory bool, currentOdo int, policy BaselinePolicy) (models.DueStatus, error) {
	if currentOdo < 0 {
		return models.DueStatus{}, ErrInvalidOdometer
	}
	interval := rule.IntervalKm
	if interval <= 0 {
		return models.DueStatus{}, ErrInvalidInterval
	}

	var baseline int
	switch {
	case hasHistory:
		baseline = lastPerformedOdo
	case policy == PolicyAlertCeiling:
		// Next interval multiple strictly above currentOdo.
		nextDue := ((currentOdo + interval) / interval) * interval
		baseline = nextDue - interval
	default:
		if IsDistanceTracked(interval) {
			baseline = (currentOdo / interval) * interval
		}
	}

	nextDue := baseline + interval
	remaining := nextDue - currentOdo

	progress := float64(currentOdo-baseline) / float64(interval) * 100
	if progress < 0 {
		progress = 0
	}

	return models.DueStatus{
		BaselineOdo:     baseline,
		NextDueOdo:      nextDue,
		RemainingKm:     remaining,
		ProgressPercent: progress,
		NeverServiced:   !hasHistory,
	}, nil
}
