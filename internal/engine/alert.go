package engine

import (
	"fmt"
	"sort"

	"github.com/ukydev/moto-maintenance/internal/models"
)

const (
	// warningThresholdCapKm caps the warning window for long intervals.
	warningThresholdCapKm = 300
	// warningThresholdRatio is the fraction of the interval used as the
	// warning window for short intervals.
	warningThresholdRatio = 0.15
)

// WarningThresholdKm returns the remaining-distance window below which a rule
// is surfaced as "due soon": min(300, interval*0.15).
func WarningThresholdKm(intervalKm int) float64 {
	threshold := float64(intervalKm) * warningThresholdRatio
	if threshold > warningThresholdCapKm {
		return warningThresholdCapKm
	}
	return threshold
}

// Classify maps a remaining distance to a severity and a display message.
// SeverityOK means the rule is not surfaced as an alert.
func Classify(remainingKm, intervalKm int) (models.Severity, string) {
	if remainingKm < 0 {
		return models.SeverityOverdue, fmt.Sprintf("overdue by %d km", -remainingKm)
	}
	if float64(remainingKm) <= WarningThresholdKm(intervalKm) {
		return models.SeverityWarning, fmt.Sprintf("remaining %d km", remainingKm)
	}
	return models.SeverityOK, fmt.Sprintf("remaining %d km", remainingKm)
}

// BuildAlerts computes the home-screen alerts for a rule set: every
// distance-tracked rule whose remaining distance falls inside the warning
// window, most urgent first. Never-serviced rules use the ceiling baseline,
// so a rule is never overdue on its first-ever check.
func BuildAlerts(rules []models.EffectiveRule, history []models.ServiceRecord, currentOdo int) ([]models.Alert, error) {
	if currentOdo < 0 {
		return nil, ErrInvalidOdometer
	}

	alerts := make([]models.Alert, 0)
	for _, rule := range rules {
		if !IsDistanceTracked(rule.IntervalKm) {
			continue
		}

		lastOdo, serviced := LastPerformed(history, rule.ID)
		due, err := ComputeDue(rule, lastOdo, serviced, currentOdo, PolicyAlertCeiling)
		if err != nil {
			// Misconfigured rule; skip it rather than failing the view.
			continue
		}

		severity, message := Classify(due.RemainingKm, rule.IntervalKm)
		if severity == models.SeverityOK {
			continue
		}

		alerts = append(alerts, models.Alert{
			RuleID:      rule.ID,
			PartName:    rule.PartName,
			Severity:    severity,
			Message:     message,
			RemainingKm: due.RemainingKm,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].RemainingKm < alerts[j].RemainingKm
	})
	return alerts, nil
}
