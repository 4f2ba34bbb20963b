package engine

import (
	"github.com/ukydev/moto-maintenance/internal/models"
)

const (
	// NoIntervalKm is the interval assigned to template rules that declare no
	// distance interval. Keeping them numeric keeps the due arithmetic
	// uniform downstream.
	NoIntervalKm = 999999

	// DistanceTrackedMaxKm is the upper bound for a rule to count as
	// distance-tracked. Intervals above it mean "serviced by time or
	// inspection, not odometer".
	DistanceTrackedMaxKm = 100000
)

// IsDistanceTracked reports whether an interval participates in odometer
// based due computation and alerting.
func IsDistanceTracked(intervalKm int) bool {
	return intervalKm > 0 && intervalKm <= DistanceTrackedMaxKm
}

// Resolve merges a manufacturer template's rules with a vehicle's per-rule
// overrides into the effective rule set. An override replaces the part name
// and/or interval field-by-field; a zero override field keeps the template
// value. Template rules without an interval get NoIntervalKm.
func Resolve(templateRules []models.TemplateRule, overrides map[string]models.RuleOverride) []models.EffectiveRule {
	effective := make([]models.EffectiveRule, 0, len(templateRules))
	for _, rule := range templateRules {
		name := rule.PartName
		interval := rule.IntervalKm

		if override, ok := overrides[rule.ID]; ok {
			if override.PartName != "" {
				name = override.PartName
			}
			if override.IntervalKm > 0 {
				interval = override.IntervalKm
			}
		}
		if interval <= 0 {
			interval = NoIntervalKm
		}

		effective = append(effective, models.EffectiveRule{
			ID:         rule.ID,
			PartName:   name,
			IntervalKm: interval,
			Note:       rule.Note,
			Origin:     models.OriginTemplate,
		})
	}
	return effective
}

// FromPersonal adapts an owner-defined rule to an effective rule verbatim.
func FromPersonal(rule models.PersonalRule) models.EffectiveRule {
	return models.EffectiveRule{
		ID:         rule.ID.Hex(),
		PartName:   rule.ServiceName,
		IntervalKm: rule.IntervalKm,
		Origin:     models.OriginPersonal,
	}
}
