package models

import "time"

// RuleOrigin tells the presentation layer where a schedule item came from,
// so that only personal items offer deletion.
type RuleOrigin string

const (
	OriginTemplate RuleOrigin = "template"
	OriginPersonal RuleOrigin = "personal"
)

// Severity classifies how urgent a maintenance rule is.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityOverdue Severity = "overdue"
)

// EffectiveRule is a maintenance rule after merging template defaults with
// per-vehicle overrides, or a personal rule taken verbatim. Derived, never
// persisted.
type EffectiveRule struct {
	ID         string     `json:"id"`
	PartName   string     `json:"part_name"`
	IntervalKm int        `json:"interval_km"`
	Note       string     `json:"note,omitempty"`
	Origin     RuleOrigin `json:"origin"`
}

// DueStatus is the computed due state of one effective rule against one
// vehicle odometer snapshot.
type DueStatus struct {
	BaselineOdo     int     `json:"baseline_odo"`
	NextDueOdo      int     `json:"next_due_odo"`
	RemainingKm     int     `json:"remaining_km"` // negative means overdue
	ProgressPercent float64 `json:"progress_percent"`
	NeverServiced   bool    `json:"never_serviced"`
}

// Alert is a classified home-screen alert for one rule.
type Alert struct {
	RuleID      string   `json:"rule_id"`
	PartName    string   `json:"part_name"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	RemainingKm int      `json:"remaining_km"`
}

// ScheduleItem is one row of the full schedule view.
type ScheduleItem struct {
	Rule EffectiveRule `json:"rule"`
	Due  DueStatus     `json:"due"`
	Note string        `json:"note,omitempty"`
}

// CostCategory is one rule/category bucket of the cost report.
type CostCategory struct {
	Name           string  `json:"name"`
	Total          float64 `json:"total"`
	PercentOfTotal float64 `json:"percent_of_total"`
}

// CostReport is the rolled-up service-cost view of one vehicle's history.
type CostReport struct {
	TotalCost   float64                `json:"total_cost"`
	RecordCount int                    `json:"record_count"`
	ByMonth     map[time.Month]float64 `json:"by_month"`
	ByCategory  []CostCategory         `json:"by_category"`
}
