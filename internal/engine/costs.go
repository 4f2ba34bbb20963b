package engine

import (
	"sort"
	"time"

	"github.com/ukydev/moto-maintenance/internal/models"
)

const (
	// categoryOtherCost buckets records whose rule reference resolves to no
	// known rule.
	categoryOtherCost = "Other cost"
	// categoryUnscheduled buckets records that reference no rule at all.
	categoryUnscheduled = "Unscheduled repair"
)

// AggregateCosts rolls a vehicle's service history up into a cost report:
// total spend, per-calendar-month buckets and per-category buckets with each
// category's share of the total. Months are keyed by month number only, so a
// January from different years lands in the same bucket.
func AggregateCosts(history []models.ServiceRecord, rules []models.EffectiveRule) models.CostReport {
	names := make(map[string]string, len(rules))
	for _, rule := range rules {
		names[rule.ID] = rule.PartName
	}

	report := models.CostReport{
		RecordCount: len(history),
		ByMonth:     make(map[time.Month]float64),
	}
	byCategory := make(map[string]float64)

	for _, rec := range history {
		report.TotalCost += rec.Cost
		report.ByMonth[rec.CreatedAt.Month()] += rec.Cost

		category := categoryUnscheduled
		if ref, ok := rec.RuleRef(); ok {
			category = categoryOtherCost
			if name, known := names[ref]; known {
				category = name
			}
		}
		byCategory[category] += rec.Cost
	}

	report.ByCategory = make([]models.CostCategory, 0, len(byCategory))
	for name, sum := range byCategory {
		percent := 0.0
		if report.TotalCost > 0 {
			percent = sum / report.TotalCost * 100
		}
		report.ByCategory = append(report.ByCategory, models.CostCategory{
			Name:           name,
			Total:          sum,
			PercentOfTotal: percent,
		})
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		if report.ByCategory[i].Total != report.ByCategory[j].Total {
			return report.ByCategory[i].Total > report.ByCategory[j].Total
		}
		return report.ByCategory[i].Name < report.ByCategory[j].Name
	})
	return report
}
