package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/moto-maintenance/internal/models"
)

func TestLastPerformed_MostRecentWins(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	history := []models.ServiceRecord{
		{ServiceRuleID: "oil", PerformedAtOdo: 3000, CreatedAt: base},
		{ServiceRuleID: "oil", PerformedAtOdo: 9000, CreatedAt: base.AddDate(0, 6, 0)},
		{ServiceRuleID: "oil", PerformedAtOdo: 6000, CreatedAt: base.AddDate(0, 3, 0)},
		{ServiceRuleID: "chain", PerformedAtOdo: 8000, CreatedAt: base.AddDate(0, 7, 0)},
	}

	odo, ok := LastPerformed(history, "oil")
	assert.True(t, ok)
	assert.Equal(t, 9000, odo)
}

func TestLastPerformed_NeverServiced(t *testing.T) {
	history := []models.ServiceRecord{
		{ServiceRuleID: "chain", PerformedAtOdo: 8000, CreatedAt: time.Now()},
	}

	_, ok := LastPerformed(history, "oil")
	assert.False(t, ok)

	_, ok = LastPerformed(nil, "oil")
	assert.False(t, ok)
}

func TestLastPerformed_PersonalScheduleRef(t *testing.T) {
	history := []models.ServiceRecord{
		{PersonalScheduleID: "wax", PerformedAtOdo: 4000, CreatedAt: time.Now()},
	}

	odo, ok := LastPerformed(history, "wax")
	assert.True(t, ok)
	assert.Equal(t, 4000, odo)
}

func TestLastPerformed_UnclassifiedRecordsIgnored(t *testing.T) {
	history := []models.ServiceRecord{
		{PerformedAtOdo: 1234, CreatedAt: time.Now()}, // no rule reference
	}

	_, ok := LastPerformed(history, "oil")
	assert.False(t, ok)
}

func TestLastPerformed_TimestampTieLastWriteWins(t *testing.T) {
	at := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)
	history := []models.ServiceRecord{
		{ServiceRuleID: "oil", PerformedAtOdo: 5000, CreatedAt: at},
		{ServiceRuleID: "oil", PerformedAtOdo: 5100, CreatedAt: at},
	}

	odo, ok := LastPerformed(history, "oil")
	assert.True(t, ok)
	assert.Equal(t, 5100, odo)
}
