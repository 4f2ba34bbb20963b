package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolve_NoOverrides(t *testing.T) {
	rules := []models.TemplateRule{
		{ID: "oil", PartName: "Engine oil", IntervalKm: 3000},
		{ID: "coolant", PartName: "Coolant", Note: "Replace every 2 years"},
	}

	effective := Resolve(rules, nil)

	assert.Len(t, effective, 2)
	assert.Equal(t, "Engine oil", effective[0].PartName)
	assert.Equal(t, 3000, effective[0].IntervalKm)
	assert.Equal(t, models.OriginTemplate, effective[0].Origin)

	// Interval-less rules get the numeric marker so downstream arithmetic
	// never divides by zero.
	assert.Equal(t, NoIntervalKm, effective[1].IntervalKm)
	assert.Equal(t, "Replace every 2 years", effective[1].Note)
}

func TestResolve_OverrideReplacesNameAndInterval(t *testing.T) {
	rules := []models.TemplateRule{
		{ID: "oil", PartName: "Engine oil", IntervalKm: 3000},
		{ID: "chain", PartName: "Drive chain", IntervalKm: 8000},
	}
	overrides := map[string]models.RuleOverride{
		"oil": {PartName: "Fully synthetic oil", IntervalKm: 5000},
	}

	effective := Resolve(rules, overrides)

	assert.Equal(t, "Fully synthetic oil", effective[0].PartName)
	assert.Equal(t, 5000, effective[0].IntervalKm)
	// Untouched rule keeps template values.
	assert.Equal(t, "Drive chain", effective[1].PartName)
	assert.Equal(t, 8000, effective[1].IntervalKm)
}

func TestResolve_PartialOverrideFallsBack(t *testing.T) {
	rules := []models.TemplateRule{
		{ID: "oil", PartName: "Engine oil", IntervalKm: 3000},
	}

	tests := []struct {
		name         string
		override     models.RuleOverride
		wantName     string
		wantInterval int
	}{
		{"interval only", models.RuleOverride{IntervalKm: 4000}, "Engine oil", 4000},
		{"name only", models.RuleOverride{PartName: "Racing oil"}, "Racing oil", 3000},
		{"empty override", models.RuleOverride{}, "Engine oil", 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effective := Resolve(rules, map[string]models.RuleOverride{"oil": tt.override})
			assert.Equal(t, tt.wantName, effective[0].PartName)
			assert.Equal(t, tt.wantInterval, effective[0].IntervalKm)
		})
	}
}

func TestResolve_EmptyTemplate(t *testing.T) {
	effective := Resolve(nil, map[string]models.RuleOverride{"x": {IntervalKm: 100}})
	assert.Empty(t, effective)
}

func TestFromPersonal(t *testing.T) {
	id := primitive.NewObjectID()
	rule := models.PersonalRule{ID: id, ServiceName: "Wax frame", IntervalKm: 2000}

	effective := FromPersonal(rule)

	assert.Equal(t, id.Hex(), effective.ID)
	assert.Equal(t, "Wax frame", effective.PartName)
	assert.Equal(t, 2000, effective.IntervalKm)
	assert.Equal(t, models.OriginPersonal, effective.Origin)
}

func TestIsDistanceTracked(t *testing.T) {
	assert.True(t, IsDistanceTracked(1000))
	assert.True(t, IsDistanceTracked(DistanceTrackedMaxKm))
	assert.False(t, IsDistanceTracked(DistanceTrackedMaxKm+1))
	assert.False(t, IsDistanceTracked(NoIntervalKm))
	assert.False(t, IsDistanceTracked(0))
	assert.False(t, IsDistanceTracked(-5))
}
