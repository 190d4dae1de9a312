package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMultipliers(t *testing.T) {
	tests := []struct {
		category   Category
		multiplier float64
	}{
		{CategoryDrainage, 1.5},
		{CategoryGarbage, 1.3},
		{CategoryWaterLeak, 1.2},
		{CategoryRoadDamage, 1.1},
		{CategoryStreetlight, 1.0},
		{CategoryOther, 1.0},
		{Category("unknown"), 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.multiplier, tt.category.Multiplier(), "category %s", tt.category)
	}
}

func TestNewCategory(t *testing.T) {
	for _, c := range AllCategories() {
		parsed, err := NewCategory(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := NewCategory("noise")
	assert.Error(t, err)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusAssigned.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusAssigned.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusAssigned))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusAssigned))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusInProgress))
}
