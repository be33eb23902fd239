package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, CalculateAccuracy(0, 0), "zero total must not divide")
	assert.Equal(t, 0.0, CalculateAccuracy(0, 5))
	assert.Equal(t, 100.0, CalculateAccuracy(5, 5))
	assert.InDelta(t, 66.67, CalculateAccuracy(2, 3), 0.01)
	assert.InDelta(t, 60.0, CalculateAccuracy(3, 5), 0.01)
}

func TestPerformanceLevel(t *testing.T) {
	assert.Equal(t, LevelExcellent, PerformanceLevel(95))
	assert.Equal(t, LevelExcellent, PerformanceLevel(90))
	assert.Equal(t, LevelGood, PerformanceLevel(75))
	assert.Equal(t, LevelFair, PerformanceLevel(60))
	assert.Equal(t, LevelPoor, PerformanceLevel(59.9))
	assert.Equal(t, LevelPoor, PerformanceLevel(0))
}

func TestFormatAccuracy(t *testing.T) {
	assert.Equal(t, "67%", FormatAccuracy(66.67))
	assert.Equal(t, "0%", FormatAccuracy(0))
}

func TestFormatRelativeDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Never", FormatRelativeDate(time.Time{}, now))
	assert.Equal(t, "Today", FormatRelativeDate(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Yesterday", FormatRelativeDate(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "3 days ago", FormatRelativeDate(now.AddDate(0, 0, -3), now))
	assert.Equal(t, "2 weeks ago", FormatRelativeDate(now.AddDate(0, 0, -15), now))
	assert.Equal(t, "2025-12-01", FormatRelativeDate(time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC), now))
}
