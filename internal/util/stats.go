package util

import (
	"fmt"
	"time"
)

// Performance levels derived from accuracy percentages.
const (
	LevelExcellent = "excellent"
	LevelGood      = "good"
	LevelFair      = "fair"
	LevelPoor      = "poor"
)

// CalculateAccuracy returns correct/total as a percentage, guarding the
// divide-by-zero case to 0.
func CalculateAccuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// FormatAccuracy renders an accuracy percentage for display.
func FormatAccuracy(accuracy float64) string {
	return fmt.Sprintf("%.0f%%", accuracy)
}

// PerformanceLevel buckets an accuracy percentage into a named level.
func PerformanceLevel(accuracy float64) string {
	switch {
	case accuracy >= 90:
		return LevelExcellent
	case accuracy >= 75:
		return LevelGood
	case accuracy >= 60:
		return LevelFair
	default:
		return LevelPoor
	}
}

// FormatRelativeDate renders a timestamp relative to now ("Today", "3 days
// ago", ...), falling back to the date for anything older than a month.
func FormatRelativeDate(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "Never"
	}

	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return t.Format("2006-01-02")
	}
}
