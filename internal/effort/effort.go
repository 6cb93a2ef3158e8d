// Package effort adjusts base task-effort estimates for a user's background
// and converts hour totals into human-readable durations.
package effort

import (
	"fmt"
	"math"

	"github.com/jonathan/careerpath/internal/types"
)

// Category identifies the kind of task an effort estimate belongs to.
// Categories are mutually exclusive per call.
type Category string

const (
	CategorySQL            Category = "sql"
	CategoryAnalytics      Category = "analytics"
	CategoryPMFundamentals Category = "pm-fundamentals"
	CategoryGeneral        Category = ""
)

// Background-based multipliers. Engineers move faster through SQL, analysts
// through data tasks, and existing PMs through fundamentals; students without
// product context take longer on everything.
const (
	engineerSQLMultiplier      = 0.3
	analystAnalyticsMultiplier = 0.4
	pmFundamentalsMultiplier   = 0.3
	studentPenaltyMultiplier   = 1.2
)

// Adjust scales baseHours by the profile's background multipliers for the
// given category. The result is rounded up to the next whole hour, never
// below 1.
func Adjust(baseHours int, p *types.Profile, category Category) int {
	multiplier := 1.0

	switch category {
	case CategorySQL:
		if p.HasAnySkill("Python", "Java", "JavaScript") {
			multiplier = engineerSQLMultiplier
		}
	case CategoryAnalytics:
		if p.HasAnySkill("Excel", "Tableau", "Analytics") {
			multiplier = analystAnalyticsMultiplier
		}
	case CategoryPMFundamentals:
		if p.HasProductExperience {
			multiplier = pmFundamentalsMultiplier
		}
	}

	if p.IsStudent && !p.HasProductExperience {
		multiplier *= studentPenaltyMultiplier
	}

	adjusted := int(math.Ceil(float64(baseHours) * multiplier))
	if adjusted < 1 {
		adjusted = 1
	}
	return adjusted
}

// ClampWeeklyHours substitutes the default commitment for nonpositive values
// so duration math never divides by zero.
func ClampWeeklyHours(weeklyHours int) int {
	if weeklyHours <= 0 {
		return types.DefaultWeeklyHours
	}
	return weeklyHours
}

// FormatDuration converts an hour estimate into a display duration for the
// given weekly commitment. Month figures divide weeks by four, with mid-range
// estimates widened to a two-month span.
func FormatDuration(hours, weeklyHours int) string {
	weeklyHours = ClampWeeklyHours(weeklyHours)
	weeks := ceilDiv(hours, weeklyHours)

	switch {
	case weeks <= 1:
		return "1 week"
	case weeks == 2:
		return "2 weeks"
	case weeks == 3:
		return "3 weeks"
	case weeks <= 6:
		return fmt.Sprintf("%d weeks", weeks)
	case weeks <= 12:
		months := ceilDiv(weeks, 4)
		return fmt.Sprintf("%d-%d months", months, months+1)
	default:
		return fmt.Sprintf("%d months", ceilDiv(weeks, 4))
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
