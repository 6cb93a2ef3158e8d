// Package timeline derives a total completion estimate for a roadmap at a
// given weekly commitment.
package timeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/careerpath/internal/effort"
	"github.com/jonathan/careerpath/internal/types"
)

// Fallback hour estimates for display strings the parser cannot pin down.
const (
	assumedHoursPerWeek  = 5
	weeksPerMonth        = 4
	hoursPerSession      = 2
	ongoingHoursEstimate = 30
	defaultHoursEstimate = 10
)

var (
	weeksRangeRe  = regexp.MustCompile(`(\d+)-?(\d+)?\s*weeks?`)
	hrsPerWeekRe  = regexp.MustCompile(`(\d+)-(\d+)\s*hrs?/\s*week`)
	monthsRangeRe = regexp.MustCompile(`(\d+)-?(\d+)?\s*months?`)
	sessionsRe    = regexp.MustCompile(`(\d+)\s*sessions?`)
)

// Estimate sums the effort across all phases and converts it into weeks and
// months at the given weekly commitment. Actions carry their numeric effort,
// which is summed directly; parsing the display string is only a fallback for
// caller-added actions that never set one. Recomputing on an unmodified
// roadmap yields identical totals.
func Estimate(r *types.Roadmap, weeklyHours int) *types.TimelineEstimate {
	weeklyHours = effort.ClampWeeklyHours(weeklyHours)

	totalHours := 0
	for _, action := range r.AllActions() {
		if action.EffortHours > 0 {
			totalHours += action.EffortHours
			continue
		}
		totalHours += parseDisplayDuration(action.Time)
	}

	totalWeeks := ceilDiv(totalHours, weeklyHours)
	totalMonths := ceilDiv(totalWeeks, weeksPerMonth)

	feedback := fmt.Sprintf("At %d hrs/week, you'll complete this in %d weeks (%d months). %s",
		weeklyHours, totalWeeks, totalMonths, PaceComment(weeklyHours))

	return &types.TimelineEstimate{
		TotalHours:  totalHours,
		TotalWeeks:  totalWeeks,
		TotalMonths: totalMonths,
		WeeklyHours: weeklyHours,
		Feedback:    feedback,
	}
}

// parseDisplayDuration best-effort re-derives an hour estimate from a display
// duration string. Lossy by construction; it exists only for actions without
// a numeric effort.
func parseDisplayDuration(displayTime string) int {
	t := strings.ToLower(displayTime)

	switch {
	case strings.Contains(t, "week") && !strings.Contains(t, "month"):
		weeks := weeksPerMonth // assume a month's worth when unparseable
		if m := weeksRangeRe.FindStringSubmatch(t); m != nil {
			weeks = mustAtoi(m[1])
		}
		if m := hrsPerWeekRe.FindStringSubmatch(t); m != nil {
			avg := (mustAtoi(m[1]) + mustAtoi(m[2])) / 2
			return weeks * avg
		}
		return weeks * assumedHoursPerWeek
	case strings.Contains(t, "month"):
		months := 2
		if m := monthsRangeRe.FindStringSubmatch(t); m != nil {
			months = mustAtoi(m[1])
		}
		return months * weeksPerMonth * assumedHoursPerWeek
	case strings.Contains(t, "session"):
		sessions := 1
		if m := sessionsRe.FindStringSubmatch(t); m != nil {
			sessions = mustAtoi(m[1])
		}
		return sessions * hoursPerSession
	case strings.Contains(t, "ongoing"):
		return ongoingHoursEstimate
	default:
		return defaultHoursEstimate
	}
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
