package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

// roleTitleWords are the role-ish words that make a line a candidate header.
var roleTitleWords = []string{
	"president", "vice president", "director", "lead", "manager", "analyst",
	"engineer", "intern", "coordinator", "associate", "specialist", "officer",
	"chair", "member", "founder", "consultant", "developer", "designer",
}

var (
	unicodeBulletRe = regexp.MustCompile(`^[\x{2022}\x{2023}\x{25E6}\x{2043}\x{2219}]`)
	yearRe          = regexp.MustCompile(`\d{4}`)
	summerDateRe    = regexp.MustCompile(`(?i)(summer|june|july|august)\s+\d{4}`)
	recentYearRe    = regexp.MustCompile(`202[0-3]`)
)

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") || unicodeBulletRe.MatchString(line)
}

// looksLikeRoleHeader reports whether a line is shaped like a role header:
// not a bullet, under 120 chars, contains a role-title word, and either has
// structural markers (pipe, " at ", " @ ", a 4-digit year) or is short.
func looksLikeRoleHeader(line string) bool {
	if isBulletLine(line) {
		return false
	}
	if len(line) > 120 {
		return false
	}

	lower := strings.ToLower(line)
	hasRoleTitle := false
	for _, title := range roleTitleWords {
		if strings.Contains(lower, title) {
			hasRoleTitle = true
			break
		}
	}
	hasStructure := strings.Contains(line, "|") || strings.Contains(line, " at ") ||
		strings.Contains(line, " @ ") || yearRe.MatchString(line)

	return hasRoleTitle && (hasStructure || len(line) < 60)
}

// extractRoleTitle takes a header line and keeps the first segment after
// splitting on "|", then " at ", then ",".
func extractRoleTitle(line string) string {
	title := strings.TrimSpace(strings.Split(line, "|")[0])
	title = strings.TrimSpace(strings.Split(title, " at ")[0])
	title = strings.TrimSpace(strings.Split(title, ",")[0])
	return title
}

// isDatedSummerInternship flags text that clearly refers to a dated summer
// internship rather than an ongoing role.
func isDatedSummerInternship(combined string) bool {
	if summerDateRe.MatchString(combined) {
		return true
	}
	return strings.Contains(strings.ToLower(combined), "intern") && recentYearRe.MatchString(combined)
}

// detectRoles scans role-header-shaped lines for current roles and campus
// activities. A header counts as current when it (or the following line)
// carries a "present"/"current" indicator or the current calendar year, and
// is not a clearly-dated summer internship. The heuristic can misfire when an
// unrelated mention of the current year follows a header; only the summer
// internship exclusion guards against that.
func detectRoles(p *types.Profile, lines []string, year int) {
	currentIndicators := []string{"present", "current", strconv.Itoa(year)}

	for i, line := range lines {
		nextLine := ""
		if i+1 < len(lines) {
			nextLine = lines[i+1]
		}

		if !looksLikeRoleHeader(line) {
			continue
		}

		combined := line + " " + nextLine
		combinedLower := strings.ToLower(combined)

		hasCurrent := false
		for _, indicator := range currentIndicators {
			if strings.Contains(combinedLower, indicator) {
				hasCurrent = true
				break
			}
		}

		summerIntern := isDatedSummerInternship(combined)

		if hasCurrent && !summerIntern {
			p.CurrentRoles = append(p.CurrentRoles, extractRoleTitle(line))
		}
		if summerIntern && strings.Contains(strings.ToLower(line), "intern") {
			p.PastInternships = append(p.PastInternships, line)
		}

		lineLower := strings.ToLower(line)
		if (strings.Contains(lineLower, "club") || strings.Contains(lineLower, "organization") ||
			strings.Contains(lineLower, "society")) && !strings.Contains(lineLower, "intern") {
			p.CampusActivities = append(p.CampusActivities, line)
			p.IsStudent = true
			p.IsGraduated = false
		}
	}
}

// resolveCurrentRole picks the headline current role: the first detected role,
// then a campus-activity fallback for students, then the generic fallback.
func resolveCurrentRole(p *types.Profile) {
	switch {
	case p.IsStudent:
		switch {
		case len(p.CurrentRoles) > 0:
			p.CurrentRole = p.CurrentRoles[0]
		case len(p.CampusActivities) > 0:
			p.CurrentRole = "Student - Active in campus organizations"
		default:
			p.CurrentRole = "Student"
		}
	case len(p.CurrentRoles) > 0:
		p.CurrentRole = p.CurrentRoles[0]
	}
}
