package classify

import (
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

// studentKeywords mark a resume as belonging to a current student. The scan
// short-circuits on the first match; it is a presence check, not a count.
var studentKeywords = []string{
	"expected graduation", "graduating", "class of", "expected to graduate",
	"pursuing", "candidate for", "currently enrolled", "undergraduate",
	"sophomore", "junior", "senior", "freshman",
}

// educationRule pairs a predicate with the level it implies. Rules are
// evaluated in order and the first match wins, which keeps the branches
// mutually exclusive: a resume mentioning both "Master" and "Bachelor" is
// classified by the graduate rule alone.
type educationRule struct {
	level types.EducationLevel
	match func(text, lower string) bool
	// also applied on match, for rules that carry student-flag side effects
	apply func(p *types.Profile, lower string)
}

// Degree tokens are matched case-sensitively against the original text so
// that e.g. "amba" or "bachelorette" in prose do not trip the short tokens.
var educationRules = []educationRule{
	{
		level: types.EducationGraduate,
		match: func(text, _ string) bool {
			return strings.Contains(text, "MBA") || strings.Contains(text, "Master")
		},
	},
	{
		level: types.EducationBachelors,
		match: func(text, _ string) bool {
			return strings.Contains(text, "Bachelor") || strings.Contains(text, "B.S") || strings.Contains(text, "B.A")
		},
		apply: func(p *types.Profile, lower string) {
			if strings.Contains(lower, "expected") || strings.Contains(lower, "graduating") {
				p.IsStudent = true
				p.IsGraduated = false
			}
		},
	},
	{
		level: types.EducationHighSchool,
		match: func(text, _ string) bool {
			return strings.Contains(text, "High School")
		},
	},
}

// detectEducation sets the student flags and education level on the profile.
func detectEducation(p *types.Profile, text, lower string) {
	for _, keyword := range studentKeywords {
		if strings.Contains(lower, keyword) {
			p.IsStudent = true
			p.IsGraduated = false
			break
		}
	}

	for _, rule := range educationRules {
		if rule.match(text, lower) {
			p.EducationLevel = rule.level
			if rule.apply != nil {
				rule.apply(p, lower)
			}
			return
		}
	}
}
