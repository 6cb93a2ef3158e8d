// Package classify turns raw resume text into a structured Profile using
// fixed pattern tables and contextual inference rules. It is a pure function
// of its input: no external state, no recoverable error paths beyond rejecting
// empty input.
package classify

import (
	"strings"
	"time"

	"github.com/jonathan/careerpath/internal/types"
)

// EmptyInputError indicates the decoded resume text was empty or
// whitespace-only. Classification of such text would produce a misleading
// all-default profile, so it is rejected explicitly.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "resume text is empty or whitespace-only"
}

// Classify extracts a structured Profile from resume text. It degrades
// gracefully to sentinel values on thin input rather than signaling failure;
// the only error is for empty text.
func Classify(text string) (*types.Profile, error) {
	return classifyWithYear(text, time.Now().Year())
}

// classifyWithYear is the deterministic core; the current calendar year is a
// parameter because it participates in current-role detection.
func classifyWithYear(text string, year int) (*types.Profile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{}
	}

	lower := strings.ToLower(text)
	lines := splitNonEmptyLines(text)

	profile := &types.Profile{
		CurrentRole:    types.RoleNotDetected,
		IsGraduated:    true,
		EducationLevel: types.EducationUnknown,
		TextLength:     len(text),
	}

	profile.Skills = detectSkills(lower)
	detectEducation(profile, text, lower)
	detectRoles(profile, lines, year)
	resolveCurrentRole(profile)
	detectSignals(profile, text, lower)

	if len(profile.Skills) == 0 {
		profile.Skills = []string{types.SkillNotDetected}
	}
	return profile, nil
}

// detectSkills runs the direct pattern table, then the contextual inference
// pass. Detection only grows with more matching evidence: contextual rules
// never retract or duplicate a direct match.
func detectSkills(lower string) []string {
	detected := make([]string, 0, len(skillPatterns))
	seen := make(map[string]bool, len(skillPatterns))

	for _, sp := range skillPatterns {
		for _, pattern := range sp.patterns {
			if strings.Contains(lower, pattern) {
				detected = append(detected, sp.skill)
				seen[sp.skill] = true
				break
			}
		}
	}

	for _, rule := range contextualRules {
		if seen[rule.skill] {
			continue
		}
		if rule.match(lower) {
			detected = append(detected, rule.skill)
			seen[rule.skill] = true
		}
	}

	return detected
}

// splitNonEmptyLines splits text into trimmed non-empty lines.
func splitNonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
