// Package roadmap turns a classified resume profile into a three-phase career
// transition plan with per-user gap analysis, effort-adjusted actions, and a
// pacing note derived from the user's weekly commitment.
package roadmap

import (
	"fmt"

	"github.com/jonathan/careerpath/internal/effort"
	"github.com/jonathan/careerpath/internal/scoring"
	"github.com/jonathan/careerpath/internal/timeline"
	"github.com/jonathan/careerpath/internal/types"
)

// Generate builds a roadmap for the profile. Generation is deterministic: the
// same profile and inputs always produce the same phases, action IDs, and
// notes. The timeline note is computed from the actual summed effort hours of
// the generated actions.
func Generate(p *types.Profile, inputs types.UserInputs) (*types.Roadmap, error) {
	if p == nil {
		return nil, fmt.Errorf("generate roadmap: nil profile")
	}
	if err := inputs.Validate(); err != nil {
		return nil, fmt.Errorf("generate roadmap: %w", err)
	}

	weeklyHours := effort.ClampWeeklyHours(inputs.WeeklyHours)
	tier := scoring.TierFor(p)

	missingTechnical := missingTechnicalSkills(p)
	missingPM := missingPMSkills(p)

	motivationNote := selectAdvice(motivationRules, inputs.Motivation, motivationFallback)
	challengeNote := selectAdvice(challengeRules, inputs.Challenges, challengeFallback)

	phase1 := buildPhase1(p, tier, missingTechnical, motivationNote, weeklyHours)
	phase2 := buildPhase2(p, missingPM, challengeNote, weeklyHours)

	// Phase 3's action set is fixed, so its hours can be counted before the
	// phase itself is built and the note placed inside it.
	totalHours := phaseHours(phase1) + phaseHours(phase2) + phase3Hours
	timelineNote := buildTimelineNote(totalHours, weeklyHours)

	phase3 := buildPhase3(p, timelineNote, weeklyHours)

	return &types.Roadmap{
		Tier:              tier,
		Gaps:              buildGaps(p),
		MissingSkills:     append(append([]string{}, missingTechnical...), missingPM...),
		ExistingStrengths: buildStrengths(p),
		Phases:            [types.PhaseCount]types.Phase{phase1, phase2, phase3},
		TimelineNote:      timelineNote,
	}, nil
}

// phase3Hours is the summed effort of the fixed activation-phase actions.
const phase3Hours = 10 + 18 + 20 + 40

func phaseHours(phase types.Phase) int {
	total := 0
	for _, a := range phase.Actions {
		total += a.EffortHours
	}
	return total
}

func buildTimelineNote(totalHours, weeklyHours int) string {
	weeks := ceilDiv(totalHours, weeklyHours)
	months := ceilDiv(weeks, 4)
	return fmt.Sprintf(
		"At %d hours/week, you'll complete this roadmap in approximately %d weeks (%d months). %s",
		weeklyHours, weeks, months, timeline.PaceComment(weeklyHours),
	)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
