// Package scoring buckets a classified profile into an experience tier via a
// weighted point system.
package scoring

import "github.com/jonathan/careerpath/internal/types"

// Point values for each scored dimension.
const (
	pointsProductExperience = 40
	pointsMetrics           = 20
	pointsLeadership        = 20
	pointsBroadSkillSet     = 10
	pointsSQL               = 5
	pointsPMSkill           = 5

	// minBroadSkillCount is the skill count at which the breadth bonus applies.
	minBroadSkillCount = 5

	// Tier thresholds on the summed score.
	advancedThreshold     = 70
	intermediateThreshold = 40
)

// Score computes the weighted experience score for a profile. Purely additive;
// no hidden state.
func Score(p *types.Profile) int {
	score := 0
	if p.HasProductExperience {
		score += pointsProductExperience
	}
	if p.HasMetrics {
		score += pointsMetrics
	}
	if p.HasLeadership {
		score += pointsLeadership
	}
	if p.SkillCount() >= minBroadSkillCount {
		score += pointsBroadSkillSet
	}
	if p.HasSkill("SQL") {
		score += pointsSQL
	}
	if p.HasAnySkill("User Research", "Product Strategy") {
		score += pointsPMSkill
	}
	return score
}

// TierFor maps a profile to its experience tier.
func TierFor(p *types.Profile) types.Tier {
	return tierForScore(Score(p))
}

func tierForScore(score int) types.Tier {
	switch {
	case score >= advancedThreshold:
		return types.Tier{Level: types.TierAdvanced, Badge: "🟣", StartPhase: 3}
	case score >= intermediateThreshold:
		return types.Tier{Level: types.TierIntermediate, Badge: "🔵", StartPhase: 2}
	default:
		return types.Tier{Level: types.TierBeginner, Badge: "🟡", StartPhase: 1}
	}
}
