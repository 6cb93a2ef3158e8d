package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

// productKeywords signal product-management-adjacent experience.
var productKeywords = []string{
	"product", "case study", "product manager", "product lead",
	"product thinking", "product strategy", "roadmap", "backlog", "sprint",
}

var (
	metricsRe    = regexp.MustCompile(`\d+%|increased|grew|reduced|improved|achieved.*\d+`)
	leadershipRe = regexp.MustCompile(`(?i)(lead|led|leading|managed|directed|president|founder|chair)`)
)

// detectSignals sets the product/metrics/leadership flags on the profile.
// Metrics matching is case-sensitive on the original text so that resume verbs
// in sentence position ("increased revenue by 20%") are the target, with the
// percentage alternative catching capitalized bullets.
func detectSignals(p *types.Profile, text, lower string) {
	for _, keyword := range productKeywords {
		if strings.Contains(lower, keyword) {
			p.HasProductExperience = true
			break
		}
	}
	p.HasMetrics = metricsRe.MatchString(text)
	p.HasLeadership = leadershipRe.MatchString(text)
}
