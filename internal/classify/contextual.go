package classify

import "strings"

// contextualRule infers a skill from co-occurring keywords when the direct
// pattern table found nothing. Rules are independent; a rule only fires when
// its skill is not already present, so direct matches are never retracted or
// double-counted.
type contextualRule struct {
	skill string
	match func(lower string) bool
}

func has(lower string, substr string) bool {
	return strings.Contains(lower, substr)
}

var contextualRules = []contextualRule{
	{"SQL", func(t string) bool {
		return has(t, "data warehouse") || (has(t, "database") && (has(t, "extract") || has(t, "query")))
	}},
	{"Analytics", func(t string) bool {
		return (has(t, "analyzed") || has(t, "analysis")) && (has(t, "data") || has(t, "metrics") || has(t, "kpi"))
	}},
	{"User Research", func(t string) bool {
		return (has(t, "interview") && (has(t, "user") || has(t, "customer"))) ||
			(has(t, "feedback") && has(t, "user")) ||
			(has(t, "survey") && (has(t, "user") || has(t, "customer")))
	}},
	{"A/B Testing", func(t string) bool {
		return (has(t, "test") && (has(t, "variant") || has(t, "control"))) ||
			(has(t, "experiment") && (has(t, "conversion") || has(t, "optimize"))) ||
			(has(t, "compared") && has(t, "version"))
	}},
	{"Product Strategy", func(t string) bool {
		return (has(t, "product") && (has(t, "roadmap") || has(t, "vision") || has(t, "strategy"))) ||
			(has(t, "launch") && has(t, "product")) ||
			(has(t, "prioritize") && (has(t, "feature") || has(t, "backlog")))
	}},
	{"Project Management", func(t string) bool {
		return ((has(t, "coordinated") || has(t, "organized")) && (has(t, "project") || has(t, "initiative"))) ||
			(has(t, "timeline") && has(t, "deliver")) ||
			has(t, "milestone") || has(t, "deliverable")
	}},
	{"Leadership", func(t string) bool {
		return ((has(t, "led") || has(t, "lead")) && (has(t, "team") || has(t, "group") || has(t, "initiative"))) ||
			has(t, "mentor") || has(t, "coach") ||
			(has(t, "manage") && has(t, "people"))
	}},
	{"Wireframing", func(t string) bool {
		return (has(t, "design") && (has(t, "ui") || has(t, "ux") || has(t, "interface"))) ||
			has(t, "wireframe") || has(t, "mockup")
	}},
	{"Communication", func(t string) bool {
		return has(t, "present") || has(t, "communication") ||
			has(t, "stakeholder") || has(t, "cross-functional")
	}},
}
