package roadmap

import "strings"

// adviceRule pairs trigger substrings with the advice they select. Rules are
// evaluated in order against the lower-cased answer; the first rule with any
// matching keyword wins.
type adviceRule struct {
	keywords []string
	advice   string
}

var motivationRules = []adviceRule{
	{[]string{"problem", "solving"},
		"Since you love problem-solving, focus on case studies and frameworks in Phase 1. Practice breaking down ambiguous problems into structured solutions."},
	{[]string{"build", "product"},
		"Your passion for building products is perfect for PM! Prioritize hands-on projects in Phase 2 to demonstrate your ability to ship."},
	{[]string{"team", "collaborat"},
		"Your collaborative mindset is a PM superpower. Emphasize cross-functional projects and stakeholder management in your experience."},
	{[]string{"impact", "user"},
		"Your user-focused mindset is essential for PM. Prioritize user research and metrics-driven thinking throughout your roadmap."},
}

const motivationFallback = "Your motivation will drive your success. Focus on building concrete PM experience that aligns with what excites you most."

var challengeRules = []adviceRule{
	{[]string{"experience", "enough"},
		"Don't worry about lacking PM experience—most PMs transition from other roles. Focus on Phase 2 to create proof points of PM skills through projects and initiatives."},
	{[]string{"interview", "case"},
		"Interview prep is crucial but learnable. Dedicate focused time in Phase 3 to mock interviews and case practice. Most candidates feel unprepared at first."},
	{[]string{"technical", "tech"},
		"Technical skills can be learned! Start with SQL basics in Phase 1. You don't need to code like an engineer—just understand how products are built."},
	{[]string{"network", "connections"},
		"Networking feels hard but gets easier. Start by reaching out to 2-3 PMs per week for informational interviews. Most people are happy to help!"},
	{[]string{"compete", "competitive"},
		"PM is competitive, but focusing on unique strengths and building proof points will differentiate you. Quality experience > quantity of applications."},
}

const challengeFallback = "Your concerns are valid and shared by many aspiring PMs. Focus on one phase at a time and track your progress. You'll build confidence through action."

// selectAdvice returns the first matching rule's advice, or the fallback.
func selectAdvice(rules []adviceRule, answer, fallback string) string {
	lower := strings.ToLower(answer)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.advice
			}
		}
	}
	return fallback
}
