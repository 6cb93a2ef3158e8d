package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAdvice_MotivationKeywords(t *testing.T) {
	tests := []struct {
		name       string
		motivation string
		contains   string
	}{
		{"problem solving", "I enjoy problem solving every day", "problem-solving"},
		{"building", "I want to build great software", "building products"},
		{"collaboration", "I thrive collaborating with teams", "collaborative mindset"},
		{"impact", "I want to make an impact on users", "user-focused mindset"},
		{"fallback", "money", "Your motivation will drive your success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := selectAdvice(motivationRules, tt.motivation, motivationFallback)
			assert.Contains(t, advice, tt.contains)
		})
	}
}

func TestSelectAdvice_ChallengeKeywords(t *testing.T) {
	tests := []struct {
		name      string
		challenge string
		contains  string
	}{
		{"experience", "I don't have enough experience", "most PMs transition from other roles"},
		{"interviews", "case interviews scare me", "Interview prep is crucial"},
		{"technical", "my technical background is weak", "Technical skills can be learned"},
		{"networking", "I have no network in tech", "Networking feels hard"},
		{"competition", "the field is so competitive", "PM is competitive"},
		{"fallback", "time management", "Your concerns are valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := selectAdvice(challengeRules, tt.challenge, challengeFallback)
			assert.Contains(t, advice, tt.contains)
		})
	}
}

func TestSelectAdvice_FirstRuleWins(t *testing.T) {
	// "problem" appears in an earlier rule than "build".
	advice := selectAdvice(motivationRules, "I want to build solutions to hard problems", motivationFallback)
	assert.Contains(t, advice, "problem-solving")
}

func TestSelectAdvice_CaseInsensitive(t *testing.T) {
	advice := selectAdvice(challengeRules, "INTERVIEWS", challengeFallback)
	assert.Contains(t, advice, "Interview prep")
}
