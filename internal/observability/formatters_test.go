package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/careerpath/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Skills:               []string{"SQL", "Python"},
		CurrentRole:          "Data Analyst",
		EducationLevel:       types.EducationGraduate,
		HasProductExperience: true,
		HasMetrics:           true,
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "CLASSIFIED RESUME PROFILE")
	assert.Contains(t, output, "Data Analyst")
	assert.Contains(t, output, "SQL")
	assert.Contains(t, output, "✓product")
	assert.Contains(t, output, "✓metrics")
	assert.NotContains(t, output, "✓leadership")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_TruncatesSkillList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Skills:      []string{"SQL", "Python", "Excel", "Tableau", "Figma", "Git", "AWS"},
		CurrentRole: types.RoleNotDetected,
	}

	p.PrintProfile(profile)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintTier(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTier(types.Tier{Level: types.TierIntermediate, Badge: "🔵", StartPhase: 2}, 45)
	output := buf.String()

	assert.Contains(t, output, "EXPERIENCE TIER")
	assert.Contains(t, output, "INTERMEDIATE")
	assert.Contains(t, output, "45")
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	roadmap := &types.Roadmap{}
	roadmap.Phases[0] = types.Phase{
		Title: "Build Product Foundations",
		Actions: []types.Action{
			{ID: "learn-sql", Title: "Learn SQL", Priority: types.PriorityHigh, EffortHours: 15},
		},
	}
	roadmap.Phases[1] = types.Phase{Title: "Build Product Credibility"}
	roadmap.Phases[2] = types.Phase{Title: "Polish & Activate"}

	p.PrintRoadmap(roadmap)
	output := buf.String()

	assert.Contains(t, output, "GENERATED ROADMAP")
	assert.Contains(t, output, "Phase 1: Build Product Foundations")
	assert.Contains(t, output, "[HIGH] Learn SQL (15h)")
	assert.Contains(t, output, "Total actions: 1")
}

func TestPrintGaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGaps([]string{"No clear leadership experience visible on resume"})
	output := buf.String()

	assert.Contains(t, output, "RESUME GAPS")
	assert.Contains(t, output, "Found 1 gaps")
	assert.Contains(t, output, "⚠")
}

func TestPrintGaps_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGaps(nil)

	assert.Contains(t, buf.String(), "NO GAPS FOUND")
}

func TestPrintTimeline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTimeline(&types.TimelineEstimate{
		TotalHours:  253,
		TotalWeeks:  26,
		TotalMonths: 7,
		WeeklyHours: 10,
	})
	output := buf.String()

	assert.Contains(t, output, "TIMELINE ESTIMATE")
	assert.Contains(t, output, "253 hours")
	assert.Contains(t, output, "26 weeks (7 months)")
}

func TestPrintStep(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStep(2, 5, "Classifying resume text")

	assert.Equal(t, "[Step 2/5] Classifying resume text\n", buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
