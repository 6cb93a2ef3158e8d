package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerpath/internal/types"
)

func testRoadmap() *types.Roadmap {
	r := &types.Roadmap{
		Tier:              types.Tier{Level: types.TierBeginner, Badge: "🟡", StartPhase: 1},
		Gaps:              []string{"No clear leadership experience visible on resume"},
		MissingSkills:     []string{"SQL"},
		ExistingStrengths: []string{"Ready to build new PM skills!"},
		TimelineNote:      "At 10 hours/week, you'll complete this roadmap in approximately 26 weeks (7 months).",
	}
	r.Phases[0] = types.Phase{
		Title:          "Build Product Foundations",
		Description:    "Gain critical skills you're missing: SQL",
		MotivationNote: "Your motivation will drive your success.",
		Actions: []types.Action{
			{
				ID:          "learn-sql",
				Title:       "PRIORITY: Learn SQL basics for data-driven product decisions",
				Link:        "https://www.datacamp.com/courses/introduction-to-sql",
				Skills:      []string{"SQL basics", "Data literacy"},
				EffortHours: 15,
				Time:        "2 weeks",
				Priority:    types.PriorityHigh,
				Provider:    "DataCamp",
				Why:         "PMs need to analyze data independently.",
			},
		},
	}
	r.Phases[1] = types.Phase{Title: "Build Product Credibility", Description: "Create concrete PM experience"}
	r.Phases[2] = types.Phase{Title: "Polish & Activate", Description: "Prepare for PM roles"}
	return r
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(&ReportData{Roadmap: testRoadmap()})
	require.NoError(t, err)

	assert.Contains(t, html, "BEGINNER")
	assert.Contains(t, html, "Phase 1: Build Product Foundations")
	assert.Contains(t, html, "PRIORITY: Learn SQL basics")
	assert.Contains(t, html, `href="https://www.datacamp.com/courses/introduction-to-sql"`)
	assert.Contains(t, html, "SQL basics, Data literacy")
	assert.Contains(t, html, "priority-HIGH")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	r := testRoadmap()
	r.Phases[0].Actions[0].Title = `<script>alert("x")</script>`

	html, err := RenderHTML(&ReportData{Roadmap: r})
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_NilRoadmap(t *testing.T) {
	_, err := RenderHTML(nil)
	require.Error(t, err)

	var tmplErr *TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadmap.html")

	require.NoError(t, WriteHTML(&ReportData{Roadmap: testRoadmap()}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestWriteRoadmapJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadmap.json")
	original := testRoadmap()

	require.NoError(t, WriteRoadmapJSON(original, path, ""))

	loaded, err := ReadRoadmapJSON(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestWriteRoadmapJSON_SchemaRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	schema := `{
		"type": "object",
		"properties": {
			"tier": {
				"type": "object",
				"properties": {"level": {"enum": ["INTERMEDIATE", "ADVANCED"]}}
			}
		}
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644))

	artifactPath := filepath.Join(dir, "roadmap.json")
	err := WriteRoadmapJSON(testRoadmap(), artifactPath, schemaPath)
	require.Error(t, err)

	// Nothing written on validation failure.
	_, statErr := os.Stat(artifactPath)
	assert.True(t, os.IsNotExist(statErr))
}
