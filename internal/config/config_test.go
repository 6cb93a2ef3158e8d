package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerpath/internal/types"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"resume": "resume.pdf",
		"motivation": "I love solving problems",
		"challenges": "No PM experience yet",
		"weekly_hours": 12,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.pdf", cfg.Resume)
	assert.Equal(t, "I love solving problems", cfg.Motivation)
	assert.Equal(t, "No PM experience yet", cfg.Challenges)
	assert.Equal(t, 12, cfg.WeeklyHours)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_WeeklyHoursRange(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{WeeklyHours: 10}).Validate())
	assert.Error(t, (&Config{WeeklyHours: 2}).Validate())
	assert.Error(t, (&Config{WeeklyHours: 41}).Validate())
}

func TestValidate_ResumeMustExist(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.pdf"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")

	tmpFile := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("text"), 0644))
	assert.NoError(t, (&Config{Resume: tmpFile}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Motivation: "build products"}
	defaults := Config{
		Resume:      "default.pdf",
		Motivation:  "ignored",
		Challenges:  "interviews",
		WeeklyHours: 15,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "default.pdf", merged.Resume)
	assert.Equal(t, "build products", merged.Motivation)
	assert.Equal(t, "interviews", merged.Challenges)
	assert.Equal(t, 15, merged.WeeklyHours)
}

func TestMergeWithDefaults_FallbackWeeklyHours(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, types.DefaultWeeklyHours, merged.WeeklyHours)
}

func TestInputs(t *testing.T) {
	cfg := &Config{Motivation: "impact", Challenges: "network", WeeklyHours: 8}

	inputs := cfg.Inputs()

	assert.Equal(t, "impact", inputs.Motivation)
	assert.Equal(t, "network", inputs.Challenges)
	assert.Equal(t, 8, inputs.WeeklyHours)
	assert.NoError(t, inputs.Validate())
}
