// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/careerpath/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`     // Path to resume file (pdf, docx, or txt)
	OutputDir string `json:"output_dir,omitempty"` // Directory for exported artifacts

	// Questionnaire
	Motivation  string `json:"motivation,omitempty"`   // Why the user wants to move into PM
	Challenges  string `json:"challenges,omitempty"`   // What worries them about the transition
	WeeklyHours int    `json:"weekly_hours,omitempty"` // Hours per week available (3-40)

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.WeeklyHours != 0 && (c.WeeklyHours < 3 || c.WeeklyHours > 40) {
		return fmt.Errorf("config error: 'weekly_hours' must be between 3 and 40")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Motivation == "" {
		result.Motivation = defaults.Motivation
	}
	if result.Challenges == "" {
		result.Challenges = defaults.Challenges
	}

	if result.WeeklyHours == 0 {
		if defaults.WeeklyHours > 0 {
			result.WeeklyHours = defaults.WeeklyHours
		} else {
			result.WeeklyHours = types.DefaultWeeklyHours
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Inputs converts the questionnaire fields into validated user inputs.
func (c *Config) Inputs() types.UserInputs {
	return types.UserInputs{
		Motivation:  c.Motivation,
		Challenges:  c.Challenges,
		WeeklyHours: c.WeeklyHours,
	}
}
