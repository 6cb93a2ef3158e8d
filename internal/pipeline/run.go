// Package pipeline provides the high-level orchestration for the roadmap generation process.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/careerpath/internal/classify"
	"github.com/jonathan/careerpath/internal/export"
	"github.com/jonathan/careerpath/internal/ingestion"
	"github.com/jonathan/careerpath/internal/observability"
	"github.com/jonathan/careerpath/internal/roadmap"
	"github.com/jonathan/careerpath/internal/scoring"
	"github.com/jonathan/careerpath/internal/timeline"
	"github.com/jonathan/careerpath/internal/types"
)

const totalSteps = 5

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	ResumePath string
	OutputDir  string
	Inputs     types.UserInputs
	SchemaPath string
	Verbose    bool

	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer
}

// RunResult holds every artifact produced by a pipeline run.
type RunResult struct {
	Profile  *types.Profile
	Tier     types.Tier
	Score    int
	Roadmap  *types.Roadmap
	Estimate *types.TimelineEstimate
	JSONPath string
	HTMLPath string
}

// Run orchestrates the full roadmap pipeline: decode the resume, classify it
// into a profile, score the readiness tier, generate the three-phase roadmap,
// and estimate the timeline. When OutputDir is set, the roadmap JSON and HTML
// report are written there.
func Run(opts RunOptions) (*RunResult, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	printer.PrintStep(1, totalSteps, fmt.Sprintf("Reading resume: %s", opts.ResumePath))
	data, err := os.ReadFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("reading resume failed: %w", err)
	}
	text, err := ingestion.DecodeFile(filepath.Base(opts.ResumePath), data)
	if err != nil {
		return nil, fmt.Errorf("decoding resume failed: %w", err)
	}

	printer.PrintStep(2, totalSteps, "Classifying resume into profile")
	profile, err := classify.Classify(text)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintProfile(profile)
	}

	printer.PrintStep(3, totalSteps, "Scoring readiness tier")
	score := scoring.Score(profile)
	tier := scoring.TierFor(profile)
	if opts.Verbose {
		printer.PrintTier(tier, score)
	}

	printer.PrintStep(4, totalSteps, "Generating roadmap")
	plan, err := roadmap.Generate(profile, opts.Inputs)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintGaps(plan.Gaps)
		printer.PrintRoadmap(plan)
	}

	printer.PrintStep(5, totalSteps, "Estimating timeline")
	estimate := timeline.Estimate(plan, opts.Inputs.WeeklyHours)
	if opts.Verbose {
		printer.PrintTimeline(estimate)
	}

	result := &RunResult{
		Profile:  profile,
		Tier:     tier,
		Score:    score,
		Roadmap:  plan,
		Estimate: estimate,
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory failed: %w", err)
		}

		result.JSONPath = filepath.Join(opts.OutputDir, "roadmap.json")
		if err := export.WriteRoadmapJSON(plan, result.JSONPath, opts.SchemaPath); err != nil {
			return nil, fmt.Errorf("writing roadmap JSON failed: %w", err)
		}

		result.HTMLPath = filepath.Join(opts.OutputDir, "roadmap.html")
		report := &export.ReportData{Roadmap: plan, Profile: profile, Estimate: estimate}
		if err := export.WriteHTML(report, result.HTMLPath); err != nil {
			return nil, fmt.Errorf("writing HTML report failed: %w", err)
		}

		fmt.Fprintf(out, "\nArtifacts written to %s\n", opts.OutputDir)
	}

	return result, nil
}
