package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careerpath/internal/config"
	"github.com/jonathan/careerpath/internal/pipeline"
	"github.com/jonathan/careerpath/internal/schemas"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full roadmap generation pipeline end-to-end",
	Long: `Orchestrates the entire roadmap generation process: ingestion -> classification -> scoring -> roadmap generation -> timeline estimation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runResume      string
	runOutDir      string
	runMotivation  string
	runChallenges  string
	runWeeklyHours int
	runSchemaPath  string
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume file (pdf, docx, or txt)")
	runCommand.Flags().StringVarP(&runOutDir, "out", "o", "", "Output directory for roadmap.json and roadmap.html")
	runCommand.Flags().StringVar(&runMotivation, "motivation", "", "Why you want to move into product management")
	runCommand.Flags().StringVar(&runChallenges, "challenges", "", "What worries you about the transition")
	runCommand.Flags().IntVar(&runWeeklyHours, "weekly-hours", 0, "Hours per week you can commit (3-40)")
	runCommand.Flags().StringVar(&runSchemaPath, "schema", "", "Path to roadmap JSON schema (optional, auto-resolved if omitted)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = runOutDir
	}
	if cmd.Flags().Changed("motivation") {
		cfg.Motivation = runMotivation
	}
	if cmd.Flags().Changed("challenges") {
		cfg.Challenges = runChallenges
	}
	if cmd.Flags().Changed("weekly-hours") {
		cfg.WeeklyHours = runWeeklyHours
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Motivation: "I want to build products people love",
		Challenges: "I'm not sure where to start",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	// Step 5: Resolve the artifact schema so exports are validated before writing
	schemaPath := runSchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.RoadmapSchemaPath)
	}

	opts := pipeline.RunOptions{
		ResumePath: cfg.Resume,
		OutputDir:  cfg.OutputDir,
		Inputs:     cfg.Inputs(),
		SchemaPath: schemaPath,
		Verbose:    cfg.Verbose,
	}

	result, err := pipeline.Run(opts)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s %s tier (score %d). %s\n", result.Tier.Badge, result.Tier.Level, result.Score, result.Estimate.Feedback)
	return nil
}
