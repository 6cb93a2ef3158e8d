package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/careerpath/internal/classify"
	"github.com/jonathan/careerpath/internal/ingestion"
	"github.com/jonathan/careerpath/internal/observability"
	"github.com/jonathan/careerpath/internal/scoring"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a resume into a skills and experience profile",
	Long:  "Decode a resume file (pdf, docx, or txt), classify it into a structured profile, and print the detected skills, role, education, and readiness tier.",
	RunE:  runClassify,
}

var (
	classifyResume  string
	classifyOutFile string
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyResume, "resume", "r", "", "Path to resume file (required)")
	classifyCmd.Flags().StringVarP(&classifyOutFile, "out", "o", "", "Optional path to write the profile as JSON")

	classifyCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(classifyResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	text, err := ingestion.DecodeFile(filepath.Base(classifyResume), data)
	if err != nil {
		return fmt.Errorf("failed to decode resume: %w", err)
	}

	profile, err := classify.Classify(text)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(profile)
	printer.PrintTier(scoring.TierFor(profile), scoring.Score(profile))

	if classifyOutFile != "" {
		encoded, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		if err := os.WriteFile(classifyOutFile, append(encoded, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write profile: %w", err)
		}
		fmt.Printf("Profile written to %s\n", classifyOutFile)
	}

	return nil
}
