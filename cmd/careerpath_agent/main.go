// Package main provides the entry point for the CareerPath CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerpath_agent",
	Short: "PM career roadmap generator",
	Long:  "CareerPath analyzes a resume, classifies skills and experience signals, and generates a personalized three-phase roadmap toward a product management role.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
