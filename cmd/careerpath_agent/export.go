package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/careerpath/internal/export"
	"github.com/jonathan/careerpath/internal/schemas"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Validate a roadmap JSON artifact and render it as an HTML report",
	Long:  "Load a previously generated roadmap.json, validate it against the artifact schema, and render the HTML report. Useful for re-exporting a roadmap that was edited by hand.",
	RunE:  runExport,
}

var (
	exportInput      string
	exportHTML       string
	exportSchemaPath string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Path to roadmap JSON artifact (required)")
	exportCmd.Flags().StringVar(&exportHTML, "html", "", "Path to write the HTML report (optional, validate-only if omitted)")
	exportCmd.Flags().StringVar(&exportSchemaPath, "schema", "", "Path to roadmap JSON schema (optional, auto-resolved if omitted)")

	exportCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	roadmap, err := export.ReadRoadmapJSON(exportInput)
	if err != nil {
		return fmt.Errorf("failed to read roadmap: %w", err)
	}

	schemaPath := exportSchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.RoadmapSchemaPath)
	}
	if schemaPath != "" {
		if err := schemas.ValidateRoadmap(roadmap, schemaPath); err != nil {
			return fmt.Errorf("roadmap failed schema validation: %w", err)
		}
		fmt.Printf("Roadmap is valid against %s\n", schemaPath)
	} else {
		fmt.Println("Warning: roadmap schema not found, skipping validation")
	}

	if exportHTML == "" {
		return nil
	}

	report := &export.ReportData{Roadmap: roadmap}
	if err := export.WriteHTML(report, exportHTML); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	fmt.Printf("HTML report written to %s\n", exportHTML)

	return nil
}
