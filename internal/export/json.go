package export

import (
	"encoding/json"
	"os"

	"github.com/jonathan/careerpath/internal/schemas"
	"github.com/jonathan/careerpath/internal/types"
)

// WriteRoadmapJSON marshals the roadmap and writes it to path. When a schema
// path is provided the artifact is validated against it first, so an invalid
// document is never written.
func WriteRoadmapJSON(r *types.Roadmap, path, schemaPath string) error {
	if schemaPath != "" {
		if err := schemas.ValidateRoadmap(r, schemaPath); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}

// ReadRoadmapJSON loads a previously exported roadmap artifact.
func ReadRoadmapJSON(path string) (*types.Roadmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r types.Roadmap
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
