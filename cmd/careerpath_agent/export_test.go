package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateRoadmapJSON runs the pipeline once to produce a real artifact for
// export tests to chew on.
func generateRoadmapJSON(t *testing.T, binaryPath string) string {
	t.Helper()
	tmpDir := t.TempDir()
	resumePath := writeTestResume(t, tmpDir)
	outDir := filepath.Join(tmpDir, "output")

	cmd := exec.Command(binaryPath, "run",
		"--resume", resumePath,
		"--out", outDir,
		"--motivation", "I want to ship products",
		"--challenges", "No PM title yet",
		"--weekly-hours", "10")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	return filepath.Join(outDir, "roadmap.json")
}

func TestExportCommand_RendersHTML(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jsonPath := generateRoadmapJSON(t, binaryPath)
	htmlPath := filepath.Join(t.TempDir(), "report.html")

	cmd := exec.Command(binaryPath, "export", "--input", jsonPath, "--html", htmlPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, string(output), "HTML report written")
	assert.FileExists(t, htmlPath)
}

func TestExportCommand_ValidateOnly(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jsonPath := generateRoadmapJSON(t, binaryPath)

	cmd := exec.Command(binaryPath, "export", "--input", jsonPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.NotContains(t, string(output), "HTML report written")
}

func TestExportCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "export")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestExportCommand_MalformedArtifact(t *testing.T) {
	binaryPath := getBinaryPath(t)
	badPath := filepath.Join(t.TempDir(), "roadmap.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0644))

	cmd := exec.Command(binaryPath, "export", "--input", badPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read roadmap")
}
