package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResume = `Taylor Kim
Marketing Analyst at Fabrikam | Mar 2023 - Present
- Increased campaign conversion by 18% with audience segmentation
Bachelor of Arts in Communications, 2022
Skills: Excel, SQL
`

func writeTestResume(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(testResume), 0644))
	return path
}

func TestRunCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
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

	assert.Contains(t, string(output), "[Step 1/5]")
	assert.FileExists(t, filepath.Join(outDir, "roadmap.json"))
	assert.FileExists(t, filepath.Join(outDir, "roadmap.html"))
}

func TestRunCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resumePath := writeTestResume(t, tmpDir)
	outDir := filepath.Join(tmpDir, "output")

	configJSON := `{
		"resume": "` + resumePath + `",
		"output_dir": "` + outDir + `",
		"motivation": "I enjoy talking to users",
		"challenges": "Limited analytics background",
		"weekly_hours": 8
	}`
	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	cmd := exec.Command(binaryPath, "run", "--config", configPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.FileExists(t, filepath.Join(outDir, "roadmap.json"))
}

func TestRunCommand_MissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume is required")
}

func TestRunCommand_InvalidWeeklyHours(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resumePath := writeTestResume(t, tmpDir)

	cmd := exec.Command(binaryPath, "run", "--resume", resumePath, "--weekly-hours", "50")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "WeeklyHours")
}
