package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCommand_MissingJD(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "analyze",
		"--history-file", filepath.Join(tmpDir, "history.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "must provide either --jd or --jd-text")
}

func TestAnalyzeCommand_ConflictingJDFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	jdFile := filepath.Join(tmpDir, "jd.txt")
	require.NoError(t, os.WriteFile(jdFile, []byte("We need react experience."), 0644))

	cmd := exec.Command(binaryPath, "analyze",
		"--jd", jdFile,
		"--jd-text", "We need sql experience.",
		"--history-file", filepath.Join(tmpDir, "history.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "cannot use --jd with --jd-text")
}

func TestAnalyzeCommand_StoresHistory(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	historyFile := filepath.Join(tmpDir, "history.json")

	cmd := exec.Command(binaryPath, "analyze",
		"--company", "Google",
		"--role", "SDE",
		"--jd-text", "We need react and sql experience for our backend teams.",
		"--history-file", historyFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "analyze failed: %s", string(output))
	assert.Contains(t, string(output), "Analysis stored with ID")

	data, err := os.ReadFile(historyFile)
	require.NoError(t, err)

	var records []types.AnalysisRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Google", records[0].Company)
	assert.Len(t, records[0].Questions, 10)
}

func TestAnalyzeCommand_WritesReport(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	reportFile := filepath.Join(tmpDir, "report.txt")

	cmd := exec.Command(binaryPath, "analyze",
		"--jd-text", "We need docker and kubernetes experience.",
		"--history-file", filepath.Join(tmpDir, "history.json"),
		"--out", reportFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "analyze failed: %s", string(output))

	report, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Contains(t, string(report), "=== EXTRACTED SKILLS ===")
	assert.Contains(t, string(report), "Docker")
}

func TestHistoryCommand_Empty(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "history",
		"--history-file", filepath.Join(tmpDir, "history.json"))
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "history failed: %s", string(output))
	assert.Contains(t, string(output), "No analyses yet")
}

func TestToggleCommand_InvalidID(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "toggle",
		"--id", "not-a-uuid",
		"--skill", "React",
		"--history-file", filepath.Join(tmpDir, "history.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid analysis id")
}

func TestExportCommand_UnknownSection(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "export",
		"--id", "8f6c9e0a-1111-2222-3333-444455556666",
		"--section", "bogus",
		"--history-file", filepath.Join(tmpDir, "history.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown section")
}

func TestAnalyzeCommand_ConfigFileDefaults(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	historyFile := filepath.Join(tmpDir, "history.json")

	cfgFile := filepath.Join(tmpDir, "prep.json")
	cfgJSON := fmt.Sprintf(`{"company": "Infosys", "role": "Graduate Engineer", "history_file": %q}`, historyFile)
	require.NoError(t, os.WriteFile(cfgFile, []byte(cfgJSON), 0644))

	cmd := exec.Command(binaryPath, "analyze",
		"--config", cfgFile,
		"--jd-text", "We need java and sql for our services teams.")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "analyze failed: %s", string(output))
	assert.Contains(t, string(output), "Analysis stored with ID")

	data, err := os.ReadFile(historyFile)
	require.NoError(t, err)

	var records []types.AnalysisRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Infosys", records[0].Company)
	assert.Equal(t, "Graduate Engineer", records[0].Role)
}

func TestAnalyzeCommand_FlagsBeatConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	historyFile := filepath.Join(tmpDir, "history.json")

	cfgFile := filepath.Join(tmpDir, "prep.json")
	cfgJSON := fmt.Sprintf(`{"company": "Infosys", "history_file": %q}`, historyFile)
	require.NoError(t, os.WriteFile(cfgFile, []byte(cfgJSON), 0644))

	cmd := exec.Command(binaryPath, "analyze",
		"--config", cfgFile,
		"--company", "TCS",
		"--jd-text", "We need python and mongodb experience.")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "analyze failed: %s", string(output))

	data, err := os.ReadFile(historyFile)
	require.NoError(t, err)

	var records []types.AnalysisRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "TCS", records[0].Company)
}

func TestAnalyzeCommand_ConfigRejectsConflictingStores(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cfgFile := filepath.Join(tmpDir, "prep.json")
	cfgJSON := `{"history_file": "history.json", "database_url": "postgres://localhost/prep"}`
	require.NoError(t, os.WriteFile(cfgFile, []byte(cfgJSON), 0644))

	cmd := exec.Command(binaryPath, "analyze",
		"--config", cfgFile,
		"--jd-text", "We need react experience.")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}
