package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/borough-records-go/internal/models"
)

const sampleCSV = `date,area_name,new_deaths,total_deaths,retail_recreation_percent_change_from_baseline
2020-03-01,Camden,2,2,-10
2020-03-02,Camden,1,3,-30
2020-03-01,Brent,6,6,
2020-03-02,Brent,,6,-20
`

func writeCSV(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Setenv("CONFIG_PATH", "")
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHeatmapCommand(t *testing.T) {
	csvPath := writeCSV(t)

	out, err := execute(t, "heatmap", "--source", "csv", "--data", csvPath,
		"--from", "2020-03-01", "--to", "2020-03-02", "--metric", "new_deaths")
	require.NoError(t, err)

	var resp models.HeatmapResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 6, resp.BaseValue)
	assert.Equal(t, 4, resp.RecordCount)
	assert.Len(t, resp.Entries, 33)
}

func TestStatsCommand(t *testing.T) {
	csvPath := writeCSV(t)

	out, err := execute(t, "stats", "--data", csvPath, "--source", "csv",
		"--from", "2020-03-01", "--to", "2020-03-02")
	require.NoError(t, err)

	var summary models.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 9, summary.TotalDeaths)
	assert.Equal(t, -20.0, summary.AverageRetailRecreationGMR)
}

func TestLatestCommand(t *testing.T) {
	csvPath := writeCSV(t)

	out, err := execute(t, "latest", "--data", csvPath, "--source", "csv",
		"--from", "2020-03-01", "--to", "2020-03-02", "--metric", "new_deaths")
	require.NoError(t, err)

	var records []struct {
		Date    string `json:"date"`
		Borough string `json:"borough"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Brent", records[0].Borough)
	assert.Equal(t, "2020-03-01", records[0].Date)
}

func TestImportThenQuerySQLite(t *testing.T) {
	csvPath := writeCSV(t)
	dbPath := filepath.Join(t.TempDir(), "records.db")

	out, err := execute(t, "import", csvPath, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 4 records")

	out, err = execute(t, "stats", "--source", "sqlite", "--db", dbPath,
		"--from", "2020-03-01", "--to", "2020-03-02")
	require.NoError(t, err)

	var summary models.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 9, summary.TotalDeaths)
	assert.Equal(t, 4, summary.RecordCount)
}

func TestCommandErrors(t *testing.T) {
	csvPath := writeCSV(t)

	_, err := execute(t, "stats", "--data", csvPath, "--source", "csv", "--from", "2020-03-02", "--to", "2020-03-01")
	assert.Error(t, err)

	_, err = execute(t, "heatmap", "--data", csvPath, "--source", "csv",
		"--from", "2020-03-01", "--to", "2020-03-02", "--metric", "rainfall")
	assert.Error(t, err)

	_, err = execute(t, "stats", "--data", csvPath, "--source", "csv", "--from", "2020-03-01")
	assert.Error(t, err, "--to is required")

	_, err = execute(t, "stats", "--source", "csv", "--data", filepath.Join(t.TempDir(), "missing.csv"),
		"--from", "2020-03-01", "--to", "2020-03-02")
	assert.Error(t, err)
}
