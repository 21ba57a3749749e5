package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/config"
	"cropadvisor/pkg/agronomy"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TABLES_PATH", "")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAssessCommand(t *testing.T) {
	out, err := run(t, "assess", "--ph", "6.8", "--nitrogen", "100", "--phosphorus", "10", "--potassium", "300", "--organic-matter", "2.5")
	require.NoError(t, err)

	var resp struct {
		Analysis    agronomy.SoilAssessment   `json:"analysis"`
		Fertilizers []agronomy.FertilizerDose `json:"fertilizers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.InDelta(t, 100, resp.Analysis.Fertilizer.UreaKgPerAcre, 0)
	assert.InDelta(t, 0, resp.Analysis.Fertilizer.PotashKgPerAcre, 0)
	assert.Len(t, resp.Fertilizers, 3)
}

func TestAssessRequiresAllFlags(t *testing.T) {
	_, err := run(t, "assess", "--ph", "6.8")
	assert.ErrorContains(t, err, "required flag")
}

func TestSuitabilityCommand(t *testing.T) {
	out, err := run(t, "suitability", "wheat", "--month", "6")
	require.NoError(t, err)
	var r agronomy.Suitability
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, agronomy.ModeratelySuitable, r.Suitability)

	_, err = run(t, "suitability", "quinoa", "--month", "6")
	assert.True(t, agronomy.IsUnknownCrop(err))

	_, err = run(t, "suitability", "rice", "--month", "13")
	assert.True(t, agronomy.IsInvalidInput(err))
}

func TestTablesExport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tables.xlsx", "tables.yaml"} {
		path := filepath.Join(dir, name)
		_, err := run(t, "tables", "export", path)
		require.NoError(t, err, name)

		got, err := agronomy.LoadTables(path)
		require.NoError(t, err, name)
		assert.Equal(t, agronomy.DefaultTables().Counts(), got.Counts(), name)
	}

	_, err := run(t, "tables", "export", filepath.Join(dir, "tables.csv"))
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestServeFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "debug")

	v := config.NewViper()
	cmd := &cobra.Command{Use: "serve"}
	bindServeFlags(cmd, v)
	require.NoError(t, cmd.ParseFlags([]string{"--port", "8080", "--db", "/tmp/x.db"}))

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel, "unset flags fall back to the environment")
	assert.Equal(t, "json", cfg.LogFormat)
}

// unsetEnv clears a variable for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestSuitabilityReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	tables := "crops:\n  - key: ragi\n    name: Finger Millet\n    season: Kharif\n    water: Low\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tables.yaml"), []byte(tables), 0o644))
	env := "TABLES_PATH=" + filepath.Join(dir, "tables.yaml") + "\nTZ=Pacific/Kiritimati\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Chdir(dir)
	unsetEnv(t, "TABLES_PATH")
	unsetEnv(t, "TZ")

	// 2025-03-31 12:00 UTC is already April 1 at UTC+14.
	cliNow = func() time.Time { return time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { cliNow = time.Now })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"suitability", "ragi"})
	require.NoError(t, cmd.Execute())

	var r agronomy.Suitability
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, "ragi", r.Crop.Key)
	assert.Equal(t, agronomy.Kharif, r.CurrentSeason)
	assert.Equal(t, agronomy.HighlySuitable, r.Suitability)
}
