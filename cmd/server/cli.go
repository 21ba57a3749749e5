package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cropadvisor/config"
	"cropadvisor/pkg/agronomy"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var cliNow = time.Now

// cliEnv reads .env and the environment like serve does, and returns the
// active tables with the configured timezone.
func cliEnv() (*agronomy.Tables, *time.Location, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("timezone: %w", err)
	}
	t, err := loadTables(cfg.TablesPath)
	if err != nil {
		return nil, nil, err
	}
	return t, loc, nil
}

func newAssessCmd() *cobra.Command {
	var s agronomy.SoilSample
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Classify a soil sample and print the fertilizer plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := agronomy.AssessSoil(s)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"analysis":    a,
				"fertilizers": agronomy.FertilizerSchedule(a.Fertilizer),
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&s.PH, "ph", 0, "soil pH")
	f.Float64Var(&s.Nitrogen, "nitrogen", 0, "available nitrogen (kg/ha)")
	f.Float64Var(&s.Phosphorus, "phosphorus", 0, "available phosphorus (kg/ha)")
	f.Float64Var(&s.Potassium, "potassium", 0, "available potassium (kg/ha)")
	f.Float64Var(&s.OrganicMatter, "organic-matter", 0, "organic matter (%)")
	for _, name := range []string{"ph", "nitrogen", "phosphorus", "potassium", "organic-matter"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSuitabilityCmd() *cobra.Command {
	var month int
	cmd := &cobra.Command{
		Use:   "suitability <crop>",
		Short: "Rate a crop against the season of a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, loc, err := cliEnv()
			if err != nil {
				return err
			}
			if month == 0 {
				month = int(cliNow().In(loc).Month())
			}
			r, err := tables.EvaluateCropSuitability(args[0], month)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().IntVar(&month, "month", 0, "month 1..12 (default: current month)")
	return cmd
}

func newTablesCmd() *cobra.Command {
	tables := &cobra.Command{
		Use:   "tables",
		Short: "Work with the crop, pest and price tables",
	}
	tables.AddCommand(&cobra.Command{
		Use:   "export <file.xlsx|file.yaml>",
		Short: "Write the active tables to a workbook or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := cliEnv()
			if err != nil {
				return err
			}
			return exportTables(t, args[0])
		},
	})
	return tables
}

func exportTables(t *agronomy.Tables, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return agronomy.WriteXLSX(path, t)
	case ".yaml", ".yml":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := agronomy.WriteYAML(f, t); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unsupported export format %q (want .xlsx or .yaml)", filepath.Ext(path))
}
