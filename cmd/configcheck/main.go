// Command configcheck loads the direct configuration resources and prints a
// summary of the studio subtypes and fee tables they define.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/tcdirect/direct-common/pkg/config"
	"github.com/tcdirect/direct-common/pkg/db"
	"github.com/tcdirect/direct-common/pkg/metrics"
	"github.com/tcdirect/direct-common/pkg/registry"
)

func main() {
	initSchema := flag.Bool("init-schema", false, "create the submissions schema in the DB_* database")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("Error loading .env file", "error", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	level, _ := settings.SlogLevel() // validated by LoadSettings
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	manager := metrics.NewManager(settings.MetricsOptions()...)

	reg, err := registry.Load(settings.ResourceFS(), logger, registry.WithMetrics(manager))
	if err != nil {
		logger.Error("Configuration is invalid",
			"resource_dir", settings.ResourceDir,
			"error", err,
		)
		os.Exit(1)
	}

	printSummary(os.Stdout, reg)

	if *initSchema {
		if err := createSchema(logger); err != nil {
			logger.Error("Schema creation failed", "error", err)
			os.Exit(1)
		}
	}
}

func createSchema(logger *slog.Logger) error {
	conn, err := db.Connect(db.NewConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	if err := db.CreateSchema(conn); err != nil {
		return err
	}
	logger.Info("Database schema ready")
	return nil
}

// printSummary writes the studio subtypes and fee tables held by reg.
func printSummary(w io.Writer, reg registry.Registry) {
	fmt.Fprintln(w, "Studio subtypes:")
	for _, o := range reg.StudioOverviews() {
		fmt.Fprintf(w, "  %-4d %s\n", o.ID, o.Name)
	}

	fmt.Fprintln(w, "Studio contest fees:")
	for _, f := range reg.StudioContestFees() {
		fmt.Fprintf(w, "  %-4d %-24s fee $%s  1st $%s  2nd $%s  milestone $%s\n",
			f.ID, f.Name,
			humanize.Commaf(f.ContestFee),
			humanize.Commaf(f.FirstPlaceCost),
			humanize.Commaf(f.SecondPlaceCost),
			humanize.Commaf(f.MilestoneCost),
		)
	}

	fmt.Fprintln(w, "Software contest fees:")
	software := reg.SoftwareContestFees()
	for _, key := range sortedKeys(software) {
		f := software[key]
		fmt.Fprintf(w, "  %-4s %-24s fee $%s\n", key, f.Description, humanize.Commaf(f.ContestFee))
	}

	fmt.Fprintln(w, "Copilot fees:")
	copilot := reg.CopilotFees()
	for _, key := range sortedKeys(copilot) {
		fmt.Fprintf(w, "  %-4s fee $%s\n", key, humanize.Commaf(copilot[key].CopilotFee))
	}

	fmt.Fprintf(w, "File types: %d\n", len(reg.FileTypes().FileTypes))
}

// sortedKeys orders contest-type keys numerically when they have equal length.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}
