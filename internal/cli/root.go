// Package cli implements the corpusgen CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/corpusgen/internal/catalog"
	"github.com/rcliao/corpusgen/internal/config"
	"github.com/rcliao/corpusgen/internal/engine"
	"github.com/rcliao/corpusgen/internal/logger"
	"github.com/rcliao/corpusgen/internal/model"
	"github.com/rcliao/corpusgen/internal/store"
)

var (
	dbPath     string
	configPath string
	formatFlag string
	seedFlag   int64
	verbose    bool

	loadedConfig *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "corpusgen",
	Short: "Pick the next snippet for a learner's text",
	Long: "Selects corpus snippets (poems, math facts, fairy tale lines) to continue what a learner typed,\n" +
		"avoiding repeats and leaning toward categories the session already drew from.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $CORPUSGEN_DB or ~/.corpusgen/corpus.db)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config path (default: $CORPUSGEN_CONFIG or ~/.corpusgen/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Random seed for reproducible picks (0 = time based)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
}

func settings() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		exitErr("load config", err)
	}
	loadedConfig = cfg
	return cfg
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return settings().DBPath
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func newLogger() *logger.Logger {
	cfg := settings().Log
	level := cfg.Level
	if verbose {
		level = "debug"
	}
	l, err := logger.New(cfg.Mode, level)
	if err != nil {
		exitErr("init logger", err)
	}
	return l
}

// loadCatalog picks the catalog source: the configured YAML file, then the
// database, then the built-in catalog.
func loadCatalog(ctx context.Context, s store.Store) (*catalog.Catalog, error) {
	if p := settings().CatalogPath; p != "" {
		return catalog.Load(p)
	}
	models, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(models) == 0 {
		return catalog.Builtin(), nil
	}
	return catalog.New(models)
}

// ensureSeeded copies the built-in catalog into an empty database.
func ensureSeeded(ctx context.Context, s store.Store) error {
	models, err := s.ListModels(ctx)
	if err != nil {
		return err
	}
	if len(models) > 0 {
		return nil
	}
	_, err = s.ImportCatalog(ctx, catalog.Builtin().Models())
	return err
}

func newGenerator(cat *catalog.Catalog, log *logger.Logger, h *model.GenerationHistory) *engine.Generator {
	opts := []engine.Option{engine.WithLogger(log)}
	if seedFlag != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewSource(seedFlag))))
	}
	if h != nil {
		opts = append(opts, engine.WithHistory(*h))
	}
	return engine.New(cat, opts...)
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
