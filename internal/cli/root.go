// Package cli defines the cobra command tree for sauna-itta.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/totonoe/sauna-itta/internal/kv"
	"github.com/totonoe/sauna-itta/internal/store"
)

var (
	flagFormat  string
	flagDataDir string
	flagStorage string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "si",
		Short:         "Track sauna visits on a map",
		Long:          "A personal sauna visit tracker. Pin places you have visited or want to visit, rate and tag them, and browse the list on a map via CLI or web UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: ~/.sauna-itta)")
	root.PersistentFlags().StringVar(&flagStorage, "storage", "", "storage backend (sqlite|diskv)")

	root.AddCommand(
		newAddCmd(),
		newListCmd(),
		newShowCmd(),
		newRemoveCmd(),
		newImportCmd(),
		newExportCmd(),
		newStatsCmd(),
		newNearCmd(),
		newThemeCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openStore opens the configured kv backend and loads the visit store
// over it.
func openStore() (*store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	return store.Open(backend), nil
}

// openBackend picks the kv implementation from flags and config.
func openBackend(cfg Config) (kv.Store, error) {
	switch cfg.resolveStorage() {
	case StorageDiskv:
		return kv.OpenDiskv(cfg.diskvPath(), cfg.MaxValueBytes)
	case StorageSQLite:
		return kv.OpenSQLite(cfg.sqlitePath(), cfg.MaxValueBytes)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.resolveStorage())
	}
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeStore closes the store, logging any error to stderr.
func closeStore(s *store.Store) {
	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing store: %v\n", err)
	}
}

// warnUnsaved reports a persistence failure without failing the
// command: the change took effect in memory but a reload will lose it.
func warnUnsaved(err error) {
	if err == nil {
		return
	}
	slog.Warn("change not persisted", "error", err)
	fmt.Fprintf(os.Stderr, "warning: the change was NOT saved (%v)\n", err)
}
