package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/dossier-cli/internal/config"
	"github.com/sells-group/dossier-cli/internal/platform"
	"github.com/sells-group/dossier-cli/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dossier-cli",
	Short: "OSINT result reconciliation engine",
	Long:  "Ingests raw multi-provider lookup results, reconciles them into a unified identity dossier, and filters platform cards for display.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// initRules loads display-rule overrides when configured, defaults otherwise.
func initRules() (*platform.Rules, error) {
	if cfg.Rules.Path == "" {
		return platform.DefaultRules(), nil
	}
	return platform.LoadRules(cfg.Rules.Path)
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.SQLitePath
		if dsn == "" {
			dsn = "dossier.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
