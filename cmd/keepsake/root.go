// Root command for the keepsake CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/internal/paths"
	"github.com/oakmere/keepsake/internal/sqlite"
	"github.com/oakmere/keepsake/pkg/keepsake"
	"github.com/oakmere/keepsake/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagAs        string
	flagJSON      bool
	flagVerbose   bool
)

// cliConfig holds values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var cliConfig cliConfigValues

var rootCmd = &cobra.Command{
	Use:     "keepsake",
	Short:   "Keepsake tracks completed media and the completion tokens it mints for them",
	Version: keepsake.Version,
	Long: `Keepsake maintains a ledger of which users completed which media items
(movies, books, shows, ...), mints one completion token per (user, media)
pair, and manages per-media discussion groups gated by completion.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		cliConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.keepsake)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.keepsake-db)")
	rootCmd.PersistentFlags().StringVar(&flagAs, "as", "", "caller identity (default: $KEEPSAKE_IDENTITY or config.yaml identity)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(completedCmd)
	rootCmd.AddCommand(canTextCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(burnCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(adminCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > KEEPSAKE_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > KEEPSAKE_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cliConfig.DataDir)
}

// callerIdentity resolves the identity a command acts as:
// --as flag > KEEPSAKE_IDENTITY env > config.yaml identity.
func callerIdentity() (types.Identity, error) {
	if flagAs != "" {
		return types.Identity(flagAs), nil
	}
	if env := os.Getenv(paths.EnvIdentity); env != "" {
		return types.Identity(env), nil
	}
	if cliConfig.Identity != "" {
		return types.Identity(cliConfig.Identity), nil
	}
	return "", fmt.Errorf("no caller identity configured; run 'keepsake init' or pass --as")
}

// newLogger returns the CLI logger: a development logger with --verbose,
// otherwise a no-op.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openStore attaches the SQLite store for the resolved data directory.
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	store := sqlite.NewStore(newLogger())
	cfg := types.Config{Backend: cliConfig.Backend, DataDir: dataDir}
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// withLedger runs fn against the restored ledger. For a mutating operation
// the updated state is saved back before detaching; a failed fn commits
// nothing.
func withLedger(mutating bool, fn func(l *ledger.Ledger) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	state, err := store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if state == nil {
		return fmt.Errorf("keepsake is not initialized; run 'keepsake init'")
	}
	led, err := ledger.Restore(state)
	if err != nil {
		return err
	}

	if err := fn(led); err != nil {
		return err
	}
	if mutating {
		if err := store.Save(led.Snapshot()); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}
	return nil
}
