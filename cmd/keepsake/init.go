// The init command: create configuration, generate a local identity, and
// bootstrap the ledger with that identity as owner.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	Identity string `yaml:"identity"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize keepsake storage and a local identity",
	Long: `Create the configuration directory and config.yaml, generate a local
caller identity if none exists, and bootstrap the ledger. The first identity
to initialize a data directory becomes the ledger owner (and its initial
backend service).`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	identity := cliConfig.Identity
	if identity == "" {
		identity = generateIdentity()
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := writeConfigIfMissing(configPath, identity); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	cliConfig.Identity = identity

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
		led := ledger.New(types.Identity(identity))
		if err := store.Save(led.Snapshot()); err != nil {
			return fmt.Errorf("bootstrap ledger: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Keepsake initialized\nidentity: %s\n", identity)
	return nil
}

// generateIdentity returns a new local identity string (UUID v7).
func generateIdentity() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil
// (idempotent).
func writeConfigIfMissing(path, identity string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend:  types.BackendSQLite,
		Identity: identity,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
