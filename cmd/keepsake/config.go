// Config loading for the keepsake CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/oakmere/keepsake/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyIdentity = "identity"
)

// cliConfigValues holds the settings a command needs from config.yaml.
type cliConfigValues struct {
	Backend  string
	DataDir  string
	Identity string
}

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config.yaml is not an error; defaults apply and 'keepsake init'
// creates the file.
func loadConfig(configDir string) (cliConfigValues, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cliConfigValues{}, fmt.Errorf("read config: %w", err)
		}
	}

	return cliConfigValues{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  v.GetString(cfgKeyDataDir),
		Identity: v.GetString(cfgKeyIdentity),
	}, nil
}
