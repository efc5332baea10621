package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "yaml"
	configDir  = ".config/ampboot"

	profileKey = "profile"
	prefixKey  = "prefix"
	projectKey = "project"
)

// config holds the resolved bootstrap settings. Precedence, lowest to
// highest: built-in defaults, $HOME/.config/ampboot/config.yaml, AMPBOOT_*
// environment variables, command-line flags.
type config struct {
	Profile string
	Prefix  string
	Project string
}

func loadConfig() (config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(home, configDir))
	v.SetEnvPrefix("ampboot")
	v.AutomaticEnv()

	v.SetDefault(profileKey, "standard")
	v.SetDefault(prefixKey, filepath.Join(home, "miniconda"))
	v.SetDefault(projectKey, ".")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return config{
		Profile: v.GetString(profileKey),
		Prefix:  v.GetString(prefixKey),
		Project: v.GetString(projectKey),
	}, nil
}
