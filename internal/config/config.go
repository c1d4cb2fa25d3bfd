// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads prompt settings from defaults, YAML config files,
// SECUREEDIT_* environment variables and command line flags, in that order
// of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/toeirei/secureedit/core/secretstore"
	"github.com/toeirei/secureedit/core/secureedit"
)

// Config holds the user-tunable settings of the prompt.
type Config struct {
	Mask          string `mapstructure:"mask" yaml:"mask"`
	SecureDesktop bool   `mapstructure:"secure_desktop" yaml:"secure_desktop"`
	Memory        string `mapstructure:"memory" yaml:"memory"`
	Language      string `mapstructure:"language" yaml:"language"`
	Debug         bool   `mapstructure:"debug" yaml:"debug"`
}

// Defaults returns the default value of every known key.
func Defaults() map[string]any {
	return map[string]any{
		"mask":           string(secureedit.DefaultMaskGlyph),
		"secure_desktop": false,
		"memory":         "auto",
		"language":       "en",
		"debug":          false,
	}
}

// MaskGlyph returns the configured mask, which must be a single rune.
func (c Config) MaskGlyph() (rune, error) {
	if c.Mask == "" {
		return secureedit.DefaultMaskGlyph, nil
	}
	r, size := utf8.DecodeRuneInString(c.Mask)
	if r == utf8.RuneError || size != len(c.Mask) {
		return 0, fmt.Errorf("mask must be exactly one character, got %q", c.Mask)
	}
	return r, nil
}

// EditOptions converts the configuration into options for secureedit.New.
func (c Config) EditOptions() (secureedit.Options, error) {
	glyph, err := c.MaskGlyph()
	if err != nil {
		return secureedit.Options{}, err
	}
	mode, err := secretstore.ParseMode(c.Memory)
	if err != nil {
		return secureedit.Options{}, err
	}
	return secureedit.Options{MaskGlyph: glyph, SecureDesktop: c.SecureDesktop, Memory: mode}, nil
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "SecureEdit")
		default: // Linux, macOS, etc.
			configDir = "/etc/secureedit"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "secureedit")
	}

	return filepath.Join(configDir, "secureedit.yaml"), nil
}

// LoadConfig builds a T from defaults, the first secureedit.yaml found (or
// the explicit configFile), the environment and the flags of cmd. A missing
// config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("secureedit")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("secureedit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// flags use dashes, config keys use underscores
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if bindErr != nil {
		return c, bindErr
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}
	return writeConfig(c, path)
}

func writeConfig[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0o600)
}
