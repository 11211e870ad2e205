// Package config loads host configuration for the demo shell. Defaults,
// then an optional TOML file, then PRISM_* env overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the demo host needs to assemble a workspace.
type Config struct {
	// MaxTabs caps the total tab count. Must be >= 1.
	MaxTabs int
	// InitialLayout is bound to the first tab of a fresh workspace only.
	InitialLayout string
	// DebounceMS is the outbound sync quiet period in milliseconds.
	DebounceMS int
	// StateDir overrides where persisted workspaces live.
	StateDir string
	// Workspace is the name the demo persists under.
	Workspace string
}

// Debounce returns DebounceMS as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Load reads configuration. Env var overrides use prefix PRISM_;
// PRISM_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("max_tabs", 32)
	v.SetDefault("initial_layout", "")
	v.SetDefault("debounce_ms", 250)
	v.SetDefault("state_dir", "")
	v.SetDefault("workspace", "default")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("PRISM_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "prism"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PRISM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	c := Config{
		MaxTabs:       v.GetInt("max_tabs"),
		InitialLayout: v.GetString("initial_layout"),
		DebounceMS:    v.GetInt("debounce_ms"),
		StateDir:      v.GetString("state_dir"),
		Workspace:     v.GetString("workspace"),
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.MaxTabs < 1 {
		return fmt.Errorf("max_tabs must be >= 1, got %d", c.MaxTabs)
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must be >= 0, got %d", c.DebounceMS)
	}
	if c.Workspace == "" {
		return fmt.Errorf("workspace name must not be empty")
	}
	return nil
}
