package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds defaults read from the --config TOML file. Command-line flags
// always take precedence over file values.
//
//	format = "json"
//	verify = true
//	allow_disconnected = false
//	log_level = "debug"
type Config struct {
	Format            string `toml:"format"`
	Verify            bool   `toml:"verify"`
	AllowDisconnected bool   `toml:"allow_disconnected"`
	LogLevel          string `toml:"log_level"`
}

// defaultConfig returns the settings used when no config file is given.
func defaultConfig() Config {
	return Config{
		Format:   formatText,
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// level resolves the configured log level; verbose forces debug.
func (c Config) level(verbose bool) (log.Level, error) {
	if verbose {
		return log.DebugLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}
