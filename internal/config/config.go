// Package config loads the optional .ixmlrc.toml file that supplements
// cmd/ixml's command-line flags, following tunaq's toml.Unmarshal-based
// file-loading convention (internal/tqw/marshaling.go).
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("ixml.config")
}

// Config holds settings that either a .ixmlrc.toml file or CLI flags may
// set; flags always win, see Merge.
type Config struct {
	Trace   string `toml:"trace"`
	NoColor bool   `toml:"no_color"`
	Catalog string `toml:"catalog"`
	Workers int    `toml:"workers"`
}

// Default returns a Config with the engine's baked-in defaults.
func Default() Config {
	return Config{
		Trace:   "Error",
		NoColor: false,
		Workers: 1,
	}
}

// Load reads path (typically ".ixmlrc.toml") and unmarshals it over
// Default(). A missing file is not an error; the defaults are returned
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		tracer().Errorf("config: failed to parse %s: %s", path, err)
		return cfg, err
	}
	return cfg, nil
}

// Merge overlays non-zero CLI flag values onto cfg, returning the result.
// CLI flags always take precedence over file settings.
func (cfg Config) Merge(trace string, noColor bool) Config {
	out := cfg
	if trace != "" {
		out.Trace = trace
	}
	if noColor {
		out.NoColor = true
	}
	return out
}
