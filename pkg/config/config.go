// Package config loads the zc command-line configuration from an optional
// TOML file with ZC_* environment variables layered on top.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "zc.toml"

// Config drives the zc command line. Every field is optional: a missing
// file or missing keys fall back to defaults, and the ZC_CC, ZC_ENTRY and
// ZC_DEBUG environment variables override whatever the file said.
type Config struct {
	Compiler string `toml:"compiler"` // C compiler invoked on the generated code
	Entry    string `toml:"entry"`    // entry source file
	Debug    bool   `toml:"debug"`    // print the generated C before compiling
	Watch    Watch  `toml:"watch"`
}

// Watch configures rebuild-on-change behavior.
type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	Exclude  []string      `toml:"exclude"` // glob patterns for paths to ignore
}

// Load reads path if it exists and applies environment overrides. A missing
// config file is not an error; any other read or decode failure is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Compiler: "gcc",
		Entry:    "main.z",
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}

	cfg.Compiler = env.Str("ZC_CC", cfg.Compiler)
	cfg.Entry = env.Str("ZC_ENTRY", cfg.Entry)
	if env.Bool("ZC_DEBUG") {
		cfg.Debug = true
	}
	return cfg, nil
}
