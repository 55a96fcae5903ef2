package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config collects the tool's settings. Sources are merged in ascending
// priority: built-in defaults, a YAML config file, NOQ_* environment
// variables, explicitly set command line flags.
type Config struct {
	Trace   string   `koanf:"trace"`   // trace level [Debug|Info|Error]
	Prompt  string   `koanf:"prompt"`  // REPL prompt
	History string   `koanf:"history"` // REPL history file
	Preload []string `koanf:"preload"` // noq files to execute on startup
	Quiet   bool     `koanf:"quiet"`   // suppress rule and shape echo
}

// findConfigFile finds the config file to use.
// Priority: explicit path > noq.yaml > noq.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"noq.yaml", "noq.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfig loads configuration from file, environment variables and flags.
func loadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"trace":   "Info",
		"prompt":  "noq> ",
		"history": ".noq_history",
		"quiet":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	// Transform: NOQ_TRACE -> trace
	if err := k.Load(env.Provider("NOQ_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "NOQ_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags the user actually set may override file and env
			// settings, never flag defaults.
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
