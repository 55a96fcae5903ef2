package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "Info", cfg.Trace)
	assert.Equal(t, "noq> ", cfg.Prompt)
	assert.Equal(t, ".noq_history", cfg.History)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.Preload)
}

func TestConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noq.yaml")
	yml := `trace: Debug
prompt: "rewrite> "
quiet: true
preload:
  - peano.noq
  - bool.noq
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))
	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Debug", cfg.Trace)
	assert.Equal(t, "rewrite> ", cfg.Prompt)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, []string{"peano.noq", "bool.noq"}, cfg.Preload)
	// untouched keys keep their defaults
	assert.Equal(t, ".noq_history", cfg.History)
}

func TestConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"file> \"\n"), 0644))
	t.Setenv("NOQ_PROMPT", "env> ")
	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "env> ", cfg.Prompt)
}

func TestConfigFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace: Error\nquiet: true\n"), 0644))
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("trace", "", "")
	flags.BoolP("quiet", "q", false, "")
	require.NoError(t, flags.Parse([]string{"--trace", "Debug"}))
	cfg, err := loadConfig(path, flags)
	require.NoError(t, err)
	// a flag the user set wins over the file
	assert.Equal(t, "Debug", cfg.Trace)
	// a flag left at its default must not shadow the file
	assert.True(t, cfg.Quiet)
}

func TestConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
