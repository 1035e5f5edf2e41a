package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gradebook-labs/gradebook/internal/cli/output"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("roster", "", "")
	fs.Float64("threshold", DefaultPassThreshold, "")
	fs.String("output", "", "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.RosterPath)
	assert.Equal(t, 40.0, cfg.PassThreshold)
	assert.Equal(t, "auto", cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gradebook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"roster: class.csv\npass_threshold: 50\noutput: markdown\n"), 0644))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "class.csv", cfg.RosterPath)
	assert.Equal(t, 50.0, cfg.PassThreshold)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gradebook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pass_threshold: 50\n"), 0644))

	t.Setenv("GRADEBOOK_PASS_THRESHOLD", "60")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.PassThreshold)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("GRADEBOOK_PASS_THRESHOLD", "60")
	t.Setenv("GRADEBOOK_ROSTER", "env.csv")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--threshold", "70", "--roster", "flag.csv"}))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)

	// --threshold maps to the pass_threshold key
	assert.Equal(t, 70.0, cfg.PassThreshold)
	assert.Equal(t, "flag.csv", cfg.RosterPath)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("GRADEBOOK_PASS_THRESHOLD", "65")

	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)

	// Flag default must not clobber the env value
	assert.Equal(t, 65.0, cfg.PassThreshold)
}

func TestLoadConfigBadFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gradebook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(":\tnot yaml"), 0644))

	_, err := LoadConfig(cfgPath, nil)
	assert.Error(t, err)
}

func TestGetRendererFromContext(t *testing.T) {
	assert.Nil(t, GetRenderer(context.Background()))

	r := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, output.ModeMarkdown)
	ctx := context.WithValue(context.Background(), RendererKey(), r)
	assert.Same(t, r, GetRenderer(ctx))
}

func TestGetCurrentConfig(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	assert.Nil(t, GetCurrentConfig())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Same(t, cfg, GetCurrentConfig())
}
