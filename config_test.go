package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := loadConfig(v)
	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.Append)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ModeReset, cfg.Mode())
	assert.Equal(t, ".", cfg.OutputPath())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LINESORT_PREFIX", "env_")
	t.Setenv("LINESORT_APPEND", "true")
	t.Setenv("LINESORT_LOG_LEVEL", "debug")

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	cfg := loadConfig(v)
	assert.Equal(t, "env_", cfg.Prefix)
	assert.True(t, cfg.Append)
	assert.Equal(t, ModeAppend, cfg.Mode())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfig_OutputPath(t *testing.T) {
	cfg := Config{BaseDir: "base", OutputDir: "out"}
	assert.Equal(t, filepath.Join("base", "out"), cfg.OutputPath())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{BaseDir: ".", Format: FormatYAML}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown format", Config{BaseDir: ".", Format: "xml"}},
		{"prefix with separator", Config{BaseDir: ".", Format: FormatText, Prefix: "../x"}},
		{"empty base dir", Config{Format: FormatText}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsCode(err, ErrConfigInvalid))
		})
	}
}
