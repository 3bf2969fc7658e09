package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Report formats accepted by --format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the fully resolved configuration of one run.
type Config struct {
	BaseDir     string
	OutputDir   string // Relative to BaseDir
	Prefix      string
	Append      bool
	Full        bool
	Format      string
	PDFFile     string
	Clipboard   bool
	Interactive bool
	Hidden      bool
	NoIgnore    bool
	MetricsFile string
	Log         LogConfig
}

// OutputPath is the output directory resolved against the base directory.
func (c Config) OutputPath() string {
	return filepath.Join(c.BaseDir, c.OutputDir)
}

// Mode returns the store initialisation mode selected by Append.
func (c Config) Mode() RunMode {
	if c.Append {
		return ModeAppend
	}
	return ModeReset
}

// Validate checks settings that do not need the filesystem.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return NewAppError(ErrConfigInvalid, fmt.Sprintf("unknown report format %q (want text or yaml)", c.Format), nil)
	}
	if strings.ContainsAny(c.Prefix, `/\`) {
		return NewAppError(ErrConfigInvalid, fmt.Sprintf("prefix %q must not contain path separators", c.Prefix), nil)
	}
	if c.BaseDir == "" {
		return NewAppError(ErrConfigInvalid, "base directory must not be empty", nil)
	}
	return nil
}

// loadConfig reads the merged default < config file < env < flag values from v.
func loadConfig(v *viper.Viper) Config {
	return Config{
		BaseDir:     v.GetString("base_dir"),
		OutputDir:   v.GetString("output_dir"),
		Prefix:      v.GetString("prefix"),
		Append:      v.GetBool("append"),
		Full:        v.GetBool("full"),
		Format:      strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		PDFFile:     v.GetString("pdf"),
		Clipboard:   v.GetBool("clipboard"),
		Interactive: v.GetBool("interactive"),
		Hidden:      v.GetBool("hidden"),
		NoIgnore:    v.GetBool("no_ignore"),
		MetricsFile: v.GetString("metrics_file"),
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSize:    v.GetInt("log.max_size"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAge:     v.GetInt("log.max_age"),
			Compress:   v.GetBool("log.compress"),
		},
	}
}

// setDefaults registers default values for every configuration key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("base_dir", ".")
	v.SetDefault("output_dir", "")
	v.SetDefault("prefix", "")
	v.SetDefault("append", false)
	v.SetDefault("full", false)
	v.SetDefault("format", FormatText)
	v.SetDefault("hidden", false)
	v.SetDefault("no_ignore", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.max_size", 10) // MB
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7) // days
	v.SetDefault("log.compress", true)
}

// bindEnv makes every key readable from LINESORT_* variables; "log.level" becomes LINESORT_LOG_LEVEL.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("LINESORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}
