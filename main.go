package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string // Optional config file given with --config

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "linesort [FILES.txt|DIRS...]",
	Short: "linesort sorts text lines into integer, float and string files and reports statistics.",
	Long: `linesort reads lines from .txt files, classifies each line as an integer, a float
or a string, appends it to <prefix>int.txt, <prefix>float.txt or <prefix>String.txt
in the output directory and prints per-kind statistics.

A fresh run replaces the output files. With --append the existing output files are
read back first, so statistics continue from the previous runs.`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(viper.GetViper())
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err := newLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return runSort(cfg, args, logger, cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/linesort/config.toml)")

	// Core
	rootCmd.Flags().StringP("output-dir", "o", "", "Output directory, relative to --base-dir")
	viper.BindPFlag("output_dir", rootCmd.Flags().Lookup("output-dir"))
	rootCmd.Flags().StringP("prefix", "p", "", "Prefix for output file names")
	viper.BindPFlag("prefix", rootCmd.Flags().Lookup("prefix"))
	rootCmd.Flags().BoolP("append", "a", false, "Append to existing output files and continue their statistics")
	viper.BindPFlag("append", rootCmd.Flags().Lookup("append"))
	rootCmd.Flags().BoolP("full", "f", false, "Print full statistics instead of counts only")
	viper.BindPFlag("full", rootCmd.Flags().Lookup("full"))
	rootCmd.Flags().String("base-dir", ".", "Directory that input files and the output directory are relative to")
	viper.BindPFlag("base_dir", rootCmd.Flags().Lookup("base-dir"))

	// Input discovery
	rootCmd.Flags().BoolP("hidden", "H", false, "Include hidden files when expanding directory arguments")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().Bool("no-ignore", false, "Don't respect .gitignore when expanding directory arguments")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))
	rootCmd.Flags().Bool("interactive", false, "Pick input files with an interactive fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	// Report
	rootCmd.Flags().String("format", FormatText, "Report format: text or yaml")
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	rootCmd.Flags().String("pdf", "", "Also save the report as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))
	rootCmd.Flags().BoolP("clipboard", "c", false, "Copy the report to the clipboard instead of printing it")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().String("metrics-file", "", "Write Prometheus metrics for the run to this file")
	viper.BindPFlag("metrics_file", rootCmd.Flags().Lookup("metrics-file"))

	// Diagnostics
	rootCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn or error")
	viper.BindPFlag("log.level", rootCmd.Flags().Lookup("log-level"))
	rootCmd.Flags().String("log-file", "", "Also write JSON logs to this file (rotated)")
	viper.BindPFlag("log.file", rootCmd.Flags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "linesort"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}
}

// runSort resolves the inputs, runs the pipeline and delivers the report.
func runSort(cfg Config, args []string, logger *zap.Logger, stdout io.Writer) error {
	start := time.Now()
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Info("Using config file", zap.String("path", used))
	}

	if cfg.Interactive {
		picked, err := runInteractiveFinder(cfg.BaseDir, cfg.Hidden)
		if err != nil {
			return err
		}
		if picked == nil {
			fmt.Fprintln(os.Stderr, "Interactive selection aborted.")
			return nil
		}
		args = append(args, picked...)
	}

	inputs, err := collectInputs(cfg.BaseDir, args, discoverOptions{
		Hidden:   cfg.Hidden,
		NoIgnore: cfg.NoIgnore,
		Exclude:  outputExcludes(cfg.OutputPath(), cfg.Prefix),
	}, logger)
	if err != nil {
		return err
	}

	metrics, err := newCollector(cfg.MetricsFile)
	if err != nil {
		return err
	}
	report, runErr := NewPipeline(cfg, logger, metrics).Run(inputs)
	if err := metrics.Flush(time.Since(start)); err != nil {
		logger.Warn("Could not write metrics", zap.Error(err))
	}
	if runErr != nil {
		return runErr
	}

	return deliverReport(report, cfg, logger, stdout)
}

// deliverReport prints the report, or copies it to the clipboard, and saves the PDF if requested.
func deliverReport(report *Report, cfg Config, logger *zap.Logger, stdout io.Writer) error {
	out, err := renderReport(report, cfg)
	if err != nil {
		return err
	}

	if cfg.PDFFile != "" {
		if err := generatePDF(report, cfg.Full, cfg.PDFFile); err != nil {
			return err
		}
		logger.Info("Saved PDF report", zap.String("path", cfg.PDFFile))
	}

	if cfg.Clipboard {
		err := clipboard.WriteAll(out)
		if err == nil {
			fmt.Fprintln(os.Stderr, "Report copied to clipboard.")
			return nil
		}
		logger.Warn("Could not write to clipboard, printing report instead", zap.Error(err))
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
