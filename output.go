package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// formatNumber renders a float in the shortest form that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// renderText generates the human-readable summary. With full set, extrema, sums and
// means (or text lengths) follow each count.
func renderText(report *Report, full bool) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("--- Summary (%s run) ---\n", report.Mode))
	builder.WriteString(fmt.Sprintf("Input files: %d\n", len(report.Inputs)))
	builder.WriteString(fmt.Sprintf("Lines processed: %d\n", report.Lines))
	if len(report.RehydrateWarnings) > 0 {
		builder.WriteString(fmt.Sprintf("Rehydrate warnings: %d\n", len(report.RehydrateWarnings)))
	}
	builder.WriteString("\n")

	for _, s := range report.Stats {
		builder.WriteString(fmt.Sprintf("Statistics for %s:\n", s.Kind))
		builder.WriteString(fmt.Sprintf("Count: %d\n", s.Count))
		if full {
			builder.WriteString(statsDetail(s))
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// statsDetail renders the full-mode line for one kind, without a trailing newline.
func statsDetail(s Statistics) string {
	if s.Count == 0 {
		return "No data"
	}
	if !s.Kind.Numeric() {
		return fmt.Sprintf("Min length: %d, Max length: %d", s.MinLength, s.MaxLength)
	}
	mean, _ := s.Mean()
	return fmt.Sprintf("Min: %s, Max: %s, Sum: %s, Mean: %s",
		formatNumber(s.Min), formatNumber(s.Max), formatNumber(s.Sum), formatNumber(mean))
}

type yamlReport struct {
	Mode      string     `yaml:"mode"`
	Prefix    string     `yaml:"prefix,omitempty"`
	OutputDir string     `yaml:"output_dir"`
	Inputs    []string   `yaml:"inputs"`
	Lines     int        `yaml:"lines"`
	Kinds     []yamlKind `yaml:"kinds"`
	Warnings  []string   `yaml:"rehydrate_warnings,omitempty"`
}

type yamlKind struct {
	Kind      string   `yaml:"kind"`
	Count     int64    `yaml:"count"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	Sum       *float64 `yaml:"sum,omitempty"`
	Mean      *float64 `yaml:"mean,omitempty"`
	MinLength *int     `yaml:"min_length,omitempty"`
	MaxLength *int     `yaml:"max_length,omitempty"`
}

// renderYAML generates the report as a YAML document. Extrema are omitted when
// full is false or when a kind has no data.
func renderYAML(report *Report, full bool) ([]byte, error) {
	doc := yamlReport{
		Mode:      string(report.Mode),
		Prefix:    report.Prefix,
		OutputDir: report.OutputDir,
		Inputs:    report.Inputs,
		Lines:     report.Lines,
		Warnings:  report.RehydrateWarnings,
	}
	for _, s := range report.Stats {
		s := s // per-iteration copy: fields are addressed below (go < 1.22 loop semantics)
		k := yamlKind{Kind: s.Kind.String(), Count: s.Count}
		if full && s.Count > 0 {
			if s.Kind.Numeric() {
				mean, _ := s.Mean()
				k.Min, k.Max, k.Sum, k.Mean = &s.Min, &s.Max, &s.Sum, &mean
			} else {
				k.MinLength, k.MaxLength = &s.MinLength, &s.MaxLength
			}
		}
		doc.Kinds = append(doc.Kinds, k)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, NewAppError(ErrReportFormat, "cannot encode report as YAML", err)
	}
	return out, nil
}

// renderReport renders the report in the configured format.
func renderReport(report *Report, cfg Config) (string, error) {
	if cfg.Format == FormatYAML {
		out, err := renderYAML(report, cfg.Full)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return renderText(report, cfg.Full), nil
}
