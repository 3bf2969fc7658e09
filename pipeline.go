package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Pipeline classifies input lines, routes them to per-kind files and keeps statistics.
type Pipeline struct {
	cfg     Config
	logger  *zap.Logger
	metrics Collector
}

// NewPipeline creates a Pipeline. A nil logger or collector disables that concern.
func NewPipeline(cfg Config, logger *zap.Logger, metrics Collector) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopCollector{}
	}
	return &Pipeline{cfg: cfg, logger: logger, metrics: metrics}
}

// Run processes inputs in order and returns the final report.
// Configuration, input read and output write errors abort the run and no report is returned.
// Rehydrate problems are logged and listed in the report.
func (p *Pipeline) Run(inputs []string) (report *Report, err error) {
	start := time.Now()
	outDir := p.cfg.OutputPath()

	if err := validateOutputDir(outDir); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, NewAppError(ErrConfigNoInputs, "no input files given", nil)
	}
	if err := checkInputsAreNotOutputs(inputs, outDir, p.cfg.Prefix); err != nil {
		return nil, err
	}

	// All input is read before any output file is touched.
	lines, err := readInputs(inputs)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Read input files", zap.Int("files", len(inputs)), zap.Int("lines", len(lines)))

	router := NewRouter(outDir, p.cfg.Prefix, p.logger)
	defer func() {
		if cerr := router.Close(); cerr != nil && err == nil {
			report, err = nil, cerr
		}
	}()

	store, warnings, err := p.initStore(router)
	if err != nil {
		return nil, err
	}

	for _, text := range lines {
		line := Classify(text)
		store.Update(line)
		if err := router.Write(line); err != nil {
			return nil, err
		}
		p.metrics.LineRouted(line.Kind)
	}

	p.logger.Debug("Run finished",
		zap.String("mode", string(p.cfg.Mode())),
		zap.Int("lines", len(lines)),
		zap.Duration("elapsed", time.Since(start)))

	return &Report{
		Mode:              p.cfg.Mode(),
		Prefix:            p.cfg.Prefix,
		OutputDir:         outDir,
		Inputs:            inputs,
		Lines:             len(lines),
		Stats:             store.Summaries(),
		RehydrateWarnings: warnings,
	}, nil
}

// initStore resets the output files or rehydrates statistics from them.
// Rehydration finishes before the router writes anything.
func (p *Pipeline) initStore(router *Router) (*Store, []string, error) {
	store := NewStore()
	if !p.cfg.Append {
		if err := router.Reset(); err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}

	res := store.Rehydrate(router)
	var warnings []string
	for _, kind := range Kinds {
		p.metrics.Rehydrated(kind, res.Replayed[kind], res.Failed[kind])
		p.logger.Debug("Rehydrated statistics",
			zap.Stringer("kind", kind),
			zap.String("path", router.Path(kind)),
			zap.Int("lines", res.Replayed[kind]),
			zap.Int("errors", res.Failed[kind]))
	}
	for _, rerr := range res.Errors {
		p.logger.Warn("Skipped persisted data while rehydrating", zap.Error(rerr))
		warnings = append(warnings, rerr.Error())
	}
	return store, warnings, nil
}

// validateOutputDir checks that dir exists, is a directory and accepts new files.
func validateOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return NewAppError(ErrConfigOutputDir, fmt.Sprintf("output directory %s does not exist", dir), err)
	}
	if err != nil {
		return NewAppError(ErrConfigOutputDir, fmt.Sprintf("cannot access output directory %s", dir), err)
	}
	if !info.IsDir() {
		return NewAppError(ErrConfigOutputDir, fmt.Sprintf("output path %s is not a directory", dir), nil)
	}
	probe, err := os.CreateTemp(dir, ".linesort-probe-*")
	if err != nil {
		return NewAppError(ErrConfigOutputDir, fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	name := probe.Name()
	if err := errors.Join(probe.Close(), os.Remove(name)); err != nil {
		return NewAppError(ErrConfigOutputDir, fmt.Sprintf("cannot remove write check file %s", name), err)
	}
	return nil
}

// checkInputsAreNotOutputs rejects an input that is one of the files a reset run would remove.
func checkInputsAreNotOutputs(inputs []string, outDir, prefix string) error {
	outputs := outputExcludes(outDir, prefix)
	for _, in := range inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			continue
		}
		if outputs[abs] {
			return NewAppError(ErrConfigInvalid, fmt.Sprintf("input file %s is also an output file of this run", in), nil)
		}
	}
	return nil
}

// readInputs concatenates the lines of every input in file order.
func readInputs(paths []string) ([]string, error) {
	var lines []string
	for _, path := range paths {
		if err := readInput(path, func(_ int, line string) { lines = append(lines, line) }); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func readInput(path string, fn func(n int, line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return NewAppError(ErrInputRead, fmt.Sprintf("cannot open input file %s", path), err)
	}
	defer f.Close()
	if err := eachLine(f, fn); err != nil {
		return NewAppError(ErrInputRead, fmt.Sprintf("cannot read input file %s", path), err)
	}
	return nil
}
