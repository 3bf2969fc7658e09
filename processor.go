package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.uber.org/zap"
)

// inputExt is the extension an input file argument must carry.
const inputExt = ".txt"

// discoverOptions controls how directory arguments are expanded.
type discoverOptions struct {
	Hidden   bool            // Include hidden files and directories
	NoIgnore bool            // Don't respect .gitignore
	Exclude  map[string]bool // Absolute paths never returned from a walk
}

// collectInputs resolves positional arguments against baseDir, keeping their order.
// Arguments ending in .txt are used as they are unless listed in opts.Exclude; a directory
// argument expands to the .txt files below it in lexical order. Anything else is ignored
// with a warning.
func collectInputs(baseDir string, args []string, opts discoverOptions, logger *zap.Logger) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		path := arg
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, arg)
		}

		if strings.HasSuffix(arg, inputExt) {
			if abs, err := filepath.Abs(path); err == nil && opts.Exclude[abs] {
				logger.Warn("Skipping input that is also an output file", zap.String("arg", arg))
				continue
			}
			inputs = append(inputs, path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			logger.Warn("Ignoring argument that is neither a .txt file nor a directory", zap.String("arg", arg))
			continue
		}
		files, err := walkDirectory(path, opts, logger)
		if err != nil {
			return nil, NewAppError(ErrInputRead, fmt.Sprintf("cannot scan input directory %s", path), err)
		}
		if len(files) == 0 {
			logger.Warn("No .txt files found in directory", zap.String("dir", path))
		}
		inputs = append(inputs, files...)
	}
	return inputs, nil
}

// walkDirectory returns the .txt files below root, respecting hidden-file and .gitignore filters.
func walkDirectory(root string, opts discoverOptions, logger *zap.Logger) ([]string, error) {
	var files []string
	var ignoreMatcher gitignore.IgnoreMatcher

	if !opts.NoIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				logger.Warn("Could not parse .gitignore", zap.String("path", gitIgnorePath), zap.Error(err))
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		isDir := d.IsDir()
		if !opts.Hidden && isHidden(d.Name()) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if ignoreMatcher != nil && ignoreMatcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if isDir || !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), inputExt) {
			return nil
		}

		if abs, err := filepath.Abs(path); err == nil && opts.Exclude[abs] {
			logger.Debug("Skipping output file found in input directory", zap.String("path", path))
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// isHidden checks if a base name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}

// outputExcludes returns the absolute paths of the run's own output files.
func outputExcludes(outDir, prefix string) map[string]bool {
	excludes := make(map[string]bool, len(Kinds))
	for _, kind := range Kinds {
		if abs, err := filepath.Abs(filepath.Join(outDir, prefix+kind.Suffix())); err == nil {
			excludes[abs] = true
		}
	}
	return excludes
}
