package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// previewLines is the number of leading lines shown in the finder preview.
const previewLines = 20

// runInteractiveFinder lets the user multi-select .txt files below root.
// Returned paths are relative to root. A nil slice with a nil error means the user aborted.
func runInteractiveFinder(root string, showHidden bool) ([]string, error) {
	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Unreadable entries are simply not offered
		}
		if path == root {
			return nil
		}
		if !showHidden && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), inputExt) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		candidates = append(candidates, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning for input files: %w", err)
	}
	if len(candidates) == 0 {
		return nil, NewAppError(ErrConfigNoInputs, fmt.Sprintf("no %s files found below %s", inputExt, root), nil)
	}

	idx, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select input files. Press Tab to multi-select, Enter to confirm."
			}
			return previewFile(filepath.Join(root, candidates[i]))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]string, len(idx))
	for i, index := range idx {
		selected[i] = candidates[index]
	}
	return selected, nil
}

// previewFile shows the first lines of a file together with the kind each would get.
func previewFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("Path: %s\nError: %v", path, err)
	}
	defer f.Close()

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Path: %s\n\n", path))
	scanner := bufio.NewScanner(f)
	for shown := 0; shown < previewLines && scanner.Scan(); shown++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		builder.WriteString(fmt.Sprintf("%-8s %s\n", Classify(line).Kind, line))
	}
	if err := scanner.Err(); err != nil {
		builder.WriteString(fmt.Sprintf("\nError: %v\n", err))
	}
	return builder.String()
}
