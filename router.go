package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Router appends classified lines to their kind's output file.
// Files are opened lazily on first write and kept open until Close.
type Router struct {
	dir    string
	prefix string
	logger *zap.Logger
	files  map[Kind]*os.File
}

// NewRouter creates a Router writing <prefix><suffix> files under dir.
func NewRouter(dir, prefix string, logger *zap.Logger) *Router {
	return &Router{
		dir:    dir,
		prefix: prefix,
		logger: logger,
		files:  make(map[Kind]*os.File),
	}
}

// Path returns the output file path for kind.
func (r *Router) Path(kind Kind) string {
	return filepath.Join(r.dir, r.prefix+kind.Suffix())
}

// Reset removes existing output files for every kind so a fresh run starts from empty files.
// It must be called before the first Write.
func (r *Router) Reset() error {
	for _, kind := range Kinds {
		path := r.Path(kind)
		err := os.Remove(path)
		if err == nil {
			r.logger.Debug("Removed previous output file", zap.String("path", path))
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return NewAppError(ErrOutputWrite, fmt.Sprintf("cannot reset output file %s", path), err)
		}
	}
	return nil
}

// Write appends the line and a newline terminator with a single write call,
// so an interrupted run leaves only whole lines behind.
func (r *Router) Write(line ClassifiedLine) error {
	f, err := r.open(line.Kind)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line.Raw + "\n"); err != nil {
		return NewAppError(ErrOutputWrite, fmt.Sprintf("cannot write to %s", f.Name()), err)
	}
	return nil
}

func (r *Router) open(kind Kind) (*os.File, error) {
	if f, ok := r.files[kind]; ok {
		return f, nil
	}
	path := r.Path(kind)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, NewAppError(ErrOutputWrite, fmt.Sprintf("cannot open output file %s", path), err)
	}
	r.files[kind] = f
	return f, nil
}

// Close syncs and closes every opened output file. The first error is returned.
func (r *Router) Close() error {
	var firstErr error
	for _, kind := range Kinds {
		f, ok := r.files[kind]
		if !ok {
			continue
		}
		if err := f.Sync(); err != nil && firstErr == nil {
			firstErr = NewAppError(ErrOutputWrite, fmt.Sprintf("cannot sync %s", f.Name()), err)
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = NewAppError(ErrOutputWrite, fmt.Sprintf("cannot close %s", f.Name()), err)
		}
		delete(r.files, kind)
	}
	return firstErr
}
