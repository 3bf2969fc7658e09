package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Store owns one accumulator per kind for the duration of a run.
type Store struct {
	accs map[Kind]*Accumulator
}

// NewStore returns a store with empty accumulators (reset mode).
func NewStore() *Store {
	s := &Store{accs: make(map[Kind]*Accumulator, len(Kinds))}
	for _, kind := range Kinds {
		s.accs[kind] = NewAccumulator(kind)
	}
	return s
}

// Update adds a classified line to its kind's accumulator.
func (s *Store) Update(line ClassifiedLine) {
	acc := s.accs[line.Kind]
	switch line.Kind {
	case KindInteger, KindFloat:
		acc.AddNumber(line.Value)
	case KindText:
		acc.AddText(line.Raw)
	}
}

// Summaries returns one snapshot per kind in Kinds order.
func (s *Store) Summaries() []Statistics {
	out := make([]Statistics, 0, len(Kinds))
	for _, kind := range Kinds {
		out = append(out, s.accs[kind].Summary())
	}
	return out
}

// RehydrateResult describes what a rehydration replayed and what it had to skip.
type RehydrateResult struct {
	Replayed map[Kind]int
	Failed   map[Kind]int
	Errors   []error
}

// Rehydrate replays each kind's existing output file into the store.
// Lines from the Integer and Float files are re-parsed with that kind's own parser,
// never reclassified; Text lines are taken as they are. Corrupt lines and unreadable
// files are reported in the result and do not stop the remaining lines or kinds.
func (s *Store) Rehydrate(router *Router) RehydrateResult {
	res := RehydrateResult{
		Replayed: make(map[Kind]int, len(Kinds)),
		Failed:   make(map[Kind]int, len(Kinds)),
	}
	for _, kind := range Kinds {
		path := router.Path(kind)
		n, errs := s.replayFile(kind, path)
		res.Replayed[kind] = n
		res.Failed[kind] = len(errs)
		res.Errors = append(res.Errors, errs...)
	}
	return res
}

func (s *Store) replayFile(kind Kind, path string) (int, []error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, []error{NewAppError(ErrRehydrate, fmt.Sprintf("cannot open %s file %s", kind, path), err)}
	}
	defer f.Close()

	var (
		replayed int
		errs     []error
	)
	err = eachLine(f, func(n int, text string) {
		line, ok := parseAs(kind, text)
		if !ok {
			errs = append(errs, NewAppError(ErrRehydrate, "corrupt persisted line",
				&CorruptLineError{Kind: kind, Path: path, Line: n, Text: text}))
			return
		}
		s.Update(line)
		replayed++
	})
	if err != nil {
		errs = append(errs, NewAppError(ErrRehydrate, fmt.Sprintf("cannot read %s file %s", kind, path), err))
	}
	return replayed, errs
}

// parseAs parses text with the strict grammar of kind only.
func parseAs(kind Kind, text string) (ClassifiedLine, bool) {
	var (
		v  float64
		ok bool
	)
	switch kind {
	case KindInteger:
		v, ok = ParseInteger(text)
	case KindFloat:
		v, ok = ParseFloat(text)
	case KindText:
		return ClassifiedLine{Kind: KindText, Raw: text}, true
	}
	if !ok {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{Kind: kind, Raw: text, Value: v}, true
}

// eachLine calls fn with every line of r and its 1-based number.
// The "\n" terminator and any carriage returns before it are stripped, so a line never
// ends in "\r" and persisted values read back unchanged. A final unterminated line is kept.
func eachLine(r io.Reader, fn func(n int, line string)) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r")
			fn(n, line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
