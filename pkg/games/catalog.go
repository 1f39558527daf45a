package games

import (
	"bufio"
	"io"

	"github.com/gamedex/gamedex/pkg/errors"
	"github.com/gamedex/gamedex/pkg/logging"
)

// maxLineSize bounds a single dataset line; summaries can get long.
const maxLineSize = 1 << 20

// Catalog owns the immutable ordered sequence of games produced at
// construction time. It exposes no mutation: once New returns, every
// method is a pure read, so a Catalog is safe for unsynchronized
// concurrent use.
type Catalog struct {
	games   []Game
	skipped []int // 1-based line numbers of structurally rejected lines
}

// New builds a Catalog from a stream of raw dataset lines.
//
// The first line is treated as a header and discarded unconditionally; a
// source that is empty after the header yields an empty catalog, not an
// error. Structurally malformed lines (wrong field count) are dropped
// silently; their line numbers are kept and reachable via SkippedLines.
// A content-invalid line (bad date or score) aborts construction: no
// catalog is returned.
//
// If the underlying reader fails mid-stream, New returns the catalog of
// everything parsed before the failure together with a non-nil *errors.IOError,
// so the caller observes the truncation while the partial catalog stays usable.
func New(r io.Reader, opts ...Option) (*Catalog, error) {
	options := defaultOptions().apply(opts...)

	cat := &Catalog{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	// Header line. A completely empty source is a valid empty catalog.
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return cat, errors.WrapIO("read", err)
		}
		return cat, nil
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		game, err := options.loader.ParseGame(scanner.Text())
		if err != nil {
			if errors.IsSkipLine(err) {
				cat.skipped = append(cat.skipped, lineNo)
				logging.Debug().
					Int("line", lineNo).
					Msg("Skipping malformed dataset line")
				continue
			}
			if parseErr, ok := err.(*errors.ParseError); ok && parseErr.Line == 0 {
				parseErr.Line = lineNo
			}
			return nil, err
		}
		cat.games = append(cat.games, game)
	}

	if err := scanner.Err(); err != nil {
		logging.Debug().
			Err(err).
			Int("games", len(cat.games)).
			Msg("Dataset read failed mid-stream, keeping partial catalog")
		return cat, errors.WrapIO("read", err)
	}

	logging.Debug().
		Int("games", len(cat.games)).
		Int("skipped", len(cat.skipped)).
		Msg("Catalog loaded")

	return cat, nil
}

// Len returns the number of games in the catalog.
func (c *Catalog) Len() int {
	return len(c.games)
}

// All returns the full game sequence in ingestion order. The returned
// slice is a copy; callers cannot mutate the catalog through it.
func (c *Catalog) All() []Game {
	out := make([]Game, len(c.games))
	copy(out, c.games)
	return out
}

// SkippedLines returns the 1-based line numbers of structurally rejected
// dataset lines, in encounter order. Empty when nothing was dropped.
func (c *Catalog) SkippedLines() []int {
	out := make([]int, len(c.skipped))
	copy(out, c.skipped)
	return out
}
