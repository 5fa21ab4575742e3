// SPDX-License-Identifier: MIT
// Package: metisconv/edgelist
//
// reader.go — line scanner that turns an edge list into a core.Adjacency.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/metisconv/core"
)

// Stats counts what happened to every input line during a read.
type Stats struct {
	Lines     int // physical lines seen
	Comments  int // lines starting with the comment prefix
	Blank     int // empty or whitespace-only lines
	Malformed int // ModePairs lines with fewer than two tokens
	SelfLoops int // u == v pairs dropped
	Edges     int // pairs accepted into the relation, duplicates included
}

// Read consumes r to EOF and returns the symmetric, loop-free relation it
// describes together with per-line statistics.
//
// Errors:
//   - ErrParse when a required token is not a base-10 int64.
//   - ErrLineTooLong when a line exceeds the configured maximum.
//   - Any error returned by r.
//
// On error the partial relation is discarded and a nil *core.Adjacency is
// returned.
//
// Complexity: O(L + E) time for L input bytes and E accepted pairs.
func Read(r io.Reader, opts ...Option) (*core.Adjacency, Stats, error) {
	cfg := newReaderConfig(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(initialLineBuffer, cfg.maxLineBytes)), cfg.maxLineBytes)

	adj := core.NewAdjacency()
	var st Stats
	for sc.Scan() {
		st.Lines++
		line := sc.Text()

		if strings.HasPrefix(line, cfg.commentPrefix) {
			st.Comments++
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			st.Blank++
			continue
		}

		var err error
		switch cfg.mode {
		case ModeRows:
			err = readRow(adj, fields, st.Lines, &st, &cfg)
		default:
			err = readPair(adj, fields, st.Lines, &st, &cfg)
		}
		if err != nil {
			return nil, st, err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, st, lineErrorf(methodRead, st.Lines+1, "longer than %d bytes: %w", cfg.maxLineBytes, ErrLineTooLong)
		}
		return nil, st, fmt.Errorf("%s: %w", methodRead, err)
	}

	return adj, st, nil
}

// ReadFile opens path, reads it with Read and closes it on every exit path.
func ReadFile(path string, opts ...Option) (*core.Adjacency, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", methodReadFile, err)
	}
	defer f.Close()

	adj, st, err := Read(f, opts...)
	if err != nil {
		return nil, st, fmt.Errorf("%s %s: %w", methodReadFile, path, err)
	}

	return adj, st, nil
}

// readPair handles one ModePairs data line.
func readPair(adj *core.Adjacency, fields []string, line int, st *Stats, cfg *readerConfig) error {
	if len(fields) < 2 {
		st.Malformed++
		cfg.logger.Debug("skipping malformed line", "line", line, "tokens", len(fields))
		return nil
	}
	u, err := parseID(fields[0], line)
	if err != nil {
		return err
	}
	v, err := parseID(fields[1], line)
	if err != nil {
		return err
	}

	return addPair(adj, u, v, line, st, cfg)
}

// readRow handles one ModeRows data line: head followed by its neighbours.
func readRow(adj *core.Adjacency, fields []string, line int, st *Stats, cfg *readerConfig) error {
	ids := make([]int64, len(fields))
	for i, tok := range fields {
		id, err := parseID(tok, line)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	u := ids[0]
	adj.AddVertex(u)
	for _, v := range ids[1:] {
		if err := addPair(adj, u, v, line, st, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addPair records {u,v}, counting a dropped self-loop instead of failing.
func addPair(adj *core.Adjacency, u, v int64, line int, st *Stats, cfg *readerConfig) error {
	err := adj.AddEdge(u, v)
	switch {
	case errors.Is(err, core.ErrLoopNotAllowed):
		st.SelfLoops++
		cfg.logger.Debug("dropping self-loop", "line", line, "node", u)
		return nil
	case err != nil:
		return lineErrorf(methodRead, line, "%w", err)
	}
	st.Edges++

	return nil
}

// parseID parses a raw node identifier token.
func parseID(tok string, line int) (int64, error) {
	id, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, lineErrorf(methodRead, line, "token %q: %w", tok, ErrParse)
	}

	return id, nil
}
