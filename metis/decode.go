// SPDX-License-Identifier: MIT
// Package: metisconv/metis
//
// decode.go — METIS text parsing.

package metis

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// commentPrefix marks a METIS comment line.
const commentPrefix = "%"

// maxLineBytes caps one adjacency line; hubs in large graphs get long.
const maxLineBytes = 64 << 20

// maxPrealloc bounds the row slice allocated from an untrusted header.
const maxPrealloc = 1 << 16

// Decode parses an unweighted METIS file.
//
// Rules:
//   - Lines starting with "%" are comments anywhere in the file.
//   - The first non-comment line is the header "n m [fmt]"; fmt must be
//     absent or all zeros, otherwise ErrUnsupportedFormat.
//   - The next n non-comment lines are adjacency rows; an empty line is an
//     isolated node.
//   - Anything but blank or comment lines after the n-th row is ErrMalformed.
//
// Decode does not check symmetry or ranges; run Verify for that.
func Decode(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		g      *Graph
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields := strings.Fields(line)

		if g == nil {
			if len(fields) == 0 {
				continue
			}
			hdr, err := parseHeader(fields, lineNo)
			if err != nil {
				return nil, err
			}
			g = hdr
			continue
		}

		if len(g.Adj) == g.Nodes {
			if len(fields) != 0 {
				return nil, metisErrorf(methodDecode, "line %d: data after %d rows: %w", lineNo, g.Nodes, ErrMalformed)
			}
			continue
		}

		row := make([]int, len(fields))
		for i, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, metisErrorf(methodDecode, "line %d: token %q: %w", lineNo, tok, ErrMalformed)
			}
			row[i] = n
		}
		g.Adj = append(g.Adj, row)
	}
	if err := sc.Err(); err != nil {
		return nil, metisErrorf(methodDecode, "%w", err)
	}

	if g == nil {
		return nil, metisErrorf(methodDecode, "missing header: %w", ErrMalformed)
	}
	if len(g.Adj) != g.Nodes {
		return nil, metisErrorf(methodDecode, "header says %d nodes, found %d rows: %w", g.Nodes, len(g.Adj), ErrMalformed)
	}

	return g, nil
}

// parseHeader reads "n m [fmt]".
func parseHeader(fields []string, lineNo int) (*Graph, error) {
	if len(fields) < 2 {
		return nil, metisErrorf(methodDecode, "line %d: header needs n and m: %w", lineNo, ErrMalformed)
	}
	if len(fields) > 3 {
		return nil, metisErrorf(methodDecode, "line %d: multi-constraint header: %w", lineNo, ErrUnsupportedFormat)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, metisErrorf(methodDecode, "line %d: node count %q: %w", lineNo, fields[0], ErrMalformed)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil || m < 0 {
		return nil, metisErrorf(methodDecode, "line %d: edge count %q: %w", lineNo, fields[1], ErrMalformed)
	}
	if len(fields) == 3 && strings.Trim(fields[2], "0") != "" {
		return nil, metisErrorf(methodDecode, "line %d: fmt %q: %w", lineNo, fields[2], ErrUnsupportedFormat)
	}

	return &Graph{Nodes: n, Edges: m, Adj: make([][]int, 0, min(n, maxPrealloc))}, nil
}
