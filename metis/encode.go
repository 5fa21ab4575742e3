// SPDX-License-Identifier: MIT
// Package: metisconv/metis
//
// encode.go — METIS text serialization.

package metis

import (
	"bufio"
	"io"
	"strconv"
)

// Encode writes g to w: the header "<Nodes> <Edges>\n" followed by exactly
// Nodes lines, each holding that node's neighbours separated by single spaces.
// Isolated nodes produce an empty line. Rows are written as stored; Build
// already sorts them.
//
// Complexity: O(N + E) bytes written through one buffered writer.
func Encode(w io.Writer, g *Graph) error {
	if g == nil {
		return metisErrorf(methodEncode, "%w", ErrNilGraph)
	}
	if len(g.Adj) != g.Nodes {
		return metisErrorf(methodEncode, "header says %d nodes, have %d rows: %w", g.Nodes, len(g.Adj), ErrNodeCount)
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = strconv.AppendInt(buf, int64(g.Nodes), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(g.Edges), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return metisErrorf(methodEncode, "%w", err)
	}

	for _, row := range g.Adj {
		buf = buf[:0]
		for i, n := range row {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(n), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return metisErrorf(methodEncode, "%w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return metisErrorf(methodEncode, "%w", err)
	}

	return nil
}
