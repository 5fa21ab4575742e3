// SPDX-License-Identifier: MIT
// Package: metisconv/edgelist

package edgelist

import (
	"fmt"
	"strings"
)

// Mode selects how a data line is interpreted.
type Mode int

const (
	// ModePairs reads one edge "u v" per line; extra tokens are ignored.
	ModePairs Mode = iota
	// ModeRows reads one adjacency row "u v1 v2 ..." per line.
	ModeRows
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModePairs:
		return "pairs"
	case ModeRows:
		return "rows"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a mode name ("pairs", "rows"; case-insensitive).
// An empty name selects ModePairs.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pairs", "pair", "edges":
		return ModePairs, nil
	case "rows", "row", "adjacency":
		return ModeRows, nil
	default:
		return ModePairs, fmt.Errorf("ParseMode(%q): %w", name, ErrUnknownMode)
	}
}
