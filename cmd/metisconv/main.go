// SPDX-License-Identifier: MIT
// Package: metisconv/cmd/metisconv

// Command metisconv converts edge-list graph files to the METIS adjacency
// format and inspects METIS files.
//
// Usage:
//
//	metisconv convert p2p-Gnutella08.txt p2p-Gnutella08.metis
//	metisconv convert --mode rows adjacency.txt graph.metis
//	metisconv verify graph.metis --partition graph.metis.part.8
//	metisconv stats graph.metis
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
