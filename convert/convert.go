// SPDX-License-Identifier: MIT
// Package: metisconv/convert

package convert

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/metisconv/core"
	"github.com/katalvlaran/metisconv/edgelist"
	"github.com/katalvlaran/metisconv/metis"
	"github.com/katalvlaran/metisconv/relabel"
)

// Result reports a finished conversion.
type Result struct {
	Output string         // destination path; empty for Transform
	Nodes  int            // N written in the header
	Edges  int            // M written in the header
	Input  edgelist.Stats // per-line ingestion counters
}

// Convert reads the edge list at inputPath and atomically writes its METIS
// form to outputPath.
//
// The whole input is ingested first; on a parse or read error nothing is
// written and outputPath keeps its previous content, if any.
func Convert(inputPath, outputPath string, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	start := time.Now()

	adj, st, err := edgelist.ReadFile(inputPath, cfg.readerOptions()...)
	if err != nil {
		return Result{Input: st}, fmt.Errorf("convert: %w", err)
	}
	g, err := buildGraph(adj, cfg)
	if err != nil {
		return Result{Input: st}, fmt.Errorf("convert %s: %w", inputPath, err)
	}
	if err := metis.WriteFile(outputPath, g); err != nil {
		return Result{Input: st}, fmt.Errorf("convert: %w", err)
	}

	res := Result{Output: outputPath, Nodes: g.Nodes, Edges: g.Edges, Input: st}
	logResult(cfg, res, inputPath, time.Since(start))

	return res, nil
}

// Transform runs the pipeline from r to w. It is the pure bytes-to-bytes form
// of Convert: w receives nothing unless ingestion and verification succeed.
func Transform(r io.Reader, w io.Writer, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	start := time.Now()

	adj, st, err := edgelist.Read(r, cfg.readerOptions()...)
	if err != nil {
		return Result{Input: st}, fmt.Errorf("convert: %w", err)
	}
	g, err := buildGraph(adj, cfg)
	if err != nil {
		return Result{Input: st}, fmt.Errorf("convert: %w", err)
	}
	if err := metis.Encode(w, g); err != nil {
		return Result{Input: st}, fmt.Errorf("convert: %w", err)
	}

	res := Result{Nodes: g.Nodes, Edges: g.Edges, Input: st}
	logResult(cfg, res, "", time.Since(start))

	return res, nil
}

// buildGraph relabels adj, builds the METIS graph and optionally verifies it.
func buildGraph(adj *core.Adjacency, cfg config) (*metis.Graph, error) {
	g, err := metis.Build(adj, relabel.New(adj))
	if err != nil {
		return nil, err
	}
	if cfg.verify {
		if err := metis.Verify(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func logResult(cfg config, res Result, input string, took time.Duration) {
	cfg.logger.Info("converted edge list",
		"input", input,
		"output", res.Output,
		"mode", cfg.mode.String(),
		"nodes", res.Nodes,
		"edges", res.Edges,
		"lines", res.Input.Lines,
		"malformed", res.Input.Malformed,
		"self_loops", res.Input.SelfLoops,
		"took", took,
	)
}
