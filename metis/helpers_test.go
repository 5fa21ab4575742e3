package metis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metisconv/core"
	"github.com/katalvlaran/metisconv/edgelist"
	"github.com/katalvlaran/metisconv/metis"
	"github.com/katalvlaran/metisconv/relabel"
)

// buildFromEdgeList runs ingestion, relabeling and Build over input.
func buildFromEdgeList(t *testing.T, input string) *metis.Graph {
	t.Helper()
	adj, _, err := edgelist.Read(strings.NewReader(input))
	require.NoError(t, err)

	return buildFromAdjacency(t, adj)
}

func buildFromAdjacency(t *testing.T, adj *core.Adjacency) *metis.Graph {
	t.Helper()
	g, err := metis.Build(adj, relabel.New(adj))
	require.NoError(t, err)

	return g
}

// encodeString renders g through Encode.
func encodeString(t *testing.T, g *metis.Graph) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, metis.Encode(&sb, g))

	return sb.String()
}
