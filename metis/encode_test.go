package metis_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metisconv/core"
	"github.com/katalvlaran/metisconv/metis"
)

func TestEncode_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"path", "1 2\n2 3\n", "3 2\n2\n1 3\n2\n"},
		{"self-loop", "1 1\n1 2\n", "2 1\n2\n1\n"},
		{"comments and blanks", "# comment\n\n1 2\n", "2 1\n2\n1\n"},
		{"empty", "# only\n\n", "0 0\n"},
		{"triangle with duplicates", "3 1\n1 2\n2 3\n1 3\n", "3 3\n2 3\n1 3\n1 2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, encodeString(t, buildFromEdgeList(t, tc.input)))
		})
	}
}

func TestEncode_IsolatedNodeEmitsEmptyLine(t *testing.T) {
	adj := core.NewAdjacency()
	require.NoError(t, adj.AddEdge(1, 3))
	adj.AddVertex(2)

	assert.Equal(t, "3 1\n3\n\n1\n", encodeString(t, buildFromAdjacency(t, adj)))
}

func TestEncode_Rejects(t *testing.T) {
	var sink errWriter
	require.ErrorIs(t, metis.Encode(&sink, nil), metis.ErrNilGraph)
	require.ErrorIs(t, metis.Encode(&sink, &metis.Graph{Nodes: 2, Adj: [][]int{{}}}), metis.ErrNodeCount)
}

func TestEncode_PropagatesWriteError(t *testing.T) {
	g := buildFromEdgeList(t, "1 2\n")
	err := metis.Encode(errWriter{}, g)
	require.ErrorIs(t, err, errDiskFull)
}

var errDiskFull = errors.New("disk full")

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errDiskFull }
