package metis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metisconv/metis"
)

func TestVerify(t *testing.T) {
	cases := []struct {
		name string
		g    *metis.Graph
		want error
	}{
		{"valid", &metis.Graph{Nodes: 3, Edges: 2, Adj: [][]int{{2}, {1, 3}, {2}}}, nil},
		{"valid empty", &metis.Graph{}, nil},
		{"nil", nil, metis.ErrNilGraph},
		{"row count", &metis.Graph{Nodes: 2, Edges: 0, Adj: [][]int{{}}}, metis.ErrNodeCount},
		{"out of range", &metis.Graph{Nodes: 2, Edges: 1, Adj: [][]int{{3}, {1}}}, metis.ErrOutOfRange},
		{"zero id", &metis.Graph{Nodes: 2, Edges: 1, Adj: [][]int{{0}, {1}}}, metis.ErrOutOfRange},
		{"self loop", &metis.Graph{Nodes: 2, Edges: 1, Adj: [][]int{{1, 2}, {1}}}, metis.ErrSelfLoop},
		{"unsorted", &metis.Graph{Nodes: 3, Edges: 2, Adj: [][]int{{3, 2}, {1}, {1}}}, metis.ErrUnsorted},
		{"duplicate", &metis.Graph{Nodes: 2, Edges: 1, Adj: [][]int{{2, 2}, {1}}}, metis.ErrUnsorted},
		{"asymmetric", &metis.Graph{Nodes: 3, Edges: 1, Adj: [][]int{{2, 3}, {1}, {}}}, metis.ErrAsymmetric},
		{"edge count", &metis.Graph{Nodes: 3, Edges: 3, Adj: [][]int{{2}, {1, 3}, {2}}}, metis.ErrEdgeCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := metis.Verify(tc.g)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestVerify_BuiltGraphs checks the structural properties on converter output.
func TestVerify_BuiltGraphs(t *testing.T) {
	inputs := []string{
		"1 2\n2 3\n",
		"1 1\n1 2\n",
		"5 9\n9 5\n9 1\n1 5\n100 9\n-1 100\n",
		"",
	}
	for _, in := range inputs {
		require.NoError(t, metis.Verify(buildFromEdgeList(t, in)), "input %q", in)
	}
}
