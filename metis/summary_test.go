package metis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/metisconv/metis"
)

func TestSummarize(t *testing.T) {
	g := &metis.Graph{Nodes: 4, Edges: 2, Adj: [][]int{{2}, {1, 3}, {2}, {}}}
	s := metis.Summarize(g)

	assert.Equal(t, 4, s.Nodes)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, 0, s.MinDegree)
	assert.Equal(t, 2, s.MaxDegree)
	assert.InDelta(t, 1.0, s.AvgDegree, 1e-9)
	assert.Equal(t, 1, s.Isolated)

	assert.Equal(t, metis.Summary{}, metis.Summarize(&metis.Graph{}))
}
