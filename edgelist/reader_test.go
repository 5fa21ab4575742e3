package edgelist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metisconv/core"
	"github.com/katalvlaran/metisconv/edgelist"
)

// neighborsOf is a tiny helper that fails the test on a missing vertex.
func neighborsOf(t *testing.T, a *core.Adjacency, v int64) []int64 {
	t.Helper()
	nbrs, err := a.Neighbors(v)
	require.NoError(t, err)

	return nbrs
}

func TestRead_PathGraph(t *testing.T) {
	adj, st, err := edgelist.Read(strings.NewReader("1 2\n2 3\n"))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, adj.Vertices())
	assert.Equal(t, []int64{1, 3}, neighborsOf(t, adj, 2))
	assert.Equal(t, edgelist.Stats{Lines: 2, Edges: 2}, st)
}

func TestRead_SkipsCommentsBlankAndMalformed(t *testing.T) {
	input := "# header\n\n   \t\n42\n1 2\n# 9 9\n"
	adj, st, err := edgelist.Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, adj.Vertices())
	assert.Equal(t, 6, st.Lines)
	assert.Equal(t, 2, st.Comments)
	assert.Equal(t, 2, st.Blank)
	assert.Equal(t, 1, st.Malformed)
	assert.Equal(t, 1, st.Edges)
}

func TestRead_SelfLoopsDropped(t *testing.T) {
	adj, st, err := edgelist.Read(strings.NewReader("1 1\n1 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, st.SelfLoops)
	assert.False(t, adj.HasEdge(1, 1))
	assert.Equal(t, []int64{2}, neighborsOf(t, adj, 1))
}

func TestRead_OnlyLoopRegistersNothing(t *testing.T) {
	adj, _, err := edgelist.Read(strings.NewReader("5 5\n"))
	require.NoError(t, err)
	assert.Zero(t, adj.VertexCount())
}

func TestRead_TrailingTokensIgnored(t *testing.T) {
	adj, _, err := edgelist.Read(strings.NewReader("1 2 weight=abc 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, adj.Vertices())
}

func TestRead_DirectedInputIsSymmetrized(t *testing.T) {
	adj, _, err := edgelist.Read(strings.NewReader("1 2\n2 1\n3 1\n"))
	require.NoError(t, err)

	m, err := adj.EdgeCount()
	require.NoError(t, err)
	assert.Equal(t, 2, m)
	assert.True(t, adj.HasEdge(1, 3))
}

func TestRead_CRLFAndNegativeIDs(t *testing.T) {
	adj, _, err := edgelist.Read(strings.NewReader("-4 +7\r\n7 0\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{-4, 0, 7}, adj.Vertices())
}

func TestRead_ParseErrorIsFatal(t *testing.T) {
	cases := map[string]string{
		"first token":  "1 2\nx 3\n",
		"second token": "1 2\n3 4.5\n",
		"overflow":     "99999999999999999999 1\n",
		"indented #":   "  # not a comment\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			adj, _, err := edgelist.Read(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, edgelist.ErrParse), "got %v", err)
			assert.Nil(t, adj)
		})
	}
}

func TestRead_ParseErrorNamesLine(t *testing.T) {
	_, _, err := edgelist.Read(strings.NewReader("1 2\n\n3 abc\n"))
	require.ErrorIs(t, err, edgelist.ErrParse)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestRead_CommentPrefix(t *testing.T) {
	adj, st, err := edgelist.Read(strings.NewReader("% metis style\n1 2\n"), edgelist.WithCommentPrefix("%"))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Comments)
	assert.Equal(t, 2, adj.VertexCount())
}

func TestRead_LineTooLong(t *testing.T) {
	input := "1 2\n" + strings.Repeat("1 ", 64) + "\n"
	_, _, err := edgelist.Read(strings.NewReader(input), edgelist.WithMaxLineBytes(32))
	require.ErrorIs(t, err, edgelist.ErrLineTooLong)
}

func TestRead_RowsModeLongHubLineWithinDefaultLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("0")
	for i := 1; i <= 200000; i++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteString("\n")
	require.Greater(t, sb.Len(), 1<<20)

	adj, _, err := edgelist.Read(strings.NewReader(sb.String()), edgelist.WithMode(edgelist.ModeRows))
	require.NoError(t, err)
	assert.Equal(t, 200000, adj.Degree(0))
}

func TestRead_RowsMode(t *testing.T) {
	input := "# rows\n1 2 3\n2 1\n4\n5 5\n"
	adj, st, err := edgelist.Read(strings.NewReader(input), edgelist.WithMode(edgelist.ModeRows))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, adj.Vertices())
	assert.Equal(t, []int64{2, 3}, neighborsOf(t, adj, 1))
	assert.Empty(t, neighborsOf(t, adj, 4), "single-token row keeps an isolated vertex")
	assert.Empty(t, neighborsOf(t, adj, 5), "row head survives its own self-loop")
	assert.Equal(t, 1, st.SelfLoops)
	assert.Zero(t, st.Malformed)
}

func TestRead_RowsModeParsesEveryToken(t *testing.T) {
	_, _, err := edgelist.Read(strings.NewReader("1 2 x\n"), edgelist.WithMode(edgelist.ModeRows))
	require.ErrorIs(t, err, edgelist.ErrParse)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 20\n20 30\n"), 0o644))

	adj, _, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, adj.VertexCount())

	_, _, err = edgelist.ReadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseMode(t *testing.T) {
	m, err := edgelist.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, edgelist.ModePairs, m)

	m, err = edgelist.ParseMode("ROWS")
	require.NoError(t, err)
	assert.Equal(t, edgelist.ModeRows, m)
	assert.Equal(t, "rows", m.String())

	_, err = edgelist.ParseMode("matrix")
	require.ErrorIs(t, err, edgelist.ErrUnknownMode)
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { edgelist.WithCommentPrefix("") })
	assert.Panics(t, func() { edgelist.WithMaxLineBytes(0) })
	assert.Panics(t, func() { edgelist.WithMode(edgelist.Mode(9)) })
	assert.Panics(t, func() { edgelist.WithLogger(nil) })
}
