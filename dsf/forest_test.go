package dsf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/dsf"
)

// node is a minimal keyed element for tests.
type node string

func (n node) Key() string { return string(n) }

func newForest(t *testing.T, names ...string) *dsf.Forest[string, node] {
	t.Helper()
	f := dsf.New[string, node]()
	for _, n := range names {
		require.NoError(t, f.MakeSet(node(n)))
	}
	return f
}

func TestMakeSet_Singletons(t *testing.T) {
	f := newForest(t, "A", "B", "C")
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 3, f.Sets())
	for _, n := range []node{"A", "B", "C"} {
		root, err := f.Find(n)
		require.NoError(t, err)
		assert.Equal(t, n, root)
		rank, err := f.Rank(n)
		require.NoError(t, err)
		assert.Zero(t, rank)
	}
}

func TestMakeSet_Duplicate(t *testing.T) {
	f := newForest(t, "A")
	err := f.MakeSet(node("A"))
	assert.ErrorIs(t, err, dsf.ErrDuplicateEntity)
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 1, f.Sets())
}

func TestUnknownElement(t *testing.T) {
	f := newForest(t, "A")

	_, err := f.Find(node("Z"))
	assert.ErrorIs(t, err, dsf.ErrUnknownEntity)
	_, err = f.Union(node("A"), node("Z"))
	assert.ErrorIs(t, err, dsf.ErrUnknownEntity)
	_, err = f.Union(node("Z"), node("A"))
	assert.ErrorIs(t, err, dsf.ErrUnknownEntity)
	_, err = f.Connected(node("A"), node("Z"))
	assert.ErrorIs(t, err, dsf.ErrUnknownEntity)
	_, err = f.Depth(node("Z"))
	assert.ErrorIs(t, err, dsf.ErrUnknownEntity)
	_, err = f.Rank(node("Z"))
	assert.ErrorIs(t, err, dsf.ErrUnknownEntity)
}

func TestUnion_TieMakesFirstRootParent(t *testing.T) {
	f := newForest(t, "A", "B")
	merged, err := f.Union(node("A"), node("B"))
	require.NoError(t, err)
	assert.True(t, merged)

	root, err := f.Find(node("B"))
	require.NoError(t, err)
	assert.Equal(t, node("A"), root)
	rank, _ := f.Rank(node("A"))
	assert.Equal(t, 1, rank)
	assert.Equal(t, 1, f.Sets())
}

func TestUnion_LowerRankGoesUnder(t *testing.T) {
	f := newForest(t, "A", "B", "C")
	_, err := f.Union(node("A"), node("B")) // A rank 1
	require.NoError(t, err)

	// C has rank 0, so it hangs under A even as the first argument.
	_, err = f.Union(node("C"), node("A"))
	require.NoError(t, err)
	root, _ := f.Find(node("C"))
	assert.Equal(t, node("A"), root)
	rank, _ := f.Rank(node("A"))
	assert.Equal(t, 1, rank, "rank grows only on ties")
}

func TestUnion_Idempotent(t *testing.T) {
	f := newForest(t, "A", "B")
	_, err := f.Union(node("A"), node("B"))
	require.NoError(t, err)

	merged, err := f.Union(node("B"), node("A"))
	require.NoError(t, err)
	assert.False(t, merged)
	merged, err = f.Union(node("A"), node("A"))
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 1, f.Sets())
	rank, _ := f.Rank(node("A"))
	assert.Equal(t, 1, rank)
}

func TestUnion_CommutativeEffect(t *testing.T) {
	for _, order := range [][2]node{{"A", "B"}, {"B", "A"}} {
		f := newForest(t, "A", "B", "C")
		_, err := f.Union(order[0], order[1])
		require.NoError(t, err)

		ok, err := f.Connected(node("A"), node("B"))
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = f.Connected(node("B"), node("A"))
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = f.Connected(node("A"), node("C"))
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

// TestFind_PathSplitting builds a rank-2 tree where D sits two links below
// the root, then checks that Find shortens the path and stays stable.
func TestFind_PathSplitting(t *testing.T) {
	f := newForest(t, "A", "B", "C", "D")
	mustUnion(t, f, "A", "B")
	mustUnion(t, f, "C", "D")
	mustUnion(t, f, "A", "C")

	before, err := f.Depth(node("D"))
	require.NoError(t, err)
	assert.Equal(t, 2, before)

	first, err := f.Find(node("D"))
	require.NoError(t, err)
	mid, _ := f.Depth(node("D"))
	second, err := f.Find(node("D"))
	require.NoError(t, err)
	after, _ := f.Depth(node("D"))

	assert.Equal(t, node("A"), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, mid)
	assert.LessOrEqual(t, after, mid)
}

// TestFind_RepeatedFindNeverLengthens checks the compression property on a
// tree grown by pairwise unions of equal-rank sets.
func TestFind_RepeatedFindNeverLengthens(t *testing.T) {
	const n = 64
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("N%02d", i)
	}
	f := newForest(t, names...)
	for step := 1; step < n; step *= 2 {
		for i := 0; i+step < n; i += 2 * step {
			mustUnion(t, f, names[i], names[i+step])
		}
	}
	require.Equal(t, 1, f.Sets())
	rank, _ := f.Rank(node(names[0]))
	assert.Equal(t, 6, rank)

	for _, name := range names {
		d0, _ := f.Depth(node(name))
		assert.LessOrEqual(t, d0, rank)
		r1, err := f.Find(node(name))
		require.NoError(t, err)
		d1, _ := f.Depth(node(name))
		r2, err := f.Find(node(name))
		require.NoError(t, err)
		d2, _ := f.Depth(node(name))

		assert.Equal(t, node(names[0]), r1)
		assert.Equal(t, r1, r2)
		assert.LessOrEqual(t, d1, d0)
		assert.LessOrEqual(t, d2, d1)
	}
}

func mustUnion(t *testing.T, f *dsf.Forest[string, node], a, b string) {
	t.Helper()
	merged, err := f.Union(node(a), node(b))
	require.NoError(t, err)
	require.True(t, merged)
}
