package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDirection(t *testing.T) {
	assert.NotEqual(t, EdgeKey(1, 2), EdgeKey(2, 1))
	assert.Equal(t, EdgeKey(1, 2), EdgeKey(1, 2))
	assert.NotEqual(t, VertexKey(0), EdgeKey(0, 0))
	assert.NotEqual(t, CentroidKey(0, 1, 2), CentroidKey(2, 1, 0))
}

func TestKeyAccessors(t *testing.T) {
	testCases := []struct {
		key     Key
		kind    KeyKind
		indices []int
		str     string
	}{
		{VertexKey(7), KindVertex, []int{7}, "7"},
		{EdgeKey(1, 6), KindEdge, []int{1, 6}, "1>6"},
		{CentroidKey(1, 6, 2), KindCentroid, []int{1, 6, 2}, "1,6,2"},
	}

	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.key.Kind())
			assert.Equal(t, len(tc.indices), tc.key.Len())
			assert.Equal(t, tc.indices, tc.key.Indices())
			assert.Equal(t, tc.str, tc.key.String())
		})
	}
}

func TestKeyLess(t *testing.T) {
	assert.True(t, VertexKey(11).Less(EdgeKey(0, 1)))
	assert.True(t, EdgeKey(0, 5).Less(EdgeKey(1, 0)))
	assert.True(t, EdgeKey(1, 0).Less(EdgeKey(1, 2)))
	assert.True(t, EdgeKey(9, 9).Less(CentroidKey(0, 1, 2)))
	assert.False(t, EdgeKey(1, 2).Less(EdgeKey(1, 2)))
}

func TestPointStoreInsertIdempotent(t *testing.T) {
	store := NewPointStore()
	a, b := NewPoint3(0, 0, 0), NewPoint3(3, 0, 0)

	store.Insert(EdgeKey(0, 1), EdgePoint(a, b))
	store.Insert(EdgeKey(0, 1), EdgePoint(a, b))

	require.Equal(t, 1, store.Len())
	got, found := store.Get(EdgeKey(0, 1))
	require.True(t, found)
	assert.Equal(t, NewPoint3(2, 0, 0), got)
}

func TestPointStoreOverwrites(t *testing.T) {
	store := NewPointStore()
	store.Insert(VertexKey(3), NewPoint3(1, 1, 1))
	store.Insert(VertexKey(3), NewPoint3(2, 2, 2))

	got, _ := store.Get(VertexKey(3))
	assert.Equal(t, NewPoint3(2, 2, 2), got)
	_, found := store.Get(VertexKey(4))
	assert.False(t, found)
}

func TestPointStoreKeysSorted(t *testing.T) {
	store := NewPointStore()
	store.Insert(CentroidKey(0, 1, 2), Point3{})
	store.Insert(EdgeKey(2, 1), Point3{})
	store.Insert(VertexKey(5), Point3{})
	store.Insert(EdgeKey(1, 2), Point3{})
	store.Insert(VertexKey(0), Point3{})

	assert.Equal(t, []Key{
		VertexKey(0), VertexKey(5),
		EdgeKey(1, 2), EdgeKey(2, 1),
		CentroidKey(0, 1, 2),
	}, store.Keys())
}

func TestPointStoreEachAndCopy(t *testing.T) {
	store := NewPointStore()
	for i := 0; i < 4; i++ {
		store.Insert(VertexKey(i), NewPoint3(float64(i), 0, 0))
	}

	seen := make(map[Key]Point3)
	store.Each(func(k Key, p Point3) { seen[k] = p })
	assert.Len(t, seen, 4)

	clone := store.Copy()
	clone.Insert(VertexKey(9), Point3{})
	assert.Equal(t, 4, store.Len())
	assert.Equal(t, 5, clone.Len())
}
