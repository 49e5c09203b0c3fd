package geodesic

import (
	"strconv"
	"strings"
)

type KeyKind int

const (
	KindVertex KeyKind = iota + 1
	KindEdge
	KindCentroid
)

func (k KeyKind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindEdge:
		return "edge"
	case KindCentroid:
		return "centroid"
	default:
		return "unknown"
	}
}

// Key names a point by the ordered vertex indices it was derived from.
// Keys are comparable values, so EdgeKey(a, b) and EdgeKey(b, a) are distinct
// map keys.
type Key struct {
	n   int
	idx [3]int
}

func VertexKey(a int) Key {
	return Key{n: 1, idx: [3]int{a}}
}

// EdgeKey names the point two thirds of the way from vertex a to vertex b.
func EdgeKey(a, b int) Key {
	return Key{n: 2, idx: [3]int{a, b}}
}

func CentroidKey(a, b, c int) Key {
	return Key{n: 3, idx: [3]int{a, b, c}}
}

func (k Key) Len() int {
	return k.n
}

func (k Key) Kind() KeyKind {
	return KeyKind(k.n)
}

func (k Key) Indices() []int {
	out := make([]int, k.n)
	copy(out, k.idx[:k.n])
	return out
}

// Less orders vertices before edges before centroids, then by index.
func (k Key) Less(other Key) bool {
	if k.n != other.n {
		return k.n < other.n
	}
	for i := 0; i < k.n; i++ {
		if k.idx[i] != other.idx[i] {
			return k.idx[i] < other.idx[i]
		}
	}
	return false
}

func (k Key) String() string {
	parts := make([]string, k.n)
	for i := range parts {
		parts[i] = strconv.Itoa(k.idx[i])
	}
	if k.n == 2 {
		return parts[0] + ">" + parts[1]
	}
	return strings.Join(parts, ",")
}
