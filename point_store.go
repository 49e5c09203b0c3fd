package geodesic

import "sort"

// PointStore maps each Key to its point. Re-inserting a key overwrites the old
// value; the subdivider only ever re-inserts identical values.
type PointStore struct {
	points map[Key]Point3
}

func NewPointStore() *PointStore {
	return &PointStore{
		points: make(map[Key]Point3, 92),
	}
}

func (s *PointStore) Insert(k Key, p Point3) {
	s.points[k] = p
}

func (s *PointStore) Get(k Key) (Point3, bool) {
	p, found := s.points[k]
	return p, found
}

func (s *PointStore) Len() int {
	return len(s.points)
}

// Each visits every entry in no particular order.
func (s *PointStore) Each(fn func(Key, Point3)) {
	for k, p := range s.points {
		fn(k, p)
	}
}

// Keys returns every key sorted with Key.Less.
func (s *PointStore) Keys() []Key {
	keys := make([]Key, 0, len(s.points))
	for k := range s.points {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}

func (s *PointStore) CountKind(kind KeyKind) int {
	total := 0
	for k := range s.points {
		if k.Kind() == kind {
			total++
		}
	}
	return total
}

func (s *PointStore) Copy() *PointStore {
	points := make(map[Key]Point3, len(s.points))
	for k, p := range s.points {
		points[k] = p
	}
	return &PointStore{points: points}
}
