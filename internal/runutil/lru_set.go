// internal/runutil/lru_set.go
package runutil

import "container/list"

// LRUSet is a size-bounded set with O(1) hit/insert and least-recently-seen
// eviction. Add returns true if the key was already present.
type LRUSet[K comparable] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

// DefaultDedupeCap bounds the per-record duplicate filter.
const DefaultDedupeCap = 200_000

// NewLRUSet returns a set holding at most capacity keys; capacity <= 0
// selects DefaultDedupeCap.
func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultDedupeCap
	}
	return &LRUSet[K]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element)}
}

// Add inserts k; returns true if it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if e, ok := s.m[k]; ok {
		s.ll.MoveToFront(e)
		return true
	}
	s.m[k] = s.ll.PushFront(k)
	if s.ll.Len() > s.cap {
		tail := s.ll.Back()
		s.ll.Remove(tail)
		delete(s.m, tail.Value.(K))
	}
	return false
}

// Len is the number of keys held.
func (s *LRUSet[K]) Len() int { return s.ll.Len() }
