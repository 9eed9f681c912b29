package ostree

import "iter"

// All returns an iterator over the keys of t in ascending order. Equal keys
// appear in insertion order.
//
// The tree must not be modified during iteration.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		for cur := t.minimum(t.root); cur != none; cur = t.successor(cur) {
			if !yield(t.n(cur).key) {
				return
			}
		}
	}
}

// Backward returns an iterator over the keys of t in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		for cur := t.maximum(t.root); cur != none; cur = t.predecessor(cur) {
			if !yield(t.n(cur).key) {
				return
			}
		}
	}
}
