package ostree

import "fmt"

// Contains reports whether a key comparing equal to key is present.
// Time: O(log n)
func (t *Tree[K]) Contains(key K) bool {
	if t == nil {
		return false
	}
	for cur := t.root; cur != none; {
		c := t.compare(key, t.n(cur).key)
		switch {
		case c == 0:
			return true
		case c < 0:
			cur = t.n(cur).left
		default:
			cur = t.n(cur).right
		}
	}
	return false
}

// Min returns the smallest key in the tree.
func (t *Tree[K]) Min() (K, error) {
	if t.IsEmpty() {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.n(t.minimum(t.root)).key, nil
}

// Max returns the largest key in the tree.
func (t *Tree[K]) Max() (K, error) {
	if t.IsEmpty() {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.n(t.maximum(t.root)).key, nil
}

// Previous returns the in-order predecessor of the first occurrence of key.
// As that occurrence is the leftmost of its duplicates, the predecessor always
// compares less than key.
func (t *Tree[K]) Previous(key K) (K, error) {
	var zero K
	z, err := t.lookup(key)
	if err != nil {
		return zero, err
	}
	p := t.predecessor(z)
	if p == none {
		return zero, fmt.Errorf("%w: %v is the minimum", ErrNoPredecessor, key)
	}
	return t.n(p).key, nil
}

// Next returns the in-order successor of the first occurrence of key. If key
// is present more than once, this is an equal key.
func (t *Tree[K]) Next(key K) (K, error) {
	var zero K
	z, err := t.lookup(key)
	if err != nil {
		return zero, err
	}
	s := t.successor(z)
	if s == none {
		return zero, fmt.Errorf("%w: %v is the maximum", ErrNoSuccessor, key)
	}
	return t.n(s).key, nil
}

// HasPrevious reports whether key is present and Previous(key) would succeed.
func (t *Tree[K]) HasPrevious(key K) bool {
	z, err := t.lookup(key)
	return err == nil && t.predecessor(z) != none
}

// HasNext reports whether key is present and Next(key) would succeed.
func (t *Tree[K]) HasNext(key K) bool {
	z, err := t.lookup(key)
	return err == nil && t.successor(z) != none
}

// RankOf returns the 1-based position of the first occurrence of key in
// in-order sequence.
// Time: O(log n)
func (t *Tree[K]) RankOf(key K) (int, error) {
	z, err := t.lookup(key)
	if err != nil {
		return 0, err
	}
	return int(t.rank(z)), nil
}

func (t *Tree[K]) rank(z nodeID) uint32 {
	r := t.sizeOf(t.n(z).left) + 1
	for y := z; t.n(y).parent != none; y = t.n(y).parent {
		p := t.n(y).parent
		if t.n(p).right == y {
			r += t.sizeOf(t.n(p).left) + 1
		}
	}
	return r
}

// Select returns the k-th smallest key, counting from 1. Duplicates occupy
// consecutive ranks.
// Time: O(log n)
func (t *Tree[K]) Select(k int) (K, error) {
	var zero K
	if k < 1 || k > t.Size() {
		return zero, fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, k, t.Size())
	}
	return t.n(t.selectNode(uint32(k))).key, nil
}

func (t *Tree[K]) selectNode(k uint32) nodeID {
	cur := t.root
	for {
		assert(cur != none, "size augmentation out of sync")
		l := t.sizeOf(t.n(cur).left)
		switch {
		case k == l+1:
			return cur
		case k <= l:
			cur = t.n(cur).left
		default:
			k -= l + 1
			cur = t.n(cur).right
		}
	}
}

func (t *Tree[K]) lookup(key K) (nodeID, error) {
	if t.IsEmpty() {
		return none, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	z := t.find(key)
	if z == none {
		return none, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return z, nil
}
