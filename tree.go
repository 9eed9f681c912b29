package ostree

import (
	"cmp"
	"fmt"
	"math/bits"
)

// Tree is a red-black tree augmented with subtree sizes, holding keys of
// type K. Duplicate keys are permitted.
//
// The zero value is not usable; create trees with New, NewOrdered or FromSorted.
type Tree[K any] struct {
	compare func(a, b K) int
	arena   arena[K]
	root    nodeID
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{
		compare: cfg.Compare,
		arena:   newArena[K](cfg.Capacity),
	}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	t, err := New(OrderedConfig[K]())
	assert(err == nil, "ordered configuration rejected")
	return t
}

// FromSorted builds a tree from keys, which must be sorted in non-decreasing
// order with respect to cfg.Compare. It is faster than repeated calls to
// Insert: Time O(n).
//
// Equal keys keep their order from the input slice, just as if they had been
// inserted one after the other.
func FromSorted[K any](cfg Config[K], keys []K) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if uint64(len(keys)) > maxCapacity {
		return nil, fmt.Errorf("%w: %d keys exceed capacity", ErrInvalidConfig, len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if cfg.Compare(keys[i-1], keys[i]) > 0 {
			return nil, fmt.Errorf("%w: keys[%d] > keys[%d]", ErrUnsorted, i-1, i)
		}
	}
	cfg.Capacity = max(cfg.Capacity, len(keys))
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	// Levels above redDepth are complete. Coloring the nodes of an incomplete
	// last level RED keeps the black height uniform.
	redDepth := bits.Len(uint(len(keys)+1)) - 1
	t.root = t.build(keys, none, 0, redDepth)
	tracer().Debugf("ostree: built tree of %d keys, red level at depth %d", len(keys), redDepth)
	return t, nil
}

func (t *Tree[K]) build(keys []K, parent nodeID, depth, redDepth int) nodeID {
	if len(keys) == 0 {
		return none
	}
	mid := len(keys) / 2
	id := t.arena.alloc()
	l := t.build(keys[:mid], id, depth+1, redDepth)
	r := t.build(keys[mid+1:], id, depth+1, redDepth)
	n := t.n(id)
	n.key, n.kind = keys[mid], keyed
	n.parent, n.left, n.right = parent, l, r
	n.size = uint32(len(keys))
	n.color = black
	if depth == redDepth {
		n.color = red
	}
	return id
}

// Size returns the number of keys in the tree, duplicates included.
// Time: O(1)
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return int(t.sizeOf(t.root))
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == none
}

// Clear removes all keys from the tree. Storage is kept for re-use.
func (t *Tree[K]) Clear() {
	t.arena.reset()
	t.root = none
}

// Clone returns a deep copy of the tree. The copy shares no storage with t,
// keys are copied by assignment.
func (t *Tree[K]) Clone() *Tree[K] {
	if t == nil {
		return nil
	}
	return &Tree[K]{
		compare: t.compare,
		arena:   t.arena.clone(),
		root:    t.root,
	}
}

// --- Node helpers ----------------------------------------------------------

func (t *Tree[K]) n(id nodeID) *node[K] {
	return &t.arena.nodes[id]
}

func (t *Tree[K]) sizeOf(id nodeID) uint32 {
	return t.arena.nodes[id].size
}

func (t *Tree[K]) isRed(id nodeID) bool {
	return t.arena.nodes[id].color == red
}

func (t *Tree[K]) child(id nodeID, d dir) nodeID {
	return *t.n(id).link(d)
}

// side reports which child of its parent id is. id must not be the root.
func (t *Tree[K]) side(id nodeID) dir {
	p := t.n(id).parent
	assert(p != none, "root has no side")
	if t.n(p).left == id {
		return left
	}
	return right
}

// setChild links c as the d-child of parent, including the back-link.
func (t *Tree[K]) setChild(parent nodeID, d dir, c nodeID) {
	*t.n(parent).link(d) = c
	if c != none {
		t.n(c).parent = parent
	}
}

// replaceChild substitutes old by c in the child links of parent, or in the
// root reference if parent is absent.
func (t *Tree[K]) replaceChild(parent, old, c nodeID) {
	switch {
	case parent == none:
		t.root = c
	case t.n(parent).left == old:
		t.n(parent).left = c
	default:
		t.n(parent).right = c
	}
	if c != none {
		t.n(c).parent = parent
	}
}

// transplant puts the subtree rooted at v into the place of the subtree
// rooted at u.
func (t *Tree[K]) transplant(u, v nodeID) {
	t.replaceChild(t.n(u).parent, u, v)
}

func (t *Tree[K]) minimum(id nodeID) nodeID {
	for id != none && t.n(id).left != none {
		id = t.n(id).left
	}
	return id
}

func (t *Tree[K]) maximum(id nodeID) nodeID {
	for id != none && t.n(id).right != none {
		id = t.n(id).right
	}
	return id
}

// successor returns the in-order successor of id, or none.
func (t *Tree[K]) successor(id nodeID) nodeID {
	if r := t.n(id).right; r != none {
		return t.minimum(r)
	}
	p := t.n(id).parent
	for p != none && t.n(p).right == id {
		id, p = p, t.n(p).parent
	}
	return p
}

// predecessor returns the in-order predecessor of id, or none.
func (t *Tree[K]) predecessor(id nodeID) nodeID {
	if l := t.n(id).left; l != none {
		return t.maximum(l)
	}
	p := t.n(id).parent
	for p != none && t.n(p).left == id {
		id, p = p, t.n(p).parent
	}
	return p
}

// find returns the first node in in-order sequence with a key equal to key,
// or none.
func (t *Tree[K]) find(key K) nodeID {
	found := none
	for cur := t.root; cur != none; {
		c := t.compare(key, t.n(cur).key)
		if c <= 0 {
			if c == 0 {
				found = cur
			}
			cur = t.n(cur).left
		} else {
			cur = t.n(cur).right
		}
	}
	return found
}
