package ostree

// Insert adds key to the tree. Duplicates are permitted: key is placed after
// all keys comparing equal to it.
// Time: O(log n)
func (t *Tree[K]) Insert(key K) {
	t.insertFixup(t.attach(key))
}

// attach links key as a red leaf below its in-order position and updates the
// sizes on the path to the root. The tree may violate the red rule afterwards.
func (t *Tree[K]) attach(key K) nodeID {
	parent, d := none, left
	for cur := t.root; cur != none; cur = t.child(cur, d) {
		parent = cur
		if t.compare(key, t.n(cur).key) < 0 {
			d = left
		} else {
			d = right
		}
	}
	z := t.arena.alloc()
	zn := t.n(z)
	zn.key, zn.kind = key, keyed
	zn.color, zn.size = red, 1
	if parent == none {
		t.root = z
	} else {
		t.setChild(parent, d, z)
	}
	for p := parent; p != none; p = t.n(p).parent {
		t.n(p).size++
	}
	return z
}

// Cases of the insert fixup, named for the situation around a red node z
// with a red parent. side is the side of z's parent below the grandparent.
type insertCase uint8

const (
	insertParentBlack     insertCase = iota // z is the root or its parent is black: done
	insertUncleRed                          // recolor and move up two levels
	insertUncleBlackInner                   // z is an inner grandchild: rotate it outwards
	insertUncleBlackOuter                   // z is an outer grandchild: rotate at the grandparent
)

func (t *Tree[K]) classifyInsert(z nodeID) (insertCase, dir) {
	p := t.n(z).parent
	if p == none || !t.isRed(p) {
		return insertParentBlack, left
	}
	g := t.n(p).parent
	assert(g != none, "red root")
	side := t.side(p)
	switch {
	case t.isRed(t.child(g, side.opposite())):
		return insertUncleRed, side
	case t.side(z) != side:
		return insertUncleBlackInner, side
	}
	return insertUncleBlackOuter, side
}

func (t *Tree[K]) insertFixup(z nodeID) {
	for {
		c, side := t.classifyInsert(z)
		switch c {
		case insertParentBlack:
			t.n(t.root).color = black
			return
		case insertUncleRed:
			p := t.n(z).parent
			g := t.n(p).parent
			t.n(p).color = black
			t.n(t.child(g, side.opposite())).color = black
			t.n(g).color = red
			z = g
		case insertUncleBlackInner:
			p := t.n(z).parent
			t.rotate(p, side)
			z = p
		case insertUncleBlackOuter:
			p := t.n(z).parent
			g := t.n(p).parent
			t.n(p).color = black
			t.n(g).color = red
			t.rotate(g, side.opposite())
		}
	}
}
