package ostree

import "fmt"

// Delete removes one occurrence of key, the first one in in-order sequence.
// It returns ErrNotFound if no key compares equal to key.
// Time: O(log n)
func (t *Tree[K]) Delete(key K) error {
	z := t.find(key)
	if z == none {
		tracer().Debugf("ostree: delete of absent key %v", key)
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	t.remove(z)
	return nil
}

// remove unlinks node z and rebalances.
//
// x is the node moving into the slot vacated by the node which is physically
// spliced out. If that slot would be empty, a vacant placeholder is linked in
// for the duration of the fixup, so that the fixup always has a node to start
// from. The placeholder is black, has size 0, and is unlinked afterwards.
func (t *Tree[K]) remove(z nodeID) {
	y := z
	if t.n(z).left != none && t.n(z).right != none {
		y = t.minimum(t.n(z).right)
	}
	x := t.n(y).right
	if t.n(y).left != none {
		x = t.n(y).left
	}
	hole := none
	if x == none {
		hole = t.arena.alloc()
		t.n(hole).kind = vacant
		x = hole
	}
	removedColor := t.n(y).color
	var lowest nodeID // lowest node whose subtree size changed
	if y == z {
		t.transplant(z, x)
		lowest = t.n(x).parent
	} else {
		if t.n(y).parent == z {
			t.setChild(y, right, x)
			lowest = y
		} else {
			lowest = t.n(y).parent
			t.transplant(y, x)
			t.setChild(y, right, t.n(z).right)
		}
		t.transplant(z, y)
		t.setChild(y, left, t.n(z).left)
		t.n(y).color = t.n(z).color
	}
	for p := lowest; p != none; p = t.n(p).parent {
		pn := t.n(p)
		pn.size = 1 + t.sizeOf(pn.left) + t.sizeOf(pn.right)
	}
	t.arena.release(z)
	if removedColor == black {
		t.deleteFixup(x)
	}
	if hole != none {
		hn := t.n(hole)
		assert(hn.kind == vacant && hn.size == 0, "placeholder changed during fixup")
		assert(hn.left == none && hn.right == none, "placeholder acquired children")
		t.transplant(hole, none)
		t.arena.release(hole)
	}
}

// Cases of the delete fixup, named for the situation around a doubly-black
// node x and its sibling w. side is the side of x below its parent.
type deleteCase uint8

const (
	deleteDone           deleteCase = iota // x is red or the root: paint it black
	deleteSiblingRed                       // rotate the sibling up, x gets a black sibling
	deleteNephewsBlack                     // paint w red and move the extra black up
	deleteFarNephewBlack                   // near nephew red: rotate it up into w's place
	deleteFarNephewRed                     // rotate at the parent and terminate
)

func (t *Tree[K]) classifyDelete(x nodeID) (deleteCase, dir) {
	if x == t.root || t.isRed(x) {
		return deleteDone, left
	}
	side := t.side(x)
	w := t.child(t.n(x).parent, side.opposite())
	assert(w != none, "doubly black node without sibling")
	switch {
	case t.isRed(w):
		return deleteSiblingRed, side
	case !t.isRed(t.n(w).left) && !t.isRed(t.n(w).right):
		return deleteNephewsBlack, side
	case !t.isRed(t.child(w, side.opposite())):
		return deleteFarNephewBlack, side
	}
	return deleteFarNephewRed, side
}

func (t *Tree[K]) deleteFixup(x nodeID) {
	for {
		c, side := t.classifyDelete(x)
		far := side.opposite()
		switch c {
		case deleteDone:
			t.n(x).color = black
			return
		case deleteSiblingRed:
			p := t.n(x).parent
			t.n(t.child(p, far)).color = black
			t.n(p).color = red
			t.rotate(p, side)
		case deleteNephewsBlack:
			p := t.n(x).parent
			t.n(t.child(p, far)).color = red
			x = p
		case deleteFarNephewBlack:
			w := t.child(t.n(x).parent, far)
			t.n(t.child(w, side)).color = black
			t.n(w).color = red
			t.rotate(w, far)
		case deleteFarNephewRed:
			p := t.n(x).parent
			w := t.child(p, far)
			t.n(w).color = t.n(p).color
			t.n(p).color = black
			t.n(t.child(w, far)).color = black
			t.rotate(p, side)
			x = t.root
		}
	}
}
