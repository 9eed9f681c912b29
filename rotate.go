package ostree

// rotate turns the subtree at x in direction d: the child of x on the
// opposite side moves up into the place of x, and x becomes its d-child.
// rotate(x, left) is a left rotation.
//
// Only x and the node moving up change their subtree sizes. The node moving up
// inherits the size of x, the new size of x is derived from its new children.
// Time: O(1)
func (t *Tree[K]) rotate(x nodeID, d dir) nodeID {
	od := d.opposite()
	y := t.child(x, od)
	assert(y != none, "rotation without pivot")
	inner := t.child(y, d)
	t.setChild(x, od, inner)
	t.transplant(x, y)
	t.setChild(y, d, x)
	xn, yn := t.n(x), t.n(y)
	yn.size = xn.size
	xn.size = 1 + t.sizeOf(xn.left) + t.sizeOf(xn.right)
	return y
}

func (t *Tree[K]) rotateLeft(x nodeID) nodeID {
	return t.rotate(x, left)
}

func (t *Tree[K]) rotateRight(x nodeID) nodeID {
	return t.rotate(x, right)
}
