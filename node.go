package ostree

// nodeID addresses a node slot in the arena of a tree. Slot 0 is reserved:
// it stands for an absent node, is never written to, and reads as a BLACK
// node of size 0.
type nodeID uint32

const none nodeID = 0

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// nodeKind tells key-bearing nodes apart from the transient placeholder used
// during deletion and from unused arena slots.
type nodeKind uint8

const (
	freeSlot nodeKind = iota // slot is on the arena's free list
	keyed                    // regular node
	vacant                   // deletion placeholder: BLACK, size 0, no children
)

// dir selects one of the two child links of a node. Fixup code is written
// once in terms of a dir and its opposite, covering both mirror cases.
type dir uint8

const (
	left dir = iota
	right
)

func (d dir) opposite() dir {
	return 1 - d
}

// A node in the tree. Child links own their subtrees; parent is a plain
// back-reference for upward walks.
type node[K any] struct {
	key                 K
	parent, left, right nodeID
	size                uint32 // number of keyed nodes in this subtree
	color               color
	kind                nodeKind
}

func (n *node[K]) link(d dir) *nodeID {
	if d == left {
		return &n.left
	}
	return &n.right
}
