package ostree

import "fmt"

// Node is a read-only view of a node of a tree. It is valid until the next
// mutation of the tree.
type Node[K any] struct {
	tree *Tree[K]
	id   nodeID
}

// Root returns a view of the root node, or false for an empty tree.
func (t *Tree[K]) Root() (Node[K], bool) {
	if t.IsEmpty() {
		return Node[K]{}, false
	}
	return Node[K]{tree: t, id: t.root}, true
}

// Key is the key stored at n.
func (n Node[K]) Key() K { return n.tree.n(n.id).key }

// IsRed reports whether n is colored red.
func (n Node[K]) IsRed() bool { return n.tree.isRed(n.id) }

// Size is the number of keys in the subtree of n, including n.
func (n Node[K]) Size() int { return int(n.tree.sizeOf(n.id)) }

// Left returns the left child of n, if any.
func (n Node[K]) Left() (Node[K], bool) { return n.tree.view(n.tree.n(n.id).left) }

// Right returns the right child of n, if any.
func (n Node[K]) Right() (Node[K], bool) { return n.tree.view(n.tree.n(n.id).right) }

// Parent returns the parent of n. It reports false for the root.
func (n Node[K]) Parent() (Node[K], bool) { return n.tree.view(n.tree.n(n.id).parent) }

func (t *Tree[K]) view(id nodeID) (Node[K], bool) {
	if id == none {
		return Node[K]{}, false
	}
	return Node[K]{tree: t, id: id}, true
}

// Leaves returns the keys of all nodes without children, in pre-order.
func (t *Tree[K]) Leaves() []K {
	if t.IsEmpty() {
		return nil
	}
	return t.keysOf(t.leaves(t.root))
}

// LeavesOf returns the keys of the leaves below the first occurrence of key,
// in pre-order.
func (t *Tree[K]) LeavesOf(key K) ([]K, error) {
	z, err := t.lookup(key)
	if err != nil {
		return nil, err
	}
	return t.keysOf(t.leaves(z)), nil
}

// Paths returns the keys on every path from the root to a leaf, leaves in
// pre-order.
func (t *Tree[K]) Paths() [][]K {
	if t.IsEmpty() {
		return nil
	}
	return t.paths(t.root)
}

// PathsOf returns the keys on every path from the root to a leaf below the
// first occurrence of key.
func (t *Tree[K]) PathsOf(key K) ([][]K, error) {
	z, err := t.lookup(key)
	if err != nil {
		return nil, err
	}
	return t.paths(z), nil
}

func (t *Tree[K]) paths(top nodeID) [][]K {
	leaves := t.leaves(top)
	paths := make([][]K, 0, len(leaves))
	for _, leaf := range leaves {
		var path []nodeID
		for cur := leaf; cur != none; cur = t.n(cur).parent {
			path = append(path, cur)
		}
		keys := make([]K, len(path))
		for i, id := range path {
			keys[len(path)-1-i] = t.n(id).key
		}
		paths = append(paths, keys)
	}
	return paths
}

// BlackHeight counts the black nodes on the path from the root down the
// leftmost spine. For a valid tree this is the black height of every path.
func (t *Tree[K]) BlackHeight() int {
	bh := 0
	if t.IsEmpty() {
		return bh
	}
	for cur := t.root; cur != none; cur = t.n(cur).left {
		if !t.isRed(cur) {
			bh++
		}
	}
	return bh
}

// leaves collects the childless nodes below top in pre-order.
func (t *Tree[K]) leaves(top nodeID) []nodeID {
	var leaves []nodeID
	stack := []nodeID{top}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.n(id)
		if n.left == none && n.right == none {
			leaves = append(leaves, id)
			continue
		}
		if n.right != none {
			stack = append(stack, n.right)
		}
		if n.left != none {
			stack = append(stack, n.left)
		}
	}
	return leaves
}

func (t *Tree[K]) keysOf(ids []nodeID) []K {
	keys := make([]K, len(ids))
	for i, id := range ids {
		keys[i] = t.n(id).key
	}
	return keys
}

func (n Node[K]) String() string {
	return fmt.Sprintf("(%v %s #%d)", n.Key(), n.tree.n(n.id).color, n.Size())
}
