package ostree

import "fmt"

// Check validates the structural invariants of the tree: key ordering,
// parent back-links, subtree sizes, the red-black coloring rules, and uniform
// black height. It also verifies that no deletion placeholder is reachable and
// that the arena holds exactly as many nodes as the tree has keys.
// Failures of the tree structure wrap ErrCorrupt. Calling Check on a nil
// tree returns an error wrapping ErrInvalidConfig.
// Time: O(n)
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.check(); err != nil {
		tracer().Errorf("ostree: %v", err)
		return err
	}
	return nil
}

func (t *Tree[K]) check() error {
	if t.root == none {
		if t.arena.live != 0 {
			return fmt.Errorf("%w: empty tree holds %d arena nodes", ErrCorrupt, t.arena.live)
		}
		return nil
	}
	if p := t.n(t.root).parent; p != none {
		return fmt.Errorf("%w: root has parent %d", ErrCorrupt, p)
	}
	if t.isRed(t.root) {
		return fmt.Errorf("%w: root is red", ErrCorrupt)
	}
	size, _, err := t.checkNode(t.root, 0)
	if err != nil {
		return err
	}
	if int(size) != t.arena.live {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorrupt, size, t.arena.live)
	}
	prev, first := none, true
	for cur := t.minimum(t.root); cur != none; cur = t.successor(cur) {
		if !first && t.compare(t.n(prev).key, t.n(cur).key) > 0 {
			return fmt.Errorf("%w: keys out of order: %v before %v", ErrCorrupt,
				t.n(prev).key, t.n(cur).key)
		}
		prev, first = cur, false
	}
	return nil
}

// checkNode returns the subtree size and black height below id. Absent
// children count as black with black height 1.
func (t *Tree[K]) checkNode(id nodeID, depth int) (size uint32, blackHeight int, err error) {
	if id == none {
		return 0, 1, nil
	}
	if depth > t.arena.live {
		return 0, 0, fmt.Errorf("%w: cycle through node %d", ErrCorrupt, id)
	}
	n := t.n(id)
	if n.kind != keyed {
		return 0, 0, fmt.Errorf("%w: unkeyed node %d reachable", ErrCorrupt, id)
	}
	for _, c := range [...]nodeID{n.left, n.right} {
		if c != none && t.n(c).parent != id {
			return 0, 0, fmt.Errorf("%w: child %d of %v has parent %d", ErrCorrupt,
				c, n.key, t.n(c).parent)
		}
	}
	if n.color == red && (t.isRed(n.left) || t.isRed(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node %v has red child", ErrCorrupt, n.key)
	}
	lsize, lbh, err := t.checkNode(n.left, depth+1)
	if err != nil {
		return 0, 0, err
	}
	rsize, rbh, err := t.checkNode(n.right, depth+1)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black heights %d and %d below %v", ErrCorrupt, lbh, rbh, n.key)
	}
	if n.size != 1+lsize+rsize {
		return 0, 0, fmt.Errorf("%w: node %v has size %d, expected %d", ErrCorrupt,
			n.key, n.size, 1+lsize+rsize)
	}
	if n.color == black {
		lbh++
	}
	return n.size, lbh, nil
}

// CheckBlackHeight enumerates every leaf, i.e. every node without children,
// and verifies that all root-to-leaf paths carry the same number of black
// nodes.
// Time: O(n log n)
func (t *Tree[K]) CheckBlackHeight() error {
	if t.IsEmpty() {
		return nil
	}
	want := -1
	for _, leaf := range t.leaves(t.root) {
		bh := 0
		for cur := leaf; cur != none; cur = t.n(cur).parent {
			if !t.isRed(cur) {
				bh++
			}
		}
		if want < 0 {
			want = bh
		} else if bh != want {
			err := fmt.Errorf("%w: leaf %v has black height %d, expected %d", ErrCorrupt,
				t.n(leaf).key, bh, want)
			tracer().Errorf("ostree: %v", err)
			return err
		}
	}
	return nil
}
