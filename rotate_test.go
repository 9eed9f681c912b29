package ostree

import (
	"slices"
	"testing"
)

// checkSizes verifies only the size augmentation and the links, as rotations
// alone do not preserve the coloring rules.
func checkSizes(t *testing.T, tree *Tree[int], id nodeID) uint32 {
	t.Helper()
	if id == none {
		return 0
	}
	n := tree.n(id)
	for _, c := range [...]nodeID{n.left, n.right} {
		if c != none && tree.n(c).parent != id {
			t.Fatalf("broken parent link below %d", n.key)
		}
	}
	size := 1 + checkSizes(t, tree, n.left) + checkSizes(t, tree, n.right)
	if n.size != size {
		t.Fatalf("node %d has size %d, expected %d", n.key, n.size, size)
	}
	return size
}

func TestRotateLeftAtRoot(t *testing.T) {
	tree, _ := FromSorted(OrderedConfig[int](), []int{1, 2, 3, 4, 5, 6, 7})
	if tree.n(tree.root).key != 4 {
		t.Fatalf("expected root 4, is %d", tree.n(tree.root).key)
	}
	x := tree.root
	y := tree.rotateLeft(x)
	if tree.root != y || tree.n(y).key != 6 {
		t.Fatalf("expected 6 to move up to the root")
	}
	if tree.n(y).parent != none || tree.n(x).parent != y {
		t.Errorf("parent links not updated")
	}
	if tree.n(y).size != 7 || tree.n(x).size != 5 {
		t.Errorf("expected sizes 7/5, have %d/%d", tree.n(y).size, tree.n(x).size)
	}
	if k := tree.n(tree.n(x).right).key; k != 5 {
		t.Errorf("expected inner subtree 5 to move below 4, found %d", k)
	}
	checkSizes(t, tree, tree.root)
	if got := slices.Collect(tree.All()); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("rotation changed in-order sequence: %v", got)
	}
}

func TestRotateRightBelowRoot(t *testing.T) {
	tree, _ := FromSorted(OrderedConfig[int](), []int{1, 2, 3, 4, 5, 6, 7})
	x := tree.n(tree.root).right // 6
	y := tree.rotateRight(x)
	if tree.n(y).key != 5 || tree.n(tree.root).right != y {
		t.Fatalf("expected 5 to become right child of the root")
	}
	if tree.n(y).size != 3 || tree.n(x).size != 2 {
		t.Errorf("expected sizes 3/2, have %d/%d", tree.n(y).size, tree.n(x).size)
	}
	checkSizes(t, tree, tree.root)
	// rotating back restores the original shape
	tree.rotateLeft(y)
	checkSizes(t, tree, tree.root)
	if err := tree.Check(); err != nil {
		t.Errorf("expected valid tree after rotating back, got %v", err)
	}
}

func TestRotateDirections(t *testing.T) {
	if left.opposite() != right || right.opposite() != left {
		t.Errorf("opposite directions are broken")
	}
}
