package ostree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCheckDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ostree")
	defer teardown()
	//
	corruptions := map[string]func(tree *Tree[int]){
		"wrong size": func(tree *Tree[int]) {
			tree.n(tree.n(tree.root).left).size++
		},
		"red root": func(tree *Tree[int]) {
			tree.n(tree.root).color = red
		},
		"red child of red": func(tree *Tree[int]) {
			l := tree.n(tree.root).left
			tree.n(l).color = red
			tree.n(tree.n(l).left).color = red
		},
		"black height": func(tree *Tree[int]) {
			tree.n(tree.n(tree.n(tree.root).right).right).color = red
		},
		"parent link": func(tree *Tree[int]) {
			tree.n(tree.n(tree.root).left).parent = tree.n(tree.root).right
		},
		"key order": func(tree *Tree[int]) {
			tree.n(tree.n(tree.root).left).key = 1000
		},
		"vacant node": func(tree *Tree[int]) {
			tree.n(tree.n(tree.root).right).kind = vacant
		},
		"leaked slot": func(tree *Tree[int]) {
			tree.arena.alloc()
		},
	}
	for name, corrupt := range corruptions {
		tree, _ := FromSorted(OrderedConfig[int](), []int{1, 2, 3, 4, 5, 6, 7})
		if err := tree.Check(); err != nil {
			t.Fatalf("%s: tree invalid before corruption: %v", name, err)
		}
		corrupt(tree)
		if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
			t.Errorf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}

func TestCheckBlackHeightDetectsImbalance(t *testing.T) {
	tree, _ := FromSorted(OrderedConfig[int](), []int{1, 2, 3, 4, 5, 6, 7})
	if err := tree.CheckBlackHeight(); err != nil {
		t.Fatalf("expected perfect tree to pass, got %v", err)
	}
	tree.n(tree.n(tree.n(tree.root).left).left).color = red
	if err := tree.CheckBlackHeight(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestCheckNilTree(t *testing.T) {
	var tree *Tree[int]
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil tree, got %v", err)
	}
}
