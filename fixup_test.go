package ostree

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// shape renders a subtree as key plus color, followed by the children in
// parentheses if there are any. Absent children print as "-".
func shape(tree *Tree[int], id nodeID) string {
	if id == none {
		return "-"
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(tree.n(id).key))
	if tree.isRed(id) {
		b.WriteString("R")
	} else {
		b.WriteString("B")
	}
	l, r := tree.n(id).left, tree.n(id).right
	if l != none || r != none {
		b.WriteString("(" + shape(tree, l) + "," + shape(tree, r) + ")")
	}
	return b.String()
}

func paint(t *testing.T, tree *Tree[int], key int, c color) {
	t.Helper()
	id := tree.find(key)
	if id == none {
		t.Fatalf("cannot paint absent key %d", key)
	}
	tree.n(id).color = c
}

func TestInsertFixupCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ostree")
	defer teardown()
	//
	cases := []struct {
		name   string
		keys   []int // the last key is attached before the fixup runs
		fixup  insertCase
		side   dir
		before string
		after  string
	}{
		{"parent black", []int{20, 10}, insertParentBlack, left, "20B(10R,-)", "20B(10R,-)"},
		{"uncle red, left", []int{20, 10, 30, 5}, insertUncleRed, left,
			"20B(10R(5R,-),30R)", "20B(10B(5R,-),30B)"},
		{"uncle red, right", []int{20, 10, 30, 35}, insertUncleRed, right,
			"20B(10R,30R(-,35R))", "20B(10B,30B(-,35R))"},
		{"inner grandchild, left", []int{30, 10, 20}, insertUncleBlackInner, left,
			"30B(10R(-,20R),-)", "20B(10R,30R)"},
		{"inner grandchild, right", []int{10, 30, 20}, insertUncleBlackInner, right,
			"10B(-,30R(20R,-))", "20B(10R,30R)"},
		{"outer grandchild, left", []int{30, 20, 10}, insertUncleBlackOuter, left,
			"30B(20R(10R,-),-)", "20B(10R,30R)"},
		{"outer grandchild, right", []int{10, 20, 30}, insertUncleBlackOuter, right,
			"10B(-,20R(-,30R))", "20B(10R,30R)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := fromKeys(c.keys[:len(c.keys)-1]...)
			mustCheck(t, tree)
			z := tree.attach(c.keys[len(c.keys)-1])
			if got := shape(tree, tree.root); got != c.before {
				t.Fatalf("expected %s before fixup, got %s", c.before, got)
			}
			fixup, side := tree.classifyInsert(z)
			if fixup != c.fixup || side != c.side {
				t.Fatalf("expected case %d on side %d, got case %d on side %d", c.fixup, c.side, fixup, side)
			}
			tree.insertFixup(z)
			if got := shape(tree, tree.root); got != c.after {
				t.Errorf("expected %s after fixup, got %s", c.after, got)
			}
			mustCheck(t, tree)
		})
	}
}

func TestDeleteFixupCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ostree")
	defer teardown()
	//
	cases := []struct {
		name   string
		keys   []int
		reds   []int // repaint these keys red
		blacks []int // repaint these keys black
		del    int
		start  int // key at the position where the fixup starts
		fixup  deleteCase
		side   dir
		before string
		after  string
	}{
		{"replacement red", []int{10, 5}, nil, nil, 10, 5, deleteDone, left,
			"10B(5R,-)", "5B"},
		{"sibling red, left", []int{10, 5, 20, 15, 25}, []int{20}, []int{15, 25}, 5, 5,
			deleteSiblingRed, left, "10B(5B,20R(15B,25B))", "20B(10B(-,15R),25B)"},
		{"sibling red, right", []int{10, 15, 5, 1, 8}, []int{5}, []int{1, 8}, 15, 15,
			deleteSiblingRed, right, "10B(5R(1B,8B),15B)", "5B(1B,10B(8R,-))"},
		{"nephews black, left", []int{10, 5, 20}, nil, []int{5, 20}, 5, 5,
			deleteNephewsBlack, left, "10B(5B,20B)", "10B(-,20R)"},
		{"nephews black, right", []int{10, 5, 20}, nil, []int{5, 20}, 20, 20,
			deleteNephewsBlack, right, "10B(5B,20B)", "10B(5R,-)"},
		{"far nephew black, left", []int{10, 5, 20, 15}, nil, nil, 5, 5,
			deleteFarNephewBlack, left, "10B(5B,20B(15R,-))", "15B(10B,20B)"},
		{"far nephew black, right", []int{10, 15, 5, 8}, nil, nil, 15, 15,
			deleteFarNephewBlack, right, "10B(5B(-,8R),15B)", "8B(5B,10B)"},
		{"far nephew red, left", []int{10, 5, 20, 25}, nil, nil, 5, 5,
			deleteFarNephewRed, left, "10B(5B,20B(-,25R))", "20B(10B,25B)"},
		{"far nephew red, right", []int{10, 15, 5, 1}, nil, nil, 15, 15,
			deleteFarNephewRed, right, "10B(5B(1R,-),15B)", "5B(1B,10B)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := fromKeys(c.keys...)
			for _, k := range c.reds {
				paint(t, tree, k, red)
			}
			for _, k := range c.blacks {
				paint(t, tree, k, black)
			}
			mustCheck(t, tree)
			if got := shape(tree, tree.root); got != c.before {
				t.Fatalf("expected %s before delete, got %s", c.before, got)
			}
			// a black leaf is replaced by a placeholder with the same
			// parent and sibling, so it classifies like the placeholder
			fixup, side := tree.classifyDelete(tree.find(c.start))
			if fixup != c.fixup || side != c.side {
				t.Fatalf("expected case %d on side %d, got case %d on side %d", c.fixup, c.side, fixup, side)
			}
			if err := tree.Delete(c.del); err != nil {
				t.Fatalf("delete %d: %v", c.del, err)
			}
			if got := shape(tree, tree.root); got != c.after {
				t.Errorf("expected %s after delete, got %s", c.after, got)
			}
			mustCheck(t, tree)
		})
	}
}
