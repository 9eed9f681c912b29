package ostree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their key and subtree
// size and filled with their color; absent children are drawn as small
// empty circles.
func (t *Tree[K]) Tree2Dot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	if !t.IsEmpty() {
		stack := []nodeID{t.root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.n(id)
			label := fmt.Sprintf("%v\\n#%d", n.key, n.size)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, escape(label), nodeDotStyles(n.color))
			for _, c := range [...]nodeID{n.left, n.right} {
				if c == none {
					nilid := fmt.Sprintf("nil%d_%d", id, len(edgelist))
					nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
					edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", id, nilid)
					continue
				}
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, c)
			}
			if n.right != none {
				stack = append(stack, n.right)
			}
			if n.left != none {
				stack = append(stack, n.left)
			}
		}
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("ostree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == red {
		s += ",color=\"#aa0000\",fillcolor=\"#dd2222\""
	} else {
		s += ",color=black,fillcolor=\"#333333\""
	}
	return s
}

// escape quotes in key labels; the "\n" line break sequence is kept.
func escape(label string) string {
	return strings.ReplaceAll(label, `"`, `\"`)
}
