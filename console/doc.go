/*
Package console prints order-statistics trees to a terminal, for debugging
and for the command line driver.

The tree is printed sideways: the root is at the left margin, right subtrees
above and left subtrees below their parent, each level indented by a fixed
number of columns. Red nodes are printed in red if the terminal supports
colors. Without colors, red nodes are marked with a trailing '*'.

	        4*
	    3
	2
	    1

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package console

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ostree.console'
func tracer() tracing.Trace {
	return tracing.Select("ostree.console")
}
