/*
Package ostree implements an in-memory ordered index: a red-black tree augmented
with subtree sizes.

Order Statistics

Besides the usual ordered-map navigation (minimum, maximum, predecessor, successor),
every node carries the number of nodes in its subtree. This augmentation lets the
tree answer two additional questions in logarithmic time:

  - RankOf(k): the 1-based position of key k in sorted order,
  - Select(i): the key at sorted position i.

From Cormen, Leiserson, Rivest and Stein, "Introduction to Algorithms", ch. 14:

An order-statistic tree T is simply a red-black tree with additional information
stored in each node. Besides the usual red-black tree attributes x.key, x.color,
x.p, x.left, and x.right in a node x, we have another attribute, x.size. This
attribute contains the number of (internal) nodes in the subtree rooted at x […]

_________________________________________________________________________

Duplicates

Keys need to be totally ordered, either by being cmp.Ordered or by a comparison
function handed in with Config. Duplicate keys are permitted. A new key equal to an
existing one is placed after it in in-order sequence, i.e. equal keys keep their
insertion order. Operations taking a key argument (Delete, RankOf, Previous,
Next, …) address the first node in in-order sequence carrying an equal key.

Concurrency

A Tree is not safe for concurrent use. Clients sharing a tree between goroutines
have to guard every call with a mutex of their own.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ostree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic("ostree: " + msg)
	}
}
