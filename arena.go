package ostree

// arena stores the nodes of a tree in a single slice, addressed by nodeID.
// Released slots are chained into a free list through their left link and
// handed out again before the slice grows.
type arena[K any] struct {
	nodes []node[K]
	free  nodeID // head of the free list
	live  int    // slots in use, including a deletion placeholder
}

func newArena[K any](capacity int) arena[K] {
	return arena[K]{nodes: make([]node[K], 1, capacity+1)}
}

// alloc returns a zeroed slot. Pointers into the arena obtained before a call
// to alloc must not be used afterwards, as the slice may have been moved.
func (a *arena[K]) alloc() nodeID {
	a.live++
	if a.free != none {
		id := a.free
		a.free = a.nodes[id].left
		a.nodes[id].left = none
		return id
	}
	assert(uint64(len(a.nodes)) <= maxCapacity, "arena exhausted")
	a.nodes = append(a.nodes, node[K]{})
	return nodeID(len(a.nodes) - 1)
}

// release puts a slot onto the free list. The node's key is dropped so that
// it may be garbage collected.
func (a *arena[K]) release(id nodeID) {
	assert(id != none, "slot 0 cannot be released")
	assert(a.nodes[id].kind != freeSlot, "slot released twice")
	a.nodes[id] = node[K]{left: a.free}
	a.free = id
	a.live--
}

func (a *arena[K]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.free = none
	a.live = 0
}

func (a *arena[K]) clone() arena[K] {
	nodes := make([]node[K], len(a.nodes), cap(a.nodes))
	copy(nodes, a.nodes)
	return arena[K]{nodes: nodes, free: a.free, live: a.live}
}
