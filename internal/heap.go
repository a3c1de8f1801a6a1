package internal

import "iter"

// PriorityHeap orders dirty nodes by their height in the dependency graph,
// so a node is always recomputed after the nodes it depends on.
type PriorityHeap struct {
	min int
	max int

	nodes []*heapNode // [height]head

	lookup map[*Computed]*heapNode // for O(1) removal
}

type heapNode struct {
	node *Computed

	// height at insertion, the node's own height may grow while queued
	height int

	next *heapNode
	prev *heapNode
}

func NewHeap() *PriorityHeap {
	return &PriorityHeap{
		min:    0,
		max:    0,
		nodes:  make([]*heapNode, 64),
		lookup: make(map[*Computed]*heapNode),
	}
}

func (h *PriorityHeap) Len() int {
	return len(h.lookup)
}

func (h *PriorityHeap) Insert(node *Computed) {
	if node.HasFlag(FlagInHeap) || node.HasFlag(FlagDisposed) {
		return
	}
	node.AddFlag(FlagInHeap)

	height := node.Height()
	for height >= len(h.nodes) {
		h.nodes = append(h.nodes, make([]*heapNode, len(h.nodes))...)
	}

	entry := &heapNode{node: node, height: height}
	h.lookup[node] = entry

	if h.nodes[height] == nil {
		h.nodes[height] = entry
		entry.prev = entry // loop to self
		entry.next = nil
	} else {
		head := h.nodes[height]
		tail := head.prev

		tail.next = entry
		entry.prev = tail
		entry.next = nil
		head.prev = entry
	}

	if height > h.max {
		h.max = height
	}
	if height < h.min {
		h.min = height
	}
}

func (h *PriorityHeap) InsertAll(nodes iter.Seq[*Computed]) {
	for node := range nodes {
		h.Insert(node)
	}
}

func (h *PriorityHeap) Remove(node *Computed) {
	if !node.HasFlag(FlagInHeap) {
		return
	}
	node.RemoveFlag(FlagInHeap)

	entry, ok := h.lookup[node]
	if !ok {
		return
	}
	delete(h.lookup, node)

	height := entry.height

	// single node
	if entry.prev == entry {
		h.nodes[height] = nil
		entry.prev = entry
		entry.next = nil
		return
	}

	// multiple nodes
	head := h.nodes[height]
	if entry == head {
		h.nodes[height] = entry.next
	} else {
		entry.prev.next = entry.next
	}

	next := entry.next
	if next == nil {
		next = h.nodes[height]
	}
	next.prev = entry.prev

	entry.prev = entry
	entry.next = nil
}

// Drain processes each entry in topological order with the `process` function leaving the heap empty.
// Entries inserted below the current height while draining are picked up
// before moving on.
func (h *PriorityHeap) Drain(process func(*Computed)) {
	for h.min = 0; h.min <= h.max; {
		entry := h.nodes[h.min]
		if entry == nil {
			h.min++
			continue
		}

		h.Remove(entry.node)
		process(entry.node)
	}

	h.min = 0
	h.max = 0
}
