package internal

import "slices"

type NodeFlags int

const (
	FlagNone   NodeFlags = 0
	FlagInHeap NodeFlags = 1 << iota
	FlagQueued
	FlagInitialized
	FlagDisposed
)

type Computed struct {
	*Owner
	*Signal

	flags NodeFlags

	// when set, the node is scheduled through this function instead of
	// being recomputed in place (effects)
	schedule func(*Computed)

	deps []*Signal

	compute func() any
}

func (r *Runtime) NewComputed(compute func() any) *Computed {
	return r.newComputed(compute, nil)
}

func (r *Runtime) newComputed(compute func() any, schedule func(*Computed)) *Computed {
	c := &Computed{
		Owner:  r.NewOwner(),
		Signal: r.NewSignal(nil),

		compute:  compute,
		schedule: schedule,
	}

	c.OnDispose(func() {
		c.AddFlag(FlagDisposed)
		r.heap.Remove(c)
		c.ClearDeps()
	})

	// writes made during the first run are flushed once it's done
	r.NewBatch(func() { r.run(c) })

	return c
}

// Read returns the value of the node, recomputing it first if it is stale.
func (c *Computed) Read() any {
	if c.HasFlag(FlagInHeap) && c.schedule == nil {
		c.rt.heap.Remove(c)
		c.rt.run(c)
	}

	return c.Signal.Read()
}

// Link creates a bidirectional dependency link between this node (subscriber) and the given signal (dependency).
func (c *Computed) Link(dep *Signal) {
	if dep == c.Signal || slices.Contains(c.deps, dep) {
		return
	}

	c.deps = append(c.deps, dep)
	dep.addSub(c)

	// Update subscriber height if needed
	if dep.height >= c.height {
		c.height = dep.height + 1
	}
}

// ClearDeps removes all dependencies
func (c *Computed) ClearDeps() {
	for _, dep := range c.deps {
		dep.removeSub(c)
	}

	c.deps = nil
}

func (c *Computed) HasFlag(f NodeFlags) bool { return c.flags&f != 0 }
func (c *Computed) AddFlag(f NodeFlags)      { c.flags |= f }
func (c *Computed) RemoveFlag(f NodeFlags)   { c.flags &^= f }

func (r *Runtime) recompute(c *Computed) {
	if c.HasFlag(FlagDisposed) {
		return
	}

	if c.schedule != nil {
		c.schedule(c)
		return
	}

	r.run(c)
}

func (r *Runtime) run(c *Computed) {
	if c.HasFlag(FlagDisposed) {
		return
	}

	oldValue := c.value
	initialized := c.HasFlag(FlagInitialized)

	c.reset()
	c.ClearDeps()

	var value any
	r.tracker.RunWithComputation(c, func() {
		value = c.compute()
	})

	c.AddFlag(FlagInitialized)
	c.value = value

	if initialized && !isEqual(oldValue, value) {
		r.heap.InsertAll(slices.Values(c.subs))
		r.Schedule()
	}
}
