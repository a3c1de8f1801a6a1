package internal

import (
	"iter"
)

type Owner struct {
	// cleanup functions to be called once when the owner is reset or disposed
	cleanups []func()

	// called each time the owner is disposed
	disposers []func()

	// panic error handlers
	catchers []func(any)

	// the context values of this owner
	context map[any]any

	disposed bool

	// survives runs of the parent computation, see Retain
	retained bool

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

// NewOwner creates an owner attached to the current owner, if any.
func (r *Runtime) NewOwner() *Owner {
	o := &Owner{
		cleanups: make([]func(), 0),
		context:  make(map[any]any),
	}

	if parent := r.CurrentOwner(); parent != nil {
		parent.AddChild(o)
	}

	return o
}

// Run executes fn with this owner as the current owner.
// A panic raised by fn is handed to the nearest error handler.
func (o *Owner) Run(fn func() error) (err error) {
	GetRuntime().tracker.RunWithOwner(o, func() {
		err = fn()
	})

	return err
}

func (o *Owner) Parent() *Owner {
	return o.parent
}

func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

func (parent *Owner) removeChild(child *Owner) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else if parent.childrenHead == child {
		parent.childrenHead = child.nextSibling
	}

	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	}

	child.parent = nil
	child.prevSibling = nil
	child.nextSibling = nil
}

// Children iterates from the most recently added child to the oldest one.
func (n *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		child := n.childrenHead

		for child != nil {
			// the child may unlink itself while being visited
			next := child.nextSibling
			if !yield(child) {
				return
			}

			child = next
		}
	}
}

// Dispose disposes the children, runs the pending cleanups and
// the dispose listeners, then detaches the owner from its parent.
func (n *Owner) Dispose() {
	n.DisposeChildren()
	n.reset()

	for _, fn := range n.disposers {
		fn()
	}
	n.disposed = true

	if n.parent != nil {
		n.parent.removeChild(n)
	}
}

func (n *Owner) IsDisposed() bool {
	return n.disposed
}

// reset prepares the owner for another run: children that are not retained
// are disposed and cleanups are called, listeners and context are kept.
func (n *Owner) reset() {
	for child := range n.Children() {
		if !child.retained {
			child.Dispose()
		}
	}

	cleanups := n.cleanups
	n.cleanups = nil
	for i := 0; i < len(cleanups); i++ {
		cleanups[i]()
	}
}

func (n *Owner) DisposeChildren() {
	for child := range n.Children() {
		child.Dispose()
	}
	n.childrenHead = nil
}

// Retain keeps the owner alive when the computation owning it runs again.
// It is still disposed along with its parent.
func (n *Owner) Retain() {
	n.retained = true
}

func (n *Owner) OnCleanup(fn func()) {
	n.cleanups = append(n.cleanups, fn)
}

func (n *Owner) OnDispose(fn func()) {
	n.disposers = append(n.disposers, fn)
}

func (n *Owner) OnError(fn func(any)) {
	n.catchers = append(n.catchers, fn)
}

func (n *Owner) recover() {
	if r := recover(); r != nil {
		n.handle(r)
	}
}

// handle hands err to the closest owner with error handlers.
// Without any handler up the chain the panic continues.
func (n *Owner) handle(err any) {
	for o := n; o != nil; o = o.parent {
		if len(o.catchers) == 0 {
			continue
		}

		for _, catcher := range o.catchers {
			catcher(err)
		}
		return
	}

	panic(err)
}

func (n *Owner) lookup(key any) (any, bool) {
	for o := n; o != nil; o = o.parent {
		if v, ok := o.context[key]; ok {
			return v, true
		}
	}

	return nil, false
}
