package view

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/AnatoleLucet/compound"
)

// ErrNoHandler is returned by Dispatch when the node has no handler for the event.
var ErrNoHandler = errors.New("no event handler")

// Root is a mounted view tree.
type Root struct {
	owner  *compound.Owner
	tree   *Node
	err    error
	logger *zap.Logger
}

// MountOption configures Mount.
type MountOption func(*Root)

// WithLogger logs render failures on l.
func WithLogger(l *zap.Logger) MountOption {
	return func(r *Root) { r.logger = l }
}

// Mount renders the tree under a new owner.
// A panic raised while rendering is returned as an error and nothing stays mounted.
// Effects created while mounting run once the whole tree has rendered.
func Mount(node *Node, opts ...MountOption) (*Root, error) {
	r := &Root{
		owner:  compound.NewOwner(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.owner.OnError(r.fail)

	err := r.owner.Run(func() error {
		compound.NewBatch(func() {
			r.tree = resolve(node, &scope{})
		})
		return nil
	})
	if err == nil {
		err = r.err
	}
	if err != nil {
		r.owner.Dispose()
		return nil, err
	}

	return r, nil
}

// resolve returns a copy of n where every component is mounted: rendered
// inside its own computation, so it renders again only when something it
// read changed. Instances found in sc.prev are reused.
func resolve(n *Node, sc *scope) *Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case KindComponent:
		if n.Comp == nil {
			return nil
		}

		return &Node{Kind: KindComponent, Comp: n.Comp, inst: mount(n.Comp, sc)}

	case KindElement, KindFragment:
		c := &Node{Kind: n.Kind, Tag: n.Tag, Props: n.Props}
		for _, child := range n.Children {
			if r := resolve(child, sc); r != nil {
				c.Children = append(c.Children, r)
			}
		}
		return c

	default:
		return n
	}
}

func (r *Root) fail(v any) {
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("render panic: %v", v)
	}

	r.err = err
	r.logger.Error("render failed", zap.Error(err))
}

// Err returns the error raised by the last render, if any.
func (r *Root) Err() error {
	return r.err
}

// HTML renders the current tree.
func (r *Root) HTML() string {
	return compound.Untrack(r.html)
}

func (r *Root) html() string {
	var b strings.Builder
	writeHTML(&b, r.tree)
	return b.String()
}

// Watch calls fn with the HTML now and after every render.
// The returned function stops watching.
func (r *Root) Watch(fn func(html string)) (stop func()) {
	stop = func() {}

	_ = r.owner.Run(func() error {
		o := compound.NewOwner()
		stop = o.Dispose

		return o.Run(func() error {
			compound.NewRenderEffect(func() {
				html := r.html()

				compound.Untrack(func() struct{} {
					fn(html)
					return struct{}{}
				})
			})

			return nil
		})
	})

	return stop
}

// Walk visits the rendered tree depth first until fn returns false.
func (r *Root) Walk(fn func(*Node) bool) {
	compound.Untrack(func() bool {
		return walk(r.tree, fn)
	})
}

func walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}

	if n.Kind == KindComponent {
		if n.inst == nil {
			return true
		}
		return walk(n.inst.out.Read(), fn)
	}

	if !fn(n) {
		return false
	}

	for _, child := range n.Children {
		if !walk(child, fn) {
			return false
		}
	}

	return true
}

// Find returns the first rendered element matching pred.
func (r *Root) Find(pred func(*Node) bool) *Node {
	var found *Node

	r.Walk(func(n *Node) bool {
		if n.Kind == KindElement && pred(n) {
			found = n
			return false
		}
		return true
	})

	return found
}

// FindByID returns the rendered element with the given id.
func (r *Root) FindByID(id string) *Node {
	return r.Find(func(n *Node) bool {
		return n.Props["id"] == id
	})
}

// Dispatch calls the handler registered on n for event, e.g. "onclick",
// and returns the error raised by the renders it caused.
func (r *Root) Dispatch(n *Node, event string) error {
	fn, ok := n.Handler(event)
	if !ok {
		tag := "<nil>"
		if n != nil {
			tag = n.Tag
		}
		return fmt.Errorf("%s on <%s>: %w", event, tag, ErrNoHandler)
	}

	r.err = nil
	fn()

	return r.err
}

// Unmount disposes every component of the tree.
func (r *Root) Unmount() {
	r.owner.Dispose()
}
