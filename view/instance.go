package view

import (
	"reflect"

	"github.com/AnatoleLucet/compound"
)

// instance is a mounted component. It lives as long as its parent keeps
// rendering a component of the same identity at the same position.
type instance struct {
	id identity

	// retained, so the parent rendering again does not dispose it
	owner *compound.Owner

	comp *compound.Signal[Component]
	out  *compound.Computed[*Node]

	hooks     []any
	hook      int
	rendering bool

	// component instances found in the last output, in order
	children []*instance
}

var instanceContext = compound.NewContext[*instance](nil)

// identity tells whether two components may share an instance.
// Funcs built by the same function literal share an identity.
type identity struct {
	typ reflect.Type
	fn  uintptr
}

func identify(c Component) identity {
	v := reflect.ValueOf(c)

	id := identity{typ: v.Type()}
	if v.Kind() == reflect.Func {
		id.fn = v.Pointer()
	}

	return id
}

// scope matches the components of a render with the instances of the
// previous one, by position.
type scope struct {
	prev []*instance
	next []*instance
}

func (s *scope) take(id identity) *instance {
	i := len(s.next)
	if i >= len(s.prev) || s.prev[i] == nil || s.prev[i].id != id {
		return nil
	}

	inst := s.prev[i]
	s.prev[i] = nil
	return inst
}

// release disposes the previous instances that were not taken.
func (s *scope) release() {
	for _, inst := range s.prev {
		if inst != nil {
			inst.owner.Dispose()
		}
	}
}

// mount returns the instance rendering c, reusing the previous one when
// the identity matches. A reused instance renders again with c.
func mount(c Component, sc *scope) *instance {
	id := identify(c)

	if inst := sc.take(id); inst != nil {
		inst.comp.Write(c)
		sc.next = append(sc.next, inst)
		return inst
	}

	inst := &instance{id: id, owner: compound.NewOwner()}
	inst.owner.Retain()

	_ = inst.owner.Run(func() error {
		instanceContext.Set(inst)

		inst.comp = compound.NewSignal(c)
		inst.out = compound.NewComputed(inst.render)

		return nil
	})

	sc.next = append(sc.next, inst)
	return inst
}

func (inst *instance) render() *Node {
	c := inst.comp.Read()

	n := inst.call(c)

	sc := &scope{prev: inst.children}
	out := resolve(n, sc)
	sc.release()
	inst.children = sc.next

	return out
}

func (inst *instance) call(c Component) *Node {
	inst.hook = 0
	inst.rendering = true
	defer func() { inst.rendering = false }()

	return c.Render()
}

// Use returns the value kept in the next slot of the rendering component,
// calling create to fill the slot on the first render. Slots are matched by
// call order, so Use must be called unconditionally and in the same order
// on every render.
//
// create runs untracked, and what it creates lives until the component is
// unmounted rather than until its next render. Outside of a render, Use
// simply returns create().
func Use[T any](create func() T) T {
	inst, _ := instanceContext.Lookup()
	if inst == nil || !inst.rendering {
		return create()
	}

	if inst.hook < len(inst.hooks) {
		v, _ := inst.hooks[inst.hook].(T)
		inst.hook++
		return v
	}

	var v T
	_ = inst.owner.Run(func() error {
		v = compound.Untrack(create)
		return nil
	})

	inst.hooks = append(inst.hooks, v)
	inst.hook++
	return v
}
