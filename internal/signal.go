package internal

import (
	"reflect"
	"slices"
)

type Signal struct {
	rt *Runtime

	value any

	// the current height of the node in the dependency graph
	height int

	// computations depending on this signal
	subs []*Computed
}

func (r *Runtime) NewSignal(initial any) *Signal {
	return &Signal{
		rt:    r,
		value: initial,
	}
}

// Read tracks through the runtime owning the signal, so a write from another
// goroutine still flushes and relinks on that runtime.
func (s *Signal) Read() any {
	s.rt.tracker.Track(s)

	return s.value
}

func (s *Signal) Write(v any) {
	if isEqual(s.value, v) {
		return
	}

	s.value = v

	s.rt.heap.InsertAll(slices.Values(s.subs))
	s.rt.Schedule()
}

// Value returns the current value without tracking.
func (s *Signal) Value() any {
	return s.value
}

func (s *Signal) Height() int {
	return s.height
}

func (s *Signal) addSub(c *Computed) {
	if !slices.Contains(s.subs, c) {
		s.subs = append(s.subs, c)
	}
}

func (s *Signal) removeSub(c *Computed) {
	if i := slices.Index(s.subs, c); i >= 0 {
		s.subs = slices.Delete(s.subs, i, i+1)
	}
}

// isEqual compares with == when both values allow it.
// Values that can't be compared, such as an interface field holding a slice,
// are always considered different.
func isEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}

	return a == b
}
