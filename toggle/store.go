package toggle

import "github.com/AnatoleLucet/compound"

// State is the snapshot published by a Provider.
type State struct {
	On     bool
	Toggle func()
}

// Store holds the flag of a Provider.
type Store struct {
	on       *compound.Signal[bool]
	snapshot *compound.Computed[*State]
	toggle   func()
}

// NewStore creates a store within the current owner.
func NewStore(initial bool) *Store {
	s := &Store{
		on: compound.NewSignal(initial),
	}

	// flips whatever the latest value is, never a captured one
	s.toggle = func() {
		s.on.Update(func(on bool) bool { return !on })
	}

	// a new snapshot only when the flag differs from the published one,
	// an even number of toggles within a batch publishes nothing
	var last *State
	s.snapshot = compound.NewComputed(func() *State {
		on := s.on.Read()
		if last == nil || last.On != on {
			last = &State{On: on, Toggle: s.toggle}
		}
		return last
	})

	return s
}

// Get returns the current snapshot. The same pointer is returned until the
// flag changes. Inside a computation the read is tracked.
func (s *Store) Get() *State {
	return s.snapshot.Read()
}

// Toggle flips the flag.
func (s *Store) Toggle() {
	s.toggle()
}

// Subscribe calls fn with the current snapshot, then with every new one.
// The subscription belongs to the current owner, if any, and ends with it.
func (s *Store) Subscribe(fn func(*State)) (unsubscribe func()) {
	o := compound.NewOwner()

	_ = o.Run(func() error {
		compound.NewEffect(func() {
			state := s.Get()

			compound.Untrack(func() struct{} {
				fn(state)
				return struct{}{}
			})
		})

		return nil
	})

	return o.Dispose
}
