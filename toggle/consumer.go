package toggle

import "github.com/AnatoleLucet/compound/view"

// Observer renders from the state of the closest Provider.
type Observer interface {
	Render(state *State) *view.Node
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(state *State) *view.Node

// Render implements Observer.
func (f ObserverFunc) Render(state *State) *view.Node { return f(state) }

// Consumer renders obs with the current state.
func Consumer(obs Observer) *view.Node {
	return view.Func(func() *view.Node {
		return obs.Render(use("Consumer"))
	})
}
