// Package demo wires the toggle components into a small page.
package demo

import (
	"github.com/AnatoleLucet/compound/toggle"
	"github.com/AnatoleLucet/compound/view"
)

// Title names the demo.
const Title = "Flexible Compound Components"

// SwitchID is the id of the rendered switch.
const SwitchID = "toggle-switch"

// Usage renders a Provider around On, Off and Button.
// A nil onToggle falls back to the Provider's logging callback.
func Usage(opts toggle.Options) *view.Node {
	return toggle.Toggle.Provider(opts,
		toggle.Toggle.On("The button is on"),
		toggle.Toggle.Off("The button is off"),
		view.El("div",
			toggle.Toggle.Button(view.ID(SwitchID)),
		),
	)
}
