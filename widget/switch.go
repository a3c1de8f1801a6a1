// Package widget holds presentational controls with no state of their own.
package widget

import "github.com/AnatoleLucet/compound/view"

// SwitchProps configures Switch.
type SwitchProps struct {
	On      bool
	OnClick func()

	// Attrs are applied after the switch's own attributes and override them.
	Attrs []view.Attr
}

// Switch renders an on/off button.
func Switch(props SwitchProps) *view.Node {
	state := "toggle-btn-off"
	if props.On {
		state = "toggle-btn-on"
	}

	args := []any{
		view.Type("button"),
		view.Role("switch"),
		view.AriaChecked(props.On),
		view.Class("toggle-btn", state),
	}
	if props.OnClick != nil {
		args = append(args, view.OnClick(props.OnClick))
	}
	args = append(args, props.Attrs)

	return view.El("button", args...)
}
