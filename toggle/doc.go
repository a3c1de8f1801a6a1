// Package toggle implements the Toggle compound components.
//
// A Provider owns an on/off flag and publishes it to its descendants through
// a context; On, Off, Button and Consumer read it without the flag being
// passed down explicitly:
//
//	toggle.Provider(toggle.Options{OnToggle: save},
//		toggle.On("The button is on"),
//		toggle.Off("The button is off"),
//		view.El("div", toggle.Button()),
//	)
//
// The published State is memoized on the flag, and its Toggle function is
// created once per Provider, so consumers only render again when the flag
// actually changed.
package toggle
