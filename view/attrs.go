package view

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// A creates an arbitrary attribute.
func A(key string, value any) Attr { return attr(key, value) }

// ID sets the element id.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Role sets the ARIA role.
func Role(role string) Attr { return attr("role", role) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// AriaLabel sets aria-label.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaChecked sets aria-checked, rendered as "true" or "false".
func AriaChecked(checked bool) Attr {
	if checked {
		return attr("aria-checked", "true")
	}
	return attr("aria-checked", "false")
}

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// OnClick registers a click handler.
func OnClick(fn func()) Attr { return attr("onclick", fn) }
