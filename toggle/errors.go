package toggle

import "fmt"

// MissingProviderError is raised when a toggle component is rendered
// outside of a Provider.
type MissingProviderError struct {
	// Component is the name of the component that was rendered, if known.
	Component string
}

func (e *MissingProviderError) Error() string {
	if e.Component == "" {
		return "Toggle compound components cannot be rendered outside the Toggle component"
	}

	return fmt.Sprintf("Toggle.%s cannot be rendered outside the Toggle component", e.Component)
}
