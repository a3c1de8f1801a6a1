package internal

// Context is a value scoped to an owner and inherited by its descendants.
type Context struct {
	defaultValue any
}

func (r *Runtime) NewContext(defaultValue any) *Context {
	return &Context{defaultValue: defaultValue}
}

// Value returns the value set on the closest owner, or the default value.
func (c *Context) Value() any {
	if owner := GetRuntime().CurrentOwner(); owner != nil {
		if v, ok := owner.lookup(c); ok {
			return v
		}
	}

	return c.defaultValue
}

// Lookup is like Value but reports whether an owner holds the value.
func (c *Context) Lookup() (any, bool) {
	owner := GetRuntime().CurrentOwner()
	if owner == nil {
		return c.defaultValue, false
	}

	if v, ok := owner.lookup(c); ok {
		return v, true
	}

	return c.defaultValue, false
}

// Set stores the value on the current owner.
// Without owner there is nowhere to hold the value and the call is a no-op.
func (c *Context) Set(value any) {
	if owner := GetRuntime().CurrentOwner(); owner != nil {
		owner.context[c] = value
	}
}
