package internal

type EffectType int

const (
	EffectRender EffectType = iota
	EffectUser
)

type Effect struct {
	*Computed

	typ EffectType
}

// NewEffect creates a computation run immediately, then queued after each
// change of its dependencies. Render effects are flushed before user effects.
func (r *Runtime) NewEffect(typ EffectType, effect func()) *Effect {
	e := &Effect{typ: typ}

	e.Computed = r.newComputed(
		func() any {
			effect()
			return nil
		},
		func(c *Computed) { r.effectQueue.Enqueue(typ, c) },
	)

	return e
}

func (e *Effect) Type() EffectType {
	return e.typ
}
