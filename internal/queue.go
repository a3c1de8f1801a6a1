package internal

type EffectQueue struct {
	effects map[EffectType][]*Computed
}

func NewEffectQueue() *EffectQueue {
	effects := make(map[EffectType][]*Computed)
	effects[EffectRender] = make([]*Computed, 0)
	effects[EffectUser] = make([]*Computed, 0)

	return &EffectQueue{effects}
}

func (q *EffectQueue) Enqueue(typ EffectType, node *Computed) {
	if node.HasFlag(FlagQueued) {
		return
	}
	node.AddFlag(FlagQueued)

	q.effects[typ] = append(q.effects[typ], node)
}

func (q *EffectQueue) Len() int {
	return len(q.effects[EffectRender]) + len(q.effects[EffectUser])
}

func (q *EffectQueue) RunEffects(typ EffectType, run func(*Computed)) {
	effects := q.effects[typ]
	q.effects[typ] = make([]*Computed, 0, len(effects))

	for _, effect := range effects {
		effect.RemoveFlag(FlagQueued)
		run(effect)
	}
}
