package internal

// Batcher counts the batches currently open. Flushing waits for the
// outermost one to close.
type Batcher struct {
	depth int
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

func (b *Batcher) Enter() {
	b.depth++
}

// Leave closes a batch and reports whether it was the outermost one.
func (b *Batcher) Leave() bool {
	b.depth--
	return b.depth == 0
}

// NewBatch runs fn and flushes the writes it made once no batch is open.
func (r *Runtime) NewBatch(fn func()) {
	r.batcher.Enter()
	defer func() {
		if r.batcher.Leave() {
			r.Flush()
		}
	}()

	fn()
}
