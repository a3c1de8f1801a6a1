package internal

import (
	"errors"
	"sync"
)

// maxFlushPasses bounds the number of drain/effect passes of a single flush.
const maxFlushPasses = 1000

// ErrInfiniteUpdate is raised when effects keep writing signals they depend on.
var ErrInfiniteUpdate = errors.New("reactive updates did not settle")

var runtimes sync.Map // runtimeKey() -> *Runtime

// GetRuntime returns the runtime of the calling goroutine, creating it on
// first use.
func GetRuntime() *Runtime {
	key := runtimeKey()

	if r, ok := runtimes.Load(key); ok {
		return r.(*Runtime)
	}

	r, _ := runtimes.LoadOrStore(key, NewRuntime())
	return r.(*Runtime)
}

type Runtime struct {
	heap        *PriorityHeap
	tracker     *Tracker
	batcher     *Batcher
	scheduler   *Scheduler
	effectQueue *EffectQueue

	// callbacks waiting for the current batch or flush to complete
	settled []func()
}

func NewRuntime() *Runtime {
	return &Runtime{
		heap:        NewHeap(),
		tracker:     NewTracker(),
		batcher:     NewBatcher(),
		scheduler:   NewScheduler(),
		effectQueue: NewEffectQueue(),
	}
}

func (r *Runtime) Schedule() {
	r.scheduler.Schedule()

	if !r.batcher.IsBatching() {
		r.Flush()
	}
}

func (r *Runtime) Flush() {
	r.scheduler.Run(func() {
		for pass := 0; r.heap.Len() > 0 || r.effectQueue.Len() > 0; pass++ {
			if pass >= maxFlushPasses {
				panic(ErrInfiniteUpdate)
			}

			r.heap.Drain(r.recompute)

			r.effectQueue.RunEffects(EffectRender, r.run)
			r.effectQueue.RunEffects(EffectUser, r.run)
		}
	})

	r.settle()
}

// OnSettled calls fn, untracked, once the current batch or flush has
// completed. Outside of both, fn waits for the next update.
func (r *Runtime) OnSettled(fn func()) {
	r.settled = append(r.settled, fn)
}

func (r *Runtime) settle() {
	for len(r.settled) > 0 && !r.batcher.IsBatching() && !r.scheduler.IsRunning() {
		fns := r.settled
		r.settled = nil

		for _, fn := range fns {
			r.tracker.RunUntracked(fn)
		}
	}
}

func (r *Runtime) Time() int {
	return r.scheduler.Time()
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

func (r *Runtime) CurrentComputation() *Computed {
	return r.tracker.CurrentComputation()
}

func (r *Runtime) OnCleanup(fn func()) {
	owner := r.CurrentOwner()
	if owner != nil {
		owner.OnCleanup(fn)
	}
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}
