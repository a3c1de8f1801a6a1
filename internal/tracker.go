package internal

type Tracker struct {
	tracking bool

	currentOwner       *Owner    // for lifecycle/cleanup tracking
	currentComputation *Computed // for reactive dependency tracking
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	defer owner.recover()

	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}

func (t *Tracker) RunWithComputation(node *Computed, fn func()) {
	defer node.recover()

	prevOwner := t.currentOwner
	prevComputation := t.currentComputation
	prevTracking := t.tracking

	t.currentOwner = node.Owner
	t.currentComputation = node
	t.tracking = true

	defer func() {
		t.currentOwner = prevOwner
		t.currentComputation = prevComputation
		t.tracking = prevTracking
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

// Track links the running computation to the given signal.
func (t *Tracker) Track(node *Signal) {
	if t.ShouldTrack() {
		t.currentComputation.Link(node)
	}
}

func (t *Tracker) ShouldTrack() bool {
	return t.currentComputation != nil && t.tracking
}

func (t *Tracker) CurrentOwner() *Owner {
	return t.currentOwner
}

func (t *Tracker) CurrentComputation() *Computed {
	return t.currentComputation
}
