package toggle

import (
	"go.uber.org/zap"

	"github.com/AnatoleLucet/compound"
	"github.com/AnatoleLucet/compound/view"
	"github.com/AnatoleLucet/compound/widget"
)

var toggleContext = compound.NewContext[*Store](nil)

// Options configures a Provider.
type Options struct {
	// OnToggle is called with the new flag after each change.
	// Defaults to logging the flag.
	OnToggle func(on bool)

	// NotifyOnMount also calls OnToggle with the initial flag when the
	// Provider mounts. By default mounting is not a toggle.
	NotifyOnMount bool

	// Logger is used by the default OnToggle. Defaults to zap.L().
	Logger *zap.Logger
}

func (o Options) onToggle() func(bool) {
	if o.OnToggle != nil {
		return o.OnToggle
	}

	logger := o.Logger
	if logger == nil {
		logger = zap.L()
	}

	return func(on bool) {
		logger.Info("onToggle", zap.Bool("on", on))
	}
}

// Compound bundles the Provider with the components reading it.
type Compound struct {
	Provider func(opts Options, children ...any) *view.Node
	On       func(children ...any) *view.Node
	Off      func(children ...any) *view.Node
	Button   func(attrs ...view.Attr) *view.Node
	Consumer func(obs Observer) *view.Node
}

// Toggle is the namespace of the toggle components, e.g. Toggle.On.
var Toggle = Compound{
	Provider: Provider,
	On:       On,
	Off:      Off,
	Button:   Button,
	Consumer: Consumer,
}

// Provider owns the flag, initially off, and shares it with the components
// rendered among its children.
//
// The flag and its Toggle live as long as the Provider stays mounted, even
// when an ancestor renders it again with other options. OnToggle is read
// when the flag changes, so the latest options are the ones notified.
func Provider(opts Options, children ...any) *view.Node {
	return view.Comp(&provider{opts: opts, children: children})
}

type provider struct {
	opts     Options
	children []any
}

func (p *provider) Render() *view.Node {
	opts := view.Use(func() *Options { return new(Options) })
	*opts = p.opts

	view.Use(func() *Store {
		store := NewStore(false)
		toggleContext.Set(store)

		notify(store, opts)

		return store
	})

	return view.Fragment(p.children...)
}

// notify calls OnToggle after each change of the flag. With NotifyOnMount,
// the initial flag is also notified, once the tree being mounted has rendered.
func notify(store *Store, opts *Options) {
	mounted := false

	compound.NewEffect(func() {
		on := store.Get().On

		if !mounted {
			mounted = true
			if opts.NotifyOnMount {
				compound.OnSettled(func() { opts.onToggle()(on) })
			}
			return
		}

		compound.Untrack(func() struct{} {
			opts.onToggle()(on)
			return struct{}{}
		})
	})
}

// UseStore returns the store of the closest Provider.
func UseStore() (*Store, error) {
	store, ok := toggleContext.Lookup()
	if !ok || store == nil {
		return nil, &MissingProviderError{}
	}

	return store, nil
}

// UseToggle returns the state of the closest Provider. Inside a component
// the read is tracked, so the component renders again when the flag changes.
func UseToggle() (*State, error) {
	store, err := UseStore()
	if err != nil {
		return nil, err
	}

	return store.Get(), nil
}

func use(component string) *State {
	store, ok := toggleContext.Lookup()
	if !ok || store == nil {
		panic(&MissingProviderError{Component: component})
	}

	return store.Get()
}

// On renders its children when the flag is on.
func On(children ...any) *view.Node {
	return view.Func(func() *view.Node {
		if !use("On").On {
			return nil
		}

		return view.Fragment(children...)
	})
}

// Off renders its children when the flag is off.
func Off(children ...any) *view.Node {
	return view.Func(func() *view.Node {
		if use("Off").On {
			return nil
		}

		return view.Fragment(children...)
	})
}

// Button renders a Switch bound to the flag. attrs are forwarded to the Switch.
func Button(attrs ...view.Attr) *view.Node {
	return view.Func(func() *view.Node {
		state := use("Button")

		return widget.Switch(widget.SwitchProps{
			On:      state.On,
			OnClick: state.Toggle,
			Attrs:   attrs,
		})
	})
}
