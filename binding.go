// Package bind connects observable data streams to mutable properties on UI
// elements, in both directions. A Binding is declared with a dotted member
// path; the path is resolved against the nearest ambient data context to find
// an endpoint, and values then flow between that endpoint and one typed
// property slot on the target element, rewired on every context replacement.
package bind

import (
	"strings"

	"github.com/ygrebnov/errorc"
)

// Mode selects the direction(s) of a binding.
type Mode int

const (
	// ModeDefault defers to the property metadata: two-way when the property
	// binds two-way by default, one-way otherwise. Resolved once, lazily, the
	// first time the directive wires an endpoint.
	ModeDefault Mode = iota
	// ModeOneTime delivers the endpoint's first element and nothing after.
	ModeOneTime
	// ModeOneWay delivers every endpoint element into the slot.
	ModeOneWay
	// ModeOneWayToSource forwards slot changes to the endpoint only.
	ModeOneWayToSource
	// ModeTwoWay wires both directions.
	ModeTwoWay
)

func (m Mode) String() string {
	switch m {
	case ModeOneTime:
		return "OneTime"
	case ModeOneWay:
		return "OneWay"
	case ModeOneWayToSource:
		return "OneWayToSource"
	case ModeTwoWay:
		return "TwoWay"
	default:
		return "Default"
	}
}

// links owns the live subscription pair of one directive: at most one listen
// subscription (endpoint to slot) and one emit subscription (slot to endpoint)
// at any time. Both are released together before any re-setup.
type links struct {
	listen func()
	emit   func()
}

// setupListen wires the endpoint's observable capability to the target slot.
// The endpoint must expose the capability with a valid element category;
// anything else is a configuration error and panics. Values are marshaled onto
// sched in delivery order; when the slot is textual and the elements are not,
// each element is written as its textual form.
func (l *links) setupListen(endpoint Value, target *Element, prop *Property, mode Mode, sched Scheduler) {
	src, ok := endpoint.(source)
	if !ok || src.elemKind() == KindInvalid {
		panic(errorc.With(ErrNotObservable,
			errorc.String(KeyProperty, prop.Name),
			errorc.String(KeyEndpoint, endpoint.Kind().String()),
		))
	}

	coerce := prop.Kind == KindString && src.elemKind() != KindString
	delivered := false
	l.listen = src.watch(func(v Value) {
		if mode == ModeOneTime {
			if delivered {
				return
			}
			delivered = true
		}
		if coerce {
			v = Stringify(v)
		}
		sched.Do(func() {
			target.Set(prop, v)
		})
	})
}

// setupEmit wires slot changes to the endpoint's observer capability. When the
// endpoint has no such capability, does not accept the slot's exact category,
// or the target is not an instance of the property's owning type, nothing is
// wired: the emit direction is permissively skipped, not an error.
func (l *links) setupEmit(endpoint Value, target *Element, prop *Property) {
	snk, ok := endpoint.(sink)
	if !ok {
		return
	}
	if !snk.accepts(prop.Kind) {
		return
	}
	if !prop.Owns(target) {
		return
	}
	l.emit = observeProperty(target, prop).subscribe(func(v Value) {
		snk.feed(v)
	})
}

// teardown releases both subscriptions. Safe to call with nothing wired, and
// idempotent.
func (l *links) teardown() {
	if l.listen != nil {
		l.listen()
		l.listen = nil
	}
	if l.emit != nil {
		l.emit()
		l.emit = nil
	}
}

// Binding is the declarative directive tying one target slot to a path into
// the ambient data context. It is created once per target and lives as long as
// the target does; its subscription pair is recreated on every context
// replacement.
type Binding struct {
	target *Element
	prop   *Property
	path   []string

	mode   Mode
	sched  Scheduler
	locate ContextLocator

	holder     *Element
	ctxHandler *ChangeHandler
	links      links
}

// BindOption configures a Binding before it attaches.
type BindOption func(*Binding)

// WithScheduler nominates the execution context slot writes are marshaled onto.
func WithScheduler(s Scheduler) BindOption {
	return func(b *Binding) { b.sched = s }
}

// WithContextLocator replaces ancestry walking as the way the directive finds
// its data context source.
func WithContextLocator(l ContextLocator) BindOption {
	return func(b *Binding) { b.locate = l }
}

// Bind attaches a directive to the slot (target, prop). The path is a
// dot-separated member path into the data context; mode selects direction.
// Bind locates the nearest context source in target's logical ancestry,
// subscribes to its context replacement, and wires against the current
// context. An empty path or a missing context source is a configuration error
// and panics. Until a resolvable endpoint delivers a value, the slot reads as
// its metadata default.
func Bind(target *Element, prop *Property, path string, mode Mode, options ...BindOption) *Binding {
	if path == "" {
		panic(errorc.With(ErrEmptyPath,
			errorc.String(KeyProperty, prop.Name),
			errorc.String(KeyTarget, target.ID),
		))
	}

	b := &Binding{
		target: target,
		prop:   prop,
		path:   strings.Split(path, "."),
		mode:   mode,
		sched:  Immediate,
		locate: FindContextSource,
	}
	for _, option := range options {
		option(b)
	}

	b.holder = b.locate(target)
	if b.holder == nil {
		panic(errorc.With(ErrNoContextSource,
			errorc.String(KeyProperty, prop.Name),
			errorc.String(KeyPath, path),
			errorc.String(KeyTarget, target.ID),
		))
	}

	b.ctxHandler = NewChangeHandler(func(ctx Value) {
		b.rewire(ctx)
	})
	b.holder.watchContext(b.ctxHandler)

	ctx, _ := b.holder.DataContext()
	b.rewire(ctx)
	return b
}

// rewire tears down the current subscription pair and, when ctx is present and
// the path resolves, sets the pair up against the new endpoint. A broken path
// or absent context leaves the directive inert until the next replacement.
func (b *Binding) rewire(ctx Value) {
	b.links.teardown()
	if ctx == nil {
		return
	}
	endpoint, ok := ResolvePath(ctx, b.path)
	if !ok {
		return
	}

	mode := b.resolveMode()
	switch mode {
	case ModeOneTime, ModeOneWay, ModeTwoWay:
		b.links.setupListen(endpoint, b.target, b.prop, mode, b.sched)
	}
	switch mode {
	case ModeOneWayToSource, ModeTwoWay:
		b.links.setupEmit(endpoint, b.target, b.prop)
	}
}

// resolveMode pins the effective mode the first time it is needed. Later
// metadata changes never move a directive that already resolved.
func (b *Binding) resolveMode() Mode {
	if b.mode == ModeDefault {
		if b.prop.MetadataFor(b.target.Type).TwoWayByDefault {
			b.mode = ModeTwoWay
		} else {
			b.mode = ModeOneWay
		}
	}
	return b.mode
}

// Mode returns the directive's effective mode, or ModeDefault while it is
// still unresolved.
func (b *Binding) Mode() Mode { return b.mode }

// Unbind releases the subscription pair and the context-replacement listener.
// A host that recycles targets calls this; otherwise the directive is simply
// released together with its target. Idempotent.
func (b *Binding) Unbind() {
	b.links.teardown()
	if b.ctxHandler != nil {
		b.holder.unwatchContext(b.ctxHandler)
		b.ctxHandler = nil
	}
}
