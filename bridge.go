package bind

// propertyObservable adapts the element value-changed primitive into an
// observable stream of values for one (target, property) slot. Every
// subscription attaches a fresh change handler; the stream never completes on
// its own. On each change notification the current value is read back from the
// target rather than taken from the notification, so the observer always sees
// what the slot actually holds.
type propertyObservable struct {
	target *Element
	prop   *Property
}

func observeProperty(target *Element, prop *Property) propertyObservable {
	return propertyObservable{target: target, prop: prop}
}

func (o propertyObservable) subscribe(fn func(Value)) (cancel func()) {
	h := NewChangeHandler(func(Value) {
		fn(o.target.Get(o.prop))
	})
	o.target.Watch(o.prop, h)
	return func() {
		// Unwatch of an already-removed handler is a no-op, so cancel is
		// idempotent and safe after the target was discarded.
		o.target.Unwatch(o.prop, h)
	}
}
