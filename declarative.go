package bind

// Modify applies modifiers to an already-constructed element. Together with
// the options accepted by New, it allows a UI tree and its bindings to be
// declared in one expression.
func Modify(e *Element, modifiers ...func(*Element) *Element) *Element {
	for _, mod := range modifiers {
		e = mod(e)
	}
	return e
}

// Derives declares ancestor type names for owner-type checks.
func Derives(types ...string) func(*Element) *Element {
	return func(e *Element) *Element {
		e.isa = append(e.isa, types...)
		return e
	}
}

// Children attaches child elements to the logical tree below the element.
func Children(children ...*Element) func(*Element) *Element {
	return func(e *Element) *Element {
		for _, child := range children {
			e.AppendChild(child)
		}
		return e
	}
}

// WithValue presets a property slot.
func WithValue(p *Property, v Value) func(*Element) *Element {
	return func(e *Element) *Element {
		e.Set(p, v)
		return e
	}
}

// WithDataContext makes the element a data context holder with an initial
// context object.
func WithDataContext(v Value) func(*Element) *Element {
	return func(e *Element) *Element {
		e.hasContext = true
		e.context = v
		return e
	}
}

// ContextHolder makes the element a data context holder with no context yet.
// Directives below it attach inert and wire up on the first SetDataContext.
func ContextHolder() func(*Element) *Element {
	return func(e *Element) *Element {
		e.hasContext = true
		return e
	}
}

// BindTo declares a binding on the element being modified. The element must
// already sit under a context holder (or be one itself); apply it with Modify
// once the tree is assembled, or combine it with WithDataContext.
func BindTo(prop *Property, path string, mode Mode, options ...BindOption) func(*Element) *Element {
	return func(e *Element) *Element {
		Bind(e, prop, path, mode, options...)
		return e
	}
}
