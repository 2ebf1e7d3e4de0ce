package bind

// Element is the externally-owned UI object a directive binds against. It
// carries typed property slots, per-slot watcher lists, a logical parent, and
// optionally a data context. All mutation is expected to happen on the host's
// UI goroutine; the element itself does no locking.
type Element struct {
	Type string
	ID   string

	Parent   *Element
	Children []*Element

	values   map[string]Value
	watchers map[string][]*ChangeHandler

	isa []string // ancestor type names, for owner-type checks

	hasContext  bool
	context     Value
	ctxWatchers []*ChangeHandler
}

func New(typ string, id string, options ...func(*Element) *Element) *Element {
	e := &Element{
		Type:     typ,
		ID:       id,
		values:   make(map[string]Value),
		watchers: make(map[string][]*ChangeHandler),
	}
	for _, option := range options {
		e = option(e)
	}
	return e
}

// IsA reports whether the element is an instance of the given type name,
// either directly or through a declared ancestor type.
func (e *Element) IsA(typ string) bool {
	if e.Type == typ {
		return true
	}
	for _, t := range e.isa {
		if t == typ {
			return true
		}
	}
	return false
}

// AppendChild attaches child to the logical tree below e.
func (e *Element) AppendChild(child *Element) *Element {
	child.Parent = e
	e.Children = append(e.Children, child)
	return e
}

// RemoveChild detaches child from the logical tree.
func (e *Element) RemoveChild(child *Element) *Element {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.Parent = nil
			break
		}
	}
	return e
}

// Get returns the slot's current value, falling back to the property metadata
// default when nothing was ever written.
func (e *Element) Get(p *Property) Value {
	v, ok := e.values[p.Name]
	if !ok {
		return p.MetadataFor(e.Type).Default
	}
	return v
}

// Set writes value into the slot and notifies its watchers. Writing a value
// equal to the current one does not notify: a change notification always means
// the slot actually changed.
func (e *Element) Set(p *Property, value Value) {
	old, ok := e.values[p.Name]
	if ok && Equal(old, value) {
		return
	}
	e.values[p.Name] = value
	for _, h := range snapshot(e.watchers[p.Name]) {
		h.Fn(value)
	}
}

// ChangeHandler wraps a callback run after a slot value changed. Handlers are
// compared by identity for removal.
type ChangeHandler struct {
	Fn func(Value)
}

func NewChangeHandler(f func(Value)) *ChangeHandler {
	return &ChangeHandler{f}
}

// Watch registers h to run on every change of the slot (e, p).
func (e *Element) Watch(p *Property, h *ChangeHandler) *Element {
	e.watchers[p.Name] = append(e.watchers[p.Name], h)
	return e
}

// Unwatch removes h. Removing a handler that is not registered is a no-op.
func (e *Element) Unwatch(p *Property, h *ChangeHandler) *Element {
	e.watchers[p.Name] = remove(e.watchers[p.Name], h)
	return e
}

// DataContext returns the element's context object. The second result is false
// when the element does not carry the data-context capability or the context
// is currently absent.
func (e *Element) DataContext() (Value, bool) {
	if !e.hasContext || e.context == nil {
		return nil, false
	}
	return e.context, true
}

// SetDataContext replaces the element's context object wholesale and notifies
// context watchers. Unlike Set, replacement always notifies, even with an
// equal object: directives rewire on every replacement. A nil v removes the
// context. The element becomes a context holder if it was not one.
func (e *Element) SetDataContext(v Value) {
	e.hasContext = true
	e.context = v
	for _, h := range snapshot(e.ctxWatchers) {
		h.Fn(v)
	}
}

// IsContextHolder reports whether the element carries the data-context
// capability, present or not.
func (e *Element) IsContextHolder() bool {
	return e.hasContext
}

func (e *Element) watchContext(h *ChangeHandler) {
	e.ctxWatchers = append(e.ctxWatchers, h)
}

func (e *Element) unwatchContext(h *ChangeHandler) {
	e.ctxWatchers = remove(e.ctxWatchers, h)
}

// FindContextSource walks logical ancestry from node (itself included) up to
// the nearest element carrying the data-context capability. It returns nil
// when the ancestry is exhausted.
func FindContextSource(node *Element) *Element {
	for e := node; e != nil; e = e.Parent {
		if e.hasContext {
			return e
		}
	}
	return nil
}

// ContextLocator resolves the element whose data context a directive binds
// against. Hosts with a different notion of ambient context may inject their
// own.
type ContextLocator func(node *Element) *Element

func snapshot(hs []*ChangeHandler) []*ChangeHandler {
	if len(hs) == 0 {
		return nil
	}
	out := make([]*ChangeHandler, len(hs))
	copy(out, hs)
	return out
}

func remove(hs []*ChangeHandler, h *ChangeHandler) []*ChangeHandler {
	for i, c := range hs {
		if c == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}
