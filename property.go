package bind

// Metadata carries the per-owner typing defaults of a property: the value a
// slot holds before anything was written to it, and whether a directive left
// in default mode binds two-directionally.
type Metadata struct {
	Default         Value
	TwoWayByDefault bool
}

// Property describes one typed, mutable slot on an Element: its name, the
// category of values it holds, the element type that declares it, and its
// metadata. A Property is shared across every element of its owner type;
// the (element, property) pair identifies a concrete slot.
type Property struct {
	Name  string
	Kind  Kind
	Owner string // declaring element type; empty means any element may carry it

	meta      Metadata
	overrides map[string]Metadata
}

func NewProperty(name string, kind Kind, owner string, meta Metadata) *Property {
	return &Property{
		Name:      name,
		Kind:      kind,
		Owner:     owner,
		meta:      meta,
		overrides: make(map[string]Metadata),
	}
}

// OverrideMetadata replaces the metadata consulted for elements of the given
// type. Overrides registered after a directive resolved its mode have no
// effect on that directive.
func (p *Property) OverrideMetadata(ownerType string, meta Metadata) *Property {
	p.overrides[ownerType] = meta
	return p
}

// MetadataFor resolves the metadata in effect for an element type.
func (p *Property) MetadataFor(ownerType string) Metadata {
	if m, ok := p.overrides[ownerType]; ok {
		return m
	}
	return p.meta
}

// Owns reports whether e is an instance of the property's owning type.
func (p *Property) Owns(e *Element) bool {
	if p.Owner == "" {
		return true
	}
	return e.IsA(p.Owner)
}
