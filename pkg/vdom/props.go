package vdom

// Props is an ordered, immutable attribute bag.
//
// The zero value is an empty bag. A key appears at most once; when a key is
// added twice the later attribute replaces the earlier one in the earlier
// position. Props values are never modified after construction, so they can
// be shared between nodes.
type Props struct {
	attrs []Attr
	index map[string]int
}

// NewProps builds a bag from attrs. Empty attributes are ignored.
func NewProps(attrs ...Attr) Props {
	b := NewPropsBuilder(len(attrs))
	for _, a := range attrs {
		b.Set(a)
	}
	return b.Props()
}

// Len returns the number of attributes.
func (p Props) Len() int { return len(p.attrs) }

// Get returns the attribute stored under key.
func (p Props) Get(key string) (Attr, bool) {
	i, ok := p.index[key]
	if !ok {
		return Attr{}, false
	}
	return p.attrs[i], true
}

// Has reports whether key is present.
func (p Props) Has(key string) bool {
	_, ok := p.index[key]
	return ok
}

// Value returns the raw value stored under key, or nil.
func (p Props) Value(key string) any {
	a, _ := p.Get(key)
	return a.value
}

// ClassName returns the class list, or "".
func (p Props) ClassName() string {
	a, _ := p.Get("class")
	return a.ClassName()
}

// Style returns the style map, or nil. The returned map must not be modified.
func (p Props) Style() Style {
	a, _ := p.Get("style")
	return a.Style()
}

// Handler returns the event handler stored under key, or nil.
func (p Props) Handler(key string) Handler {
	a, _ := p.Get(key)
	return a.Handler()
}

// Keys returns the attribute keys in order.
func (p Props) Keys() []string {
	keys := make([]string, len(p.attrs))
	for i, a := range p.attrs {
		keys[i] = a.key
	}
	return keys
}

// Attrs returns a copy of the attributes in order.
func (p Props) Attrs() []Attr {
	out := make([]Attr, len(p.attrs))
	copy(out, p.attrs)
	return out
}

// Each calls fn for every attribute in order.
func (p Props) Each(fn func(Attr)) {
	for _, a := range p.attrs {
		fn(a)
	}
}

// With returns a new bag with attrs added on top of p.
func (p Props) With(attrs ...Attr) Props {
	b := NewPropsBuilder(len(p.attrs) + len(attrs))
	p.Each(b.Set)
	for _, a := range attrs {
		b.Set(a)
	}
	return b.Props()
}

// Map returns the raw values keyed by attribute name.
func (p Props) Map() map[string]any {
	out := make(map[string]any, len(p.attrs))
	for _, a := range p.attrs {
		out[a.key] = a.value
	}
	return out
}

// PropsBuilder accumulates attributes for a new bag.
// It must not be used after Props has been called.
type PropsBuilder struct {
	p Props
}

// NewPropsBuilder returns a builder sized for n attributes.
func NewPropsBuilder(n int) *PropsBuilder {
	return &PropsBuilder{p: Props{
		attrs: make([]Attr, 0, n),
		index: make(map[string]int, n),
	}}
}

// Set adds a, replacing any attribute with the same key in place.
func (b *PropsBuilder) Set(a Attr) {
	if a.IsEmpty() {
		return
	}
	if i, ok := b.p.index[a.key]; ok {
		b.p.attrs[i] = a
		return
	}
	b.p.index[a.key] = len(b.p.attrs)
	b.p.attrs = append(b.p.attrs, a)
}

// Props returns the built bag.
func (b *PropsBuilder) Props() Props {
	return b.p
}
