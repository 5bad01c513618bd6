package fixture

import "github.com/vango-dev/slot/pkg/vdom"

// EventFunc is called whenever a handler built from a fixture fires.
// owner is the node's ref name, or its tag when it has none ("slot" for
// the slot itself).
type EventFunc func(owner, event string, args ...any)

// Built is a fixture turned into composer inputs.
type Built struct {
	// Props are the slot's attributes.
	Props vdom.Props

	// Ref is the slot's handle, absent when the slot names no ref.
	Ref vdom.Handle

	// Children are the nodes placed inside the slot.
	Children []*vdom.VNode

	// Refs holds one cell per ref name used anywhere in the fixture.
	Refs map[string]*vdom.Ref

	// RefOrder lists ref names in first-use order.
	RefOrder []string
}

// Child returns the children in the shape Compose expects: nil for none,
// the node itself for one, the slice for several.
func (b *Built) Child() any {
	switch len(b.Children) {
	case 0:
		return nil
	case 1:
		return b.Children[0]
	default:
		return b.Children
	}
}

// Build turns f into composer inputs. on may be nil.
func Build(f *Fixture, on EventFunc) *Built {
	b := &builder{
		on:   on,
		refs: make(map[string]*vdom.Ref),
	}

	out := &Built{
		Props: vdom.NewProps(b.attrs("slot", f.Slot)...),
		Ref:   b.handle(f.Slot.Ref),
	}
	for _, n := range f.Children {
		out.Children = append(out.Children, b.node(n))
	}
	out.Refs = b.refs
	out.RefOrder = b.order
	return out
}

type builder struct {
	on    EventFunc
	refs  map[string]*vdom.Ref
	order []string
}

func (b *builder) handle(name string) vdom.Handle {
	if name == "" {
		return vdom.Handle{}
	}
	r, ok := b.refs[name]
	if !ok {
		r = vdom.NewRef()
		b.refs[name] = r
		b.order = append(b.order, name)
	}
	return vdom.RefCell(r)
}

func (b *builder) attrs(owner string, n Node) []vdom.Attr {
	if n.Ref != "" {
		owner = n.Ref
	}

	var attrs []vdom.Attr
	if n.Class != "" {
		attrs = append(attrs, vdom.Class(n.Class))
	}
	if len(n.Style) > 0 {
		attrs = append(attrs, vdom.Styles(n.Style))
	}
	for _, kv := range n.Attrs {
		attrs = append(attrs, vdom.NewAttr(kv.Key, kv.Value))
	}
	for _, e := range n.Events {
		name := vdom.EventName(e)
		attrs = append(attrs, vdom.On(name, b.handler(owner, name)))
	}
	return attrs
}

func (b *builder) handler(owner, event string) vdom.Handler {
	return func(args ...any) {
		if b.on != nil {
			b.on(owner, event, args...)
		}
	}
}

func (b *builder) node(n Node) *vdom.VNode {
	switch n.Tag {
	case "", TagText:
		return vdom.Text(n.Text)
	case TagRaw:
		return vdom.Raw(n.Text)
	case TagFragment:
		return vdom.Fragment(b.children(n))
	}

	args := []any{b.handle(n.Ref)}
	for _, a := range b.attrs(n.Tag, n) {
		args = append(args, a)
	}
	if n.Text != "" {
		args = append(args, vdom.Text(n.Text))
	}
	args = append(args, b.children(n))
	return vdom.El(n.Tag, args...)
}

func (b *builder) children(n Node) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, b.node(c))
	}
	return out
}
