package slot

import (
	"testing"

	"github.com/vango-dev/slot/pkg/vdom"
)

func BenchmarkMerge(b *testing.B) {
	handler := func(...any) {}

	b.Run("disjoint", func(b *testing.B) {
		outer := vdom.NewProps(vdom.ID("a"), vdom.Role("button"))
		inner := vdom.NewProps(vdom.Href("/x"), vdom.TitleAttr("t"))
		for i := 0; i < b.N; i++ {
			_ = Merge(outer, inner)
		}
	})

	b.Run("colliding", func(b *testing.B) {
		outer := vdom.NewProps(vdom.Class("card"), vdom.StyleAttr("color: red; margin: 0"), vdom.OnClick(handler))
		inner := vdom.NewProps(vdom.Class("active"), vdom.StyleAttr("color: blue"), vdom.OnClick(handler))
		for i := 0; i < b.N; i++ {
			_ = Merge(outer, inner)
		}
	})
}

func BenchmarkCompose(b *testing.B) {
	c := New()
	props := vdom.NewProps(vdom.Class("menu-item"), vdom.OnClick(func(...any) {}))
	ref := vdom.RefCell(vdom.NewRef())

	b.Run("element", func(b *testing.B) {
		child := vdom.A(vdom.Class("active"), vdom.Href("/docs"), vdom.Text("Docs"))
		for i := 0; i < b.N; i++ {
			_ = c.Compose(props, ref, child)
		}
	})

	b.Run("rejected", func(b *testing.B) {
		children := []*vdom.VNode{vdom.Span(), vdom.Span()}
		for i := 0; i < b.N; i++ {
			_ = c.Compose(props, ref, children)
		}
	})

	b.Run("slot factory", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = c.Slot(vdom.Class("menu-item"), ref, vdom.Button(vdom.Text("Go")))
		}
	})
}
