package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/slot/internal/errors"
	"github.com/vango-dev/slot/pkg/slot"
	"github.com/vango-dev/slot/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "attributes in bag order",
			node: vdom.Div(vdom.ID("main"), vdom.Class("card"), vdom.P(vdom.Text("Content"))),
			want: `<div id="main" class="card"><p>Content</p></div>`,
		},
		{
			name: "style map",
			node: vdom.Span(vdom.Styles(vdom.Style{"margin": "0", "color": "red"})),
			want: `<span style="color: red; margin: 0;"></span>`,
		},
		{
			name: "boolean attributes",
			node: vdom.Button(vdom.Disabled(), vdom.NewAttr("hidden", false)),
			want: `<button disabled></button>`,
		},
		{
			name: "void element",
			node: vdom.Img(vdom.NewAttr("src", "/a.png")),
			want: `<img src="/a.png">`,
		},
		{
			name: "key and empty values skipped",
			node: vdom.Li(vdom.Key(1), vdom.Class(""), vdom.NewAttr("title", nil)),
			want: `<li></li>`,
		},
		{
			name: "attribute escaping",
			node: vdom.Div(vdom.TitleAttr(`a "quoted"` + "\nline")),
			want: `<div title="a &quot;quoted&quot;&#10;line"></div>`,
		},
		{
			name: "fragment and component",
			node: vdom.Fragment(vdom.Span(), vdom.Func(func() *vdom.VNode { return vdom.P() })),
			want: `<span></span><p></p>`,
		},
		{
			name: "raw",
			node: vdom.Raw("<b>x</b>"),
			want: `<b>x</b>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := NewRenderer(RendererConfig{}).RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	html, err := renderer.RenderToString(vdom.Ul(vdom.Li(), vdom.Li()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul>\n  <li></li>\n  <li></li>\n</ul>\n"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderComposedSlot(t *testing.T) {
	var calls []string
	slotRef, childRef := vdom.NewRef(), vdom.NewRef()

	node := slot.Slot(
		vdom.Class("wrap"),
		vdom.OnClick(func(...any) { calls = append(calls, "slot") }),
		vdom.RefCell(slotRef),
		vdom.Li(
			vdom.Class("item"),
			vdom.OnClick(func(...any) { calls = append(calls, "child") }),
			vdom.RefCell(childRef),
			vdom.Text("Item"),
		),
	)

	renderer := NewRenderer(RendererConfig{HydrationIDs: true})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<li class="wrap item" data-on-click="true" data-hid="h1">Item</li>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}

	if slotRef.Current() != node || childRef.Current() != node {
		t.Error("both handles should point at the rendered node after mount")
	}

	if err := renderer.Dispatch("h1", "click"); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if strings.Join(calls, ",") != "slot,child" {
		t.Errorf("calls = %v, want [slot child]", calls)
	}

	renderer.Unmount()
	if slotRef.IsSet() || childRef.IsSet() {
		t.Error("Unmount should clear both handles")
	}
	if len(renderer.Mounted()) != 0 {
		t.Error("Unmount should forget mounted nodes")
	}
}

func TestDispatchCamelCaseEventKey(t *testing.T) {
	var calls []string
	node := slot.Compose(
		vdom.NewProps(vdom.NewAttr("onClick", func() { calls = append(calls, "slot") })),
		vdom.Handle{},
		vdom.Button(vdom.NewAttr("onClick", func() { calls = append(calls, "button") })),
	)

	renderer := NewRenderer(RendererConfig{HydrationIDs: true})
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `<button data-on-click="true" data-hid="h1"></button>`; html != want {
		t.Errorf("got %q, want %q", html, want)
	}

	for _, event := range []string{"click", "onClick"} {
		if err := renderer.Dispatch("h1", event); err != nil {
			t.Fatalf("Dispatch(%q): %v", event, err)
		}
	}
	if got := strings.Join(calls, ","); got != "slot,button,slot,button" {
		t.Errorf("calls = %s", got)
	}
}

func TestMountOrderChildrenFirst(t *testing.T) {
	var order []string
	record := func(name string) vdom.Handle {
		return vdom.RefFunc(func(n *vdom.VNode) {
			if n == nil {
				order = append(order, "-"+name)
				return
			}
			order = append(order, name)
		})
	}

	tree := vdom.Div(record("outer"), vdom.Span(record("inner")))
	renderer := NewRenderer(RendererConfig{})
	if _, err := renderer.RenderToString(tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	renderer.Unmount()

	want := "inner,outer,-outer,-inner"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
}

func TestDispatchUnknown(t *testing.T) {
	renderer := NewRenderer(RendererConfig{HydrationIDs: true})
	err := renderer.Dispatch("h9", "onclick")
	if !errors.HasCode(err, errors.CodeEventNotFound) {
		t.Errorf("Dispatch error = %v, want %s", err, errors.CodeEventNotFound)
	}
}

func TestReset(t *testing.T) {
	ref := vdom.NewRef()
	renderer := NewRenderer(RendererConfig{HydrationIDs: true})
	renderer.RenderToString(vdom.Button(vdom.RefCell(ref), vdom.OnClick(func(...any) {})))

	renderer.Reset()
	if len(renderer.Handlers()) != 0 || len(renderer.Mounted()) != 0 {
		t.Error("Reset should clear handlers and mounts")
	}
	if !ref.IsSet() {
		t.Error("Reset must not write to handles")
	}

	html, _ := renderer.RenderToString(vdom.Button(vdom.OnClick(func(...any) {})))
	if !strings.Contains(html, `data-hid="h1"`) {
		t.Errorf("HID counter not reset: %q", html)
	}
}
