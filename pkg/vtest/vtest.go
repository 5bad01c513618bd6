package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/slot/pkg/render"
	"github.com/vango-dev/slot/pkg/vdom"
)

// Mounted is a node rendered by a hydrating renderer. Its handles have been
// written and its handlers can be fired.
type Mounted struct {
	t        *testing.T
	Node     *vdom.VNode
	HTML     string
	Renderer *render.Renderer
}

// Mount renders node with hydration IDs enabled, failing the test if
// rendering fails. The node's handles are torn down when the test ends
// unless Unmount was already called.
func Mount(t *testing.T, node *vdom.VNode) *Mounted {
	t.Helper()
	r := render.NewRenderer(render.RendererConfig{HydrationIDs: true})
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	t.Cleanup(r.Unmount)
	return &Mounted{t: t, Node: node, HTML: html, Renderer: r}
}

// RenderToString renders node without hydration IDs and unmounts it again,
// so every handle it wrote is cleared before returning. A render error is
// returned as the output.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	r.Unmount()
	if err != nil {
		return "render error: " + err.Error()
	}
	return html
}

// Fire dispatches event on the mounted root element.
//
//	m := vtest.Mount(t, slot.Slot(OnClick(track), Button(Text("Go"))))
//	m.Fire("click")
func (m *Mounted) Fire(event string, args ...any) {
	m.t.Helper()
	if m.Node == nil || m.Node.HID == "" {
		m.t.Fatalf("cannot fire %q: root element has no handlers", event)
	}
	if err := m.Renderer.Dispatch(m.Node.HID, event, args...); err != nil {
		m.t.Fatalf("fire %q: %v", event, err)
	}
}

// Unmount tears the node down, writing nil to every handle.
func (m *Mounted) Unmount() {
	m.Renderer.Unmount()
}

// ExpectContains asserts that rendered output contains substring.
//
// Example:
//
//	vtest.ExpectContains(t, node, "Welcome")
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, node, "class", "menu-item active")
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectRef asserts that ref currently holds want.
func ExpectRef(t *testing.T, ref *vdom.Ref, want *vdom.VNode) {
	t.Helper()
	if got := ref.Current(); got != want {
		t.Errorf("ref holds %v, want %v", describe(got), describe(want))
	}
}

func describe(n *vdom.VNode) string {
	if n == nil {
		return "nothing"
	}
	if n.Tag != "" {
		return "<" + n.Tag + ">"
	}
	return n.Kind.String()
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
