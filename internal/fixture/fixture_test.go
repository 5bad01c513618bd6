package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/slot/internal/errors"
	"github.com/vango-dev/slot/pkg/vdom"
)

const menuItem = `
name: menu item
slot:
  class: menu-item
  style:
    color: red
  attrs:
    role: menuitem
    aria-label: Docs
  events: [click]
  ref: item
children:
  - tag: a
    class: active
    attrs:
      href: /docs
      id: docs
    events: [onClick]
    ref: link
    text: Docs
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(menuItem))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if f.Name != "menu item" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Slot.Class != "menu-item" || f.Slot.Ref != "item" {
		t.Errorf("Slot = %+v", f.Slot)
	}

	want := AttrList{{Key: "role", Value: "menuitem"}, {Key: "aria-label", Value: "Docs"}}
	if diff := cmp.Diff(want, f.Slot.Attrs); diff != "" {
		t.Errorf("Slot.Attrs mismatch (-want +got):\n%s", diff)
	}

	if len(f.Children) != 1 || f.Children[0].Tag != "a" {
		t.Fatalf("Children = %+v", f.Children)
	}
	keys := []string{}
	for _, kv := range f.Children[0].Attrs {
		keys = append(keys, kv.Key)
	}
	if diff := cmp.Diff([]string{"href", "id"}, keys); diff != "" {
		t.Errorf("attrs should keep document order (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	f, err := Parse([]byte(`{"slot": {"class": "x"}, "children": [{"tag": "span", "text": "hi"}]}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if f.Slot.Class != "x" || f.Children[0].Text != "hi" {
		t.Errorf("fixture = %+v", f)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
		want  []string
	}{
		{
			name:  "malformed yaml",
			input: "slot: [",
			code:  errors.CodeFixtureRead,
		},
		{
			name:  "attrs not a mapping",
			input: "slot:\n  attrs: [a, b]\n",
			code:  errors.CodeFixtureRead,
		},
		{
			name:  "slot with tag",
			input: "slot:\n  tag: div\n",
			code:  errors.CodeFixtureInvalid,
			want:  []string{"slot: only"},
		},
		{
			name: "several problems",
			input: `
children:
  - tag: img
    text: nope
  - text: ""
  - tag: "#text"
    children:
      - text: x
  - tag: div
    events: [""]
`,
			code: errors.CodeFixtureInvalid,
			want: []string{
				"children[0]: <img> cannot have content",
				"children[1]: node needs a tag or text",
				"children[2]: text nodes cannot have children",
				"children[3].events[0]: empty event name",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.HasCode(err, tt.code) {
				t.Fatalf("Parse() error = %v, want code %s", err, tt.code)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error missing %q: %v", w, err)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "item.yaml")
	if err := os.WriteFile(path, []byte(menuItem), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Name != "menu item" {
		t.Errorf("Name = %q", f.Name)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.HasCode(err, errors.CodeFixtureRead) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.CodeFixtureRead)
	}
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(menuItem))
	if err != nil {
		t.Fatal(err)
	}

	type fired struct{ owner, event string }
	var got []fired
	b := Build(f, func(owner, event string, args ...any) {
		got = append(got, fired{owner, event})
	})

	if diff := cmp.Diff([]string{"class", "style", "role", "aria-label", "onclick"}, b.Props.Keys()); diff != "" {
		t.Errorf("slot props mismatch (-want +got):\n%s", diff)
	}
	if !b.Ref.IsCell() {
		t.Error("slot ref should be a cell handle")
	}
	if diff := cmp.Diff([]string{"item", "link"}, b.RefOrder); diff != "" {
		t.Errorf("RefOrder mismatch (-want +got):\n%s", diff)
	}

	child, ok := b.Child().(*vdom.VNode)
	if !ok {
		t.Fatalf("Child() = %T, want *vdom.VNode", b.Child())
	}
	if child.Tag != "a" || child.Props.ClassName() != "active" || child.Props.Value("href") != "/docs" {
		t.Errorf("child = %+v", child)
	}
	if len(child.Children) != 1 || child.Children[0].Text != "Docs" {
		t.Errorf("child text = %+v", child.Children)
	}
	if !child.Ref.IsCell() {
		t.Error("child ref should be a cell handle")
	}

	b.Props.Handler("onclick")()
	child.Props.Handler("onclick")("evt")

	want := []fired{{"item", "click"}, {"link", "click"}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fired{})); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSharedRefs(t *testing.T) {
	f, err := Parse([]byte(`
slot:
  ref: same
children:
  - tag: span
    ref: same
`))
	if err != nil {
		t.Fatal(err)
	}
	b := Build(f, nil)

	if len(b.Refs) != 1 {
		t.Fatalf("Refs = %v, want one shared cell", b.Refs)
	}
	child := b.Child().(*vdom.VNode)
	child.Ref.Write(child)
	if b.Refs["same"].Current() != child {
		t.Error("slot and child should share the named cell")
	}
}

func TestBuildChildShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, child any)
	}{
		{
			name:  "none",
			input: "slot: {}\n",
			check: func(t *testing.T, child any) {
				if child != nil {
					t.Errorf("Child() = %v, want nil", child)
				}
			},
		},
		{
			name:  "several",
			input: "children:\n  - tag: b\n  - tag: i\n",
			check: func(t *testing.T, child any) {
				nodes, ok := child.([]*vdom.VNode)
				if !ok || len(nodes) != 2 {
					t.Errorf("Child() = %#v, want two nodes", child)
				}
			},
		},
		{
			name:  "fragment",
			input: "children:\n  - tag: \"#fragment\"\n    children:\n      - tag: b\n",
			check: func(t *testing.T, child any) {
				n := child.(*vdom.VNode)
				if n.Kind != vdom.KindFragment || len(n.Children) != 1 {
					t.Errorf("Child() = %+v, want fragment with one child", n)
				}
			},
		},
		{
			name:  "text",
			input: "children:\n  - text: hello\n",
			check: func(t *testing.T, child any) {
				n := child.(*vdom.VNode)
				if n.Kind != vdom.KindText || n.Text != "hello" {
					t.Errorf("Child() = %+v, want text node", n)
				}
			},
		},
		{
			name:  "raw",
			input: "children:\n  - tag: \"#raw\"\n    text: <b>x</b>\n",
			check: func(t *testing.T, child any) {
				n := child.(*vdom.VNode)
				if n.Kind != vdom.KindRaw {
					t.Errorf("Child() = %+v, want raw node", n)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			tt.check(t, Build(f, nil).Child())
		})
	}
}
