package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/slot/internal/errors"
	"github.com/vango-dev/slot/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// HydrationIDs adds a data-hid attribute to every element that has
	// event handlers and records those handlers for Dispatch.
	HydrationIDs bool
}

// Renderer renders VNode trees to HTML and acts as their host: it writes
// each element's output handle once the element is rendered and clears it
// on Unmount.
//
// Rendering mutates the tree: with HydrationIDs enabled each interactive
// element's HID field is assigned. A tree rendered twice, by one renderer
// or several, keeps the HID from the latest pass, and its handles stay
// written until Unmount.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	config     RendererConfig
	hidCounter uint32
	handlers   map[string]vdom.Handler
	mounted    []*vdom.VNode
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		handlers: make(map[string]vdom.Handler),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var b strings.Builder
	if err := r.RenderToWriter(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// Handlers returns the handler registry collected during rendering.
// The map keys are in the format "hid_eventkey" (e.g., "h1_onclick").
func (r *Renderer) Handlers() map[string]vdom.Handler {
	return r.handlers
}

// Mounted returns the elements whose handles were written, in mount order.
func (r *Renderer) Mounted() []*vdom.VNode {
	return r.mounted
}

// Dispatch invokes the handler registered for event on the element with
// the given hydration ID. event may be given with or without the "on"
// prefix.
func (r *Renderer) Dispatch(hid, event string, args ...any) error {
	key := hid + "_on" + vdom.EventName(event)
	h, ok := r.handlers[key]
	if !ok {
		return errors.New(errors.CodeEventNotFound).
			WithDetail(fmt.Sprintf("no handler %q was registered while rendering", key))
	}
	h(args...)
	return nil
}

// Unmount tears down everything mounted since the last Reset: each
// element's handle receives nil, children before parents.
func (r *Renderer) Unmount() {
	for i := len(r.mounted) - 1; i >= 0; i-- {
		r.mounted[i].Ref.Write(nil)
	}
	r.mounted = nil
}

// Reset resets the renderer state for reuse.
// This clears the HID counter, handler registry and mount list without
// writing to any handle.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]vdom.Handler)
	r.mounted = nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render(), depth)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children,
// then writes its handle.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if r.config.HydrationIDs && node.IsInteractive() {
		r.hidCounter++
		node.HID = fmt.Sprintf("h%d", r.hidCounter)
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, node.HID); err != nil {
			return err
		}
		r.registerHandlers(node)
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if !vdom.IsVoidElement(tag) {
		hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			io.WriteString(w, "\n")
		}

		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}

		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
		if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
			return err
		}
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}

	r.mount(node)
	return nil
}

func (r *Renderer) mount(node *vdom.VNode) {
	if node.Ref.IsZero() {
		return
	}
	r.mounted = append(r.mounted, node)
	node.Ref.Write(node)
}

// renderAttributes renders the element's attributes in bag order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	var events []string
	var err error

	node.Props.Each(func(a vdom.Attr) {
		if err != nil {
			return
		}
		key := a.Key()

		switch a.Kind() {
		case vdom.AttrEvent:
			// Registered, not rendered; a marker is emitted below.
			events = append(events, vdom.EventName(key))
			return
		case vdom.AttrClassName:
			err = writeAttr(w, key, a.ClassName())
			return
		case vdom.AttrStyle:
			err = writeAttr(w, key, a.Style().String())
			return
		}

		// Key and internal props are never rendered.
		if key == "key" || strings.HasPrefix(key, "_") {
			return
		}

		if isBooleanAttr(key) {
			if on, ok := a.Value().(bool); ok {
				if on {
					_, err = fmt.Fprintf(w, " %s", key)
				}
				return
			}
		}

		err = writeAttr(w, key, attrToString(a.Value()))
	})
	if err != nil {
		return err
	}

	for _, name := range events {
		if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, name); err != nil {
			return err
		}
	}
	return nil
}

// writeAttr writes key="value", skipping empty values.
func writeAttr(w io.Writer, key, value string) error {
	if value == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value))
	return err
}

// registerHandlers stores handler references for the node's HID.
func (r *Renderer) registerHandlers(node *vdom.VNode) {
	node.Props.Each(func(a vdom.Attr) {
		if h := a.Handler(); h != nil {
			r.handlers[node.HID+"_"+a.Key()] = h
		}
	})
}

// attrToString converts a pass-through attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}
