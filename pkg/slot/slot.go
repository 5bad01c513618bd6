package slot

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/slot/internal/errors"
	"github.com/vango-dev/slot/pkg/vdom"
)

// warnMessage is logged in development mode when a child is rejected.
const warnMessage = "slot expects exactly one element child and does not accept fragments or multiple children"

// Composer runs composition passes. It holds configuration only, so one
// Composer can serve any number of passes.
type Composer struct {
	devMode  bool
	logger   *slog.Logger
	observer Observer
}

// New creates a Composer. Without options it runs in production mode:
// rejected children render nothing and nothing is logged.
func New(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DevMode reports whether development diagnostics are enabled.
func (c *Composer) DevMode() bool { return c.devMode }

// Compose renders child with the slot's props merged into its own and
// with ref combined with the child's handle.
//
// child must be a single element: a *vdom.VNode of kind Element, or a
// vdom.Component (or component node) whose output is one. Anything else
// (nil, a []*vdom.VNode, a fragment, text, raw HTML) renders nothing and
// Compose returns nil. It never panics on bad input.
func (c *Composer) Compose(props vdom.Props, ref vdom.Handle, child any) *vdom.VNode {
	el, reason := resolveChild(child)
	if reason != ReasonNone {
		return c.reject(reason, child)
	}

	merged := Merge(props, el.Props)
	key := el.Key
	if key == "" {
		if s, ok := merged.Value("key").(string); ok {
			key = s
		}
	}

	out := &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      el.Tag,
		Props:    merged,
		Children: el.Children,
		Key:      key,
		Ref:      Combine(ref, el.Ref),
	}
	c.observe(Outcome{Tag: out.Tag, Attrs: merged.Len()})
	return out
}

// Slot is the element-factory form of Compose:
//
//	slot.Slot(Class("menu-item"), OnClick(track),
//	    A(Href("/docs"), Text("Docs")),
//	)
//
// Attr, []Attr and Props arguments build the slot's props (later keys win).
// Handle arguments are combined in order into the slot's handle. Every
// other non-nil argument counts as a child; exactly one is allowed. A
// []*vdom.VNode is one child and is rejected like any list.
func (c *Composer) Slot(args ...any) *vdom.VNode {
	props := vdom.NewPropsBuilder(len(args))
	var ref vdom.Handle
	var children []any

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case vdom.Attr:
			props.Set(v)
		case []vdom.Attr:
			for _, a := range v {
				props.Set(a)
			}
		case vdom.Props:
			v.Each(props.Set)
		case vdom.Handle:
			if v.IsZero() {
				continue
			}
			if ref.IsZero() {
				ref = v
			} else {
				ref = Combine(ref, v)
			}
		case *vdom.VNode:
			if v != nil {
				children = append(children, v)
			}
		default:
			children = append(children, v)
		}
	}

	switch len(children) {
	case 0:
		return c.Compose(props.Props(), ref, nil)
	case 1:
		return c.Compose(props.Props(), ref, children[0])
	default:
		return c.reject(ReasonMultiple, children)
	}
}

func (c *Composer) reject(reason Reason, child any) *vdom.VNode {
	c.observe(Outcome{Reason: reason})
	if c.devMode {
		diag := errors.New(reason.Code())
		c.log().Warn(warnMessage,
			"code", diag.Code,
			"reason", reason.String(),
			"child", describe(child),
			"hint", diag.Suggestion,
		)
	}
	return nil
}

func (c *Composer) observe(o Outcome) {
	if c.observer != nil {
		c.observer.ObserveComposition(o)
	}
}

func (c *Composer) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// resolveChild returns the element to compose onto, or the reason there
// is none.
func resolveChild(child any) (*vdom.VNode, Reason) {
	switch v := child.(type) {
	case nil:
		return nil, ReasonMissing
	case *vdom.VNode:
		return resolveNode(v)
	case []*vdom.VNode:
		if len(v) == 0 {
			return nil, ReasonMissing
		}
		return nil, ReasonMultiple
	case []any:
		if len(v) == 0 {
			return nil, ReasonMissing
		}
		return nil, ReasonMultiple
	case vdom.Component:
		return resolveNode(&vdom.VNode{Kind: vdom.KindComponent, Comp: v})
	default:
		return nil, ReasonNotElement
	}
}

func resolveNode(n *vdom.VNode) (*vdom.VNode, Reason) {
	if n == nil {
		return nil, ReasonMissing
	}
	switch n.Kind {
	case vdom.KindElement:
		return n, ReasonNone
	case vdom.KindFragment:
		return nil, ReasonFragment
	case vdom.KindComponent:
		if n.Comp == nil {
			return nil, ReasonMissing
		}
		return resolveNode(n.Comp.Render())
	default:
		return nil, ReasonNotElement
	}
}

func describe(child any) string {
	switch v := child.(type) {
	case nil:
		return "nil"
	case *vdom.VNode:
		if v == nil {
			return "nil"
		}
		if v.Tag != "" {
			return fmt.Sprintf("%s <%s>", v.Kind, v.Tag)
		}
		return v.Kind.String()
	case []*vdom.VNode:
		return fmt.Sprintf("%d nodes", len(v))
	case []any:
		return fmt.Sprintf("%d children", len(v))
	default:
		return fmt.Sprintf("%T", v)
	}
}

var std = New()

// Compose composes child with the package's production-mode Composer.
func Compose(props vdom.Props, ref vdom.Handle, child any) *vdom.VNode {
	return std.Compose(props, ref, child)
}

// Slot builds a slot with the package's production-mode Composer.
func Slot(args ...any) *vdom.VNode {
	return std.Slot(args...)
}
