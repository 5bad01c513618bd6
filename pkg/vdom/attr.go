package vdom

import (
	"fmt"
	"sort"
	"strings"
)

// AttrKind tells the merger how an attribute combines with another
// attribute of the same key. It is fixed when the Attr is built.
type AttrKind uint8

const (
	AttrPassThrough AttrKind = iota // Plain value; the later bag wins
	AttrClassName                   // Space separated class list under "class"
	AttrStyle                       // Style map under "style"
	AttrEvent                       // Event handler under "on<event>"
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrPassThrough:
		return "PassThrough"
	case AttrClassName:
		return "ClassName"
	case AttrStyle:
		return "Style"
	case AttrEvent:
		return "Event"
	default:
		return "Unknown"
	}
}

// Handler is an event callback. The arguments are whatever the event
// source passes; nothing is returned.
type Handler func(args ...any)

// Style maps CSS property names to values.
type Style map[string]string

// Clone returns a shallow copy of s. A nil Style clones to nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// String renders the style as CSS declarations sorted by property name.
// Properties with an empty value are left out.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if s[k] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}

// ParseStyle parses inline CSS text ("color: red; margin: 0") into a Style.
// Declarations without a colon are ignored.
func ParseStyle(css string) Style {
	out := make(Style)
	for _, decl := range strings.Split(css, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out[name] = strings.TrimSpace(value)
	}
	return out
}

// Attr is a single attribute with its merge kind.
// Build one with NewAttr or the typed constructors (Class, Styles, On...).
type Attr struct {
	key   string
	kind  AttrKind
	value any
}

// Key returns the attribute name.
func (a Attr) Key() string { return a.key }

// Kind returns the merge kind chosen at construction.
func (a Attr) Kind() AttrKind { return a.kind }

// Value returns the raw value: a string for AttrClassName, a Style for
// AttrStyle, a Handler for AttrEvent.
func (a Attr) Value() any { return a.value }

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.key == ""
}

// ClassName returns the class list, or "" if a is not a class attribute.
func (a Attr) ClassName() string {
	if a.kind != AttrClassName {
		return ""
	}
	s, _ := a.value.(string)
	return s
}

// Style returns the style map, or nil if a is not a style attribute.
func (a Attr) Style() Style {
	if a.kind != AttrStyle {
		return nil
	}
	s, _ := a.value.(Style)
	return s
}

// Handler returns the event handler, or nil if a is not an event attribute.
func (a Attr) Handler() Handler {
	if a.kind != AttrEvent {
		return nil
	}
	h, _ := a.value.(Handler)
	return h
}

// NewAttr builds an attribute and resolves its kind from the key and value:
//
//   - "class" and "className" become AttrClassName under "class"
//   - "style" becomes AttrStyle (Style, map[string]string or CSS text)
//   - "on*" keys holding a function become AttrEvent under the lowercased
//     key ("onClick" → "onclick")
//   - everything else is AttrPassThrough
func NewAttr(key string, value any) Attr {
	switch {
	case key == "":
		return Attr{}
	case key == "class" || key == "className":
		return Class(classString(value))
	case key == "style":
		if s, ok := toStyle(value); ok {
			return Styles(s)
		}
	case strings.HasPrefix(key, "on"):
		if h, ok := toHandler(value); ok {
			return On(key, h)
		}
	}
	return Attr{key: key, kind: AttrPassThrough, value: value}
}

func classString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return JoinClasses(v...)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toStyle(value any) (Style, bool) {
	switch v := value.(type) {
	case Style:
		return v.Clone(), true
	case map[string]string:
		return Style(v).Clone(), true
	case map[string]any:
		out := make(Style, len(v))
		for k, val := range v {
			out[k] = fmt.Sprintf("%v", val)
		}
		return out, true
	case string:
		return ParseStyle(v), true
	default:
		return nil, false
	}
}

func toHandler(value any) (Handler, bool) {
	switch fn := value.(type) {
	case Handler:
		return fn, fn != nil
	case func(...any):
		return Handler(fn), fn != nil
	case func(any):
		if fn == nil {
			return nil, false
		}
		return func(args ...any) {
			var first any
			if len(args) > 0 {
				first = args[0]
			}
			fn(first)
		}, true
	case func():
		if fn == nil {
			return nil, false
		}
		return func(...any) { fn() }, true
	default:
		return nil, false
	}
}

// JoinClasses joins class lists with a single space, skipping empty ones.
// Repeated class names are kept.
func JoinClasses(classes ...string) string {
	var b strings.Builder
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	return b.String()
}
