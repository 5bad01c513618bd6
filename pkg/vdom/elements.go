package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element with the given tag.
// Arguments can be: nil, Attr, []Attr, Props, Handle, *VNode, []*VNode,
// Component, string.
func El(tag string, args ...any) *VNode {
	return createElement(tag, args)
}

// createElement creates a new VNode with the given tag and arguments.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Children: make([]*VNode, 0),
	}
	props := NewPropsBuilder(len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.key == "key" {
				if s, ok := v.value.(string); ok {
					node.Key = s
				}
			}
			props.Set(v)

		case []Attr:
			for _, a := range v {
				if a.key == "key" {
					if s, ok := a.value.(string); ok {
						node.Key = s
					}
				}
				props.Set(a)
			}

		case Props:
			v.Each(props.Set)

		case Handle:
			// Last handle wins, as with any other attribute
			if !v.IsZero() {
				node.Ref = v
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))
		}
	}

	node.Props = props.Props()
	return node
}

// Div creates a <div> element.
func Div(args ...any) *VNode { return createElement("div", args) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return createElement("span", args) }

// P creates a <p> element.
func P(args ...any) *VNode { return createElement("p", args) }

// A creates an <a> element.
func A(args ...any) *VNode { return createElement("a", args) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return createElement("button", args) }

// Img creates an <img> element.
func Img(args ...any) *VNode { return createElement("img", args) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return createElement("ul", args) }

// Li creates an <li> element.
func Li(args ...any) *VNode { return createElement("li", args) }
