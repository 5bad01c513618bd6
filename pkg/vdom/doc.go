// Package vdom provides the virtual node model that slots compose.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props is an ordered, immutable bag
// of Attr values. Every Attr carries an AttrKind chosen when it is built
// (pass-through, class name, style, or event), so code that combines bags
// never has to guess from key names or value types.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    Span(Text("Title")),
//	    OnClick(handler),
//	)
//
// # Output Handles
//
// A Handle is where an element reports the node it was mounted as. It is
// either absent, a callback (RefFunc) or a cell (RefCell around a *Ref).
// Handle.Write is the only operation; writing nil is the teardown path.
package vdom
