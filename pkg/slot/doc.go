// Package slot renders a single child element with a wrapper's attributes
// merged into it, without adding a wrapper element to the tree.
//
// A slot is useful when a component wants to decorate whatever element its
// caller supplies: a menu item that adds classes and a click tracker to a
// link, a tooltip trigger that adds aria attributes to a button.
//
//	link := slot.Slot(
//	    vdom.Class("menu-item"),
//	    vdom.OnClick(track),
//	    vdom.RefCell(itemRef),
//	    vdom.A(vdom.Href("/docs"), vdom.Class("active"), vdom.Text("Docs")),
//	)
//	// <a class="menu-item active" href="/docs">Docs</a>
//
// # Merging
//
// Merge gives the child's attributes precedence, with three exceptions
// when both sides define the same attribute: class lists are concatenated
// (slot first), style maps are overlaid (child wins per property), and
// event handlers are chained (slot's handler runs first).
//
// # Handles
//
// Combine fans one write out to the slot's handle and the child's handle,
// in that order. Composition always keeps both.
//
// # Invalid children
//
// A slot needs exactly one element child. A missing child, a fragment, a
// list, or a text node renders nothing. With WithDevMode(true) the
// Composer logs a coded warning; in production mode the rejection is
// silent. Observers see every pass regardless of mode.
package slot
