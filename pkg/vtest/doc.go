// Package vtest provides testing helpers for slot compositions.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectAttribute(t, node, "class", "menu-item active")
//	vtest.ExpectNotContains(t, node, "key=")
//
// # Mounting
//
// Mount renders a node the way a host would: handles are written once the
// element exists, handlers are registered, and everything is torn down
// when the test ends.
//
//	ref := vdom.NewRef()
//	m := vtest.Mount(t, slot.Slot(vdom.RefCell(ref), OnClick(track), Button(Text("Go"))))
//	vtest.ExpectRef(t, ref, m.Node)
//	m.Fire("click")
//	m.Unmount()
//	vtest.ExpectRef(t, ref, nil)
package vtest
