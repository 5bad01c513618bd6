package slot

import "github.com/vango-dev/slot/pkg/vdom"

// Combine returns a callback handle that writes each node to a and then
// to b. Either may be absent. A nil node (teardown) reaches both the same
// way, so cells are cleared and callbacks receive nil.
//
// The slot passes its own handle as a and the child's as b; neither is
// ever dropped.
func Combine(a, b vdom.Handle) vdom.Handle {
	return vdom.RefFunc(func(node *vdom.VNode) {
		a.Write(node)
		b.Write(node)
	})
}
