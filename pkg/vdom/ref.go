package vdom

import "sync"

// Ref is a mutable cell that receives the node an element is mounted as.
//
// Ref is safe for concurrent access.
type Ref struct {
	current *VNode
	isSet   bool
	mu      sync.RWMutex
}

// NewRef creates an empty Ref.
//
// Example:
//
//	button := vdom.NewRef()
//	return Button(
//	    vdom.RefCell(button),
//	    Text("Save"),
//	)
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the node the ref points at, or nil.
func (r *Ref) Current() *VNode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Set points the ref at node.
// This is typically called by the renderer when mounting an element.
func (r *Ref) Set(node *VNode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = node
	r.isSet = true
}

// IsSet returns true if the ref has been set and not cleared since.
func (r *Ref) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isSet
}

// Clear resets the ref to nil.
func (r *Ref) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = nil
	r.isSet = false
}

// Handle is an output handle: a place that wants to learn which node an
// element was mounted as. It is one of
//
//   - absent (the zero Handle), where writes do nothing
//   - a callback (RefFunc), invoked with the node
//   - a cell (RefCell), whose current value is assigned
//
// The creator of a Handle owns whatever it points at.
type Handle struct {
	fn   func(*VNode)
	cell *Ref
}

// RefFunc returns a callback handle. A nil fn yields the absent handle.
func RefFunc(fn func(*VNode)) Handle {
	return Handle{fn: fn}
}

// RefCell returns a cell handle. A nil r yields the absent handle.
func RefCell(r *Ref) Handle {
	return Handle{cell: r}
}

// IsZero reports whether h is the absent handle.
func (h Handle) IsZero() bool {
	return h.fn == nil && h.cell == nil
}

// IsCallback reports whether h is a callback handle.
func (h Handle) IsCallback() bool { return h.fn != nil }

// IsCell reports whether h is a cell handle.
func (h Handle) IsCell() bool { return h.cell != nil }

// Write hands node to the handle. A nil node is the teardown write: callbacks
// receive nil and cells are cleared.
func (h Handle) Write(node *VNode) {
	switch {
	case h.fn != nil:
		h.fn(node)
	case h.cell != nil:
		if node == nil {
			h.cell.Clear()
			return
		}
		h.cell.Set(node)
	}
}
