// Package render renders VNode trees to HTML and hosts their output
// handles.
//
// Besides writing markup, the renderer plays the part of the mounting host:
// after an element (and everything inside it) is rendered, the element's
// Handle receives the node. Unmount writes nil to the same handles in
// reverse order. This is what makes a slot's combined handle observable
// end to end.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{HydrationIDs: true})
//	html, err := renderer.RenderToString(node)
//
//	// Fire the click handlers of the first interactive element.
//	err = renderer.Dispatch("h1", "click")
//
//	renderer.Unmount()
package render
