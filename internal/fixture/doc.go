// Package fixture decodes slot compositions described in YAML (or JSON)
// and builds the vdom inputs for them.
//
//	name: menu item
//	slot:
//	  class: menu-item
//	  events: [click]
//	  ref: item
//	children:
//	  - tag: a
//	    class: active
//	    attrs:
//	      href: /docs
//	    events: [click]
//	    ref: link
//	    text: Docs
//
// Attribute mappings keep their document order. Each ref name becomes one
// vdom.Ref cell shared by every node that names it.
package fixture
