package slot

import (
	"github.com/imdario/mergo"

	"github.com/vango-dev/slot/pkg/vdom"
)

// Merge combines the slot's attributes (outer) with the child's own
// attributes (inner) into a new bag. Neither input is modified.
//
// On a key collision the child wins, except when both sides carry the
// same attribute kind:
//
//   - class: outer's classes followed by inner's, empty sides skipped
//   - style: outer's properties overlaid by inner's
//   - event: a handler that calls outer then inner with the same arguments
//
// A key present on one side only passes through untouched. The result
// lists outer's keys first, then keys only the child has.
func Merge(outer, inner vdom.Props) vdom.Props {
	b := vdom.NewPropsBuilder(outer.Len() + inner.Len())

	outer.Each(b.Set)
	inner.Each(func(a vdom.Attr) {
		prev, ok := outer.Get(a.Key())
		if !ok || prev.Kind() != a.Kind() {
			b.Set(a)
			return
		}
		switch a.Kind() {
		case vdom.AttrClassName:
			b.Set(vdom.Class(prev.ClassName(), a.ClassName()))
		case vdom.AttrStyle:
			b.Set(vdom.Styles(mergeStyles(prev.Style(), a.Style())))
		case vdom.AttrEvent:
			b.Set(vdom.On(a.Key(), chain(prev.Handler(), a.Handler())))
		default:
			b.Set(a)
		}
	})

	return b.Props()
}

// mergeStyles returns outer overlaid by inner. An inner property set to ""
// still replaces outer's value.
func mergeStyles(outer, inner vdom.Style) vdom.Style {
	merged := outer.Clone()
	if merged == nil {
		merged = make(vdom.Style, len(inner))
	}
	if len(inner) == 0 {
		return merged
	}
	// mergo only fails on mismatched or non-pointer arguments.
	_ = mergo.Merge(&merged, inner, mergo.WithOverride)
	return merged
}

// chain returns a handler that calls first then second with the same
// arguments. Both are always called.
func chain(first, second vdom.Handler) vdom.Handler {
	return func(args ...any) {
		first(args...)
		second(args...)
	}
}
