// Package errors provides coded, actionable diagnostics for slot composition
// and the vslot tooling.
//
// Each diagnostic has a code (e.g., "E101") that maps to a registered
// template: a category, a short message, a longer explanation, and a
// documentation URL. Composition never fails with an error value; instead
// the slot package logs these diagnostics in development mode. Config and
// fixture loading return them as ordinary errors.
//
// # Usage
//
//	err := errors.New(errors.CodeChildMultiple).
//	    WithSuggestion("Wrap the children in a single element")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Slot received more than one child
//	//
//	//   Hint: Wrap the children in a single element
//	//
//	//   Learn more: https://vango.dev/docs/slot/errors/E102
package errors
