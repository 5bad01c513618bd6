package errors

import "sort"

// Registered codes.
const (
	CodeChildMissing    = "E101"
	CodeChildMultiple   = "E102"
	CodeChildFragment   = "E103"
	CodeChildNotElement = "E104"

	CodeConfigLoad    = "E201"
	CodeConfigInvalid = "E202"

	CodeFixtureRead    = "E301"
	CodeFixtureInvalid = "E302"

	CodeEventNotFound = "E401"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

const docBase = "https://vango.dev/docs/slot/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Composition (E101-E199)
	// ============================================

	CodeChildMissing: {
		Category:   CategoryComposition,
		Message:    "Slot received no child",
		Detail:     "A slot renders its single child element with the slot's attributes merged in. Without a child there is nothing to render, so the slot renders nothing.",
		Suggestion: "Pass exactly one element as the slot's child",
		DocURL:     docBase + CodeChildMissing,
	},
	CodeChildMultiple: {
		Category:   CategoryComposition,
		Message:    "Slot received more than one child",
		Detail:     "A slot merges its attributes into exactly one element. Lists of elements cannot be merged into, so the slot renders nothing.",
		Suggestion: "Wrap the children in a single element",
		DocURL:     docBase + CodeChildMultiple,
	},
	CodeChildFragment: {
		Category:   CategoryComposition,
		Message:    "Slot received a fragment",
		Detail:     "Fragments group elements without producing a node of their own, so there is no element to merge the slot's attributes into.",
		Suggestion: "Replace the fragment with a real element",
		DocURL:     docBase + CodeChildFragment,
	},
	CodeChildNotElement: {
		Category:   CategoryComposition,
		Message:    "Slot child is not an element",
		Detail:     "Text, raw HTML and components that do not render an element cannot carry attributes.",
		Suggestion: "Wrap the content in an element such as Span",
		DocURL:     docBase + CodeChildNotElement,
	},

	// ============================================
	// Configuration (E201-E299)
	// ============================================

	CodeConfigLoad: {
		Category: CategoryConfig,
		Message:  "Failed to load configuration",
		Detail:   "The configuration file could not be read or parsed. Supported formats are JSON (.json) and YAML (.yaml, .yml).",
		DocURL:   docBase + CodeConfigLoad,
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "One or more configuration values are out of range.",
		DocURL:   docBase + CodeConfigInvalid,
	},

	// ============================================
	// Fixtures (E301-E399)
	// ============================================

	CodeFixtureRead: {
		Category: CategoryFixture,
		Message:  "Failed to read fixture",
		Detail:   "The fixture file could not be opened or is not valid YAML/JSON.",
		DocURL:   docBase + CodeFixtureRead,
	},
	CodeFixtureInvalid: {
		Category: CategoryFixture,
		Message:  "Invalid fixture",
		Detail:   "The fixture describes nodes that cannot be built.",
		DocURL:   docBase + CodeFixtureInvalid,
	},

	// ============================================
	// Rendering (E401-E499)
	// ============================================

	CodeEventNotFound: {
		Category: CategoryRender,
		Message:  "No handler registered for event",
		Detail:   "Dispatch looks up handlers collected while rendering. The element either has no such handler or was not rendered with hydration IDs.",
		DocURL:   docBase + CodeEventNotFound,
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
