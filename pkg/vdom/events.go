package vdom

import "strings"

// On creates an event attribute. "click", "onclick" and "onClick" all
// become "onclick".
func On(name string, handler Handler) Attr {
	if handler == nil {
		return Attr{}
	}
	return Attr{key: EventKey(name), kind: AttrEvent, value: handler}
}

// EventKey returns the attribute key for an event name: "on" followed by
// the lowercased name.
func EventKey(name string) string {
	return "on" + EventName(name)
}

// OnClick handles click events.
func OnClick(handler Handler) Attr { return On("click", handler) }

// EventName strips the "on" prefix from an event attribute key
// ("onclick" → "click").
func EventName(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, "on"))
}
