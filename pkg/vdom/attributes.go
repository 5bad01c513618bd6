package vdom

import "fmt"

// attr creates a pass-through Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{key: key, kind: AttrPassThrough, value: value}
}

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr {
	return Attr{key: "class", kind: AttrClassName, value: JoinClasses(classes...)}
}

// Styles sets the style attribute from a property map.
func Styles(style Style) Attr {
	return Attr{key: "style", kind: AttrStyle, value: style.Clone()}
}

// StyleAttr sets the style attribute from inline CSS text.
func StyleAttr(css string) Attr {
	return Styles(ParseStyle(css))
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// TitleAttr sets the title attribute (named to avoid conflict with a Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}
