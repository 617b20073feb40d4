package htmltag

import (
	"fmt"
	"strings"
)

// Attr is one attribute of a DOM element. A Value of boolean true renders
// the attribute bare ("checked"), any other value is rendered quoted with
// embedded double quotes backslash-escaped. No further escaping is done:
// untrusted input must be sanitized by the caller.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute list; attributes render in slice order.
type Attrs []Attr

// A is shorthand for constructing a single attribute.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

func (attrs Attrs) render() string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Value == true {
			parts = append(parts, attr.Key)
			continue
		}
		v := strings.ReplaceAll(fmt.Sprint(attr.Value), `"`, `\"`)
		parts = append(parts, fmt.Sprintf(`%s="%s"`, attr.Key, v))
	}
	return strings.Join(parts, " ")
}

// Tag builds an HTML element with the given content:
//
//	Tag("div", "Hello, world.", nil)
//	// <div>Hello, world.</div>
//
//	Tag("script", "", htmltag.Attrs{htmltag.A("src", "/static/js/core.js")})
//	// <script src="/static/js/core.js"></script>
func Tag(name, content string, attrs Attrs) string {
	open := name
	if s := attrs.render(); s != "" {
		open += " " + s
	}
	return fmt.Sprintf("<%s>%s</%s>", open, content, name)
}

// SelfClosingTag builds a void element such as <meta /> or <img />.
func SelfClosingTag(name string, attrs Attrs) string {
	open := name
	if s := attrs.render(); s != "" {
		open += " " + s
	}
	return fmt.Sprintf("<%s />", open)
}
