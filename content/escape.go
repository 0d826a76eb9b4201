package content

import "html"

// escapeText escapes user text for placement inside an HTML element.
func escapeText(s string) string {
	return html.EscapeString(s)
}

// escapeAttr escapes user text for placement inside a quoted HTML
// attribute value. html.EscapeString covers both quote characters.
func escapeAttr(s string) string {
	return html.EscapeString(s)
}
