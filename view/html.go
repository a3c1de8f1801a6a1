package view

import (
	"fmt"
	"sort"
	"strings"
)

var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"meta":  true,
	"link":  true,
}

// writeHTML renders n. Reading the output of mounted components is tracked.
func writeHTML(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindText:
		b.WriteString(escapeHTML(n.Text))

	case KindFragment:
		for _, child := range n.Children {
			writeHTML(b, child)
		}

	case KindComponent:
		if n.inst != nil {
			writeHTML(b, n.inst.out.Read())
		}

	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		writeAttrs(b, n.Props)
		b.WriteByte('>')

		if voidElements[n.Tag] {
			return
		}

		for _, child := range n.Children {
			writeHTML(b, child)
		}

		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

func writeAttrs(b *strings.Builder, props Props) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := props[k].(type) {
		case nil, func():
			// handlers are not part of the markup
		case bool:
			if v {
				b.WriteByte(' ')
				b.WriteString(k)
			}
		default:
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteString(`="`)
			b.WriteString(escapeAttr(fmt.Sprint(v)))
			b.WriteByte('"')
		}
	}
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr is escapeHTML plus the whitespace that could break an attribute.
func escapeAttr(s string) string {
	s = escapeHTML(s)

	return strings.NewReplacer("\n", "&#10;", "\r", "&#13;", "\t", "&#9;").Replace(s)
}
