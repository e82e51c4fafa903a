package tree

import "strings"

// Serialize renders the subtree rooted at id as the XML-like test format:
// an element's Attribute children are listed (in arena
// order) inside its start tag before the closing '>'; its remaining
// children follow as content; Attribute nodes are never emitted as
// standalone elements.
func Serialize(store *Store, id int) string {
	var b strings.Builder
	serializeNode(store, id, &b)
	return b.String()
}

func serializeNode(store *Store, id int, b *strings.Builder) {
	n := store.Node(id)
	switch n.Kind {
	case RootNode:
		for _, c := range n.Children {
			serializeNode(store, c, b)
		}
	case ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Name)
		var content []int
		for _, c := range n.Children {
			cn := store.Node(c)
			if cn.Kind == AttributeNode {
				b.WriteByte(' ')
				b.WriteString(cn.Name)
				b.WriteString(`="`)
				b.WriteString(cn.Value)
				b.WriteByte('"')
			} else {
				content = append(content, c)
			}
		}
		b.WriteByte('>')
		for _, c := range content {
			serializeNode(store, c, b)
		}
		b.WriteString("</")
		b.WriteString(n.Name)
		b.WriteByte('>')
	case AttributeNode:
		// emitted by its parent's start tag; nothing to do here.
	case TextNode:
		b.WriteString(escapeText(n.Value))
	}
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
