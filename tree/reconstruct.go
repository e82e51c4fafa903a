package tree

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/ixml/earley"
	"github.com/npillmayer/ixml/grammar"
	"github.com/npillmayer/ixml/span"
)

func tracer() tracing.Trace {
	return tracing.Select("ixml.tree")
}

// Finder is the lookup a reconstruction needs from an Earley recognizer:
// the completed item for (name, origin, end), if any — exactly the shape
// of (*earley.Parser).Find, kept as a narrow interface so this package
// only depends on what it uses.
type Finder interface {
	Find(name string, origin, end int) (earley.CompletedItem, bool)
}

// Reconstruct walks finder's completed trace starting at the root
// definition and builds the resulting element tree. rootMark is the root
// definition's own mark, applied as if reached by a Default call site
// (there is no caller above the root).
func Reconstruct(finder Finder, rootName string, rootMark grammar.Mark, inputLen int) *Store {
	store := NewStore()
	walk(finder, rootName, rootMark, 0, inputLen, store.Root(), store)
	applyAttributePostPass(store)
	return store
}

// walk implements the tree-reconstruction algorithm: find the
// completed item for (name, origin, end), create a node for it according
// to its effective mark (or none, if Mute), then recurse over its match
// history, routing each terminal match to a Text node (unless its own
// TMark is Mute) and each nonterminal match to a nested walk.
//
// Termination: each recursive call either consumes a non-empty span
// (origin < end) or, for a zero-length span, resolves to a distinct
// completed item from its caller's — see the self-reference guard below,
// which checks that (n, origin, end) is never identical to the caller's
// own (n, origin, end). Pathological grammars
// whose only derivation of a zero-length span is a bare self-reference
// (e.g. "a: a;.") cannot actually complete in the recognizer (they never
// make scan progress), so in practice this guard is never tripped by a
// successful parse; when it is, it logs an error and skips that match
// instead of recursing forever.
func walk(finder Finder, name string, effMark grammar.Mark, origin, end int, parentID int, store *Store) {
	item, found := finder.Find(name, origin, end)
	if !found {
		return
	}

	mySpan := span.New(origin, end)
	myID := parentID
	switch effMark {
	case grammar.Default, grammar.Unmute:
		myID = store.AppendElement(parentID, name, mySpan)
	case grammar.Attr:
		myID = store.AppendAttribute(parentID, name, mySpan)
	}

	cursor := origin
	for _, m := range item.Matches() {
		switch m.Kind {
		case earley.TermMatch:
			if m.TMark != grammar.TMute {
				store.AppendText(myID, m.Ch, cursor)
			}
			cursor = m.EndPos
		case earley.NonTermMatch:
			if m.Name == name && cursor == origin && m.EndPos == end {
				tracer().Errorf("tree: refusing non-progressing self-reference to %q at (%d,%d)", name, origin, end)
				cursor = m.EndPos
				continue
			}
			walk(finder, m.Name, m.Mark, cursor, m.EndPos, myID, store)
			cursor = m.EndPos
		}
	}
}

// applyAttributePostPass sets every Attribute node's Value to the
// concatenation of its Text descendants' content, escaping '"' as
// "&quot;" so the value can be embedded in a double-quoted attribute
// literal by the serializer.
func applyAttributePostPass(store *Store) {
	for id, n := range store.nodes {
		if n.Kind != AttributeNode {
			continue
		}
		var b strings.Builder
		collectText(store, id, &b)
		store.setValue(id, strings.ReplaceAll(b.String(), `"`, "&quot;"))
	}
}

func collectText(store *Store, id int, b *strings.Builder) {
	for _, cid := range store.nodes[id].Children {
		n := store.nodes[cid]
		if n.Kind == TextNode {
			b.WriteString(n.Value)
		}
		collectText(store, cid, b)
	}
}
