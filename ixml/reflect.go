package ixml

import (
	"strings"

	"github.com/npillmayer/ixml/grammar"
	"github.com/npillmayer/ixml/internal/unicat"
	"github.com/npillmayer/ixml/ixerr"
	"github.com/npillmayer/ixml/tree"
)

// Reflect walks a tree built by package tree from a recognition against
// BootstrapGrammar() and emits the Grammar it describes.
func Reflect(store *tree.Store) (*grammar.Grammar, error) {
	g := grammar.New()
	root := store.Node(store.Root())
	for _, rid := range root.Children {
		rn := store.Node(rid)
		if rn.Kind != tree.ElementNode || rn.Name != "rule" {
			continue
		}
		if err := reflectRule(g, store, rid); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// reflectRule handles one <rule name=... mark=...> element, sharing a
// single RuleContext across every <alt> child so synthesized names (from
// option/repeat0/repeat1 inside any alternative) are minted from one
// counter.
func reflectRule(g *grammar.Grammar, store *tree.Store, ruleID int) error {
	n := store.Node(ruleID)
	name := attrValue(store, n, "name")
	if name == "" {
		return ixerr.NewStatic("rule element has no name attribute")
	}
	mark := markFromString(attrValue(store, n, "mark"))

	var altIDs []int
	for _, cid := range n.Children {
		if store.Node(cid).Kind == tree.ElementNode && store.Node(cid).Name == "alt" {
			altIDs = append(altIDs, cid)
		}
	}
	if len(altIDs) == 0 {
		return ixerr.NewStatic("rule %q has no alternatives", name)
	}

	ctx := grammar.NewRuleContext(name)
	for _, aid := range altIDs {
		var reflectErr error
		g.MarkDefineWithContext(ctx, mark, name, func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
			return reflectAltInto(sb, store, aid, &reflectErr)
		})
		if reflectErr != nil {
			return reflectErr
		}
	}
	return nil
}

func reflectAltInto(sb *grammar.SeqBuilder, store *tree.Store, altID int, errp *error) *grammar.SeqBuilder {
	n := store.Node(altID)
	for _, tid := range n.Children {
		if *errp != nil {
			return sb
		}
		sb = reflectTermInto(sb, store, tid, errp)
	}
	return sb
}

// reflectTermInto dispatches on a factor-shaped element's tag name and
// appends the corresponding Factor(s) to sb.
func reflectTermInto(sb *grammar.SeqBuilder, store *tree.Store, id int, errp *error) *grammar.SeqBuilder {
	n := store.Node(id)
	switch n.Name {
	case "nonterminal":
		name := attrValue(store, n, "name")
		m := markFromString(attrValue(store, n, "mark"))
		return sb.MarkNt(m, name)

	case "literal":
		s := attrValue(store, n, "string")
		tm := tmarkFromString(attrValue(store, n, "tmark"))
		if s == "" {
			*errp = ixerr.NewStatic("literal has empty string content")
			return sb
		}
		return sb.MarkCh(tm, []rune(s)[0])

	case "charset":
		raw := attrValue(store, n, "setspec")
		tm := tmarkFromString(attrValue(store, n, "tmark"))
		excl := hasAttr(store, n, "exclude")
		return sb.MarkLit(tm, func(l *grammar.LitBuilder) *grammar.LitBuilder {
			if err := parseCharsetSpecInto(l, raw); err != nil {
				*errp = err
			}
			if excl {
				l = l.Exclude()
			}
			return l
		})

	case "option":
		opChildren, _, _ := splitOperand(store, elementChildren(store, n))
		f := buildOperand(store, opChildren, errp)
		return sb.Opt(f)

	case "repeat0":
		opChildren, sepChildren, hasSep := splitOperand(store, elementChildren(store, n))
		f := buildOperand(store, opChildren, errp)
		if hasSep {
			return sb.Repeat0Sep(f, buildOperand(store, sepChildren, errp))
		}
		return sb.Repeat0(f)

	case "repeat1":
		opChildren, sepChildren, hasSep := splitOperand(store, elementChildren(store, n))
		f := buildOperand(store, opChildren, errp)
		if hasSep {
			return sb.Repeat1Sep(f, buildOperand(store, sepChildren, errp))
		}
		return sb.Repeat1(f)

	case "insertion":
		// Parsed, never interpreted: no defined semantic effect in the core.
		return sb

	default:
		*errp = ixerr.NewStatic("unrecognized factor node %q", n.Name)
		return sb
	}
}

// buildOperand turns the element children of an operand position (either
// one primary element, or one-or-more <alt> elements from a parenthesized
// group) into a build function suitable for Opt/Repeat0/Repeat1/…Sep.
func buildOperand(store *tree.Store, children []int, errp *error) func(*grammar.SeqBuilder) *grammar.SeqBuilder {
	if len(children) == 0 {
		*errp = ixerr.NewStatic("operand has no content")
		return func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c }
	}
	if store.Node(children[0]).Name == "alt" {
		ids := append([]int(nil), children...)
		if len(ids) == 1 {
			aid := ids[0]
			return func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return reflectAltInto(c, store, aid, errp) }
		}
		return func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			fs := make([]func(*grammar.SeqBuilder) *grammar.SeqBuilder, len(ids))
			for i, aid := range ids {
				aid := aid
				fs[i] = func(cc *grammar.SeqBuilder) *grammar.SeqBuilder { return reflectAltInto(cc, store, aid, errp) }
			}
			return c.Alts(fs...)
		}
	}
	pid := children[0]
	return func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return reflectTermInto(c, store, pid, errp) }
}

// splitOperand separates a repeat0/repeat1/option element's children into
// the operand part and, if its last child is a <sep> element, the
// separator's own operand children.
func splitOperand(store *tree.Store, children []int) (operand, sepOperand []int, hasSep bool) {
	if len(children) == 0 {
		return nil, nil, false
	}
	last := children[len(children)-1]
	if store.Node(last).Name == "sep" {
		sepOperand = elementChildren(store, store.Node(last))
		return children[:len(children)-1], sepOperand, true
	}
	return children, nil, false
}

func elementChildren(store *tree.Store, n tree.Node) []int {
	var out []int
	for _, cid := range n.Children {
		if store.Node(cid).Kind == tree.ElementNode {
			out = append(out, cid)
		}
	}
	return out
}

// attrValue returns the named attribute's value with the post-pass's
// "&quot;" escaping undone, so callers see the characters actually matched.
func attrValue(store *tree.Store, n tree.Node, name string) string {
	for _, cid := range n.Children {
		cn := store.Node(cid)
		if cn.Kind == tree.AttributeNode && cn.Name == name {
			return strings.ReplaceAll(cn.Value, "&quot;", `"`)
		}
	}
	return ""
}

func hasAttr(store *tree.Store, n tree.Node, name string) bool {
	for _, cid := range n.Children {
		if store.Node(cid).Kind == tree.AttributeNode && store.Node(cid).Name == name {
			return true
		}
	}
	return false
}

func markFromString(s string) grammar.Mark {
	switch s {
	case "@":
		return grammar.Attr
	case "-":
		return grammar.Mute
	case "^":
		return grammar.Unmute
	default:
		return grammar.Default
	}
}

func tmarkFromString(s string) grammar.TMark {
	switch s {
	case "-":
		return grammar.TMute
	case "^":
		return grammar.TUnmute
	default:
		return grammar.TDefault
	}
}

// parseCharsetSpecInto parses the raw interior of a "[...]" charset
// (e.g. `"a"-"z"`, `a-z;0-9`, `Lu;Nd`) and feeds the resulting matchers
// into l. This mini-parser — not the Earley engine — is what turns the
// bootstrap grammar's flat captured charset text into CharMatchers; see
// BootstrapGrammar's doc comment for why the interior isn't itself broken
// into <range>/<from>/<to>/<hex> tree nodes.
func parseCharsetSpecInto(l *grammar.LitBuilder, raw string) error {
	for _, piece := range strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == '|' }) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		runes := []rune(piece)
		lo, n, err := parseCharAtom(runes)
		if err != nil {
			if unicat.Known(piece) {
				l.Unicode(piece)
				continue
			}
			return ixerr.NewStatic("invalid charset element %q", piece)
		}
		rest := runes[n:]
		if len(rest) == 0 {
			l.Exact(lo)
			continue
		}
		if rest[0] == '-' {
			hi, m, err2 := parseCharAtom(rest[1:])
			if err2 != nil || m != len(rest)-1 {
				return ixerr.NewStatic("invalid charset range %q", piece)
			}
			l.Range(lo, hi)
			continue
		}
		return ixerr.NewStatic("invalid charset element %q", piece)
	}
	return nil
}

// parseCharAtom parses one character specification — a bare rune, a
// quoted 'c'/"c", or a "#hex" codepoint — from the start of runes,
// returning the rune and how many runes it consumed.
func parseCharAtom(runes []rune) (rune, int, error) {
	if len(runes) == 0 {
		return 0, 0, ixerr.NewStatic("empty charset atom")
	}
	switch runes[0] {
	case '\'':
		if len(runes) < 3 || runes[2] != '\'' {
			return 0, 0, ixerr.NewStatic("malformed quoted charset atom")
		}
		return runes[1], 3, nil
	case '"':
		if len(runes) < 3 || runes[2] != '"' {
			return 0, 0, ixerr.NewStatic("malformed quoted charset atom")
		}
		return runes[1], 3, nil
	case '#':
		i := 1
		for i < len(runes) && isHexDigit(runes[i]) {
			i++
		}
		if i == 1 {
			return 0, 0, ixerr.NewStatic("malformed hex charset atom")
		}
		var val rune
		for _, r := range runes[1:i] {
			val = val*16 + rune(hexDigitValue(r))
		}
		return val, i, nil
	default:
		return runes[0], 1, nil
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}
