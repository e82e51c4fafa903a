package ixml

import "github.com/npillmayer/ixml/grammar"

// BootstrapGrammar returns a freshly built Grammar recognizing (a subset
// of) iXML's own concrete syntax. Every call returns
// an independently built Grammar; none is shared, so a caller may hold
// many in flight.
//
// This is a deliberate subset: literal terminals match a single character
// (the reflector's factor mapping for <literal> is "ch(s[0])", not a
// per-rune expansion of longer string content); charset interiors
// ("[a-z]", "[Lu;Nd]", "[~"xyz"]") are captured whole as a raw attribute
// string on the <charset> node and re-parsed by parseCharsetSpecInto in
// reflect.go rather than broken into individual <range>/<from>/<to>/<hex>
// nodes — both choices keep the hand-built grammar itself a manageable
// size while still producing the right CharMatchers at reflect time.
func BootstrapGrammar() *grammar.Grammar {
	g := grammar.New()

	// ixml = s, rule+.  (each rule consumes its own trailing s; Mute: <rule>
	// elements attach directly to the root)
	g.MarkDefine(grammar.Mute, "ixml", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("s").Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.Nt("rule")
		})
	})

	// rule = mark?, name, -"=", s, alts, -".", s.
	g.Define("rule", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.
			Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.MarkNt(grammar.Attr, "mark") }).
			MarkNt(grammar.Attr, "name").
			MarkCh(grammar.TMute, '=').Nt("s").
			Nt("alts").
			MarkCh(grammar.TMute, '.').Nt("s")
	})

	// alts = alt, (("|"|";"), s, alt)*.  (Mute: <alt> elements attach to <rule>)
	g.MarkDefine(grammar.Mute, "alts", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("alt").Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.MarkLit(grammar.TMute, func(l *grammar.LitBuilder) *grammar.LitBuilder {
				return l.OneOf("|;")
			}).Nt("s").Nt("alt")
		})
	})

	// alt = (term, (-",", s, term)*)?  — zero terms allowed (an empty branch).
	g.Define("alt", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat0Sep(
			func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Nt("term") },
			func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.MarkCh(grammar.TMute, ',').Nt("s") },
		)
	})

	// term dispatches, via top-level alternation (not inline Alts), to the
	// five factor shapes — each alternative's own node (option/repeat0/
	// repeat1/nonterminal/literal/charset/insertion) is what actually shows
	// up under <alt>; "term" itself never becomes a node.
	g.MarkDefine(grammar.Mute, "term", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("option") })
	g.MarkDefine(grammar.Mute, "term", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("repeat0") })
	g.MarkDefine(grammar.Mute, "term", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("repeat1") })
	g.MarkDefine(grammar.Mute, "term", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("insertion") })
	g.MarkDefine(grammar.Mute, "term", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("primary") })

	g.MarkDefine(grammar.Mute, "primary", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("nonterminal") })
	g.MarkDefine(grammar.Mute, "primary", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("literal") })
	g.MarkDefine(grammar.Mute, "primary", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("charset") })

	// operand is what a postfix repeat operator or "?" applies to: a bare
	// primary, or a parenthesized alternation group.
	g.MarkDefine(grammar.Mute, "operand", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("primary") })
	g.MarkDefine(grammar.Mute, "operand", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("group") })

	// group = -"(", s, alts, -")", s.
	g.MarkDefine(grammar.Mute, "group", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkCh(grammar.TMute, '(').Nt("s").Nt("alts").MarkCh(grammar.TMute, ')').Nt("s")
	})

	// nonterminal = mark?, name.
	g.Define("nonterminal", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.
			Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.MarkNt(grammar.Attr, "mark") }).
			MarkNt(grammar.Attr, "name")
	})

	// literal = tmark?, string.
	g.Define("literal", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.
			Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.MarkNt(grammar.Attr, "tmark") }).
			MarkNt(grammar.Attr, "string")
	})

	// charset = tmark?, -"[", exclude?, setspec, -"]", s.
	g.Define("charset", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.
			Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.MarkNt(grammar.Attr, "tmark") }).
			MarkCh(grammar.TMute, '[').
			Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.MarkNt(grammar.Attr, "exclude") }).
			MarkNt(grammar.Attr, "setspec").
			MarkCh(grammar.TMute, ']').Nt("s")
	})

	// exclude = "~".
	g.Define("exclude", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('~') })

	// insertion = -"+", s, string. Parsed but never interpreted: it has no
	// defined semantic effect in the core. The reflector skips any
	// <insertion> child entirely when it builds an <alt>'s factors.
	g.Define("insertion", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkCh(grammar.TMute, '+').Nt("s").MarkNt(grammar.Attr, "string")
	})

	// option = operand, -"?", s.
	g.Define("option", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("operand").MarkCh(grammar.TMute, '?').Nt("s")
	})

	// repeat0 = operand, -"**", s, sep | operand, -"*", s.
	g.Define("repeat0", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("operand").
			MarkCh(grammar.TMute, '*').MarkCh(grammar.TMute, '*').Nt("s").
			Nt("sep")
	})
	g.Define("repeat0", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("operand").MarkCh(grammar.TMute, '*').Nt("s")
	})

	// repeat1 = operand, -"++", s, sep | operand, -"+", s.
	g.Define("repeat1", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("operand").
			MarkCh(grammar.TMute, '+').MarkCh(grammar.TMute, '+').Nt("s").
			Nt("sep")
	})
	g.Define("repeat1", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("operand").MarkCh(grammar.TMute, '+').Nt("s")
	})

	// sep = operand.
	g.Define("sep", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("operand") })

	// mark = "@" | "-" | "^".
	g.Define("mark", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.ChIn("@-^") })

	// tmark = "-" | "^".
	g.Define("tmark", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.ChIn("-^") })

	// name = (letter|"_"), (letter|digit|"_"|"-")*, s.
	g.Define("name", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.
			Lit(func(l *grammar.LitBuilder) *grammar.LitBuilder { return l.Unicode("L").OneOf("_") }).
			Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
				return c.Lit(func(l *grammar.LitBuilder) *grammar.LitBuilder {
					return l.Unicode("L").Unicode("Nd").OneOf("_-")
				})
			}).
			Nt("s")
	})

	// string = -'"', dchar*, -'"', s | -"'", schar*, -"'", s.
	g.Define("string", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkCh(grammar.TMute, '"').
			Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Nt("dchar") }).
			MarkCh(grammar.TMute, '"').Nt("s")
	})
	g.Define("string", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkCh(grammar.TMute, '\'').
			Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Nt("schar") }).
			MarkCh(grammar.TMute, '\'').Nt("s")
	})

	// dchar = '""' (one emitted quote) | any char except '"'.
	g.MarkDefine(grammar.Mute, "dchar", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkCh(grammar.TMute, '"').Ch('"')
	})
	g.MarkDefine(grammar.Mute, "dchar", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Lit(func(l *grammar.LitBuilder) *grammar.LitBuilder { return l.OneOf(`"`).Exclude() })
	})

	// schar = "''" (one emitted quote) | any char except "'".
	g.MarkDefine(grammar.Mute, "schar", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkCh(grammar.TMute, '\'').Ch('\'')
	})
	g.MarkDefine(grammar.Mute, "schar", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Lit(func(l *grammar.LitBuilder) *grammar.LitBuilder { return l.OneOf(`'`).Exclude() })
	})

	// setspec = setchar+ — raw, unparsed interior of "[...]"; reflect.go's
	// parseCharsetSpecInto turns this into CharMatchers.
	g.MarkDefine(grammar.Mute, "setspec", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Nt("setchar") })
	})
	g.MarkDefine(grammar.Mute, "setchar", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Lit(func(l *grammar.LitBuilder) *grammar.LitBuilder { return l.OneOf("]").Exclude() })
	})

	// s = (" "|"\t"|"\r"|"\n" | "{", commentchar*, "}")* — all Mute.
	g.MarkDefine(grammar.Mute, "s", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Nt("wsOrComment") })
	})
	g.MarkDefine(grammar.Mute, "wsOrComment", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkChIn(grammar.TMute, " \t\r\n")
	})
	g.MarkDefine(grammar.Mute, "wsOrComment", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkCh(grammar.TMute, '{').
			Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Nt("commentchar") }).
			MarkCh(grammar.TMute, '}')
	})
	g.MarkDefine(grammar.Mute, "commentchar", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkLit(grammar.TMute, func(l *grammar.LitBuilder) *grammar.LitBuilder {
			return l.OneOf("{}").Exclude()
		})
	})

	return g
}
