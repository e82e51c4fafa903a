/*
Package grammar implements the iXML grammar data model and its builder.

A Grammar is a mapping from rule name to Definition, plus the insertion
order of those names — the first name ever defined is the grammar's root.
A Definition accumulates Rule alternatives across repeated Define calls on
the same name; the first such call fixes the Definition's Mark.

Building a Grammar

Grammars are assembled with Define/MarkDefine plus a SeqBuilder, in a style
directly descended from github.com/npillmayer/gorgo's own grammar-builder
API (see gorgo's lr.NewGrammarBuilder / lr/doc.go):

	g := grammar.New()
	g.Define("doc", func(s *grammar.SeqBuilder) *grammar.SeqBuilder {
		return s.Nt("a").Ch(':').Nt("value")
	})
	g.MarkDefine(grammar.Attr, "a", func(s *grammar.SeqBuilder) *grammar.SeqBuilder {
		return s.Repeat1(func(s *grammar.SeqBuilder) *grammar.SeqBuilder {
			return s.ChRange('a', 'z')
		})
	})

Sugar operators (?, *, +, **, ++ and inline alternation) are desugared by
the builder into synthesized, always-Mute nonterminals named
"--<rule>.<hint><n>", minted deterministically per RuleContext so that two
independent builds of the same grammar serialize identically (see
RuleContext, deterministic across independent builds).

License

Governed by a 3-Clause BSD license.
*/
package grammar
