package grammar

import (
	"fmt"

	"github.com/npillmayer/ixml/internal/unicat"
)

// SeqBuilder is a fluent, append-only interface for constructing a single
// Rule, transparently lowering syntactic sugar (?, *, +, **, ++, inline
// alternation) into synthesized Mute nonterminals. Its primitive builders
// are a direct generalization of github.com/npillmayer/gorgo's own
// grammar-builder chaining (b.LHS("S").N("A").T("a",1).End(), see
// lr/doc.go) from "append a terminal/nonterminal symbol to an RHS" to
// "append a Factor, tracking any synthesized sub-rules along the way."
type SeqBuilder struct {
	factors []Factor

	// synthesized holds, for every minted synthesized name, the ordered
	// list of SeqBuilders representing that name's alternatives.
	synthesized      map[string][]*SeqBuilder
	synthesizedOrder []string

	context *RuleContext
}

func newSeqBuilder(ctx *RuleContext) *SeqBuilder {
	return &SeqBuilder{
		synthesized: make(map[string][]*SeqBuilder),
		context:     ctx,
	}
}

// child returns a fresh SeqBuilder scoped to the same RuleContext, used to
// build the body of a sub-expression (the F in opt(F), repeat0(F), ...)
// before siphoning its synthesized rules into the parent.
func (sb *SeqBuilder) child() *SeqBuilder {
	return newSeqBuilder(sb.context)
}

// siphon transfers child's synthesized rules into sb, preserving insertion
// order, before sb registers any synthesized rule of its own. This is what
// guarantees synthesized rules end up registered in the grammar in the
// order their sugar was nested, innermost first.
func (sb *SeqBuilder) siphon(child *SeqBuilder) {
	for _, name := range child.synthesizedOrder {
		subs, ok := child.synthesized[name]
		if !ok {
			panic(fmt.Sprintf("grammar: synthesized order lists %q but map has no entry", name))
		}
		if _, exists := sb.synthesized[name]; !exists {
			sb.synthesizedOrder = append(sb.synthesizedOrder, name)
		}
		sb.synthesized[name] = append(sb.synthesized[name], subs...)
	}
	for name := range child.synthesized {
		found := false
		for _, n := range child.synthesizedOrder {
			if n == name {
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf("grammar: synthesized map has %q but order list does not", name))
		}
	}
}

// addAlt registers factors as one more alternative of the synthesized rule
// name, minting its order entry the first time name is seen.
func (sb *SeqBuilder) addAlt(name string, factors []Factor) {
	if _, exists := sb.synthesized[name]; !exists {
		sb.synthesizedOrder = append(sb.synthesizedOrder, name)
	}
	alt := &SeqBuilder{factors: factors, context: sb.context}
	sb.synthesized[name] = append(sb.synthesized[name], alt)
}

// --- primitive builders ------------------------------------------------

func (sb *SeqBuilder) term(tmark TMark, lit Lit) *SeqBuilder {
	sb.factors = append(sb.factors, Terminal(tmark, lit))
	return sb
}

func (sb *SeqBuilder) nt(mark Mark, name string) *SeqBuilder {
	sb.factors = append(sb.factors, Nonterminal(mark, name))
	return sb
}

// Ch matches exactly the rune ch.
func (sb *SeqBuilder) Ch(ch rune) *SeqBuilder { return sb.term(TDefault, Lit{Matchers: []CharMatcher{Exact(ch)}}) }

// MarkCh is Ch with an explicit terminal mark.
func (sb *SeqBuilder) MarkCh(tmark TMark, ch rune) *SeqBuilder {
	return sb.term(tmark, Lit{Matchers: []CharMatcher{Exact(ch)}})
}

// ChIn matches any rune in set.
func (sb *SeqBuilder) ChIn(set string) *SeqBuilder {
	return sb.term(TDefault, Lit{Matchers: []CharMatcher{OneOf(set)}})
}

// MarkChIn is ChIn with an explicit terminal mark.
func (sb *SeqBuilder) MarkChIn(tmark TMark, set string) *SeqBuilder {
	return sb.term(tmark, Lit{Matchers: []CharMatcher{OneOf(set)}})
}

// ChRange matches any rune in the inclusive interval [lo,hi].
func (sb *SeqBuilder) ChRange(lo, hi rune) *SeqBuilder {
	return sb.term(TDefault, Lit{Matchers: []CharMatcher{Range{Lo: lo, Hi: hi}}})
}

// MarkChRange is ChRange with an explicit terminal mark.
func (sb *SeqBuilder) MarkChRange(tmark TMark, lo, hi rune) *SeqBuilder {
	return sb.term(tmark, Lit{Matchers: []CharMatcher{Range{Lo: lo, Hi: hi}}})
}

// ChUnicode matches any rune in the named Unicode General Category.
func (sb *SeqBuilder) ChUnicode(name string) *SeqBuilder {
	return sb.term(TDefault, Lit{Matchers: []CharMatcher{unicodeMatcher(name)}})
}

// MarkChUnicode is ChUnicode with an explicit terminal mark.
func (sb *SeqBuilder) MarkChUnicode(tmark TMark, name string) *SeqBuilder {
	return sb.term(tmark, Lit{Matchers: []CharMatcher{unicodeMatcher(name)}})
}

// Lit appends a terminal built from an arbitrary LitBuilder, the general
// escape hatch behind the ch/chIn/chRange/chUnicode shorthands — needed
// e.g. for exclusion classes: lit(exclude(chIn(s))).
func (sb *SeqBuilder) Lit(build func(*LitBuilder) *LitBuilder) *SeqBuilder {
	return sb.term(TDefault, build(NewLit()).build())
}

// MarkLit is Lit with an explicit terminal mark.
func (sb *SeqBuilder) MarkLit(tmark TMark, build func(*LitBuilder) *LitBuilder) *SeqBuilder {
	return sb.term(tmark, build(NewLit()).build())
}

// Nt appends a reference to the nonterminal name.
func (sb *SeqBuilder) Nt(name string) *SeqBuilder { return sb.nt(Default, name) }

// MarkNt is Nt with an explicit rule mark.
func (sb *SeqBuilder) MarkNt(mark Mark, name string) *SeqBuilder { return sb.nt(mark, name) }

// --- composite (desugaring) builders ------------------------------------

// build is the type of a sub-expression builder function passed to opt,
// repeat0, repeat1, alts, etc. — it plays the role of "F" in the
// desugaring table.
type build = func(*SeqBuilder) *SeqBuilder

// Opt appends zero-or-one of f: synth N: "N = ε. N = F."; emits
// Nonterminal(Mute, N).
func (sb *SeqBuilder) Opt(f build) *SeqBuilder {
	return sb.nt(Mute, sb.opt(f))
}

func (sb *SeqBuilder) opt(f build) string {
	child := f(sb.child())
	sb.siphon(child)
	name := sb.context.Mint("opt")
	sb.addAlt(name, nil)
	sb.addAlt(name, child.factors)
	return name
}

// Repeat0 appends zero-or-more of f: synth N: "N = (F, N)?." (i.e. N's own
// alternatives are ε and F,N — the same shape opt(F,N) would produce).
func (sb *SeqBuilder) Repeat0(f build) *SeqBuilder {
	return sb.nt(Mute, sb.repeat0(f))
}

func (sb *SeqBuilder) repeat0(f build) string {
	child := f(sb.child())
	sb.siphon(child)
	name := sb.context.Mint("rep0")
	sb.addAlt(name, nil)
	factors := append(append([]Factor{}, child.factors...), Nonterminal(Default, name))
	sb.addAlt(name, factors)
	return name
}

// Repeat1 appends one-or-more of f: synth N: "N = F, repeat0(F)."
func (sb *SeqBuilder) Repeat1(f build) *SeqBuilder {
	return sb.nt(Mute, sb.repeat1(f))
}

func (sb *SeqBuilder) repeat1(f build) string {
	child := f(sb.child())
	sb.siphon(child)
	rep0Name := sb.repeat0(f)
	name := sb.context.Mint("rep1")
	factors := append(append([]Factor{}, child.factors...), Nonterminal(Default, rep0Name))
	sb.addAlt(name, factors)
	return name
}

// Repeat1Sep appends one-or-more of f separated by sep: synth N:
// "N = F, repeat0(S, F)."
func (sb *SeqBuilder) Repeat1Sep(f, sep build) *SeqBuilder {
	return sb.nt(Mute, sb.repeat1Sep(f, sep))
}

func (sb *SeqBuilder) repeat1Sep(f, sep build) string {
	child := f(sb.child())
	sb.siphon(child)
	rep0SepName := sb.repeat0Pairs(sep, f)
	name := sb.context.Mint("rep1sep")
	factors := append(append([]Factor{}, child.factors...), Nonterminal(Default, rep0SepName))
	sb.addAlt(name, factors)
	return name
}

// repeat0Pairs builds a helper synth N: "N = ε. N = S, F, N." — the
// zero-or-more-(sep,elem)-pairs tail used by Repeat1Sep/Repeat0Sep.
func (sb *SeqBuilder) repeat0Pairs(sep, f build) string {
	sepChild := sep(sb.child())
	sb.siphon(sepChild)
	elemChild := f(sb.child())
	sb.siphon(elemChild)
	name := sb.context.Mint("rep0sep")
	sb.addAlt(name, nil)
	factors := append(append([]Factor{}, sepChild.factors...), elemChild.factors...)
	factors = append(factors, Nonterminal(Default, name))
	sb.addAlt(name, factors)
	return name
}

// Repeat0Sep appends zero-or-more of f separated by sep: synth N:
// "N = opt(repeat1Sep(F, S))."
func (sb *SeqBuilder) Repeat0Sep(f, sep build) *SeqBuilder {
	return sb.nt(Mute, sb.repeat0Sep(f, sep))
}

func (sb *SeqBuilder) repeat0Sep(f, sep build) string {
	rep1SepName := sb.repeat1Sep(f, sep)
	return sb.opt(func(c *SeqBuilder) *SeqBuilder {
		return c.nt(Default, rep1SepName)
	})
}

// Alts appends an inline alternation among fs: synth N: one alternative
// per fi; emits Nonterminal(Default, N) — unlike the other composites,
// which emit a Mute reference.
func (sb *SeqBuilder) Alts(fs ...build) *SeqBuilder {
	name := sb.context.Mint("alts")
	for _, f := range fs {
		child := f(sb.child())
		sb.siphon(child)
		sb.addAlt(name, child.factors)
	}
	return sb.nt(Default, name)
}

func unicodeMatcher(name string) CharMatcher {
	return UnicodeCategory{Name: name, Predicate: unicat.InCategory}
}
