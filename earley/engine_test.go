package earley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ixml/earley"
	"github.com/npillmayer/ixml/grammar"
)

func simpleSeqGrammar() *grammar.Grammar {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Ch('a').Ch('b')
	})
	return g
}

func TestParseAcceptsMatchingInput(t *testing.T) {
	g := simpleSeqGrammar()
	p := earley.NewParser(g)
	require.NoError(t, p.Parse([]rune("ab")))

	item, found := p.Find("doc", 0, 2)
	require.True(t, found)
	assert.Equal(t, "doc", item.Name())
	assert.Len(t, item.Matches(), 2)
	assert.Equal(t, 0, item.Span().From())
	assert.Equal(t, 2, item.Span().To())
}

func TestParseRejectsNonMatchingInput(t *testing.T) {
	g := simpleSeqGrammar()
	p := earley.NewParser(g)
	err := p.Parse([]rune("ac"))
	require.Error(t, err)
}

func TestParseRejectsUndefinedNonterminal(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("missing") })

	p := earley.NewParser(g)
	err := p.Parse([]rune("a"))
	require.Error(t, err)
}

func TestParseHandlesLeftRecursion(t *testing.T) {
	g := grammar.New()
	// doc = doc, "a" | "a".  (left-recursive, matches one-or-more "a")
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("doc").Ch('a')
	})
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Ch('a')
	})

	p := earley.NewParser(g)
	require.NoError(t, p.Parse([]rune("aaaa")))
}

func TestParseHandlesNullableRule(t *testing.T) {
	g := grammar.New()
	// doc = opt, "a".  opt = ε | "x".
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("opt").Ch('a')
	})
	g.Define("opt", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb })
	g.Define("opt", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('x') })

	p := earley.NewParser(g)
	require.NoError(t, p.Parse([]rune("a")))
	p = earley.NewParser(g)
	require.NoError(t, p.Parse([]rune("xa")))
}

func TestParseTerminatesOnAmbiguousNullableGrammar(t *testing.T) {
	g := grammar.New()
	// doc = doc, opt | "a".  opt = ε.   (left-recursive + nullable combo)
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("doc").Nt("opt")
	})
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('a') })
	g.Define("opt", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb })

	p := earley.NewParser(g)
	require.NoError(t, p.Parse([]rune("a")))
}

func TestEffectiveMarkTable(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.MarkNt(grammar.Unmute, "muted")
	})
	g.MarkDefine(grammar.Mute, "muted", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('a') })

	p := earley.NewParser(g)
	require.NoError(t, p.Parse([]rune("a")))

	item, found := p.Find("muted", 0, 1)
	require.True(t, found)
	assert.Equal(t, grammar.Unmute, item.EffectiveMark())
}
