package grammar_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ixml/grammar"
)

func TestDefineAndGetDefinition(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Ch('a').Ch('b')
	})

	def, err := g.GetDefinition("doc")
	require.NoError(t, err)
	assert.Equal(t, grammar.Default, def.Mark)
	require.Len(t, def.Alternatives, 1)
	assert.Len(t, def.Alternatives[0].Factors, 2)
}

func TestRootIsFirstDefinedName(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("a") })
	g.Define("a", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('a') })

	assert.Equal(t, "doc", g.RootDefinitionName())
}

func TestDuplicateDefinitionsMergeAsAlternatives(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('a') })
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('b') })

	def, err := g.GetDefinition("doc")
	require.NoError(t, err)
	assert.Len(t, def.Alternatives, 2)
}

func TestValidateCatchesUnresolvedNonterminal(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("missing") })

	err := g.Validate()
	require.Error(t, err)
}

func TestValidateAcceptsResolvedGrammar(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Nt("a") })
	g.Define("a", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder { return sb.Ch('a') })

	assert.NoError(t, g.Validate())
}

func TestOptSynthesizesMuteRule(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Ch('a') })
	})

	def, err := g.GetDefinition("doc")
	require.NoError(t, err)
	require.Len(t, def.Alternatives[0].Factors, 1)
	f := def.Alternatives[0].Factors[0]
	assert.False(t, f.IsTerminal())
	assert.Equal(t, grammar.Mute, f.Mark)

	synth, err := g.GetDefinition(f.Name)
	require.NoError(t, err)
	assert.Equal(t, grammar.Mute, synth.Mark)
	assert.Len(t, synth.Alternatives, 2) // ε and F
}

func TestSynthesizedNamingIsDeterministic(t *testing.T) {
	build := func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.
			Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Ch('a') }).
			Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Ch('b') })
	}

	g1 := grammar.New()
	g1.Define("doc", build)
	g2 := grammar.New()
	g2.Define("doc", build)

	assert.Equal(t, g1.String(), g2.String())
}

func TestAltsEmitsDefaultMarkReference(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Alts(
			func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Ch('a') },
			func(c *grammar.SeqBuilder) *grammar.SeqBuilder { return c.Ch('b') },
		)
	})

	def, err := g.GetDefinition("doc")
	require.NoError(t, err)
	f := def.Alternatives[0].Factors[0]
	assert.Equal(t, grammar.Default, f.Mark)

	synth, err := g.GetDefinition(f.Name)
	require.NoError(t, err)
	assert.Len(t, synth.Alternatives, 2)
}

func TestStringSerializationIsStable(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Ch('a').Nt("b")
	})
	g.MarkDefine(grammar.Mute, "b", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Ch('b')
	})

	out := g.String()
	assert.Contains(t, out, `doc= "a", b .`)
	assert.Contains(t, out, `-b= "b" .`)
}

func TestWriteToMatchesString(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Ch('a').Nt("b")
	})
	g.MarkDefine(grammar.Mute, "b", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Ch('b')
	})

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, g.String(), buf.String())
}

func TestLitExcludeAccept(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Lit(func(l *grammar.LitBuilder) *grammar.LitBuilder {
			return l.OneOf("ab").Exclude()
		})
	})
	def, err := g.GetDefinition("doc")
	require.NoError(t, err)
	f := def.Alternatives[0].Factors[0]
	assert.True(t, f.Lit.Accept('c'))
	assert.False(t, f.Lit.Accept('a'))
}
