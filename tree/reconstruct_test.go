package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ixml/earley"
	"github.com/npillmayer/ixml/grammar"
	"github.com/npillmayer/ixml/tree"
)

// run parses input against g and returns the serialized test-format output.
func run(t *testing.T, g *grammar.Grammar, input string) string {
	t.Helper()
	p := earley.NewParser(g)
	err := p.Parse([]rune(input))
	require.NoError(t, err)

	root, err := g.RootDefinition()
	require.NoError(t, err)

	store := tree.Reconstruct(p, p.RootName(), root.Mark, p.InputLen())
	return tree.Serialize(store, store.Root())
}

func TestReconstructPlainElements(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("name").Ch(':').Nt("value")
	})
	g.Define("name", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'z')
		})
	})
	g.Define("value", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'z')
		})
	})

	out := run(t, g, "abc:def")
	assert.Equal(t, "<doc><name>abc</name>:<value>def</value></doc>", out)
}

func TestReconstructAttribute(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("name").Ch(':').Nt("value")
	})
	g.MarkDefine(grammar.Attr, "name", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'z')
		})
	})
	g.Define("value", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'z')
		})
	})

	out := run(t, g, "abc:def")
	assert.Equal(t, `<doc name="abc">:<value>def</value></doc>`, out)
}

func TestReconstructMuteFlattensText(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("a").MarkCh(grammar.TMute, ':').MarkNt(grammar.Mute, "b").Nt("c")
	})
	g.MarkDefine(grammar.Mute, "a", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'z')
		})
	})
	g.Define("b", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'm')
		})
	})
	g.Define("c", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('n', 'z')
		})
	})

	out := run(t, g, "abc:defxyz")
	assert.Equal(t, "<doc>abcdef<c>xyz</c></doc>", out)
}

func TestReconstructAttributeQuoteEscaping(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("q")
	})
	g.MarkDefine(grammar.Attr, "q", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.Lit(func(l *grammar.LitBuilder) *grammar.LitBuilder {
				return l.OneOf(`ab"`)
			})
		})
	})

	out := run(t, g, `a"b`)
	assert.Equal(t, `<doc q="a&quot;b"></doc>`, out)
}

func TestReconstructOptAndRepeat0(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Opt(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.Ch('x')
		}).Repeat0(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.Ch('y')
		})
	})

	assert.Equal(t, "<doc>yyy</doc>", run(t, g, "yyy"))
	assert.Equal(t, "<doc>xyy</doc>", run(t, g, "xyy"))
	assert.Equal(t, "<doc></doc>", run(t, g, ""))
}

func TestReconstructNodeSpansCoverTheirSubtree(t *testing.T) {
	g := grammar.New()
	g.Define("doc", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Nt("name").Ch(':').Nt("value")
	})
	g.Define("name", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'z')
		})
	})
	g.Define("value", func(sb *grammar.SeqBuilder) *grammar.SeqBuilder {
		return sb.Repeat1(func(c *grammar.SeqBuilder) *grammar.SeqBuilder {
			return c.ChRange('a', 'z')
		})
	})

	p := earley.NewParser(g)
	require.NoError(t, p.Parse([]rune("abc:def")))
	root, err := g.RootDefinition()
	require.NoError(t, err)
	store := tree.Reconstruct(p, p.RootName(), root.Mark, p.InputLen())

	docNode := store.Node(1)
	assert.Equal(t, 0, docNode.Span.From())
	assert.Equal(t, 7, docNode.Span.To())

	nameNode := store.Node(docNode.Children[0])
	assert.Equal(t, "name", nameNode.Name)
	assert.Equal(t, 0, nameNode.Span.From())
	assert.Equal(t, 3, nameNode.Span.To())
}
