package grammar

import (
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/ixml/ixerr"
)

// tracer traces with key "ixml.grammar", the same per-package tracer()
// convention github.com/npillmayer/gorgo's own packages use.
func tracer() tracing.Trace {
	return tracing.Select("ixml.grammar")
}

// Grammar is a mapping from rule name to Definition, plus the order in
// which names were first defined. The first inserted name is the root.
//
// The name→Definition map is backed by
// github.com/emirpasic/gods/maps/linkedhashmap precisely because its job —
// "a map that remembers insertion order" — is exactly the guarantee this
// type must hold: insertion order preserved through all merges, including
// synthesized rules.
type Grammar struct {
	defs *linkedhashmap.Map // name -> *Definition
	root string
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{defs: linkedhashmap.New()}
}

// Define appends a new Rule, built by build, as an alternative of name's
// Definition using the Default mark. Equivalent to MarkDefine(Default,
// name, build).
func (g *Grammar) Define(name string, build func(*SeqBuilder) *SeqBuilder) {
	g.MarkDefine(Default, name, build)
}

// MarkDefine drains a builder's main factor list into a new Rule appended
// to name's Definition, then drains the builder's synthesized rules (each
// with its own Mute Definition) in their recorded insertion order. The
// first MarkDefine/Define call for a given name fixes that Definition's
// mark; later calls only add alternatives (duplicate definitions merge).
func (g *Grammar) MarkDefine(mark Mark, name string, build func(*SeqBuilder) *SeqBuilder) {
	g.MarkDefineWithContext(NewRuleContext(name), mark, name, build)
}

// MarkDefineWithContext is MarkDefine for a caller that must share one
// RuleContext across several calls — the iXML reflector (package ixml)
// needs this: a single <rule> element can carry several top-level <alt>
// children, each becoming its own MarkDefine-like call, and a global
// synthesized-name counter would be a hazard across rules, so the counter
// is scoped to a per-rule RuleContext (the reflector creates one per rule);
// those calls must mint synthesized names from one shared counter, not one
// fresh counter per alternative.
func (g *Grammar) MarkDefineWithContext(ctx *RuleContext, mark Mark, name string, build func(*SeqBuilder) *SeqBuilder) {
	sb := newSeqBuilder(ctx)
	sb = build(sb)
	g.defineRule(mark, name, Rule{Factors: sb.factors})
	for _, synName := range sb.synthesizedOrder {
		subBuilders := sb.synthesized[synName]
		for _, sub := range subBuilders {
			g.defineRule(Mute, synName, Rule{Factors: sub.factors})
		}
	}
}

// defineRule appends alt as an alternative of name, creating name's
// Definition (with mark) if this is the first time name is seen, and
// recording insertion order.
func (g *Grammar) defineRule(mark Mark, name string, alt Rule) {
	v, found := g.defs.Get(name)
	var def *Definition
	if found {
		def = v.(*Definition)
	} else {
		def = &Definition{Name: name, Mark: mark}
		g.defs.Put(name, def)
		if g.root == "" {
			g.root = name
		}
		tracer().Debugf("new definition %q (mark=%s)", name, mark)
	}
	def.Alternatives = append(def.Alternatives, alt)
}

// GetDefinition looks up a rule's Definition by name.
func (g *Grammar) GetDefinition(name string) (*Definition, error) {
	v, found := g.defs.Get(name)
	if !found {
		return nil, ixerr.NewStatic("no definition for %q", name)
	}
	return v.(*Definition), nil
}

// RootDefinitionName returns the first-defined rule name.
func (g *Grammar) RootDefinitionName() string {
	return g.root
}

// RootDefinition returns the Definition of the root rule.
func (g *Grammar) RootDefinition() (*Definition, error) {
	if g.root == "" {
		return nil, ixerr.NewStatic("grammar has no definitions")
	}
	return g.GetDefinition(g.root)
}

// DefinitionOrder returns definition names in the order they were first
// introduced (including synthesized ones), as required for serialization
// and for test comparisons.
func (g *Grammar) DefinitionOrder() []string {
	keys := g.defs.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Validate checks that every nonterminal Factor referenced anywhere in the
// grammar has a Definition — an unresolved reference is a static error.
func (g *Grammar) Validate() error {
	if g.root == "" {
		return ixerr.NewStatic("grammar has no definitions")
	}
	for _, name := range g.DefinitionOrder() {
		def, _ := g.GetDefinition(name)
		for _, alt := range def.Alternatives {
			for _, f := range alt.Factors {
				if f.IsTerminal() {
					continue
				}
				if _, found := g.defs.Get(f.Name); !found {
					return ixerr.NewStatic("rule %q references undefined nonterminal %q", name, f.Name)
				}
			}
		}
	}
	return nil
}

// String renders the grammar's textual form: for each definition in
// insertion order, "<mark><name>= <alt1> | <alt2>… .\n", exactly as spec
// §4.G requires — grounded on github.com/npillmayer/gorgo's own
// Grammar.Dump()-style textual dumps (see lr/doc.go), adapted to iXML's
// concrete syntax. Round-trip tests compare this string for equality, so
// whitespace here is load-bearing.
func (g *Grammar) String() string {
	var b strings.Builder
	g.WriteTo(&b)
	return b.String()
}

// WriteTo writes the same textual form as String to w, avoiding the
// intermediate string allocation for callers that only need to stream it
// out.
func (g *Grammar) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, name := range g.DefinitionOrder() {
		def, _ := g.GetDefinition(name)
		wn, err := io.WriteString(w, def.String()+"\n")
		n += int64(wn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
