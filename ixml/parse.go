package ixml

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/ixml/earley"
	"github.com/npillmayer/ixml/grammar"
	"github.com/npillmayer/ixml/tree"
)

func tracer() tracing.Trace {
	return tracing.Select("ixml.ixml")
}

// ParseGrammar recognizes text as iXML source against BootstrapGrammar()
// and reflects the result into a target Grammar. A malformed-input
// failure surfaces as a *ixerr.DynamicError from the bootstrap parse
// itself; a structurally invalid parse tree (e.g. a <rule> missing its
// name) surfaces as a *ixerr.StaticError from Reflect.
func ParseGrammar(text string) (*grammar.Grammar, error) {
	boot := BootstrapGrammar()
	p := earley.NewParser(boot)
	input := []rune(text)
	if err := p.Parse(input); err != nil {
		tracer().Errorf("bootstrap parse failed: %s", err)
		return nil, err
	}
	root, err := boot.RootDefinition()
	if err != nil {
		return nil, err
	}
	store := tree.Reconstruct(p, p.RootName(), root.Mark, p.InputLen())
	return Reflect(store)
}
