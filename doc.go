/*
Package ixml is an Invisible XML (iXML) grammar compiler and recognizer.

iXML is a declarative grammar language: a grammar describes both how to
recognize a piece of text and how to shape the recognized structure into
an XML-like tree, via per-rule marks that decide whether a rule
contributes an element, an attribute, or nothing at all. Package structure
is as follows:

■ grammar: the grammar data model (Definition/Rule/Factor/Mark) and its
fluent SeqBuilder/LitBuilder, including the desugaring of `?`/`*`/`+`
repetition operators into synthesized helper rules.

■ earley: the Earley recognizer driving a grammar against rune input,
tracking origin/position/match-history per item.

■ tree: reconstructs the XML-shaped element/attribute/text tree from a
completed Earley recognizer trace, and serializes it to the test format.

■ ixml: a hand-built grammar recognizing iXML's own concrete syntax, whose
parse tree a Reflector walks to produce a grammar.Grammar — the engine
bootstraps itself.

■ cmd/ixml: the command-line front end (parse/test/suite/repl), backed by
internal/config (TOML settings) and internal/catalog (test-catalog
loading).

The span package holds the small half-open-interval type threaded through
Earley items and tree nodes to record which input positions they cover.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ixml
