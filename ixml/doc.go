/*
Package ixml hand-builds a Grammar (package grammar) describing (a subset
of) iXML's own concrete syntax, then reflects a parse of that grammar
produced by package earley and package tree back into a target Grammar
value. This is how the engine bootstraps itself: BootstrapGrammar() is a
Grammar like any other, recognized by the very same earley.Parser that
later recognizes user input against the Grammar the reflector builds.

ParseGrammar is the package's single entry point:

	g, err := ixml.ParseGrammar(src)

Grounded on github.com/npillmayer/gorgo's own two-stage bootstrap shape
(terex/terexlang bootstraps its own grammar with an LR table before parsing
higher-level expressions with it), adapted here to a hand-built Grammar
instead of a generated table, since this module's "meta-grammar" is only
the comparatively small fixed subset of iXML concrete syntax this engine
actually needs to read.

License

Governed by a 3-Clause BSD license.
*/
package ixml
