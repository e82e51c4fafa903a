package earley

import "github.com/npillmayer/ixml/grammar"

// effectiveMark resolves a Definition's own mark (def) against the mark
// carried by the call site referencing it (call):
//
//	d \ m    Default  Unmute  Mute  Attr
//	Default  Default  Unmute  Mute  Attr
//	Unmute   Unmute   Unmute  Mute  Attr
//	Mute     Mute     Unmute  Mute  Attr
//	Attr     Attr     Attr    Attr  Attr
//
// Attr is absorbing; Unmute at the call site can override a Mute
// definition; otherwise Mute dominates non-Attr.
func effectiveMark(def, call grammar.Mark) grammar.Mark {
	if def == grammar.Attr {
		return grammar.Attr
	}
	if call == grammar.Attr {
		return grammar.Attr
	}
	if call == grammar.Mute {
		return grammar.Mute
	}
	if call == grammar.Unmute {
		return grammar.Unmute
	}
	return def
}
