/*
Package earley implements the Earley recognizer that drives iXML parsing:
predict, scan, complete over a single shared item arena and work queue,
with duplicate suppression keyed on (name, effective mark, origin, pos, dot
signature).

The engine's predict/scan/complete shape is grounded directly on
github.com/npillmayer/gorgo's own lr/earley package (see
Parser.innerLoop/scan/predict/complete there), generalized from gorgo's
token-stream items — matched against a gorgo.Token emitted by a
scanner.Tokenizer, one Earley set per input token — to iXML's
character-stream items, matched directly against []rune input with no
separate lexer stage, and carrying their own match history
(Task.Matches()) rather than requiring a backward search over per-position
sets to reconstruct a derivation (contrast gorgo's
earley.Parser.WalkDerivation, which must search backward precisely because
gorgo's items do not record match history).

License

Governed by a 3-Clause BSD license.
*/
package earley
