/*
Package tree implements the tree construction pass: it walks a completed
Earley trace (package earley) and produces an attributed element tree —
Root, Element, Attribute, and Text nodes — by applying each item's
resolved mark.

Unlike github.com/npillmayer/gorgo's own derivation walker
(lr/earley.Parser.walk in parsetree.go), this reconstructor never searches
backward for a predecessor item: each earley.Task already carries its full
match history (Matches()), so walk is a direct structural recursion over
that history rather than a search over per-position item sets. The arena
style (a flat, append-only []Node with parent links) is grounded on the
shape of gorgo's lr/sppf.Forest, simplified accordingly.

License

Governed by a 3-Clause BSD license.
*/
package tree
