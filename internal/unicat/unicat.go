// Package unicat implements inCategory(ch, name) -> bool, a lookup against
// the Unicode General Category tables used by iXML's Unicode-category
// character classes. Nothing else ships a category table more complete
// than unicode.Categories, and the grammar only ever needs the one- and
// two-letter aliases it already defines.
package unicat

import "unicode"

// InCategory reports whether ch belongs to the Unicode General Category
// named by name, e.g. "L", "Lu", "Nd", "Zs". Unknown names never match.
func InCategory(ch rune, name string) bool {
	table, ok := unicode.Categories[name]
	if !ok {
		return false
	}
	return unicode.Is(table, ch)
}

// Known reports whether name is a category this predicate can evaluate.
func Known(name string) bool {
	_, ok := unicode.Categories[name]
	return ok
}
