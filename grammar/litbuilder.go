package grammar

import "github.com/npillmayer/ixml/internal/unicat"

// LitBuilder builds an arbitrary character class (Lit) for use with
// SeqBuilder.Lit/MarkLit, the general escape hatch behind the ch/chIn/
// chRange/chUnicode shorthands.
type LitBuilder struct {
	matchers []CharMatcher
	exclude  bool
}

// NewLit starts an empty LitBuilder.
func NewLit() *LitBuilder {
	return &LitBuilder{}
}

// Exact adds a matcher accepting exactly ch.
func (b *LitBuilder) Exact(ch rune) *LitBuilder {
	b.matchers = append(b.matchers, Exact(ch))
	return b
}

// OneOf adds a matcher accepting any rune in s.
func (b *LitBuilder) OneOf(s string) *LitBuilder {
	b.matchers = append(b.matchers, OneOf(s))
	return b
}

// Range adds a matcher accepting runes in the inclusive interval [lo,hi].
func (b *LitBuilder) Range(lo, hi rune) *LitBuilder {
	b.matchers = append(b.matchers, Range{Lo: lo, Hi: hi})
	return b
}

// Unicode adds a matcher delegating to the named Unicode General Category,
// via internal/unicat (spec's opaque inCategory predicate).
func (b *LitBuilder) Unicode(name string) *LitBuilder {
	b.matchers = append(b.matchers, UnicodeCategory{Name: name, Predicate: unicat.InCategory})
	return b
}

// Exclude flips the class to exclusion: it accepts ch iff no matcher
// matches.
func (b *LitBuilder) Exclude() *LitBuilder {
	b.exclude = true
	return b
}

func (b *LitBuilder) build() Lit {
	return Lit{Matchers: b.matchers, IsExclude: b.exclude}
}
