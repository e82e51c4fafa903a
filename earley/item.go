package earley

import (
	"github.com/npillmayer/ixml/grammar"
	"github.com/npillmayer/ixml/span"
)

// MatchKind tags a MatchRec as covering a terminal or a nonterminal.
type MatchKind int

// The two match record kinds.
const (
	TermMatch MatchKind = iota
	NonTermMatch
)

// MatchRec is one entry of a Task's match history: either the terminal
// character matched by a factor already crossed, or the name/mark/end
// position of a nonterminal already reduced across that factor.
type MatchRec struct {
	Kind MatchKind

	// Terminal fields.
	Ch    rune
	TMark grammar.TMark

	// Nonterminal fields.
	Name string
	Mark grammar.Mark

	// EndPos is the input position just behind this match, valid for
	// both kinds.
	EndPos int
}

func termMatch(ch rune, endPos int, tmark grammar.TMark) MatchRec {
	return MatchRec{Kind: TermMatch, Ch: ch, TMark: tmark, EndPos: endPos}
}

func nonTermMatch(name string, endPos int, mark grammar.Mark) MatchRec {
	return MatchRec{Kind: NonTermMatch, Name: name, Mark: mark, EndPos: endPos}
}

// ruleRef identifies one specific alternative of one specific Definition,
// standing in for "the Rule half of a dotted rule" without copying the
// Rule's Factor slice into every Task.
type ruleRef struct {
	defName  string
	altIndex int
}

// Task is an Earley item: a dotted rule (ruleRef plus matches-so-far),
// an origin/pos pair, an effective mark, and an arena id.
//
// Dotted rules deliberately do not allocate a new Rule value per advance —
// only matches grows.
type Task struct {
	id            int
	name          string
	effectiveMark grammar.Mark
	origin        int
	pos           int
	rule          ruleRef
	matches       []MatchRec
}

// Name returns the definition name this item recognizes.
func (t *Task) Name() string { return t.name }

// Origin returns the input position this item's rule started matching at.
func (t *Task) Origin() int { return t.origin }

// End returns the input position this item's dot currently stands at
// (equivalently, the end position of the last match, or Origin if none).
func (t *Task) End() int { return t.pos }

// EffectiveMark returns the item's effective mark, resolved at prediction
// time against the definition/call-site mark table.
func (t *Task) EffectiveMark() grammar.Mark { return t.effectiveMark }

// Matches returns the ordered match history of this item — one MatchRec
// per factor already crossed.
func (t *Task) Matches() []MatchRec { return t.matches }

// Span returns the input range [Origin,End) this item covers.
func (t *Task) Span() span.Span { return span.New(t.origin, t.pos) }

// CompletedItem is the minimal view of a completed Earley item the tree
// reconstructor (package tree) needs. Task implements it directly; no
// conversion step is required.
type CompletedItem interface {
	Name() string
	Origin() int
	End() int
	EffectiveMark() grammar.Mark
	Matches() []MatchRec
	Span() span.Span
}

var _ CompletedItem = (*Task)(nil)
