package earley

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/ixml/grammar"
	"github.com/npillmayer/ixml/ixerr"
)

// tracer traces with key "ixml.earley", following gorgo's own
// tracer()/T() per-package convention (see lr/earley/earley.go).
func tracer() tracing.Trace {
	return tracing.Select("ixml.earley")
}

// Parser recognizes a finite character sequence against a Grammar using
// the Earley algorithm. Create one with NewParser, call
// Parse, then inspect Find for the completed-item trace the tree
// reconstructor (package tree) needs.
type Parser struct {
	g     *grammar.Grammar
	input []rune

	arena []*Task
	queue *taskQueue

	// continuation maps nonterminal name -> ids of items whose
	// next-after-dot factor is that nonterminal.
	continuation map[string][]int

	// completedByName maps definition name -> ids of items that have
	// completed for that name, in the order they completed.
	completedByName map[string][]int
	completedTrace  []int

	// dedup maps a structhash signature to the id of the first item with
	// that signature; later items with an equal signature are discarded.
	dedup map[string]int

	maxPos int
}

// NewParser creates a Parser bound to g. The same Parser must not be
// reused across unrelated Parse calls — create a fresh one per input.
func NewParser(g *grammar.Grammar) *Parser {
	return &Parser{
		g:               g,
		continuation:    make(map[string][]int),
		completedByName: make(map[string][]int),
		dedup:           make(map[string]int),
	}
}

// Parse recognizes input against the Parser's grammar. It returns a
// *ixerr.StaticError if the grammar itself is malformed, a
// *ixerr.DynamicError if no alternative of the root definition completes
// across the whole input, or nil on success.
func (p *Parser) Parse(input []rune) error {
	if err := p.g.Validate(); err != nil {
		return err
	}
	root, err := p.g.RootDefinition()
	if err != nil {
		return err
	}
	p.input = input
	p.queue = newTaskQueue()

	for altIndex := range root.Alternatives {
		seed := &Task{
			name:          root.Name,
			effectiveMark: root.Mark,
			origin:        0,
			pos:           0,
			rule:          ruleRef{defName: root.Name, altIndex: altIndex},
		}
		p.enqueue(seed, false)
	}

	for {
		id, ok := p.queue.popFront()
		if !ok {
			break
		}
		t := p.arena[id]
		if t.pos > p.maxPos {
			p.maxPos = t.pos
		}
		factor, done, ferr := p.nextFactor(t)
		if ferr != nil {
			return ferr
		}
		if done {
			p.complete(t)
			continue
		}
		if factor.IsTerminal() {
			p.scan(t, factor)
		} else if err := p.predict(t, factor); err != nil {
			return err
		}
	}

	if !p.accepted(root.Name) {
		return ixerr.NewDynamic("no complete parse", p.maxPos, input)
	}
	return nil
}

// nextFactor returns the factor just after t's dot, or done=true if the
// dot has reached the end of t's rule.
func (p *Parser) nextFactor(t *Task) (grammar.Factor, bool, error) {
	def, err := p.g.GetDefinition(t.rule.defName)
	if err != nil {
		return grammar.Factor{}, false, err
	}
	alt := def.Alternatives[t.rule.altIndex]
	dot := len(t.matches)
	if dot >= len(alt.Factors) {
		return grammar.Factor{}, true, nil
	}
	return alt.Factors[dot], false, nil
}

// scan implements the Scanner step: if the terminal at the
// dot accepts the current input rune, advance; otherwise this branch dies
// silently — a scanner mismatch is never an error.
func (p *Parser) scan(t *Task, factor grammar.Factor) {
	if t.pos >= len(p.input) {
		return
	}
	ch := p.input[t.pos]
	if !factor.Lit.Accept(ch) {
		return
	}
	matches := appendMatch(t.matches, termMatch(ch, t.pos+1, factor.TMark))
	next := &Task{
		name:          t.name,
		effectiveMark: t.effectiveMark,
		origin:        t.origin,
		pos:           t.pos + 1,
		rule:          t.rule,
		matches:       matches,
	}
	p.enqueue(next, false)
}

// predict implements the Predictor step: register t under
// the continuation index, then seed a fresh item per alternative of the
// referenced definition.
//
// Because this engine drains a single shared queue rather than iterating
// an explicit per-position set to a fixpoint, a nonterminal can complete
// (including via an ε-production) before every item that will ever want to
// consume it has registered itself as a continuation. To keep this
// order-independent, predict also checks whether the referenced
// definition has already completed at this exact origin and, if so,
// immediately applies the same advance completion would have applied —
// generalizing gorgo's own nullable-only special case in its predictor
// (see lr/earley/earley.go's DerivesEpsilon check) to any already-completed
// match, not only epsilon ones, since this engine has no separate
// DerivesEpsilon precomputation to lean on.
func (p *Parser) predict(t *Task, factor grammar.Factor) error {
	n := factor.Name
	p.continuation[n] = append(p.continuation[n], t.id)

	for _, cid := range p.completedByName[n] {
		c := p.arena[cid]
		if c.origin == t.pos {
			p.advance(t, c)
		}
	}

	def, err := p.g.GetDefinition(n)
	if err != nil {
		return err
	}
	effMark := effectiveMark(def.Mark, factor.Mark)
	for altIndex := range def.Alternatives {
		item := &Task{
			name:          n,
			effectiveMark: effMark,
			origin:        t.pos,
			pos:           t.pos,
			rule:          ruleRef{defName: n, altIndex: altIndex},
		}
		p.enqueue(item, true)
	}
	return nil
}

// complete implements the Completer step: record t in the
// completed trace, then advance every item registered as waiting for
// t.name whose pos matches t's origin.
func (p *Parser) complete(t *Task) {
	p.completedTrace = append(p.completedTrace, t.id)
	p.completedByName[t.name] = append(p.completedByName[t.name], t.id)
	for _, cid := range p.continuation[t.name] {
		c := p.arena[cid]
		if c.pos == t.origin {
			p.advance(c, t)
		}
	}
}

// advance clones parent with its dot moved one factor past a nonterminal
// completion, recording child's name/end/mark in the new item's match
// history.
func (p *Parser) advance(parent, child *Task) {
	matches := appendMatch(parent.matches, nonTermMatch(child.name, child.pos, child.effectiveMark))
	next := &Task{
		name:          parent.name,
		effectiveMark: parent.effectiveMark,
		origin:        parent.origin,
		pos:           child.pos,
		rule:          parent.rule,
		matches:       matches,
	}
	p.enqueue(next, false)
}

func appendMatch(matches []MatchRec, m MatchRec) []MatchRec {
	out := make([]MatchRec, len(matches)+1)
	copy(out, matches)
	out[len(matches)] = m
	return out
}

// enqueue assigns item an arena id and pushes it onto the queue, unless an
// item with an equal dedup signature already exists — mandatory for
// termination on left-recursive and nullable grammars.
func (p *Parser) enqueue(item *Task, front bool) {
	key := dedupSignature(item)
	if _, exists := p.dedup[key]; exists {
		return
	}
	item.id = len(p.arena)
	p.arena = append(p.arena, item)
	p.dedup[key] = item.id
	if front {
		p.queue.pushFront(item.id)
	} else {
		p.queue.pushBack(item.id)
	}
}

// dedupFields is hashed with github.com/cnf/structhash to produce the
// dedup signature, exactly the way gorgo's own lr/earley/earley.go hash()
// helper uses structhash — there for backlink keys, here for full
// item-identity keys: (name, effective mark, origin, pos, dot signature).
type dedupFields struct {
	Name     string
	Mark     grammar.Mark
	Origin   int
	Pos      int
	DefName  string
	AltIndex int
	Dot      int
}

func dedupSignature(t *Task) string {
	h, err := structhash.Hash(dedupFields{
		Name:     t.name,
		Mark:     t.effectiveMark,
		Origin:   t.origin,
		Pos:      t.pos,
		DefName:  t.rule.defName,
		AltIndex: t.rule.altIndex,
		Dot:      len(t.matches),
	}, 1)
	if err != nil {
		panic(err)
	}
	return h
}

// accepted reports whether the completed trace contains an item with
// name==rootName, origin=0, pos=|input|.
func (p *Parser) accepted(rootName string) bool {
	for _, id := range p.completedByName[rootName] {
		t := p.arena[id]
		if t.origin == 0 && t.pos == len(p.input) {
			return true
		}
	}
	return false
}

// Find returns the first completed item in arena order matching
// (name, origin, end), for the tree walker's "pick any completed item"
// step on an ambiguous grammar. Resolution is thus "first inserted, in a
// fixed build's arena order," which is deterministic for a fixed
// grammar/input but not otherwise a promised tree shape.
func (p *Parser) Find(name string, origin, end int) (CompletedItem, bool) {
	for _, id := range p.completedByName[name] {
		t := p.arena[id]
		if t.origin == origin && t.pos == end {
			return t, true
		}
	}
	return nil, false
}

// RootName returns the grammar's root definition name.
func (p *Parser) RootName() string {
	return p.g.RootDefinitionName()
}

// InputLen returns the length (in runes) of the last input Parse ran on.
func (p *Parser) InputLen() int {
	return len(p.input)
}
