package earley

import "fmt"

// TraceEntry is one line of diagnostic output describing a single item in
// the arena, in the spirit of gorgo's dumpState/itemSetString helpers
// (lr/earley/debug.go), but rendered once over the whole arena instead of
// per input-position state, since this engine has no such per-position
// state list.
type TraceEntry struct {
	ID     int
	Name   string
	Origin int
	Pos    int
	Dot    int
}

func (e TraceEntry) String() string {
	return fmt.Sprintf("[%3d] %s (%d…%d) dot=%d", e.ID, e.Name, e.Origin, e.Pos, e.Dot)
}

// Trace returns a diagnostic snapshot of every item in the arena, in
// creation order. Intended for debugging a stuck grammar, not for
// production use.
func (p *Parser) Trace() []TraceEntry {
	entries := make([]TraceEntry, len(p.arena))
	for i, t := range p.arena {
		entries[i] = TraceEntry{ID: t.id, Name: t.name, Origin: t.origin, Pos: t.pos, Dot: len(t.matches)}
	}
	return entries
}
