package grammar

import "fmt"

// RuleContext carries a user-defined rule's name plus a monotonically
// increasing counter used to mint stable, deterministic names for rules
// synthesized while desugaring that rule's body. One context exists per
// user-defined rule (the reflector in package ixml creates one per <rule>
// element, in document order); its counter state never leaks across rules.
//
// Synthesized names have the form "--<rulename>.<hint><n>", e.g.
// "--doc.opt0". Two independent builds of the same grammar, applying Define
// calls in the same order, mint identical names — this determinism is a
// hard contract, even though the recognizer itself never depends on the
// naming scheme.
type RuleContext struct {
	name    string
	counter int
}

// NewRuleContext creates a context scoped to the rule named name.
func NewRuleContext(name string) *RuleContext {
	return &RuleContext{name: name}
}

// Name returns the user-defined rule name this context is scoped to.
func (c *RuleContext) Name() string {
	return c.name
}

// Mint returns the next deterministic synthesized name for the given hint
// ("opt", "rep0", "rep1", "alts", ...).
func (c *RuleContext) Mint(hint string) string {
	n := c.counter
	c.counter++
	return fmt.Sprintf("--%s.%s%d", c.name, hint, n)
}
