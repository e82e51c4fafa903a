// Package ixerr defines the two error kinds surfaced by the ixml engine:
// StaticError for grammar-level problems and DynamicError for input-level
// ones.
//
// The shape is deliberately tiny, following nihei9-vartan's error package
// (a struct wrapping a cause/reason, nothing more) and its
// spec/syntax_error.go (sentinel SyntaxError values built once, compared
// and wrapped rather than constructed ad hoc everywhere).
package ixerr

import (
	"fmt"
	"strings"
)

// StaticError reports a problem discovered before or during recognition
// that is inherent to the grammar itself: an unresolved nonterminal
// reference, an empty grammar, or a grammar with no determinable root.
type StaticError struct {
	Reason string
}

func (e *StaticError) Error() string {
	return fmt.Sprintf("grammar error: %s", e.Reason)
}

// NewStatic builds a StaticError from a format string.
func NewStatic(format string, args ...interface{}) *StaticError {
	return &StaticError{Reason: fmt.Sprintf(format, args...)}
}

// DynamicError reports a problem discovered while recognizing input: no
// alternative of the root definition completed across the whole input.
// Pos is the farthest input position any item reached, for diagnostics.
type DynamicError struct {
	Reason string
	Pos    int
	Input  []rune
}

func (e *DynamicError) Error() string {
	if e.Input == nil {
		return fmt.Sprintf("parse error: %s", e.Reason)
	}
	return fmt.Sprintf("parse error: %s at position %d\n%s", e.Reason, e.Pos, e.context())
}

// context renders a ±10-character window around Pos with a caret under it.
func (e *DynamicError) context() string {
	const radius = 10
	lo := e.Pos - radius
	if lo < 0 {
		lo = 0
	}
	hi := e.Pos + radius
	if hi > len(e.Input) {
		hi = len(e.Input)
	}
	window := string(e.Input[lo:hi])
	var caret strings.Builder
	for i := lo; i < e.Pos; i++ {
		caret.WriteByte(' ')
	}
	caret.WriteByte('^')
	return window + "\n" + caret.String()
}

// NewDynamic builds a DynamicError with input context attached.
func NewDynamic(reason string, pos int, input []rune) *DynamicError {
	return &DynamicError{Reason: reason, Pos: pos, Input: input}
}

// Format renders any error for CLI output. StaticError and DynamicError
// already implement Error() in the single-line-reason(+position+context)
// shape; Format exists so call sites have one name to reach for regardless
// of which of the two (or a plain error) they hold.
func Format(err error) string {
	return err.Error()
}
