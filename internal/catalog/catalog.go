// Package catalog loads test-catalog files for the "ixml suite" command: a
// flat text format of "grammar:"/"input:"/"expect:" directive lines
// separated by "---", tokenized with github.com/timtadh/lexmachine (see
// lr/scanner/lexmach for the shape this is ported from: a compiled DFA
// lexer driven line by line, with Skip/MakeToken-style actions).
//
// This sits outside the recognizer's core scope; it is a thin, real
// component, not a stub.
package catalog

import (
	"os"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("ixml.catalog")
}

// ExpectError is the sentinel "expect:" value meaning the case is expected
// to fail recognition (a StaticError or DynamicError), rather than produce
// a tree.
const ExpectError = "error"

// Case is one test entry: recognize Input against the grammar compiled
// from Grammar, and compare the serialized result tree against Expect
// (or, if Expect == ExpectError, expect recognition to fail). A non-empty
// Skip or Todo reason takes precedence: Skip means the case is excluded
// from the run entirely, Todo means it is run but a failure is expected
// and reported separately from a regular fail.
type Case struct {
	Grammar string
	Input   string
	Expect  string
	Skip    string
	Todo    string
}

// Catalog is an ordered list of Cases, as read from one catalog file.
type Catalog struct {
	Cases []Case
}

const (
	tokGrammar = iota
	tokInput
	tokExpect
	tokSkip
	tokTodo
	tokSep
)

func action(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

func newLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`grammar:[^\n]*`), action(tokGrammar))
	lx.Add([]byte(`input:[^\n]*`), action(tokInput))
	lx.Add([]byte(`expect:[^\n]*`), action(tokExpect))
	lx.Add([]byte(`skip:[^\n]*`), action(tokSkip))
	lx.Add([]byte(`todo:[^\n]*`), action(tokTodo))
	lx.Add([]byte(`---`), action(tokSep))
	lx.Add([]byte(`#[^\n]*`), skip)
	lx.Add([]byte(`( |\t|\r|\n)+`), skip)
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	return lx, nil
}

// directiveValue strips the "name:" prefix and surrounding whitespace, and
// one layer of double quotes if present.
func directiveValue(lexeme string) string {
	i := strings.IndexByte(lexeme, ':')
	v := strings.TrimSpace(lexeme[i+1:])
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return v
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse parses catalog source text. A "grammar:" directive sets the
// catalog-wide default grammar path; it may be repeated mid-file to
// switch grammars for subsequent cases. Each "---" line closes the
// current case (a trailing "---" before EOF is optional).
func Parse(src string) (*Catalog, error) {
	lx, err := newLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lx.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}

	cat := &Catalog{}
	var defaultGrammar string
	cur := Case{}
	dirty := false

	closeCase := func() {
		if !dirty {
			return
		}
		if cur.Grammar == "" {
			cur.Grammar = defaultGrammar
		}
		cat.Cases = append(cat.Cases, cur)
		cur = Case{}
		dirty = false
	}

	for {
		tok, err, eof := scan.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				tracer().Errorf("catalog: unconsumed input: %s", ui.Error())
				scan.TC = ui.FailTC
				continue
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		switch t.Type {
		case tokGrammar:
			defaultGrammar = directiveValue(string(t.Lexeme))
			cur.Grammar = defaultGrammar
			dirty = true
		case tokInput:
			cur.Input = directiveValue(string(t.Lexeme))
			dirty = true
		case tokExpect:
			cur.Expect = directiveValue(string(t.Lexeme))
			dirty = true
		case tokSkip:
			cur.Skip = directiveValue(string(t.Lexeme))
			dirty = true
		case tokTodo:
			cur.Todo = directiveValue(string(t.Lexeme))
			dirty = true
		case tokSep:
			closeCase()
		}
	}
	closeCase()
	return cat, nil
}
