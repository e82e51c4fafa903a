package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/ixml/earley"
	"github.com/npillmayer/ixml/grammar"
	"github.com/npillmayer/ixml/ixerr"
	"github.com/npillmayer/ixml/ixml"
	"github.com/npillmayer/ixml/tree"
)

func newReplCmd() *cobra.Command {
	var initGrammar string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Load a grammar once, then interactively test inputs against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(initGrammar)
		},
	}
	cmd.Flags().StringVar(&initGrammar, "grammar", "", "grammar file to load at startup")
	return cmd
}

// session holds the one grammar the REPL keeps loaded across commands, so
// the user can type input strings repeatedly without recompiling the
// grammar each time — the interactive counterpart of the "test" entry
// point.
type session struct {
	g *grammar.Grammar
}

// runRepl is the interactive loop, ported in shape from gorgo's
// terex/terexlang/trepl Intp.REPL: a readline.Instance feeding lines one
// at a time into eval, quitting on io.EOF.
func runRepl(initGrammar string) error {
	pterm.Info.Println("Welcome to the ixml REPL")
	pterm.Info.Println(`Commands: ":load <file>", ":quit"; anything else is treated as input to recognize`)

	rl, err := readline.New("ixml> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return err
	}
	defer rl.Close()

	sess := &session{}
	if initGrammar != "" {
		if err := sess.load(initGrammar); err != nil {
			pterm.Error.Println(ixerr.Format(err))
		}
	}

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := sess.eval(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func (s *session) eval(line string) (quit bool) {
	switch {
	case line == ":quit" || line == ":q":
		return true
	case strings.HasPrefix(line, ":load "):
		file := strings.TrimSpace(strings.TrimPrefix(line, ":load "))
		if err := s.load(file); err != nil {
			pterm.Error.Println(ixerr.Format(err))
		} else {
			pterm.Success.Println("grammar loaded: " + file)
		}
		return false
	}
	if s.g == nil {
		pterm.Error.Println("no grammar loaded; use :load <file> first")
		return false
	}
	out, err := s.recognize(line)
	if err != nil {
		pterm.Error.Println(ixerr.Format(err))
		return false
	}
	fmt.Println(out)
	return false
}

func (s *session) load(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	g, err := ixml.ParseGrammar(string(data))
	if err != nil {
		return err
	}
	s.g = g
	return nil
}

func (s *session) recognize(input string) (string, error) {
	p := earley.NewParser(s.g)
	runes := []rune(input)
	if err := p.Parse(runes); err != nil {
		return "", err
	}
	root, err := s.g.RootDefinition()
	if err != nil {
		return "", err
	}
	store := tree.Reconstruct(p, p.RootName(), root.Mark, p.InputLen())
	return tree.Serialize(store, store.Root()), nil
}
