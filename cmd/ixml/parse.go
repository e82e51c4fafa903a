package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/ixml/earley"
	"github.com/npillmayer/ixml/ixerr"
	"github.com/npillmayer/ixml/ixml"
	"github.com/npillmayer/ixml/tree"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <grammar-file> <input-file>",
		Short: "Recognize an input file against a grammar file and print the result tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammarSrc, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			inputSrc, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			out, err := runParse(string(grammarSrc), string(inputSrc))
			if err != nil {
				fmt.Fprintln(os.Stderr, ixerr.Format(err))
				os.Exit(2)
			}
			fmt.Println(out)
			return nil
		},
	}
}

// runParse compiles grammarSrc via ixml.ParseGrammar, recognizes input
// against it, and serializes the resulting tree. Any failure already comes
// back as an *ixerr.StaticError (grammar-level) or *ixerr.DynamicError
// (input-level) — both format themselves via their Error() method, so the
// caller can print err directly.
func runParse(grammarSrc, input string) (string, error) {
	g, err := ixml.ParseGrammar(grammarSrc)
	if err != nil {
		return "", err
	}
	p := earley.NewParser(g)
	runes := []rune(input)
	if err := p.Parse(runes); err != nil {
		return "", err
	}
	root, err := g.RootDefinition()
	if err != nil {
		return "", err
	}
	store := tree.Reconstruct(p, p.RootName(), root.Mark, p.InputLen())
	return tree.Serialize(store, store.Root()), nil
}
