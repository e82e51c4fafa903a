package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/ixml/ixerr"
)

func newTestCmd() *cobra.Command {
	var inline string
	cmd := &cobra.Command{
		Use:   "test <grammar-file> --input <string>",
		Short: "Recognize an inline input string against a grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammarSrc, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := runParse(string(grammarSrc), inline)
			if err != nil {
				fmt.Fprintln(os.Stderr, ixerr.Format(err))
				os.Exit(2)
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&inline, "input", "", "input string to recognize (required)")
	cmd.MarkFlagRequired("input")
	return cmd
}
