// Command ixml is the command-line front end for the iXML recognizer:
// parse a grammar and an input, run an inline test, run a whole catalog of
// tests, or drop into an interactive REPL. Built on
// github.com/spf13/cobra, following dhamidi-sai's cmd/sai root-command
// shape (one cobra.Command per subcommand, persistent flags on the root).
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/ixml/internal/config"
	"github.com/npillmayer/ixml/internal/xlog"
)

var (
	traceLevel string
	noColor    bool
	cfg        config.Config
)

func tracer() tracing.Trace {
	return xlog.Select("ixml.cmd")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ixml",
		Short: "Invisible XML grammar compiler and recognizer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initEngine()
		},
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized suite output")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTestCmd())
	rootCmd.AddCommand(newSuiteCmd())
	rootCmd.AddCommand(newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initEngine loads .ixmlrc.toml (if present), merges in CLI flags, and
// wires up tracing, mirroring gorgo's REPL setup
// (gtrace.SyntaxTracer = gologadapter.New()).
func initEngine() error {
	fileCfg, err := config.Load(".ixmlrc.toml")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = fileCfg.Merge(traceLevel, noColor)

	xlog.Init(tracing.TraceLevelFromString(cfg.Trace))

	if cfg.NoColor {
		pterm.DisableColor()
	}
	return nil
}
