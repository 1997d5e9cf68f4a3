// Command glox is the CLI front end for the Lox tree-walking interpreter:
// a default script runner, a REPL, and token/AST inspection subcommands,
// grounded on the teacher's cobra-based cli/main.go entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var noColor bool
	var watch bool

	rootCmd := &cobra.Command{
		Use:           "glox [script]",
		Short:         "A tree-walking interpreter for Lox",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			useColor := shouldUseColor(noColor)
			if len(args) == 0 {
				return runRepl(useColor)
			}
			if watch {
				return runWatch(args[0], useColor)
			}
			ok, err := runFile(args[0], useColor)
			if err != nil {
				return err
			}
			if !ok {
				os.Exit(65) // EX_DATAERR: the script produced a scan/parse/resolution/runtime diagnostic.
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "re-run the script whenever it changes on disk")

	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a Lox script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useColor := shouldUseColor(noColor)
			if watch {
				return runWatch(args[0], useColor)
			}
			ok, err := runFile(args[0], useColor)
			if err != nil {
				return err
			}
			if !ok {
				os.Exit(65)
			}
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Lox REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(shouldUseColor(noColor))
		},
	}

	tokensCmd := &cobra.Command{
		Use:   "tokens <script>",
		Short: "Print the token stream produced by the scanner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args[0], shouldUseColor(noColor))
		},
	}

	var astFormat string
	astCmd := &cobra.Command{
		Use:   "ast <script>",
		Short: "Print the parsed syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(args[0], astFormat, shouldUseColor(noColor))
		},
	}
	astCmd.Flags().StringVar(&astFormat, "format", "text", "output format: text or cbor")

	rootCmd.AddCommand(runCmd, replCmd, tokensCmd, astCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorize("Error: ", colorRed, shouldUseColor(noColor))+err.Error())
		os.Exit(1)
	}
}
