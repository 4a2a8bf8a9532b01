// Command tern runs the tern scripting language: with no arguments it
// starts an interactive REPL, with one positional argument it runs that
// file as a script.
//
// Built on spf13/cobra so argument validation, usage text, and the
// `version`/`tokens` debug subcommands come for free rather than from a
// hand-rolled os.Args switch.
package main

import (
	"os"

	"github.com/kristofer/tern/internal/run"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	os.Exit(execute())
}

// execute builds and runs the root command, returning the process exit
// code: 0 on success, 64 on CLI misuse, 65 when a compile error was
// reported during a file run, 70 when a runtime error was reported
// during a file run. REPL mode always returns 0, regardless of how many
// lines inside it failed to compile or run.
func execute() int {
	exitCode := 0

	root := &cobra.Command{
		Use:          "tern [script]",
		Short:        "tern is a tree-walking interpreter for a small scripting language",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				run.REPL(os.Stdin, os.Stdout, os.Stderr)
				return nil
			}
			code, err := run.File(args[0], os.Stdout, os.Stderr)
			exitCode = code
			return err
		},
	}
	root.SetArgs(os.Args[1:])

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the tern version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("tern version " + version)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "tokens <file>",
		Short: "Scan a file and print its token stream (debug tooling, not a language feature)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run.Tokens(args[0], cmd.OutOrStdout())
		},
	})

	if err := root.Execute(); err != nil {
		if err == errTooManyArgs {
			os.Stderr.WriteString("Usage: tern [script]\n")
			return 64
		}
		return 1
	}
	return exitCode
}

var errTooManyArgs = usageError("too many arguments")

type usageError string

func (e usageError) Error() string { return string(e) }
