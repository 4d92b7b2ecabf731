package cmd

import (
	"fmt"
	"os"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Run: func(cmd *cobra.Command, args []string) {
		env := lisp.NewEnv(nil)
		lerr := lisp.InitializeUserEnv(env)
		if lerr.Type == lisp.LError {
			fmt.Fprintln(os.Stderr, lisp.GoError(lerr))
			os.Exit(1)
		}
		repl.RunRepl(env, replPrompt)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "> ", "Prompt displayed before each expression")
}
