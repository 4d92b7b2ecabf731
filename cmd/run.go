package cmd

import (
	"fmt"
	"os"

	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		lerr := lisp.InitializeUserEnv(env)
		if lerr.Type == lisp.LError {
			fmt.Fprintln(os.Stderr, lisp.GoError(lerr))
			os.Exit(1)
		}
		for i := range srcs {
			exprs, err := parser.ParseProgram(srcs[i].name, srcs[i].text)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, expr := range exprs {
				v := env.Eval(expr)
				if v.Type == lisp.LError {
					fmt.Fprintln(os.Stderr, lisp.GoError(v))
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(lisp.PrintStr(v, true))
				}
			}
		}
	},
}

type runSource struct {
	name string
	text []byte
}

func runReadSources(args []string) ([]runSource, error) {
	srcs := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			srcs[i] = runSource{fmt.Sprintf("arg%d", i+1), []byte(args[i])}
		}
		return srcs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs[i] = runSource{path, b}
	}
	return srcs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
