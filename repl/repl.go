package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/minlisp/minlisp/lisp"
	"github.com/minlisp/minlisp/parser"
)

// RunRepl runs an interactive read-eval-print loop against env until the
// input stream is closed.  Incomplete forms continue onto subsequent lines;
// Ctrl-C discards the pending input.
func RunRepl(env *lisp.LEnv, prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := "  "

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			break
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		exprs, err := parser.ParseProgram("repl", line)
		if err != nil {
			if parser.IsIncomplete(err) {
				// ReadSlice may reuse its buffer on the next read.
				buf = append([]byte(nil), line...)
				rl.SetPrompt(contPrompt)
				continue
			}
			if lisp.ErrorCondition(err) != parser.CondEmptyInput {
				errln(err)
			}
			continue
		}
		for _, expr := range exprs {
			v := env.Eval(expr)
			if v.Type == lisp.LError {
				errln(lisp.GoError(v))
				break
			}
			fmt.Println(lisp.PrintStr(v, true))
		}
	}
	if err != io.EOF && err != readline.ErrInterrupt {
		errln(err)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
