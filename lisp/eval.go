package lisp

import "fmt"

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Errors encountered during any sub-evaluation short-circuit the
// containing evaluation immediately.
func (env *LEnv) Eval(v *LVal) *LVal {
	debug := env.debugEval()
	if debug {
		fmt.Fprintf(env.Runtime.Stderr, "EVAL: %s\n", PrintStr(v, true))
	}
	r := env.eval(v)
	if debug && r.Type != LError {
		fmt.Fprintf(env.Runtime.Stderr, "%s\n", PrintStr(r, true))
	}
	return r
}

func (env *LEnv) debugEval() bool {
	v, ok := env.Lookup(DebugEvalSymbol)
	return ok && v.IsTruthy()
}

func (env *LEnv) eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v.Str)
	case LList:
		if len(v.Cells) == 0 {
			return v
		}
		return env.evalSExpr(v)
	case LVector:
		cells, lerr := env.evalCells(v.Cells)
		if lerr != nil {
			return lerr
		}
		return Vector(cells)
	case LMap:
		return env.evalMap(v)
	default:
		// nil, bool, number, string, keyword, and function values are
		// self-evaluating.
		return v
	}
}

// evalSExpr evaluates a non-empty list.  A head symbol naming a special form
// is dispatched to the form's handler with unevaluated operands.  Any other
// list evaluates every element left to right and applies the head value.
func (env *LEnv) evalSExpr(s *LVal) *LVal {
	head := s.Cells[0]
	if head.Type == LSymbol {
		if op := lookupSpecialOp(head.Str); op != nil {
			return op.fun(env, List(s.Cells[1:]))
		}
	}
	cells, lerr := env.evalCells(s.Cells)
	if lerr != nil {
		return lerr
	}
	f := cells[0]
	if f.Type != LFun {
		return ErrorConditionf(CondNotAFunction, "not a function: %s", PrintStr(f, true))
	}
	return env.Call(f, List(cells[1:]))
}

func (env *LEnv) evalCells(cells []*LVal) ([]*LVal, *LVal) {
	out := make([]*LVal, len(cells))
	for i := range cells {
		out[i] = env.Eval(cells[i])
		if out[i].Type == LError {
			return nil, out[i]
		}
	}
	return out, nil
}

func (env *LEnv) evalMap(m *LVal) *LVal {
	// Keys pass through unevaluated; only values are evaluated.
	cells := make([]*LVal, len(m.Cells))
	for i := 0; i < len(m.Cells); i += 2 {
		cells[i] = m.Cells[i]
		v := env.Eval(m.Cells[i+1])
		if v.Type == LError {
			return v
		}
		cells[i+1] = v
	}
	return Map(cells)
}

// Call invokes the function fun with the list of evaluated arguments args.
// Closures are applied in a fresh scope whose parent is the environment
// captured at closure creation time, not the caller's environment.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	if fun.Builtin != nil {
		return fun.Builtin(env, args)
	}
	fenv := NewEnv(fun.Env)
	formals := fun.Formals.Cells
	i := 0
	for j := 0; j < len(formals); j++ {
		if formals[j].Str == VarArgSymbol {
			rest := make([]*LVal, len(args.Cells)-i)
			copy(rest, args.Cells[i:])
			fenv.Put(formals[j+1].Str, List(rest))
			return fenv.Eval(fun.Body)
		}
		if i < len(args.Cells) {
			fenv.Put(formals[j].Str, args.Cells[i])
			i++
		} else {
			// Unmatched fixed parameters bind to nil rather than erroring.
			fenv.Put(formals[j].Str, Nil())
		}
	}
	if i < len(args.Cells) {
		return Errorf("function expects %d arguments (got %d)", len(formals), len(args.Cells))
	}
	return fenv.Eval(fun.Body)
}
