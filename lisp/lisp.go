package lisp

import (
	"fmt"

	"github.com/minlisp/minlisp/parser/token"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNil
	LBool
	LNumber
	LSymbol
	LString
	LKeyword
	LList
	LVector
	LMap
	LFun
	LError
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNil:     "nil",
	LBool:    "bool",
	LNumber:  "number",
	LSymbol:  "symbol",
	LString:  "string",
	LKeyword: "keyword",
	LList:    "list",
	LVector:  "vector",
	LMap:     "map",
	LFun:     "function",
	LError:   "error",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LBuiltin is a Go function that executes a lisp function.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value.  An LVal is immutable once constructed -- the
// evaluator rebuilds containers instead of editing cells in place and all
// mutation in the language happens through LEnv bindings.
type LVal struct {
	Type   LType
	Source *token.Location

	Bool  bool
	Int   int64
	Str   string // symbol name, string contents, or keyword name
	Cells []*LVal
	Err   error

	// Variables needed for function values
	Builtin LBuiltin
	FID     string
	Formals *LVal
	Body    *LVal
	Env     *LEnv
}

// Nil returns an LVal representing nil, the canonical absent value.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{Type: LBool, Bool: b}
}

// Number returns an LVal representing the integer x.
func Number(x int64) *LVal {
	return &LVal{Type: LNumber, Int: x}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Str: s}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{Type: LString, Str: s}
}

// Keyword returns an LVal representing the keyword :s.  The name s does not
// contain the leading colon.
func Keyword(s string) *LVal {
	return &LVal{Type: LKeyword, Str: s}
}

// List returns an LVal representing a list containing the given cells.
func List(cells []*LVal) *LVal {
	return &LVal{Type: LList, Cells: cells}
}

// Vector returns an LVal representing a vector containing the given cells.
func Vector(cells []*LVal) *LVal {
	return &LVal{Type: LVector, Cells: cells}
}

// Map returns an LVal representing a map literal.  The cells alternate keys
// and values and their order is preserved.  Duplicate keys are legal and all
// pairs are retained.
func Map(cells []*LVal) *LVal {
	if len(cells)%2 != 0 {
		panic("odd number of map cells")
	}
	return &LVal{Type: LMap, Cells: cells}
}

// Fun returns an LVal representing a builtin function.
func Fun(fid string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		FID:     fid,
		Builtin: fn,
	}
}

// Lambda returns an LVal representing a function closure with the given
// formal parameters and body.  The closure resolves free variables through
// env, the environment active at its creation.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LFun,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	return &LVal{Type: LError, Err: err}
}

// Errorf returns an error LVal with a formatted message and no condition.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{Type: LError, Err: &LispError{Message: fmt.Sprintf(format, v...)}}
}

// ErrorConditionf returns an error LVal tagged with a condition name that
// callers can test for independent of the message text.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{Type: LError, Err: &LispError{
		Condition: condition,
		Message:   fmt.Sprintf(format, v...),
	}}
}

// IsNil returns true if v is the nil value.
func (v *LVal) IsNil() bool {
	return v.Type == LNil
}

// IsTruthy returns the truthiness of v used by conditional forms.  Every
// value is truthy except nil and false.
func (v *LVal) IsTruthy() bool {
	return !(v.Type == LNil || (v.Type == LBool && !v.Bool))
}

// Len returns the number of cells in a sequence value.
func (v *LVal) Len() int {
	return len(v.Cells)
}

func (v *LVal) String() string {
	return PrintStr(v, true)
}

// Equal computes structural equality of two values.  Lists and vectors
// holding equal element sequences are equal to each other regardless of
// kind.  Maps are equal when their pairs are in some correspondence.
// Functions are never equal to anything, including themselves.
func Equal(a, b *LVal) bool {
	if a.Type == LFun || b.Type == LFun {
		return false
	}
	if isSeq(a) && isSeq(b) {
		return equalSeq(a, b)
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LNil:
		return true
	case LBool:
		return a.Bool == b.Bool
	case LNumber:
		return a.Int == b.Int
	case LSymbol, LString, LKeyword:
		return a.Str == b.Str
	case LMap:
		return equalMap(a, b)
	default:
		return false
	}
}

func isSeq(v *LVal) bool {
	return v.Type == LList || v.Type == LVector
}

func equalSeq(a, b *LVal) bool {
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		if !Equal(a.Cells[i], b.Cells[i]) {
			return false
		}
	}
	return true
}

func equalMap(a, b *LVal) bool {
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	matched := make([]bool, len(b.Cells)/2)
pairs:
	for i := 0; i < len(a.Cells); i += 2 {
		for j := 0; j < len(b.Cells); j += 2 {
			if matched[j/2] {
				continue
			}
			if Equal(a.Cells[i], b.Cells[j]) && Equal(a.Cells[i+1], b.Cells[j+1]) {
				matched[j/2] = true
				continue pairs
			}
		}
		return false
	}
	return true
}
