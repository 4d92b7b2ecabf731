package lisp

// Conditions used by error values produced during evaluation.
const (
	CondUnboundSymbol = "unbound-symbol"
	CondNotAFunction  = "not-a-function"
	CondDivideByZero  = "divide-by-zero"
)

// LispError implements the error interface so that error LVals can cross
// package boundaries as ordinary Go errors.  The Condition names the failure
// class while Message carries human-readable detail.
type LispError struct {
	Condition string
	Message   string
}

// Error implements the error interface.
func (e *LispError) Error() string {
	return e.Message
}

// GoError returns the Go error held by v, or nil if v is not an error value.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return v.Err
}

// ErrorCondition returns the condition tagged on err, or the empty string if
// err carries no condition.
func ErrorCondition(err error) string {
	if lerr, ok := err.(*LispError); ok {
		return lerr.Condition
	}
	return ""
}
