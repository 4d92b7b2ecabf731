package lisp

// VarArgSymbol is the symbol that marks the trailing variadic parameter in a
// function's list of formal arguments.
const VarArgSymbol = "&"

// DebugEvalSymbol is the sentinel symbol that enables evaluation tracing
// when bound to a truthy value in the current environment chain.
const DebugEvalSymbol = "DEBUG-EVAL"
