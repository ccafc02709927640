package util

import "fmt"

// Kind enumerates the error taxonomy every pass and evaluator reports
// through. Callers recover a *CompileError with errors.As and compare its
// Kind field against the exported values below.
type Kind int

const (
	// VarNotDeclared is raised by C-flat's CheckForm when an operand refers
	// to a name absent from the enclosing function's locals/formals.
	VarNotDeclared Kind = iota
	// VarNotDefined is raised by evaluators and uniquify on a free variable
	// or a use before its binder.
	VarNotDefined
	// FunctionNotDefined is raised by uniquify and evaluators on a call to
	// an unknown function name.
	FunctionNotDefined
	// WrongArity is raised by evaluators when a call's argument count
	// mismatches the callee's formals.
	WrongArity
	// IllFormed is raised by checkForm on any IR whose structural
	// invariants are violated.
	IllFormed
	// UnsupportedForm is raised by select-instructions when call inlining
	// nests deeper than its depth bound.
	UnsupportedForm
)

func (k Kind) String() string {
	switch k {
	case VarNotDeclared:
		return "VarNotDeclared"
	case VarNotDefined:
		return "VarNotDefined"
	case FunctionNotDefined:
		return "FunctionNotDefined"
	case WrongArity:
		return "WrongArity"
	case IllFormed:
		return "IllFormed"
	case UnsupportedForm:
		return "UnsupportedForm"
	default:
		return "Unknown"
	}
}

// CompileError is the single diagnostic type surfaced by every evaluator,
// pass and checkForm predicate in the pipeline.
type CompileError struct {
	Kind  Kind   // Error category, see Kind.
	Stage string // Name of the IR stage that raised the error, e.g. "uniquify".
	Name  string // Offending name or instruction text, when applicable.
	Err   error  // Wrapped underlying error, if any.
}

func (e *CompileError) Error() string {
	if e.Name != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s %q: %s", e.Stage, e.Kind, e.Name, e.Err)
		}
		return fmt.Sprintf("%s: %s %q", e.Stage, e.Kind, e.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Kind)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// NewError constructs a CompileError for the given stage and offending name.
func NewError(kind Kind, stage, name string) *CompileError {
	return &CompileError{Kind: kind, Stage: stage, Name: name}
}
