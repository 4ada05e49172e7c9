package value

import "fmt"

// ArgumentCountError reports an arity mismatch at a function boundary.
// Expected is textual so ranges ("2 to 3") and exact counts read the same.
type ArgumentCountError struct {
	Function string
	Expected string
	Actual   int
	Hint     string
}

func (e *ArgumentCountError) Error() string {
	msg := fmt.Sprintf("%s: expected %s argument(s), got %d", e.Function, e.Expected, e.Actual)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (%s)", e.Hint)
	}
	return msg
}

// ArgumentTypeError reports an operand of the wrong kind.
type ArgumentTypeError struct {
	Function string
	Expected string
	Actual   Kind
	Hint     string
}

func (e *ArgumentTypeError) Error() string {
	msg := fmt.Sprintf("%s: expected %s, got kind %s", e.Function, e.Expected, e.Actual)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (%s)", e.Hint)
	}
	return msg
}

// InvalidOperationError reports an operation applied to a kind that can
// never support it.
type InvalidOperationError struct {
	Operation string
	Kind      Kind
	Hint      string
}

func (e *InvalidOperationError) Error() string {
	msg := fmt.Sprintf("can not %s kind %s", e.Operation, e.Kind)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (%s)", e.Hint)
	}
	return msg
}
