package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Func is a first-class function value. Body is a Go closure over the
// bindings captured at definition time; those bindings must hold only
// immutable Values so invocation stays safe under concurrency.
type Func struct {
	Name   string
	Params []string
	Body   func(args []Value) (Value, error)
}

func (f *Func) Kind() Kind {
	return FuncKind
}

func (f *Func) name() string {
	if f.Name == "" {
		return "<anonymous>"
	}
	return f.Name
}

func (f *Func) Call(args []Value) (Value, error) {
	if len(args) != len(f.Params) {
		return nil, &ArgumentCountError{
			Function: f.name(),
			Expected: strconv.Itoa(len(f.Params)),
			Actual:   len(args),
			Hint:     fmt.Sprintf("declared parameters: (%s)", strings.Join(f.Params, ", ")),
		}
	}
	return f.Body(args)
}

func (f *Func) String() string {
	return fmt.Sprintf("%s(%s)", f.name(), strings.Join(f.Params, ", "))
}

func (f *Func) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("kind %s is not serializable", FuncKind)
}

type Caller interface {
	Call(args []Value) (Value, error)
}

func Call(v Value, args ...Value) (Value, error) {
	if caller, ok := v.(Caller); ok {
		return caller.Call(args)
	}
	return nil, &InvalidOperationError{
		Operation: "call",
		Kind:      v.Kind(),
		Hint:      "only func values can be called",
	}
}

var _ json.Marshaler = (*Func)(nil)
