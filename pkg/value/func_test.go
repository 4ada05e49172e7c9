package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	add := &Func{
		Name:   "add",
		Params: []string{"a", "b"},
		Body: func(args []Value) (Value, error) {
			return args[0].(Number).Add(args[1].(Number))
		},
	}

	result, err := Call(add, Number("2"), Number("3"))
	require.NoError(t, err)
	assert.True(t, Equals(Number("5"), result))
}

func TestCallArityMismatch(t *testing.T) {
	add := &Func{
		Name:   "add",
		Params: []string{"a", "b"},
		Body:   identityBody,
	}

	_, err := Call(add, Number("1"))
	var countErr *ArgumentCountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, "add", countErr.Function)
	assert.Equal(t, "2", countErr.Expected)
	assert.Equal(t, 1, countErr.Actual)
	assert.Contains(t, countErr.Hint, "a, b")
}

func TestCallNonCallable(t *testing.T) {
	_, err := Call(String("not a func"))
	var opErr *InvalidOperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, StringKind, opErr.Kind)
}

func TestClosureCapture(t *testing.T) {
	captured := String("prefix-")
	prepend := &Func{
		Params: []string{"s"},
		Body: func(args []Value) (Value, error) {
			return Concat(captured, args[0])
		},
	}

	first, err := Call(prepend, String("a"))
	require.NoError(t, err)
	second, err := Call(prepend, String("b"))
	require.NoError(t, err)

	assert.True(t, Equals(String("prefix-a"), first))
	assert.True(t, Equals(String("prefix-b"), second))
}
