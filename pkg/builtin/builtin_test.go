package builtin

import (
	"testing"

	"github.com/grauwen/utl-x-sub010/pkg/value"
	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPath(t *testing.T) {
	root := value.NewValue(map[string]any{
		"user": map[string]any{
			"profile": map[string]any{"name": "Alice"},
		},
	})

	v, err := Call("getPath", root, value.String("user.profile.name"))
	require.NoError(t, err)
	autogold.Expect(value.String("Alice")).Equal(t, v)

	v, err = Call("getPath", root, value.String("user.profile.missing"))
	require.NoError(t, err)
	assert.Equal(t, value.NullKind, v.Kind())

	v, err = Call("getPath", root, value.String("user.profile.missing"), value.String("fallback"))
	require.NoError(t, err)
	autogold.Expect(value.String("fallback")).Equal(t, v)

	// segment-array path form resolves identically
	v, err = Call("getPath", root, value.Array{
		value.String("user"),
		value.String("profile"),
		value.String("name"),
	})
	require.NoError(t, err)
	autogold.Expect(value.String("Alice")).Equal(t, v)
}

func TestGetPathArity(t *testing.T) {
	root := &value.Object{}
	var countErr *value.ArgumentCountError

	_, err := Call("getPath", root)
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, "getPath", countErr.Function)
	assert.Equal(t, "2 to 3", countErr.Expected)
	assert.Equal(t, 1, countErr.Actual)
	assert.Contains(t, countErr.Hint, "getPath(value, path, default?)")

	_, err = Call("getPath", root, root, root, root)
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 4, countErr.Actual)
}

func TestSetPath(t *testing.T) {
	result, err := Call("setPath", &value.Object{}, value.String("a.b.c"), value.Number("123"))
	require.NoError(t, err)
	assert.True(t, value.Equals(result, value.NewValue(map[string]any{
		"a": map[string]any{"b": map[string]any{"c": 123}},
	})))
}

func TestSetPathBinaryPath(t *testing.T) {
	var typeErr *value.ArgumentTypeError
	_, err := Call("setPath", &value.Object{}, value.NewBinary([]byte{1}), value.Number("1"))
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "setPath", typeErr.Function)
	assert.Equal(t, value.BinaryKind, typeErr.Actual)
}

func TestSetPathArity(t *testing.T) {
	var countErr *value.ArgumentCountError
	_, err := Call("setPath", &value.Object{}, value.String("a"))
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, "3", countErr.Expected)
}

func TestConcatVariadic(t *testing.T) {
	v, err := Call("concat", value.String("a"), value.String("b"), value.String("c"), value.String("d"))
	require.NoError(t, err)
	autogold.Expect(value.String("abcd")).Equal(t, v)

	var countErr *value.ArgumentCountError
	_, err = Call("concat")
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, "1 or more", countErr.Expected)
}

func TestMapTreeBuiltin(t *testing.T) {
	double := &value.Func{
		Name:   "double",
		Params: []string{"node", "path"},
		Body: func(args []value.Value) (value.Value, error) {
			if n, ok := args[0].(value.Number); ok {
				return n.Add(n)
			}
			return args[0], nil
		},
	}

	result, err := Call("mapTree", value.NewValue(map[string]any{
		"a": 1,
		"b": map[string]any{"c": 2},
	}), double)
	require.NoError(t, err)
	assert.True(t, value.Equals(result, value.NewValue(map[string]any{
		"a": 2,
		"b": map[string]any{"c": 4},
	})))
}

func TestUnknownFunction(t *testing.T) {
	_, err := Call("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

func TestLookupCallable(t *testing.T) {
	fn, ok := Lookup("isEmpty")
	require.True(t, ok)
	assert.Equal(t, value.FuncKind, fn.Kind())

	v, err := value.Call(fn, value.String(""))
	require.NoError(t, err)
	autogold.Expect(value.Boolean(true)).Equal(t, v)

	_, err = value.Call(fn)
	var countErr *value.ArgumentCountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, "isEmpty", countErr.Function)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "getPath")
	assert.Contains(t, names, "deepMerge")
	assert.Contains(t, names, "mapTree")
	assert.True(t, sortedStrings(names))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestDispatchRoundTrip(t *testing.T) {
	// the registry and the direct API agree
	obj := value.NewValue(map[string]any{"a": 1})

	fromRegistry, err := Call("invert", obj)
	require.NoError(t, err)
	direct, err := value.Invert(obj)
	require.NoError(t, err)
	assert.True(t, value.Equals(fromRegistry, direct))
}
