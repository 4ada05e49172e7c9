// Package builtin exposes the core algebra as named stdlib entry points
// with the calling convention the transformation language uses: a literal
// ordered argument list, validated for arity before any structural work.
package builtin

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/grauwen/utl-x-sub010/pkg/path"
	"github.com/grauwen/utl-x-sub010/pkg/traverse"
	"github.com/grauwen/utl-x-sub010/pkg/value"
)

// Function is the uniform signature every entry point implements.
type Function func(args []value.Value) (value.Value, error)

type definition struct {
	name    string
	minArgs int
	maxArgs int // -1 means variadic
	hint    string
	fn      Function
}

var registry = map[string]*definition{}

func register(name string, minArgs, maxArgs int, hint string, fn Function) {
	registry[name] = &definition{
		name:    name,
		minArgs: minArgs,
		maxArgs: maxArgs,
		hint:    hint,
		fn:      fn,
	}
}

func init() {
	register("getPath", 2, 3, "getPath(value, path, default?)", getPath)
	register("setPath", 3, 3, "setPath(value, path, newValue)", setPath)
	register("deepMerge", 2, 2, "deepMerge(left, right)", deepMerge)
	register("deepMergeAll", 1, 1, "deepMergeAll(objects)", deepMergeAll)
	register("deepClone", 1, 1, "deepClone(value)", deepClone)
	register("invert", 1, 1, "invert(object)", invert)
	register("mapTree", 2, 2, "mapTree(value, transformer)", mapTree)
	register("isEmpty", 1, 1, "isEmpty(value)", isEmpty)
	register("isNotEmpty", 1, 1, "isNotEmpty(value)", isNotEmpty)
	register("contains", 2, 2, "contains(collection, item)", contains)
	register("filter", 2, 2, "filter(collection, predicate)", filter)
	register("concat", 1, -1, "concat(value, ...)", concat)
}

func (d *definition) checkArity(actual int) error {
	if actual >= d.minArgs && (d.maxArgs < 0 || actual <= d.maxArgs) {
		return nil
	}
	expected := strconv.Itoa(d.minArgs)
	if d.maxArgs < 0 {
		expected += " or more"
	} else if d.maxArgs != d.minArgs {
		expected += " to " + strconv.Itoa(d.maxArgs)
	}
	return &value.ArgumentCountError{
		Function: d.name,
		Expected: expected,
		Actual:   actual,
		Hint:     "usage: " + d.hint,
	}
}

// Call invokes a registered entry point by name.
func Call(name string, args ...value.Value) (value.Value, error) {
	def, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", name)
	}
	if err := def.checkArity(len(args)); err != nil {
		return nil, err
	}
	return def.fn(args)
}

// fn wraps a definition as a callable value so an evaluator can install
// entry points directly into a scope.
type fn struct {
	def *definition
}

func (f *fn) Kind() value.Kind {
	return value.FuncKind
}

func (f *fn) Call(args []value.Value) (value.Value, error) {
	if err := f.def.checkArity(len(args)); err != nil {
		return nil, err
	}
	return f.def.fn(args)
}

// Lookup returns the named entry point as a callable value.
func Lookup(name string) (value.Value, bool) {
	def, ok := registry[name]
	if !ok {
		return nil, false
	}
	return &fn{def: def}, true
}

// Names lists the registered entry points sorted.
func Names() []string {
	result := make([]string, 0, len(registry))
	for name := range registry {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func getPath(args []value.Value) (value.Value, error) {
	spec, err := path.SpecFromValue("getPath", args[1])
	if err != nil {
		return nil, err
	}
	result, found := path.Get(args[0], spec)
	if !found {
		if len(args) == 3 {
			return args[2], nil
		}
		return value.NewNull(), nil
	}
	return result, nil
}

func setPath(args []value.Value) (value.Value, error) {
	spec, err := path.SpecFromValue("setPath", args[1])
	if err != nil {
		return nil, err
	}
	return path.Set(args[0], spec, args[2])
}

func deepMerge(args []value.Value) (value.Value, error) {
	return value.DeepMerge(args[0], args[1])
}

func deepMergeAll(args []value.Value) (value.Value, error) {
	return value.DeepMergeAll(args[0])
}

func deepClone(args []value.Value) (value.Value, error) {
	return value.DeepClone(args[0]), nil
}

func invert(args []value.Value) (value.Value, error) {
	return value.Invert(args[0])
}

func mapTree(args []value.Value) (value.Value, error) {
	return traverse.MapTreeFunc(args[0], args[1])
}

func isEmpty(args []value.Value) (value.Value, error) {
	return value.Boolean(value.IsEmpty(args[0])), nil
}

func isNotEmpty(args []value.Value) (value.Value, error) {
	return value.Boolean(value.IsNotEmpty(args[0])), nil
}

func contains(args []value.Value) (value.Value, error) {
	return value.Boolean(value.Contains(args[0], args[1])), nil
}

func filter(args []value.Value) (value.Value, error) {
	return value.Filter(args[0], args[1])
}

func concat(args []value.Value) (value.Value, error) {
	return value.Concat(args...)
}
