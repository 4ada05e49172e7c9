package value

import (
	"fmt"
	"strings"
)

// Concat combines values of one kind, dispatching on the first argument:
// strings join, numbers sum, booleans OR, arrays append, objects merge
// shallowly with the right side winning, binaries append bytes. A null
// first argument yields the first non-null argument. Subsequent arguments
// of a different kind are an argument-type error.
func Concat(values ...Value) (Value, error) {
	if len(values) == 0 {
		return NewNull(), nil
	}
	first := values[0]

	switch f := first.(type) {
	case *Null:
		for _, v := range values[1:] {
			if v.Kind() != NullKind {
				return v, nil
			}
		}
		return f, nil
	case String:
		sb := strings.Builder{}
		sb.WriteString((string)(f))
		for i, v := range values[1:] {
			s, ok := v.(String)
			if !ok {
				return nil, concatKindError(StringKind, v.Kind(), i+1)
			}
			sb.WriteString((string)(s))
		}
		return String(sb.String()), nil
	case Number:
		var (
			sum Value = f
			err error
		)
		for i, v := range values[1:] {
			n, ok := v.(Number)
			if !ok {
				return nil, concatKindError(NumberKind, v.Kind(), i+1)
			}
			sum, err = sum.(Number).Add(n)
			if err != nil {
				return nil, err
			}
		}
		return sum, nil
	case Boolean:
		result := (bool)(f)
		for i, v := range values[1:] {
			b, ok := v.(Boolean)
			if !ok {
				return nil, concatKindError(BoolKind, v.Kind(), i+1)
			}
			result = result || (bool)(b)
		}
		return Boolean(result), nil
	case Array:
		result := make(Array, 0, len(f))
		result = append(result, f...)
		for i, v := range values[1:] {
			a, ok := v.(Array)
			if !ok {
				return nil, concatKindError(ArrayKind, v.Kind(), i+1)
			}
			result = append(result, a...)
		}
		return result, nil
	case *Object:
		result := f
		for i, v := range values[1:] {
			o, ok := v.(*Object)
			if !ok {
				return nil, concatKindError(ObjectKind, v.Kind(), i+1)
			}
			result = shallowMerge(result, o)
		}
		if result == f {
			result = shallowMerge(&Object{}, f)
		}
		return result, nil
	case Binary:
		result := make(Binary, 0, len(f))
		result = append(result, f...)
		for i, v := range values[1:] {
			b, ok := v.(Binary)
			if !ok {
				return nil, concatKindError(BinaryKind, v.Kind(), i+1)
			}
			result = append(result, b...)
		}
		return result, nil
	}

	return nil, &InvalidOperationError{
		Operation: "concat",
		Kind:      first.Kind(),
		Hint:      "supported kinds: string, number, bool, null, array, object, binary",
	}
}

func concatKindError(expected, actual Kind, index int) error {
	return &ArgumentTypeError{
		Function: "concat",
		Expected: string(expected),
		Actual:   actual,
		Hint:     fmt.Sprintf("argument %d must match the kind of the first", index),
	}
}

// shallowMerge overwrites or appends the right object's entries without
// recursing, unlike DeepMerge.
func shallowMerge(left, right *Object) *Object {
	result := &Object{
		Entries: make([]Entry, len(left.Entries)),
		Attrs:   mergeAttrs(left.Attrs, right.Attrs),
	}
	copy(result.Entries, left.Entries)
outer:
	for _, entry := range right.Entries {
		for i := range result.Entries {
			if result.Entries[i].Key == entry.Key {
				result.Entries[i].Value = entry.Value
				continue outer
			}
		}
		result.Entries = append(result.Entries, entry)
	}
	return result
}
