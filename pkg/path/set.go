package path

import "github.com/grauwen/utl-x-sub010/pkg/value"

// Set returns a new root with v placed at spec. Missing intermediate
// segments are created as empty objects; an array index past the end pads
// the gap with nulls. Every ancestor on the path is rebuilt while
// untouched siblings are shared, so root is never mutated. The empty spec
// replaces the root outright.
func Set(root value.Value, spec Spec, v value.Value) (value.Value, error) {
	if len(spec) == 0 {
		return v, nil
	}
	switch root.(type) {
	case *value.Object, value.Array:
	default:
		return nil, &value.ArgumentTypeError{
			Function: "setPath",
			Expected: "object or array root",
			Actual:   root.Kind(),
		}
	}
	return setNode(root, spec, v), nil
}

func setNode(current value.Value, spec Spec, v value.Value) value.Value {
	if len(spec) == 0 {
		return v
	}
	seg := spec[0]

	if arr, ok := current.(value.Array); ok && seg.IsIndex && seg.Index >= 0 {
		return setIndex(arr, seg.Index, spec[1:], v)
	}

	obj, ok := current.(*value.Object)
	if !ok {
		// A leaf or mismatched container in the middle of the path is
		// vivified over, the same as missing structure.
		obj = &value.Object{}
	}

	child, found := obj.LookupValue(seg.Key)
	if !found {
		child = &value.Object{}
	}
	return obj.WithEntry(seg.Key, setNode(child, spec[1:], v))
}

func setIndex(arr value.Array, idx int64, rest Spec, v value.Value) value.Value {
	length := int64(len(arr))
	size := length
	if idx >= size {
		size = idx + 1
	}

	result := make(value.Array, size)
	copy(result, arr)
	for i := length; i < size; i++ {
		result[i] = value.NewNull()
	}

	child := result[idx]
	if len(rest) > 0 && child.Kind() == value.NullKind {
		child = &value.Object{}
	}
	result[idx] = setNode(child, rest, v)
	return result
}
