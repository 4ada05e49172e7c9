package value

import "fmt"

// DeepMerge combines two objects. Shared keys holding two objects are
// merged recursively, two arrays are concatenated, and anything else is
// overwritten by the right side. Attribute side-channels are unioned
// shallowly with the right side winning a name conflict.
func DeepMerge(left, right Value) (Value, error) {
	leftObj, ok := left.(*Object)
	if !ok {
		return nil, &ArgumentTypeError{
			Function: "deepMerge",
			Expected: string(ObjectKind),
			Actual:   left.Kind(),
			Hint:     "both operands must be objects",
		}
	}
	rightObj, ok := right.(*Object)
	if !ok {
		return nil, &ArgumentTypeError{
			Function: "deepMerge",
			Expected: string(ObjectKind),
			Actual:   right.Kind(),
			Hint:     "both operands must be objects",
		}
	}
	return mergeObjects(leftObj, rightObj), nil
}

func mergeObjects(left, right *Object) *Object {
	var (
		result   = make([]Entry, len(left.Entries))
		keysSeen = map[string]int{}
	)
	copy(result, left.Entries)
	for i, entry := range result {
		keysSeen[entry.Key] = i
	}

	for _, entry := range right.Entries {
		i, seen := keysSeen[entry.Key]
		if !seen {
			keysSeen[entry.Key] = len(result)
			result = append(result, entry)
			continue
		}
		result[i].Value = mergeValues(result[i].Value, entry.Value)
	}

	return &Object{
		Entries: result,
		Attrs:   mergeAttrs(left.Attrs, right.Attrs),
	}
}

func mergeValues(left, right Value) Value {
	if lo, ok := left.(*Object); ok {
		if ro, ok := right.(*Object); ok {
			return mergeObjects(lo, ro)
		}
	}
	if la, ok := left.(Array); ok {
		if ra, ok := right.(Array); ok {
			result := make(Array, 0, len(la)+len(ra))
			result = append(result, la...)
			result = append(result, ra...)
			return result
		}
	}
	return right
}

// DeepMergeAll left-folds DeepMerge over an array of objects. An empty
// array produces an empty object; a single element produces its clone.
func DeepMergeAll(list Value) (Value, error) {
	arr, ok := list.(Array)
	if !ok {
		return nil, &ArgumentTypeError{
			Function: "deepMergeAll",
			Expected: string(ArrayKind),
			Actual:   list.Kind(),
			Hint:     "pass an array of objects",
		}
	}

	result := &Object{}
	for i, item := range arr {
		obj, ok := item.(*Object)
		if !ok {
			return nil, &ArgumentTypeError{
				Function: "deepMergeAll",
				Expected: string(ObjectKind),
				Actual:   item.Kind(),
				Hint:     fmt.Sprintf("element %d is not an object", i),
			}
		}
		result = mergeObjects(result, obj)
	}
	return result, nil
}
