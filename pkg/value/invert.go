package value

import "fmt"

// Invert maps each value of an object back to its key. Scalar values are
// stringified; values with no scalar text form collapse to a stable
// bracketed placeholder. When two entries produce the same result key the
// later one wins, keeping the earlier position.
func Invert(v Value) (Value, error) {
	obj, ok := v.(*Object)
	if !ok {
		return nil, &ArgumentTypeError{
			Function: "invert",
			Expected: string(ObjectKind),
			Actual:   v.Kind(),
		}
	}

	entries := make([]Entry, 0, len(obj.Entries))
	for _, entry := range obj.Entries {
		entries = append(entries, Entry{
			Key:   invertKey(entry.Value),
			Value: String(entry.Key),
		})
	}
	return NewObjectFromEntries(entries), nil
}

func invertKey(v Value) string {
	switch n := v.(type) {
	case Array:
		return "[Array]"
	case *Object:
		return "[Object]"
	case Binary:
		return fmt.Sprintf("[Binary:%dbytes]", len(n))
	case *DateTime:
		return fmt.Sprintf("[DateTime:%s]", n)
	case *Func:
		return "[Function]"
	}
	s, _ := ToString(v)
	return s
}
