// Package path addresses locations inside a value tree with an ordered
// sequence of key and index segments. Reads are miss-tolerant and writes
// auto-vivify missing structure, rebuilding only the ancestors they touch.
package path

import (
	"strconv"
	"strings"

	"github.com/grauwen/utl-x-sub010/pkg/value"
)

// Segment is one step of a path. Key always holds the textual form; Index
// is set when the segment addresses an array position.
type Segment struct {
	Key     string
	Index   int64
	IsIndex bool
}

func Key(k string) Segment {
	if i, err := strconv.ParseInt(k, 10, 64); err == nil && i >= 0 {
		return Segment{Key: k, Index: i, IsIndex: true}
	}
	return Segment{Key: k}
}

func Index(i int64) Segment {
	return Segment{Key: strconv.FormatInt(i, 10), Index: i, IsIndex: true}
}

type Spec []Segment

// Parse splits a dotted path string into segments. All-digit segments
// double as array indices. The empty string is the empty path.
func Parse(s string) Spec {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	spec := make(Spec, 0, len(parts))
	for _, part := range parts {
		spec = append(spec, Key(part))
	}
	return spec
}

// SpecFromValue accepts the two path forms callers may supply: a dotted
// string, or an array of string and number segments. fn names the calling
// entry point for error reporting.
func SpecFromValue(fn string, v value.Value) (Spec, error) {
	switch p := v.(type) {
	case value.String:
		return Parse((string)(p)), nil
	case value.Array:
		spec := make(Spec, 0, len(p))
		for _, seg := range p {
			switch s := seg.(type) {
			case value.String:
				spec = append(spec, Key((string)(s)))
			case value.Number:
				i, err := s.ToInt()
				if err != nil {
					return nil, &value.ArgumentTypeError{
						Function: fn,
						Expected: "integer path segment",
						Actual:   value.NumberKind,
						Hint:     "array segments must be whole numbers",
					}
				}
				spec = append(spec, Index(i))
			default:
				return nil, &value.ArgumentTypeError{
					Function: fn,
					Expected: "string or number path segment",
					Actual:   seg.Kind(),
				}
			}
		}
		return spec, nil
	}
	return nil, &value.ArgumentTypeError{
		Function: fn,
		Expected: "string or array path",
		Actual:   v.Kind(),
		Hint:     "pass a dotted string or an array of segments",
	}
}

func (s Spec) String() string {
	parts := make([]string, 0, len(s))
	for _, seg := range s {
		parts = append(parts, seg.Key)
	}
	return strings.Join(parts, ".")
}
