package path

import "github.com/grauwen/utl-x-sub010/pkg/value"

// Get walks spec against root. A missing key, an out-of-range index, or a
// leaf in the middle of the path is a miss, never an error. The empty
// spec returns root itself.
func Get(root value.Value, spec Spec) (value.Value, bool) {
	current := root
	for _, seg := range spec {
		switch node := current.(type) {
		case *value.Object:
			next, found := node.LookupValue(seg.Key)
			if !found {
				return nil, false
			}
			current = next
		case value.Array:
			if !seg.IsIndex {
				return nil, false
			}
			next, found := node.Index(seg.Index)
			if !found {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}
