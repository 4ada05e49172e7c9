// Package traverse rewrites value trees depth-first in pre-order.
package traverse

import (
	"strconv"

	"github.com/grauwen/utl-x-sub010/pkg/value"
)

// Transformer receives each node together with its $-rooted dotted path
// ("$", "$.a", "$.items.0"). Its return value replaces the node.
type Transformer func(node value.Value, path string) (value.Value, error)

// MapTree visits every node of root in pre-order, replacing each with the
// transformer's result. When the replacement is still an object or array
// the walk continues into the replacement's children; a non-container
// replacement prunes the subtree beneath it.
func MapTree(root value.Value, fn Transformer) (value.Value, error) {
	return walk(root, "$", fn)
}

func walk(node value.Value, path string, fn Transformer) (value.Value, error) {
	replaced, err := fn(node, path)
	if err != nil {
		return nil, err
	}

	switch n := replaced.(type) {
	case *value.Object:
		result := &value.Object{Attrs: n.Attrs}
		if len(n.Entries) > 0 {
			result.Entries = make([]value.Entry, 0, len(n.Entries))
		}
		for _, entry := range n.Entries {
			child, err := walk(entry.Value, path+"."+entry.Key, fn)
			if err != nil {
				return nil, err
			}
			result.Entries = append(result.Entries, value.Entry{
				Key:   entry.Key,
				Value: child,
			})
		}
		return result, nil
	case value.Array:
		result := make(value.Array, 0, len(n))
		for i, item := range n {
			child, err := walk(item, path+"."+strconv.Itoa(i), fn)
			if err != nil {
				return nil, err
			}
			result = append(result, child)
		}
		return result, nil
	}
	return replaced, nil
}

// MapTreeFunc adapts a two-parameter closure value as the transformer, the
// form the transformation language supplies.
func MapTreeFunc(root, fn value.Value) (value.Value, error) {
	return MapTree(root, func(node value.Value, path string) (value.Value, error) {
		return value.Call(fn, node, value.String(path))
	})
}
