package value

// DeepClone returns a value structurally equal to v with independent
// storage at every array, object, and binary node. Scalars, temporals,
// and funcs are immutable and are returned as themselves.
func DeepClone(v Value) Value {
	switch n := v.(type) {
	case Array:
		result := make(Array, len(n))
		for i, item := range n {
			result[i] = DeepClone(item)
		}
		return result
	case *Object:
		result := &Object{}
		if len(n.Entries) > 0 {
			result.Entries = make([]Entry, len(n.Entries))
			for i, entry := range n.Entries {
				result.Entries[i] = Entry{
					Key:   entry.Key,
					Value: DeepClone(entry.Value),
				}
			}
		}
		if len(n.Attrs) > 0 {
			result.Attrs = make([]Attr, len(n.Attrs))
			copy(result.Attrs, n.Attrs)
		}
		return result
	case Binary:
		return NewBinary(n)
	}
	return v
}
