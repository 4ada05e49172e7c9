package value

// IsEmpty reports whether a value holds nothing: null, the empty string,
// and zero-length arrays, objects, and binaries. Numbers, booleans,
// temporals, and funcs are never empty.
func IsEmpty(v Value) bool {
	switch n := v.(type) {
	case *Null:
		return true
	case String:
		return n == ""
	case Array:
		return len(n) == 0
	case *Object:
		return n.Len() == 0
	case Binary:
		return len(n) == 0
	}
	return false
}

func IsNotEmpty(v Value) bool {
	return !IsEmpty(v)
}
