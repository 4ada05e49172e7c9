package value

import (
	"bytes"
	"strings"
)

// Contains dispatches on the collection kind: substring for strings,
// structural membership for arrays, key existence for objects (the value
// is ignored), and byte subsequence for binaries. Any other combination
// is false rather than an error.
func Contains(collection, item Value) bool {
	switch c := collection.(type) {
	case String:
		needle, err := ToString(item)
		if err != nil {
			return false
		}
		return strings.Contains((string)(c), needle)
	case Array:
		for _, e := range c {
			if Equals(e, item) {
				return true
			}
		}
		return false
	case *Object:
		key, err := ToString(item)
		if err != nil {
			return false
		}
		_, found := c.LookupValue(key)
		return found
	case Binary:
		needle, ok := item.(Binary)
		if !ok {
			return false
		}
		return bytes.Contains(c, needle)
	}
	return false
}
