package value

// Filter keeps the parts of a collection for which the predicate closure
// is truthy. Arrays invoke predicate(element), objects
// predicate(key, value), and strings predicate(char) with each character
// as a length-1 string. Attributes ride along untouched.
func Filter(collection, predicate Value) (Value, error) {
	switch c := collection.(type) {
	case Array:
		result := Array{}
		for _, item := range c {
			keep, err := truthyCall(predicate, item)
			if err != nil {
				return nil, err
			}
			if keep {
				result = append(result, item)
			}
		}
		return result, nil
	case *Object:
		result := &Object{Attrs: c.Attrs}
		for _, entry := range c.Entries {
			keep, err := truthyCall(predicate, String(entry.Key), entry.Value)
			if err != nil {
				return nil, err
			}
			if keep {
				result.Entries = append(result.Entries, entry)
			}
		}
		return result, nil
	case String:
		var result []rune
		for _, r := range (string)(c) {
			keep, err := truthyCall(predicate, String(r))
			if err != nil {
				return nil, err
			}
			if keep {
				result = append(result, r)
			}
		}
		return String(result), nil
	}
	return nil, &ArgumentTypeError{
		Function: "filter",
		Expected: "array, object, or string",
		Actual:   collection.Kind(),
	}
}

func truthyCall(fn Value, args ...Value) (bool, error) {
	result, err := Call(fn, args...)
	if err != nil {
		return false, err
	}
	return ToBool(result)
}
