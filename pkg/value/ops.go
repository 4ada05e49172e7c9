package value

import (
	"bytes"
	"fmt"
)

func Lookup(v Value, key string) (Value, bool, error) {
	obj, ok := v.(*Object)
	if !ok {
		return nil, false, fmt.Errorf("can not lookup key %q on kind %s", key, v.Kind())
	}
	result, found := obj.LookupValue(key)
	return result, found, nil
}

func Keys(v Value) ([]string, error) {
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("can not get keys of kind %s", v.Kind())
	}
	return obj.Keys(), nil
}

func Index(v Value, idx int64) (Value, bool, error) {
	arr, ok := v.(Array)
	if !ok {
		return nil, false, fmt.Errorf("can not index kind %s", v.Kind())
	}
	result, found := arr.Index(idx)
	return result, found, nil
}

func Len(v Value) (int64, error) {
	switch n := v.(type) {
	case String:
		return int64(len(n)), nil
	case Array:
		return int64(len(n)), nil
	case *Object:
		return int64(n.Len()), nil
	case Binary:
		return int64(len(n)), nil
	}
	return 0, fmt.Errorf("can not get length of kind %s", v.Kind())
}

// ToBool is the single truthiness rule of the model: false, zero, the
// empty string, and null are false; empty arrays and objects are false;
// everything else is true.
func ToBool(v Value) (bool, error) {
	switch n := v.(type) {
	case *Null:
		return false, nil
	case Boolean:
		return (bool)(n), nil
	case String:
		return n != "", nil
	case Number:
		f, err := n.ToFloat()
		if err != nil {
			return false, err
		}
		return f != 0, nil
	case Array:
		return len(n) > 0, nil
	case *Object:
		return n.Len() > 0, nil
	}
	return true, nil
}

// ToString renders a simple scalar as text. Containers, binaries,
// temporals, and funcs have no scalar text form and error here.
func ToString(v Value) (string, error) {
	switch n := v.(type) {
	case *Null:
		return "null", nil
	case String:
		return (string)(n), nil
	case Number:
		return (string)(n), nil
	case Boolean:
		if n {
			return "true", nil
		}
		return "false", nil
	}
	return "", fmt.Errorf("can not convert kind %s to a string", v.Kind())
}

func ToInt(v Value) (int64, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, fmt.Errorf("can not convert kind %s to an int", v.Kind())
	}
	return n.ToInt()
}

func ToFloat(v Value) (float64, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, fmt.Errorf("can not convert kind %s to a float", v.Kind())
	}
	return n.ToFloat()
}

// NativeValue converts a Value back to plain Go data. Func values have no
// native form and report not-ok; object entries and array elements holding
// funcs are skipped.
func NativeValue(v Value) (any, bool, error) {
	switch n := v.(type) {
	case *Null:
		return nil, true, nil
	case String:
		return (string)(n), true, nil
	case Number:
		return n, true, nil
	case Boolean:
		return (bool)(n), true, nil
	case Binary:
		return n.Bytes(), true, nil
	case *DateTime:
		if n.Precision == TimestampPrecision {
			return n.Time, true, nil
		}
		return n.String(), true, nil
	case Array:
		result := make([]any, 0, len(n))
		for _, item := range n {
			nv, ok, err := NativeValue(item)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			result = append(result, nv)
		}
		return result, true, nil
	case *Object:
		result := map[string]any{}
		for _, entry := range n.Entries {
			nv, ok, err := NativeValue(entry.Value)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			result[entry.Key] = nv
		}
		return result, true, nil
	case *Func:
		return nil, false, nil
	}
	return nil, false, fmt.Errorf("no native form for kind %s", v.Kind())
}

// Equals is structural equality. Numbers compare numerically, binaries by
// content, temporals by instant. Funcs are never equal, not even to
// themselves.
func Equals(left, right Value) bool {
	switch l := left.(type) {
	case *Null:
		_, ok := right.(*Null)
		return ok
	case String:
		r, ok := right.(String)
		return ok && l == r
	case Boolean:
		r, ok := right.(Boolean)
		return ok && l == r
	case Number:
		r, ok := right.(Number)
		return ok && l.NumericEqual(r)
	case Binary:
		r, ok := right.(Binary)
		return ok && bytes.Equal(l, r)
	case *DateTime:
		r, ok := right.(*DateTime)
		return ok && l.Equal(r)
	case Array:
		r, ok := right.(Array)
		if !ok || len(l) != len(r) {
			return false
		}
		for i := range l {
			if !Equals(l[i], r[i]) {
				return false
			}
		}
		return true
	case *Object:
		r, ok := right.(*Object)
		if !ok || l.Len() != r.Len() {
			return false
		}
		for _, entry := range l.Entries {
			rv, found := r.LookupValue(entry.Key)
			if !found || !Equals(entry.Value, rv) {
				return false
			}
		}
		return true
	}
	return false
}
