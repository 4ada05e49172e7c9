package value

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Number keeps the textual form so that integers and floats share one
// numeric domain without losing precision until arithmetic demands it.
type Number string

func (n Number) Kind() Kind {
	return NumberKind
}

func (n Number) ToInt() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

func (n Number) ToFloat() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

func toNum(n Number) (reti *int64, retf *float64, err error) {
	i, err := n.ToInt()
	if err == nil {
		reti = &i
	}

	f, err := n.ToFloat()
	if err == nil {
		retf = &f
	}

	if reti == nil && retf == nil {
		return nil, nil, fmt.Errorf("invalid number %s, not parsable as int or float", n)
	}

	return reti, retf, nil
}

func (n Number) binOp(right Number, opName string, intFunc func(int64, int64) int64, floatFunc func(float64, float64) float64) (Value, error) {
	li, lf, err := toNum(n)
	if err != nil {
		return nil, err
	}

	ri, rf, err := toNum(right)
	if err != nil {
		return nil, err
	}

	if li != nil && ri != nil {
		return NewValue(intFunc(*li, *ri)), nil
	} else if lf != nil && rf != nil {
		return NewValue(floatFunc(*lf, *rf)), nil
	}
	return nil, fmt.Errorf("can not %s incompatible numbers %s and %s", opName, n, right)
}

func (n Number) Add(right Number) (Value, error) {
	return n.binOp(right, "add", func(i int64, i2 int64) int64 {
		return i + i2
	}, func(f float64, f2 float64) float64 {
		return f + f2
	})
}

func (n Number) NumericEqual(right Number) bool {
	li, lf, _ := toNum(n)
	ri, rf, _ := toNum(right)
	if li != nil && ri != nil {
		return *li == *ri
	}
	if lf != nil && rf != nil {
		return *lf == *rf
	}
	return false
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(n))
}
