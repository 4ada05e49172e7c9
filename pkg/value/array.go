package value

type Array []Value

func NewArray(objs []any) Array {
	a := make(Array, 0, len(objs))
	for _, obj := range objs {
		a = append(a, NewValue(obj))
	}
	return a
}

func (a Array) Kind() Kind {
	return ArrayKind
}

func (a Array) Index(idx int64) (Value, bool) {
	if idx < 0 || int(idx) >= len(a) {
		return nil, false
	}
	return a[idx], true
}

func (a Array) ToValues() []Value {
	return a
}
