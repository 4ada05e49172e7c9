package value

var (
	True  = Boolean(true)
	False = Boolean(false)
)

type Boolean bool

func (n Boolean) Kind() Kind {
	return BoolKind
}

func (n Boolean) Or(right Value) (Value, error) {
	b, err := ToBool(right)
	if err != nil {
		return nil, err
	}
	return Boolean((bool)(n) || b), nil
}
