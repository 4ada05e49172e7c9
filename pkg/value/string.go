package value

type String string

func (s String) Kind() Kind {
	return StringKind
}
