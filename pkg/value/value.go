package value

const (
	NullKind     = Kind("null")
	StringKind   = Kind("string")
	BoolKind     = Kind("bool")
	NumberKind   = Kind("number")
	ArrayKind    = Kind("array")
	ObjectKind   = Kind("object")
	BinaryKind   = Kind("binary")
	DateTimeKind = Kind("datetime")
	DateKind     = Kind("date")
	TimeKind     = Kind("time")
	FuncKind     = Kind("func")
)

type Kind string

var Kinds = []Kind{
	NullKind,
	StringKind,
	BoolKind,
	NumberKind,
	ArrayKind,
	ObjectKind,
	BinaryKind,
	DateTimeKind,
	DateKind,
	TimeKind,
	FuncKind,
}

type Value interface {
	Kind() Kind
}

// IsSimpleKind returns true if the kind is a string, number, bool, or null.
func IsSimpleKind(kind Kind) bool {
	switch kind {
	case StringKind, BoolKind, NumberKind, NullKind:
		return true
	}
	return false
}

// IsTemporalKind returns true for the datetime, date, and time kinds.
func IsTemporalKind(kind Kind) bool {
	switch kind {
	case DateTimeKind, DateKind, TimeKind:
		return true
	}
	return false
}
