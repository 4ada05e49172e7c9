package value

// Binary is an immutable byte sequence. Constructors copy their input so
// the backing storage is never shared with the caller.
type Binary []byte

func NewBinary(data []byte) Binary {
	b := make(Binary, len(data))
	copy(b, data)
	return b
}

func (b Binary) Kind() Kind {
	return BinaryKind
}

func (b Binary) Len() int {
	return len(b)
}

// Bytes returns a copy of the content.
func (b Binary) Bytes() []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
