package value

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepCloneEqual(t *testing.T) {
	v := NewValue(map[string]any{
		"name": "Alice",
		"tags": []any{"a", "b", map[string]any{"deep": true}},
		"blob": []byte{1, 2, 3},
		"when": time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})

	clone := DeepClone(v)
	assert.True(t, Equals(v, clone))

	want, _, err := NativeValue(v)
	require.NoError(t, err)
	got, _, err := NativeValue(clone)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestDeepCloneIndependentStorage(t *testing.T) {
	inner := NewValue(map[string]any{"x": 1}).(*Object)
	blob := NewBinary([]byte{9, 8, 7})
	arr := Array{inner, blob}
	root := &Object{Entries: []Entry{{Key: "arr", Value: arr}}}

	clone := DeepClone(root).(*Object)

	require.NotSame(t, root, clone)

	clonedArr, found := clone.LookupValue("arr")
	require.True(t, found)
	require.NotSame(t, &arr[0], &clonedArr.(Array)[0])

	clonedInner := clonedArr.(Array)[0].(*Object)
	require.NotSame(t, inner, clonedInner)

	clonedBlob := clonedArr.(Array)[1].(Binary)
	require.Equal(t, blob, clonedBlob)
	require.NotSame(t, &blob[0], &clonedBlob[0])
}

func TestDeepCloneLeaves(t *testing.T) {
	// immutable leaves may come back as themselves
	n := Number("42")
	assert.Equal(t, n, DeepClone(n))

	d := NewDateTime(time.Now())
	assert.Equal(t, Value(d), DeepClone(d))

	assert.Equal(t, Value(NewNull()), DeepClone(NewNull()))
}

func TestDeepCloneAttrs(t *testing.T) {
	obj := &Object{
		Entries: []Entry{{Key: "a", Value: Number("1")}},
		Attrs:   []Attr{{Name: "id", Value: "n1"}},
	}
	clone := DeepClone(obj).(*Object)
	assert.Equal(t, obj.Attrs, clone.Attrs)
	require.NotSame(t, &obj.Attrs[0], &clone.Attrs[0])
}
