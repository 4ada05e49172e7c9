package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	obj := &Object{Entries: []Entry{
		{Key: "US", Value: String("United States")},
		{Key: "UK", Value: String("United Kingdom")},
	}}

	result, err := Invert(obj)
	require.NoError(t, err)
	assert.True(t, Equals(result, &Object{Entries: []Entry{
		{Key: "United States", Value: String("US")},
		{Key: "United Kingdom", Value: String("UK")},
	}}))
}

func TestInvertStringifiesScalars(t *testing.T) {
	obj := &Object{Entries: []Entry{
		{Key: "count", Value: Number("5")},
		{Key: "flag", Value: True},
		{Key: "nothing", Value: NewNull()},
	}}

	result, err := Invert(obj)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "true", "null"}, result.(*Object).Keys())
}

func TestInvertPlaceholders(t *testing.T) {
	obj := &Object{Entries: []Entry{
		{Key: "list", Value: Array{Number("1")}},
		{Key: "child", Value: &Object{}},
		{Key: "data", Value: NewBinary([]byte{1, 2, 3})},
		{Key: "when", Value: NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))},
		{Key: "fn", Value: &Func{Body: identityBody}},
	}}

	result, err := Invert(obj)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[Array]",
		"[Object]",
		"[Binary:3bytes]",
		"[DateTime:2024-05-01]",
		"[Function]",
	}, result.(*Object).Keys())
}

func TestInvertCollisionLaterWins(t *testing.T) {
	obj := &Object{Entries: []Entry{
		{Key: "first", Value: String("dup")},
		{Key: "second", Value: String("dup")},
	}}

	result, err := Invert(obj)
	require.NoError(t, err)
	winner, found := result.(*Object).LookupValue("dup")
	require.True(t, found)
	assert.Equal(t, String("second"), winner)
	assert.Equal(t, 1, result.(*Object).Len())
}

func TestInvertTypeError(t *testing.T) {
	_, err := Invert(Array{})
	var typeErr *ArgumentTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, ArrayKind, typeErr.Actual)
}
