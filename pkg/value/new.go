package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// NewValue converts a native Go value, typically the output of a JSON or
// YAML decoder, into a Value. A Value passes through unchanged.
func NewValue(v any) Value {
	switch n := v.(type) {
	case nil:
		return NewNull()
	case Value:
		return n
	case bool:
		return Boolean(n)
	case string:
		return String(n)
	case json.Number:
		return Number(n)
	case int:
		return Number(strconv.FormatInt(int64(n), 10))
	case int32:
		return Number(strconv.FormatInt(int64(n), 10))
	case int64:
		return Number(strconv.FormatInt(n, 10))
	case uint64:
		return Number(strconv.FormatUint(n, 10))
	case float32:
		return Number(strconv.FormatFloat(float64(n), 'g', -1, 64))
	case float64:
		return Number(strconv.FormatFloat(n, 'g', -1, 64))
	case []byte:
		return NewBinary(n)
	case time.Time:
		return NewDateTime(n)
	case []any:
		return NewArray(n)
	case map[string]any:
		return NewObject(n)
	default:
		return String(fmt.Sprint(n))
	}
}
