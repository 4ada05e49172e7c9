package value

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Object is an ordered key to value mapping. Attrs is a side-channel of
// format metadata (for example XML attributes); it never participates in
// key lookup or merge key-matching.
type Object struct {
	Entries []Entry
	Attrs   []Attr
}

type Entry struct {
	Key   string
	Value Value
}

type Attr struct {
	Name  string
	Value string
}

func NewObject(data map[string]any) *Object {
	o := &Object{}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		o.Entries = append(o.Entries, Entry{
			Key:   key,
			Value: NewValue(data[key]),
		})
	}

	return o
}

// NewObjectFromEntries keeps entry order; on a duplicate key the last
// value wins, holding the key's first position.
func NewObjectFromEntries(entries []Entry) *Object {
	o := &Object{}
	seen := map[string]int{}
	for _, entry := range entries {
		if i, ok := seen[entry.Key]; ok {
			o.Entries[i].Value = entry.Value
			continue
		}
		seen[entry.Key] = len(o.Entries)
		o.Entries = append(o.Entries, entry)
	}
	return o
}

func (n *Object) Kind() Kind {
	return ObjectKind
}

func (n *Object) Len() int {
	return len(n.Entries)
}

func (n *Object) LookupValue(key string) (Value, bool) {
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (n *Object) Keys() []string {
	result := make([]string, 0, len(n.Entries))
	for _, entry := range n.Entries {
		result = append(result, entry.Key)
	}
	return result
}

func (n *Object) Attribute(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// WithEntry returns a new object with key set to val, sharing all other
// entries with the receiver.
func (n *Object) WithEntry(key string, val Value) *Object {
	result := &Object{
		Entries: make([]Entry, len(n.Entries)),
		Attrs:   n.Attrs,
	}
	copy(result.Entries, n.Entries)
	for i, entry := range result.Entries {
		if entry.Key == key {
			result.Entries[i].Value = val
			return result
		}
	}
	result.Entries = append(result.Entries, Entry{
		Key:   key,
		Value: val,
	})
	return result
}

func (n *Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	first := true
	for _, entry := range n.Entries {
		if entry.Value.Kind() == FuncKind {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (n *Object) String() string {
	data, _ := n.MarshalJSON()
	return string(data)
}

func mergeAttrs(left, right []Attr) []Attr {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}
	result := make([]Attr, len(left))
	copy(result, left)
outer:
	for _, attr := range right {
		for i := range result {
			if result[i].Name == attr.Name {
				result[i].Value = attr.Value
				continue outer
			}
		}
		result = append(result, attr)
	}
	return result
}
