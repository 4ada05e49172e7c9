// Package udm is the in-memory value model underlying the transformation
// language: one representation for documents arriving as XML, JSON, YAML,
// CSV, or binary payloads, plus the structural algebra that rewrites them.
// This root package holds the producer/consumer conveniences; the algebra
// itself lives under pkg/value, pkg/path, and pkg/traverse.
package udm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/grauwen/utl-x-sub010/pkg/value"
	"gopkg.in/yaml.v3"
)

type Option struct {
	SourceName string
}

func (o Option) Complete() Option {
	if o.SourceName == "" {
		o.SourceName = "<inline>"
	}
	return o
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.SourceName != "" {
			result.SourceName = opt.SourceName
		}
	}
	return
}

type Decoder struct {
	opts  Option
	input io.Reader
}

func NewDecoder(input io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		opts:  Options(opts).Merge().Complete(),
		input: input,
	}
}

func (d *Decoder) Decode(out any) error {
	data, err := io.ReadAll(d.input)
	if err != nil {
		return err
	}

	var native any
	if isYAMLFilename(d.opts.SourceName) {
		if err := yaml.Unmarshal(data, &native); err != nil {
			return fmt.Errorf("decoding %s: %w", d.opts.SourceName, err)
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&native); err != nil {
			return fmt.Errorf("decoding %s: %w", d.opts.SourceName, err)
		}
	}

	switch n := out.(type) {
	case *value.Value:
		*n = value.NewValue(native)
		return nil
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(native); err != nil {
		return err
	}
	return json.NewDecoder(buf).Decode(out)
}

func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}

// Marshal renders a value as JSON. Func values are not serializable to
// any wire format and error here.
func Marshal(v value.Value) ([]byte, error) {
	if err := checkSerializable(v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func MarshalIndent(v value.Value) ([]byte, error) {
	if err := checkSerializable(v); err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, "", "  ")
}

func checkSerializable(v value.Value) error {
	if v.Kind() == value.FuncKind {
		return fmt.Errorf("kind %s is not serializable", value.FuncKind)
	}
	return nil
}

func isYAMLFilename(v string) bool {
	for _, suffix := range []string{".yaml", ".yml"} {
		if strings.HasSuffix(strings.ToLower(v), suffix) {
			return true
		}
	}
	return false
}
