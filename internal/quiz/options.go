package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is one selectable answer of a Question.
type Option struct {
	Value string
	Label string
}

// Options is the ordered option list of a Question. On the wire it is an
// object keyed by option value; decoding keeps the server's key order.
type Options []Option

// Values returns the option values in order.
func (o Options) Values() []string {
	out := make([]string, len(o))
	for i, opt := range o {
		out[i] = opt.Value
	}
	return out
}

// Labels returns the option labels in order.
func (o Options) Labels() []string {
	out := make([]string, len(o))
	for i, opt := range o {
		out[i] = opt.Label
	}
	return out
}

// Label returns the label for value, falling back to the value itself.
func (o Options) Label(value string) string {
	for _, opt := range o {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

func (o *Options) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	if tok == nil {
		*o = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decode options: expected object, got %v", tok)
	}

	var out Options
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode options: %w", err)
		}
		value, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode options: unexpected key %v", keyTok)
		}
		var body struct {
			Label string `json:"label"`
		}
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("decode option %q: %w", value, err)
		}
		label := body.Label
		if label == "" {
			label = value
		}
		out = append(out, Option{Value: value, Label: label})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	*o = out
	return nil
}

func (o Options) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(opt.Value)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(struct {
			Label string `json:"label"`
		}{opt.Label})
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(body)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
