package pos

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSON and YAML encode Pos as an object {"x": …, "y": …} through the struct
// tags. Decoding accepts that object or a string in the "(x, y)" text form.

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pos[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return p.setText(s)
	}

	var f posFields[T]
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Pos[T](f)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pos[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str" {
		return p.setText(node.Value)
	}

	var f posFields[T]
	if err := node.Decode(&f); err != nil {
		return err
	}
	*p = Pos[T](f)
	return nil
}

func (p *Pos[T]) setText(s string) error {
	q, err := Parse[T](s)
	if err != nil {
		return err
	}
	*p = q
	return nil
}
