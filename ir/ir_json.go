package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON writes the fields of o in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'{'})
	for i := range o.Fields {
		f := &o.Fields[i]
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.AsObject())
}

// FromJSON builds a tree from the JSON form of an object view, keeping
// key order. Scalars are typed with ParseValue. The document must be an
// object with a single key; null values, empty strings, nested arrays and
// empty containers below the root key cannot be written as indented text
// and are rejected with ErrUnrepresentable.
func FromJSON(d []byte) (*Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: document must be an object", ErrUnrepresentable)
	}
	t := NewTree()
	if err := t.decodeObject(dec, RootIndex); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrUnrepresentable)
	}
	if n := len(t.nodes[RootIndex].Children); n != 1 {
		return nil, fmt.Errorf("%w: document must have exactly one root key, got %d", ErrUnrepresentable, n)
	}
	return t, nil
}

func (t *Tree) decodeObject(dec *json.Decoder, parent Index) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			b := t.AddBranch(parent, ParseValue(key))
			switch delim {
			case '{':
				err = t.decodeObject(dec, b)
			case '[':
				err = t.decodeArray(dec, b)
			}
			if err != nil {
				return err
			}
			if parent != RootIndex && len(t.nodes[b].Children) == 0 {
				return fmt.Errorf("%w: empty container at %s", ErrUnrepresentable, t.Path(b))
			}
			continue
		}
		v, err := scalar(tok)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if parent != RootIndex && isIndexKey(key) {
			t.AddLeaf(parent, v)
			continue
		}
		t.AddLeaf(t.AddBranch(parent, ParseValue(key)), v)
	}
	_, err := dec.Token()
	return err
}

func (t *Tree) decodeArray(dec *json.Decoder, parent Index) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			if delim == '[' {
				return fmt.Errorf("%w: nested array at %s", ErrUnrepresentable, t.Path(parent))
			}
			if err := t.decodeObject(dec, parent); err != nil {
				return err
			}
			continue
		}
		v, err := scalar(tok)
		if err != nil {
			return fmt.Errorf("at %s: %w", t.Path(parent), err)
		}
		t.AddLeaf(parent, v)
	}
	_, err := dec.Token()
	return err
}

func scalar(tok json.Token) (Value, error) {
	switch x := tok.(type) {
	case json.Number:
		return ParseValue(x.String()), nil
	case string:
		if x == "" {
			return Value{}, fmt.Errorf("%w: empty string", ErrUnrepresentable)
		}
		return ParseValue(x), nil
	case bool:
		return FromString(strconv.FormatBool(x)), nil
	case nil:
		return Value{}, fmt.Errorf("%w: null", ErrUnrepresentable)
	}
	return Value{}, fmt.Errorf("%w: %v", ErrUnrepresentable, tok)
}

func isIndexKey(k string) bool {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return false
	}
	return asciiDigits(k) == len(k)
}
