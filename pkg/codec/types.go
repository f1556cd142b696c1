package codec

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	errNotJSONObject = errors.New("not a JSON object")
	errNotUTF8       = errors.New("not valid UTF-8")
	errEmpty         = errors.New("empty payload")
)

type jsonCodec struct{}

// JSON handles JSON objects. Arrays and scalars are rejected.
func JSON() Codec { return jsonCodec{} }

func (jsonCodec) ContentType() ContentType { return ApplicationJSON }

func (jsonCodec) Decode(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errEmpty
	}
	if trimmed[0] != '{' {
		return nil, errNotJSONObject
	}
	var obj map[string]any
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (jsonCodec) Encode(v any) ([]byte, error) {
	if raw, ok := v.([]byte); ok {
		if !json.Valid(raw) {
			return nil, errors.New("invalid JSON")
		}
		return raw, nil
	}
	return json.Marshal(v)
}

type textCodec struct{}

func Text() Codec { return textCodec{} }

func (textCodec) ContentType() ContentType { return TextPlain }

func (textCodec) Decode(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errNotUTF8
	}
	return string(data), nil
}

func (textCodec) Encode(v any) ([]byte, error) {
	var raw []byte
	switch t := v.(type) {
	case string:
		raw = []byte(t)
	case []byte:
		raw = t
	default:
		return nil, errors.Errorf("cannot encode %T as text", v)
	}
	if !utf8.Valid(raw) {
		return nil, errNotUTF8
	}
	return raw, nil
}

type binaryCodec struct {
	ct ContentType
}

// Binary passes image bytes through untouched, empty payloads included.
func Binary(ct ContentType) Codec { return binaryCodec{ct: ct} }

func (c binaryCodec) ContentType() ContentType { return c.ct }

func (binaryCodec) Decode(data []byte) (any, error) {
	return data, nil
}

func (c binaryCodec) Encode(v any) ([]byte, error) {
	raw, ok := v.([]byte)
	if !ok {
		return nil, errors.Errorf("cannot encode %T as %s", v, c.ct)
	}
	return raw, nil
}

// DecodeInto unmarshals a JSON field into v.
func DecodeInto(fd FieldData, v any) error {
	if fd.Type != ApplicationJSON {
		return &DecodeError{Type: fd.Type, Err: errors.Errorf("expected %s", ApplicationJSON)}
	}
	if err := json.Unmarshal(fd.Data, v); err != nil {
		return &DecodeError{Type: fd.Type, Err: err}
	}
	return nil
}

// DecodeText returns the UTF-8 text of a text/plain field.
func DecodeText(fd FieldData) (string, error) {
	if fd.Type != TextPlain {
		return "", &DecodeError{Type: fd.Type, Err: errors.Errorf("expected %s", TextPlain)}
	}
	v, err := Text().Decode(fd.Data)
	if err != nil {
		return "", &DecodeError{Type: fd.Type, Err: err}
	}
	return v.(string), nil
}
