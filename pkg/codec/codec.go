package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

type ContentType string

const (
	ApplicationJSON ContentType = "application/json"
	TextPlain       ContentType = "text/plain"
	ImagePNG        ContentType = "image/png"
	ImageJPEG       ContentType = "image/jpeg"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedType = errors.New("unsupported content type")
)

// FieldData is the payload of one task field. Data is base64 in its JSON form.
type FieldData struct {
	Data []byte      `json:"data"`
	Type ContentType `json:"type"`
}

// DecodeError is returned when a payload does not match its declared type.
// errors.Is(err, ErrInvalidInput) holds for every DecodeError.
type DecodeError struct {
	Field string
	Type  ContentType
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s payload: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("field %s: invalid %s payload: %v", e.Field, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Codec converts between raw bytes and a typed value for one content type.
type Codec interface {
	ContentType() ContentType
	Decode(data []byte) (any, error)
	Encode(v any) ([]byte, error)
}

type Registry struct {
	byType map[ContentType]Codec
}

// NewRegistry returns a registry with the JSON, text, PNG and JPEG codecs.
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[ContentType]Codec)}
	r.Register(JSON())
	r.Register(Text())
	r.Register(Binary(ImagePNG))
	r.Register(Binary(ImageJPEG))
	return r
}

func (r *Registry) Register(c Codec) {
	r.byType[c.ContentType()] = c
}

// Get returns the codec of a content type, or nil.
func (r *Registry) Get(ct ContentType) Codec {
	return r.byType[ct]
}

func (r *Registry) Supports(ct ContentType) bool {
	_, ok := r.byType[ct]
	return ok
}

// Decode returns a map[string]any for JSON, a string for text and the raw
// bytes for images.
func (r *Registry) Decode(fd FieldData) (any, error) {
	c := r.Get(fd.Type)
	if c == nil {
		return nil, &DecodeError{Type: fd.Type, Err: ErrUnsupportedType}
	}
	v, err := c.Decode(fd.Data)
	if err != nil {
		return nil, &DecodeError{Type: fd.Type, Err: err}
	}
	return v, nil
}

func (r *Registry) Encode(v any, ct ContentType) (FieldData, error) {
	c := r.Get(ct)
	if c == nil {
		return FieldData{}, errors.Wrapf(ErrUnsupportedType, "cannot encode to %s", ct)
	}
	raw, err := c.Encode(v)
	if err != nil {
		return FieldData{}, errors.Wrapf(err, "failed to encode %s", ct)
	}
	return FieldData{Data: raw, Type: ct}, nil
}

var defaultRegistry = NewRegistry()

func Decode(fd FieldData) (any, error) {
	return defaultRegistry.Decode(fd)
}

func Encode(v any, ct ContentType) (FieldData, error) {
	return defaultRegistry.Encode(v, ct)
}
