package codec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	v, err := Decode(FieldData{Data: []byte(` {"api_token": "t", "n": 1}`), Type: ApplicationJSON})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"api_token": "t", "n": float64(1)}, v)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "malformed", data: `{"api_token": `},
		{name: "array", data: `[1, 2]`},
		{name: "scalar", data: `"text"`},
		{name: "empty", data: ``},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(FieldData{Data: []byte(tc.data), Type: ApplicationJSON})
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidInput))

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			require.Equal(t, ApplicationJSON, decodeErr.Type)
		})
	}
}

func TestDecodeText(t *testing.T) {
	v, err := Decode(FieldData{Data: []byte("A majestic Hummingbird"), Type: TextPlain})
	require.NoError(t, err)
	require.Equal(t, "A majestic Hummingbird", v)

	_, err = Decode(FieldData{Data: []byte{0xff, 0xfe, 0xfd}, Type: TextPlain})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecodeBinaryIsPassThrough(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	v, err := Decode(FieldData{Data: raw, Type: ImagePNG})
	require.NoError(t, err)
	require.Equal(t, raw, v)
}

func TestBinaryAcceptsEmptyPayload(t *testing.T) {
	v, err := Decode(FieldData{Data: []byte{}, Type: ImagePNG})
	require.NoError(t, err)
	require.Equal(t, []byte{}, v)

	fd, err := Encode([]byte{}, ImagePNG)
	require.NoError(t, err)
	require.Equal(t, FieldData{Data: []byte{}, Type: ImagePNG}, fd)
}

func TestDecodeUnsupportedType(t *testing.T) {
	_, err := Decode(FieldData{Data: []byte("x"), Type: "application/xml"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEncode(t *testing.T) {
	fd, err := Encode([]byte{1, 2, 3}, ImagePNG)
	require.NoError(t, err)
	require.Equal(t, FieldData{Data: []byte{1, 2, 3}, Type: ImagePNG}, fd)

	fd, err = Encode("hello", TextPlain)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), fd.Data)

	fd, err = Encode(map[string]any{"a": 1}, ApplicationJSON)
	require.NoError(t, err)
	require.JSONEq(t, `{"a": 1}`, string(fd.Data))

	_, err = Encode("not bytes", ImageJPEG)
	require.Error(t, err)

	_, err = Encode([]byte{1}, "video/mp4")
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDecodeHelpers(t *testing.T) {
	var cfg struct {
		APIURL string `json:"api_url"`
	}
	require.NoError(t, DecodeInto(FieldData{Data: []byte(`{"api_url": "http://x"}`), Type: ApplicationJSON}, &cfg))
	require.Equal(t, "http://x", cfg.APIURL)

	require.ErrorIs(t, DecodeInto(FieldData{Data: []byte(`{`), Type: ApplicationJSON}, &cfg), ErrInvalidInput)
	require.ErrorIs(t, DecodeInto(FieldData{Data: []byte(`{}`), Type: TextPlain}, &cfg), ErrInvalidInput)

	text, err := DecodeText(FieldData{Data: []byte("hi"), Type: TextPlain})
	require.NoError(t, err)
	require.Equal(t, "hi", text)

	_, err = DecodeText(FieldData{Data: []byte("hi"), Type: ApplicationJSON})
	require.ErrorIs(t, err, ErrInvalidInput)
}
