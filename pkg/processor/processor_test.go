package processor

import (
	"context"
	"testing"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/inference"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testURL   = "https://api-inference.huggingface.co/models/stabilityai/stable-cascade"
	testToken = "hf_token"
)

func testInputs(description, text string) map[string]codec.FieldData {
	return map[string]codec.FieldData{
		FieldJSONDescription: {Data: []byte(description), Type: codec.ApplicationJSON},
		FieldInputText:       {Data: []byte(text), Type: codec.TextPlain},
	}
}

func validDescription() string {
	return `{"api_token": "` + testToken + `", "api_url": "` + testURL + `"}`
}

func TestProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	var (
		ctx   = context.Background()
		image = []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x10}
	)

	mockClient.EXPECT().
		Infer(ctx, testURL, testToken, utils.NewJSONValueMatcher(t, map[string]any{"inputs": "A majestic Hummingbird"})).
		Return(image, nil).
		Times(1)

	outputs, err := p.Process(ctx, testInputs(validDescription(), "A majestic Hummingbird"))
	require.NoError(t, err)
	require.Equal(t, map[string]codec.FieldData{
		FieldResult: {Data: image, Type: codec.ImagePNG},
	}, outputs)
}

func TestProcess_TextIsJSONEncoded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	text := "a \"quoted\" bird\\ on a\nnew line"
	mockClient.EXPECT().
		Infer(gomock.Any(), testURL, testToken, utils.NewJSONValueMatcher(t, map[string]any{"inputs": text})).
		Return([]byte("img"), nil)

	_, err := p.Process(context.Background(), testInputs(validDescription(), text))
	require.NoError(t, err)
}

func TestProcess_ConfigurationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		inputs      map[string]codec.FieldData
		expectField string
	}{
		{
			name:        "invalid json",
			inputs:      testInputs(`{"api_token": "x", `, "text"),
			expectField: FieldJSONDescription,
		},
		{
			name:        "not an object",
			inputs:      testInputs(`null`, "text"),
			expectField: FieldJSONDescription,
		},
		{
			name:        "missing api_token",
			inputs:      testInputs(`{"api_url": "`+testURL+`"}`, "text"),
			expectField: "api_token",
		},
		{
			name:        "missing api_url",
			inputs:      testInputs(`{"api_token": "`+testToken+`"}`, "text"),
			expectField: "api_url",
		},
		{
			name:        "api_url not a string",
			inputs:      testInputs(`{"api_token": "`+testToken+`", "api_url": 42}`, "text"),
			expectField: "api_url",
		},
		{
			name: "missing description",
			inputs: map[string]codec.FieldData{
				FieldInputText: {Data: []byte("text"), Type: codec.TextPlain},
			},
			expectField: FieldJSONDescription,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no expectation: any outbound call fails the test
			mockClient := inference.NewMockClientInterface(ctrl)
			p := NewTextToImage(mockClient)

			_, err := p.Process(context.Background(), tc.inputs)
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			require.Equal(t, tc.expectField, cfgErr.Field)
			require.Contains(t, cfgErr.Error(), tc.expectField)
		})
	}
}

func TestProcess_UpstreamErrorKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	body := []byte(`{"error": "Model stabilityai/stable-cascade is currently loading", "estimated_time": 20.0}`)
	mockClient.EXPECT().Infer(gomock.Any(), testURL, testToken, gomock.Any()).Return(body, nil)

	_, err := p.Process(context.Background(), testInputs(validDescription(), "bird"))
	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, "Model stabilityai/stable-cascade is currently loading", upErr.Message)
	require.Equal(t, body, upErr.Body)
}

func TestProcess_UpstreamErrorNonString(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	mockClient.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"error": ["a", "b"]}`), nil)

	_, err := p.Process(context.Background(), testInputs(validDescription(), "bird"))
	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.Equal(t, `["a", "b"]`, upErr.Message)
}

func TestProcess_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	transportErr := errors.New("dial tcp: connection refused")
	mockClient.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, transportErr)

	_, err := p.Process(context.Background(), testInputs(validDescription(), "bird"))
	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	require.ErrorIs(t, err, transportErr)
	require.Contains(t, upErr.Message, "connection refused")
}

func TestProcess_JSONWithoutErrorKeyIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	body := []byte(`{"warning": "deprecated"}`)
	mockClient.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(body, nil)

	outputs, err := p.Process(context.Background(), testInputs(validDescription(), "bird"))
	require.NoError(t, err)
	require.Equal(t, body, outputs[FieldResult].Data)
}

func TestProcess_EmptyBodyIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	mockClient.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{}, nil)

	outputs, err := p.Process(context.Background(), testInputs(validDescription(), "bird"))
	require.NoError(t, err)
	require.Equal(t, map[string]codec.FieldData{
		FieldResult: {Data: []byte{}, Type: codec.ImagePNG},
	}, outputs)
}

func TestProcess_InvalidText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewTextToImage(inference.NewMockClientInterface(ctrl))

	inputs := testInputs(validDescription(), "")
	inputs[FieldInputText] = codec.FieldData{Data: []byte{0xff, 0xfe}, Type: codec.TextPlain}

	_, err := p.Process(context.Background(), inputs)
	require.ErrorIs(t, err, codec.ErrInvalidInput)
}

func TestProcess_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := inference.NewMockClientInterface(ctrl)
	p := NewTextToImage(mockClient)

	mockClient.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, body []byte) ([]byte, error) {
			return append([]byte("image-for:"), body...), nil
		}).
		Times(2)

	first, err := p.Process(context.Background(), testInputs(validDescription(), "bird"))
	require.NoError(t, err)
	second, err := p.Process(context.Background(), testInputs(validDescription(), "bird"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNewDescriptor(t *testing.T) {
	d, err := NewDescriptor(&config.Config{Port: 8181})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8181", d.URL())
	require.Equal(t, ServiceSlug, d.Slug())
	require.True(t, d.HasAI())

	in := d.DataInFields()
	require.Len(t, in, 2)
	require.Equal(t, FieldJSONDescription, in[0].Name)
	require.Equal(t, FieldInputText, in[1].Name)

	out, ok := d.OutField(FieldResult)
	require.True(t, ok)
	require.True(t, out.Accepts(codec.ImagePNG))

	d, err = NewDescriptor(&config.Config{URL: "https://t2i.example.com"})
	require.NoError(t, err)
	require.Equal(t, "https://t2i.example.com", d.URL())
}
