package processor

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/cloudcarver/text2image/pkg/codec"
	"github.com/cloudcarver/text2image/pkg/inference"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var log = logger.NewLogAgent("processor")

const (
	FieldJSONDescription = "json_description"
	FieldInputText       = "input_text"
	FieldResult          = "result"

	keyAPIToken = "api_token"
	keyAPIURL   = "api_url"
	keyError    = "error"
)

type ProcessorInterface interface {
	// Process turns the task inputs into its outputs. Failures are returned as
	// *ConfigurationError, *UpstreamError or *codec.DecodeError.
	Process(ctx context.Context, inputs map[string]codec.FieldData) (map[string]codec.FieldData, error)
}

type TextToImage struct {
	client inference.ClientInterface
}

func NewTextToImage(client inference.ClientInterface) ProcessorInterface {
	return &TextToImage{client: client}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

func (p *TextToImage) Process(ctx context.Context, inputs map[string]codec.FieldData) (map[string]codec.FieldData, error) {
	apiURL, apiToken, err := parseDescription(inputs)
	if err != nil {
		return nil, err
	}

	textField, ok := inputs[FieldInputText]
	if !ok {
		return nil, &codec.DecodeError{Field: FieldInputText, Type: codec.TextPlain, Err: errors.New("missing")}
	}
	text, err := codec.DecodeText(textField)
	if err != nil {
		var decodeErr *codec.DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Field = FieldInputText
		}
		return nil, err
	}

	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode inference request")
	}

	raw, err := p.client.Infer(ctx, apiURL, apiToken, body)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error(), Err: err}
	}

	if msg, ok := upstreamError(raw); ok {
		log.Info("inference API reported an error", zap.String("url", apiURL), zap.String("error", msg))
		return nil, &UpstreamError{Message: msg, Body: raw}
	}

	return map[string]codec.FieldData{
		FieldResult: {Data: raw, Type: codec.ImagePNG},
	}, nil
}

func parseDescription(inputs map[string]codec.FieldData) (apiURL, apiToken string, err error) {
	fd, ok := inputs[FieldJSONDescription]
	if !ok {
		return "", "", &ConfigurationError{Field: FieldJSONDescription, Msg: "missing"}
	}

	var desc map[string]any
	if err := json.Unmarshal(fd.Data, &desc); err != nil {
		return "", "", &ConfigurationError{Field: FieldJSONDescription, Msg: "invalid JSON", Err: err}
	}
	if desc == nil {
		return "", "", &ConfigurationError{Field: FieldJSONDescription, Msg: "expecting a JSON object"}
	}

	get := func(key string) (string, error) {
		v, ok := desc[key]
		if !ok {
			return "", &ConfigurationError{Field: key, Msg: "missing from " + FieldJSONDescription}
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", &ConfigurationError{Field: key, Msg: "must be a non-empty string"}
		}
		return s, nil
	}

	if apiToken, err = get(keyAPIToken); err != nil {
		return "", "", err
	}
	if apiURL, err = get(keyAPIURL); err != nil {
		return "", "", err
	}
	return apiURL, apiToken, nil
}

// upstreamError reports whether raw is a JSON object carrying an "error" key,
// and returns its value. String values are returned unquoted.
func upstreamError(raw []byte) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return "", false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return "", false
	}
	v, ok := obj[keyError]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, true
	}
	return string(v), true
}
