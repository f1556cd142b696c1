package processor

import "fmt"

// ConfigurationError reports a json_description that cannot be used. Field
// names the offending field or key.
type ConfigurationError struct {
	Field string
	Msg   string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a failed inference call. Message is the error value
// sent by the API, or the transport error text. Body holds the raw response
// when there was one.
type UpstreamError struct {
	Message string
	Body    []byte
	Err     error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
