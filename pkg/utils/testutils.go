package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
)

// JSONValueMatcher is a gomock matcher comparing the JSON encoding of values.
type JSONValueMatcher struct {
	v []byte
}

func NewJSONValueMatcher(t *testing.T, v any) *JSONValueMatcher {
	jsonData, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal value: %v", err)
	}

	return &JSONValueMatcher{v: jsonData}
}

func (m *JSONValueMatcher) Matches(x any) bool {
	raw, ok := x.([]byte)
	if !ok {
		var err error
		if raw, err = json.Marshal(x); err != nil {
			return false
		}
	}
	got, err := normalizeJSON(raw)
	if err != nil {
		return false
	}
	want, err := normalizeJSON(m.v)
	if err != nil {
		return false
	}
	return bytes.Equal(got, want)
}

// normalizeJSON re-encodes raw so that object keys are sorted.
func normalizeJSON(raw []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (m *JSONValueMatcher) String() string {
	return fmt.Sprintf("is equal to %s", string(m.v))
}
