package httpx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestPostJSONWithBearerToken(t *testing.T) {
	var (
		gotAuth string
		gotType string
		gotBody map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := NewHTTPClient("")
	res, err := c.Post(context.Background(), server.URL+"/models/x").
		WithBearerToken("secret").
		WithJSON(map[string]any{"inputs": "hi"}).
		Do()
	require.NoError(t, err)
	require.NoError(t, res.ExpectSuccess())
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.JSONEq(t, `{"ok": true}`, res.Text())

	require.Equal(t, "Bearer secret", gotAuth)
	require.Equal(t, "application/json", gotType)
	require.Equal(t, map[string]any{"inputs": "hi"}, gotBody)
}

func TestJoinBase(t *testing.T) {
	stub := &StubHTTPDelegate{}
	c := NewHTTPClient("http://engine:8080/", stub)
	res, err := c.Delete(context.Background(), "services/my-slug").Do()
	require.NoError(t, err)
	res.Close()

	reqs := stub.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, http.MethodDelete, reqs[0].Method)
	require.Equal(t, "http://engine:8080/services/my-slug", reqs[0].URL.String())
}

func TestRelativeURLWithoutBase(t *testing.T) {
	c := NewHTTPClient("", &StubHTTPDelegate{})
	_, err := c.Post(context.Background(), "/relative").Do()
	require.Error(t, err)
}

func TestStubDelegateReplaysResponses(t *testing.T) {
	stub := &StubHTTPDelegate{Responses: []StubResponse{
		{Err: errors.New("connection refused")},
		{Status: http.StatusOK, Body: []byte("done")},
	}}
	c := NewHTTPClient("http://engine", stub)
	_, err := c.Post(context.Background(), "services").WithJSON(map[string]int{"a": 1}).Do()
	require.Error(t, err)
	res, err := c.Post(context.Background(), "services").WithJSON(map[string]int{"a": 2}).Do()
	require.NoError(t, err)
	require.NoError(t, res.ExpectSuccess())
	require.Equal(t, "done", res.Text())
	require.Error(t, NewResponseHelper(&http.Response{StatusCode: http.StatusBadGateway}).ExpectSuccess())
	require.JSONEq(t, `{"a": 2}`, string(stub.Body(1)))
}

func TestBytesLimit(t *testing.T) {
	rh := NewResponseHelper(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(io.LimitReader(zeroReader{}, DefaultMaxBodySize+10)),
	})
	_, err := rh.Bytes()
	require.Error(t, err)
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
