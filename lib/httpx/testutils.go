package httpx

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// StubResponse is what a StubHTTPDelegate returns for one request.
type StubResponse struct {
	Status int
	Body   []byte
	Header http.Header
	Err    error
}

// StubHTTPDelegate records every request and replays Responses in order. Once
// Responses is exhausted the last one is repeated.
type StubHTTPDelegate struct {
	mu        sync.Mutex
	requests  []*http.Request
	bodies    [][]byte
	Responses []StubResponse
}

func (s *StubHTTPDelegate) Do(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}
	s.requests = append(s.requests, req)
	s.bodies = append(s.bodies, body)

	if len(s.Responses) == 0 {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(nil)), Request: req}, nil
	}
	idx := len(s.requests) - 1
	if idx >= len(s.Responses) {
		idx = len(s.Responses) - 1
	}
	stub := s.Responses[idx]
	if stub.Err != nil {
		return nil, stub.Err
	}
	header := stub.Header
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: stub.Status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(stub.Body)),
		Request:    req,
	}, nil
}

func (s *StubHTTPDelegate) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

// Body returns the body of the i-th recorded request.
func (s *StubHTTPDelegate) Body(i int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[i]
}
