package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxBodySize bounds how much of a response body is read into memory.
const DefaultMaxBodySize = 64 * 1024 * 1024

type HTTPDelegate interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	base   string
	client HTTPDelegate
}

// NewHTTPClient creates a client whose request paths are joined to base. With
// an empty base, request paths must be absolute URLs.
func NewHTTPClient(base string, httpDelegate ...HTTPDelegate) *HTTPClient {
	var delegate HTTPDelegate
	if len(httpDelegate) != 0 && httpDelegate[0] != nil {
		delegate = httpDelegate[0]
	} else {
		delegate = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
			},
		}
	}
	return &HTTPClient{
		base:   strings.TrimRight(base, "/"),
		client: delegate,
	}
}

type RequestContext struct {
	c       *HTTPClient
	ctx     context.Context
	method  string
	path    string
	body    []byte
	headers http.Header
	errors  []error
}

type ResponseHelper struct {
	*http.Response
}

func (c *HTTPClient) startRequest(ctx context.Context, method string, path string) *RequestContext {
	return &RequestContext{
		c:       c,
		ctx:     ctx,
		method:  method,
		headers: http.Header{},
		path:    path,
	}
}

func (c *HTTPClient) Post(ctx context.Context, path string) *RequestContext {
	return c.startRequest(ctx, http.MethodPost, path)
}

func (c *HTTPClient) Delete(ctx context.Context, path string) *RequestContext {
	return c.startRequest(ctx, http.MethodDelete, path)
}

func (rc *RequestContext) handleErr(err error) {
	if err == nil {
		return
	}
	rc.errors = append(rc.errors, err)
}

func (rc *RequestContext) WithJSON(data any) *RequestContext {
	raw, err := json.Marshal(data)
	rc.handleErr(err)
	if err == nil {
		rc.body = raw
	}
	rc.headers.Set("Content-Type", "application/json")
	return rc
}

// WithRawJSON sends raw as the body without re-encoding it.
func (rc *RequestContext) WithRawJSON(raw []byte) *RequestContext {
	rc.body = raw
	rc.headers.Set("Content-Type", "application/json")
	return rc
}

func (rc *RequestContext) WithHeader(key, val string) *RequestContext {
	rc.headers.Set(key, val)
	return rc
}

func (rc *RequestContext) WithBearerToken(token string) *RequestContext {
	return rc.WithHeader("Authorization", "Bearer "+token)
}

func (rc *RequestContext) url() (string, error) {
	if rc.c.base == "" {
		u, err := neturl.Parse(rc.path)
		if err != nil {
			return "", err
		}
		if !u.IsAbs() {
			return "", errors.Errorf("%q is not an absolute URL", rc.path)
		}
		return u.String(), nil
	}
	return neturl.JoinPath(rc.c.base, strings.Split(rc.path, "/")...)
}

func (rc *RequestContext) Do() (*ResponseHelper, error) {
	// handle previous errors
	if len(rc.errors) != 0 {
		msg := ""
		for _, e := range rc.errors {
			msg += e.Error() + ";"
		}
		return nil, errors.Errorf("failed to construct request: %s", msg)
	}

	urlStr, err := rc.url()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to construct URL, base: %s, path: %s", rc.c.base, rc.path)
	}

	var body io.Reader
	if rc.body != nil {
		body = bytes.NewReader(rc.body)
	}

	req, err := http.NewRequestWithContext(rc.ctx, rc.method, urlStr, body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to construct request, method: %s, url: %s", rc.method, urlStr)
	}
	req.Header = rc.headers

	res, err := rc.c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send request, method: %s, url: %s", rc.method, urlStr)
	}
	return NewResponseHelper(res), nil
}

func NewResponseHelper(res *http.Response) *ResponseHelper {
	return &ResponseHelper{res}
}

// Bytes reads the whole body, at most DefaultMaxBodySize bytes, and closes it.
func (rh *ResponseHelper) Bytes() ([]byte, error) {
	defer rh.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(rh.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read body from HTTP response")
	}
	if len(raw) > DefaultMaxBodySize {
		return nil, errors.Errorf("response body exceeds %d bytes", DefaultMaxBodySize)
	}
	return raw, nil
}

func (rh *ResponseHelper) Text() string {
	raw, err := rh.Bytes()
	if err != nil {
		return err.Error()
	}
	return string(raw)
}

// Close drains and closes the body so the connection can be reused.
func (rh *ResponseHelper) Close() {
	_, _ = io.Copy(io.Discard, io.LimitReader(rh.Body, DefaultMaxBodySize))
	_ = rh.Body.Close()
}

// ExpectSuccess accepts any 2xx status.
func (rh *ResponseHelper) ExpectSuccess() error {
	if rh.StatusCode >= 200 && rh.StatusCode < 300 {
		return nil
	}
	return errors.Errorf("unexpected status code: %d", rh.StatusCode)
}
