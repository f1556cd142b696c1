package inference

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudcarver/text2image/lib/httpx"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/cloudcarver/text2image/pkg/metrics"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var log = logger.NewLogAgent("inference")

type ClientInterface interface {
	// Infer POSTs body to apiURL with apiToken as bearer credential and returns
	// the raw response body. The status code is not interpreted; callers decide
	// from the body whether the call succeeded.
	Infer(ctx context.Context, apiURL, apiToken string, body []byte) ([]byte, error)
}

type Client struct {
	http *httpx.HTTPClient
	now  func() time.Time
}

func NewClient(cfg *config.Config) ClientInterface {
	timeout := utils.UnwrapOr(cfg.Inference.Timeout, config.DefaultInferenceTimeout)
	return newClient(&http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		},
	})
}

func newClient(delegate httpx.HTTPDelegate) *Client {
	return &Client{
		http: httpx.NewHTTPClient("", delegate),
		now:  time.Now,
	}
}

func (c *Client) Infer(ctx context.Context, apiURL, apiToken string, body []byte) ([]byte, error) {
	start := c.now()
	defer func() {
		metrics.InferenceLatency.Observe(c.now().Sub(start).Seconds())
	}()

	res, err := c.http.Post(ctx, apiURL).
		WithBearerToken(apiToken).
		WithRawJSON(body).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "inference request failed")
	}

	raw, err := res.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inference response")
	}

	log.Debug("inference call finished",
		zap.Int("status", res.StatusCode),
		zap.String("content-type", res.Header.Get("Content-Type")),
		zap.Int("bytes", len(raw)),
	)
	return raw, nil
}
