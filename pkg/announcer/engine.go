package announcer

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cloudcarver/text2image/lib/httpx"
	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/descriptor"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/pkg/errors"
)

var ErrRejected = errors.New("rejected by engine")

// EngineClientInterface is the engine's service registry API.
type EngineClientInterface interface {
	// Register posts the descriptor to <engineURL>/services.
	Register(ctx context.Context, engineURL string, service descriptor.Model) error

	// Unregister deletes <engineURL>/services/<slug>.
	Unregister(ctx context.Context, engineURL string, slug string) error
}

type EngineClient struct {
	delegate httpx.HTTPDelegate
}

func NewEngineClient(cfg *config.Config) EngineClientInterface {
	return &EngineClient{
		delegate: &http.Client{Timeout: utils.UnwrapOr(cfg.Engine.Timeout, config.DefaultEngineTimeout)},
	}
}

func (c *EngineClient) Register(ctx context.Context, engineURL string, service descriptor.Model) error {
	res, err := httpx.NewHTTPClient(engineURL, c.delegate).
		Post(ctx, "services").
		WithJSON(service).
		Do()
	if err != nil {
		return err
	}
	return checkResponse(res)
}

func (c *EngineClient) Unregister(ctx context.Context, engineURL string, slug string) error {
	res, err := httpx.NewHTTPClient(engineURL, c.delegate).
		Delete(ctx, "services/"+url.PathEscape(slug)).
		Do()
	if err != nil {
		return err
	}
	return checkResponse(res)
}

func checkResponse(res *httpx.ResponseHelper) error {
	if err := res.ExpectSuccess(); err != nil {
		body := res.Text()
		return errors.Wrapf(ErrRejected, "status %d (%s): %s", res.StatusCode, http.StatusText(res.StatusCode), body)
	}
	res.Close()
	return nil
}
