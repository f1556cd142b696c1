package server

import (
	"context"
	"fmt"

	"github.com/cloudcarver/text2image"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({ url: "/openapi.json", dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>
`

// LoadOpenAPI parses and validates the embedded API document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(text2image.OpenAPISpec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load OpenAPI document")
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, errors.Wrap(err, "invalid OpenAPI document")
	}
	return doc, nil
}

func (s *Server) registerDocs(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to marshal OpenAPI document")
	}
	page := fmt.Sprintf(docsPage, doc.Info.Title)

	s.app.Get("/openapi.json", func(c *fiber.Ctx) error {
		DisableBodyLog(c)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(raw)
	})
	s.app.Get("/docs", func(c *fiber.Ctx) error {
		DisableBodyLog(c)
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(page)
	})
	return nil
}
