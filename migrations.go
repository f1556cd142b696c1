package text2image

import "embed"

//go:embed sql/migrations/*.sql
var Migrations embed.FS

//go:embed api/v1.yaml
var OpenAPISpec []byte
