// Package docs registers the OpenAPI description of the HTTP API with swag,
// so the swagger UI can serve it as doc.json.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return doc
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
