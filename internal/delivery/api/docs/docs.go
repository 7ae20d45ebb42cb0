// Package docs embeds the OpenAPI document of the API.
package docs

import (
	_ "embed"
	"encoding/json"
	"sync"

	"syncfloww/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var specYAML []byte

// YAML returns the document as written.
func YAML() []byte {
	return specYAML
}

var specJSON = sync.OnceValues(func() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(specYAML, &doc); err != nil {
		return nil, errors.Wrap(err, "parse openapi.yaml")
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode openapi document")
	}

	return out, nil
})

// JSON returns the document converted to JSON. The conversion runs once.
func JSON() ([]byte, error) {
	return specJSON()
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>SyncFloww API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({url: "/swagger.json", dom_id: "#swagger-ui"});
  </script>
</body>
</html>`

const redocPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>SyncFloww API</title>
</head>
<body>
  <redoc spec-url="/swagger.json"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

// SwaggerUI returns the interactive documentation page.
func SwaggerUI() string {
	return swaggerUIPage
}

// ReDoc returns the reference documentation page.
func ReDoc() string {
	return redocPage
}
