// Package docs serves the API's OpenAPI document and a small interactive
// docs page. The document is maintained by hand; the surface is only two
// operations.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapiJSON []byte

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>User Feedback Dashboard API</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <redoc spec-url="/openapi.json"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

// OpenAPI serves the raw OpenAPI 3 document.
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openapiJSON)
}

// Page serves an interactive viewer backed by /openapi.json.
func Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsPage))
}
