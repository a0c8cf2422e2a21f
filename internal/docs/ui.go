package docs

import "net/http"

// uiPage embeds Swagger UI with assets from the CDN, pointed at the
// generated document.
const uiPage = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8"/>
	<meta name="viewport" content="width=device-width, initial-scale=1"/>
	<title>Subscribers API — Documentation</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@4.15.5/swagger-ui.css"/>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@4.15.5/swagger-ui-bundle.js"></script>
<script>
	window.addEventListener('load', function () {
		SwaggerUIBundle({
			url: location.protocol + '//' + location.host + '/api-docs/openapi.json',
			dom_id: '#swagger-ui',
		})
	})
</script>
</body>
</html>`

// UIHandler serves the interactive documentation browser.
func UIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(uiPage))
	}
}
