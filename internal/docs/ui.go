// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import (
	"bytes"
	"html/template"
)

var uiTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({
        url: {{ .SpecURL }},
        dom_id: "#swagger-ui",
        withCredentials: true
      });
    };
  </script>
</body>
</html>
`))

// UIPage renders the interactive documentation page loading the document
// from specURL.
func UIPage(title, specURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := uiTemplate.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{Title: title, SpecURL: specURL})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
