package http

import (
	"bytes"
	"html/template"

	"github.com/fwojciec/websum"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
    <title>Website Summarizer</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        h1 { color: #333; }
        input[type="text"] { width: 100%; max-width: 600px; padding: 10px; }
        input[type="submit"] { padding: 10px 20px; background: #007bff; color: white; border: none; cursor: pointer; }
        input[type="submit"]:hover { background: #0056b3; }
        .summary, .error { margin-top: 20px; padding: 15px; border-radius: 5px; }
        .summary { background: #e9f7ef; }
        .error { background: #f8d7da; }
    </style>
</head>
<body>
    <h1>Website Summarizer</h1>
    <form method="post">
        <label for="url">Enter Website URL:</label><br>
        <input type="text" id="url" name="url" size="50" placeholder="https://example.com"><br><br>
        <input type="submit" value="Summarize">
    </form>
    {{- if .Summary}}
    <h2>Summary:</h2>
    <div class="summary">{{.Summary}}</div>
    {{- end}}
    {{- if .Error}}
    <h2>Error:</h2>
    <div class="error">{{.Error}}</div>
    {{- end}}
</body>
</html>
`))

// Render returns the HTML page for result. Summary and error text are
// HTML-escaped.
func Render(result websum.RenderResult) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, result); err != nil {
		return "", err
	}
	return buf.String(), nil
}
