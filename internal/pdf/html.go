package pdf

import (
	"bytes"
	"fmt"
	"html/template"
)

// layout is the print stylesheet: single column, letter-ish margins, distinct
// heading and body styles, fixed spacer height for blank source lines.
const layout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: letter; margin: 0.5in; }
  body { font-family: Helvetica, Arial, sans-serif; color: #000; margin: 0; }
  .heading { font-size: 14px; font-weight: bold; margin: 0 0 6px 0; text-align: left; }
  .body { font-size: 10px; margin: 0 0 6px 0; text-align: left; }
  .spacer { height: 10px; }
</style>
</head>
<body>
{{range .}}{{if .IsHeading}}<h2 class="heading">{{.Text}}</h2>
{{else if .IsBody}}<p class="body">{{.Text}}</p>
{{else}}<div class="spacer"></div>
{{end}}{{end}}</body>
</html>
`

var layoutTmpl = template.Must(template.New("resume").Parse(layout))

// RenderHTML lays the classified blocks out as a printable HTML page.
func RenderHTML(blocks []Block) (string, error) {
	var buf bytes.Buffer
	if err := layoutTmpl.Execute(&buf, blocks); err != nil {
		return "", fmt.Errorf("failed to render document layout: %w", err)
	}
	return buf.String(), nil
}
