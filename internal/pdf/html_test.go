package pdf

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, content string) *goquery.Document {
	t.Helper()
	html, err := RenderHTML(Classify(content))
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHTMLBlockStructure(t *testing.T) {
	doc := renderDoc(t, "SUMMARY\nBuilt things.")

	headings := doc.Find("h2.heading")
	require.Equal(t, 1, headings.Length())
	assert.Equal(t, "SUMMARY", headings.Text())

	body := doc.Find("p.body")
	require.Equal(t, 1, body.Length())
	assert.Equal(t, "Built things.", body.Text())
}

func TestRenderHTMLSpacers(t *testing.T) {
	doc := renderDoc(t, "SUMMARY\n\nBuilt things.")
	assert.Equal(t, 1, doc.Find("div.spacer").Length())
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	html, err := RenderHTML(Classify("<script>alert(1)</script> in a resume line."))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTMLSingleColumnLayout(t *testing.T) {
	doc := renderDoc(t, "SKILLS:\nGo, SQL")
	assert.Equal(t, 0, doc.Find("table").Length(), "layout must stay single-column, no tables")
}
