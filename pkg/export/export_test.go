package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("")
	assert.True(t, ok)
	assert.Equal(t, FormatPDF, f)

	f, ok = ParseFormat("pdf")
	assert.True(t, ok)
	assert.Equal(t, FormatPDF, f)

	f, ok = ParseFormat("markdown")
	assert.True(t, ok)
	assert.Equal(t, FormatMarkdown, f)

	_, ok = ParseFormat("docx")
	assert.False(t, ok)
}

func TestMarkdownResult(t *testing.T) {
	res := Markdown("# Title\n\nbody", "Release Notes: 2024")

	assert.Equal(t, "text/markdown", res.MimeType)
	assert.Equal(t, "Release-Notes-2024.md", res.Filename)
	assert.Equal(t, "# Title\n\nbody", string(res.Data))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "My-Page", sanitizeFilename("My Page"))
	assert.Equal(t, "under_score-dash", sanitizeFilename("under_score-dash"))
	assert.Equal(t, "document", sanitizeFilename("???"))

	long := sanitizeFilename("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	assert.Len(t, long, 50)
}

func TestPercentEncodeForDataURL(t *testing.T) {
	assert.Equal(t, "plain-text_1.2~", percentEncodeForDataURL("plain-text_1.2~"))
	assert.Equal(t, "a%20b", percentEncodeForDataURL("a b"))
	assert.Equal(t, "%3Cp%3E", percentEncodeForDataURL("<p>"))
}
