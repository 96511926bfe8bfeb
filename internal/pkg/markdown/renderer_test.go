package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasicMarkdown(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("# Title\n\nSome *emphasis* here.")
	require.NoError(t, err)
	assert.Contains(t, html, "Title")
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestRenderStripsScripts(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("hello <script>alert(1)</script> world")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert(1)")
	assert.Contains(t, html, "hello")
}
