package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLParagraphs(t *testing.T) {
	out, err := HTML("To you,\n\nFirst line.\n\n— Alex")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<p>"))
	assert.Contains(t, out, "<p>To you,</p>")
	assert.Contains(t, out, "<p>— Alex</p>")
}

func TestHTMLEscapesMarkup(t *testing.T) {
	out, err := HTML("To you,\n\n— *Sam* <b>1.</b> # [x](y)")
	require.NoError(t, err)
	assert.NotContains(t, out, "<em>")
	assert.NotContains(t, out, "<b>")
	assert.NotContains(t, out, "<a ")
	assert.Contains(t, out, "*Sam*")
	assert.Contains(t, out, "&lt;b&gt;")
}
