// Package render turns a plain-text essay into HTML.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// HTML renders essay as HTML paragraphs. Blank lines separate paragraphs;
// the text is escaped first so names and sentences are never read as
// markdown.
func HTML(essay string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(escape(essay)), &buf); err != nil {
		return "", fmt.Errorf("render essay: %w", err)
	}
	return buf.String(), nil
}

// escape backslash-escapes every ASCII punctuation character, which
// CommonMark always treats as a literal.
func escape(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	for _, r := range text {
		if r < 0x80 && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
