// Package richtext sanitizes and projects the rich-text HTML the upstream
// editor produces, and renders markdown for the plain-text surfaces (menfess,
// profile bio).
package richtext

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	sanitizePolicy = bluemonday.UGCPolicy()
	stripPolicy    = bluemonday.StrictPolicy()

	md = goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify))
)

// Sanitize cleans upstream HTML for embedding in a page.
func Sanitize(raw string) template.HTML {
	return template.HTML(sanitizePolicy.Sanitize(raw))
}

// Strip removes all markup and collapses whitespace, leaving the text content.
// Length bounds are enforced against this form, not the raw markup.
func Strip(raw string) string {
	text := html.UnescapeString(stripPolicy.Sanitize(raw))
	return strings.Join(strings.Fields(text), " ")
}

// Snippet strips markup and truncates to at most n runes, appending an
// ellipsis when the text was cut.
func Snippet(raw string, n int) string {
	text := Strip(raw)
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}

// Markdown renders markdown source into sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		// fall back to the escaped source rather than dropping content
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitizePolicy.SanitizeBytes(buf.Bytes()))
}
