package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"tags removed", "<p>hello <b>world</b></p>", "hello world"},
		{"script removed", `<script>alert("x")</script>hi`, "hi"},
		{"entities unescaped", "<p>a &amp; b</p>", "a & b"},
		{"whitespace collapsed", "<p>a</p>\n\n<p>b</p>", "a b"},
		{"empty markup", "<p></p>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", Snippet("<p>short</p>", 100))

	long := "<p>" + strings.Repeat("a", 150) + "</p>"
	got := Snippet(long, 100)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 101)
}

func TestSanitizeDropsScript(t *testing.T) {
	out := string(Sanitize(`<p>ok</p><script>alert(1)</script>`))
	assert.Contains(t, out, "<p>ok</p>")
	assert.NotContains(t, out, "script")
}

func TestMarkdown(t *testing.T) {
	out := string(Markdown("hello **world**"))
	assert.Contains(t, out, "<strong>world</strong>")

	out = string(Markdown(`<script>alert(1)</script>`))
	assert.NotContains(t, out, "<script>")
}
