package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head><body>
		<p>Hello <b>there</b></p>
		<script>alert("x")</script>
		<div>Second line</div>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Hello there")
	assert.Contains(t, text, "Second line")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestHTMLToTextLineBreaks(t *testing.T) {
	text, err := HTMLToText("<p>one</p><p>two</p>three<br>four")
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Contains(t, lines, "one")
	assert.Contains(t, lines, "two")
}

func TestFormatEmailBodyPlainText(t *testing.T) {
	got := FormatEmailBody("just plain text\r\nwith a CRLF", FormatOptions{})
	assert.Equal(t, "just plain text\nwith a CRLF", got)
}

func TestFormatEmailBodyDetectsHTML(t *testing.T) {
	got := FormatEmailBody("<div>rendered</div>", FormatOptions{})
	assert.Equal(t, "rendered", got)
}

func TestFormatEmailBodyWraps(t *testing.T) {
	got := FormatEmailBody("aaa bbb ccc ddd", FormatOptions{WrapWidth: 7})
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 7)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "short", WrapText("short", 40))
	assert.Equal(t, "one two\nthree", WrapText("one two three", 8))
	assert.Equal(t, "untouched when width is zero", WrapText("untouched when width is zero", 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "ab...", PadRight("abcdefgh", 5))
}

func TestFolderLabel(t *testing.T) {
	assert.Equal(t, "All (3/10)", FolderLabel("all", 3, 10))
	assert.Equal(t, "Spam (4)", FolderLabel("spam", 0, 4))
	assert.Equal(t, "(0)", strings.TrimSpace(FolderLabel("", 0, 0)))
}
