package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
)

// FormatOptions controls terminal formatting behavior
type FormatOptions struct {
	WrapWidth int
}

// FormatEmailBody turns a server-rendered email body (HTML or plain text)
// into terminal-friendly text: tags stripped, block elements separated,
// lines wrapped to the pane width.
func FormatEmailBody(body string, opts FormatOptions) string {
	text := body
	if looksLikeHTML(body) {
		if t, err := HTMLToText(body); err == nil && strings.TrimSpace(t) != "" {
			text = t
		}
	}

	text = normalizeNewlines(text)
	if opts.WrapWidth > 0 {
		text = WrapText(text, opts.WrapWidth)
	}
	return strings.TrimRight(text, "\n")
}

// HTMLToText parses HTML and emits plain text, inserting line breaks for
// block-level elements and skipping script/style subtrees.
func HTMLToText(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			case "br":
				b.WriteString("\n")
			case "p", "div", "tr", "li", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "table", "ul", "ol":
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString("\n")
				}
			}
		case html.TextNode:
			text := strings.TrimSpace(collapseSpaces(n.Data))
			if text != "" {
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "tr", "li", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
				if !strings.HasSuffix(b.String(), "\n") {
					b.WriteString("\n")
				}
			}
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String()), nil
}

// WrapText wraps lines at width using greedy word wrapping. Lines already
// shorter than width pass through untouched.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		var cur string
		for _, word := range strings.Fields(line) {
			if cur == "" {
				cur = word
				continue
			}
			if runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= width {
				cur += " " + word
			} else {
				out = append(out, cur)
				cur = word
			}
		}
		if cur != "" {
			out = append(out, cur)
		}
	}
	return strings.Join(out, "\n")
}

// Truncate shortens a string to the given display width, appending "..."
// when anything was cut. Width-aware for wide runes.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight truncates or pads a string to exactly the given display width.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// FolderLabel formats a sidebar entry: capitalized name plus
// unread/total counts.
func FolderLabel(name string, unread, total int) string {
	title := name
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	if unread > 0 {
		return fmt.Sprintf("%s (%d/%d)", title, unread, total)
	}
	return fmt.Sprintf("%s (%d)", title, total)
}

var multiSpaceRe = regexp.MustCompile(`[ \t]+`)

func collapseSpaces(s string) string {
	return multiSpaceRe.ReplaceAllString(s, " ")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	// Collapse runs of 3+ blank lines left by table-heavy HTML.
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}

func looksLikeHTML(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "<html") || strings.Contains(s, "<body") ||
		strings.Contains(s, "<div") || strings.Contains(s, "<p>") ||
		strings.Contains(s, "<br") || strings.Contains(s, "<table")
}
