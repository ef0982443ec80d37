package transform

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/lexkit/lexkit/nlp"
)

// FormatStyle selects a text rendition.
type FormatStyle string

const (
	FormatClean    FormatStyle = "clean"
	FormatBullets  FormatStyle = "bullets"
	FormatNumbered FormatStyle = "numbered"
	FormatMarkdown FormatStyle = "markdown"
)

// Format restructures text into the requested rendition. Unknown
// styles return the text unchanged.
func Format(text string, style FormatStyle) string {
	switch style {
	case FormatClean:
		return cleanFormat(text)
	case FormatBullets:
		return bulletFormat(text)
	case FormatNumbered:
		return numberedFormat(text)
	case FormatMarkdown:
		return markdownFormat(text)
	default:
		return text
	}
}

// RenderHTML converts the markdown rendition of text to HTML.
func RenderHTML(text string) (string, error) {
	md := goldmark.New()
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdownFormat(text)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func cleanFormat(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func bulletFormat(text string) string {
	var out []string
	for _, s := range nlp.ExtractSentences(text) {
		out = append(out, "• "+s)
	}
	return strings.Join(out, "\n")
}

func numberedFormat(text string) string {
	var out []string
	for i, s := range nlp.ExtractSentences(text) {
		out = append(out, fmt.Sprintf("%d. %s", i+1, s))
	}
	return strings.Join(out, "\n")
}

// markdownFormat promotes detected headings to ## lines and keeps the
// rest of the text as-is.
func markdownFormat(text string) string {
	heads := make(map[string]struct{})
	for _, h := range headings(text) {
		heads[h] = struct{}{}
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if _, ok := heads[line]; ok && line != "" {
			out = append(out, "## "+line)
		} else {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
