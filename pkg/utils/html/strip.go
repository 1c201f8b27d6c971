// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Upstream summaries sometimes carry markup that must not reach the canonical model

package html

import (
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
)

// StripHTML returns the visible text of an HTML fragment with entities
// decoded and whitespace collapsed. Script and style bodies are dropped.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpaces(fragment)
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0

	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return collapseSpaces(b.String())
			}
			return collapseSpaces(fragment)
		case xhtml.StartTagToken:
			name, _ := tokenizer.TagName()
			if isSkipped(name) {
				skip++
			}
			b.WriteByte(' ')
		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			if isSkipped(name) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case xhtml.SelfClosingTagToken:
			b.WriteByte(' ')
		case xhtml.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

func isSkipped(tag []byte) bool {
	s := string(tag)
	return s == "script" || s == "style"
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
