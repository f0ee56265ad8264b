// Package render provides output renderers for the ogmedia pipeline.
// This file implements the Markdown renderer: the media summary is laid out
// as HTML and converted with html-to-markdown.
package render

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/ogmedia/core"
)

// MarkdownRenderer writes a readable media summary of a page.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the page summary into Markdown.
func (r *MarkdownRenderer) Render(page core.PageJSON) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(summaryHTML(page))
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func summaryHTML(page core.PageJSON) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	if title := pageTitle(page); title != "" {
		fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(title))
	}
	fmt.Fprintf(&b, "<p>Source: %s</p>", html.EscapeString(page.Metadata.URL))

	sections := mediaSections(page.Meta)
	if len(sections) == 0 {
		b.WriteString("<p>No media found.</p>")
	}
	for _, s := range sections {
		fmt.Fprintf(&b, "<h2>%s</h2><ul>", html.EscapeString(s.Title))
		for _, rec := range s.Records {
			b.WriteString("<li>")
			if u := recordURL(rec); u != "" {
				fmt.Fprintf(&b, `<a href="%s">%s</a>`, html.EscapeString(u), html.EscapeString(u))
			} else {
				b.WriteString("(no url)")
			}
			if d := recordDetails(rec); d != "" {
				fmt.Fprintf(&b, " %s", html.EscapeString(d))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</body></html>")
	return b.String()
}
