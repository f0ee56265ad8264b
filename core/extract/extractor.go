// Package extract implements the Extractor interface.
// It reads the <meta> properties of a document that the field catalog
// recognises, plus the document title and language:
//  1. Each <meta property|name content> is matched against the catalog
//  2. Repeating properties collect into a sequence in document order
//  3. Single-valued properties keep their first occurrence
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/ogmedia/core"
	"github.com/gaurav-prasanna/ogmedia/core/fields"
)

const defaultLanguage = "en"

// MetaExtractor reads catalog fields from HTML.
type MetaExtractor struct {
	index map[string]core.FieldDescriptor
}

// New creates a MetaExtractor for the given catalog.
func New(catalog []core.FieldDescriptor) *MetaExtractor {
	return &MetaExtractor{index: fields.Index(catalog)}
}

// Extract parses raw HTML and returns its recognised meta fields.
func (e *MetaExtractor) Extract(html string) (*core.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	meta := core.Object{}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key := metaKey(s)
		if key == "" {
			return
		}
		fd, ok := e.index[key]
		if !ok {
			return
		}
		content, ok := s.Attr("content")
		if !ok {
			return
		}
		content = strings.TrimSpace(content)

		if fd.Multiple {
			seq, _ := meta[fd.FieldName].([]any)
			meta[fd.FieldName] = append(seq, content)
			return
		}
		if _, set := meta[fd.FieldName]; !set {
			meta[fd.FieldName] = content
		}
	})

	lang := strings.TrimSpace(doc.Find("html").First().AttrOr("lang", ""))
	if lang == "" {
		lang = defaultLanguage
	}

	return &core.Extraction{
		Title:    strings.TrimSpace(doc.Find("head title").First().Text()),
		Language: lang,
		Meta:     meta,
	}, nil
}

// metaKey returns the lower-cased property of a <meta> element. Twitter
// cards are often published with name= instead of property=.
func metaKey(s *goquery.Selection) string {
	for _, attr := range []string{"property", "name"} {
		if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
			return strings.ToLower(v)
		}
	}
	return ""
}
