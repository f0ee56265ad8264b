// Package core defines the pipeline interfaces for ogmedia.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// PageMetadata holds metadata derived from the page URL and document.
type PageMetadata struct {
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	Path      string `json:"path"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Object is the flat metadata object scraped from a page, keyed by catalog
// field name (ogImage, twitterPlayerWidth, ...). Values are absent, a
// scalar, a []any sequence, or, after normalization, media records.
type Object map[string]any

// FieldDescriptor describes one recognised meta property.
type FieldDescriptor struct {
	Property  string // e.g. "og:image:width"
	FieldName string // e.g. "ogImageWidth"
	Multiple  bool   // property may repeat; values collect into a sequence
}

// Options controls how media fields are written back.
type Options struct {
	// AllMedia keeps every ranked record instead of only the top one.
	AllMedia bool
}

// Extraction is what the extractor reads out of one document.
type Extraction struct {
	Title    string
	Language string
	Meta     Object
}

// PageJSON is the complete output for a single page.
type PageJSON struct {
	Metadata PageMetadata `json:"metadata"`
	Meta     Object       `json:"meta"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor reads the meta properties of a raw HTML document.
type Extractor interface {
	Extract(html string) (*Extraction, error)
}

// Normalizer consolidates the multi-valued media fields of an Object.
// Implementations mutate and return the Object they are given.
type Normalizer interface {
	Normalize(obj Object) Object
}

// Renderer converts a normalized page into a final output format.
type Renderer interface {
	Render(page PageJSON) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
