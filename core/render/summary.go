package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/ogmedia/core"
)

// sectionTitles are the human labels of the canonical media fields.
var sectionTitles = map[string]string{
	core.FieldOgImage:       "Open Graph images",
	core.FieldOgVideo:       "Open Graph videos",
	core.FieldTwitterImage:  "Twitter images",
	core.FieldTwitterPlayer: "Twitter players",
	core.FieldMusicSong:     "Songs",
}

// mediaSection is one canonical media field with its records.
type mediaSection struct {
	Title   string
	Records []core.Record
}

// mediaSections returns the populated media fields of meta in processing
// order. Fields that do not hold records are skipped.
func mediaSections(meta core.Object) []mediaSection {
	var sections []mediaSection
	for _, field := range core.MediaFields {
		records := core.RecordsOf(meta[field])
		if len(records) == 0 {
			continue
		}
		sections = append(sections, mediaSection{Title: sectionTitles[field], Records: records})
	}
	return sections
}

// pageTitle prefers og:title over the document <title>.
func pageTitle(page core.PageJSON) string {
	if t, ok := page.Meta["ogTitle"].(string); ok && t != "" {
		return t
	}
	return page.Metadata.Title
}

// recordURL returns the record URL as text, or "" when unset.
func recordURL(r core.Record) string {
	if u := r.RecordURL(); u != nil {
		return fmt.Sprint(u)
	}
	return ""
}

// recordDetails renders the set non-URL attributes, e.g. "width=1200 height=630".
func recordDetails(r core.Record) string {
	var parts []string
	for _, a := range r.Attributes() {
		if a.Name == "url" || a.Value == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", a.Name, a.Value))
	}
	return strings.Join(parts, " ")
}
