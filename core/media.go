package core

// Canonical field names the media normalizer writes back to.
const (
	FieldOgImage       = "ogImage"
	FieldOgVideo       = "ogVideo"
	FieldTwitterImage  = "twitterImage"
	FieldTwitterPlayer = "twitterPlayer"
	FieldMusicSong     = "musicSong"
)

// MediaFields lists the canonical media fields in processing order.
var MediaFields = []string{
	FieldOgImage,
	FieldOgVideo,
	FieldTwitterImage,
	FieldTwitterPlayer,
	FieldMusicSong,
}

// Attribute is one named field of a record, in display order.
type Attribute struct {
	Name  string
	Value any
}

// Record is a consolidated media entry. Field values are the raw scraped
// values, or nil when the source sequence had nothing at that position.
type Record interface {
	RecordURL() any
	Attributes() []Attribute
}

// ImageObject is an og:image or og:video entry.
type ImageObject struct {
	URL    any `json:"url"`
	Width  any `json:"width"`
	Height any `json:"height"`
	Type   any `json:"type"`
}

// VideoObject shares the og:image shape.
type VideoObject = ImageObject

func (o ImageObject) RecordURL() any                 { return o.URL }
func (o ImageObject) Dimensions() (width, height any) { return o.Width, o.Height }

func (o ImageObject) Attributes() []Attribute {
	return []Attribute{{"url", o.URL}, {"width", o.Width}, {"height", o.Height}, {"type", o.Type}}
}

// TwitterImageObject is a twitter:image entry.
type TwitterImageObject struct {
	URL    any `json:"url"`
	Width  any `json:"width"`
	Height any `json:"height"`
	Alt    any `json:"alt"`
}

func (o TwitterImageObject) RecordURL() any                 { return o.URL }
func (o TwitterImageObject) Dimensions() (width, height any) { return o.Width, o.Height }

func (o TwitterImageObject) Attributes() []Attribute {
	return []Attribute{{"url", o.URL}, {"width", o.Width}, {"height", o.Height}, {"alt", o.Alt}}
}

// TwitterPlayerObject is a twitter:player entry.
type TwitterPlayerObject struct {
	URL    any `json:"url"`
	Width  any `json:"width"`
	Height any `json:"height"`
	Stream any `json:"stream"`
}

func (o TwitterPlayerObject) RecordURL() any                 { return o.URL }
func (o TwitterPlayerObject) Dimensions() (width, height any) { return o.Width, o.Height }

func (o TwitterPlayerObject) Attributes() []Attribute {
	return []Attribute{{"url", o.URL}, {"width", o.Width}, {"height", o.Height}, {"stream", o.Stream}}
}

// MusicSongObject is a music:song entry of an album.
type MusicSongObject struct {
	URL   any `json:"url"`
	Track any `json:"track"`
	Disc  any `json:"disc"`
}

func (o MusicSongObject) RecordURL() any { return o.URL }

func (o MusicSongObject) Attributes() []Attribute {
	return []Attribute{{"url", o.URL}, {"track", o.Track}, {"disc", o.Disc}}
}

// RecordsOf returns the records held by a normalized field value: a single
// record, or a slice of one of the record types. It returns nil for
// anything else, including raw scraped values.
func RecordsOf(v any) []Record {
	switch x := v.(type) {
	case Record:
		return []Record{x}
	case []ImageObject:
		return toRecords(x)
	case []TwitterImageObject:
		return toRecords(x)
	case []TwitterPlayerObject:
		return toRecords(x)
	case []MusicSongObject:
		return toRecords(x)
	case []Record:
		return x
	}
	return nil
}

// IsRecords reports whether v already holds consolidated media records.
func IsRecords(v any) bool {
	return len(RecordsOf(v)) > 0
}

func toRecords[R Record](rs []R) []Record {
	out := make([]Record, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}
