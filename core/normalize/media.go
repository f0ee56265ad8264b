// Package normalize consolidates the multi-valued media fields of a scraped
// metadata object. Open Graph images and videos, Twitter images and players,
// and music album songs arrive as parallel flat sequences (ogImage,
// ogImageWidth, ...). Each group is correlated by position into records,
// capped at MaxRecords, ranked, and written back under the group's canonical
// field while the flat fields are removed.
package normalize

import (
	"log/slog"
	"regexp"
	"slices"

	"github.com/gaurav-prasanna/ogmedia/core"
)

// MaxRecords caps how many records a group keeps, counted in document
// order before ranking.
const MaxRecords = 10

// cleanupRegex selects the catalog fields that belong to a media group.
var cleanupRegex = regexp.MustCompile(`(ogImage|ogVideo|twitter|musicSong).*`)

// group is one media kind's pipeline with its record type erased.
type group interface {
	consolidate(obj core.Object) result
}

type result struct {
	field string
	all   any // []R
	top   any // R
	n     int
}

// kind describes one media group.
type kind[R core.Record] struct {
	field string
	// members are every flat field of the group, in default-fill order.
	members []string
	// columns are the fields correlated into tuples; the first bounds them.
	columns []string
	// fallback maps a member to the member whose value it defaults to.
	fallback map[string]string
	build    func(tuple []any) R
	compare  func(a, b R) int
}

var groups = []group{
	kind[core.ImageObject]{
		field:   core.FieldOgImage,
		members: []string{"ogImage", "ogImageWidth", "ogImageHeight", "ogImageType"},
		columns: []string{"ogImage", "ogImageWidth", "ogImageHeight", "ogImageType"},
		build:   mapImage,
		compare: CompareMedia[core.ImageObject],
	},
	kind[core.VideoObject]{
		field:   core.FieldOgVideo,
		members: []string{"ogVideo", "ogVideoWidth", "ogVideoHeight", "ogVideoType"},
		columns: []string{"ogVideo", "ogVideoWidth", "ogVideoHeight", "ogVideoType"},
		build:   mapImage,
		compare: CompareMedia[core.VideoObject],
	},
	kind[core.TwitterImageObject]{
		field: core.FieldTwitterImage,
		// twitter:image:src is the legacy name of twitter:image.
		members:  []string{"twitterImageSrc", "twitterImage", "twitterImageWidth", "twitterImageHeight", "twitterImageAlt"},
		columns:  []string{"twitterImage", "twitterImageWidth", "twitterImageHeight", "twitterImageAlt"},
		fallback: map[string]string{"twitterImage": "twitterImageSrc"},
		build:    mapTwitterImage,
		compare:  CompareMedia[core.TwitterImageObject],
	},
	kind[core.TwitterPlayerObject]{
		field:   core.FieldTwitterPlayer,
		members: []string{"twitterPlayer", "twitterPlayerWidth", "twitterPlayerHeight", "twitterPlayerStream"},
		columns: []string{"twitterPlayer", "twitterPlayerWidth", "twitterPlayerHeight", "twitterPlayerStream"},
		build:   mapTwitterPlayer,
		compare: CompareMedia[core.TwitterPlayerObject],
	},
	kind[core.MusicSongObject]{
		field:   core.FieldMusicSong,
		members: []string{"musicSong", "musicSongTrack", "musicSongDisc"},
		columns: []string{"musicSong", "musicSongTrack", "musicSongDisc"},
		build:   mapMusicSong,
		compare: CompareSongs,
	},
}

// fill gives every absent member a one-element [nil] sequence, provided
// at least one member of the group is present.
func (k kind[R]) fill(obj core.Object) {
	if !slices.ContainsFunc(k.members, func(f string) bool { return raw(obj[f]) }) {
		return
	}
	for _, f := range k.members {
		if raw(obj[f]) {
			continue
		}
		if src, ok := k.fallback[f]; ok {
			obj[f] = obj[src]
			continue
		}
		obj[f] = []any{nil}
	}
}

// rank correlates the group's columns into at most MaxRecords records and
// sorts them.
func (k kind[R]) rank(obj core.Object) []R {
	columns := make([][]any, len(k.columns))
	for i, f := range k.columns {
		if raw(obj[f]) {
			columns[i] = sequence(obj[f])
		}
	}

	tuples := Zip[any](nil, columns...)
	if len(tuples) > MaxRecords {
		tuples = tuples[:MaxRecords]
	}

	records := make([]R, len(tuples))
	for i, t := range tuples {
		records[i] = k.build(t)
	}
	slices.SortStableFunc(records, k.compare)
	return records
}

func (k kind[R]) consolidate(obj core.Object) result {
	k.fill(obj)
	records := k.rank(obj)
	if len(records) == 0 {
		return result{field: k.field}
	}
	return result{field: k.field, all: records, top: records[0], n: len(records)}
}

// MediaNormalizer implements core.Normalizer for the five media groups.
type MediaNormalizer struct {
	catalog []core.FieldDescriptor
	opts    core.Options
	logger  *slog.Logger
}

// New creates a MediaNormalizer. The catalog is consulted only to find the
// flat multi-valued fields to remove.
func New(catalog []core.FieldDescriptor, opts core.Options) *MediaNormalizer {
	return &MediaNormalizer{catalog: catalog, opts: opts, logger: slog.Default()}
}

// WithLogger returns a copy of n that logs to logger.
func (n *MediaNormalizer) WithLogger(logger *slog.Logger) *MediaNormalizer {
	c := *n
	c.logger = logger
	return &c
}

// Normalize consolidates obj in place and returns it. Every group is
// correlated before any flat field is removed, and nothing is written back
// until cleanup is done, since groups share field names with their output.
// Fields that already hold records are left alone, so a second pass over
// the output changes nothing.
func (n *MediaNormalizer) Normalize(obj core.Object) core.Object {
	results := make([]result, 0, len(groups))
	for _, g := range groups {
		results = append(results, g.consolidate(obj))
	}

	for _, fd := range n.catalog {
		if !fd.Multiple || fd.FieldName == "" || !cleanupRegex.MatchString(fd.FieldName) {
			continue
		}
		if core.IsRecords(obj[fd.FieldName]) {
			continue
		}
		delete(obj, fd.FieldName)
	}

	for _, r := range results {
		if r.n == 0 {
			continue
		}
		if n.opts.AllMedia {
			obj[r.field] = r.all
		} else {
			obj[r.field] = r.top
		}
		n.logger.Debug("media normalized", "field", r.field, "records", r.n, "all_media", n.opts.AllMedia)
	}
	return obj
}

// Setup normalizes obj with a one-off MediaNormalizer.
func Setup(obj core.Object, opts core.Options, catalog []core.FieldDescriptor) core.Object {
	return New(catalog, opts).Normalize(obj)
}
