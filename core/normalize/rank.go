package normalize

import (
	"math"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/ogmedia/core"
)

var extensionRegex = regexp.MustCompile(`\.(\w{2,5})$`)

// Sized is a record with a URL and pixel dimensions.
type Sized interface {
	core.Record
	Dimensions() (width, height any)
}

// CompareMedia orders visual media: animated gifs first, then by larger
// max(width, height). Records without a URL compare equal to everything.
func CompareMedia[R Sized](a, b R) int {
	if !present(a.RecordURL()) || !present(b.RecordURL()) {
		return 0
	}

	aGIF := extension(text(a.RecordURL())) == "gif"
	bGIF := extension(text(b.RecordURL())) == "gif"
	switch {
	case aGIF && !bGIF:
		return -1
	case !aGIF && bGIF:
		return 1
	}
	return sign(maxDimension(b) - maxDimension(a))
}

// CompareSongs orders album tracks by disc, then track. Songs without a
// track number compare equal to everything.
func CompareSongs(a, b core.MusicSongObject) int {
	if !present(a.Track) || !present(b.Track) {
		return 0
	}

	aDisc, bDisc := number(a.Disc), number(b.Disc)
	switch {
	case aDisc > bDisc:
		return 1
	case aDisc < bDisc:
		return -1
	}
	return sign(number(a.Track) - number(b.Track))
}

// extension returns the lower-cased file extension of a URL, or "".
func extension(url string) string {
	m := extensionRegex.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

func maxDimension(r Sized) float64 {
	w, h := r.Dimensions()
	return math.Max(number(w), number(h))
}
