package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordsOf(t *testing.T) {
	img := ImageObject{URL: "a.png"}
	songs := []MusicSongObject{{URL: "s1"}, {URL: "s2"}}

	assert.Equal(t, []Record{img}, RecordsOf(img))
	assert.Len(t, RecordsOf(songs), 2)
	assert.Equal(t, "s2", RecordsOf(songs)[1].RecordURL())

	assert.Nil(t, RecordsOf(nil))
	assert.Nil(t, RecordsOf("a.png"))
	assert.Nil(t, RecordsOf([]any{"a.png", nil}))
}

func TestIsRecords(t *testing.T) {
	assert.True(t, IsRecords(TwitterPlayerObject{URL: "p"}))
	assert.True(t, IsRecords([]TwitterImageObject{{URL: "i"}}))
	assert.False(t, IsRecords([]ImageObject{}))
	assert.False(t, IsRecords([]any{nil}))
}

func TestAttributesOrder(t *testing.T) {
	attrs := TwitterPlayerObject{URL: "u", Width: "1", Height: "2", Stream: "s"}.Attributes()
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"url", "width", "height", "stream"}, names)
}
