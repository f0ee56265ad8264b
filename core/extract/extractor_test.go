package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/ogmedia/core/fields"
)

const samplePage = `<!DOCTYPE html>
<html lang="fr">
<head>
  <title> Album page </title>
  <meta property="og:title" content="First title">
  <meta property="og:title" content="Second title">
  <meta property="og:image" content="https://x.test/a.png">
  <meta property="og:image:width" content="1200">
  <meta property="og:image" content="https://x.test/b.gif">
  <meta property="OG:IMAGE:WIDTH" content=" 300 ">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:image:src" content="https://x.test/t.jpg">
  <meta property="music:song" content="https://x.test/song/1">
  <meta property="music:song:track" content="1">
  <meta name="description" content="not in the catalog">
  <meta property="og:image:height">
</head>
<body></body>
</html>`

func TestExtract(t *testing.T) {
	got, err := New(fields.Catalog).Extract(samplePage)
	require.NoError(t, err)

	assert.Equal(t, "Album page", got.Title)
	assert.Equal(t, "fr", got.Language)

	meta := got.Meta
	assert.Equal(t, "First title", meta["ogTitle"])
	assert.Equal(t, []any{"https://x.test/a.png", "https://x.test/b.gif"}, meta["ogImage"])
	assert.Equal(t, []any{"1200", "300"}, meta["ogImageWidth"])
	assert.Equal(t, "summary_large_image", meta["twitterCard"])
	assert.Equal(t, []any{"https://x.test/t.jpg"}, meta["twitterImageSrc"])
	assert.Equal(t, []any{"https://x.test/song/1"}, meta["musicSong"])
	assert.Equal(t, []any{"1"}, meta["musicSongTrack"])
	assert.NotContains(t, meta, "description")
	assert.NotContains(t, meta, "ogImageHeight")
}

func TestExtractDefaultsLanguage(t *testing.T) {
	got, err := New(fields.Catalog).Extract("<html><head><title>x</title></head></html>")
	require.NoError(t, err)

	assert.Equal(t, "en", got.Language)
	assert.Empty(t, got.Meta)
}
