package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasMediaGroups(t *testing.T) {
	idx := Index(Catalog)

	group := []string{
		"og:image", "og:image:width", "og:image:height", "og:image:type",
		"og:video", "og:video:width", "og:video:height", "og:video:type",
		"twitter:image", "twitter:image:src", "twitter:image:width", "twitter:image:height", "twitter:image:alt",
		"twitter:player", "twitter:player:width", "twitter:player:height", "twitter:player:stream",
		"music:song", "music:song:track", "music:song:disc",
	}
	for _, prop := range group {
		fd, ok := idx[prop]
		require.True(t, ok, "missing %s", prop)
		assert.True(t, fd.Multiple, "%s should be multiple", prop)
	}
}

func TestCatalogFieldNamesUnique(t *testing.T) {
	seen := make(map[string]bool, len(Catalog))
	for _, fd := range Catalog {
		assert.False(t, seen[fd.FieldName], "duplicate field name %s", fd.FieldName)
		seen[fd.FieldName] = true
	}
}

func TestIndex(t *testing.T) {
	idx := Index(Catalog)
	fd, ok := idx["og:image:secure_url"]
	require.True(t, ok)
	assert.Equal(t, "ogImageSecureURL", fd.FieldName)
	assert.Equal(t, "twitterTitle", idx["twitter:title"].FieldName)
}
