// Package fields holds the catalog of meta properties ogmedia understands.
// The catalog maps each property (og:image:width) to the field name it is
// stored under in a core.Object (ogImageWidth) and says whether the property
// may repeat within one document.
package fields

import (
	"strings"

	"github.com/gaurav-prasanna/ogmedia/core"
)

// Catalog is the ordered field-definition table.
var Catalog = []core.FieldDescriptor{
	// Open Graph basics.
	{Property: "og:title", FieldName: "ogTitle"},
	{Property: "og:type", FieldName: "ogType"},
	{Property: "og:url", FieldName: "ogUrl"},
	{Property: "og:description", FieldName: "ogDescription"},
	{Property: "og:site_name", FieldName: "ogSiteName"},
	{Property: "og:determiner", FieldName: "ogDeterminer"},
	{Property: "og:locale", FieldName: "ogLocale"},
	{Property: "og:locale:alternate", FieldName: "ogLocaleAlternate", Multiple: true},

	// og:image group.
	{Property: "og:image", FieldName: "ogImage", Multiple: true},
	{Property: "og:image:url", FieldName: "ogImageURL", Multiple: true},
	{Property: "og:image:secure_url", FieldName: "ogImageSecureURL", Multiple: true},
	{Property: "og:image:width", FieldName: "ogImageWidth", Multiple: true},
	{Property: "og:image:height", FieldName: "ogImageHeight", Multiple: true},
	{Property: "og:image:type", FieldName: "ogImageType", Multiple: true},

	// og:video group.
	{Property: "og:video", FieldName: "ogVideo", Multiple: true},
	{Property: "og:video:url", FieldName: "ogVideoURL", Multiple: true},
	{Property: "og:video:secure_url", FieldName: "ogVideoSecureURL", Multiple: true},
	{Property: "og:video:width", FieldName: "ogVideoWidth", Multiple: true},
	{Property: "og:video:height", FieldName: "ogVideoHeight", Multiple: true},
	{Property: "og:video:type", FieldName: "ogVideoType", Multiple: true},

	{Property: "og:audio", FieldName: "ogAudio"},
	{Property: "og:audio:url", FieldName: "ogAudioURL"},
	{Property: "og:audio:secure_url", FieldName: "ogAudioSecureURL"},
	{Property: "og:audio:type", FieldName: "ogAudioType"},

	// Twitter Cards.
	{Property: "twitter:card", FieldName: "twitterCard"},
	{Property: "twitter:site", FieldName: "twitterSite"},
	{Property: "twitter:site:id", FieldName: "twitterSiteId"},
	{Property: "twitter:creator", FieldName: "twitterCreator"},
	{Property: "twitter:creator:id", FieldName: "twitterCreatorId"},
	{Property: "twitter:title", FieldName: "twitterTitle"},
	{Property: "twitter:description", FieldName: "twitterDescription"},
	{Property: "twitter:image", FieldName: "twitterImage", Multiple: true},
	{Property: "twitter:image:src", FieldName: "twitterImageSrc", Multiple: true},
	{Property: "twitter:image:width", FieldName: "twitterImageWidth", Multiple: true},
	{Property: "twitter:image:height", FieldName: "twitterImageHeight", Multiple: true},
	{Property: "twitter:image:alt", FieldName: "twitterImageAlt", Multiple: true},
	{Property: "twitter:player", FieldName: "twitterPlayer", Multiple: true},
	{Property: "twitter:player:width", FieldName: "twitterPlayerWidth", Multiple: true},
	{Property: "twitter:player:height", FieldName: "twitterPlayerHeight", Multiple: true},
	{Property: "twitter:player:stream", FieldName: "twitterPlayerStream", Multiple: true},
	{Property: "twitter:player:stream:content_type", FieldName: "twitterPlayerStreamContentType"},
	{Property: "twitter:app:name:iphone", FieldName: "twitterAppNameiPhone"},
	{Property: "twitter:app:id:iphone", FieldName: "twitterAppIdiPhone"},
	{Property: "twitter:app:url:iphone", FieldName: "twitterAppUrliPhone"},
	{Property: "twitter:app:name:googleplay", FieldName: "twitterAppNameGooglePlay"},
	{Property: "twitter:app:id:googleplay", FieldName: "twitterAppIdGooglePlay"},
	{Property: "twitter:app:url:googleplay", FieldName: "twitterAppUrlGooglePlay"},

	// Music.
	{Property: "music:song", FieldName: "musicSong", Multiple: true},
	{Property: "music:song:track", FieldName: "musicSongTrack", Multiple: true},
	{Property: "music:song:disc", FieldName: "musicSongDisc", Multiple: true},
	{Property: "music:album", FieldName: "musicAlbum"},
	{Property: "music:album:disc", FieldName: "musicAlbumDisc"},
	{Property: "music:album:track", FieldName: "musicAlbumTrack"},
	{Property: "music:musician", FieldName: "musicMusician", Multiple: true},
	{Property: "music:duration", FieldName: "musicDuration"},
	{Property: "music:release_date", FieldName: "musicReleaseDate"},
	{Property: "music:creator", FieldName: "musicCreator"},

	// Object types.
	{Property: "article:published_time", FieldName: "articlePublishedTime"},
	{Property: "article:modified_time", FieldName: "articleModifiedTime"},
	{Property: "article:author", FieldName: "articleAuthor", Multiple: true},
	{Property: "article:section", FieldName: "articleSection"},
	{Property: "article:tag", FieldName: "articleTag", Multiple: true},
	{Property: "book:author", FieldName: "bookAuthor", Multiple: true},
	{Property: "book:isbn", FieldName: "bookIsbn"},
	{Property: "book:release_date", FieldName: "bookReleaseDate"},
	{Property: "profile:first_name", FieldName: "profileFirstName"},
	{Property: "profile:last_name", FieldName: "profileLastName"},
	{Property: "profile:username", FieldName: "profileUsername"},
	{Property: "profile:gender", FieldName: "profileGender"},
}

// Index returns the catalog keyed by lower-cased property.
func Index(catalog []core.FieldDescriptor) map[string]core.FieldDescriptor {
	idx := make(map[string]core.FieldDescriptor, len(catalog))
	for _, fd := range catalog {
		key := strings.ToLower(fd.Property)
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = fd
	}
	return idx
}
