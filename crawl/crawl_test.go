package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/ogmedia/core/fetch"
)

func TestRules(t *testing.T) {
	assert.True(t, IsSameDomain("https://WWW.example.com/a", "example.com"))
	assert.False(t, IsSameDomain("https://other.com/a", "example.com"))

	assert.True(t, IsStaticAsset("https://example.com/cover.PNG"))
	assert.True(t, IsStaticAsset("https://example.com/feed.xml"))
	assert.False(t, IsStaticAsset("https://example.com/album/1"))

	assert.Equal(t, "https://example.com/docs", NormalizeURL("https://example.com/docs/#top"))
	assert.Equal(t, "https://example.com/", NormalizeURL("https://example.com/"))
}

func TestQueueDeduplicates(t *testing.T) {
	q := NewQueue()
	q.Add("a")
	q.Add("b")
	q.Add("a")

	assert.Equal(t, 2, q.Visited())
	assert.True(t, q.Seen("b"))
	require.True(t, q.HasNext())
	assert.Equal(t, "a", q.Next())
	assert.Equal(t, "b", q.Next())
	assert.False(t, q.HasNext())
	assert.Equal(t, []string{"a", "b"}, q.All())
}

func TestDiscoverAllFromSitemap(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sitemap.xml" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset>
  <url><loc>%[1]s/albums/</loc></url>
  <url><loc>%[1]s/albums</loc></url>
  <url><loc>%[1]s/cover.jpg</loc></url>
  <url><loc>https://elsewhere.test/page</loc></url>
  <url><loc>%[1]s/songs/1</loc></url>
</urlset>`, srv.URL)
	}))
	defer srv.Close()

	urls, err := DiscoverAll(context.Background(), srv.URL, fetch.New("", 0), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/albums", srv.URL + "/songs/1"}, urls)
}

func TestDiscoverAllFromLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<a href="/a">A</a><a href="/b#frag">B</a><a href="mailto:x@y">mail</a><a href="/img.png">img</a>`)
	})
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<a href="/">home</a><a href="/c">C</a>`)
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<p>leaf</p>`)
	})
	mux.HandleFunc("/c", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<p>leaf</p>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	urls, err := DiscoverAll(context.Background(), srv.URL+"/", fetch.New("", 0), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/", srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}, urls)

	urls, err = DiscoverAll(context.Background(), srv.URL+"/", fetch.New("", 0), 2)
	require.NoError(t, err)
	assert.Len(t, urls, 2)
}

func TestDiscoverAllSkipsSeenLinks(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<a href="/a">A</a><a href="/a/">A again</a><a href="/a#top">A top</a><a href="/">home</a>`)
	})
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `<a href="/">home</a><a href="/a">self</a>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	urls, err := DiscoverAll(context.Background(), srv.URL+"/", fetch.New("", 0), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/", srv.URL + "/a"}, urls)
	assert.Equal(t, 1, hits)
}
