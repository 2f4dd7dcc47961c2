package sitemap

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const base = "https://www.bazarovyregal.cz/"

func opts() Options {
	return Options{Today: "2026-10-17", ChangeFreq: "weekly", Priority: "0.7", TouchAll: true}
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "sitemap.xml"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadMalformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(file, []byte("<urlset><url><loc>x"), 0o644))
	_, err := Read(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), file)
}

func TestMergeOrderAndCounts(t *testing.T) {
	existing := []Entry{{Loc: base + "katalog.html", LastMod: "2024-01-01"}, {Loc: base + "index.html"}}
	generated := []string{base + "kovove-regaly-plzen.html", base + "index.html", base + "kovove-regaly-brno.html"}

	out, stats := Merge(existing, generated, opts())
	assert.Equal(t, []string{
		base + "index.html",
		base + "katalog.html",
		base + "kovove-regaly-brno.html",
		base + "kovove-regaly-plzen.html",
	}, URLs(out))
	assert.Equal(t, Stats{Existing: 2, Added: 2, Total: 4}, stats)
	for _, e := range out {
		assert.Equal(t, "2026-10-17", e.LastMod)
		assert.Equal(t, "weekly", e.ChangeFreq)
		assert.Equal(t, "0.7", e.Priority)
	}
}

func TestMergeKeepsLastModWithoutTouchAll(t *testing.T) {
	o := opts()
	o.TouchAll = false
	o.Changed = map[string]bool{base + "b.html": true}
	existing := []Entry{{Loc: base + "a.html", LastMod: "2024-01-01"}, {Loc: base + "b.html", LastMod: "2024-01-01"}}

	out, _ := Merge(existing, []string{base + "a.html", base + "b.html", base + "c.html"}, o)
	require.Len(t, out, 3)
	assert.Equal(t, "2024-01-01", out[0].LastMod)
	assert.Equal(t, "2026-10-17", out[1].LastMod)
	assert.Equal(t, "2026-10-17", out[2].LastMod)
}

func TestMergeRules(t *testing.T) {
	o := opts()
	o.Rules = []Rule{
		{Prefix: "index", Priority: "1.0", ChangeFreq: "daily"},
		{Prefix: "regaly-", Priority: "0.8", ChangeFreq: "daily"},
		{Prefix: "o-nas", Priority: "0.7"},
		{Prefix: "", Priority: "0.6"},
	}
	out, _ := Merge(nil, []string{base, base + "regaly-vyska-180-cm.html", base + "o-nas.html", base + "slovnik-nosnost.html"}, o)

	got := map[string]Entry{}
	for _, e := range out {
		got[e.Loc] = e
	}
	assert.Equal(t, "1.0", got[base].Priority)
	assert.Equal(t, "daily", got[base].ChangeFreq)
	assert.Equal(t, "0.8", got[base+"regaly-vyska-180-cm.html"].Priority)
	assert.Equal(t, "0.7", got[base+"o-nas.html"].Priority)
	assert.Equal(t, "weekly", got[base+"o-nas.html"].ChangeFreq)
	assert.Equal(t, "0.6", got[base+"slovnik-nosnost.html"].Priority)
}

func TestWriteAndReadBack(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sitemap.xml")
	out, _ := Merge(nil, []string{base + "a.html", base + "b&c.html"}, opts())
	require.NoError(t, Write(file, out, true))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte(`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)))
	assert.Contains(t, string(b), "  <url>\n    <loc>https://www.bazarovyregal.cz/a.html</loc>\n    <lastmod>2026-10-17</lastmod>\n")
	assert.Contains(t, string(b), "b&amp;c.html")

	back, err := Read(file)
	require.NoError(t, err)
	assert.Equal(t, out, back)

	f, err := os.Open(file + ".gz")
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	unzipped, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, b, unzipped)
}

func TestMergeNeverDropsURLs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z]{1,6}\.html`)
		before := rapid.SliceOf(name).Draw(t, "before")
		generated := rapid.SliceOf(name).Draw(t, "generated")

		var existing []Entry
		for _, n := range before {
			existing = append(existing, Entry{Loc: base + n})
		}
		var urls []string
		for _, n := range generated {
			urls = append(urls, base+n)
		}

		first, _ := Merge(existing, urls, opts())
		second, stats := Merge(first, urls, opts())
		if stats.Added != 0 {
			t.Fatalf("second run added %d urls", stats.Added)
		}
		after := URLs(second)
		for _, e := range existing {
			if !slices.Contains(after, e.Loc) {
				t.Fatalf("%s dropped", e.Loc)
			}
		}
		for _, u := range urls {
			if !slices.Contains(after, u) {
				t.Fatalf("%s missing", u)
			}
		}
	})
}

func TestDateAndRobots(t *testing.T) {
	assert.Equal(t, "2026-03-01", Date(time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		"User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: https://www.bazarovyregal.cz/sitemap.xml\n",
		Robots("https://www.bazarovyregal.cz/sitemap.xml", []string{"/admin/"}))
}
