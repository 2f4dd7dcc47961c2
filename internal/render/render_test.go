package render

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/schema"
)

var site = schema.Site{
	Name:    "Bazarovyregal.cz",
	BaseURL: "https://www.bazarovyregal.cz",
	Email:   "info@bazarovyregal.cz",
	PageExt: ".html",
}

func fixedNow() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

func record() model.ContentRecord {
	return model.ContentRecord{
		Slug:               "kovove-regaly-plzen",
		Title:              "Kovové regály Plzeň | Bazarovyregal.cz",
		MetaDescription:    `Regály "levně" v Plzni.`,
		H1:                 "Kovové regály Plzeň",
		BodyHTML:           "<p>Tělo stránky</p>",
		BreadcrumbCategory: "Lokality",
		Type:               model.Locations,
		Locale:             "cs",
		FAQs:               []model.FAQ{{Question: "Kdy?", Answer: "Hned."}},
	}
}

func TestPage(t *testing.T) {
	r, err := New(Options{Site: site, OGImage: "https://cdn.example/img.jpg", Now: fixedNow})
	require.NoError(t, err)

	out, err := r.Page(record(), []model.RelatedLink{{Href: "kovove-regaly-brno.html", Title: "Kovové regály Brno"}})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)

	assert.Equal(t, "cs", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "Kovové regály Plzeň | Bazarovyregal.cz", doc.Find("title").Text())
	assert.Equal(t, `Regály "levně" v Plzni.`, doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	assert.Equal(t, "https://www.bazarovyregal.cz/kovove-regaly-plzen.html", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, "cs_CZ", doc.Find(`meta[property="og:locale"]`).AttrOr("content", ""))
	assert.Equal(t, "https://cdn.example/img.jpg", doc.Find(`meta[property="og:image"]`).AttrOr("content", ""))
	assert.Equal(t, 3, doc.Find(`script[type="application/ld+json"]`).Length())
	assert.Equal(t, "Kovové regály Plzeň", doc.Find("main h1").Text())
	assert.Equal(t, "Tělo stránky", doc.Find(".prose p").Text())
	assert.Equal(t, "Lokality", doc.Find(`nav[aria-label="breadcrumb"] a[href="katalog.html"]`).Text())
	assert.Equal(t, "kovove-regaly-brno.html", doc.Find("section a").AttrOr("href", ""))
	assert.Contains(t, doc.Find("footer").Text(), "2026 Bazarovyregal.cz")
	assert.Equal(t, 1, doc.Find(`script[src="chatbot.js"]`).Length())
}

func TestPageSlovakLocale(t *testing.T) {
	r, err := New(Options{Site: site, Now: fixedNow})
	require.NoError(t, err)
	rec := record()
	rec.Locale = "sk"
	out, err := r.Page(rec, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<html lang="sk">`)
	assert.Contains(t, string(out), `content="sk_SK"`)
	assert.NotContains(t, string(out), "Související stránky")
}

func TestPageEscapesHeading(t *testing.T) {
	r, err := New(Options{Site: site, Now: fixedNow})
	require.NoError(t, err)
	rec := record()
	rec.H1 = "<b>Plzeň</b>"
	out, err := r.Page(rec, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<b>Plzeň</b>")
	assert.Contains(t, string(out), "&lt;b&gt;Plzeň&lt;/b&gt;")
}

func TestCustomLayouts(t *testing.T) {
	layouts := fstest.MapFS{
		"base.html":          {Data: []byte(`<html lang="{{.Lang}}">{{template "x" .}}</html>`)},
		"partials/x.html":    {Data: []byte(`{{define "x"}}{{.Record.H1}}|{{page "faq"}}{{end}}`)},
		"partials/notes.txt": {Data: []byte(`ignored`)},
	}
	r, err := New(Options{Site: site, Layouts: layouts, Now: fixedNow})
	require.NoError(t, err)
	out, err := r.Page(record(), nil)
	require.NoError(t, err)
	assert.Equal(t, `<html lang="cs">Kovové regály Plzeň|faq.html</html>`, string(out))
}

func TestMissingBaseLayout(t *testing.T) {
	_, err := New(Options{Site: site, Layouts: fstest.MapFS{}})
	assert.ErrorContains(t, err, "base.html")
}
