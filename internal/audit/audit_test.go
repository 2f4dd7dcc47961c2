package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/playbook"
	"github.com/michalbaturko-lang/bazarovyregal/internal/render"
	"github.com/michalbaturko-lang/bazarovyregal/internal/schema"
	"github.com/michalbaturko-lang/bazarovyregal/internal/sitemap"
)

const baseURL = "https://www.bazarovyregal.cz"

func newAuditor(t *testing.T) *Auditor {
	t.Helper()
	a, err := New(baseURL, nil)
	require.NoError(t, err)
	return a
}

func renderedLocation(t *testing.T) []byte {
	t.Helper()
	recs, err := playbook.Locations(catalog.Default())
	require.NoError(t, err)
	var plzen model.ContentRecord
	for _, r := range recs {
		if r.Slug == "kovove-regaly-plzen" {
			plzen = r
		}
	}
	require.NotEmpty(t, plzen.Slug)

	r, err := render.New(render.Options{Site: schema.Site{Name: "Bazarovyregal.cz", BaseURL: baseURL, PageExt: ".html"}})
	require.NoError(t, err)
	page, err := r.Page(plzen, nil)
	require.NoError(t, err)
	return page
}

func checks(findings []Finding) map[string]Severity {
	out := map[string]Severity{}
	for _, f := range findings {
		out[f.Check] = f.Severity
	}
	return out
}

func TestRenderedPagePasses(t *testing.T) {
	found := newAuditor(t).Page("kovove-regaly-plzen.html", renderedLocation(t))
	for _, f := range found {
		assert.NotEqual(t, Error, f.Severity, f.String())
	}
	assert.NotContains(t, checks(found), "language")
	assert.NotContains(t, checks(found), "head")
}

const czech = "Kovové regály do garáže a sklepa jsou řešením pro každého, kdo potřebuje uložit nářadí, " +
	"pneumatiky a zimní zásoby. Police unesou až sto sedmdesát pět kilogramů a montáž zvládnete bez šroubů " +
	"za deset minut. Rozměry si vyberete podle místa, které máte k dispozici, a barvu podle toho, kde bude " +
	"regál stát. Zinkovaný povrch vydrží vlhko lépe než lakovaný."

func TestBrokenPage(t *testing.T) {
	page := `<!DOCTYPE html><html lang="sk"><head>
<meta charset="UTF-8">
<title>Regály</title>
<meta name="description" content="Popis">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"FAQPage"}</script>
</head><body><main><article><p>` + czech + `</p></article></main></body></html>`

	found := newAuditor(t).Page("regaly.html", []byte(page))
	var msgs []string
	for _, f := range found {
		msgs = append(msgs, f.String())
	}
	joined := strings.Join(msgs, "\n")

	assert.Contains(t, joined, "regaly.html: [error] head: missing canonical link")
	assert.Contains(t, joined, "[error] json-ld: block 1: FAQPage")
	assert.Contains(t, joined, "[warning] head: missing viewport")
	assert.Contains(t, joined, "[warning] language: text reads as cs but lang is sk")
	assert.Contains(t, joined, "[warning] words:")
}

func TestShortPageSkipsLanguage(t *testing.T) {
	page := `<html lang="en"><head><title>x</title></head><body><p>Regál černý</p></body></html>`
	found := newAuditor(t).Page("x.html", []byte(page))
	assert.NotContains(t, checks(found), "language")
	assert.Equal(t, Warning, checks(found)["json-ld"])
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), renderedLocation(t), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robots.txt"), []byte(sitemap.Robots(baseURL+"/sitemap.xml", nil)), 0o644))
	entries, _ := sitemap.Merge(nil, []string{baseURL + "/", baseURL + "/index.html", baseURL + "/chybi.html", "https://example.com/x.html"},
		sitemap.Options{Today: "2026-10-17", TouchAll: true})
	require.NoError(t, sitemap.Write(filepath.Join(dir, "sitemap.xml"), entries, false))

	rep, err := newAuditor(t).Dir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Files)
	assert.Zero(t, rep.Errors())

	var sitemapMsgs, missing []string
	for _, f := range rep.Findings {
		switch f.Check {
		case "sitemap":
			sitemapMsgs = append(sitemapMsgs, f.Message)
		case "critical":
			missing = append(missing, f.File)
		}
	}
	assert.Equal(t, []string{"chybi.html is listed but missing"}, sitemapMsgs)
	assert.Equal(t, []string{"katalog.html", "kontakt.html", "faq.html"}, missing)
}

func TestPrimarySubtag(t *testing.T) {
	assert.Equal(t, "cs", primarySubtag("cs-CZ"))
	assert.Equal(t, "sk", primarySubtag(" SK_sk"))
	assert.Equal(t, "", primarySubtag(""))
}
