package playbook

import (
	"fmt"
	"html/template"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/validate"
)

func buildAll(t *testing.T, c *catalog.Catalog) []model.ContentRecord {
	t.Helper()
	var out []model.ContentRecord
	for _, p := range All() {
		recs, err := p.Build(c)
		require.NoError(t, err, p.Label)
		require.NotEmpty(t, recs, p.Label)
		for _, r := range recs {
			require.Equal(t, p.Type, r.Type, r.Slug)
		}
		out = append(out, recs...)
	}
	return out
}

func minWords(t model.PlaybookType) int {
	if t == model.Directory || t == model.Conversions {
		return 200
	}
	return 300
}

func TestDefaultRecordsAreValid(t *testing.T) {
	c := catalog.Default()
	c.PageExt = ".html"
	recs := buildAll(t, c)

	seen := map[string]bool{}
	for _, r := range recs {
		assert.False(t, seen[r.Slug], "duplicate slug %s", r.Slug)
		seen[r.Slug] = true

		assert.NotEmpty(t, r.Title, r.Slug)
		assert.NotEmpty(t, r.H1, r.Slug)
		assert.NotEmpty(t, r.MetaDescription, r.Slug)
		assert.NotEmpty(t, r.BreadcrumbCategory, r.Slug)
		assert.LessOrEqual(t, utf8.RuneCountInString(r.MetaDescription), metaMaxRunes, r.Slug)
		assert.GreaterOrEqual(t, len(strings.Fields(string(r.BodyHTML))), minWords(r.Type), r.Slug)
		assert.LessOrEqual(t, len(r.Offers), maxOffers, r.Slug)
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	a := buildAll(t, catalog.Default())
	b := buildAll(t, catalog.Default())
	assert.Equal(t, a, b)
}

func TestLocationPlzen(t *testing.T) {
	c := catalog.Default()
	recs, err := Locations(c)
	require.NoError(t, err)
	require.Len(t, recs, len(c.Locations))

	var plzen *model.ContentRecord
	for i := range recs {
		if recs[i].Slug == "kovove-regaly-plzen" {
			plzen = &recs[i]
		}
	}
	require.NotNil(t, plzen)
	assert.Contains(t, plzen.H1, "Plzeň")
	assert.Equal(t, "Lokality", plzen.BreadcrumbCategory)
	assert.Equal(t, "cs", plzen.Locale)
	assert.True(t, strings.HasSuffix(plzen.Title, titleSuffix))
	require.NotEmpty(t, plzen.FAQs)
	assert.Contains(t, plzen.FAQs[0].Question, "doručení")
	assert.Contains(t, string(plzen.BodyHTML), "Plzeň")

	delivery := `<h3 class="font-bold mb-2">` + template.HTMLEscapeString(plzen.FAQs[0].Question) + `</h3>`
	assert.Contains(t, string(plzen.BodyHTML), delivery)
	assert.Contains(t, string(plzen.BodyHTML), template.HTMLEscapeString(plzen.FAQs[0].Answer))
}

func TestLocationsWithSameIDAreDuplicates(t *testing.T) {
	c := catalog.Default()
	plzen := c.Locations[0]
	for _, l := range c.Locations {
		if l.ID == "plzen" {
			plzen = l
		}
	}
	c.Locations = []catalog.Location{plzen, plzen}

	recs, err := Locations(c)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	valid, rejected := validate.Validate(recs)
	require.Len(t, valid, 1)
	assert.Equal(t, "kovove-regaly-plzen", valid[0].Slug)
	assert.Equal(t, []model.Rejection{{Slug: "kovove-regaly-plzen", Reason: validate.ReasonDuplicate}}, rejected)
}

func TestTableValuesAreEscaped(t *testing.T) {
	c := catalog.Default()
	c.Locations = []catalog.Location{{ID: "x", Name: `<script>alert("x")</script>`, Region: "R", Postal: "1"}}

	recs, err := Locations(c)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	body := string(recs[0].BodyHTML)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestPersonaFallsBackToFeatured(t *testing.T) {
	c := catalog.Default()
	c.PageExt = ".html"
	c.Personas = []catalog.Persona{{ID: "p", Name: "Nikdo", Slug: "regaly-pro-nikoho", Title: "Regály pro nikoho",
		Recommended: []string{"does-not-exist"}}}

	recs, err := Personas(c)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	body := string(recs[0].BodyHTML)
	for _, p := range c.Featured[:cardCount] {
		assert.Contains(t, body, c.Href(p.Slug))
	}
}

func TestCuratePadsSelection(t *testing.T) {
	c := catalog.Default()
	picked := curate(c, catalog.Curation{Picks: []string{"regal-180x120x50-profesionalni"}})
	require.Len(t, picked, defaultCurationLimit)
	assert.Equal(t, "regal-180x120x50-profesionalni", picked[0].Slug)

	seen := map[string]bool{}
	for _, p := range picked {
		assert.False(t, seen[p.Slug], p.Slug)
		seen[p.Slug] = true
	}

	cheap := curate(c, catalog.Curation{Colors: []catalog.ColorClass{catalog.Zinc}, Cheapest: true, Limit: 3})
	require.Len(t, cheap, 3)
	assert.Equal(t, catalog.Zinc, cheap[0].Color)
	assert.LessOrEqual(t, cheap[0].Price, cheap[1].Price)
}

func TestConversionOffers(t *testing.T) {
	c := catalog.Default()
	recs, err := Conversions(c)
	require.NoError(t, err)
	for _, r := range recs {
		require.Len(t, r.Offers, maxOffers, r.Slug)
		for i := 1; i < len(r.Offers); i++ {
			assert.LessOrEqual(t, r.Offers[i-1].Price, r.Offers[i].Price)
		}
	}
}

func TestConversionPriceTable(t *testing.T) {
	c := catalog.Default()
	recs, err := Conversions(c)
	require.NoError(t, err)
	for i, r := range recs {
		shown := strings.Contains(string(r.BodyHTML), "Aktuální ceník")
		assert.Equal(t, c.Conversions[i].Intent.ShowsPriceTable(), shown, r.Slug)
	}
}

func TestTranslationsAreSlovak(t *testing.T) {
	c := catalog.Default()
	recs, err := Translations(c)
	require.NoError(t, err)
	for i, r := range recs {
		assert.Equal(t, "sk", r.Locale)
		assert.Equal(t, c.Translations[i].Title, r.Title, "title is used as written")
		assert.Equal(t, 1, strings.Count(r.Title, "Bazarovyregal.cz"))
	}
}

func TestComparisonRowsSkipMissing(t *testing.T) {
	rows := featureRows(
		catalog.ComparisonItem{Name: "A", PriceFrom: 700, Height: 180},
		catalog.ComparisonItem{Name: "B", PriceFrom: 300},
	)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cena od", rows[0].Label)
	assert.Equal(t, "Výška", rows[1].Label)
	assert.Equal(t, missingValue, rows[1].B)
}

func TestDirectoryCombinations(t *testing.T) {
	c := catalog.Default()

	want := 0
	for _, h := range c.Heights {
		for _, w := range c.Widths {
			if c.Count(catalog.Filter{Height: h, Width: w}) > 0 {
				want++
			}
		}
	}
	want *= len(c.UseCases)
	require.NotZero(t, want)

	n := 0
	widths := map[int]bool{}
	for cb := range DirectoryCombinations(c) {
		n++
		widths[cb.Width] = true
		assert.NotZero(t, c.Count(catalog.Filter{Height: cb.Height, Width: cb.Width}), cb.Slug())
	}
	assert.Equal(t, want, n)
	assert.Greater(t, len(widths), 1)

	var first []Combination
	for cb := range DirectoryCombinations(c) {
		first = append(first, cb)
		if len(first) == 2 {
			break
		}
	}
	require.Len(t, first, 2)
	assert.Equal(t, fmt.Sprintf("regaly-na-naradi-%dx%d-cm", first[0].Height, first[0].Width), first[0].Slug())
	assert.Equal(t, first[0].UseCase, first[1].UseCase)

	recs, err := Directory(c)
	require.NoError(t, err)
	assert.Len(t, recs, len(c.Heights)+len(c.Widths)+len(c.UseCases)+2+n)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(model.Glossary)
	require.True(t, ok)
	assert.Equal(t, "Glossary", p.Label)

	_, ok = Lookup(model.Editorial)
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		n := rapid.IntRange(0, 200).Draw(t, "n")
		got := truncate(s, n)
		if utf8.RuneCountInString(got) > n {
			t.Fatalf("truncate(%q, %d) = %q is too long", s, n, got)
		}
		if !strings.HasPrefix(s, got) {
			t.Fatalf("truncate(%q, %d) = %q is not a prefix", s, n, got)
		}
	})
}

func TestJoinLower(t *testing.T) {
	assert.Equal(t, "", joinLower(nil))
	assert.Equal(t, "cena", joinLower([]string{"Cena"}))
	assert.Equal(t, "cena, nosnost a montáž", joinLower([]string{"Cena", "Nosnost", "Montáž"}))
}
