// Package playbook holds one page builder per content archetype. Builders
// are pure functions of the catalog: no I/O, same input gives the same pages.
package playbook

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const (
	titleSuffix   = " | Bazarovyregal.cz"
	metaMaxRunes  = 155
	cardCount     = 4
	internalLinks = 6
	maxOffers     = 6
)

// Builder turns the catalog into the records of one archetype.
type Builder func(*catalog.Catalog) ([]model.ContentRecord, error)

// Playbook pairs a builder with the archetype it produces.
type Playbook struct {
	Type  model.PlaybookType
	Label string
	Build Builder
}

// All returns every catalog-driven playbook in generation order.
func All() []Playbook {
	return []Playbook{
		{model.Locations, "Location", Locations},
		{model.Personas, "Persona", Personas},
		{model.Glossary, "Glossary", Glossary},
		{model.Comparisons, "Comparison", Comparisons},
		{model.Curation, "Curation", Curations},
		{model.Templates, "Template", Guides},
		{model.Examples, "Example", Examples},
		{model.Directory, "Directory", Directory},
		{model.Profiles, "Profile", Profiles},
		{model.Conversions, "Conversion", Conversions},
		{model.Translations, "Translation", Translations},
		{model.Integrations, "Integration", Integrations},
	}
}

// Lookup finds a playbook by type.
func Lookup(t model.PlaybookType) (Playbook, bool) {
	all := All()
	i := slices.IndexFunc(all, func(p Playbook) bool { return p.Type == t })
	if i < 0 {
		return Playbook{}, false
	}
	return all[i], true
}

// card is a product tile in a body fragment.
type card struct {
	Href     string
	Name     string
	Image    string
	Price    int
	Original int
	Discount int
	Capacity int
}

type link struct {
	Href  string
	Title string
}

// common is embedded in every fragment's data.
type common struct {
	Cards    []card
	FAQs     []model.FAQ
	Links    []link
	MinPrice int
}

func newCommon(c *catalog.Catalog, slug string, products []catalog.Product, faqs []model.FAQ) common {
	return common{
		Cards:    cards(c, products, cardCount),
		FAQs:     faqs,
		Links:    links(c, slug),
		MinPrice: c.MinPrice(catalog.Filter{}),
	}
}

func cards(c *catalog.Catalog, products []catalog.Product, n int) []card {
	out := make([]card, 0, n)
	for _, p := range products {
		if len(out) == n {
			break
		}
		out = append(out, toCard(c, p))
	}
	return out
}

func toCard(c *catalog.Catalog, p catalog.Product) card {
	return card{
		Href:     c.Href(p.Slug),
		Name:     p.Name(),
		Image:    p.Image(),
		Price:    p.Price,
		Original: p.PriceOriginal,
		Discount: p.Discount(),
		Capacity: p.Capacity,
	}
}

// links lists the first hand-written pages, skipping the page being built.
func links(c *catalog.Catalog, exclude string) []link {
	out := make([]link, 0, internalLinks)
	for _, p := range c.Pages {
		if len(out) == internalLinks {
			break
		}
		if p.Slug == exclude {
			continue
		}
		out = append(out, link{Href: c.Href(p.Slug), Title: p.Title})
	}
	return out
}

func offers(c *catalog.Catalog, products []catalog.Product) []model.Offer {
	n := min(len(products), maxOffers)
	out := make([]model.Offer, 0, n)
	for _, p := range products[:n] {
		out = append(out, model.Offer{Name: p.Name(), Price: p.Price, URL: c.Href(p.Slug)})
	}
	return out
}

// cheapest returns the featured products ordered by price, stable on ties.
func cheapest(c *catalog.Catalog) []catalog.Product {
	out := slices.Clone(c.Featured)
	slices.SortStableFunc(out, func(a, b catalog.Product) int { return a.Price - b.Price })
	return out
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

func record(slug, title, meta, h1, category string, t model.PlaybookType) model.ContentRecord {
	return model.ContentRecord{
		Slug:               slug,
		Title:              title + titleSuffix,
		MetaDescription:    truncate(meta, metaMaxRunes),
		H1:                 h1,
		BreadcrumbCategory: category,
		Type:               t,
		Locale:             "cs",
	}
}

// fill renders the named fragment into rec's body.
func fill(rec *model.ContentRecord, name string, data any) error {
	body, err := render(name, data)
	if err != nil {
		return fmt.Errorf("%s %s: %w", rec.Type, rec.Slug, err)
	}
	rec.BodyHTML = body
	return nil
}

// stat is a highlighted figure with a caption.
type stat struct {
	Value string
	Label string
}
