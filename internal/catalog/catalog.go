package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

// Catalog bundles every read-only table the page builders consume. Builders
// receive it explicitly; nothing reads the package-level tables directly.
type Catalog struct {
	Featured     []Product
	Full         []Product
	Categories   []Category
	Locations    []Location
	Personas     []Persona
	Glossary     []GlossaryTerm
	Comparisons  []Comparison
	Heights      []int
	Widths       []int
	Depths       []int
	WidthNotes   map[int]string
	HeightNotes  map[int][]string
	UseCases     []UseCase
	Pages        []Page
	Curations    []Curation
	Guides       []Guide
	Examples     []Example
	Profiles     []Profile
	Conversions  []Conversion
	Translations []Translation
	Integrations []Integration
	// IntegrationFAQs is appended to every integration page.
	IntegrationFAQs []model.FAQ

	// PageExt is appended to page slugs when building links.
	PageExt string
}

// Default assembles the site tables. The result is fresh on every call so
// callers may adjust fields such as PageExt without affecting each other.
func Default() *Catalog {
	c := &Catalog{
		Categories:      slices.Clone(categories),
		Locations:       slices.Clone(locations),
		Personas:        slices.Clone(personas),
		Glossary:        slices.Clone(glossary),
		Comparisons:     slices.Clone(comparisons),
		Heights:         slices.Clone(heights),
		Widths:          slices.Clone(widths),
		Depths:          slices.Clone(depths),
		WidthNotes:      widthNotes,
		HeightNotes:     heightNotes,
		UseCases:        slices.Clone(useCases),
		Pages:           slices.Clone(existingPages),
		Curations:       slices.Clone(curations),
		Guides:          slices.Clone(guides),
		Examples:        slices.Clone(examples),
		Profiles:        slices.Clone(profiles),
		Conversions:     slices.Clone(conversions),
		Translations:    slices.Clone(translations),
		Integrations:    slices.Clone(integrations),
		IntegrationFAQs: slices.Clone(integrationFAQs),
		PageExt:         ".html",
	}
	c.Featured = mustProducts(featuredSlugs)
	c.Full = mustProducts(catalogSlugs)

	for i := range c.Comparisons {
		c.fillPrice(&c.Comparisons[i].A)
		c.fillPrice(&c.Comparisons[i].B)
	}
	return c
}

func mustProducts(slugs []string) []Product {
	out := make([]Product, 0, len(slugs))
	for _, s := range slugs {
		p, err := ParseProductSlug(s)
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		p.Bestseller = s == bestsellerSlug
		out = append(out, p)
	}
	return out
}

func (c *Catalog) fillPrice(item *ComparisonItem) {
	if item.PriceFrom != 0 {
		return
	}
	item.PriceFrom = c.MinPrice(Filter{Height: item.Height, Width: item.Width, Color: item.Color})
}

// Filter narrows a product lookup. Zero fields match anything.
type Filter struct {
	Height int
	Width  int
	Color  ColorClass
}

func (f Filter) Match(p Product) bool {
	return (f.Height == 0 || p.Height == f.Height) &&
		(f.Width == 0 || p.Width == f.Width) &&
		(f.Color == "" || p.Color == f.Color)
}

// MinPrice is the lowest price in the full catalog among matching products,
// or 0 when nothing matches.
func (c *Catalog) MinPrice(f Filter) int {
	min := 0
	for _, p := range c.Full {
		if !f.Match(p) {
			continue
		}
		if min == 0 || p.Price < min {
			min = p.Price
		}
	}
	return min
}

// Count returns how many products of the full catalog match f.
func (c *Catalog) Count(f Filter) int {
	n := 0
	for _, p := range c.Full {
		if f.Match(p) {
			n++
		}
	}
	return n
}

// Href is the relative link to a page.
func (c *Catalog) Href(slug string) string {
	return slug + c.PageExt
}

// Product looks a slug up among featured products first, then the full catalog.
func (c *Catalog) Product(slug string) (Product, bool) {
	for _, list := range [][]Product{c.Featured, c.Full} {
		if i := slices.IndexFunc(list, func(p Product) bool { return p.Slug == slug }); i >= 0 {
			return list[i], true
		}
	}
	return Product{}, false
}

// FeaturedMatching returns featured products whose slug contains any of the
// given fragments, in featured order.
func (c *Catalog) FeaturedMatching(fragments []string) []Product {
	var out []Product
	for _, p := range c.Featured {
		for _, f := range fragments {
			if f != "" && strings.Contains(p.Slug, f) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (c *Catalog) Category(id string) (Category, bool) {
	i := slices.IndexFunc(c.Categories, func(cat Category) bool { return cat.ID == id })
	if i < 0 {
		return Category{}, false
	}
	return c.Categories[i], true
}

func (c *Catalog) Term(id string) (GlossaryTerm, bool) {
	i := slices.IndexFunc(c.Glossary, func(t GlossaryTerm) bool { return t.ID == id })
	if i < 0 {
		return GlossaryTerm{}, false
	}
	return c.Glossary[i], true
}

// Colors lists every finish in display order.
func (c *Catalog) Colors() []Color {
	order := []ColorClass{Black, White, Red, Blue, Zinc, Professional}
	out := make([]Color, len(order))
	for i, cl := range order {
		out[i] = colors[cl]
	}
	return out
}

// Bestseller is the headline product quoted in page copy.
func (c *Catalog) Bestseller() Product {
	for _, p := range c.Featured {
		if p.Bestseller {
			return p
		}
	}
	return c.Featured[0]
}
