// Package schema builds the schema.org JSON-LD blocks embedded in page heads
// and validates them against bundled JSON Schemas.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const (
	schemaContext = "https://schema.org"
	inStock       = "https://schema.org/InStock"
	newCondition  = "https://schema.org/NewCondition"
	currency      = "CZK"

	homeCrumb    = "Úvod"
	catalogSlug  = "katalog"
	productCrumb = "Kovové regály"

	maxOffers        = 6
	headlineMaxRunes = 110
	abstractMaxRunes = 200
)

// Site carries the publisher details every block refers to.
type Site struct {
	Name        string
	BaseURL     string
	Email       string
	Logo        string
	Description string
	PageExt     string
}

// URL is the absolute address of a page.
func (s Site) URL(slug string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + slug + s.PageExt
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// Organization is used both as a top-level block and nested as publisher or
// seller; Logo is a URL string at top level and an ImageObject when nested.
type Organization struct {
	Context     string `json:"@context,omitempty"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Logo        any    `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
}

type WebSite struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type WebPage struct {
	Context     string       `json:"@context"`
	Type        string       `json:"@type"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	InLanguage  string       `json:"inLanguage"`
	IsPartOf    WebSite      `json:"isPartOf"`
	Publisher   Organization `json:"publisher"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Offer struct {
	Type          string        `json:"@type"`
	Name          string        `json:"name,omitempty"`
	URL           string        `json:"url"`
	Price         int           `json:"price"`
	PriceCurrency string        `json:"priceCurrency"`
	Availability  string        `json:"availability"`
	ItemCondition string        `json:"itemCondition,omitempty"`
	Seller        *Organization `json:"seller,omitempty"`
}

type OfferCatalog struct {
	Context         string  `json:"@context"`
	Type            string  `json:"@type"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ItemListElement []Offer `json:"itemListElement"`
}

type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Product struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Brand       Brand  `json:"brand"`
	SKU         string `json:"sku"`
	MPN         string `json:"mpn"`
	Offers      Offer  `json:"offers"`
}

type PageRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type Article struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	Author           Organization `json:"author"`
	Publisher        Organization `json:"publisher"`
	DatePublished    string       `json:"datePublished,omitempty"`
	MainEntityOfPage PageRef      `json:"mainEntityOfPage"`
}

// Breadcrumb is Úvod › category › page; the category links to the catalog
// and the last crumb has no link.
func Breadcrumb(site Site, rec model.ContentRecord) BreadcrumbList {
	return BreadcrumbList{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []ListItem{
			{Type: "ListItem", Position: 1, Name: homeCrumb, Item: site.URL("index")},
			{Type: "ListItem", Position: 2, Name: rec.BreadcrumbCategory, Item: site.URL(catalogSlug)},
			{Type: "ListItem", Position: 3, Name: rec.H1},
		},
	}
}

func Publisher(site Site) Organization {
	return Organization{Type: "Organization", Name: site.Name, URL: site.BaseURL, Email: site.Email}
}

// OrganizationBlock is the standalone Organization description.
func OrganizationBlock(site Site) Organization {
	return Organization{
		Context:     schemaContext,
		Type:        "Organization",
		Name:        site.Name,
		URL:         site.BaseURL,
		Logo:        site.Logo,
		Description: site.Description,
		Email:       site.Email,
	}
}

func Page(site Site, rec model.ContentRecord) WebPage {
	return WebPage{
		Context:     schemaContext,
		Type:        "WebPage",
		Name:        rec.Title,
		Description: rec.MetaDescription,
		URL:         canonical(site, rec),
		InLanguage:  rec.Locale,
		IsPartOf:    WebSite{Type: "WebSite", Name: site.Name, URL: site.BaseURL},
		Publisher:   Publisher(site),
	}
}

func FAQ(faqs []model.FAQ) FAQPage {
	qs := make([]Question, 0, len(faqs))
	for _, f := range faqs {
		qs = append(qs, Question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
		})
	}
	return FAQPage{Context: schemaContext, Type: "FAQPage", MainEntity: qs}
}

// Catalog lists up to maxOffers of the record's offers.
func Catalog(site Site, rec model.ContentRecord) OfferCatalog {
	n := min(len(rec.Offers), maxOffers)
	offers := make([]Offer, 0, n)
	for _, o := range rec.Offers[:n] {
		offers = append(offers, Offer{
			Type:          "Offer",
			Name:          o.Name,
			URL:           absolute(site, o.URL),
			Price:         o.Price,
			PriceCurrency: currency,
			Availability:  inStock,
		})
	}
	return OfferCatalog{
		Context:         schemaContext,
		Type:            "OfferCatalog",
		Name:            rec.H1,
		Description:     rec.MetaDescription,
		ItemListElement: offers,
	}
}

func ArticleBlock(site Site, rec model.ContentRecord) Article {
	a := Article{
		Context:     schemaContext,
		Type:        "Article",
		Headline:    truncate(strings.TrimSuffix(rec.Title, " | "+site.Name), headlineMaxRunes),
		Description: truncate(rec.MetaDescription, abstractMaxRunes),
		Author:      Organization{Type: "Organization", Name: site.Name, URL: site.BaseURL},
		Publisher: Organization{Type: "Organization", Name: site.Name,
			Logo: &ImageObject{Type: "ImageObject", URL: site.Logo}},
		MainEntityOfPage: PageRef{Type: "WebPage", ID: canonical(site, rec)},
	}
	if !rec.Published.IsZero() {
		a.DatePublished = rec.Published.Format("2006-01-02")
	}
	return a
}

// ProductBlock describes one catalog product for its detail page.
func ProductBlock(site Site, p catalog.Product) Product {
	col := p.ColorInfo()
	surface := "lakovaný"
	if p.Color == catalog.Zinc {
		surface = "pozinkovaný"
	}
	return Product{
		Context: schemaContext,
		Type:    "Product",
		Name: fmt.Sprintf("Regál %dx%dx%d mm %s %d-policový, nosnost %d kg - %s",
			p.Height*10, p.Width*10, p.Depth*10, surface, p.ShelfCount, p.Capacity, col.Adjective),
		Description: fmt.Sprintf("Kovový regál %d×%d×%d cm s nosností %d kg. %d nastavitelných polic, bezšroubová montáž za 10 minut. Záruka 7 let.",
			p.Height, p.Width, p.Depth, p.Capacity, p.ShelfCount),
		Image: p.Image(),
		Brand: Brand{Type: "Brand", Name: site.Name},
		SKU:   p.Slug,
		MPN:   strings.ToUpper(p.Slug),
		Offers: Offer{
			Type:          "Offer",
			URL:           site.URL(p.Slug),
			Price:         p.Price,
			PriceCurrency: currency,
			Availability:  inStock,
			ItemCondition: newCondition,
			Seller:        &Organization{Type: "Organization", Name: site.Name},
		},
	}
}

// ProductBreadcrumb is Úvod › Kovové regály › product.
func ProductBreadcrumb(site Site, p catalog.Product) BreadcrumbList {
	return BreadcrumbList{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []ListItem{
			{Type: "ListItem", Position: 1, Name: homeCrumb, Item: site.URL("index")},
			{Type: "ListItem", Position: 2, Name: productCrumb, Item: site.URL(catalogSlug)},
			{Type: "ListItem", Position: 3, Name: p.Name(), Item: site.URL(p.Slug)},
		},
	}
}

// ProductFAQs answers the standard questions about one product.
func ProductFAQs(p catalog.Product) []model.FAQ {
	humidity := "Lakovaný regál je vhodný do suchých a mírně vlhkých prostor. Pro vlhké prostředí doporučujeme zinkovanou variantu."
	if p.Color == catalog.Zinc {
		humidity = "Pozinkovaný regál je vhodný do vlhkých prostor jako jsou sklepy nebo garáže."
	}
	return []model.FAQ{
		{Question: "Jaká je skutečná nosnost police?",
			Answer: fmt.Sprintf("Nosnost %d kg na polici platí při rovnoměrném rozložení zátěže. Celková nosnost regálu je %d kg.", p.PerShelfCapacity, p.Capacity)},
		{Question: "Mohu regál použít ve vlhkém prostředí?", Answer: humidity},
		{Question: "Jak dlouho trvá doručení?",
			Answer: "Produkt je skladem, expedujeme ihned. Doručení trvá obvykle 2 až 3 pracovní dny po celé ČR."},
		{Question: "Je montáž složitá?",
			Answer: "Ne, díky bezšroubovému systému zvládnete montáž za 10 minut bez jakéhokoliv nářadí."},
		{Question: fmt.Sprintf("Jaké jsou rozměry regálu %d×%d×%d cm?", p.Height, p.Width, p.Depth),
			Answer: fmt.Sprintf("Regál má výšku %d cm, šířku %d cm a hloubku %d cm. Má %d nastavitelných polic s celkovou nosností %d kg.",
				p.Height, p.Width, p.Depth, p.ShelfCount, p.Capacity)},
	}
}

// ForRecord returns the blocks for a generated or editorial page, in the
// order they appear in the head.
func ForRecord(site Site, rec model.ContentRecord) []any {
	blocks := []any{Breadcrumb(site, rec)}
	if rec.Type == model.Editorial {
		blocks = append(blocks, ArticleBlock(site, rec))
	} else {
		blocks = append(blocks, Page(site, rec))
	}
	if len(rec.FAQs) > 0 {
		blocks = append(blocks, FAQ(rec.FAQs))
	}
	if rec.Type == model.Conversions && len(rec.Offers) > 0 {
		blocks = append(blocks, Catalog(site, rec))
	}
	return blocks
}

// ForProduct returns the blocks added to a product detail page.
func ForProduct(site Site, p catalog.Product) []any {
	return []any{
		ProductBlock(site, p),
		ProductBreadcrumb(site, p),
		OrganizationBlock(site),
		FAQ(ProductFAQs(p)),
	}
}

// Marshal encodes a block for a <script type="application/ld+json"> tag.
// HTML-significant characters are escaped so the block cannot close the tag.
func Marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode JSON-LD: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func canonical(site Site, rec model.ContentRecord) string {
	if rec.CanonicalURL != "" {
		return rec.CanonicalURL
	}
	return site.URL(rec.Slug)
}

// absolute resolves a relative href against the site root.
func absolute(site Site, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimSuffix(site.BaseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
