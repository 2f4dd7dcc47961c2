// Package feed builds the Google Merchant Center product feed for the full
// catalog, as RSS 2.0 with the g: namespace and as a tab-delimited file.
package feed

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
)

const googleNS = "http://base.google.com/ns/1.0"

var (
	volumeDivisor = decimal.NewFromInt(1_000_000)
	weightPerM3   = decimal.NewFromInt(20)
	packageWeight = decimal.NewFromInt(5)
)

// Options carries the merchant settings from config.
type Options struct {
	BaseURL          string
	PageExt          string
	Title            string
	Description      string
	Brand            string
	GoogleCategory   int
	ProductType      string
	FreeShippingFrom int
	ShippingPrice    int
}

type Shipping struct {
	Country string `xml:"g:country"`
	Service string `xml:"g:service"`
	Price   string `xml:"g:price"`
}

// Item is one product entry.
type Item struct {
	ID             string   `xml:"g:id"`
	Title          string   `xml:"g:title"`
	Description    string   `xml:"g:description"`
	Link           string   `xml:"g:link"`
	ImageLink      string   `xml:"g:image_link"`
	Availability   string   `xml:"g:availability"`
	Price          string   `xml:"g:price"`
	SalePrice      string   `xml:"g:sale_price"`
	Condition      string   `xml:"g:condition"`
	Brand          string   `xml:"g:brand"`
	MPN            string   `xml:"g:mpn"`
	GoogleCategory int      `xml:"g:google_product_category"`
	ProductType    string   `xml:"g:product_type"`
	CustomLabel0   string   `xml:"g:custom_label_0"`
	CustomLabel1   string   `xml:"g:custom_label_1"`
	CustomLabel2   string   `xml:"g:custom_label_2"`
	CustomLabel3   string   `xml:"g:custom_label_3"`
	CustomLabel4   string   `xml:"g:custom_label_4"`
	Shipping       Shipping `xml:"g:shipping"`
	ShippingWeight string   `xml:"g:shipping_weight"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []Item `xml:"item"`
}

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	XmlnsG  string   `xml:"xmlns:g,attr"`
	Channel channel  `xml:"channel"`
}

// Build maps every product of the full catalog to a feed item. Ids follow
// catalog order: BR-001, BR-002, ...
func Build(c *catalog.Catalog, opts Options) []Item {
	items := make([]Item, 0, len(c.Full))
	for i, p := range c.Full {
		id := fmt.Sprintf("BR-%03d", i+1)
		col := p.ColorInfo()

		shipping := opts.ShippingPrice
		if p.Price >= opts.FreeShippingFrom {
			shipping = 0
		}

		items = append(items, Item{
			ID:             id,
			Title:          p.ASCIIName(),
			Description:    Description(p),
			Link:           opts.BaseURL + "/" + p.Slug + opts.PageExt,
			ImageLink:      p.Image(),
			Availability:   "in_stock",
			Price:          czk(p.PriceOriginal),
			SalePrice:      czk(p.Price),
			Condition:      "new",
			Brand:          opts.Brand,
			MPN:            id,
			GoogleCategory: opts.GoogleCategory,
			ProductType:    opts.ProductType,
			CustomLabel0:   PriceTier(p.Price),
			CustomLabel1:   col.Label,
			CustomLabel2:   SizeCategory(p.Height),
			CustomLabel3:   bestseller(p),
			CustomLabel4:   col.Surface,
			Shipping:       Shipping{Country: "CZ", Service: "Standard", Price: czk(shipping)},
			ShippingWeight: Weight(p).StringFixed(1) + " kg",
		})
	}
	return items
}

// Weight estimates the shipping weight in kg from the unit's volume,
// rounded to one decimal place.
func Weight(p catalog.Product) decimal.Decimal {
	volume := decimal.NewFromInt(int64(p.Height * p.Width * p.Depth)).Div(volumeDivisor)
	return packageWeight.Add(volume.Mul(weightPerM3)).Round(1)
}

// PriceTier is custom label 0.
func PriceTier(price int) string {
	switch {
	case price < 600:
		return "budget"
	case price < 800:
		return "mid"
	default:
		return "premium"
	}
}

// SizeCategory is custom label 2.
func SizeCategory(height int) string {
	switch {
	case height <= 150:
		return "compact"
	case height <= 180:
		return "standard"
	default:
		return "tall"
	}
}

func bestseller(p catalog.Product) string {
	if p.Bestseller {
		return "bestseller"
	}
	return "standard"
}

// Description is the diacritics-free product text Merchant Center shows.
func Description(p catalog.Product) string {
	dims := fmt.Sprintf("%dx%dx%d cm", p.Height, p.Width, p.Depth)
	switch p.Color {
	case catalog.Professional:
		return fmt.Sprintf("Profesionalni kovovy regal %s modro-oranzovy. %d polic, nosnost %d kg (%d kg/police). "+
			"Nejsilnejsi regal v nabidce. Bezroubova montaz. Novy, zaruka 7 let. Likvidace skladu.",
			dims, p.ShelfCount, p.Capacity, p.PerShelfCapacity)
	case catalog.Zinc:
		return fmt.Sprintf("Zinkovany kovovy regal %s. %d polic, nosnost %d kg. "+
			"Maximalni odolnost korozi - idealni do vlhkych prostor. Bezroubova montaz. Novy, zaruka 7 let. Likvidace skladu.",
			dims, p.ShelfCount, p.Capacity)
	}
	extra := ""
	if p.Bestseller {
		extra = " BESTSELLER."
	}
	return fmt.Sprintf("Kovovy regal %s %s. %d polic, nosnost %d kg (%d kg/police). "+
		"Bezroubova montaz za 10 minut.%s Novy, zaruka 7 let. Likvidace skladu.",
		dims, p.ColorInfo().Label, p.ShelfCount, p.Capacity, p.PerShelfCapacity, extra)
}

func czk(v int) string { return fmt.Sprintf("%d CZK", v) }

// WriteXML renders the RSS feed.
func WriteXML(w io.Writer, items []Item, opts Options) error {
	doc := rss{
		Version: "2.0",
		XmlnsG:  googleNS,
		Channel: channel{Title: opts.Title, Link: opts.BaseURL, Description: opts.Description, Items: items},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode merchant feed: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

var tsvHeader = []string{
	"id", "title", "description", "link", "image_link",
	"availability", "price", "sale_price", "condition", "brand", "mpn",
	"google_product_category", "product_type",
	"custom_label_0", "custom_label_1", "custom_label_2",
	"custom_label_3", "custom_label_4",
	"shipping_weight",
}

// WriteTSV renders the tab-delimited alternative feed.
func WriteTSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(tsvHeader); err != nil {
		return err
	}
	for _, it := range items {
		row := []string{
			it.ID, it.Title, strings.ReplaceAll(it.Description, "\t", " "), it.Link, it.ImageLink,
			it.Availability, it.Price, it.SalePrice, it.Condition, it.Brand, it.MPN,
			fmt.Sprint(it.GoogleCategory), it.ProductType,
			it.CustomLabel0, it.CustomLabel1, it.CustomLabel2, it.CustomLabel3, it.CustomLabel4,
			it.ShippingWeight,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
