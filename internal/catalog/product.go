package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Color describes how a finish is named and pictured across the site.
type Color struct {
	Class     ColorClass
	Name      string // "Černá"
	Adjective string // "černý"
	Label     string // ascii label used in feed titles and custom labels
	Surface   string
	Image     string
	Hex       string
}

var colors = map[ColorClass]Color{
	Black:        {Class: Black, Name: "Černá", Adjective: "černý", Label: "cerny", Surface: "Lakovany", Image: imageBlack, Hex: "#1a1a1a"},
	White:        {Class: White, Name: "Bílá", Adjective: "bílý", Label: "bily", Surface: "Lakovany", Image: imageWhite, Hex: "#ffffff"},
	Red:          {Class: Red, Name: "Červená", Adjective: "červený", Label: "cerveny", Surface: "Lakovany", Image: imageRed, Hex: "#dc2626"},
	Blue:         {Class: Blue, Name: "Modrá", Adjective: "modrý", Label: "modry", Surface: "Lakovany", Image: imageBlue, Hex: "#2563eb"},
	Zinc:         {Class: Zinc, Name: "Zinkovaný", Adjective: "zinkovaný", Label: "zinkovany", Surface: "Pozinkovany", Image: imageZinc, Hex: "#9ca3af"},
	Professional: {Class: Professional, Name: "Profesionální", Adjective: "profesionální", Label: "profesionalni", Surface: "Lakovany", Image: imagePro, Hex: "#f97316"},
}

// ColorOf returns the display data of a finish; unknown classes fall back to black.
func ColorOf(c ColorClass) Color {
	if col, ok := colors[c]; ok {
		return col
	}
	return colors[Black]
}

// Product is one shelving unit. Derived fields come from Price and are never
// changed after NewProduct returns.
type Product struct {
	Slug   string
	Height int
	Width  int
	Depth  int
	Color  ColorClass
	Pricing
	Bestseller bool
}

// NewProduct builds a product and its derived values from dimensions in cm.
func NewProduct(height, width, depth int, color ColorClass) Product {
	return Product{
		Slug:    fmt.Sprintf("regal-%dx%dx%d-%s", height, width, depth, color),
		Height:  height,
		Width:   width,
		Depth:   depth,
		Color:   color,
		Pricing: Price(height, width, depth, color),
	}
}

// ParseProductSlug reverses NewProduct's slug: regal-{H}x{W}x{D}-{color}.
// An unknown color suffix is read as black, the site's default finish.
func ParseProductSlug(slug string) (Product, error) {
	rest, ok := strings.CutPrefix(slug, "regal-")
	if !ok {
		return Product{}, fmt.Errorf("not a product slug: %q", slug)
	}
	dimPart, colorPart, _ := strings.Cut(rest, "-")
	dims := strings.Split(dimPart, "x")
	if len(dims) != 3 {
		return Product{}, fmt.Errorf("product slug %q: want HxWxD dimensions", slug)
	}
	var n [3]int
	for i, d := range dims {
		v, err := strconv.Atoi(d)
		if err != nil || v <= 0 {
			return Product{}, fmt.Errorf("product slug %q: bad dimension %q", slug, d)
		}
		n[i] = v
	}
	color := ColorClass(colorPart)
	if _, known := colors[color]; !known {
		color = Black
	}
	return NewProduct(n[0], n[1], n[2], color), nil
}

func (p Product) ColorInfo() Color { return ColorOf(p.Color) }

// Name is the Czech display name, e.g. "Regál 180×90×40 cm černý".
func (p Product) Name() string {
	return fmt.Sprintf("Regál %d×%d×%d cm %s", p.Height, p.Width, p.Depth, p.ColorInfo().Adjective)
}

// ASCIIName is the diacritics-free name used in the merchant feed.
func (p Product) ASCIIName() string {
	return fmt.Sprintf("Regal %dx%dx%d cm %s", p.Height, p.Width, p.Depth, p.ColorInfo().Label)
}

func (p Product) Image() string { return p.ColorInfo().Image }

// Discount is the badge percentage shown on product cards.
func (p Product) Discount() int {
	if p.Bestseller {
		return 75
	}
	return 70
}
