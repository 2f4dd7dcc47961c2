package fixup

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/schema"
)

const productPrefix = "regal-"

// fixSchema adds Product, BreadcrumbList, Organization and FAQPage blocks to
// product detail pages that carry no JSON-LD at all. Dimensions and finish
// come from the file name, so prices match the catalog formula.
func (f *Fixer) fixSchema(name string, content []byte) ([]byte, error) {
	if !strings.HasPrefix(name, productPrefix) {
		return content, nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	if doc.Find(`script[type="application/ld+json"]`).Length() > 0 {
		return content, nil
	}

	p, err := catalog.ParseProductSlug(stem(name))
	if err != nil {
		f.logger().Warn("skipping product page with unreadable name", "file", name, "error", err)
		return content, nil
	}

	var b strings.Builder
	b.WriteString("\n  <!-- Schema.org Structured Data -->\n")
	for _, block := range schema.ForProduct(f.Site, p) {
		js, err := schema.Marshal(block)
		if err != nil {
			return nil, err
		}
		b.WriteString(`  <script type="application/ld+json">`)
		b.WriteString(js)
		b.WriteString("</script>\n")
	}
	return beforeHeadClose(content, b.String()), nil
}
