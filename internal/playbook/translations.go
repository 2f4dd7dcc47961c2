package playbook

import (
	"fmt"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type translationData struct {
	common
	Translation catalog.Translation
	Stats       []stat
}

// Translations builds the Slovak landing pages. Their titles already carry
// the site name and are used as written.
func Translations(c *catalog.Catalog) ([]model.ContentRecord, error) {
	from := c.MinPrice(catalog.Filter{})
	out := make([]model.ContentRecord, 0, len(c.Translations))
	for _, t := range c.Translations {
		rec := record(t.Slug, t.Title, t.Intro, t.H1, "Slovensko", model.Translations)
		rec.Title = t.Title
		rec.Locale = "sk"
		rec.FAQs = t.FAQs
		data := translationData{
			common:      newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			Translation: t,
			Stats: []stat{
				{Value: "-75 %", Label: "zľavy"},
				{Value: "7 rokov", Label: "záruka"},
				{Value: "3 až 5 dní", Label: "doručenie"},
				{Value: fmt.Sprintf("od %d Kč", from), Label: "ceny"},
			},
		}
		if err := fill(&rec, "translations", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
