package playbook

import (
	"slices"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type integrationData struct {
	common
	Integration catalog.Integration
}

// Integrations builds the pages about combining shelves with accessories.
func Integrations(c *catalog.Catalog) ([]model.ContentRecord, error) {
	out := make([]model.ContentRecord, 0, len(c.Integrations))
	for _, in := range c.Integrations {
		rec := record(in.Slug, in.Title, in.Intro, in.H1, "Integrace", model.Integrations)
		rec.FAQs = slices.Clone(c.IntegrationFAQs)
		data := integrationData{
			common:      newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			Integration: in,
		}
		if err := fill(&rec, "integrations", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
