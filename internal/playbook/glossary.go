package playbook

import (
	"fmt"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type glossaryData struct {
	common
	Term    catalog.GlossaryTerm
	Lower   string
	Related []link
	Index   string
	FAQHref string
}

// Glossary builds one page per defined term, cross-linked to related terms.
// Related ids with no matching term are skipped.
func Glossary(c *catalog.Catalog) ([]model.ContentRecord, error) {
	out := make([]model.ContentRecord, 0, len(c.Glossary))
	for _, term := range c.Glossary {
		lower := strings.ToLower(term.Term)
		rec := record(term.Slug,
			term.Term+": co to je a proč je to důležité",
			term.Term+": "+truncate(term.Definition, 140),
			term.Term+": vysvětlení pojmu",
			"Slovník", model.Glossary)
		rec.FAQs = []model.FAQ{
			{Question: fmt.Sprintf("Co přesně znamená %s?", lower), Answer: term.Definition},
			{Question: "Jak to ovlivňuje výběr regálu?",
				Answer: "Tento parametr je jedním z klíčových faktorů při výběru správného regálu. Doporučujeme projít naše produktové stránky nebo kontaktovat náš tým na info@bazarovyregal.cz."},
			{Question: "Kde najdu další informace?",
				Answer: "Podívejte se na náš kompletní slovník pojmů nebo do sekce častých dotazů."},
		}

		var related []link
		for _, id := range term.Related {
			if t, ok := c.Term(id); ok {
				related = append(related, link{Href: c.Href(t.Slug), Title: t.Term})
			}
		}
		data := glossaryData{
			common:  newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			Term:    term,
			Lower:   lower,
			Related: related,
			Index:   c.Href("slovnik"),
			FAQHref: c.Href("faq"),
		}
		if err := fill(&rec, "glossary", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
