package playbook

import (
	"fmt"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type guideData struct {
	common
	Guide catalog.Guide
	Tips  []string
}

var guideTips = []string{
	"Těžké předměty vždy ukládejte na spodní police, regál je pak stabilnější.",
	"Regály vyšší než 180 cm doporučujeme ukotvit ke zdi.",
	"Nepřekračujte nosnost jedné police, rozložte zátěž rovnoměrně.",
	"Do vlhkých prostor volte zinkovaný povrch odolný korozi.",
}

// Guides builds the step-by-step organisation templates.
func Guides(c *catalog.Catalog) ([]model.ContentRecord, error) {
	out := make([]model.ContentRecord, 0, len(c.Guides))
	for _, g := range c.Guides {
		rec := record(g.Slug, g.Title,
			fmt.Sprintf("%s. Postup krok za krokem, kontrolní seznam a doporučené regály od %d Kč.", g.Title, c.MinPrice(catalog.Filter{})),
			g.Title, g.Category, model.Templates)
		rec.FAQs = []model.FAQ{
			{Question: "Jak dlouho organizace zabere?",
				Answer: fmt.Sprintf("Podle velikosti prostoru počítejte s jedním až dvěma dny. Samotná montáž regálu trvá 10 minut, postup má %d kroků.", len(g.Steps))},
			{Question: "Kolik regálů budu potřebovat?",
				Answer: "Změřte délku stěn a počítejte s jedním regálem na každých 90 až 120 cm. Raději objednejte o jeden kus navíc."},
			{Question: "Mohu šablonu upravit pro své potřeby?",
				Answer: "Samozřejmě. Šablona je výchozí bod, jednotlivé kroky přizpůsobte velikosti a účelu vašeho prostoru."},
		}
		data := guideData{
			common: newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			Guide:  g,
			Tips:   guideTips,
		}
		if err := fill(&rec, "guides", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
