package playbook

import (
	"fmt"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type personaData struct {
	common
	Persona catalog.Persona
	Lower   string
	Short   string
}

// Personas builds one page per customer segment. Recommended products are
// matched by slug fragment; with no match the first featured products are shown.
func Personas(c *catalog.Catalog) ([]model.ContentRecord, error) {
	best := c.Bestseller()
	out := make([]model.ContentRecord, 0, len(c.Personas))
	for _, p := range c.Personas {
		lower := strings.ToLower(p.Name)
		rec := record(p.Slug, p.Title,
			fmt.Sprintf("%s. Kovové regály se slevou až 75 %%, záruka 7 let, montáž za 10 minut. Od %d Kč.", p.Title, c.MinPrice(catalog.Filter{})),
			p.Title, "Pro koho", model.Personas)
		rec.FAQs = []model.FAQ{
			{Question: fmt.Sprintf("Jaký regál je nejlepší pro segment %s?", lower),
				Answer: fmt.Sprintf("Záleží na konkrétním využití. Pro většinu potřeb doporučujeme bestseller, regál %d×%d×%d cm s nosností %d kg za %d Kč.", best.Height, best.Width, best.Depth, best.Capacity, best.Price)},
			{Question: "Zvládnu montáž sám nebo sama?",
				Answer: "Bezšroubová montáž je navržena tak, aby ji zvládl kdokoli za 10 minut bez nářadí. Máme i video návod."},
			{Question: "Lze regály později rozšířit?",
				Answer: "Ano, náš modulární systém umožňuje přidávat další regály vedle sebe. Stačí dokoupit další kus."},
		}

		recommended := c.FeaturedMatching(p.Recommended)
		if len(recommended) == 0 {
			recommended = c.Featured
		}
		short, _, _ := strings.Cut(lower, " ")
		data := personaData{
			common:  newCommon(c, rec.Slug, recommended, rec.FAQs),
			Persona: p,
			Lower:   lower,
			Short:   short,
		}
		if err := fill(&rec, "personas", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
