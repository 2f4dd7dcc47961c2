package playbook

import (
	"fmt"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type profileData struct {
	common
	Profile  catalog.Profile
	Stats    []stat
	Variants []dirRow
	Colors   []catalog.Color
}

// Profiles builds one page per product series. Figures come from the
// pricing formula for the series' height in the reference 90×40 cm footprint.
func Profiles(c *catalog.Catalog) ([]model.ContentRecord, error) {
	out := make([]model.ContentRecord, 0, len(c.Profiles))
	for _, pr := range c.Profiles {
		f := catalog.Filter{Height: pr.Height, Color: pr.Color}
		from := c.MinPrice(f)
		if from == 0 {
			return nil, fmt.Errorf("profile %s: no products for height %d", pr.Slug, pr.Height)
		}
		ref := catalog.Price(pr.Height, 90, 40, referenceColor(pr.Color))
		matching := filterFull(c, f)

		rec := record(pr.Slug, pr.Title,
			fmt.Sprintf("%s Ideální pro: %s. Ceny od %d Kč, nosnost až %d kg.", pr.Description, pr.Ideal, from, maxCapacity(matching)),
			pr.Title, "Profil řady", model.Profiles)
		rec.FAQs = []model.FAQ{
			{Question: "Kolik polic má regál z této řady?",
				Answer: fmt.Sprintf("Regál má %d polic, každá unese %d kg. Celková nosnost je %d kg.", ref.ShelfCount, ref.PerShelfCapacity, ref.Capacity)},
			{Question: "Kam se řada hodí nejvíce?", Answer: fmt.Sprintf("Nejčastěji ji zákazníci používají takto: %s.", pr.Ideal)},
			{Question: "Jaké barvy jsou k dispozici?",
				Answer: "Nabízíme černou, bílou, červenou, modrou, zinkovanou a profesionální variantu. Dostupnost se liší podle rozměru."},
		}
		data := profileData{
			common:  newCommon(c, rec.Slug, preferFeatured(c, f), rec.FAQs),
			Profile: pr,
			Stats: []stat{
				{Value: fmt.Sprintf("%d cm", pr.Height), Label: "výška"},
				{Value: fmt.Sprint(ref.ShelfCount), Label: "polic"},
				{Value: fmt.Sprintf("%d kg", ref.Capacity), Label: "nosnost"},
				{Value: fmt.Sprintf("%d Kč", from), Label: "cena od"},
			},
			Variants: rows(c, matching),
			Colors:   c.Colors(),
		}
		if err := fill(&rec, "profiles", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// referenceColor picks black when a profile spans every finish.
func referenceColor(cl catalog.ColorClass) catalog.ColorClass {
	if cl == "" {
		return catalog.Black
	}
	return cl
}
