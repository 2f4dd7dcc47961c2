package playbook

import (
	"fmt"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

type locationData struct {
	common
	Location catalog.Location
}

// Locations builds one page per served city.
func Locations(c *catalog.Catalog) ([]model.ContentRecord, error) {
	best := c.Bestseller()
	bestFrom := c.MinPrice(catalog.Filter{Height: best.Height, Width: best.Width})

	out := make([]model.ContentRecord, 0, len(c.Locations))
	for _, loc := range c.Locations {
		city := loc.Name
		rec := record(
			"kovove-regaly-"+loc.ID,
			fmt.Sprintf("Kovové regály %s | Doprava od 99 Kč", city),
			fmt.Sprintf("Kovové regály v %s se slevou až 75 %%. Doprava od 99 Kč, záruka 7 let. Regály do garáže, sklepa, dílny. Expedice ihned.", city),
			fmt.Sprintf("Kovové regály %s: slevy až 75 %%, doprava od 99 Kč", city),
			"Lokality", model.Locations)
		rec.FAQs = []model.FAQ{
			{Question: fmt.Sprintf("Jak dlouho trvá doručení do %s?", city),
				Answer: fmt.Sprintf("Expedujeme ihned po objednání. Doručení na adresu v %s trvá obvykle 2 až 3 pracovní dny přepravní službou.", city)},
			{Question: "Mohu si regál vyzvednout osobně?",
				Answer: fmt.Sprintf("Momentálně nabízíme pouze doručení přepravní službou. Doprava do %s stojí od 99 Kč.", city)},
			{Question: fmt.Sprintf("Jaký regál doporučujete pro garáž v %s?", city),
				Answer: fmt.Sprintf("Pro garáž doporučujeme regál %d×%d×%d cm v černé nebo zinkované variantě. Nosnost %d kg, cena od %d Kč.", best.Height, best.Width, best.Depth, best.Capacity, bestFrom)},
			{Question: fmt.Sprintf("Nabízíte množstevní slevy pro firmy v %s?", city),
				Answer: "Ano, pro větší objednávky nabízíme individuální cenovou nabídku. Kontaktujte nás na info@bazarovyregal.cz."},
		}
		data := locationData{
			common:   newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			Location: loc,
		}
		if err := fill(&rec, "locations", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
