package playbook

import (
	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const priceTableRows = 6

var trustStats = []stat{
	{Value: "15 000+", Label: "spokojených zákazníků"},
	{Value: "4.9/5", Label: "hodnocení"},
	{Value: "7 let", Label: "záruka"},
	{Value: "2 až 3 dny", Label: "doručení"},
}

type priceRow struct {
	dirRow
	Original int
	Cheapest bool
}

type conversionData struct {
	common
	Conversion catalog.Conversion
	Stats      []stat
	Prices     []priceRow
	Catalog    string
}

// Conversions builds the landing pages aimed at buying intent. Pages with a
// purchase, price or deal intent also carry a price list.
func Conversions(c *catalog.Catalog) ([]model.ContentRecord, error) {
	sorted := cheapest(c)
	out := make([]model.ContentRecord, 0, len(c.Conversions))
	for _, cv := range c.Conversions {
		rec := record(cv.Slug, cv.Title, cv.Intro, cv.H1, "Nákup", model.Conversions)
		rec.FAQs = []model.FAQ{
			{Question: "Jak rychle regál dorazí?",
				Answer: "Expedujeme ihned po objednání. Doručení přepravní službou trvá obvykle 2 až 3 pracovní dny."},
			{Question: "Kolik stojí doprava?",
				Answer: "Doprava stojí od 99 Kč. Při objednávce nad 2000 Kč je doprava zdarma."},
			{Question: "Jsou regály opravdu nové?",
				Answer: "Ano, všechny regály jsou zcela nové a nepoužité. Pocházejí z likvidace skladu, proto jsou tak levné."},
			{Question: "Mohu regál vrátit?",
				Answer: "Ano, do 14 dnů od převzetí můžete zboží vrátit bez udání důvodu."},
		}
		rec.Offers = offers(c, sorted)

		var prices []priceRow
		if cv.Intent.ShowsPriceTable() {
			for i, p := range sorted[:min(len(sorted), priceTableRows)] {
				prices = append(prices, priceRow{dirRow: toRow(c, p), Original: p.PriceOriginal, Cheapest: i == 0})
			}
		}
		data := conversionData{
			common:     newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			Conversion: cv,
			Stats:      trustStats,
			Prices:     prices,
			Catalog:    c.Href("katalog"),
		}
		if err := fill(&rec, "conversions", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
