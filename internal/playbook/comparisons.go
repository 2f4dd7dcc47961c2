package playbook

import (
	"fmt"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const missingValue = "–"

type featureRow struct {
	Label string
	A, B  string
}

type comparisonData struct {
	common
	A, B    catalog.ComparisonItem
	Rows    []featureRow
	WhenA   string
	WhenB   string
	Verdict string
}

// Comparisons builds one page per comparison pair with a feature table.
func Comparisons(c *catalog.Catalog) ([]model.ContentRecord, error) {
	out := make([]model.ContentRecord, 0, len(c.Comparisons))
	for _, cmp := range c.Comparisons {
		a, b := cmp.A, cmp.B
		rec := record(cmp.Slug, cmp.Title,
			fmt.Sprintf("Srovnání %s vs %s. Výhody, nevýhody, srovnávací tabulka a doporučení. %s", a.Name, b.Name, truncate(cmp.Verdict, 80)),
			cmp.Title, "Srovnání", model.Comparisons)
		rec.FAQs = []model.FAQ{
			{Question: fmt.Sprintf("Který je celkově lepší, %s nebo %s?", a.Name, b.Name), Answer: cmp.Verdict},
			{Question: "Mohu oba typy kombinovat?",
				Answer: "Ano, naše regály jsou modulární a lze je stavět vedle sebe bez ohledu na výšku nebo barvu."},
			{Question: "Liší se kvalita zpracování?",
				Answer: "Ne, všechny naše regály mají stejnou kvalitu zpracování. Rozdíl je pouze v rozměrech a povrchové úpravě."},
		}
		data := comparisonData{
			common:  newCommon(c, rec.Slug, c.Featured, rec.FAQs),
			A:       a,
			B:       b,
			Rows:    featureRows(a, b),
			WhenA:   firstLower(a.Pros, "dobrou volbu"),
			WhenB:   firstLower(b.Pros, "speciální řešení"),
			Verdict: cmp.Verdict,
		}
		if err := fill(&rec, "comparisons", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// featureRows lists the attributes at least one side defines.
func featureRows(a, b catalog.ComparisonItem) []featureRow {
	num := func(v int, unit string) string {
		if v == 0 {
			return missingValue
		}
		if unit == "" {
			return fmt.Sprint(v)
		}
		return fmt.Sprintf("%d %s", v, unit)
	}
	text := func(s string) string {
		if s == "" {
			return missingValue
		}
		return s
	}

	var rows []featureRow
	add := func(label, va, vb string) {
		if va == missingValue && vb == missingValue {
			return
		}
		rows = append(rows, featureRow{Label: label, A: va, B: vb})
	}
	add("Cena od", num(a.PriceFrom, "Kč"), num(b.PriceFrom, "Kč"))
	add("Výška", num(a.Height, "cm"), num(b.Height, "cm"))
	add("Šířka", num(a.Width, "cm"), num(b.Width, "cm"))
	add("Počet polic", num(a.Shelves, ""), num(b.Shelves, ""))
	add("Nosnost", num(a.Capacity, "kg"), num(b.Capacity, "kg"))
	add("Povrch", text(a.Surface), text(b.Surface))
	return rows
}

func firstLower(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.ToLower(items[0])
}
