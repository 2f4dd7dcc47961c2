package playbook

import (
	"fmt"
	"slices"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const defaultCurationLimit = 5

type rankedRow struct {
	Rank int
	card
	Height int
	Width  int
	Depth  int
	Top    bool
}

type curationData struct {
	common
	Curation catalog.Curation
	Rows     []rankedRow
	Winner   card
}

// Curations builds the themed top lists.
func Curations(c *catalog.Catalog) ([]model.ContentRecord, error) {
	out := make([]model.ContentRecord, 0, len(c.Curations))
	for _, cur := range c.Curations {
		picked := curate(c, cur)
		if len(picked) == 0 {
			return nil, fmt.Errorf("curation %s: no products", cur.Slug)
		}
		winner := picked[0]
		rec := record(cur.Slug, cur.Title,
			fmt.Sprintf("%s Srovnání, hodnocení a doporučení. Ceny od %d Kč.", cur.Intro, c.MinPrice(catalog.Filter{})),
			cur.Title, cur.Category, model.Curation)
		rec.FAQs = []model.FAQ{
			{Question: "Podle čeho jste regály vybírali?",
				Answer: fmt.Sprintf("Hodnotili jsme tato kritéria: %s. Vycházíme z parametrů produktů a zpětné vazby zákazníků.", joinLower(cur.Criteria))},
			{Question: "Který regál z výběru je nejlepší?",
				Answer: fmt.Sprintf("Naší TOP volbou je %s za %d Kč s nosností %d kg.", winner.Name(), winner.Price, winner.Capacity)},
			{Question: "Jak často výběr aktualizujete?",
				Answer: "Výběr pravidelně aktualizujeme podle aktuální nabídky skladu a hodnocení zákazníků."},
		}

		rows := make([]rankedRow, 0, len(picked))
		for i, p := range picked {
			rows = append(rows, rankedRow{
				Rank:   i + 1,
				card:   toCard(c, p),
				Height: p.Height,
				Width:  p.Width,
				Depth:  p.Depth,
				Top:    i == 0,
			})
		}
		data := curationData{
			common:   newCommon(c, rec.Slug, picked, rec.FAQs),
			Curation: cur,
			Rows:     rows,
			Winner:   rows[0].card,
		}
		if err := fill(&rec, "curation", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// curate selects a curation's products. Explicit picks win over the colour
// filter; short selections are padded from the featured list so every table
// reaches the limit.
func curate(c *catalog.Catalog, cur catalog.Curation) []catalog.Product {
	limit := cur.Limit
	if limit <= 0 {
		limit = defaultCurationLimit
	}

	var picked []catalog.Product
	switch {
	case len(cur.Picks) > 0:
		for _, s := range cur.Picks {
			if p, ok := c.Product(s); ok {
				picked = append(picked, p)
			}
		}
	case len(cur.Colors) > 0:
		for _, p := range c.Featured {
			if slices.Contains(cur.Colors, p.Color) {
				picked = append(picked, p)
			}
		}
	default:
		picked = slices.Clone(c.Featured)
	}

	pool := c.Featured
	if cur.Cheapest {
		slices.SortStableFunc(picked, func(a, b catalog.Product) int { return a.Price - b.Price })
		pool = cheapest(c)
	}
	for _, p := range pool {
		if len(picked) >= limit {
			break
		}
		if !slices.ContainsFunc(picked, func(q catalog.Product) bool { return q.Slug == p.Slug }) {
			picked = append(picked, p)
		}
	}
	if len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}
