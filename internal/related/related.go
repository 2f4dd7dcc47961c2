// Package related picks the "Související stránky" links for each generated
// page from an in-memory full-text index of the run's valid records.
package related

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const (
	batchSize     = 100
	categoryBoost = 0.5
)

var searchFields = []string{"title", "h1", "meta"}

// Index is a memory-only bleve index keyed by slug.
type Index struct {
	index   bleve.Index
	titles  map[string]string
	pageExt string
}

// Build indexes the title, h1, meta description and breadcrumb category of
// every record. Records should already be validated so slugs are unique.
func Build(records []model.ContentRecord, pageExt string) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create related index: %w", err)
	}

	ix := &Index{index: idx, titles: make(map[string]string, len(records)), pageExt: pageExt}
	batch := idx.NewBatch()
	for i, r := range records {
		doc := map[string]any{
			"title":    r.Title,
			"h1":       r.H1,
			"meta":     r.MetaDescription,
			"category": r.BreadcrumbCategory,
			"type":     string(r.Type),
		}
		if err := batch.Index(r.Slug, doc); err != nil {
			idx.Close()
			return nil, fmt.Errorf("failed to add '%s' to related index: %w", r.Slug, err)
		}
		ix.titles[r.Slug] = r.Title

		if (i+1)%batchSize == 0 {
			if err := idx.Batch(batch); err != nil {
				idx.Close()
				return nil, fmt.Errorf("failed to index batch: %w", err)
			}
			batch = idx.NewBatch()
		}
	}
	if batch.Size() > 0 {
		if err := idx.Batch(batch); err != nil {
			idx.Close()
			return nil, fmt.Errorf("failed to index final batch: %w", err)
		}
	}
	return ix, nil
}

// Related returns up to n pages most similar to rec, never rec itself.
// Ties are broken by slug so the result is stable between runs.
func (ix *Index) Related(rec model.ContentRecord, n int) ([]model.RelatedLink, error) {
	if n <= 0 {
		return nil, nil
	}

	text := rec.Title + " " + rec.H1
	var should []query.Query
	for _, field := range searchFields {
		q := bleve.NewMatchQuery(text)
		q.SetField(field)
		should = append(should, q)
	}
	if rec.BreadcrumbCategory != "" {
		q := bleve.NewMatchPhraseQuery(rec.BreadcrumbCategory)
		q.SetField("category")
		q.SetBoost(categoryBoost)
		should = append(should, q)
	}

	bq := bleve.NewBooleanQuery()
	bq.AddShould(should...)
	bq.AddMustNot(bleve.NewDocIDQuery([]string{rec.Slug}))

	req := bleve.NewSearchRequest(bq)
	req.Size = n
	req.SortBy([]string{"-_score", "_id"})

	res, err := ix.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("related search for '%s' failed: %w", rec.Slug, err)
	}

	links := make([]model.RelatedLink, 0, len(res.Hits))
	for _, hit := range res.Hits {
		links = append(links, model.RelatedLink{Href: hit.ID + ix.pageExt, Title: ix.titles[hit.ID]})
	}
	return links, nil
}

// DocCount reports how many records were indexed.
func (ix *Index) DocCount() (uint64, error) {
	return ix.index.DocCount()
}

func (ix *Index) Close() error {
	return ix.index.Close()
}
