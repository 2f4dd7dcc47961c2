package related

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

func page(slug, title, category string) model.ContentRecord {
	return model.ContentRecord{Slug: slug, Title: title, H1: title, BreadcrumbCategory: category, Type: model.Glossary}
}

var pages = []model.ContentRecord{
	page("regaly-do-garaze", "Regály do garáže", "Použití"),
	page("police-do-garaze", "Police do garáže", "Použití"),
	page("regaly-do-sklepa", "Regály do sklepa", "Použití"),
	page("nosnost", "Nosnost", "Slovník"),
}

func slugs(links []model.RelatedLink) []string {
	var out []string
	for _, l := range links {
		out = append(out, l.Href)
	}
	return out
}

func TestRelated(t *testing.T) {
	ix, err := Build(pages, ".html")
	require.NoError(t, err)
	defer ix.Close()

	n, err := ix.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(pages)), n)

	links, err := ix.Related(pages[0], 4)
	require.NoError(t, err)
	got := slugs(links)
	assert.NotContains(t, got, "regaly-do-garaze.html")
	assert.NotContains(t, got, "nosnost.html")
	assert.ElementsMatch(t, []string{"police-do-garaze.html", "regaly-do-sklepa.html"}, got)
	for _, l := range links {
		assert.NotEmpty(t, l.Title)
	}
}

func TestRelatedLimitAndStability(t *testing.T) {
	ix, err := Build(pages, ".html")
	require.NoError(t, err)
	defer ix.Close()

	first, err := ix.Related(pages[0], 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	again, err := ix.Related(pages[0], 1)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	none, err := ix.Related(pages[0], 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRelatedEmptyIndex(t *testing.T) {
	ix, err := Build(nil, ".html")
	require.NoError(t, err)
	defer ix.Close()

	links, err := ix.Related(pages[3], 4)
	require.NoError(t, err)
	assert.Empty(t, links)
}
