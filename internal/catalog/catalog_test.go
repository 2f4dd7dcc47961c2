package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseProductSlug(t *testing.T) {
	p, err := ParseProductSlug("regal-180x90x40-zinkovany")
	require.NoError(t, err)
	assert.Equal(t, 180, p.Height)
	assert.Equal(t, 90, p.Width)
	assert.Equal(t, 40, p.Depth)
	assert.Equal(t, Zinc, p.Color)
	assert.Equal(t, 729, p.Price)
	assert.Equal(t, "Regál 180×90×40 cm zinkovaný", p.Name())
	assert.Equal(t, "Regal 180x90x40 cm zinkovany", p.ASCIIName())

	p, err = ParseProductSlug("regal-150x70x30-zlata")
	require.NoError(t, err)
	assert.Equal(t, Black, p.Color, "unknown finish falls back to black")

	for _, bad := range []string{"kovove-regaly-praha", "regal-180x90-cerna", "regal-axbxc-cerna", "regal-0x90x40-cerna"} {
		_, err := ParseProductSlug(bad)
		assert.Error(t, err, bad)
	}
}

func TestSlugRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.IntRange(1, 400).Draw(t, "h")
		w := rapid.IntRange(1, 400).Draw(t, "w")
		d := rapid.IntRange(1, 400).Draw(t, "d")
		c := genColor().Draw(t, "color")
		want := NewProduct(h, w, d, c)
		got, err := ParseProductSlug(want.Slug)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("round trip: got %+v, want %+v", got, want)
		}
	})
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Full, 87)
	assert.Len(t, c.Featured, 10)
	assert.Len(t, c.Locations, 20)

	seen := map[string]bool{}
	for _, p := range c.Full {
		assert.False(t, seen[p.Slug], "duplicate product %s", p.Slug)
		seen[p.Slug] = true
	}

	best, ok := c.Product("regal-180x90x40-cerna")
	require.True(t, ok)
	assert.True(t, best.Bestseller)
	assert.Equal(t, 75, best.Discount())
	assert.Equal(t, 779, best.Price)

	other, ok := c.Product("regal-150x70x30-cerna")
	require.True(t, ok)
	assert.False(t, other.Bestseller)
	assert.Equal(t, 70, other.Discount())

	_, ok = c.Product("regal-999x1x1-cerna")
	assert.False(t, ok)
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	a.Locations[0].Name = "changed"
	a.PageExt = ""
	b := Default()
	assert.NotEqual(t, "changed", b.Locations[0].Name)
	assert.Equal(t, ".html", b.PageExt)
}

func TestComparisonPricesFilled(t *testing.T) {
	c := Default()
	for _, cmp := range c.Comparisons {
		assert.NotZero(t, cmp.A.PriceFrom, cmp.ID)
		assert.NotZero(t, cmp.B.PriceFrom, cmp.ID)
	}
	last := c.Comparisons[len(c.Comparisons)-1]
	assert.Equal(t, 300, last.B.PriceFrom, "literal bazar price is kept")
}

func TestMinPrice(t *testing.T) {
	c := Default()
	all := c.MinPrice(Filter{})
	for _, p := range c.Full {
		assert.GreaterOrEqual(t, p.Price, all)
	}
	assert.Zero(t, c.MinPrice(Filter{Height: 999}))

	zinc180 := c.MinPrice(Filter{Height: 180, Color: Zinc})
	require.NotZero(t, zinc180)
	assert.LessOrEqual(t, zinc180, c.MinPrice(Filter{Height: 180, Color: Black}))
	assert.Positive(t, c.Count(Filter{Color: Zinc}))
}

func TestFeaturedMatching(t *testing.T) {
	c := Default()
	got := c.FeaturedMatching([]string{"profesionalni", "200x90x40"})
	require.Len(t, got, 2)
	assert.Equal(t, "regal-200x90x40-cerna", got[0].Slug)
	assert.Equal(t, "regal-180x120x50-profesionalni", got[1].Slug)
	assert.Empty(t, c.FeaturedMatching([]string{"neexistuje"}))
}

func TestHref(t *testing.T) {
	c := Default()
	assert.Equal(t, "katalog.html", c.Href("katalog"))
	c.PageExt = ""
	assert.Equal(t, "katalog", c.Href("katalog"))
}
