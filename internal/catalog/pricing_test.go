package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name         string
		h, w, d      int
		color        ColorClass
		wantPrice    int
		wantShelves  int
		wantPerShelf int
		wantCapacity int
	}{
		{"bestseller black", 180, 90, 40, Black, 779, 5, 175, 875},
		{"zinc is 50 cheaper", 180, 90, 40, Zinc, 729, 5, 175, 875},
		{"professional surcharge", 180, 120, 50, Professional, 1009, 5, 210, 1050},
		{"short unit has four shelves", 150, 70, 30, Black, 709, 4, 175, 700},
		{"tall unit", 220, 90, 45, Black, 839, 5, 175, 875},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.h, tt.w, tt.d, tt.color)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantPrice*4, got.PriceOriginal)
			assert.Equal(t, tt.wantShelves, got.ShelfCount)
			assert.Equal(t, tt.wantPerShelf, got.PerShelfCapacity)
			assert.Equal(t, tt.wantCapacity, got.Capacity)
		})
	}
}

func genColor() *rapid.Generator[ColorClass] {
	return rapid.SampledFrom([]ColorClass{Black, White, Red, Blue, Zinc, Professional})
}

func TestPriceProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.SampledFrom(heights).Draw(t, "height")
		w := rapid.SampledFrom(widths).Draw(t, "width")
		d := rapid.SampledFrom(depths).Draw(t, "depth")
		c := genColor().Draw(t, "color")

		a, b := Price(h, w, d, c), Price(h, w, d, c)
		if a != b {
			t.Fatalf("Price not deterministic: %+v vs %+v", a, b)
		}
		if a.PriceOriginal != a.Price*4 {
			t.Fatalf("original %d != 4 * %d", a.PriceOriginal, a.Price)
		}
		if a.Price%10 != 9 {
			t.Fatalf("price %d does not end in 9", a.Price)
		}
		if a.Capacity != a.ShelfCount*a.PerShelfCapacity {
			t.Fatalf("capacity %d != %d * %d", a.Capacity, a.ShelfCount, a.PerShelfCapacity)
		}
		wantShelves := 4
		if h >= 180 {
			wantShelves = 5
		}
		if a.ShelfCount != wantShelves {
			t.Fatalf("height %d: got %d shelves, want %d", h, a.ShelfCount, wantShelves)
		}
	})
}
