package catalog

// ColorClass is the finish of a shelving unit. Its value is the slug suffix
// used in product file names (regal-180x90x40-cerna).
type ColorClass string

const (
	Black        ColorClass = "cerna"
	White        ColorClass = "bila"
	Red          ColorClass = "cervena"
	Blue         ColorClass = "modra"
	Zinc         ColorClass = "zinkovany"
	Professional ColorClass = "profesionalni"
)

const (
	basePrice               = 400
	zincDiscount            = 50
	professionalSurcharge   = 200
	originalPriceMultiplier = 4
	standardShelfCapacity   = 175
	proShelfCapacity        = 210
	tallShelfHeight         = 180
)

// Pricing holds every value derived from a product's dimensions and finish.
type Pricing struct {
	Price            int
	PriceOriginal    int
	ShelfCount       int
	PerShelfCapacity int
	Capacity         int
}

// Price is the only place the price and capacity formula lives. Product
// pages, schema.org offers and the merchant feed all read from it.
func Price(height, width, depth int, color ColorClass) Pricing {
	base := basePrice + (height/10)*15 + (width/10)*10 + (depth/10)*5
	switch color {
	case Zinc:
		base -= zincDiscount
	case Professional:
		base += professionalSurcharge
	}
	price := (base/10)*10 - 1

	shelves := 4
	if height >= tallShelfHeight {
		shelves = 5
	}
	perShelf := standardShelfCapacity
	if color == Professional {
		perShelf = proShelfCapacity
	}

	return Pricing{
		Price:            price,
		PriceOriginal:    price * originalPriceMultiplier,
		ShelfCount:       shelves,
		PerShelfCapacity: perShelf,
		Capacity:         shelves * perShelf,
	}
}
