package playbook

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const (
	directoryRows = 12
	wallWidth     = 300 // cm, used for the "units per wall" hint
)

// Combination is one use case paired with one height and one width bucket.
type Combination struct {
	UseCase catalog.UseCase
	Height  int
	Width   int
}

// Slug is the page slug of the combination, e.g. "regaly-na-vino-180x90-cm".
func (cb Combination) Slug() string {
	return fmt.Sprintf("%s-%dx%d-cm", cb.UseCase.Slug, cb.Height, cb.Width)
}

func (cb Combination) filter() catalog.Filter {
	return catalog.Filter{Height: cb.Height, Width: cb.Width}
}

// DirectoryCombinations yields the use case × height × width cross product
// in table order. Height and width pairs the full catalog has no product for
// are skipped. The sequence is lazy and may be ranged over more than once.
func DirectoryCombinations(c *catalog.Catalog) iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		for _, uc := range c.UseCases {
			for _, h := range c.Heights {
				for _, w := range c.Widths {
					cb := Combination{UseCase: uc, Height: h, Width: w}
					if c.Count(cb.filter()) == 0 {
						continue
					}
					if !yield(cb) {
						return
					}
				}
			}
		}
	}
}

type dirRow struct {
	Href     string
	Name     string
	Dims     string
	Color    string
	Capacity int
	Price    int
}

// dirPage is a directory page before rendering.
type dirPage struct {
	slug, title, meta, h1, category string
	faqSubject                      string
	products                        []catalog.Product

	Intro      string
	Stats      []stat
	Highlights []string
	RowsTitle  string
	Rows       []dirRow
	CardsTitle string
}

type directoryData struct {
	common
	dirPage
}

// Directory builds the filter pages: one per height, width and use case, the
// two overview pages and every use case × height × width combination.
func Directory(c *catalog.Catalog) ([]model.ContentRecord, error) {
	var out []model.ContentRecord
	for p := range directoryPages(c) {
		rec := record(p.slug, p.title, p.meta, p.h1, p.category, model.Directory)
		rec.FAQs = directoryFAQs(c, p.faqSubject)
		data := directoryData{
			common:  newCommon(c, rec.Slug, p.products, rec.FAQs),
			dirPage: p,
		}
		if err := fill(&rec, "directory", data); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func directoryPages(c *catalog.Catalog) iter.Seq[dirPage] {
	return func(yield func(dirPage) bool) {
		for _, h := range c.Heights {
			if !yield(heightPage(c, h)) {
				return
			}
		}
		for _, w := range c.Widths {
			if !yield(widthPage(c, w)) {
				return
			}
		}
		for _, uc := range c.UseCases {
			if !yield(useCasePage(c, uc)) {
				return
			}
		}
		if !yield(capacityPage(c)) || !yield(pricePage(c)) {
			return
		}
		for cb := range DirectoryCombinations(c) {
			if !yield(combinationPage(c, cb)) {
				return
			}
		}
	}
}

func heightPage(c *catalog.Catalog, h int) dirPage {
	f := catalog.Filter{Height: h}
	matching := filterFull(c, f)
	from := c.MinPrice(f)
	return dirPage{
		slug:       fmt.Sprintf("regaly-vyska-%d-cm", h),
		title:      fmt.Sprintf("Regály výška %d cm: %d variant od %d Kč", h, len(matching), from),
		meta:       fmt.Sprintf("Kovové regály s výškou %d cm. %d variant rozměrů a barev, ceny od %d Kč, nosnost až %d kg. Slevy až 75 %%.", h, len(matching), from, maxCapacity(matching)),
		h1:         fmt.Sprintf("Kovové regály s výškou %d cm", h),
		category:   "Podle výšky",
		faqSubject: fmt.Sprintf("regál s výškou %d cm", h),
		products:   preferFeatured(c, f),
		Intro: fmt.Sprintf("Regály s výškou %d cm nabízíme v %d variantách šířky, hloubky a barvy. Ceny začínají na %d Kč, "+
			"všechny regály jsou nové z likvidace skladu se zárukou 7 let a bezšroubovou montáží.", h, len(matching), from),
		Stats:      dimensionStats(matching, from),
		Highlights: c.HeightNotes[h],
		RowsTitle:  fmt.Sprintf("Všechny varianty s výškou %d cm", h),
		Rows:       rows(c, matching),
		CardsTitle: "Nejprodávanější varianty",
	}
}

func widthPage(c *catalog.Catalog, w int) dirPage {
	f := catalog.Filter{Width: w}
	matching := filterFull(c, f)
	from := c.MinPrice(f)
	note := c.WidthNotes[w]
	var highlights []string
	if note != "" {
		highlights = append(highlights, upperFirst(note))
	}
	highlights = append(highlights,
		fmt.Sprintf("Na stěnu dlouhou 3 m se vejdou %d regály vedle sebe", wallWidth/w),
		"Regály lze libovolně řadit vedle sebe i kombinovat s jinými šířkami")
	return dirPage{
		slug:       fmt.Sprintf("regaly-sirka-%d-cm", w),
		title:      fmt.Sprintf("Regály šířka %d cm: %d variant od %d Kč", w, len(matching), from),
		meta:       fmt.Sprintf("Kovové regály se šířkou %d cm, %s. Ceny od %d Kč, slevy až 75 %%, záruka 7 let.", w, note, from),
		h1:         fmt.Sprintf("Kovové regály se šířkou %d cm", w),
		category:   "Podle šířky",
		faqSubject: fmt.Sprintf("regál se šířkou %d cm", w),
		products:   preferFeatured(c, f),
		Intro: fmt.Sprintf("Šířka %d cm je %s. Vybírat můžete z %d variant výšky, hloubky a barvy s cenou od %d Kč.",
			w, cmp.Or(note, "oblíbená volba"), len(matching), from),
		Stats:      dimensionStats(matching, from),
		Highlights: highlights,
		RowsTitle:  fmt.Sprintf("Všechny varianty se šířkou %d cm", w),
		Rows:       rows(c, matching),
		CardsTitle: "Doporučené regály",
	}
}

func useCasePage(c *catalog.Catalog, uc catalog.UseCase) dirPage {
	lower := strings.ToLower(uc.Name)
	space := "domácnost"
	if cat, ok := c.Category(uc.Category); ok {
		space = strings.ToLower(cat.Name)
	}
	from := c.MinPrice(catalog.Filter{})
	return dirPage{
		slug:       uc.Slug,
		title:      fmt.Sprintf("Regály na %s: od %d Kč", lower, from),
		meta:       fmt.Sprintf("Kovové regály na %s. Ideální do prostoru %s, nosnost až 1050 kg, ceny od %d Kč. Slevy až 75 %%.", lower, space, from),
		h1:         fmt.Sprintf("Kovové regály na %s", lower),
		category:   "Podle využití",
		faqSubject: "regál na " + lower,
		products:   c.Featured,
		Intro: fmt.Sprintf("Hledáte regál na %s? Naše kovové regály se nejčastěji používají do prostoru %s. "+
			"Pevná konstrukce unese až 1050 kg a montáž zvládnete za 10 minut bez nářadí.", lower, space),
		Highlights: useCaseHints(uc),
		RowsTitle:  "Oblíbené rozměry podle výšky",
		Rows:       heightSummary(c),
		CardsTitle: "Doporučené regály na " + lower,
	}
}

func combinationPage(c *catalog.Catalog, cb Combination) dirPage {
	lower := strings.ToLower(cb.UseCase.Name)
	f := cb.filter()
	matching := filterFull(c, f)
	from := c.MinPrice(f)
	size := fmt.Sprintf("%d × %d cm", cb.Height, cb.Width)
	return dirPage{
		slug:       cb.Slug(),
		title:      fmt.Sprintf("Regály na %s %s od %d Kč", lower, size, from),
		meta:       fmt.Sprintf("Kovové regály na %s, výška %d cm a šířka %d cm. %d variant od %d Kč, nosnost až %d kg, záruka 7 let.", lower, cb.Height, cb.Width, len(matching), from, maxCapacity(matching)),
		h1:         fmt.Sprintf("Regály na %s %s", lower, size),
		category:   "Podle využití",
		faqSubject: fmt.Sprintf("regál na %s %s", lower, size),
		products:   preferFeatured(c, f),
		Intro: fmt.Sprintf("Regál na %s s výškou %d cm a šířkou %d cm vybírejte podle hloubky a hmotnosti toho, co budete skladovat. "+
			"K dispozici je %d variant s cenou od %d Kč.", lower, cb.Height, cb.Width, len(matching), from),
		Stats:      dimensionStats(matching, from),
		Highlights: append(append(slices.Clone(c.HeightNotes[cb.Height]), widthNote(c, cb.Width)...), useCaseHints(cb.UseCase)...),
		RowsTitle:  "Dostupné varianty",
		Rows:       rows(c, matching),
		CardsTitle: "Doporučené regály",
	}
}

// capacityPage groups the catalog by total load capacity.
func capacityPage(c *catalog.Catalog) dirPage {
	byCapacity := map[int]catalog.Product{}
	for _, p := range c.Full {
		if best, ok := byCapacity[p.Capacity]; !ok || p.Price < best.Price {
			byCapacity[p.Capacity] = p
		}
	}
	var tiers []stat
	var tierRows []dirRow
	for _, capacity := range slices.Sorted(maps.Keys(byCapacity)) {
		p := byCapacity[capacity]
		tiers = append(tiers, stat{Value: fmt.Sprintf("%d kg", capacity), Label: fmt.Sprintf("od %d Kč", p.Price)})
		tierRows = append(tierRows, toRow(c, p))
	}
	return dirPage{
		slug:       "regaly-podle-nosnosti",
		title:      "Regály podle nosnosti: od 700 do 1050 kg",
		meta:       fmt.Sprintf("Přehled kovových regálů podle celkové nosnosti. Nejlevnější varianta v každé třídě nosnosti, ceny od %d Kč.", c.MinPrice(catalog.Filter{})),
		h1:         "Regály podle nosnosti",
		category:   "Přehled",
		faqSubject: "regál s vysokou nosností",
		products:   c.Featured,
		Intro: "Celková nosnost regálu je součtem nosnosti všech polic. Čtyřpolicové regály unesou 700 kg, pětipolicové 875 kg " +
			"a profesionální řada až 1050 kg. Zátěž vždy rozkládejte rovnoměrně.",
		Stats:      tiers,
		RowsTitle:  "Nejlevnější regál v každé třídě nosnosti",
		Rows:       tierRows,
		CardsTitle: "Doporučené regály",
	}
}

// pricePage lists featured products from the cheapest up.
func pricePage(c *catalog.Catalog) dirPage {
	sorted := cheapest(c)
	from := c.MinPrice(catalog.Filter{})
	return dirPage{
		slug:       "regaly-podle-ceny",
		title:      fmt.Sprintf("Regály podle ceny: od %d Kč", from),
		meta:       fmt.Sprintf("Kovové regály seřazené podle ceny. Nejlevnější od %d Kč, slevy až 75 %% díky likvidaci skladu.", from),
		h1:         "Regály podle ceny",
		category:   "Přehled",
		faqSubject: "levný regál",
		products:   sorted,
		Intro: fmt.Sprintf("Všechny regály prodáváme za likvidační ceny. Nejlevnější kompletní regál stojí %d Kč, "+
			"bestseller 180×90×40 cm vyjde na %d Kč.", from, c.Bestseller().Price),
		RowsTitle:  "Ceník nejprodávanějších regálů",
		Rows:       rows(c, sorted),
		CardsTitle: "Nejlevnější regály",
	}
}

func directoryFAQs(c *catalog.Catalog, subject string) []model.FAQ {
	return []model.FAQ{
		{Question: fmt.Sprintf("Kolik stojí %s?", subject),
			Answer: fmt.Sprintf("Ceny začínají na %d Kč. Přesná cena závisí na rozměrech a povrchové úpravě.", c.MinPrice(catalog.Filter{}))},
		{Question: "Jak rychle regál dorazí?",
			Answer: "Expedujeme ihned ze skladu, doručení trvá obvykle 2 až 3 pracovní dny. Doprava stojí od 99 Kč."},
		{Question: "Je montáž složitá?",
			Answer: "Není. Bezšroubovou montáž zvládnete za 10 minut bez nářadí, stačí gumová palička."},
	}
}

func filterFull(c *catalog.Catalog, f catalog.Filter) []catalog.Product {
	var out []catalog.Product
	for _, p := range c.Full {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// preferFeatured returns the featured products matching f, falling back to
// the whole featured list when none match.
func preferFeatured(c *catalog.Catalog, f catalog.Filter) []catalog.Product {
	var out []catalog.Product
	for _, p := range c.Featured {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	if len(out) < cardCount {
		for _, p := range c.Featured {
			if !f.Match(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func maxCapacity(products []catalog.Product) int {
	m := 0
	for _, p := range products {
		m = max(m, p.Capacity)
	}
	return m
}

func dimensionStats(products []catalog.Product, from int) []stat {
	return []stat{
		{Value: fmt.Sprint(len(products)), Label: "variant"},
		{Value: fmt.Sprintf("%d Kč", from), Label: "cena od"},
		{Value: fmt.Sprintf("%d kg", maxCapacity(products)), Label: "nosnost až"},
		{Value: "7 let", Label: "záruka"},
	}
}

func rows(c *catalog.Catalog, products []catalog.Product) []dirRow {
	out := make([]dirRow, 0, min(len(products), directoryRows))
	for _, p := range products {
		if len(out) == directoryRows {
			break
		}
		out = append(out, toRow(c, p))
	}
	return out
}

func toRow(c *catalog.Catalog, p catalog.Product) dirRow {
	return dirRow{
		Href:     c.Href(p.Slug),
		Name:     p.Name(),
		Dims:     fmt.Sprintf("%d×%d×%d cm", p.Height, p.Width, p.Depth),
		Color:    p.ColorInfo().Name,
		Capacity: p.Capacity,
		Price:    p.Price,
	}
}

// heightSummary has one row per height: the cheapest product of that height.
func heightSummary(c *catalog.Catalog) []dirRow {
	var out []dirRow
	for _, h := range c.Heights {
		products := filterFull(c, catalog.Filter{Height: h})
		if len(products) == 0 {
			continue
		}
		p := slices.MinFunc(products, func(a, b catalog.Product) int { return a.Price - b.Price })
		out = append(out, toRow(c, p))
	}
	return out
}

func widthNote(c *catalog.Catalog, w int) []string {
	if note := c.WidthNotes[w]; note != "" {
		return []string{upperFirst(note)}
	}
	return nil
}

func useCaseHints(uc catalog.UseCase) []string {
	switch uc.Category {
	case "sklep", "spiz":
		return []string{"Do vlhkých prostor doporučujeme zinkovaný povrch", "Těžké sklenice ukládejte na spodní police"}
	case "garaz", "dilna":
		return []string{"Pro těžké předměty volte hloubku 40 cm a více", "Vysoké regály ukotvěte ke zdi"}
	case "kancelar", "eshop", "sklad":
		return []string{"Šanony a krabice se nejlépe vejdou na police hloubky 40 cm", "Police označte štítky pro rychlé vychystání"}
	default:
		return []string{"Lakované regály v bílé barvě ladí s interiérem", "Nastavitelné police přizpůsobíte výšce věcí"}
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}
