package catalog

const (
	imageBlack = "https://vyprodej-regalucz.s26.cdn-upgates.com/l/l690377af7480a-1-regal-1800x900x400-mm-lakovany-5-policovy-nosnost-875-kg-cerny-pravy-18090405875black1.jpeg"
	imageWhite = "https://vyprodej-regalucz.s26.cdn-upgates.com/6/6690a777ad6edc-1-18090405875white1.jpeg"
	imageRed   = "https://vyprodej-regalucz.s26.cdn-upgates.com/_cache/9/e/9eef5f9f2ad8880b75926a3eae58485b-1-regal-1500x700x300-mm-lakovany-4-policovy-nosnost-700-kg-cerveny-pravy-15070304700red1.jpeg"
	imageBlue  = "https://vyprodej-regalucz.s26.cdn-upgates.com/_cache/1/c/1c64831c1231f5847cf9e7a36f6cdf6f-1-15070304700blue1.jpeg"
	imageZinc  = "https://vyprodej-regalucz.s26.cdn-upgates.com/z/z6914605330838-5-pol-pravy-zink.jpg"
	imagePro   = "https://vyprodej-regalucz.s26.cdn-upgates.com/_cache/b/1/b17ce5b491bdb73a0df3160b51fbcf7e-1-regal-1800x1200x500-mm-lakovany-5-policovy-nosnost-1050-kg-modro-oranzovy-pravy-18120501050orangeblue1.jpeg"
)

// DefaultImage is used for Open Graph previews.
const DefaultImage = imageBlack

const bestsellerSlug = "regal-180x90x40-cerna"

// Category is a space where shelves get placed.
type Category struct {
	ID    string
	Name  string
	Label string
	Slug  string
}

type Location struct {
	ID         string
	Name       string
	Region     string
	Population int
	Postal     string
}

type Persona struct {
	ID          string
	Name        string
	Slug        string
	Title       string
	PainPoints  []string
	Solutions   []string
	Recommended []string // product slugs
}

type GlossaryTerm struct {
	ID         string
	Term       string
	Slug       string
	Definition string
	Detail     string
	Related    []string // glossary ids
}

// ComparisonItem is one side of a comparison. Zero numeric fields and an
// empty Surface mean the attribute does not apply. A zero PriceFrom is filled
// in from the catalog when the tables are assembled.
type ComparisonItem struct {
	Name      string
	PriceFrom int
	Height    int
	Width     int
	Shelves   int
	Capacity  int
	Surface   string
	Color     ColorClass // narrows the PriceFrom lookup
	Pros      []string
	Cons      []string
}

type Comparison struct {
	ID      string
	Slug    string
	Title   string
	A, B    ComparisonItem
	Verdict string
}

type UseCase struct {
	ID       string
	Name     string
	Slug     string
	Category string
}

// Page is an existing hand-written page used for internal links.
type Page struct {
	Slug  string
	Title string
}

var featuredSlugs = []string{
	"regal-150x70x30-cerna",
	"regal-150x70x30-zinkovany",
	"regal-180x90x40-cerna",
	"regal-180x90x40-zinkovany",
	"regal-180x90x40-bila",
	"regal-180x90x40-cervena",
	"regal-180x90x40-modra",
	"regal-200x90x40-cerna",
	"regal-180x120x50-cerna",
	"regal-180x120x50-profesionalni",
}

var categories = []Category{
	{ID: "garaz", Name: "Garáž", Label: "Regály do garáže", Slug: "regaly-do-garaze"},
	{ID: "sklep", Name: "Sklep", Label: "Regály do sklepa", Slug: "regaly-do-sklepa"},
	{ID: "dilna", Name: "Dílna", Label: "Regály do dílny", Slug: "regaly-do-dilny"},
	{ID: "kancelar", Name: "Kancelář", Label: "Regály do kanceláře", Slug: "regaly-do-kancelare"},
	{ID: "spiz", Name: "Spíž", Label: "Regály do spíže", Slug: "regaly-do-spize"},
	{ID: "sklad", Name: "Sklad", Label: "Skladové regály", Slug: "skladove-regaly"},
	{ID: "archiv", Name: "Archiv", Label: "Regály do archivu", Slug: "regaly-do-archivu"},
	{ID: "satna", Name: "Šatna", Label: "Regály do šatny", Slug: "regaly-do-satny"},
	{ID: "komora", Name: "Komora", Label: "Regály do komory", Slug: "regaly-do-komory"},
	{ID: "eshop", Name: "E-shop sklad", Label: "Regály pro e-shop", Slug: "regaly-pro-e-shop"},
	{ID: "byt", Name: "Byt", Label: "Regály do bytu", Slug: "regaly-do-bytu"},
	{ID: "dum", Name: "Dům", Label: "Regály do domu", Slug: "regaly-do-domu"},
}

var locations = []Location{
	{ID: "praha", Name: "Praha", Region: "Středočeský", Population: 1309000, Postal: "100 00"},
	{ID: "brno", Name: "Brno", Region: "Jihomoravský", Population: 382000, Postal: "602 00"},
	{ID: "ostrava", Name: "Ostrava", Region: "Moravskoslezský", Population: 285000, Postal: "702 00"},
	{ID: "plzen", Name: "Plzeň", Region: "Plzeňský", Population: 175000, Postal: "301 00"},
	{ID: "liberec", Name: "Liberec", Region: "Liberecký", Population: 105000, Postal: "460 01"},
	{ID: "olomouc", Name: "Olomouc", Region: "Olomoucký", Population: 101000, Postal: "779 00"},
	{ID: "ceske-budejovice", Name: "České Budějovice", Region: "Jihočeský", Population: 95000, Postal: "370 01"},
	{ID: "hradec-kralove", Name: "Hradec Králové", Region: "Královéhradecký", Population: 93000, Postal: "500 02"},
	{ID: "usti-nad-labem", Name: "Ústí nad Labem", Region: "Ústecký", Population: 92000, Postal: "400 01"},
	{ID: "pardubice", Name: "Pardubice", Region: "Pardubický", Population: 91000, Postal: "530 02"},
	{ID: "zlin", Name: "Zlín", Region: "Zlínský", Population: 75000, Postal: "760 01"},
	{ID: "havirov", Name: "Havířov", Region: "Moravskoslezský", Population: 72000, Postal: "736 01"},
	{ID: "kladno", Name: "Kladno", Region: "Středočeský", Population: 69000, Postal: "272 01"},
	{ID: "most", Name: "Most", Region: "Ústecký", Population: 63000, Postal: "434 01"},
	{ID: "opava", Name: "Opava", Region: "Moravskoslezský", Population: 56000, Postal: "746 01"},
	{ID: "frydek-mistek", Name: "Frýdek-Místek", Region: "Moravskoslezský", Population: 55000, Postal: "738 01"},
	{ID: "karlovy-vary", Name: "Karlovy Vary", Region: "Karlovarský", Population: 49000, Postal: "360 01"},
	{ID: "jihlava", Name: "Jihlava", Region: "Vysočina", Population: 51000, Postal: "586 01"},
	{ID: "teplice", Name: "Teplice", Region: "Ústecký", Population: 50000, Postal: "415 01"},
	{ID: "chomutov", Name: "Chomutov", Region: "Ústecký", Population: 49000, Postal: "430 01"},
}

var personas = []Persona{
	{
		ID: "kutil", Name: "Kutil a řemeslník", Slug: "regaly-pro-kutily",
		Title: "Regály pro kutily a řemeslníky",
		PainPoints: []string{
			"Nepořádek v dílně a garáži",
			"Nářadí se ztrácí a hledání zabírá čas",
			"Nedostatek úložného prostoru pro materiál",
			"Těžké předměty bez bezpečného uložení",
		},
		Solutions: []string{
			"Regály s nosností až 875 kg pro těžké nářadí",
			"Nastavitelné police pro různé velikosti nářadí",
			"Modulární systém, který lze rozšiřovat podle potřeby",
			"Zinkované provedení odolné vlhkosti v dílně",
		},
		Recommended: []string{"regal-180x90x40-cerna", "regal-200x90x40-cerna", "regal-180x120x50-profesionalni"},
	},
	{
		ID: "domacnost", Name: "Domácnost a rodina", Slug: "regaly-pro-domacnost",
		Title: "Regály pro domácnost a rodinu",
		PainPoints: []string{
			"Málo místa v bytě či domě",
			"Sezónní věci zabírají zbytečně prostor",
			"Spíž a komora jsou neorganizované",
			"Dětský pokoj potřebuje více úložného prostoru",
		},
		Solutions: []string{
			"Kompaktní regály od 40 cm šířky do malých prostor",
			"Bílé a černé varianty ladící s interiérem",
			"Nastavitelné police pro různé potřeby",
			"Cenově dostupné řešení pro celou domácnost",
		},
		Recommended: []string{"regal-150x70x30-cerna", "regal-180x90x40-bila", "regal-150x70x30-zinkovany"},
	},
	{
		ID: "firma", Name: "Firma a podnikatel", Slug: "regaly-pro-firmy",
		Title: "Regály pro firmy a podnikatele",
		PainPoints: []string{
			"Neefektivní využití skladových prostor",
			"Vysoké náklady na regály a vybavení",
			"Potřeba rychlé expanze skladových kapacit",
			"Organizace zboží pro rychlé vychystání",
		},
		Solutions: []string{
			"Profesionální regály s nosností 1050 kg",
			"Velkoobchodní ceny a slevy až 75 %",
			"Rychlá montáž bez prostojů, 10 minut na regál",
			"Modulární systém pro snadné rozšíření",
		},
		Recommended: []string{"regal-180x120x50-profesionalni", "regal-200x90x40-cerna", "regal-180x120x50-cerna"},
	},
	{
		ID: "eshop", Name: "E-shop provozovatel", Slug: "regaly-pro-eshopy",
		Title: "Regály pro e-shopy a online prodejce",
		PainPoints: []string{
			"Rostoucí objem objednávek a zboží",
			"Pomalé vychystávání objednávek",
			"Nedostatečná organizace skladu",
			"Vysoké náklady na skladové prostory",
		},
		Solutions: []string{
			"Systematické označení polic pro rychlé hledání",
			"Různé šířky pro různé kategorie zboží",
			"Vysoká nosnost pro těžké produkty",
			"Cenově dostupné vybavení celého skladu",
		},
		Recommended: []string{"regal-180x90x40-cerna", "regal-180x120x50-cerna", "regal-200x90x40-cerna"},
	},
	{
		ID: "senior", Name: "Senior", Slug: "regaly-pro-seniory",
		Title: "Regály pro seniory: snadná montáž a přístupnost",
		PainPoints: []string{
			"Obtížná montáž složitých regálů",
			"Potřeba snadného přístupu ke všem policím",
			"Bezpečnost a stabilita regálů",
			"Cenová dostupnost při důchodu",
		},
		Solutions: []string{
			"Bezšroubová montáž bez nářadí za 10 minut",
			"Nižší regály 150 cm s dobrým přístupem",
			"Stabilní konstrukce s možností kotvení ke zdi",
			"Nejnižší ceny na trhu",
		},
		Recommended: []string{"regal-150x70x30-zinkovany", "regal-150x70x30-cerna", "regal-180x90x40-zinkovany"},
	},
	{
		ID: "student", Name: "Student", Slug: "regaly-pro-studenty",
		Title: "Regály pro studenty: levné a praktické",
		PainPoints: []string{
			"Omezený rozpočet",
			"Malé prostory na koleji nebo v garsonce",
			"Potřeba uložit knihy, oblečení a studijní materiály",
			"Častá stěhování a potřeba snadné demontáže",
		},
		Solutions: []string{
			"Nejlevnější kompletní regály na trhu",
			"Kompaktní rozměr 150×70×30 cm",
			"Snadná montáž i demontáž bez nářadí",
			"Lehký, ale pevný regál snadný na přepravu",
		},
		Recommended: []string{"regal-150x70x30-zinkovany", "regal-150x70x30-cerna", "regal-180x90x40-zinkovany"},
	},
}

var glossary = []GlossaryTerm{
	{ID: "nosnost", Term: "Nosnost regálu", Slug: "slovnik-nosnost-regalu",
		Definition: "Nosnost regálu udává maximální hmotnost, kterou regál bezpečně unese. Rozlišujeme nosnost jedné police (typicky 175 kg) a celkovou nosnost regálu (700 až 1050 kg).",
		Detail:     "Nosnost je testována při rovnoměrném rozložení zátěže po celé ploše police. Překročení nosnosti může vést k deformaci polic nebo zhroucení celé konstrukce. Naše regály mají nosnost certifikovanou nezávislou laboratoří.",
		Related:    []string{"nosnost-police", "celkova-nosnost", "zatizeni-regalu"}},
	{ID: "nosnost-police", Term: "Nosnost police", Slug: "slovnik-nosnost-police",
		Definition: "Nosnost jedné police je maximální hmotnost, kterou unese jedna police regálu při rovnoměrném rozložení.",
		Detail:     "U standardních regálů je nosnost 175 kg na polici, u profesionálních 210 kg. Důležité je rozložit zátěž rovnoměrně, bodové zatížení snižuje skutečnou nosnost. Těžší předměty umisťujte na spodní police.",
		Related:    []string{"nosnost", "celkova-nosnost"}},
	{ID: "celkova-nosnost", Term: "Celková nosnost regálu", Slug: "slovnik-celkova-nosnost",
		Definition: "Celková nosnost je součet nosností všech polic regálu. U pětipolicového regálu se 175 kg na polici je celková nosnost 875 kg.",
		Detail:     "Celková nosnost předpokládá rovnoměrné rozložení zátěže. V praxi doporučujeme nepřekračovat 80 % uvedené nosnosti kvůli bezpečnostní rezervě. Při umístění těžkého nákladu na jednu polici nezatěžujte ostatní police maximálně.",
		Related:    []string{"nosnost", "nosnost-police"}},
	{ID: "bezroubova-montaz", Term: "Bezšroubová montáž", Slug: "slovnik-bezroubova-montaz",
		Definition: "Bezšroubová (zarážecí) montáž je systém sestavení regálu bez použití šroubů a nářadí. Díly se do sebe zasunou a zarazí.",
		Detail:     "Systém využívá kovové spony a příčky v profilu L, které se zasouvají do otvorů ve stojnách. Montáž trvá 10 až 15 minut a nevyžaduje žádné nářadí. Pro lepší fixaci lze použít gumovou paličku. Systém umožňuje snadnou demontáž a přestavění.",
		Related:    []string{"montaz-regalu", "nastavitelne-police"}},
	{ID: "montaz-regalu", Term: "Montáž regálu", Slug: "slovnik-montaz-regalu",
		Definition: "Montáž regálu je proces sestavení regálu z jednotlivých dílů. U bezšroubových regálů je montáž jednoduchá a trvá 10 minut.",
		Detail:     "Postup: položte dvě stojny na zem, nasaďte příčky spodní police, přidejte zbývající stojny, postavte konstrukci a vložte police. Doporučujeme montáž ve dvou a kotvení ke zdi pro zvýšení stability.",
		Related:    []string{"bezroubova-montaz", "nastavitelne-police"}},
	{ID: "nastavitelne-police", Term: "Nastavitelné police", Slug: "slovnik-nastavitelne-police",
		Definition: "Nastavitelné police lze posouvat po výšce regálu v krocích po 5 cm, což umožňuje přizpůsobit regál konkrétním potřebám.",
		Detail:     "Police se upevňují do otvorů ve stojnách regálu. Otvory jsou rozmístěny v pravidelných intervalech 50 mm. Změna výšky police nevyžaduje žádné nářadí, stačí polici vysunout a zasunout do jiné pozice.",
		Related:    []string{"bezroubova-montaz", "montaz-regalu"}},
	{ID: "zinkovani", Term: "Zinkování (povrchová úprava)", Slug: "slovnik-zinkovani",
		Definition: "Zinkování je povrchová úprava kovu, při které se na ocelový povrch nanáší vrstva zinku. Chrání před korozí a rzí.",
		Detail:     "Zinkování vytváří ochranný povlak, který brání kontaktu oceli s vlhkostí a kyslíkem. Zinkované regály jsou ideální do vlhkých prostor jako sklepy, garáže nebo venkovní prostory. Životnost zinkovaného povrchu je 20 a více let.",
		Related:    []string{"lakovani", "povrchova-uprava", "koroze"}},
	{ID: "lakovani", Term: "Lakování (povrchová úprava)", Slug: "slovnik-lakovani",
		Definition: "Lakování je povrchová úprava, při které se na ocelový povrch nanáší práškový lak. Umožňuje různé barevné varianty.",
		Detail:     "Práškové lakování vytváří odolný a estetický povrch. Je k dispozici v černé, bílé, červené a modré barvě. Lakované regály jsou vhodné do suchých a mírně vlhkých prostor. Pro vlhké prostředí doporučujeme zinkované provedení.",
		Related:    []string{"zinkovani", "povrchova-uprava"}},
	{ID: "povrchova-uprava", Term: "Povrchová úprava regálu", Slug: "slovnik-povrchova-uprava",
		Definition: "Povrchová úprava chrání ocelovou konstrukci před korozí a určuje vzhled regálu. Základní typy jsou zinkování a lakování.",
		Detail:     "Výběr povrchové úpravy závisí na místě umístění regálu. Do vlhkých prostor, jako je sklep nebo garáž, doporučujeme zinkování. Do suchých prostor, jako je kancelář nebo byt, je vhodné lakování v požadované barvě.",
		Related:    []string{"zinkovani", "lakovani"}},
	{ID: "koroze", Term: "Koroze (rez)", Slug: "slovnik-koroze",
		Definition: "Koroze je chemický proces degradace kovu způsobený vlhkostí a kyslíkem. U regálů se projevuje jako rez.",
		Detail:     "Koroze oslabuje konstrukci a snižuje nosnost. Prevencí je použití zinkovaných regálů ve vlhkých prostorech, pravidelná kontrola povrchu a okamžité očištění a přelakování poškozených míst.",
		Related:    []string{"zinkovani", "povrchova-uprava"}},
	{ID: "stojny", Term: "Stojny (sloupky regálu)", Slug: "slovnik-stojny",
		Definition: "Stojny jsou svislé nosné prvky regálu. Každý regál má čtyři stojny, které nesou police a určují výšku regálu.",
		Detail:     "Stojny mají perforovaný profil s otvory pro uchycení příček a polic. Jsou vyrobeny z ocelového plechu o tloušťce 1,5 mm. Na spodní části mají patky pro stabilní stání na podlaze.",
		Related:    []string{"police-regalu", "pricka"}},
	{ID: "police-regalu", Term: "Police regálu", Slug: "slovnik-police-regalu",
		Definition: "Police jsou vodorovné plochy regálu, na které se ukládá zboží. Vyrábějí se z ocelového plechu s výztuhami.",
		Detail:     "Police jsou vyrobeny z ocelového plechu 0,7 mm s výztuhami po obvodu. Nosnost standardní police je 175 kg, profesionální 210 kg. Police se vkládají na příčky upevněné ve stojnách.",
		Related:    []string{"stojny", "nosnost-police"}},
	{ID: "pricka", Term: "Příčka (traverza)", Slug: "slovnik-pricka",
		Definition: "Příčka je vodorovný nosný prvek ve tvaru L, který spojuje stojny a nese police regálu.",
		Detail:     "Příčky se zasouvají do otvorů ve stojnách a fixují se zarážkou. Každá police je nesena dvěma příčkami, přední a zadní. Příčka má profil L pro vyšší nosnost a stabilitu.",
		Related:    []string{"stojny", "police-regalu", "bezroubova-montaz"}},
	{ID: "likvidace-skladu", Term: "Likvidace skladu", Slug: "slovnik-likvidace-skladu",
		Definition: "Likvidace skladu je proces výprodeje skladových zásob za výrazně snížené ceny, typicky při změně sortimentu nebo uzavření provozovny.",
		Detail:     "Při likvidaci skladu se zboží prodává za ceny výrazně pod běžnou maloobchodní cenou. Zboží je nové a nerozbalené, pouze za nižší cenu. Likvidace je časově omezená a platí do vyprodání zásob.",
		Related:    []string{"vyprodej", "slevy"}},
	{ID: "zatizeni-regalu", Term: "Zatížení regálu", Slug: "slovnik-zatizeni-regalu",
		Definition: "Zatížení regálu je aktuální hmotnost předmětů uložených na regálu. Nesmí překročit celkovou nosnost.",
		Detail:     "Pro bezpečné používání platí pravidla: nejtěžší předměty na spodní police, rovnoměrné rozložení zátěže a nepřekračovat 80 % nosnosti. Při nerovnoměrném zatížení hrozí převrácení regálu.",
		Related:    []string{"nosnost", "celkova-nosnost"}},
}

var comparisons = []Comparison{
	{ID: "180-vs-200", Slug: "srovnani-regal-180-vs-200-cm",
		Title: "Srovnání regálů 180 vs 200 cm: který vybrat?",
		A: ComparisonItem{Name: "Regál 180 cm", Height: 180, Shelves: 5, Capacity: 875,
			Pros: []string{"Standardní výška, vejde se všude", "Širší nabídka barev", "Nižší cena"},
			Cons: []string{"Menší celkový úložný prostor", "Níže položené předměty dole"}},
		B: ComparisonItem{Name: "Regál 200 cm", Height: 200, Shelves: 5, Capacity: 875,
			Pros: []string{"Více úložného prostoru", "Lepší využití vertikálního prostoru", "Ideální pro vysoké prostory"},
			Cons: []string{"Vyšší cena", "Horní police hůře přístupná pro nižší postavy", "Ne všude se vejde"}},
		Verdict: "Regál 180 cm je univerzálnější volba pro většinu prostor. Regál 200 cm doporučujeme do vysokých garáží a skladů."},
	{ID: "cerny-vs-zinkovany", Slug: "srovnani-cerny-vs-zinkovany-regal",
		Title: "Černý vs zinkovaný regál: co je lepší?",
		A: ComparisonItem{Name: "Černý (lakovaný) regál", Surface: "Lakovaný", Color: Black,
			Pros: []string{"Elegantní vzhled", "Vhodný do interiéru", "Širší nabídka rozměrů"},
			Cons: []string{"Méně odolný vlhkosti", "Náročnější na údržbu ve vlhku"}},
		B: ComparisonItem{Name: "Zinkovaný regál", Surface: "Pozinkovaný", Color: Zinc,
			Pros: []string{"Nejvyšší odolnost korozi", "Ideální do vlhka", "Nižší cena", "Dlouhá životnost 20+ let"},
			Cons: []string{"Průmyslový vzhled", "Omezené barevné varianty"}},
		Verdict: "Do sucha, tedy do kanceláře nebo bytu, volte černý lakovaný regál. Do vlhka, tedy do sklepa nebo garáže, jednoznačně zinkovaný."},
	{ID: "150-vs-180", Slug: "srovnani-regal-150-vs-180-cm",
		Title: "Regál 150 cm vs 180 cm: srovnání a doporučení",
		A: ComparisonItem{Name: "Regál 150 cm", Height: 150, Shelves: 4, Capacity: 700,
			Pros: []string{"Kompaktní velikost", "Nejnižší cena", "Čtyři police stačí pro základní potřeby", "Snadný přístup ke všem policím"},
			Cons: []string{"Menší úložná kapacita", "Pouze čtyři police"}},
		B: ComparisonItem{Name: "Regál 180 cm", Height: 180, Shelves: 5, Capacity: 875,
			Pros: []string{"Pět polic znamená více místa", "Vyšší celková nosnost 875 kg", "Nejprodávanější velikost"},
			Cons: []string{"Horní police méně přístupná", "Vyšší cena"}},
		Verdict: "Regál 150 cm je ideální pro malé prostory a tam, kde potřebujete snadný přístup. Regál 180 cm nabízí lepší poměr ceny a úložného prostoru."},
	{ID: "90-vs-120-sirka", Slug: "srovnani-regal-sirka-90-vs-120-cm",
		Title: "Regál šířka 90 cm vs 120 cm: jak vybrat?",
		A: ComparisonItem{Name: "Regál šířka 90 cm", Width: 90,
			Pros: []string{"Univerzální šířka", "Vejde se do většiny prostor", "Nižší cena"},
			Cons: []string{"Menší úložná plocha"}},
		B: ComparisonItem{Name: "Regál šířka 120 cm", Width: 120,
			Pros: []string{"Maximální úložná plocha", "Ideální pro velké předměty", "Profesionální využití"},
			Cons: []string{"Vyžaduje větší prostor", "Vyšší cena"}},
		Verdict: "Šířka 90 cm je standard pro domácnost a dílnu. Šířku 120 cm volte pro profesionální sklady a e-shopy."},
	{ID: "novy-vs-bazar", Slug: "srovnani-novy-vs-bazarovy-regal",
		Title: "Nový regál z výprodeje vs bazarový regál",
		A: ComparisonItem{Name: "Nový regál z výprodeje",
			Pros: []string{"Stoprocentně nový a nerozbalený", "Plná záruka 7 let", "Všechny díly kompletní", "Známá nosnost a parametry"},
			Cons: []string{"O něco dražší než bazar, ale ne vždy"}},
		B: ComparisonItem{Name: "Bazarový (použitý) regál", PriceFrom: 300,
			Pros: []string{"Může být levnější", "Okamžitě k vyzvednutí"},
			Cons: []string{"Žádná záruka", "Neznámý stav a historie", "Možné poškození a rez", "Chybějící díly"}},
		Verdict: "Nový regál z výprodeje je jasná volba. Za cenu srovnatelnou s bazarem získáte nové zboží se zárukou."},
}

// Heights, Widths and Depths are the dimension buckets sold, in cm.
var (
	heights = []int{150, 180, 200, 220}
	widths  = []int{40, 60, 70, 90, 120}
	depths  = []int{30, 40, 45, 50}
)

var widthNotes = map[int]string{
	40:  "nejužší varianta do stísněných prostor",
	60:  "kompaktní šířka pro menší prostory",
	70:  "standardní šířka pro domácnost",
	90:  "nejprodávanější šířka, univerzální",
	120: "nejširší varianta pro profesionální použití",
}

var heightNotes = map[int][]string{
	150: {"Kompaktní prostory: spíž, komora, malá garáž", "Snadný přístup ke všem policím bez žebříku", "Ideální pro seniory a menší postavy"},
	180: {"Univerzální výška, vejde se téměř všude", "Nejprodávanější velikost", "Pět polic je optimální poměr výšky a kapacity"},
	200: {"Vysoké garáže a sklady", "Maximalizace vertikálního prostoru", "Profesionální použití"},
	220: {"Nejvyšší varianta pro maximální kapacitu", "Profesionální sklady s vysokými stropy", "Archivní prostory"},
}

var useCases = []UseCase{
	{ID: "naradi", Name: "Nářadí", Slug: "regaly-na-naradi", Category: "garaz"},
	{ID: "pneumatiky", Name: "Pneumatiky", Slug: "regaly-na-pneumatiky", Category: "garaz"},
	{ID: "vino", Name: "Víno", Slug: "regaly-na-vino", Category: "sklep"},
	{ID: "zavareniny", Name: "Zavařeniny", Slug: "regaly-na-zavareniny", Category: "sklep"},
	{ID: "knihy", Name: "Knihy", Slug: "regaly-na-knihy", Category: "byt"},
	{ID: "boxy", Name: "Úložné boxy", Slug: "regaly-na-boxy", Category: "sklad"},
	{ID: "krabice", Name: "Krabice", Slug: "regaly-na-krabice", Category: "eshop"},
	{ID: "dokumenty", Name: "Dokumenty a šanony", Slug: "regaly-na-dokumenty", Category: "kancelar"},
	{ID: "potraviny", Name: "Potraviny", Slug: "regaly-na-potraviny", Category: "spiz"},
	{ID: "obleceni", Name: "Oblečení", Slug: "regaly-na-obleceni", Category: "satna"},
}

var existingPages = []Page{
	{Slug: "index", Title: "Úvod"},
	{Slug: "katalog", Title: "Katalog regálů"},
	{Slug: "faq", Title: "Časté dotazy"},
	{Slug: "kontakt", Title: "Kontakt"},
	{Slug: "o-nas", Title: "O nás"},
	{Slug: "likvidace-skladu-regaly", Title: "Likvidace skladu"},
	{Slug: "bazarove-regaly", Title: "Bazarové regály"},
	{Slug: "slevy-na-regaly", Title: "Slevy na regály"},
	{Slug: "regaly-do-garaze", Title: "Regály do garáže"},
	{Slug: "regaly-do-sklepa", Title: "Regály do sklepa"},
	{Slug: "regaly-do-dilny", Title: "Regály do dílny"},
	{Slug: "zinkove-regaly", Title: "Zinkové regály"},
	{Slug: "montaz-regalu", Title: "Montáž regálu"},
	{Slug: "nosnost-regalu", Title: "Nosnost regálu"},
	{Slug: "srovnani-regalu", Title: "Srovnání regálů"},
	{Slug: "jak-vybrat-regal", Title: "Jak vybrat regál"},
	{Slug: "cerne-regaly", Title: "Černé regály"},
	{Slug: "bile-regaly", Title: "Bílé regály"},
	{Slug: "cervene-regaly", Title: "Červené regály"},
	{Slug: "modre-regaly", Title: "Modré regály"},
	{Slug: "regaly-do-kancelare", Title: "Regály do kanceláře"},
	{Slug: "regaly-do-spize", Title: "Regály do spíže"},
	{Slug: "regaly-do-satny", Title: "Regály do šatny"},
	{Slug: "regaly-pro-e-shop", Title: "Regály pro e-shop"},
	{Slug: "regaly-do-archivu", Title: "Regály do archivu"},
	{Slug: "slovnik", Title: "Slovník pojmů"},
	{Slug: "srovnavac", Title: "Srovnávač regálů"},
	{Slug: "quiz", Title: "Výběr regálu: kvíz"},
}

// Full catalog, in feed order. Feed ids (BR-001...) follow this order.
var catalogSlugs = []string{
	"regal-150x70x30-cerna", "regal-150x70x30-cervena", "regal-150x70x30-zinkovany",
	"regal-180x90x40-bila", "regal-180x90x40-zinkovany",
	"regal-180x60x40-cerna", "regal-180x40x40-cerna", "regal-200x90x40-cerna",
	"regal-220x90x45-cerna", "regal-180x120x50-cerna", "regal-180x90x40-modra",
	"regal-180x40x30-zinkovany", "regal-180x90x45-cerna",
	"regal-220x70x45-bila", "regal-200x40x30-modra", "regal-200x70x45-cerna",
	"regal-200x120x40-cerna", "regal-220x70x50-cervena", "regal-150x120x40-zinkovany",
	"regal-180x90x50-cervena", "regal-180x70x30-bila", "regal-200x60x50-modra",
	"regal-220x60x45-bila", "regal-200x120x50-zinkovany", "regal-200x60x40-zinkovany",
	"regal-150x40x30-bila", "regal-150x120x45-cervena", "regal-200x90x40-modra",
	"regal-200x120x40-zinkovany", "regal-220x40x30-cervena", "regal-180x40x40-zinkovany",
	"regal-150x90x30-zinkovany", "regal-180x90x40-cervena", "regal-200x90x50-cerna",
	"regal-180x40x45-cerna", "regal-180x120x40-cerna", "regal-150x60x30-cerna",
	"regal-150x120x40-cervena", "regal-220x60x40-zinkovany", "regal-220x60x50-modra",
	"regal-150x40x50-cervena", "regal-220x90x30-cerna", "regal-220x70x30-bila",
	"regal-180x120x50-bila", "regal-180x70x50-bila", "regal-150x40x40-bila",
	"regal-220x90x40-modra", "regal-180x90x30-modra", "regal-220x70x50-zinkovany",
	"regal-220x60x40-cervena", "regal-150x120x30-cervena", "regal-150x120x50-zinkovany",
	"regal-180x40x30-bila", "regal-150x60x50-cerna", "regal-180x120x30-zinkovany",
	"regal-220x120x45-cervena", "regal-200x60x45-modra", "regal-200x90x45-cerna",
	"regal-180x120x45-bila", "regal-150x60x45-cervena", "regal-220x120x45-zinkovany",
	"regal-150x120x45-cerna", "regal-200x70x40-cervena", "regal-200x120x50-cervena",
	"regal-150x90x45-cerna", "regal-200x60x45-bila", "regal-220x120x30-cerna",
	"regal-180x120x30-cervena", "regal-180x90x40-cerna", "regal-200x40x45-bila",
	"regal-180x40x45-zinkovany", "regal-180x60x40-bila", "regal-150x60x45-modra",
	"regal-180x70x40-cerna", "regal-150x90x40-bila", "regal-200x70x40-bila",
	"regal-180x90x45-cervena", "regal-150x40x45-bila", "regal-200x40x30-zinkovany",
	"regal-200x70x50-zinkovany", "regal-150x90x40-cervena", "regal-220x40x40-cervena",
	"regal-150x70x45-cerna", "regal-200x90x45-modra", "regal-200x120x40-bila",
	"regal-150x70x30-bila", "regal-180x120x50-profesionalni",
}
