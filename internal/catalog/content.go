package catalog

import "github.com/michalbaturko-lang/bazarovyregal/internal/model"

// Section is a heading with optional prose and a bullet list.
type Section struct {
	Heading string
	Text    string
	Items   []string
}

// Curation is a themed top list. Products are chosen from the featured set:
// explicit Picks first, otherwise every product whose finish is in Colors.
// Cheapest orders the selection by price. Limit caps the table.
type Curation struct {
	Slug     string
	Title    string
	Intro    string
	Category string
	Criteria []string
	Picks    []string
	Colors   []ColorClass
	Cheapest bool
	Limit    int
}

type Step struct {
	Title string
	Text  string
}

// Guide is a how-to page with ordered steps and a checklist.
type Guide struct {
	Slug      string
	Title     string
	Category  string
	Steps     []Step
	Checklist []string
}

// Example is a customer story.
type Example struct {
	Slug     string
	Title    string
	Category string
	Scenario string
	Solution string
	Steps    []string
	Result   string
}

// Profile summarises one product series. An empty Color matches any finish
// when the starting price is looked up.
type Profile struct {
	Slug        string
	Title       string
	Height      int
	Color       ColorClass
	Description string
	Ideal       string
}

type Benefit struct {
	Title string
	Text  string
}

// Intent classifies a conversion page by buying intent.
type Intent string

const (
	IntentPurchase Intent = "purchase"
	IntentPrice    Intent = "price"
	IntentDeal     Intent = "deal"
	IntentShipping Intent = "shipping"
	IntentTrust    Intent = "trust"
	IntentB2B      Intent = "b2b"
	IntentQuickBuy Intent = "quick_buy"
)

// ShowsPriceTable reports whether pages with this intent carry the price list.
func (i Intent) ShowsPriceTable() bool {
	return i == IntentPurchase || i == IntentPrice || i == IntentDeal
}

type Conversion struct {
	Slug     string
	Title    string
	H1       string
	Intent   Intent
	Intro    string
	Urgency  string
	CTA      string
	Benefits []Benefit
}

// Translation is a Slovak-market landing page. Title is used verbatim.
type Translation struct {
	Slug     string
	Title    string
	H1       string
	Intro    string
	FAQs     []model.FAQ
	Sections []Section
}

type Integration struct {
	Slug     string
	Title    string
	H1       string
	Intro    string
	Sections []Section
}

var curations = []Curation{
	{Slug: "nejlepsi-kovove-regaly-2026", Title: "Nejlepší kovové regály 2026: TOP výběr", Category: "Kovové regály",
		Intro:    "Vybrali jsme TOP kovové regály roku 2026 na základě poměru ceny a výkonu, nosnosti a zpětné vazby zákazníků.",
		Criteria: []string{"Poměr cena/výkon", "Celková nosnost", "Kvalita zpracování", "Hodnocení zákazníků", "Šířka nabídky rozměrů"},
		Limit:    6},
	{Slug: "nejlepsi-regaly-do-garaze", Title: "TOP regály do garáže 2026", Category: "Do garáže",
		Intro:    "Garáž potřebuje odolné regály s vysokou nosností. Vybrali jsme nejlepší modely pro garážové podmínky.",
		Criteria: []string{"Odolnost vlhkosti", "Nosnost", "Rozměry vhodné do garáže", "Cena", "Snadnost montáže"},
		Colors:   []ColorClass{Black, Zinc}, Limit: 5},
	{Slug: "nejlepsi-regaly-do-sklepa", Title: "TOP regály do sklepa 2026: odolné vlhkosti", Category: "Do sklepa",
		Intro:    "Sklep vyžaduje regály odolné vlhkosti. Jednoznačně doporučujeme zinkované varianty.",
		Criteria: []string{"Odolnost korozi", "Zinkovaný povrch", "Nosnost pro zavařeniny a víno", "Cena"},
		Picks:    []string{"regal-150x70x30-zinkovany", "regal-180x90x40-zinkovany", "regal-150x70x30-cerna"}},
	{Slug: "nejlepsi-zinkovane-regaly", Title: "TOP zinkované regály: odolnost bez kompromisů", Category: "Zinkované",
		Intro:    "Zinkované regály jsou nejlepší volbou do vlhkých prostor. Srovnáváme dostupné varianty.",
		Criteria: []string{"Kvalita zinkového povlaku", "Nosnost", "Dostupné rozměry", "Cena"},
		Colors:   []ColorClass{Zinc}},
	{Slug: "nejlepsi-regaly-do-dilny", Title: "TOP regály do dílny 2026", Category: "Do dílny",
		Intro:    "Dílna vyžaduje profesionální přístup. Tyto regály zvládnou i to nejtěžší nářadí.",
		Criteria: []string{"Maximální nosnost", "Profesionální povrch", "Šířka police", "Modularita"},
		Picks:    []string{"regal-180x120x50-profesionalni", "regal-200x90x40-cerna", "regal-150x70x30-cerna", "regal-150x70x30-zinkovany", "regal-180x90x40-cerna"}},
	{Slug: "nejlevnejsi-regaly", Title: "Nejlevnější kovové regály", Category: "Levné regály",
		Intro:    "Hledáte nejlevnější regály na trhu? Díky likvidaci skladu nabízíme nové regály za ceny bazaru.",
		Criteria: []string{"Absolutní cena", "Poměr cena/výkon", "Dostupnost skladem"},
		Cheapest: true, Limit: 5},
	{Slug: "nejprodavanejsi-regaly", Title: "Nejprodávanější regály 2026: co kupují ostatní", Category: "Bestsellery",
		Intro:    "Podívejte se, které regály naši zákazníci kupují nejčastěji a proč.",
		Criteria: []string{"Počet prodaných kusů", "Hodnocení zákazníků", "Opakované nákupy"},
		Picks:    []string{"regal-180x90x40-cerna", "regal-180x90x40-zinkovany", "regal-150x70x30-cerna", "regal-180x90x40-bila", "regal-180x90x40-cervena"}},
	{Slug: "top-regaly-pro-firmy", Title: "TOP regály pro firmy a podnikatele 2026", Category: "Pro firmy",
		Intro:    "Profesionální regály pro firemní sklady, e-shopy a kanceláře. Vysoká nosnost, množstevní slevy.",
		Criteria: []string{"Nosnost 875 až 1050 kg", "Profesionální provedení", "Velké rozměry", "Možnost objednat více kusů"},
		Picks:    []string{"regal-180x120x50-profesionalni", "regal-180x120x50-cerna", "regal-200x90x40-cerna", "regal-150x70x30-cerna", "regal-150x70x30-zinkovany"}},
}

var guides = []Guide{
	{Slug: "sablona-organizace-garaze", Title: "Šablona pro organizaci garáže s regály", Category: "Garáž",
		Steps: []Step{
			{"Změřte prostor", "Změřte výšku, šířku a hloubku dostupného prostoru v garáži. Nechte 5 cm rezervu kolem regálu."},
			{"Kategorizujte věci", "Rozdělte věci do skupin: nářadí, pneumatiky, sportovní vybavení, chemie a sezónní předměty."},
			{"Vyberte regály", "Pro garáž doporučujeme regál 180×90×40 cm. Do vlhké garáže volte zinkovaný povrch."},
			{"Rozmístěte regály", "Těžké předměty na spodní police, často používané věci ve výšce očí, sezónní věci nahoru."},
			{"Označte police", "Použijte štítky pro snadnou orientaci. Každá police by měla mít jasný účel."},
		},
		Checklist: []string{"Prostor změřen", "Věci roztříděny", "Regály objednány", "Regály sestaveny", "Věci organizovány", "Police označeny"}},
	{Slug: "sablona-organizace-sklepa", Title: "Šablona pro organizaci sklepa s regály", Category: "Sklep",
		Steps: []Step{
			{"Vyčistěte sklep", "Odstraňte nepotřebné věci a vyčistěte prostor před instalací regálů."},
			{"Zkontrolujte vlhkost", "Sklep bývá vlhký, použijte výhradně zinkované regály odolné korozi."},
			{"Naplánujte rozmístění", "Zohledněte přístup ke všem regálům a dostatečný prostor pro průchod."},
			{"Organizujte podle typu", "Zavařeniny na jednom regálu, víno na druhém, sezónní věci na třetím."},
			{"Zajistěte stabilitu", "Na nerovném podloží přikotvěte regály ke zdi."},
		},
		Checklist: []string{"Sklep vyčištěn", "Vlhkost zkontrolována", "Zinkované regály objednány", "Regály sestaveny a ukotveny", "Věci organizovány"}},
	{Slug: "sablona-organizace-dilny", Title: "Šablona pro organizaci dílny s regály", Category: "Dílna",
		Steps: []Step{
			{"Určete zóny", "Rozdělte dílnu na pracovní zónu, skladovací zónu a zónu nářadí."},
			{"Vyberte profesionální regály", "Pro dílnu doporučujeme regály s nosností 875 až 1050 kg pro těžké nářadí."},
			{"Organizujte nářadí", "Ruční nářadí ve výšce očí, elektrické nářadí na stabilních policích, drobný materiál v boxech."},
			{"Přidejte příslušenství", "Úložné boxy, organizéry na šrouby a háčky pro zavěšení."},
			{"Udržujte pořádek", "Po každé práci vracejte nářadí na místo. Pravidelně kontrolujte stav regálů."},
		},
		Checklist: []string{"Zóny dílny určeny", "Regály vybrány a objednány", "Nářadí roztříděno", "Boxy a organizéry pořízeny", "Systém označení zaveden"}},
	{Slug: "sablona-vybaveni-skladu", Title: "Šablona pro vybavení skladu regály", Category: "Sklad",
		Steps: []Step{
			{"Analyzujte potřeby", "Spočítejte objem zboží, frekvenci přístupu a maximální hmotnost na polici."},
			{"Navrhněte layout", "Naplánujte řady regálů s dostatečnými uličkami, alespoň 80 cm pro průchod."},
			{"Objednejte regály", "Pro sklady doporučujeme profesionální řadu 180×120×50 cm s nosností 1050 kg."},
			{"Zaveďte systém", "Očíslujte regály a police. Zaveďte systém umístění zboží, například A1 nebo B3."},
			{"Optimalizujte", "Rychloobrátkové zboží v dosahu, těžké na spodní police, lehké nahoru."},
		},
		Checklist: []string{"Potřeby analyzovány", "Layout navržen", "Regály objednány", "Systém číslování zaveden", "Zboží rozmístěno"}},
	{Slug: "pruvodce-vyberem-regalu", Title: "Průvodce výběrem regálu krok za krokem", Category: "Průvodce",
		Steps: []Step{
			{"Určete místo", "Kam regál umístíte? Garáž, sklep, dílna, kancelář nebo domácnost určuje typ povrchu."},
			{"Změřte prostor", "Výška stropu, šířka stěny a hloubka od zdi. Nechte 5 cm rezervu."},
			{"Zvažte zatížení", "Co budete ukládat? Lehké předměty jako knihy, nebo těžké jako nářadí a pneumatiky?"},
			{"Vyberte povrch", "Do sucha lakovaný regál v černé, bílé, červené nebo modré. Do vlhka zinkovaný."},
			{"Vyberte rozměr", "150 cm pro malé prostory, 180 cm jako standard, 200 až 220 cm pro vysoké prostory."},
		},
		Checklist: []string{"Místo určeno", "Prostor změřen", "Zatížení odhadnuto", "Povrch vybrán", "Rozměr zvolen", "Objednávka odeslána"}},
	{Slug: "kalkulacka-ulozneho-prostoru", Title: "Kalkulačka úložného prostoru: kolik regálů potřebujete", Category: "Kalkulačka",
		Steps: []Step{
			{"Změřte dostupný prostor", "Délka stěny krát výška stropu udává maximální plochu pro regály."},
			{"Spočítejte regály na stěnu", "Šířka stěny dělená šířkou regálu je počet regálů vedle sebe."},
			{"Vypočítejte úložnou plochu", "Počet regálů krát počet polic krát plocha police je celková úložná plocha."},
			{"Zkontrolujte nosnost", "Celková hmotnost věcí dělená počtem polic je zatížení na polici. Nesmí přesáhnout 175 kg."},
			{"Objednejte s rezervou", "Doporučujeme objednat o jeden regál více pro budoucí potřeby."},
		},
		Checklist: []string{"Prostor změřen", "Počet regálů spočítán", "Nosnost ověřena", "Rozpočet schválen", "Objednáno"}},
}

var examples = []Example{
	{Slug: "priklad-organizace-garaze-regaly", Title: "Příklad: Jak zorganizovat garáž s regály", Category: "Garáž",
		Scenario: "Pan Novák měl garáž plnou nářadí, pneumatik a sportovního vybavení bez jakéhokoli systému.",
		Solution: "Pořídil tři regály 180×90×40 cm v černé barvě a jeden zinkovaný regál na pneumatiky.",
		Steps:    []string{"Vyčistil garáž a roztřídil věci do čtyř kategorií", "Umístil dva regály podél zadní stěny pro nářadí", "Jeden regál u boční stěny na sportovní vybavení", "Zinkovaný regál na pneumatiky do rohu kvůli vlhkosti"},
		Result:   "Garáž je přehledná a vše má své místo. Časová úspora je 15 minut denně při hledání věcí."},
	{Slug: "priklad-organizace-sklepa-regaly", Title: "Příklad: Organizace sklepa s regály", Category: "Sklep",
		Scenario: "Rodina Dvořákových měla sklep plný zavařenin, vína a sezónních věcí v krabicích na zemi.",
		Solution: "Objednali čtyři zinkované regály 180×90×40 cm, ideální do vlhkého sklepa.",
		Steps:    []string{"Vynesli vše ze sklepa a vyřadili nepotřebné", "Nainstalovali čtyři regály podél stěn", "Zavařeniny a víno na oddělené regály", "Sezónní věci do popsaných boxů na horní police"},
		Result:   "Sklep je přehledný a zavařeniny jsou na dosah ruky. Kapacita skladu se ztrojnásobila."},
	{Slug: "priklad-sklad-eshopu-regaly", Title: "Příklad: Jak vybavit sklad e-shopu regály", Category: "E-shop",
		Scenario: "E-shop s 500 produkty řešil pomalé vychystávání objednávek v malém skladu.",
		Solution: "Zakoupili osm profesionálních regálů 180×120×50 cm a zavedli systém číslování.",
		Steps:    []string{"Zmapovali sortiment a frekvenci objednávek", "Navrhli layout skladu s uličkami 90 cm", "Sestavili osm regálů a očíslovali pozice A1 až H5", "Rychloobrátkové zboží dali do výšky pasu"},
		Result:   "Čas vychystání objednávky klesl z osmi na dvě minuty. Investice se vrátila za tři týdny."},
	{Slug: "priklad-dilna-organizace", Title: "Příklad: Profesionální organizace dílny", Category: "Dílna",
		Scenario: "Řemeslník s vlastní dílnou trávil 30 % času hledáním nářadí a materiálu.",
		Solution: "Pořídil dva profesionální regály s nosností 1050 kg a dva standardní regály.",
		Steps:    []string{"Rozdělil dílnu na pracovní a skladovací zónu", "Profesionální regály vyhradil těžkému materiálu a strojům", "Standardní regály slouží ručnímu nářadí a drobnému materiálu", "Zavedl systém, ve kterém má každý nástroj své místo"},
		Result:   "Produktivita vzrostla o 25 %. Nářadí je vždy po ruce a materiál přehledně uložen."},
	{Slug: "priklad-spiz-organizace", Title: "Příklad: Jak zorganizovat spíž pomocí regálů", Category: "Spíž",
		Scenario: "Spíž 2×3 metry plná potravin bez systému, s prošlými potravinami a duplicitními nákupy.",
		Solution: "Dva bílé regály 150×70×30 cm, kompaktní rozměr ideální do malé spíže.",
		Steps:    []string{"Vytřídila potraviny a vyhodila prošlé", "Regály umístila naproti sobě podél stěn", "Konzervy a trvanlivé potraviny na spodní police", "Denně používané potraviny ve výšce očí"},
		Result:   "Žádné prošlé potraviny a úspora na nákupech 800 Kč měsíčně díky přehlednosti."},
	{Slug: "priklad-archiv-dokumenty", Title: "Příklad: Archivace dokumentů na regálech", Category: "Archiv",
		Scenario: "Účetní firma potřebovala archivovat deset let dokumentů v malé kanceláři.",
		Solution: "Pět černých regálů 220×90×45 cm, maximální výška pro maximální kapacitu.",
		Steps:    []string{"Roztřídili dokumenty podle let a kategorií", "Regály umístili do archivní místnosti v řadách", "Šanony s popisky podle roku a typu", "Archivační krabice na horní police pro starší dokumenty"},
		Result:   "Kompletní archiv deseti let na 12 m². Přístup k jakémukoli dokumentu do dvou minut."},
	{Slug: "priklad-satna-ulozny-system", Title: "Příklad: Šatní úložný systém z regálů", Category: "Šatna",
		Scenario: "Rodina se dvěma dětmi neměla dost místa na oblečení. Šatní skříně byly plné.",
		Solution: "Tři bílé regály 180×90×40 cm jako otevřený šatní systém v ložnici.",
		Steps:    []string{"Změřili prostor podél stěny v ložnici", "Bílé regály ladí s interiérem", "Oblečení v boxech na policích podle sezóny a osoby", "Boty v boxech na spodních policích"},
		Result:   "Dvakrát více místa na oblečení za třetinu ceny šatní skříně."},
	{Slug: "priklad-domaci-knihovna", Title: "Příklad: Domácí knihovna z kovových regálů", Category: "Domácnost",
		Scenario: "Knihomol s více než 800 knihami hledal cenově dostupné řešení pro domácí knihovnu.",
		Solution: "Čtyři černé regály 200×90×40 cm s industriálním vzhledem a vysokou nosností pro knihy.",
		Steps:    []string{"Naplánoval stěnu knih v obývacím pokoji", "Černé regály vytvořily industriální knihovnu", "Knihy seřadil podle žánru a autora", "Dekorace a doplňky umístil na horní police"},
		Result:   "Všech 800 knih je přehledně na jednom místě, v designu jako z interiérového časopisu."},
}

var profiles = []Profile{
	{Slug: "profil-regal-150-serie", Title: "Řada 150 cm: kompletní profil", Height: 150,
		Description: "Nejkompaktnější řada vhodná do malých prostor. Čtyři police, výška 150 cm.",
		Ideal:       "spíž, komora, malá garáž, dětský pokoj, studentský pokoj"},
	{Slug: "profil-regal-180-serie", Title: "Řada 180 cm: nejprodávanější", Height: 180,
		Description: "Nejprodávanější řada. Univerzální výška a pět polic.",
		Ideal:       "garáž, sklep, dílna, kancelář, sklad, domácnost"},
	{Slug: "profil-regal-200-serie", Title: "Řada 200 cm: extra kapacita", Height: 200,
		Description: "Vyšší varianta pro prostory s vysokým stropem. Maximum úložného prostoru.",
		Ideal:       "vysoké garáže, sklady, archivní prostory"},
	{Slug: "profil-regal-220-serie", Title: "Řada 220 cm: maximální výška", Height: 220,
		Description: "Nejvyšší varianta pro profesionální sklady a archivy.",
		Ideal:       "profesionální sklady, archivy, sklady e-shopů"},
	{Slug: "profil-profesionalni-rada", Title: "Profesionální řada: nosnost 1050 kg", Height: 180, Color: Professional,
		Description: "Nejvyšší nosnost v nabídce. 210 kg na polici, celkem 1050 kg.",
		Ideal:       "průmyslové sklady, dílny, e-shopy s těžkým zbožím"},
	{Slug: "profil-zinkovane-regaly", Title: "Zinkovaná řada: odolnost vlhkosti", Height: 180, Color: Zinc,
		Description: "Zinkovaný povrch chrání před korozí. Ideální do vlhkých prostor.",
		Ideal:       "sklep, vlhká garáž, venkovní přístřešek, skleník"},
}

var conversions = []Conversion{
	{Slug: "koupit-kovovy-regal-online", Intent: IntentPurchase,
		Title:   "Koupit kovový regál online: nejnižší ceny na trhu",
		H1:      "Koupit kovový regál online se slevou až 75 %",
		Intro:   "Hledáte, kde koupit kovový regál za nejlepší cenu? U nás nakoupíte nové kovové regály se slevou až 75 % díky likvidaci skladu. Expedice ihned, doprava od 99 Kč.",
		Urgency: "Likvidace skladu platí do vyprodání zásob. Aktuálně máme skladem přes 500 kusů.",
		CTA:     "Objednat nyní se slevou",
		Benefits: []Benefit{
			{"Slevy až 75 %", "Díky likvidaci skladu nabízíme nové regály za zlomek původní ceny."},
			{"Stoprocentně nové zboží", "Nejde o bazarové regály. Každý kus je nový, zabalený v originálním kartonu a se zárukou 7 let."},
			{"Expedice ihned", "Objednáte dnes a expedujeme ještě dnes. Doručení přepravní službou za 2 až 3 pracovní dny."},
			{"Bezšroubová montáž", "Žádné nářadí, žádný řemeslník. Regál sestavíte sami za 10 minut."},
		}},
	{Slug: "levne-kovove-regaly-vyprodej", Intent: IntentPrice,
		Title:   "Levné kovové regály: výprodej skladu",
		H1:      "Levné kovové regály z výprodeje",
		Intro:   "Nejlevnější kovové regály na českém trhu. Nové zboží z likvidace skladu za ceny, které nenajdete ani na bazaru. Kompletní regál se zárukou.",
		Urgency: "Výprodej probíhá a zásoby jsou omezené. Nejprodávanější modely se vyprodávají nejrychleji.",
		CTA:     "Zobrazit nejlevnější regály",
		Benefits: []Benefit{
			{"Nejnižší ceny", "Kompletní kovový regál se čtyřmi policemi a nosností 700 kg. Levnější než většina bazarových regálů."},
			{"Porovnáno s konkurencí", "Běžná cena v hobbymarketech je 1 500 až 3 000 Kč. U nás stejný regál za zlomek."},
			{"Žádné skryté náklady", "Cena zahrnuje kompletní regál včetně všech polic. Doprava od 99 Kč."},
			{"Záruka 7 let", "I za nejnižší cenu dostáváte plnou záruku 7 let na celý regál."},
		}},
	{Slug: "kovove-regaly-akce-sleva", Intent: IntentDeal,
		Title:   "Kovové regály v akci: aktuální slevy a nabídky",
		H1:      "Kovové regály v akci se slevou až 75 %",
		Intro:   "Přehled aktuálních akcí a slev na kovové regály. Likvidace skladu znamená trvalé slevy až 75 % na celý sortiment. Nové zboží, plná záruka, expedice ihned.",
		Urgency: "Akce platí do vyprodání zásob. Při objednávce tří a více regálů sleva na dopravu.",
		CTA:     "Využít akční nabídku",
		Benefits: []Benefit{
			{"Trvalé slevy 50 až 75 %", "Nejde o krátkodobou akci. Díky likvidaci skladu jsou ceny trvale snížené."},
			{"Množstevní slevy", "Při objednávce tří a více regálů vám připravíme individuální cenovou nabídku."},
			{"Zvýhodněná doprava", "Standardní doprava od 99 Kč. Při větší objednávce sleva na dopravu."},
			{"Vše skladem", "Všechny velikosti a barvy jsou ihned k expedici. Žádné čekání na naskladnění."},
		}},
	{Slug: "kovove-regaly-s-dopravou-zdarma", Intent: IntentShipping,
		Title:   "Kovové regály s výhodnou dopravou po celé ČR",
		H1:      "Kovové regály s dopravou od 99 Kč po celé ČR",
		Intro:   "Objednejte kovové regály s rychlou a cenově dostupnou dopravou. Doručujeme přepravní službou po celé České republice. Expedice ihned, doručení do 2 až 3 dnů.",
		Urgency: "Objednáte dnes a expedujeme ještě dnes. Doručení kdekoliv v ČR do 2 až 3 pracovních dnů.",
		CTA:     "Objednat s rychlou dopravou",
		Benefits: []Benefit{
			{"Doprava od 99 Kč", "Cenově dostupná doprava přepravní službou po celé ČR bez ohledu na místo doručení."},
			{"Expedice v den objednání", "Objednávky přijaté do 14:00 expedujeme ještě týž den."},
			{"Doručení do 2 až 3 dnů", "Standardní doba doručení přepravní službou je 2 až 3 pracovní dny."},
			{"Bezpečné balení", "Regály jsou zabaleny v pevném kartonu, který chrání před poškozením při přepravě."},
		}},
	{Slug: "kovove-regaly-se-zarukou", Intent: IntentTrust,
		Title:   "Kovové regály se zárukou 7 let: kvalita ověřena tisíci zákazníky",
		H1:      "Kovové regály se zárukou 7 let",
		Intro:   "Každý náš regál má plnou záruku 7 let. Kvalita ověřena tisíci spokojených zákazníků s hodnocením 4.9/5. Certifikovaná nosnost, bezpečná konstrukce.",
		Urgency: "Přes 15 000 prodaných regálů. Hodnocení 4.9/5 na základě 2 847 recenzí.",
		CTA:     "Vybrat regál se zárukou",
		Benefits: []Benefit{
			{"Záruka 7 let", "Plná záruka na celý regál včetně všech dílů. Reklamace vyřídíme rychle a bez problémů."},
			{"Certifikovaná nosnost", "Nosnost každého regálu je testována nezávislou laboratoří, 175 až 210 kg na polici."},
			{"Hodnocení 4.9/5", "Na základě 2 847 ověřených recenzí od skutečných zákazníků."},
			{"Profesionální kvalita", "Ocelová konstrukce tloušťky 1,5 mm. Žádný plast, žádné kompromisy."},
		}},
	{Slug: "regaly-pro-firmy-velkoobchod", Intent: IntentB2B,
		Title:   "Regály pro firmy: velkoobchodní ceny, množstevní slevy",
		H1:      "Regály pro firmy za velkoobchodní ceny",
		Intro:   "Vybavte firemní sklad, dílnu nebo kancelář profesionálními regály za velkoobchodní ceny. Množstevní slevy, fakturace na IČO, individuální nabídky.",
		Urgency: "Pro objednávky nad 10 kusů připravíme individuální cenovou nabídku. Kontaktujte nás na info@bazarovyregal.cz.",
		CTA:     "Získat firemní nabídku",
		Benefits: []Benefit{
			{"Velkoobchodní ceny", "Od 10 kusů výrazně zvýhodněné ceny. Individuální nabídka pro větší objednávky."},
			{"Fakturace na IČO", "Plnohodnotný daňový doklad. Možnost platby převodem s odloženou splatností."},
			{"Profesionální řada", "Regály s nosností 875 až 1050 kg pro náročné firemní prostředí."},
			{"Konzultace zdarma", "Pomůžeme vám s výběrem a rozmístěním regálů pro váš sklad."},
		}},
	{Slug: "objednat-regal-bez-registrace", Intent: IntentQuickBuy,
		Title:   "Objednat regál rychle: bez registrace, expedice ihned",
		H1:      "Objednat regál bez registrace, doručení do 3 dnů",
		Intro:   "Jednoduchá objednávka bez nutnosti registrace. Vyberte regál, vyplňte adresu a zaplaťte. Expedice ihned, doručení do 2 až 3 pracovních dnů. Vrácení do 14 dnů.",
		Urgency: "Celý proces objednávky zabere méně než 2 minuty. Platba kartou, převodem nebo na dobírku.",
		CTA:     "Objednat nyní",
		Benefits: []Benefit{
			{"Bez registrace", "Žádné zakládání účtu. Objednáte během dvou minut."},
			{"Tři způsoby platby", "Kartou online, bankovním převodem nebo na dobírku při doručení."},
			{"Vrácení do 14 dnů", "Pokud vám regál nevyhovuje, můžete ho vrátit do 14 dnů bez udání důvodu."},
			{"Sledování zásilky", "Po expedici obdržíte číslo zásilky pro sledování v reálném čase."},
		}},
}

var translations = []Translation{
	{Slug: "kovove-regale-slovensko",
		Title: "Kovové regále: dodávka na Slovensko | Bazarovyregal.cz",
		H1:    "Kovové regále s dodávkou na Slovensko",
		Intro: "Hľadáte kvalitné kovové regále za najnižšie ceny? Dodávame aj na Slovensko. Zľavy až 75 %, záruka 7 rokov, nové regále z likvidácie skladu.",
		FAQs: []model.FAQ{
			{Question: "Dodávate na Slovensko?", Answer: "Áno, dodávame prepravnou službou na celé Slovensko. Dodacia lehota je 3 až 5 pracovných dní."},
			{Question: "Aké sú náklady na dopravu na Slovensko?", Answer: "Doprava na Slovensko stojí od 199 Kč, približne 8 EUR. Presná cena závisí od počtu objednaných regálov."},
			{Question: "Môžem platiť v eurách?", Answer: "Ceny sú uvedené v CZK a platba prebieha v CZK. Pri platbe kartou sa suma automaticky prepočíta."},
			{Question: "Platí záruka aj na Slovensku?", Answer: "Áno, plná záruka 7 rokov platí bez obmedzenia aj na Slovensku."},
		},
		Sections: []Section{
			{Heading: "Dodávka na Slovensko", Items: []string{
				"Preprava: doručenie prepravnou službou na celé Slovensko za 3 až 5 pracovných dní",
				"Ceny: rovnaké zľavnené ceny ako pre Česko",
				"Záruka: plná záruka 7 rokov platí aj na Slovensku",
			}},
			{Heading: "Najpredávanejšie regále", Text: "Slovenskí zákazníci najčastejšie objednávajú regále 180×90×40 cm v čiernej alebo zinkovanej verzii. Tieto modely sú univerzálne a hodia sa do garáže, pivnice, dielne aj kancelárie."},
		}},
	{Slug: "regale-do-garaze-slovensko",
		Title: "Regále do garáže: dodávka na Slovensko | Bazarovyregal.cz",
		H1:    "Regále do garáže s dodávkou na Slovensko",
		Intro: "Kovové regále do garáže za najnižšie ceny. Nosnosť až 875 kg, odolné voči vlhkosti. Dodávame na celé Slovensko za 3 až 5 dní.",
		FAQs: []model.FAQ{
			{Question: "Aký regál odporúčate do garáže?", Answer: "Pre garáž odporúčame regál 180×90×40 cm v zinkovanom prevedení, ktorý je odolný voči vlhkosti a korózii."},
			{Question: "Unesie regál pneumatiky?", Answer: "Áno, naše regále majú nosnosť 175 kg na policu. Štyri pneumatiky vážia približne 40 kg, čo nie je žiadny problém."},
			{Question: "Potrebujem náradie na montáž?", Answer: "Nie, regále majú bezskrutkovú montáž. Poskladáte ich za 10 minút bez náradia."},
		},
		Sections: []Section{
			{Heading: "Prečo kovový regál do garáže?", Items: []string{
				"Vysoká nosnosť: až 175 kg na policu, celkom 875 kg na regál",
				"Odolnosť voči vlhkosti: zinkované prevedenie chráni pred koróziou",
				"Jednoduchá montáž: bezskrutková montáž za 10 minút bez náradia",
				"Najnižšie ceny: likvidácia skladu a zľavy až 75 %",
			}},
		}},
	{Slug: "regale-do-pivnice-slovensko",
		Title: "Regále do pivnice: zinkované, odolné vlhkosti | Bazarovyregal.cz",
		H1:    "Regále do pivnice: zinkované regále s dodávkou na Slovensko",
		Intro: "Zinkované kovové regále ideálne do vlhkej pivnice. Odolné voči korózii, nosnosť až 875 kg. Dodávame na celé Slovensko.",
		FAQs: []model.FAQ{
			{Question: "Prečo zinkovaný regál do pivnice?", Answer: "Pivnica je vlhký priestor. Zinkovaný povrch chráni oceľ pred hrdzou a koróziou na viac ako 20 rokov."},
			{Question: "Koľko regálov potrebujem do pivnice?", Answer: "Závisí od veľkosti pivnice. Zmerajte dĺžku steny a vydeľte ju šírkou regálu, napríklad 70 alebo 90 cm."},
			{Question: "Dá sa regál ukotviť k stene?", Answer: "Áno, regále je možné ukotviť k stene pre zvýšenú stabilitu. Odporúčame to najmä v pivniciach."},
		},
		Sections: []Section{
			{Heading: "Zinkované regále: odolnosť bez kompromisov", Text: "Zinkovanie vytvára ochrannú vrstvu, ktorá bráni kontaktu ocele s vlhkosťou. Životnosť zinkovaného povrchu je viac ako 20 rokov aj v trvale vlhkom prostredí pivnice."},
			{Heading: "Ideálne využitie v pivnici", Items: []string{
				"Zaváraniny a kompóty na nastaviteľných policiach",
				"Víno a nápoje, nosnosť 175 kg na policu zvládne aj ťažké fľaše",
				"Sezónne veci v boxoch: lyže, stany, vianočné ozdoby",
				"Náradie a materiál na odolných policiach",
			}},
		}},
	{Slug: "kovove-regaly-bratislava",
		Title: "Kovové regále Bratislava: dodávka do 3 až 5 dní | Bazarovyregal.cz",
		H1:    "Kovové regále s dodávkou do Bratislavy",
		Intro: "Objednajte kovové regále z Česka s rýchlou dodávkou do Bratislavy a okolia. Zľavy až 75 %, nový tovar z likvidácie skladu, záruka 7 rokov.",
		FAQs: []model.FAQ{
			{Question: "Ako dlho trvá dodávka do Bratislavy?", Answer: "Dodacia lehota do Bratislavy je 3 až 5 pracovných dní od expedície. Expedujeme v deň objednávky."},
			{Question: "Koľko stojí doprava do Bratislavy?", Answer: "Doprava do Bratislavy a okolia stojí od 199 Kč, približne 8 EUR."},
			{Question: "Môžem si regál vyzdvihnúť osobne?", Answer: "Momentálne ponúkame iba doručenie prepravnou službou. Osobný odber nie je možný."},
			{Question: "Dodávate aj do iných miest na Slovensku?", Answer: "Áno, dodávame na celé Slovensko, do Bratislavy, Košíc, Žiliny, Banskej Bystrice a ďalších miest."},
		},
		Sections: []Section{
			{Heading: "Dodacie podmienky", Items: []string{"Dodacia lehota: 3 až 5 pracovných dní", "Doprava: od 199 Kč, približne 8 EUR", "Prepravná služba: PPL alebo DPD", "Sledovanie zásielky: áno"}},
			{Heading: "Platobné podmienky", Items: []string{"Platba kartou online", "Bankový prevod", "Dobierka pri doručení", "Ceny v CZK s automatickým prepočtom"}},
		}},
	{Slug: "kovove-regaly-kosice",
		Title: "Kovové regále Košice: dodávka do 4 až 5 dní | Bazarovyregal.cz",
		H1:    "Kovové regále s dodávkou do Košíc",
		Intro: "Kovové regále za najnižšie ceny s dodávkou do Košíc a východného Slovenska. Zľavy až 75 %, záruka 7 rokov, expedícia ihneď.",
		FAQs: []model.FAQ{
			{Question: "Ako dlho trvá dodávka do Košíc?", Answer: "Dodacia lehota do Košíc je 4 až 5 pracovných dní. Expedujeme v deň objednávky."},
			{Question: "Dodávate aj do okolia Košíc?", Answer: "Áno, dodávame do celého košického a prešovského kraja."},
			{Question: "Aké regále odporúčate?", Answer: "Najobľúbenejší model je regál 180×90×40 cm, univerzálna veľkosť do garáže aj pivnice."},
		},
		Sections: []Section{
			{Heading: "Dodávka do Košíc a východného Slovenska", Text: "Dodávame prepravnou službou na adresu v Košiciach a okolí. Dodacia lehota je 4 až 5 pracovných dní, doprava od 199 Kč. Po expedícii obdržíte číslo zásielky pre sledovanie."},
		}},
}

var integrations = []Integration{
	{Slug: "regaly-a-ulozne-boxy-system",
		Title: "Regály a úložné boxy: kompletní organizační systém",
		H1:    "Regály a úložné boxy: systém pro dokonalou organizaci",
		Intro: "Kombinace kovových regálů a úložných boxů vytváří profesionální organizační systém. Podívejte se, jak je správně zkombinovat.",
		Sections: []Section{
			{Heading: "Proč kombinovat regály s boxy?", Text: "Samotný regál nabídne otevřené police. Přidáním úložných boxů získáte:", Items: []string{
				"Ochranu před prachem a vlhkostí", "Přehlednou organizaci drobných předmětů", "Popisky na boxech pro rychlé hledání", "Estetický a profesionální vzhled"}},
			{Heading: "Jaké boxy se hodí?", Items: []string{
				"Plastové boxy s víkem do sklepa, garáže a skladu, stohovatelné a odolné vlhkosti",
				"Průhledné boxy do domácnosti a šatny, obsah vidíte bez otevírání",
				"Kartonové archivační krabice do kanceláří a archivů",
				"Kovové přepravky do dílen na těžké díly"}},
			{Heading: "Rozměry boxů pro naše regály", Items: []string{
				"Regál šířky 70 cm: boxy 30×40 cm, dva vedle sebe",
				"Regál šířky 90 cm: boxy 30×40 cm, dva až tři vedle sebe",
				"Regál šířky 120 cm: boxy 40×60 cm, dva až tři vedle sebe"}},
		}},
	{Slug: "regaly-kotveni-ke-zdi",
		Title: "Kotvení regálů ke zdi: návod a doporučení",
		H1:    "Kotvení regálů ke zdi: bezpečná instalace",
		Intro: "Jak správně přikotvit kovový regál ke zdi pro maximální stabilitu a bezpečnost. Krok za krokem s doporučením materiálu.",
		Sections: []Section{
			{Heading: "Kdy je kotvení nutné?", Items: []string{
				"Regál vysoký 200 cm a více", "Těžký náklad na horních policích", "Domácnost s dětmi nebo zvířaty", "Nestabilní nebo nerovná podlaha"}},
			{Heading: "Postup kotvení", Items: []string{
				"Určete bod kotvení v horní třetině stojny, alespoň 120 cm od podlahy",
				"Vyvrtejte do zdi otvor o průměru 8 mm a hloubce 50 mm",
				"Vložte hmoždinku 8×50 mm a přišroubujte L-úhelník ke stojně a zdi",
				"Zkontrolujte stabilitu mírným zatřesením regálem"}},
			{Heading: "Potřebný materiál", Items: []string{
				"Příklepová vrtačka s vrtákem 8 mm", "Hmoždinky 8×50 mm, dva kusy na regál", "Vruty 5×50 mm", "L-úhelníky, dva kusy na regál", "Křížový šroubovák"}},
		}},
	{Slug: "regaly-a-stitky-organizace",
		Title: "Organizační systém: regály, štítky a kategorizace",
		H1:    "Regály a štítky: profesionální organizační systém",
		Intro: "Jak vytvořit profesionální organizační systém kombinací kovových regálů a systému štítků. Ideální pro sklady, e-shopy a archivy.",
		Sections: []Section{
			{Heading: "Proč systém štítků?", Text: "Regál bez systému je jen kovová polička. Se správným označením se z něj stane profesionální organizační nástroj.", Items: []string{
				"Rychlejší hledání, z pěti minut na deset sekund", "Přehled o zásobách", "Sdílený systém, ve kterém se vyzná každý"}},
			{Heading: "Systém číslování pozic", Text: "Formát pozice je regál a police, například A3 znamená regál A a třetí polici zdola.", Items: []string{
				"A1 je spodní police", "A3 je ve výšce očí", "A5 je horní police", "B1 až B5 jsou police dalšího regálu"}},
			{Heading: "Tipy pro e-shopy", Items: []string{
				"Přiřaďte každému produktu pozici na regálu", "Rychloobrátkové produkty na úroveň pasu", "Těžké produkty na spodní polici", "QR kódy na policích pro rychlé skenování"}},
		}},
	{Slug: "regaly-modularni-system-rozsireni",
		Title: "Modulární systém: jak rozšířit regálový systém",
		H1:    "Modulární regálový systém: rozšíření a kombinace",
		Intro: "Naše regály jsou modulární. Můžete je stavět vedle sebe, kombinovat různé výšky a vytvořit systém přesně na míru vašemu prostoru.",
		Sections: []Section{
			{Heading: "Co znamená modulární systém?", Text: "Každý náš regál je samostatný modul, který můžete libovolně kombinovat s dalšími. Stačí pořídit další regál a postavit ho vedle stávajícího.", Items: []string{
				"Regály stavte těsně vedle sebe podél stěny", "Kombinujte výšky 150, 180 a 200 cm podle stropu", "Regál 90 cm do hlavní řady, 40 cm do úzkého prostoru u dveří"}},
			{Heading: "Příklady sestav", Items: []string{
				"Garáž se čtyřmetrovou stěnou: čtyři regály 180×90×40 cm, 20 polic",
				"Sklad e-shopu na osmi metrech: šest profesionálních regálů 180×120×50 cm, 30 polic",
				"Sklep 2,5 m: tři zinkované regály 180×70×30 cm odolné vlhkosti"}},
			{Heading: "Jak plánovat rozšíření", Items: []string{
				"Délka stěny dělená šířkou regálu je počet regálů", "Nechte uličku alespoň 80 cm mezi řadami", "Objednejte o jeden regál více pro budoucí potřeby", "Těžké věci na profesionální řadu, lehké na standardní"}},
		}},
	{Slug: "regaly-do-pronajateho-prostoru",
		Title: "Regály do pronajatého prostoru: bez vrtání, snadná demontáž",
		H1:    "Regály do pronajatého prostoru bez zásahů do zdí",
		Intro: "Bydlíte v nájmu a nechcete vrtat do zdí? Naše bezšroubové regály nepotřebují žádné kotvení a snadno je demontujete při stěhování.",
		Sections: []Section{
			{Heading: "Proč jsou ideální do nájmu?", Items: []string{
				"Žádné vrtání, regál stojí volně na podlaze", "Snadná demontáž za pět minut při stěhování", "Po demontáži nezůstanou žádné stopy", "Levnější než nábytek na míru a vezmete ho s sebou"}},
			{Heading: "Tipy pro stabilitu bez kotvení", Items: []string{
				"Těžké předměty dolů snižují těžiště", "Nižší regál 150 cm je stabilnější než 200 cm", "Protiskluzové podložky pod patky", "Umístění do rohu místnosti dává oporu dvou stěn"}},
			{Heading: "Doporučené varianty", Text: "Pro pronajatý prostor doporučujeme regál 150×70×30 cm nebo 180×90×40 cm. Kompaktní rozměry, snadná manipulace a stabilita i bez kotvení ke zdi."},
		}},
}

// integrationFAQs is shared by every integration page.
var integrationFAQs = []model.FAQ{
	{Question: "Potřebuji nějaké speciální příslušenství?", Answer: "Ne, naše regály jsou kompletní a funkční rovnou z krabice. Příslušenství jako boxy nebo štítky si pořídíte zvlášť podle potřeby."},
	{Question: "Mohu regály kombinovat s jiným nábytkem?", Answer: "Samozřejmě. Kovové regály se hodí do jakéhokoli prostoru a lze je kombinovat s existujícím vybavením."},
	{Question: "Jaká je životnost regálu?", Answer: "Při správném použití 15 až 20 let i více. Zinkování prodlužuje životnost ve vlhkém prostředí."},
}
