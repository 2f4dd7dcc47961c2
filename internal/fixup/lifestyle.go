package fixup

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zeebo/blake3"
)

const lifestyleDir = "/lifestyle_photos/"

// lifestyleScene is one interior photo and its alt text.
type lifestyleScene struct {
	File string
	Alt  string
}

var (
	garageZinc    = lifestyleScene{"garage_zinkovany.png", "Zinkovaný regál v garáži s organizovaným nářadím"}
	basementZinc  = lifestyleScene{"basement_zinkovany.png", "Zinkovaný regál ve sklepě pro sezónní úložný prostor"}
	officeBlack   = lifestyleScene{"office_cerny.png", "Černý regál v moderní domácí kanceláři"}
	livingBlack   = lifestyleScene{"living_room_cerny.png", "Černý regál jako knihovna v útulném obývacím pokoji"}
	kitchenWhite  = lifestyleScene{"kitchen_bily.png", "Bílý regál v kuchyni pro organizaci potravin"}
	garageBlue    = lifestyleScene{"garage_modro_oranzovy.png", "Modro-oranžový průmyslový regál v garáži"}
	workshopBlue  = lifestyleScene{"workshop_modro_oranzovy.png", "Modro-oranžový regál v profesionální dílně"}
	warehouseBlue = lifestyleScene{"warehouse_modro_oranzovy.png", "Modro-oranžové regály ve skladu"}
)

// lifestyleScenes maps colour keywords found in product file names to
// photos. The first keyword contained in the name wins.
var lifestyleScenes = []struct {
	keyword string
	scenes  []lifestyleScene
}{
	{"zinkovan", []lifestyleScene{garageZinc, basementZinc}},
	{"pozinkovan", []lifestyleScene{garageZinc, basementZinc}},
	{"cern", []lifestyleScene{officeBlack, livingBlack}},
	{"bil", []lifestyleScene{kitchenWhite}},
	{"modro-oranzov", []lifestyleScene{warehouseBlue, workshopBlue}},
	{"orangeblue", []lifestyleScene{warehouseBlue, workshopBlue}},
	{"profesionalni", []lifestyleScene{warehouseBlue, workshopBlue}},
	{"modr", []lifestyleScene{garageBlue, workshopBlue}},
	{"cerven", []lifestyleScene{workshopBlue, warehouseBlue}},
}

// nonProductWords mark regal-* pages that are guides or dimension listings.
var nonProductWords = []string{"sirka", "hloubka", "vyska", "pruvodce", "jak-vybrat", "top-tipy"}

var mainImageBlock = regexp.MustCompile(`(?s)<div[^>]*>\s*<img[^>]*\bid="mainImage"[^>]*>\s*</div>`)

const changeImageScript = `<script>
// Image gallery
function changeImage(src, btn) {
  document.getElementById('mainImage').src = src;
  document.querySelectorAll('.thumbnail-btn').forEach(b => {
    b.classList.remove('border-primary-500');
    b.classList.add('border-gray-200');
  });
  btn.classList.remove('border-gray-200');
  btn.classList.add('border-primary-500');
}
</script>
`

// lifestyleFor picks the photo for a product file name. The choice is
// stable for a given name. ok is false when no colour keyword matches.
func lifestyleFor(name string) (lifestyleScene, bool) {
	lower := strings.ToLower(name)
	for _, m := range lifestyleScenes {
		if !strings.Contains(lower, m.keyword) {
			continue
		}
		sum := blake3.Sum256([]byte(name))
		i := binary.BigEndian.Uint32(sum[:4]) % uint32(len(m.scenes))
		return m.scenes[i], true
	}
	return lifestyleScene{}, false
}

// fixLifestyle adds a thumbnail gallery with an interior photo below the
// main image of product pages. Pages whose colour has no photo, pages that
// already have a gallery and pages without a main image are left alone.
func (f *Fixer) fixLifestyle(name string, content []byte) ([]byte, error) {
	if !strings.HasPrefix(name, productPrefix) {
		return content, nil
	}
	for _, w := range nonProductWords {
		if strings.Contains(name, w) {
			return content, nil
		}
	}
	scene, ok := lifestyleFor(name)
	if !ok {
		f.logger().Debug("no lifestyle photo for colour, skipping", "file", name)
		return content, nil
	}
	if bytes.Contains(content, []byte("thumbnail-btn")) {
		return content, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	productImage, ok := doc.Find("img#mainImage").Attr("src")
	if !ok || productImage == "" {
		f.logger().Debug("product page has no main image, skipping", "file", name)
		return content, nil
	}
	loc := mainImageBlock.FindIndex(content)
	if loc == nil {
		return content, nil
	}

	photo := lifestyleDir + scene.File
	gallery := fmt.Sprintf(`
      <!-- Thumbnail Gallery -->
      <div class="flex gap-2 mt-4">
        <button type="button" onclick="changeImage('%[1]s', this)" class="thumbnail-btn w-20 h-20 border-2 border-primary-500 rounded-lg overflow-hidden p-1 bg-white">
          <img src="%[1]s" alt="Produktová fotka" class="thumbnail w-full h-full object-contain">
        </button>
        <button type="button" onclick="changeImage('%[2]s', this)" class="thumbnail-btn w-20 h-20 border-2 border-gray-200 hover:border-primary-300 rounded-lg overflow-hidden p-1 bg-white">
          <img src="%[2]s" alt="%[3]s" class="thumbnail w-full h-full object-cover" loading="lazy">
        </button>
      </div>
`, html.EscapeString(productImage), photo, html.EscapeString(scene.Alt))

	var out bytes.Buffer
	out.Write(content[:loc[1]])
	out.WriteString(gallery)
	out.Write(content[loc[1]:])
	result := out.Bytes()

	if !bytes.Contains(result, []byte("function changeImage")) {
		if i := bytes.LastIndex(result, []byte("</body>")); i >= 0 {
			result = append(result[:i:i], append([]byte(changeImageScript), result[i:]...)...)
		} else {
			result = append(result, changeImageScript...)
		}
	}
	return result, nil
}
