package fixup

import "regexp"

// unifiedNav replaces the old header menu that linked to O nás, FAQ and Kontakt.
const unifiedNav = `    <nav class="hidden md:flex gap-4 text-sm font-medium text-gray-600">
      <a href="index.html" class="hover:text-primary-500">🏠 Úvod</a>
      <a href="katalog.html" class="hover:text-primary-500">📦 Všechny regály</a>
      <a href="regaly-do-garaze.html" class="hover:text-primary-500">🚗 Do garáže</a>
      <a href="regaly-do-sklepa.html" class="hover:text-primary-500">🏚️ Do sklepa</a>
      <a href="blog.html" class="hover:text-primary-500">📝 Blog</a>
      <a href="slovnik.html" class="hover:text-primary-500">📖 Slovník</a>
      <a href="katalog.html" class="text-red-600 font-semibold hover:text-red-700">🔥 VÝPRODEJ</a>
    </nav>`

var (
	oldMenu = regexp.MustCompile(`(?s)<nav class="hidden md:flex gap-4 text-sm font-medium text-gray-600">\s*` +
		`<a href="index\.html"[^>]*>🏠 Úvod</a>\s*` +
		`<a href="katalog\.html"[^>]*>📦 Všechny regály</a>\s*` +
		`<a href="o-nas\.html"[^>]*>ℹ️ O nás</a>\s*` +
		`<a href="faq\.html"[^>]*>❓ FAQ</a>\s*` +
		`<a href="kontakt\.html"[^>]*>📧 Kontakt</a>\s*</nav>`)

	// secondary nav strip that was pasted under the header on older pages
	duplicateNav = regexp.MustCompile(`(?s)\s*<!-- Navigation Menu -->\s*<div class="bg-white border-b">\s*` +
		`<div class="container mx-auto px-4">\s*<nav class="flex gap-1 pb-3 overflow-x-auto">.*?</nav>\s*</div>\s*</div>`)

	// the first of two breadcrumbs; the later, more detailed one stays
	firstBreadcrumb = regexp.MustCompile(`(?s)\s*<!-- Breadcrumbs Navigation -->\s*` +
		`<nav aria-label="Breadcrumb" class="bg-gray-100 py-3 px-4">.*?</nav>`)
)

func fixMenu(_ string, content []byte) ([]byte, error) {
	content = oldMenu.ReplaceAllLiteral(content, []byte(unifiedNav))
	content = duplicateNav.ReplaceAllLiteral(content, nil)
	content = firstBreadcrumb.ReplaceAllLiteral(content, nil)
	return content, nil
}
