package fixup

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	cdnHost    = "https://vyprodej-regalucz.s26.cdn-upgates.com"
	fontsHost  = "https://fonts.googleapis.com"
	themeColor = "#f97316"
)

const preconnectHints = `
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link rel="preconnect" href="https://cdn.tailwindcss.com">
  <link rel="preconnect" href="` + cdnHost + `">
  <link rel="dns-prefetch" href="https://www.youtube.com">
`

var (
	charsetMeta = regexp.MustCompile(`(?i)<meta\s+charset=["']?utf-8["']?\s*/?>`)
	headClose   = regexp.MustCompile(`(?i)</head>`)
	imgTag      = regexp.MustCompile(`<img\s+([^>]*?)src="([^"]+)"([^>]*?)>`)
)

// headState is what the technical pass needs to know about a page head.
// goquery reads it so attribute order and quoting do not matter; edits are
// then made on the raw bytes so untouched markup stays byte-identical.
type headState struct {
	canonical  bool
	viewport   bool
	themeColor bool
	cdnHint    bool
	fontsHint  bool
	lazyImages bool
}

func inspectHead(content []byte) (headState, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return headState{}, err
	}
	return headState{
		canonical:  doc.Find(`link[rel="canonical"]`).Length() > 0,
		viewport:   doc.Find(`meta[name="viewport"]`).Length() > 0,
		themeColor: doc.Find(`meta[name="theme-color"]`).Length() > 0,
		cdnHint:    doc.Find(fmt.Sprintf(`link[rel="preconnect"][href^=%q]`, cdnHost)).Length() > 0,
		fontsHint:  doc.Find(fmt.Sprintf(`link[rel="preconnect"][href=%q]`, fontsHost)).Length() > 0,
		lazyImages: doc.Find(`img[loading="lazy"]`).Length() > 0,
	}, nil
}

// fixTechnical adds the canonical link, viewport, preconnect hints,
// theme-color and lazy image loading to pages that lack them.
func (f *Fixer) fixTechnical(name string, content []byte) ([]byte, error) {
	st, err := inspectHead(content)
	if err != nil {
		return nil, err
	}
	if !headClose.Match(content) {
		return content, nil
	}

	if !st.canonical {
		href := f.Site.URL(stem(name))
		content = afterCharset(content, fmt.Sprintf(`<link rel="canonical" href="%s">`, href))
	}
	if !st.viewport {
		content = afterCharset(content, `<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	}
	if !st.cdnHint {
		hint := preconnectHints
		if st.fontsHint {
			hint = "  <link rel=\"preconnect\" href=\"" + cdnHost + "\">\n"
		}
		content = beforeHeadClose(content, hint)
	}
	if !st.lazyImages {
		content = lazyLoad(content)
	}
	if !st.themeColor {
		content = beforeHeadClose(content, fmt.Sprintf("  <meta name=\"theme-color\" content=\"%s\">\n", themeColor))
	}
	return content, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// afterCharset inserts tag on its own line after the charset meta, or before
// </head> when the page declares no charset.
func afterCharset(content []byte, tag string) []byte {
	loc := charsetMeta.FindIndex(content)
	if loc == nil {
		return beforeHeadClose(content, "  "+tag+"\n")
	}
	var out bytes.Buffer
	out.Write(content[:loc[1]])
	out.WriteString("\n  " + tag)
	out.Write(content[loc[1]:])
	return out.Bytes()
}

func beforeHeadClose(content []byte, s string) []byte {
	loc := headClose.FindIndex(content)
	if loc == nil {
		return content
	}
	var out bytes.Buffer
	out.Write(content[:loc[0]])
	out.WriteString(s)
	out.Write(content[loc[0]:])
	return out.Bytes()
}

func lazyLoad(content []byte) []byte {
	return imgTag.ReplaceAllFunc(content, func(m []byte) []byte {
		sub := imgTag.FindSubmatch(m)
		before, src, after := sub[1], sub[2], sub[3]
		if bytes.Contains(before, []byte("loading=")) || bytes.Contains(after, []byte("loading=")) {
			return m
		}
		return fmt.Appendf(nil, `<img %ssrc="%s" loading="lazy"%s>`, before, src, after)
	})
}
