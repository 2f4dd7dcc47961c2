// Package render assembles complete HTML documents from content records using
// a base layout and its partials.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/schema"
)

const (
	baseLayout  = "base.html"
	partialsDir = "partials"
	ogType      = "article"
)

//go:embed layouts
var embedded embed.FS

// Embedded returns the layouts shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "layouts")
	if err != nil {
		panic(err)
	}
	return sub
}

var ogLocales = map[string]string{
	"cs": "cs_CZ",
	"sk": "sk_SK",
}

// Options configures a Renderer.
type Options struct {
	Site    schema.Site
	OGImage string
	// Layouts holds base.html and partials/*.html. Nil means the embedded set.
	Layouts fs.FS
	Now     func() time.Time
}

// Renderer wraps body fragments in the site shell.
type Renderer struct {
	tmpl    *template.Template
	site    schema.Site
	ogImage string
	now     func() time.Time
}

// New parses base.html first and then every partial, so partials may
// redefine blocks the base declares.
func New(opts Options) (*Renderer, error) {
	layouts := opts.Layouts
	if layouts == nil {
		layouts = Embedded()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if _, err := fs.Stat(layouts, baseLayout); err != nil {
		return nil, fmt.Errorf("%s not found in layouts: %w", baseLayout, err)
	}
	partials, err := fs.Glob(layouts, path.Join(partialsDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list partials: %w", err)
	}

	funcs := template.FuncMap{
		"page": func(slug string) string { return slug + opts.Site.PageExt },
	}
	tmpl, err := template.New(baseLayout).Funcs(funcs).ParseFS(layouts, append([]string{baseLayout}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s and partials: %w", baseLayout, err)
	}
	return &Renderer{tmpl: tmpl, site: opts.Site, ogImage: opts.OGImage, now: now}, nil
}

// Page renders one record. related is shown below the article body.
func (r *Renderer) Page(rec model.ContentRecord, related []model.RelatedLink) ([]byte, error) {
	if rec.Slug == "" {
		return nil, errors.New("record has no slug")
	}
	data, err := r.pageData(rec, related)
	if err != nil {
		return nil, fmt.Errorf("page '%s': %w", rec.Slug, err)
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, baseLayout, data); err != nil {
		return nil, fmt.Errorf("failed to execute layout '%s' for page '%s': %w", baseLayout, rec.Slug, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) pageData(rec model.ContentRecord, related []model.RelatedLink) (model.PageData, error) {
	canonical := rec.CanonicalURL
	if canonical == "" {
		canonical = r.site.URL(rec.Slug)
	}
	lang := rec.Locale
	if lang == "" {
		lang = "cs"
	}
	ogLocale, ok := ogLocales[lang]
	if !ok {
		ogLocale = strings.ToLower(lang) + "_" + strings.ToUpper(lang)
	}

	blocks := schema.ForRecord(r.site, rec)
	schemas := make([]template.JS, 0, len(blocks))
	for _, b := range blocks {
		raw, err := schema.Marshal(b)
		if err != nil {
			return model.PageData{}, err
		}
		schemas = append(schemas, template.JS(raw))
	}

	return model.PageData{
		SiteName:     r.site.Name,
		BaseURL:      r.site.BaseURL,
		Email:        r.site.Email,
		Lang:         lang,
		OGLocale:     ogLocale,
		Canonical:    canonical,
		OGImage:      r.ogImage,
		OGType:       ogType,
		Record:       &rec,
		Schemas:      schemas,
		Related:      related,
		CategoryHref: "katalog" + r.site.PageExt,
		Year:         r.now().Year(),
	}, nil
}
