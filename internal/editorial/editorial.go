// Package editorial loads hand-written markdown pages from the content
// directory and turns them into records alongside the generated ones.
package editorial

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/slug"
)

const defaultCategory = "Blog"

// FrontMatter is the YAML header of an editorial page. Every field is
// optional; missing values fall back to the file name.
type FrontMatter struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	H1          string `yaml:"h1"`
	Category    string `yaml:"category"`
	Type        string `yaml:"type"`
	Locale      string `yaml:"locale"`
	Date        string `yaml:"date"`
}

var dateFormats = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// Loader reads markdown pages from one directory tree.
type Loader struct {
	Dir    string
	Logger *slog.Logger
	md     goldmark.Markdown
}

func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{
		Dir:    dir,
		Logger: logger,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
	}
}

// Load walks the directory in lexical order. A missing directory yields no
// pages and no error.
func (l *Loader) Load() ([]model.ContentRecord, error) {
	if _, err := os.Stat(l.Dir); errors.Is(err, fs.ErrNotExist) {
		l.Logger.Debug("Content directory not found, skipping editorial pages", "dir", l.Dir)
		return nil, nil
	}

	var records []model.ContentRecord
	err := filepath.WalkDir(l.Dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s': %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", path, err)
		}
		rec, err := l.Parse(strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())), b)
		if err != nil {
			return fmt.Errorf("file '%s': %w", path, err)
		}
		l.Logger.Debug("Loaded editorial page", "path", path, "slug", rec.Slug)
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Parse converts one markdown document. stem is the file name without
// extension and seeds the slug and title fallbacks.
func (l *Loader) Parse(stem string, b []byte) (model.ContentRecord, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(b), &fm)
	if err != nil {
		l.Logger.Warn("Could not parse front matter, treating as pure markdown", "page", stem, "error", err)
		body = b
		fm = FrontMatter{}
	}

	var buf bytes.Buffer
	if err := l.md.Convert(body, &buf); err != nil {
		return model.ContentRecord{}, fmt.Errorf("failed to convert markdown: %w", err)
	}

	rec := model.ContentRecord{
		Slug:               fm.Slug,
		Title:              fm.Title,
		MetaDescription:    fm.Description,
		H1:                 fm.H1,
		BodyHTML:           template.HTML(buf.String()),
		BreadcrumbCategory: fm.Category,
		Type:               model.Editorial,
		Locale:             fm.Locale,
	}
	if rec.Slug == "" {
		rec.Slug = slug.Make(stem)
	} else {
		rec.Slug = slug.Make(rec.Slug)
	}
	if rec.Slug == "" {
		l.Logger.Warn("Page has no usable slug, set one in front matter", "page", stem)
	}
	if rec.Title == "" {
		rec.Title = slug.Title(stem)
	}
	if rec.H1 == "" {
		rec.H1 = rec.Title
	}
	if rec.BreadcrumbCategory == "" {
		rec.BreadcrumbCategory = defaultCategory
	}
	if fm.Type != "" {
		rec.Type = model.PlaybookType(fm.Type)
	}
	if rec.Locale == "" {
		rec.Locale = "cs"
	}
	if fm.Date != "" {
		rec.Published = parseDate(fm.Date)
		if rec.Published.IsZero() {
			l.Logger.Warn("Could not parse date, use YYYY-MM-DD or RFC3339", "page", stem, "date", fm.Date)
		}
	}
	return rec, nil
}

func parseDate(s string) time.Time {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
