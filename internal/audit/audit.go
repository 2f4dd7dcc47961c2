// Package audit inspects an emitted tree offline: required head tags,
// JSON-LD validity, readable text length, text language against the page's
// lang attribute, and that the pages the sitemap lists exist.
package audit

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/michalbaturko-lang/bazarovyregal/internal/logging"
	"github.com/michalbaturko-lang/bazarovyregal/internal/schema"
	"github.com/michalbaturko-lang/bazarovyregal/internal/sitemap"
)

type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Finding is one problem in one file.
type Finding struct {
	File     string   `json:"file"`
	Severity Severity `json:"severity"`
	Check    string   `json:"check"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: [%s] %s: %s", f.File, f.Severity, f.Check, f.Message)
}

// Report is the outcome of auditing a directory.
type Report struct {
	Files    int       `json:"files"`
	Findings []Finding `json:"findings"`
}

// Errors counts findings of error severity.
func (r Report) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == Error {
			n++
		}
	}
	return n
}

const (
	defaultMinWords = 150
	// below this many readable words the language guess is not trusted
	minLanguageWords = 20
)

// CriticalFiles must exist at the root of a deployable tree.
var CriticalFiles = []string{"index.html", "katalog.html", "kontakt.html", "faq.html", "sitemap.xml", "robots.txt"}

type requirement struct {
	selector string
	name     string
	severity Severity
}

var headRequirements = []requirement{
	{"head > title", "title", Error},
	{`meta[name="description"]`, "meta description", Error},
	{`link[rel="canonical"]`, "canonical link", Error},
	{"meta[charset]", "charset", Warning},
	{`meta[name="viewport"]`, "viewport", Warning},
	{`meta[property="og:title"]`, "og:title", Warning},
	{`meta[property="og:description"]`, "og:description", Warning},
}

// Auditor holds the reusable pieces of an audit run.
type Auditor struct {
	Validator *schema.Validator
	Detector  lingua.LanguageDetector
	Logger    *slog.Logger
	BaseURL   string
	// MinWords is the readable word count below which a page is reported thin.
	MinWords int
}

// New builds an auditor that detects Czech, Slovak and English text.
func New(baseURL string, logger *slog.Logger) (*Auditor, error) {
	v, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Czech, lingua.Slovak, lingua.English).
		Build()
	return &Auditor{Validator: v, Detector: detector, Logger: logger, BaseURL: baseURL, MinWords: defaultMinWords}, nil
}

// Dir audits every top level html file of dir plus the tree-level checks.
func (a *Auditor) Dir(dir string) (Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	var rep Report
	for _, name := range CriticalFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			rep.Findings = append(rep.Findings, Finding{File: name, Severity: Warning, Check: "critical", Message: "file is missing"})
		}
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".html") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return rep, fmt.Errorf("failed to read '%s': %w", e.Name(), err)
		}
		rep.Files++
		found := a.Page(e.Name(), b)
		a.Logger.Debug("page audited", "file", e.Name(), "findings", len(found))
		rep.Findings = append(rep.Findings, found...)
	}

	rep.Findings = append(rep.Findings, a.sitemapTargets(dir)...)
	return rep, nil
}

// Page audits one html document.
func (a *Auditor) Page(name string, content []byte) []Finding {
	var out []Finding
	add := func(sev Severity, check, format string, args ...any) {
		out = append(out, Finding{File: name, Severity: sev, Check: check, Message: fmt.Sprintf(format, args...)})
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		add(Error, "parse", "%v", err)
		return out
	}

	for _, r := range headRequirements {
		sel := doc.Find(r.selector)
		if sel.Length() == 0 {
			add(r.severity, "head", "missing %s", r.name)
			continue
		}
		if strings.HasPrefix(r.selector, "meta[name") || strings.HasPrefix(r.selector, "meta[property") {
			if c, _ := sel.First().Attr("content"); strings.TrimSpace(c) == "" {
				add(r.severity, "head", "empty %s", r.name)
			}
		}
	}
	if strings.TrimSpace(doc.Find("head > title").Text()) == "" && doc.Find("head > title").Length() > 0 {
		add(Error, "head", "empty title")
	}

	blocks := doc.Find(`script[type="application/ld+json"]`)
	if blocks.Length() == 0 {
		add(Warning, "json-ld", "no structured data")
	}
	blocks.Each(func(i int, s *goquery.Selection) {
		_, err := a.Validator.Validate([]byte(s.Text()))
		if err != nil {
			add(Error, "json-ld", "block %d: %v", i+1, err)
		}
	})

	text := a.readableText(name, content, doc)
	words := strings.Fields(text)
	if len(words) < a.MinWords {
		add(Warning, "words", "%d readable words, min %d", len(words), a.MinWords)
	}

	lang, _ := doc.Find("html").Attr("lang")
	lang = primarySubtag(lang)
	if lang == "" {
		add(Warning, "language", "html element has no lang attribute")
	} else if len(words) >= minLanguageWords {
		if detected, ok := a.Detector.DetectLanguageOf(text); ok {
			code := strings.ToLower(detected.IsoCode639_1().String())
			if code != lang {
				add(Warning, "language", "text reads as %s but lang is %s", code, lang)
			}
		}
	}
	return out
}

// readableText is the main article text as go-readability extracts it. When
// extraction fails the visible text of <main> (or <body>) is used instead.
func (a *Auditor) readableText(name string, content []byte, doc *goquery.Document) string {
	pageURL, err := url.Parse(strings.TrimSuffix(a.BaseURL, "/") + "/" + name)
	if err == nil {
		rp := readability.NewParser()
		article, err := rp.Parse(bytes.NewReader(content), pageURL)
		if err == nil && strings.TrimSpace(article.Content) != "" {
			if adoc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content)); err == nil {
				return adoc.Text()
			}
		}
		if err != nil {
			a.Logger.Debug("readability failed, using page text", "file", name, "error", err)
		}
	}
	sel := doc.Find("main")
	if sel.Length() == 0 {
		sel = doc.Find("body")
	}
	return sel.Text()
}

// sitemapTargets reports sitemap entries on this site whose page file is
// not in the tree.
func (a *Auditor) sitemapTargets(dir string) []Finding {
	entries, err := sitemap.Read(filepath.Join(dir, "sitemap.xml"))
	if err != nil {
		return []Finding{{File: "sitemap.xml", Severity: Error, Check: "sitemap", Message: err.Error()}}
	}
	base, _ := url.Parse(a.BaseURL)

	var out []Finding
	seen := map[string]bool{}
	for _, e := range entries {
		u, err := url.Parse(e.Loc)
		if err != nil || (base != nil && base.Host != "" && u.Host != base.Host) {
			continue
		}
		file := path.Base(u.Path)
		if file == "/" || file == "." {
			file = "index.html"
		}
		if seen[file] {
			continue
		}
		seen[file] = true
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			out = append(out, Finding{File: "sitemap.xml", Severity: Warning, Check: "sitemap", Message: fmt.Sprintf("%s is listed but missing", file)})
		}
	}
	return out
}

func primarySubtag(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
