// Package sitemap reads, merges and writes the site's sitemap.xml. The merge
// is a set union keyed by URL: a URL present before a run is present after it.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

const (
	namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	dateFmt   = "2006-01-02"
	indexFile = "index.html"
)

// Entry is one <url> element.
type Entry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// Rule sets priority and change frequency for pages whose file name starts
// with Prefix. Empty fields fall back to the Options defaults.
type Rule struct {
	Prefix     string
	Priority   string
	ChangeFreq string
}

// Options controls Merge.
type Options struct {
	// Today is the lastmod written for touched entries, as YYYY-MM-DD.
	Today      string
	ChangeFreq string
	Priority   string
	Rules      []Rule

	// TouchAll stamps every entry with Today, including ones this run did
	// not generate. When false only new URLs and URLs in Changed are touched.
	TouchAll bool
	Changed  map[string]bool
}

// Stats counts what Merge did.
type Stats struct {
	Existing int
	Added    int
	Total    int
}

// Read parses the <url> entries of an existing sitemap. A missing file is an
// empty sitemap; a malformed one is an error.
func Read(file string) ([]Entry, error) {
	b, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sitemap '%s': %w", file, err)
	}
	var set urlset
	if err := xml.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("failed to parse sitemap '%s': %w", file, err)
	}
	return set.URLs, nil
}

// Merge unions the existing entries with the generated URLs. Existing URLs
// come first in sorted order, followed by the new ones sorted.
func Merge(existing []Entry, generated []string, opts Options) ([]Entry, Stats) {
	known := make(map[string]Entry, len(existing))
	for _, e := range existing {
		loc := strings.TrimSpace(e.Loc)
		if loc == "" {
			continue
		}
		e.Loc = loc
		known[loc] = e
	}

	old := make([]string, 0, len(known))
	for loc := range known {
		old = append(old, loc)
	}
	slices.Sort(old)

	var added []string
	seen := make(map[string]bool, len(generated))
	for _, loc := range generated {
		if _, ok := known[loc]; ok || seen[loc] {
			continue
		}
		seen[loc] = true
		added = append(added, loc)
	}
	slices.Sort(added)

	out := make([]Entry, 0, len(old)+len(added))
	for _, loc := range old {
		e := known[loc]
		if opts.TouchAll || opts.Changed[loc] || e.LastMod == "" {
			e.LastMod = opts.Today
		}
		out = append(out, opts.annotate(e))
	}
	for _, loc := range added {
		out = append(out, opts.annotate(Entry{Loc: loc, LastMod: opts.Today}))
	}
	return out, Stats{Existing: len(old), Added: len(added), Total: len(out)}
}

func (o Options) annotate(e Entry) Entry {
	e.ChangeFreq, e.Priority = o.ChangeFreq, o.Priority
	name := fileName(e.Loc)
	for _, r := range o.Rules {
		if !strings.HasPrefix(name, r.Prefix) {
			continue
		}
		if r.ChangeFreq != "" {
			e.ChangeFreq = r.ChangeFreq
		}
		if r.Priority != "" {
			e.Priority = r.Priority
		}
		break
	}
	return e
}

// fileName is the last path segment of loc; the site root maps to index.html.
func fileName(loc string) string {
	p := loc
	if u, err := url.Parse(loc); err == nil {
		p = u.Path
	}
	name := path.Base(p)
	if name == "/" || name == "." || name == "" {
		return indexFile
	}
	return name
}

// Marshal renders entries as a standard sitemap document.
func Marshal(entries []Entry) ([]byte, error) {
	body, err := xml.MarshalIndent(urlset{Xmlns: namespace, URLs: entries}, "", "  ")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write replaces file with the rendered sitemap. With compress set a gzip
// copy is written next to it as file + ".gz".
func Write(file string, entries []Entry, compress bool) error {
	b, err := Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	if err := os.WriteFile(file, b, 0o644); err != nil {
		return fmt.Errorf("failed to write sitemap '%s': %w", file, err)
	}
	if !compress {
		return nil
	}
	return writeGzip(file+".gz", b)
}

func writeGzip(file string, b []byte) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", file, err)
	}
	defer f.Close()

	zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("failed to start gzip for '%s': %w", file, err)
	}
	if _, err := zw.Write(b); err != nil {
		return fmt.Errorf("failed to compress '%s': %w", file, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish '%s': %w", file, err)
	}
	return f.Close()
}

// Date formats t as a sitemap lastmod value.
func Date(t time.Time) string { return t.Format(dateFmt) }

// URLs lists the locations of entries in order.
func URLs(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Loc
	}
	return out
}

// Robots renders robots.txt pointing crawlers at sitemapURL.
func Robots(sitemapURL string, disallow []string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	for _, d := range disallow {
		fmt.Fprintf(&b, "Disallow: %s\n", d)
	}
	fmt.Fprintf(&b, "\nSitemap: %s\n", sitemapURL)
	return b.String()
}
