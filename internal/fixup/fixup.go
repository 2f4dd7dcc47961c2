// Package fixup runs maintenance passes over an already published tree of
// pages. Each pass is a pure transform of one file's bytes; files are only
// rewritten when a pass changed them.
package fixup

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/logging"
	"github.com/michalbaturko-lang/bazarovyregal/internal/schema"
)

// Pass names a maintenance transform.
type Pass string

const (
	URLs      Pass = "urls"
	Menu      Pass = "menu"
	Technical Pass = "technical"
	Schema    Pass = "schema"
	Lifestyle Pass = "lifestyle"
)

// AllPasses is the order passes run in when several are selected.
var AllPasses = []Pass{URLs, Menu, Technical, Schema, Lifestyle}

// ParsePasses reads a comma separated pass list. Empty means all passes.
func ParsePasses(s string) ([]Pass, error) {
	if strings.TrimSpace(s) == "" {
		return slices.Clone(AllPasses), nil
	}
	var out []Pass
	for _, name := range strings.Split(s, ",") {
		p := Pass(strings.TrimSpace(name))
		if !slices.Contains(AllPasses, p) {
			return nil, fmt.Errorf("unknown pass %q (want one of urls, menu, technical, schema, lifestyle)", p)
		}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b Pass) int {
		return slices.Index(AllPasses, a) - slices.Index(AllPasses, b)
	})
	return out, nil
}

// textExts are the files the urls pass touches; every other pass only reads html.
var textExts = []string{".html", ".xml", ".txt", ".json", ".js", ".css"}

// Fixer applies passes to the top level files of a directory.
type Fixer struct {
	Site   schema.Site
	Logger *slog.Logger
	DryRun bool

	// Hosts maps legacy URL prefixes to their replacement, applied in order.
	Hosts []Replacement
}

// Replacement is one literal find/replace pair.
type Replacement struct {
	Old string
	New string
}

// Result counts what a run did.
type Result struct {
	Scanned int
	Changed []string
}

type transform func(name string, content []byte) ([]byte, error)

func (f *Fixer) transform(p Pass) transform {
	switch p {
	case URLs:
		return f.fixURLs
	case Menu:
		return fixMenu
	case Technical:
		return f.fixTechnical
	case Lifestyle:
		return f.fixLifestyle
	default:
		return f.fixSchema
	}
}

// Run applies passes to every matching file directly inside dir, in name order.
func (f *Fixer) Run(dir string, passes []Pass) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	var res Result
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(textExts, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		res.Scanned++
		changed, err := f.fixFile(filepath.Join(dir, e.Name()), passes)
		if err != nil {
			return res, err
		}
		if changed {
			res.Changed = append(res.Changed, e.Name())
		}
	}
	return res, nil
}

func (f *Fixer) fixFile(path string, passes []Pass) (bool, error) {
	name := filepath.Base(path)
	original, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	content := original
	for _, p := range passes {
		if p != URLs && !isHTML(name) {
			continue
		}
		next, err := f.transform(p)(name, content)
		if err != nil {
			return false, fmt.Errorf("%s pass on '%s': %w", p, path, err)
		}
		content = next
	}
	if bytes.Equal(content, original) {
		return false, nil
	}

	f.logger().Info("file fixed", "file", name, "dry_run", f.DryRun)
	if f.DryRun {
		return true, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat '%s': %w", path, err)
	}
	if err := os.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return true, nil
}

func (f *Fixer) logger() *slog.Logger {
	if f.Logger == nil {
		return logging.Discard()
	}
	return f.Logger
}

func isHTML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".html")
}

// DefaultHosts rewrites the old preview deployment and the bare domain to
// the canonical www host of baseURL.
func DefaultHosts(baseURL string) []Replacement {
	base := strings.TrimSuffix(baseURL, "/")
	host := strings.TrimPrefix(strings.TrimPrefix(base, "https://"), "http://")
	bare := strings.TrimPrefix(host, "www.")
	return []Replacement{
		{"https://bazarovyregal.vercel.app", base},
		{"http://bazarovyregal.vercel.app", base},
		{"bazarovyregal.vercel.app", host},
		{"https://" + bare + "/", base + "/"},
		{"http://" + bare + "/", base + "/"},
	}
}

func (f *Fixer) fixURLs(_ string, content []byte) ([]byte, error) {
	for _, r := range f.Hosts {
		if r.Old == "" || r.Old == r.New {
			continue
		}
		content = bytes.ReplaceAll(content, []byte(r.Old), []byte(r.New))
	}
	return content, nil
}
