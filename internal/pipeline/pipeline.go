// Package pipeline runs a full generation: playbooks, editorial pages,
// validation, related links, HTML assembly, file emission, sitemap merge,
// robots.txt, manifest and the content state file.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/config"
	"github.com/michalbaturko-lang/bazarovyregal/internal/editorial"
	"github.com/michalbaturko-lang/bazarovyregal/internal/logging"
	"github.com/michalbaturko-lang/bazarovyregal/internal/manifest"
	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/playbook"
	"github.com/michalbaturko-lang/bazarovyregal/internal/related"
	"github.com/michalbaturko-lang/bazarovyregal/internal/render"
	"github.com/michalbaturko-lang/bazarovyregal/internal/report"
	"github.com/michalbaturko-lang/bazarovyregal/internal/schema"
	"github.com/michalbaturko-lang/bazarovyregal/internal/sitemap"
	"github.com/michalbaturko-lang/bazarovyregal/internal/state"
	"github.com/michalbaturko-lang/bazarovyregal/internal/validate"
)

const robotsFile = "robots.txt"

// Site is the schema.org publisher described by cfg.
func Site(cfg config.Config) schema.Site {
	return schema.Site{
		Name:        cfg.SiteName,
		BaseURL:     cfg.BaseURL,
		Email:       cfg.Email,
		Logo:        cfg.Logo,
		Description: cfg.Description,
		PageExt:     cfg.PageExt,
	}
}

// Pipeline holds everything one build needs. Out receives the operator
// progress lines; Logger gets structured diagnostics.
type Pipeline struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Logger  *slog.Logger
	Out     io.Writer
	Now     func() time.Time
}

// New prepares a pipeline over the default catalog.
func New(cfg config.Config, logger *slog.Logger, out io.Writer) *Pipeline {
	c := catalog.Default()
	c.PageExt = cfg.PageExt
	if logger == nil {
		logger = logging.Discard()
	}
	if out == nil {
		out = io.Discard
	}
	return &Pipeline{Config: cfg, Catalog: c, Logger: logger, Out: out, Now: time.Now}
}

func (p *Pipeline) printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

// Run executes one build and returns the report summary.
func (p *Pipeline) Run() (report.Summary, error) {
	cfg := p.Config
	now := p.Now()
	today := sitemap.Date(now)
	sum := report.Summary{SiteName: cfg.SiteName}

	p.printf("Generating pSEO pages for %s...\n", cfg.SiteName)
	records, err := p.collect()
	if err != nil {
		return sum, err
	}
	p.printf("\nTotal raw pages: %d\n", len(records))

	p.printf("\nValidating pages...\n")
	valid, rejected := validate.Validate(records)
	for _, r := range rejected {
		p.Logger.Warn("page rejected", "slug", r.Slug, "reason", r.Reason)
	}
	sum.Valid, sum.Rejected = valid, rejected
	p.printf("  Valid: %d, Skipped: %d\n", len(valid), len(rejected))

	if err := p.prepareOutput(); err != nil {
		return sum, err
	}

	renderer, err := p.renderer()
	if err != nil {
		return sum, err
	}
	index, err := related.Build(valid, cfg.PageExt)
	if err != nil {
		return sum, err
	}
	defer index.Close()

	var st *state.State
	if !cfg.Sitemap.TouchAll {
		if st, err = state.Load(p.statePath()); err != nil {
			return sum, err
		}
	}

	p.printf("\nGenerating HTML files...\n")
	var urls []string
	changed := map[string]bool{}
	for _, rec := range valid {
		links, err := index.Related(rec, cfg.Related.Count)
		if err != nil {
			return sum, err
		}
		page, err := renderer.Page(rec, links)
		if err != nil {
			return sum, err
		}
		file := filepath.Join(cfg.OutputDir, rec.Slug+cfg.PageExt)
		if err := os.WriteFile(file, page, 0o644); err != nil {
			return sum, fmt.Errorf("failed to write page '%s': %w", file, err)
		}
		url := cfg.PageURL(rec.Slug)
		urls = append(urls, url)
		if st != nil && st.Record(rec.Slug, page, today) {
			changed[url] = true
		}
		sum.Written++
	}
	p.printf("  Written: %d files\n", sum.Written)

	p.printf("\nUpdating %s...\n", cfg.Sitemap.File)
	if sum.Sitemap, err = p.updateSitemap(urls, changed, today); err != nil {
		return sum, err
	}

	if cfg.Robots.Enabled {
		file := filepath.Join(cfg.OutputDir, robotsFile)
		body := sitemap.Robots(cfg.BaseURL+"/"+cfg.Sitemap.File, cfg.Robots.Disallow)
		if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
			return sum, fmt.Errorf("failed to write '%s': %w", file, err)
		}
	}

	manifestFile := filepath.Join(cfg.OutputDir, cfg.ManifestFile)
	if err := manifest.Write(manifestFile, manifest.Generate(valid, now)); err != nil {
		return sum, err
	}
	p.printf("\nManifest written to: %s\n", cfg.ManifestFile)

	if st != nil {
		if err := st.Save(p.statePath()); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// statePath resolves a relative state file inside the output directory so
// each output tree keeps its own hashes.
func (p *Pipeline) statePath() string {
	if filepath.IsAbs(p.Config.StateFile) {
		return p.Config.StateFile
	}
	return filepath.Join(p.Config.OutputDir, p.Config.StateFile)
}

// collect runs every playbook in order, then loads the editorial pages.
func (p *Pipeline) collect() ([]model.ContentRecord, error) {
	all := playbook.All()
	steps := len(all) + 1

	var records []model.ContentRecord
	for i, pb := range all {
		p.printf("[%d/%d] Generating %s pages...\n", i+1, steps, pb.Label)
		recs, err := pb.Build(p.Catalog)
		if err != nil {
			return nil, fmt.Errorf("%s playbook: %w", pb.Type, err)
		}
		p.printf("       -> %d pages\n", len(recs))
		records = append(records, recs...)
	}

	p.printf("[%d/%d] Loading editorial pages from '%s'...\n", steps, steps, p.Config.ContentDir)
	recs, err := editorial.NewLoader(p.Config.ContentDir, p.Logger).Load()
	if err != nil {
		return nil, err
	}
	p.printf("       -> %d pages\n", len(recs))
	return append(records, recs...), nil
}

// prepareOutput creates the output directory and copies static assets into
// it. Existing files are kept: the sitemap merges with what is already there.
func (p *Pipeline) prepareOutput() error {
	out := p.Config.OutputDir
	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}
	static := p.Config.StaticDir
	if static == "" {
		return nil
	}
	if _, err := os.Stat(static); errors.Is(err, fs.ErrNotExist) {
		p.Logger.Debug("static directory not found, skipping copy", "dir", static)
		return nil
	}
	p.printf("Copying static assets from '%s' to '%s'\n", static, out)
	if err := copyDirContents(static, out, p.Logger); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	return nil
}

// renderer uses the layouts directory when it holds a base layout and the
// embedded layouts otherwise.
func (p *Pipeline) renderer() (*render.Renderer, error) {
	opts := render.Options{
		Site:    Site(p.Config),
		OGImage: p.Catalog.Bestseller().Image(),
		Now:     p.Now,
	}
	if dir := p.Config.LayoutsDir; dir != "" {
		if _, err := os.Stat(filepath.Join(dir, "base.html")); err == nil {
			p.printf("Loading layouts from: %s\n", dir)
			opts.Layouts = os.DirFS(dir)
		}
	}
	return render.New(opts)
}

func (p *Pipeline) updateSitemap(urls []string, changed map[string]bool, today string) (sitemap.Stats, error) {
	cfg := p.Config
	file := filepath.Join(cfg.OutputDir, cfg.Sitemap.File)
	existing, err := sitemap.Read(file)
	if err != nil {
		return sitemap.Stats{}, err
	}

	rules := make([]sitemap.Rule, 0, len(cfg.Sitemap.Rules))
	for _, r := range cfg.Sitemap.Rules {
		rules = append(rules, sitemap.Rule{Prefix: r.Prefix, Priority: r.Priority, ChangeFreq: r.ChangeFreq})
	}
	entries, stats := sitemap.Merge(existing, urls, sitemap.Options{
		Today:      today,
		ChangeFreq: cfg.Sitemap.ChangeFreq,
		Priority:   cfg.Sitemap.Priority,
		Rules:      rules,
		TouchAll:   cfg.Sitemap.TouchAll,
		Changed:    changed,
	})
	if err := sitemap.Write(file, entries, cfg.Sitemap.Gzip); err != nil {
		return stats, err
	}
	p.Logger.Info("sitemap written", "file", file, "existing", stats.Existing, "added", stats.Added)
	return stats, nil
}
