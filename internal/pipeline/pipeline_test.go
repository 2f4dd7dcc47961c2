package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michalbaturko-lang/bazarovyregal/internal/config"
	"github.com/michalbaturko-lang/bazarovyregal/internal/sitemap"
	"github.com/michalbaturko-lang/bazarovyregal/internal/validate"
)

const legacyURL = "https://www.bazarovyregal.cz/stara-stranka.html"

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(dir, "public")
	cfg.ContentDir = filepath.Join(dir, "content")
	cfg.LayoutsDir = filepath.Join(dir, "layouts")
	cfg.StaticDir = filepath.Join(dir, "static")
	cfg.StateFile = filepath.Join(dir, "state.json")
	cfg.Robots.Enabled = true

	require.NoError(t, os.MkdirAll(cfg.ContentDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ContentDir, "kratky.md"),
		[]byte("---\ntitle: Kratky clanek\ndescription: Prilis kratky text\n---\nJen par slov.\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(cfg.StaticDir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "css", "site.css"), []byte("body{}"), 0o644))

	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0o755))
	existing, err := sitemap.Marshal([]sitemap.Entry{{Loc: legacyURL, LastMod: "2024-01-01", ChangeFreq: "monthly", Priority: "0.5"}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputDir, cfg.Sitemap.File), existing, 0o644))
	return cfg
}

func run(t *testing.T, cfg config.Config, now time.Time) []sitemap.Entry {
	t.Helper()
	p := New(cfg, nil, nil)
	p.Now = func() time.Time { return now }
	sum, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, len(sum.Valid), sum.Written)
	assert.Equal(t, len(sum.Valid)+1, sum.Sitemap.Total)

	entries, err := sitemap.Read(filepath.Join(cfg.OutputDir, cfg.Sitemap.File))
	require.NoError(t, err)
	return entries
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	p := New(cfg, nil, &out)
	p.Now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	sum, err := p.Run()
	require.NoError(t, err)

	var reason string
	for _, r := range sum.Rejected {
		if r.Slug == "kratky" {
			reason = r.Reason
		}
	}
	assert.True(t, strings.HasPrefix(reason, validate.ReasonThin), reason)
	assert.NotEmpty(t, sum.Valid)
	assert.Equal(t, len(sum.Valid), sum.Written)
	assert.Equal(t, 1, sum.Sitemap.Existing)
	assert.Equal(t, len(sum.Valid), sum.Sitemap.Added)

	assert.Contains(t, out.String(), "Generating Location pages...")
	assert.Contains(t, out.String(), "Loading editorial pages")

	for _, rec := range sum.Valid {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, rec.Slug+cfg.PageExt))
	}
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "kratky.html"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "css", "site.css"))

	entries, err := sitemap.Read(filepath.Join(cfg.OutputDir, cfg.Sitemap.File))
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, legacyURL, entries[0].Loc)
	assert.Equal(t, "2026-03-01", entries[0].LastMod)

	robots, err := os.ReadFile(filepath.Join(cfg.OutputDir, robotsFile))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://www.bazarovyregal.cz/sitemap.xml")

	raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, cfg.ManifestFile))
	require.NoError(t, err)
	var m struct {
		GeneratedAt string `json:"generated_at"`
		TotalPages  int    `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, len(sum.Valid), m.TotalPages)
	assert.Equal(t, "2026-03-01T10:00:00Z", m.GeneratedAt)
}

func TestRunKeepsLastModForUnchangedPages(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sitemap.TouchAll = false

	first := run(t, cfg, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	assert.FileExists(t, cfg.StateFile)

	second := run(t, cfg, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	require.ElementsMatch(t, sitemap.URLs(first), sitemap.URLs(second))

	lastmod := make(map[string]string, len(first))
	for _, e := range first {
		lastmod[e.Loc] = e.LastMod
	}
	for _, e := range second {
		assert.Equal(t, lastmod[e.Loc], e.LastMod, e.Loc)
	}
	assert.Equal(t, "2024-01-01", lastmod[legacyURL])
	for loc, day := range lastmod {
		if loc != legacyURL {
			assert.Equal(t, "2026-03-01", day, loc)
		}
	}
}

func TestRunUsesLayoutsDirectory(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.LayoutsDir, "partials"), 0o755))
	base := `<!DOCTYPE html><html lang="{{.Lang}}"><head><title>{{.Record.Title}}</title></head><body data-custom="1">{{.Record.BodyHTML}}</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(cfg.LayoutsDir, "base.html"), []byte(base), 0o644))

	p := New(cfg, nil, nil)
	sum, err := p.Run()
	require.NoError(t, err)
	require.NotEmpty(t, sum.Valid)

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, sum.Valid[0].Slug+cfg.PageExt))
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-custom="1"`)
}

func TestSite(t *testing.T) {
	cfg := config.Default()
	s := Site(cfg)
	assert.Equal(t, cfg.SiteName, s.Name)
	assert.Equal(t, "https://www.bazarovyregal.cz/faq.html", s.URL("faq"))
}

func TestRunSkipsPageWithoutSlug(t *testing.T) {
	cfg := testConfig(t)
	body := "---\ntitle: Блог\ndescription: Статья о стеллажах\n---\n" + strings.Repeat("слово ", 400) + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ContentDir, "блог.md"), []byte(body), 0o644))

	sum, err := New(cfg, nil, nil).Run()
	require.NoError(t, err)
	assert.NotZero(t, sum.Written)

	var reasons []string
	for _, r := range sum.Rejected {
		if r.Slug == "" {
			reasons = append(reasons, r.Reason)
		}
	}
	assert.Equal(t, []string{validate.ReasonMissing + " (slug)"}, reasons)
}

func TestStateFileFollowsOutputDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sitemap.TouchAll = false
	cfg.StateFile = ".regalgen-state.json"

	other := cfg
	other.OutputDir = filepath.Join(t.TempDir(), "druhy")
	other.SiteName = "Jiný obchod"

	first := run(t, cfg, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, ".regalgen-state.json"))

	// The second tree renders different bytes for every slug. Its hashes
	// must not leak into the first tree's state.
	p := New(other, nil, nil)
	p.Now = func() time.Time { return time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC) }
	sum, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Sitemap.Existing)
	assert.FileExists(t, filepath.Join(other.OutputDir, ".regalgen-state.json"))

	second := run(t, cfg, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))
	lastmod := make(map[string]string, len(first))
	for _, e := range first {
		lastmod[e.Loc] = e.LastMod
	}
	for _, e := range second {
		assert.Equal(t, lastmod[e.Loc], e.LastMod, e.Loc)
	}
}
