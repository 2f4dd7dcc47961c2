package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))
	return file
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitializeConfig(t *testing.T) {
	cfgFile = writeConfig(t, `
siteName: Test Regaly
baseURL: https://example.cz/
sitemap:
  touchAll: false
  rules:
    - prefix: index
      priority: "1.0"
      changeFreq: daily
    - prefix: ""
      priority: "0.6"
`)
	t.Cleanup(func() { cfgFile = "" })
	t.Setenv("REGALGEN_RELATED_COUNT", "7")

	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	require.NoError(t, initializeConfig(rootCmd))
	assert.Contains(t, errOut.String(), "Using config file:")

	assert.Equal(t, "Test Regaly", appConfig.SiteName)
	assert.Equal(t, "https://example.cz", appConfig.BaseURL)
	assert.Equal(t, 7, appConfig.Related.Count)
	assert.False(t, appConfig.Sitemap.TouchAll)
	assert.Equal(t, "sitemap.xml", appConfig.Sitemap.File)
	assert.Equal(t, "merchant_feed.xml", appConfig.Feed.File)
	require.Len(t, appConfig.Sitemap.Rules, 2)
	assert.Equal(t, "index", appConfig.Sitemap.Rules[0].Prefix)
	assert.Equal(t, "daily", appConfig.Sitemap.Rules[0].ChangeFreq)
	assert.Equal(t, "0.6", appConfig.Sitemap.Rules[1].Priority)
}

func TestInitializeConfigMissingFile(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	t.Cleanup(func() { cfgFile = "" })
	assert.Error(t, initializeConfig(rootCmd))
}

func TestCatalogFormats(t *testing.T) {
	cfg := writeConfig(t, "logLevel: error\n")

	out, err := execute(t, "--config", cfg, "catalog", "--format", "json")
	require.NoError(t, err)
	var rows []catalogRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Greater(t, r.PriceOriginal, r.Price, r.Slug)
	}

	out, err = execute(t, "--config", cfg, "catalog", "--format", "yaml")
	require.NoError(t, err)
	var fromYAML []catalogRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, rows, fromYAML)

	out, err = execute(t, "--config", cfg, "catalog", "--format", "csv")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(rows)+1)
	assert.Equal(t, "slug", records[0][0])

	out, err = execute(t, "--config", cfg, "catalog", "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "SLUG"))
	assert.Contains(t, out, rows[0].Slug)

	_, err = execute(t, "--config", cfg, "catalog", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format 'xml'")
}

func TestFeedCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "logLevel: error\noutputDir: "+dir+"\n")

	out, err := execute(t, "--config", cfg, "feed")
	require.NoError(t, err)
	assert.Contains(t, out, "XML feed:")

	xmlFeed, err := os.ReadFile(filepath.Join(dir, "merchant_feed.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(xmlFeed), "<g:id>BR-001</g:id>")

	tsv, err := os.ReadFile(filepath.Join(dir, "merchant_feed.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(tsv), "id\t"))
}

func TestBuildFixAudit(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "public")
	cfg := writeConfig(t, strings.Join([]string{
		"logLevel: error",
		"outputDir: " + out,
		"contentDir: " + filepath.Join(root, "content"),
		"layoutsDir: " + filepath.Join(root, "layouts"),
		"staticDir: " + filepath.Join(root, "static"),
		"stateFile: " + filepath.Join(root, "state.json"),
		"robots:",
		"  enabled: true",
	}, "\n")+"\n")

	stdout, err := execute(t, "--config", cfg, "build")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PSEO GENERATION REPORT")
	assert.FileExists(t, filepath.Join(out, "sitemap.xml"))
	assert.FileExists(t, filepath.Join(out, "robots.txt"))
	assert.FileExists(t, filepath.Join(out, "pseo_manifest.json"))

	stdout, err = execute(t, "--config", cfg, "fix", "--pass", "urls,menu", "--dry-run", "--dir", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Would fix")

	require.NoError(t, os.WriteFile(filepath.Join(out, "rozbita.html"), []byte("<html><body><p>nic</p></body></html>"), 0o644))
	stdout, err = execute(t, "--config", cfg, "audit", "--dir", out)
	assert.ErrorContains(t, err, "audit found")
	assert.Contains(t, stdout, "index.html: [warning] critical: file is missing")
	assert.Contains(t, stdout, "rozbita.html: [error]")
}
