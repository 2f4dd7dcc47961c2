package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

func TestGenerateAndWrite(t *testing.T) {
	records := []model.ContentRecord{
		{Slug: "kovove-regaly-plzen", Type: model.Locations, Title: "Kovové regály Plzeň"},
		{Slug: "regaly-vyska-180-cm", Type: model.Directory, Title: "Regály 180 cm & více"},
	}
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	m := Generate(records, now)
	assert.Equal(t, "2026-10-17T09:30:00Z", m.GeneratedAt)
	assert.Equal(t, 2, m.TotalPages)
	assert.Equal(t, Page{Slug: "regaly-vyska-180-cm", Type: "directory", Title: "Regály 180 cm & více"}, m.Pages[1])

	file := filepath.Join(t.TempDir(), "pseo_manifest.json")
	require.NoError(t, Write(file, m))
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"title": "Kovové regály Plzeň"`)
	assert.Contains(t, string(b), "180 cm & více")
	assert.Contains(t, string(b), "\n  \"total_pages\": 2,")

	var back Manifest
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, m, back)
}

func TestGenerateEmpty(t *testing.T) {
	m := Generate(nil, time.Now())
	assert.Zero(t, m.TotalPages)
	assert.NotNil(t, m.Pages)
}
