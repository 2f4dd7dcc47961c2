package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/sitemap"
)

func TestPrint(t *testing.T) {
	s := Summary{
		SiteName: "Bazarovyregal.cz",
		Valid: []model.ContentRecord{
			{Slug: "a", Type: model.Locations},
			{Slug: "b", Type: model.Glossary},
			{Slug: "c", Type: model.Locations},
		},
		Written:  3,
		Rejected: []model.Rejection{{Slug: "d", Reason: "DUPLICATE_SLUG"}},
		Sitemap:  sitemap.Stats{Existing: 10, Added: 3, Total: 13},
	}
	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()

	assert.Contains(t, out, "  PSEO GENERATION REPORT - Bazarovyregal.cz\n")
	assert.Contains(t, out, "  Pages generated: 3\n  Pages skipped:   1\n")
	assert.Contains(t, out, "    glossary               1 pages\n    locations              2 pages\n")
	assert.Contains(t, out, "    Total URLs:     13\n")
	assert.Contains(t, out, "    d: DUPLICATE_SLUG\n")
	assert.True(t, strings.HasSuffix(out, strings.Repeat("=", 60)+"\n"))
}

func TestPrintWithoutRejections(t *testing.T) {
	var buf bytes.Buffer
	Summary{SiteName: "X"}.Print(&buf)
	assert.NotContains(t, buf.String(), "Skipped pages")
}
