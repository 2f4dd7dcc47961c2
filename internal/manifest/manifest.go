package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

// Manifest is pseo_manifest.json, read by the indexing notification scripts.
type Manifest struct {
	GeneratedAt string `json:"generated_at"`
	TotalPages  int    `json:"total_pages"`
	Pages       []Page `json:"pages"`
}

type Page struct {
	Slug  string `json:"slug"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// Generate lists every written record in emission order.
func Generate(records []model.ContentRecord, now time.Time) Manifest {
	m := Manifest{
		GeneratedAt: now.Format(time.RFC3339),
		TotalPages:  len(records),
		Pages:       make([]Page, 0, len(records)),
	}
	for _, r := range records {
		m.Pages = append(m.Pages, Page{Slug: r.Slug, Type: string(r.Type), Title: r.Title})
	}
	return m
}

// Write saves the manifest as indented JSON. Titles keep their diacritics
// and markup characters unescaped.
func Write(file string, m Manifest) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}
	if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("error saving manifest '%s': %w", file, err)
	}
	return nil
}
