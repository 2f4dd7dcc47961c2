package validate

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

func body(words int) template.HTML {
	return template.HTML(strings.TrimSpace(strings.Repeat("slovo ", words)))
}

func rec(slug string, t model.PlaybookType, words int) model.ContentRecord {
	return model.ContentRecord{Slug: slug, Title: "T", H1: "H", MetaDescription: "M", Type: t, BodyHTML: body(words)}
}

func TestValidate(t *testing.T) {
	missingH1 := rec("no-h1", model.Glossary, 300)
	missingH1.H1 = ""

	tests := []struct {
		name   string
		in     []model.ContentRecord
		valid  []string
		reason []string
	}{
		{"ok", []model.ContentRecord{rec("a", model.Glossary, 300)}, []string{"a"}, nil},
		{"duplicate", []model.ContentRecord{rec("a", model.Glossary, 300), rec("a", model.Glossary, 400)}, []string{"a"}, []string{ReasonDuplicate}},
		{"thin default", []model.ContentRecord{rec("a", model.Locations, 299)}, nil, []string{"THIN_CONTENT (299 words, min 300)"}},
		{"directory threshold", []model.ContentRecord{rec("a", model.Directory, 200), rec("b", model.Conversions, 199)}, []string{"a"}, []string{"THIN_CONTENT (199 words, min 200)"}},
		{"missing", []model.ContentRecord{missingH1}, nil, []string{ReasonMissing}},
		{"thin before missing", []model.ContentRecord{{Slug: "x", Type: model.Glossary}}, nil, []string{"THIN_CONTENT (0 words, min 300)"}},
		{"empty slug", []model.ContentRecord{rec("", model.Glossary, 400), rec("", model.Glossary, 400), rec("a", model.Glossary, 300)}, []string{"a"}, []string{"MISSING_FIELDS (slug)", "MISSING_FIELDS (slug)"}},
		{"rejected still claims slug", []model.ContentRecord{rec("a", model.Glossary, 10), rec("a", model.Glossary, 400)}, nil, []string{"THIN_CONTENT (10 words, min 300)", ReasonDuplicate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, rejected := Validate(tt.in)
			var slugs, reasons []string
			for _, v := range valid {
				slugs = append(slugs, v.Slug)
			}
			for _, r := range rejected {
				reasons = append(reasons, r.Reason)
			}
			assert.Equal(t, tt.valid, slugs)
			assert.Equal(t, tt.reason, reasons)
		})
	}
}

func TestValidateProperties(t *testing.T) {
	types := []model.PlaybookType{model.Locations, model.Directory, model.Conversions, model.Glossary, model.Editorial}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		in := make([]model.ContentRecord, n)
		for i := range in {
			in[i] = rec(
				rapid.SampledFrom([]string{"", "a", "b", "c", "d", "e"}).Draw(t, "slug"),
				rapid.SampledFrom(types).Draw(t, "type"),
				rapid.IntRange(150, 350).Draw(t, "words"),
			)
		}
		valid, rejected := Validate(in)
		if len(valid)+len(rejected) != len(in) {
			t.Fatalf("%d valid + %d rejected != %d in", len(valid), len(rejected), len(in))
		}
		seen := map[string]bool{}
		for _, v := range valid {
			if seen[v.Slug] {
				t.Fatalf("duplicate slug %s passed", v.Slug)
			}
			seen[v.Slug] = true
			if v.Slug == "" {
				t.Fatalf("record without slug passed")
			}
			if WordCount(string(v.BodyHTML)) < MinWords(v.Type) {
				t.Fatalf("thin record %s passed", v.Slug)
			}
		}
	})
}

func TestWordCountCountsMarkup(t *testing.T) {
	require.Equal(t, 3, WordCount(`<p class="a b">text</p>`))
}
