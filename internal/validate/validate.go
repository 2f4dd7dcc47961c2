// Package validate is the soft quality gate between page builders and
// emission. Rejected records are reported, never fatal.
package validate

import (
	"fmt"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
)

const (
	ReasonDuplicate = "DUPLICATE_SLUG"
	ReasonThin      = "THIN_CONTENT"
	ReasonMissing   = "MISSING_FIELDS"

	minWordsShort   = 200
	minWordsDefault = 300
)

// MinWords is the body word threshold for a playbook type.
func MinWords(t model.PlaybookType) int {
	if t == model.Directory || t == model.Conversions {
		return minWordsShort
	}
	return minWordsDefault
}

// WordCount splits the raw body on whitespace, markup included.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// Validate keeps input order. A record without a slug cannot be emitted and
// is rejected as missing fields before any other check. The remaining checks
// run in order and the first failing one names the rejection: duplicate
// slug, thin content, then missing title, h1 or meta description. A rejected record still claims its
// slug, so a later record with the same slug is a duplicate.
func Validate(records []model.ContentRecord) ([]model.ContentRecord, []model.Rejection) {
	seen := make(map[string]bool, len(records))
	valid := make([]model.ContentRecord, 0, len(records))
	var rejected []model.Rejection
	for _, r := range records {
		if r.Slug == "" {
			rejected = append(rejected, model.Rejection{Reason: ReasonMissing + " (slug)"})
			continue
		}
		if seen[r.Slug] {
			rejected = append(rejected, model.Rejection{Slug: r.Slug, Reason: ReasonDuplicate})
			continue
		}
		seen[r.Slug] = true

		if n, min := WordCount(string(r.BodyHTML)), MinWords(r.Type); n < min {
			rejected = append(rejected, model.Rejection{Slug: r.Slug, Reason: fmt.Sprintf("%s (%d words, min %d)", ReasonThin, n, min)})
			continue
		}
		if r.Title == "" || r.H1 == "" || r.MetaDescription == "" {
			rejected = append(rejected, model.Rejection{Slug: r.Slug, Reason: ReasonMissing})
			continue
		}
		valid = append(valid, r)
	}
	return valid, rejected
}
