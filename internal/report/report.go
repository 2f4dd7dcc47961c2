// Package report prints the operator summary at the end of a build.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/michalbaturko-lang/bazarovyregal/internal/model"
	"github.com/michalbaturko-lang/bazarovyregal/internal/sitemap"
)

const width = 60

// Summary is everything the generation report shows.
type Summary struct {
	SiteName string
	Valid    []model.ContentRecord
	Written  int
	Rejected []model.Rejection
	Sitemap  sitemap.Stats
}

// ByType counts valid records per playbook type.
func (s Summary) ByType() map[model.PlaybookType]int {
	counts := map[model.PlaybookType]int{}
	for _, r := range s.Valid {
		counts[r.Type]++
	}
	return counts
}

// Print writes the report. Types are listed alphabetically.
func (s Summary) Print(w io.Writer) {
	rule := strings.Repeat("=", width)
	fmt.Fprintf(w, "\n%s\n  PSEO GENERATION REPORT - %s\n%s\n", rule, s.SiteName, rule)

	fmt.Fprintf(w, "\n  Pages generated: %d\n", s.Written)
	fmt.Fprintf(w, "  Pages skipped:   %d\n", len(s.Rejected))

	fmt.Fprintf(w, "\n  By playbook type:\n")
	counts := s.ByType()
	for _, t := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(w, "    %-20s %3d pages\n", t, counts[t])
	}

	fmt.Fprintf(w, "\n  Sitemap:\n")
	fmt.Fprintf(w, "    Existing URLs:  %d\n", s.Sitemap.Existing)
	fmt.Fprintf(w, "    New URLs added: %d\n", s.Sitemap.Added)
	fmt.Fprintf(w, "    Total URLs:     %d\n", s.Sitemap.Total)

	if len(s.Rejected) > 0 {
		fmt.Fprintf(w, "\n  Skipped pages:\n")
		for _, r := range s.Rejected {
			fmt.Fprintf(w, "    %s: %s\n", r.Slug, r.Reason)
		}
	}
	fmt.Fprintf(w, "\n%s\n", rule)
}
