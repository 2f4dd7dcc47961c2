package model

import (
	"html/template"
	"time"
)

// PlaybookType names the page archetype a record was generated by.
type PlaybookType string

const (
	Locations    PlaybookType = "locations"
	Personas     PlaybookType = "personas"
	Glossary     PlaybookType = "glossary"
	Comparisons  PlaybookType = "comparisons"
	Curation     PlaybookType = "curation"
	Templates    PlaybookType = "templates"
	Examples     PlaybookType = "examples"
	Directory    PlaybookType = "directory"
	Profiles     PlaybookType = "profiles"
	Conversions  PlaybookType = "conversions"
	Translations PlaybookType = "translations"
	Integrations PlaybookType = "integrations"
	Editorial    PlaybookType = "editorial"
)

// FAQ is a question/answer pair rendered in the body and mirrored into FAQPage schema.
type FAQ struct {
	Question string
	Answer   string
}

// Offer is a product reference attached to a record for OfferCatalog schema.
type Offer struct {
	Name  string
	Price int
	URL   string
}

// ContentRecord is the output of a page builder. Slug is the uniqueness key
// for the whole run and the stem of the emitted file name.
type ContentRecord struct {
	Slug               string
	Title              string
	MetaDescription    string
	H1                 string
	BodyHTML           template.HTML
	BreadcrumbCategory string
	Type               PlaybookType
	Locale             string
	CanonicalURL       string
	FAQs               []FAQ
	Offers             []Offer

	// Published is set for editorial pages only.
	Published time.Time
}

// Rejection reports a record dropped by validation.
type Rejection struct {
	Slug   string
	Reason string
}
