package model

import "html/template"

// RelatedLink is one entry of the related pages block.
type RelatedLink struct {
	Href  string
	Title string
}

// PageData is what the page shell template executes against.
type PageData struct {
	SiteName     string
	BaseURL      string
	Email        string
	Lang         string
	OGLocale     string
	Canonical    string
	OGImage      string
	OGType       string
	Record       *ContentRecord
	Schemas      []template.JS
	Related      []RelatedLink
	CategoryHref string
	Year         int
}
