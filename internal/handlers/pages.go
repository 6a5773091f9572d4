package handlers

import (
	"antalyaride.com/web/internal/catalog"
	"antalyaride.com/web/internal/nav"
	"antalyaride.com/web/internal/seo"
)

// SEOData is everything the head template needs for one page: the resolved
// meta bundle, hreflang alternates and ready-to-embed JSON-LD strings.
type SEOData struct {
	Meta       seo.Meta
	Alternates []seo.Alternate
	JSONLD     []string
}

// PageData is the shared view model for pages using the base layout.
type PageData struct {
	Title     string
	Lang      string
	Path      string
	SEO       SEOData
	Analytics Analytics

	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Per-page payloads; only the relevant ones are set.
	City     *catalog.City
	Cities   []catalog.City
	Service  *catalog.Service
	Services []catalog.Service
	Post     *catalog.Post
	Posts    []catalog.Post
	Static   *catalog.StaticPage
}
