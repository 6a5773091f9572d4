// Package catalog supplies the content records the site renders and the SEO
// generators consume: destination cities, transfer services, blog posts and
// static pages. Cities and services are static in-memory tables; blog posts
// are loaded from local markdown with YAML front matter.
package catalog

import (
	"context"
	"errors"
	"html/template"
	"time"
)

// ErrNotFound is returned when a slug does not resolve to a record.
var ErrNotFound = errors.New("catalog: not found")

// Route is one popular pickup/dropoff pair shown on a city page.
type Route struct {
	From     string
	To       string
	PriceEUR float64
}

// FAQ is one question/answer entry rendered on landing pages and emitted as
// FAQPage markup.
type FAQ struct {
	Question string
	Answer   string
}

// City is a destination landing page record. Slug is the URL path without
// the leading slash, e.g. "kemer-transfer".
type City struct {
	Slug        string
	Name        string
	Description string
	DistanceKM  int
	DurationMin int
	PriceEUR    float64
	Image       string
	Routes      []Route
	FAQs        []FAQ
	LastMod     string // YYYY-MM-DD, zero means "today" at generation time
}

// Service is a transfer service landing page record. Main services rank
// higher in the sitemap than sub services.
type Service struct {
	Slug        string
	Name        string
	Type        string
	Description string
	Main        bool
	PriceEUR    float64
	Image       string
	Features    []string
	FAQs        []FAQ
	LastMod     string
}

// Post is a blog article rendered from markdown.
type Post struct {
	Slug      string
	Title     string
	Summary   string
	Author    string
	Tags      []string
	Image     string
	Published time.Time
	Updated   time.Time
	Body      template.HTML
}

// StaticPage is a fixed informational page entry.
type StaticPage struct {
	Path    string
	Title   string
	LastMod string
}

// Provider is the data source the sitemap builder and handlers consume. The
// methods take a context because real deployments may back them with remote
// fetches; the static provider ignores it beyond cancellation.
type Provider interface {
	Cities(ctx context.Context) ([]City, error)
	Services(ctx context.Context) ([]Service, error)
	Posts(ctx context.Context) ([]Post, error)
	StaticPages(ctx context.Context) ([]StaticPage, error)
}
