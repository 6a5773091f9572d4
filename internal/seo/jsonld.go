package seo

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrMissingField is returned when a schema input lacks a required field.
// Emitting a partial schema would hand crawlers invalid JSON-LD, so builders
// fail instead.
var ErrMissingField = errors.New("seo: missing required field")

// JSON marshals v to a compact JSON string ready for a ld+json script tag.
// It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Schema builds JSON-LD structured data objects. The clock is injected so
// time-stamped output (Offer validFrom) stays reproducible in tests.
type Schema struct {
	cfg Config
	now func() time.Time
}

// NewSchema returns a builder using the wall clock.
func NewSchema(cfg Config) *Schema {
	return &Schema{cfg: cfg, now: time.Now}
}

// WithClock overrides the time source.
func (s *Schema) WithClock(now func() time.Time) *Schema {
	s.now = now
	return s
}

// OrganizationID is the stable @id every other schema uses to reference the
// business, so consumers resolve one node instead of re-embedded copies.
func (s *Schema) OrganizationID() string {
	return s.cfg.SiteURL + "/#organization"
}

func (s *Schema) organizationRef() map[string]any {
	return map[string]any{"@id": s.OrganizationID()}
}

// Organization returns the LocalBusiness schema for the company. Output is a
// pure function of the config.
func (s *Schema) Organization() map[string]any {
	c := s.cfg.Company
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      s.cfg.Schema.BusinessType,
		"@id":        s.OrganizationID(),
		"name":       c.Name,
		"url":        s.cfg.SiteURL,
		"logo":       s.cfg.AbsoluteURL("/assets/img/logo.png"),
		"image":      s.cfg.AbsoluteURL(s.cfg.OpenGraph.DefaultImage),
		"telephone":  c.Phone,
		"email":      c.Email,
		"priceRange": s.cfg.Schema.PriceRange,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   c.Street,
			"addressLocality": c.City,
			"addressRegion":   c.Region,
			"postalCode":      c.PostalCode,
			"addressCountry":  c.Country,
		},
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  c.Latitude,
			"longitude": c.Longitude,
		},
		// Airport transfers run around the clock.
		"openingHoursSpecification": map[string]any{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			"opens":     "00:00",
			"closes":    "23:59",
		},
		"serviceArea": map[string]any{
			"@type": "GeoCircle",
			"geoMidpoint": map[string]any{
				"@type":     "GeoCoordinates",
				"latitude":  c.Latitude,
				"longitude": c.Longitude,
			},
			"geoRadius": 100000,
		},
		"areaServed":         []string{"Antalya", "Kemer", "Belek", "Side", "Alanya", "Lara"},
		"currenciesAccepted": s.cfg.Schema.CurrenciesAccepted,
		"paymentAccepted":    s.cfg.Schema.PaymentAccepted,
	}
	if len(c.AlternateNames) > 0 {
		m["alternateName"] = c.AlternateNames
	}
	if len(s.cfg.Social) > 0 {
		same := make([]string, 0, len(s.cfg.Social))
		for _, u := range s.cfg.Social {
			same = append(same, u)
		}
		sort.Strings(same)
		m["sameAs"] = same
	}
	return m
}

// ServiceInput describes one offered service. Name and Description are
// required; a positive Price adds an EUR Offer.
type ServiceInput struct {
	Name        string
	Type        string
	Description string
	URL         string
	Price       float64
	AreaServed  []string
	Features    []string
}

// Service returns a Service schema referencing the organization as provider.
func (s *Schema) Service(in ServiceInput) (map[string]any, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: service name", ErrMissingField)
	}
	if in.Description == "" {
		return nil, fmt.Errorf("%w: service description", ErrMissingField)
	}
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"@id":         s.cfg.AbsoluteURL(in.URL) + "#service",
		"name":        in.Name,
		"description": in.Description,
		"provider":    s.organizationRef(),
	}
	if in.Type != "" {
		m["serviceType"] = in.Type
	}
	if in.URL != "" {
		m["url"] = s.cfg.AbsoluteURL(in.URL)
	}
	if len(in.AreaServed) > 0 {
		m["areaServed"] = in.AreaServed
	}
	if len(in.Features) > 0 {
		features := make([]map[string]any, 0, len(in.Features))
		for _, f := range in.Features {
			features = append(features, map[string]any{"@type": "PropertyValue", "name": f})
		}
		m["additionalProperty"] = features
	}
	if in.Price > 0 {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         in.Price,
			"priceCurrency": "EUR",
			"availability":  "https://schema.org/InStock",
			"validFrom":     s.now().Format("2006-01-02"),
		}
	}
	return m, nil
}

// CityTransfer returns a TripSegment schema for an airport-to-city route.
// Departure is fixed: every trip starts at Antalya Airport.
func (s *Schema) CityTransfer(cityName string, distanceKM, durationMin int, priceEUR float64) (map[string]any, error) {
	if cityName == "" {
		return nil, fmt.Errorf("%w: city name", ErrMissingField)
	}
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "TripSegment",
		"@id":      s.cfg.SiteURL + "/#trip-" + cityName,
		"name":     fmt.Sprintf("Antalya Airport to %s transfer", cityName),
		"departureLocation": map[string]any{
			"@type":    "Airport",
			"name":     "Antalya Airport",
			"iataCode": "AYT",
		},
		"arrivalLocation": map[string]any{
			"@type": "City",
			"name":  cityName,
		},
		"provider": s.organizationRef(),
	}
	if distanceKM > 0 {
		m["distance"] = fmt.Sprintf("%d km", distanceKM)
	}
	if durationMin > 0 {
		m["duration"] = fmt.Sprintf("PT%dM", durationMin)
	}
	if priceEUR > 0 {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         priceEUR,
			"priceCurrency": "EUR",
			"availability":  "https://schema.org/InStock",
		}
	}
	return m, nil
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string
	Answer   string
}

// FAQ returns an FAQPage schema preserving input order.
func (s *Schema) FAQ(items []FAQItem) map[string]any {
	entities := make([]map[string]any, 0, len(items))
	for _, it := range items {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// BreadcrumbItem maps a crumb name to its absolute or site-relative URL.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// Breadcrumbs returns a BreadcrumbList. Callers supply crumbs in
// root-to-leaf order; position is the 1-based input index.
func (s *Schema) Breadcrumbs(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     s.cfg.AbsoluteURL(it.URL),
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// ArticleInput describes a blog article for Article markup.
type ArticleInput struct {
	Headline    string
	Description string
	URL         string
	Image       string
	Author      string
	Published   string
	Modified    string
}

// Article returns an Article schema with the organization as publisher.
func (s *Schema) Article(in ArticleInput) (map[string]any, error) {
	if in.Headline == "" {
		return nil, fmt.Errorf("%w: article headline", ErrMissingField)
	}
	m := map[string]any{
		"@context":  "https://schema.org",
		"@type":     "Article",
		"headline":  in.Headline,
		"publisher": s.organizationRef(),
	}
	if in.Description != "" {
		m["description"] = in.Description
	}
	if in.URL != "" {
		m["url"] = s.cfg.AbsoluteURL(in.URL)
		m["mainEntityOfPage"] = s.cfg.AbsoluteURL(in.URL)
	}
	if in.Image != "" {
		m["image"] = s.cfg.AbsoluteURL(in.Image)
	}
	if in.Author != "" {
		m["author"] = map[string]any{"@type": "Person", "name": in.Author}
	}
	if in.Published != "" {
		m["datePublished"] = in.Published
	}
	if in.Modified != "" {
		m["dateModified"] = in.Modified
	}
	return m, nil
}

// AggregateRating returns rating markup attached to the organization.
func (s *Schema) AggregateRating(value float64, count int) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "AggregateRating",
		"itemReviewed": map[string]any{
			"@type": s.cfg.Schema.BusinessType,
			"@id":   s.OrganizationID(),
			"name":  s.cfg.Company.Name,
		},
		"ratingValue": value,
		"reviewCount": count,
		"bestRating":  5,
		"worstRating": 1,
	}
}

// WebSite returns the WebSite schema with the site search action.
func (s *Schema) WebSite() map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"@id":      s.cfg.SiteURL + "/#website",
		"name":     s.cfg.SiteName,
		"url":      s.cfg.SiteURL,
		"publisher": s.organizationRef(),
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      s.cfg.SiteURL + "/arama?q={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
}
