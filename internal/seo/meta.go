package seo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPageData is returned when page data is missing its URL. Every
// other field degrades to a configured default instead of failing.
var ErrInvalidPageData = errors.New("seo: invalid page data")

// Page is the input for one logical page. Explicit Title/Description/Keywords
// win outright; otherwise the *Data fields are substituted into the template
// registered for PageType; otherwise the site defaults apply verbatim.
type Page struct {
	Title       string
	Description string
	Keywords    string

	URL   string // required; relative paths are joined with the site origin
	Image string
	Type  string // og:type, defaults to "website"

	PageType        PageType
	TitleData       string
	DescriptionData string
	KeywordsData    string

	PublishDate  string
	ModifiedDate string
	Author       string
	NoIndex      bool
}

// OpenGraph is the og:* block of a meta bundle.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Type        string
	SiteName    string
	Locale      string
	Images      []OGImage
}

// OGImage describes one og:image entry.
type OGImage struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// Twitter is the twitter:* card block.
type Twitter struct {
	Card        string
	Site        string
	Creator     string
	Title       string
	Description string
	Image       string
}

// Additional carries the remaining head tags. Author and the article
// timestamps are emitted only when set.
type Additional struct {
	Viewport      string
	Charset       string
	Googlebot     string
	Author        string
	PublishedTime string
	ModifiedTime  string
}

// Meta is the complete tag bundle for one page. Canonical and every OG and
// Twitter URL are absolute.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Additional  Additional
}

// Alternate is one hreflang link entry.
type Alternate struct {
	HrefLang string
	Href     string
}

// NamingPolicy converts URL slugs into human-readable page names. The
// business URL scheme appends "-transfer" to city slugs; the policy keeps
// that convention out of the generator logic.
type NamingPolicy struct {
	Separator   string // slug separator, replaced by spaces
	CitySuffix  string // slug suffix identifying city transfer pages
	ServicePath string // path prefix for service pages
}

// DefaultNaming matches the /{city}-transfer and /services/{slug} scheme.
func DefaultNaming() NamingPolicy {
	return NamingPolicy{Separator: "-", CitySuffix: "-transfer", ServicePath: "/services/"}
}

// DisplayName turns a slug into readable text: "kemer-transfer" → "kemer transfer".
func (n NamingPolicy) DisplayName(slug string) string {
	return strings.ReplaceAll(slug, n.Separator, " ")
}

// CityName strips the transfer suffix: "kemer-transfer" → "kemer".
func (n NamingPolicy) CityName(slug string) string {
	return n.DisplayName(strings.TrimSuffix(slug, n.CitySuffix))
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

// MetaBuilder produces Meta bundles from page data. It holds no mutable
// state; one builder serves all requests.
type MetaBuilder struct {
	cfg    Config
	tmpl   Templates
	naming NamingPolicy
}

// NewMetaBuilder wires a builder with the default templates and naming.
func NewMetaBuilder(cfg Config) *MetaBuilder {
	return &MetaBuilder{cfg: cfg, tmpl: DefaultTemplates(), naming: DefaultNaming()}
}

// WithTemplates overrides the template table.
func (b *MetaBuilder) WithTemplates(t Templates) *MetaBuilder {
	b.tmpl = t
	return b
}

// WithNaming overrides the slug naming policy.
func (b *MetaBuilder) WithNaming(n NamingPolicy) *MetaBuilder {
	b.naming = n
	return b
}

// Build assembles the full meta bundle for p.
func (b *MetaBuilder) Build(p Page) (Meta, error) {
	if p.URL == "" {
		return Meta{}, fmt.Errorf("%w: url is required", ErrInvalidPageData)
	}

	canonical := b.cfg.AbsoluteURL(p.URL)
	image := p.Image
	if image == "" {
		image = b.cfg.OpenGraph.DefaultImage
	}
	image = b.cfg.AbsoluteURL(image)

	title := b.resolve(p.Title, p.PageType, p.TitleData, func(t PageTemplate) string { return t.Title }, b.cfg.DefaultTitle)
	description := b.resolve(p.Description, p.PageType, p.DescriptionData, func(t PageTemplate) string { return t.Description }, b.cfg.DefaultDescription)
	keywords := b.resolveKeywords(p)

	robots := b.cfg.Meta.Robots
	if p.NoIndex {
		robots = "noindex, nofollow"
	}

	ogType := p.Type
	if ogType == "" {
		ogType = b.cfg.OpenGraph.Type
	}

	m := Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Canonical:   canonical,
		Robots:      robots,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			Type:        ogType,
			SiteName:    b.cfg.SiteName,
			Locale:      b.cfg.OpenGraph.Locale,
			Images: []OGImage{{
				URL:    image,
				Width:  b.cfg.OpenGraph.ImageWidth,
				Height: b.cfg.OpenGraph.ImageHeight,
				Alt:    title,
			}},
		},
		Twitter: Twitter{
			Card:        b.cfg.Twitter.Card,
			Site:        b.cfg.Twitter.Site,
			Creator:     b.cfg.Twitter.Creator,
			Title:       title,
			Description: description,
			Image:       image,
		},
		Additional: Additional{
			Viewport:      b.cfg.Meta.Viewport,
			Charset:       b.cfg.Meta.Charset,
			Googlebot:     b.cfg.Meta.Googlebot,
			Author:        p.Author,
			PublishedTime: p.PublishDate,
			ModifiedTime:  p.ModifiedDate,
		},
	}
	return m, nil
}

// resolve applies the explicit-value / template / default precedence.
func (b *MetaBuilder) resolve(explicit string, pt PageType, data string, pick func(PageTemplate) string, def string) string {
	if explicit != "" {
		return explicit
	}
	if tpl, ok := b.tmpl[pt]; ok && data != "" {
		return fill(pick(tpl), data)
	}
	return def
}

// resolveKeywords substitutes the keywords template (all %s occurrences get
// the same value) and appends the site default keyword list.
func (b *MetaBuilder) resolveKeywords(p Page) string {
	if p.Keywords != "" {
		return p.Keywords
	}
	if tpl, ok := b.tmpl[p.PageType]; ok && p.KeywordsData != "" {
		return fill(tpl.Keywords, p.KeywordsData) + ", " + b.cfg.DefaultKeywords
	}
	return b.cfg.DefaultKeywords
}

// HrefLangs emits one alternate per supported language for path, in the
// configured language order, with x-default always last. The default
// language carries no path prefix.
func (b *MetaBuilder) HrefLangs(path string) []Alternate {
	out := make([]Alternate, 0, len(b.cfg.Languages.Supported)+1)
	for _, lang := range b.cfg.Languages.Supported {
		href := b.cfg.AbsoluteURL(path)
		if lang != b.cfg.Languages.Default {
			href = b.cfg.AbsoluteURL("/" + lang + path)
		}
		out = append(out, Alternate{HrefLang: lang, Href: href})
	}
	out = append(out, Alternate{HrefLang: "x-default", Href: b.cfg.AbsoluteURL(path)})
	return out
}

// CityPage carries the optional overrides for a city landing page.
type CityPage struct {
	Description string
	Keywords    string
	Image       string
	DistanceKM  int
	DurationMin int
	PriceEUR    float64
}

// City builds the meta bundle for a city landing page from its slug. When no
// description is supplied one is synthesized from the transfer facts.
func (b *MetaBuilder) City(slug string, d CityPage) (Meta, error) {
	display := b.naming.DisplayName(slug)
	desc := d.Description
	if desc == "" && d.DistanceKM > 0 {
		desc = fmt.Sprintf("Private transfer from Antalya Airport to %s: %d km, about %d minutes, from €%.0f. Fixed price, meet and greet included.",
			capitalize(b.naming.CityName(slug)), d.DistanceKM, d.DurationMin, d.PriceEUR)
	}
	return b.Build(Page{
		URL:             "/" + slug,
		Image:           d.Image,
		PageType:        PageCity,
		TitleData:       display,
		Description:     desc,
		DescriptionData: display,
		KeywordsData:    display,
	})
}

// ServicePage carries the optional overrides for a service landing page.
type ServicePage struct {
	Slug        string
	Description string
	Image       string
}

// Service builds the meta bundle for a service landing page.
func (b *MetaBuilder) Service(name string, d ServicePage) (Meta, error) {
	slug := d.Slug
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(name, " ", b.naming.Separator))
	}
	return b.Build(Page{
		URL:             b.naming.ServicePath + slug,
		Image:           d.Image,
		PageType:        PageService,
		TitleData:       name,
		Description:     d.Description,
		DescriptionData: name,
		KeywordsData:    strings.ToLower(name),
	})
}
