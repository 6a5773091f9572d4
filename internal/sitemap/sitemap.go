// Package sitemap renders sitemaps.org 0.9 documents (with the image
// extension), derives sitemap entries from catalog records, and builds the
// complete site sitemap with per-section degradation.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"antalyaride.com/web/internal/catalog"
	"antalyaride.com/web/internal/seo"
)

const (
	xmlnsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xmlnsImage   = "http://www.google.com/schemas/sitemap-image/1.1"
)

// Entry describes one page for the sitemap. URL is site-relative.
type Entry struct {
	URL        string
	LastMod    string // YYYY-MM-DD
	ChangeFreq string
	Priority   float64
	Images     []Image
}

// Image is one image extension entry attached to a page.
type Image struct {
	URL     string
	Title   string
	Caption string
}

// IndexRef points at one sharded sitemap file.
type IndexRef struct {
	Filename string
	LastMod  string
}

type urlSet struct {
	XMLName    xml.Name   `xml:"urlset"`
	Xmlns      string     `xml:"xmlns,attr"`
	XmlnsImage string     `xml:"xmlns:image,attr,omitempty"`
	URLs       []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string       `xml:"loc"`
	LastMod    string       `xml:"lastmod,omitempty"`
	ChangeFreq string       `xml:"changefreq,omitempty"`
	Priority   string       `xml:"priority,omitempty"`
	Images     []imageEntry `xml:"image:image,omitempty"`
}

type imageEntry struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title,omitempty"`
	Caption string `xml:"image:caption,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name   `xml:"sitemapindex"`
	Xmlns    string     `xml:"xmlns,attr"`
	Sitemaps []indexRef `xml:"sitemap"`
}

type indexRef struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Category keys the priority/changefreq policy table.
type Category string

const (
	CategoryHome        Category = "home"
	CategoryCity        Category = "city"
	CategoryServiceMain Category = "service-main"
	CategoryServiceSub  Category = "service-sub"
	CategoryBlog        Category = "blog"
	CategoryStatic      Category = "static"
)

// Policy is the sitemap weight for one page category.
type Policy struct {
	Priority   float64
	ChangeFreq string
}

// PolicyTable maps categories to their sitemap policies.
type PolicyTable map[Category]Policy

// DefaultPolicies is the canonical weighting: the home page leads, city
// landing pages carry the business, services follow, blog and legal trail.
func DefaultPolicies() PolicyTable {
	return PolicyTable{
		CategoryHome:        {Priority: 1.0, ChangeFreq: "daily"},
		CategoryCity:        {Priority: 0.9, ChangeFreq: "weekly"},
		CategoryServiceMain: {Priority: 0.8, ChangeFreq: "monthly"},
		CategoryServiceSub:  {Priority: 0.7, ChangeFreq: "monthly"},
		CategoryBlog:        {Priority: 0.6, ChangeFreq: "weekly"},
		CategoryStatic:      {Priority: 0.5, ChangeFreq: "monthly"},
	}
}

// BuildResult carries the rendered sitemap plus which sections, if any, were
// dropped because their data source failed. Callers (CI) decide whether a
// degraded sitemap fails the build.
type BuildResult struct {
	XML      string
	URLCount int
	Failed   []string
}

// Degraded reports whether any section was skipped.
func (r BuildResult) Degraded() bool { return len(r.Failed) > 0 }

// Generator renders sitemap documents. It holds no mutable state.
type Generator struct {
	cfg      seo.Config
	policies PolicyTable
	now      func() time.Time
	log      zerolog.Logger
}

// New builds a Generator with the default policy table and wall clock.
func New(cfg seo.Config, log zerolog.Logger) *Generator {
	return &Generator{cfg: cfg, policies: DefaultPolicies(), now: time.Now, log: log}
}

// WithPolicies overrides the policy table.
func (g *Generator) WithPolicies(p PolicyTable) *Generator {
	g.policies = p
	return g
}

// WithClock overrides the time source used for default lastmod values.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate renders the urlset document for entries, in input order. Priority
// is always formatted with exactly one decimal digit.
func (g *Generator) Generate(entries []Entry) (string, error) {
	us := urlSet{Xmlns: xmlnsSitemap, XmlnsImage: xmlnsImage}
	for _, e := range entries {
		u := urlEntry{
			Loc:        g.cfg.AbsoluteURL(e.URL),
			LastMod:    e.LastMod,
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
		for _, img := range e.Images {
			u.Images = append(u.Images, imageEntry{
				Loc:     g.cfg.AbsoluteURL(img.URL),
				Title:   img.Title,
				Caption: img.Caption,
			})
		}
		us.URLs = append(us.URLs, u)
	}
	out, err := xml.MarshalIndent(us, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sitemap: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

// Index renders a sitemapindex document for sharded sitemaps.
func (g *Generator) Index(refs []IndexRef) (string, error) {
	idx := sitemapIndex{Xmlns: xmlnsSitemap}
	for _, r := range refs {
		idx.Sitemaps = append(idx.Sitemaps, indexRef{
			Loc:     g.cfg.AbsoluteURL("/" + r.Filename),
			LastMod: r.LastMod,
		})
	}
	out, err := xml.MarshalIndent(idx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sitemap index: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

func (g *Generator) today() string {
	return g.now().Format("2006-01-02")
}

func (g *Generator) lastModOr(v string) string {
	if v != "" {
		return v
	}
	return g.today()
}

// CityEntries maps city records to sitemap entries with their hero images.
func (g *Generator) CityEntries(cities []catalog.City) []Entry {
	p := g.policies[CategoryCity]
	out := make([]Entry, 0, len(cities))
	for _, c := range cities {
		e := Entry{
			URL:        "/" + c.Slug,
			LastMod:    g.lastModOr(c.LastMod),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		}
		if c.Image != "" {
			e.Images = []Image{{
				URL:     c.Image,
				Title:   c.Name + " transfer",
				Caption: fmt.Sprintf("Private transfer from Antalya Airport to %s", c.Name),
			}}
		}
		out = append(out, e)
	}
	return out
}

// ServiceEntries maps service records to sitemap entries; main services get
// the higher priority tier.
func (g *Generator) ServiceEntries(services []catalog.Service) []Entry {
	out := make([]Entry, 0, len(services))
	for _, s := range services {
		p := g.policies[CategoryServiceSub]
		if s.Main {
			p = g.policies[CategoryServiceMain]
		}
		e := Entry{
			URL:        "/services/" + s.Slug,
			LastMod:    g.lastModOr(s.LastMod),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		}
		if s.Image != "" {
			e.Images = []Image{{URL: s.Image, Title: s.Name}}
		}
		out = append(out, e)
	}
	return out
}

// PostEntries maps blog posts to sitemap entries. Updated wins over
// Published for lastmod.
func (g *Generator) PostEntries(posts []catalog.Post) []Entry {
	p := g.policies[CategoryBlog]
	out := make([]Entry, 0, len(posts))
	for _, post := range posts {
		lastMod := ""
		switch {
		case !post.Updated.IsZero():
			lastMod = post.Updated.Format("2006-01-02")
		case !post.Published.IsZero():
			lastMod = post.Published.Format("2006-01-02")
		}
		out = append(out, Entry{
			URL:        "/blog/" + post.Slug,
			LastMod:    g.lastModOr(lastMod),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}
	return out
}

// StaticEntries maps static pages to sitemap entries. The home page gets the
// home policy; everything else the static policy.
func (g *Generator) StaticEntries(pages []catalog.StaticPage) []Entry {
	out := make([]Entry, 0, len(pages))
	for _, pg := range pages {
		p := g.policies[CategoryStatic]
		if pg.Path == "/" {
			p = g.policies[CategoryHome]
		}
		out = append(out, Entry{
			URL:        pg.Path,
			LastMod:    g.lastModOr(pg.LastMod),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}
	return out
}

// Build assembles the complete sitemap from the provider. The four fetches
// have no ordering dependency and run concurrently. A failing section is
// logged, recorded in the result and skipped; the sitemap always comes back
// valid with at least the static entries, so a flaky provider can never take
// down the build.
func (g *Generator) Build(ctx context.Context, src catalog.Provider) BuildResult {
	var (
		wg          sync.WaitGroup
		cities      []catalog.City
		services    []catalog.Service
		posts       []catalog.Post
		statics     []catalog.StaticPage
		citiesErr   error
		servicesErr error
		postsErr    error
		staticsErr  error
	)
	wg.Add(4)
	go func() { defer wg.Done(); cities, citiesErr = src.Cities(ctx) }()
	go func() { defer wg.Done(); services, servicesErr = src.Services(ctx) }()
	go func() { defer wg.Done(); posts, postsErr = src.Posts(ctx) }()
	go func() { defer wg.Done(); statics, staticsErr = src.StaticPages(ctx) }()
	wg.Wait()

	var res BuildResult
	fail := func(section string, err error) {
		g.log.Warn().Err(err).Str("section", section).Msg("sitemap section skipped")
		res.Failed = append(res.Failed, section)
	}

	if staticsErr != nil {
		fail("static", staticsErr)
		statics = catalog.DefaultStaticPages()
	}
	entries := g.StaticEntries(statics)
	if citiesErr != nil {
		fail("cities", citiesErr)
	} else {
		entries = append(entries, g.CityEntries(cities)...)
	}
	if servicesErr != nil {
		fail("services", servicesErr)
	} else {
		entries = append(entries, g.ServiceEntries(services)...)
	}
	if postsErr != nil {
		fail("blog", postsErr)
	} else {
		entries = append(entries, g.PostEntries(posts)...)
	}

	xmlDoc, err := g.Generate(entries)
	if err != nil {
		// Marshalling plain structs cannot realistically fail; keep the
		// guarantee anyway with a static-only document.
		fail("generate", err)
		xmlDoc, _ = g.Generate(g.StaticEntries(catalog.DefaultStaticPages()))
	}
	res.XML = xmlDoc
	res.URLCount = len(entries)
	return res
}
