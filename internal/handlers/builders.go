package handlers

import (
	"fmt"

	"antalyaride.com/web/internal/catalog"
	"antalyaride.com/web/internal/i18n"
	"antalyaride.com/web/internal/nav"
	"antalyaride.com/web/internal/seo"
)

// Builder assembles page view models. Meta/schema generation failures
// degrade to the configured defaults; a page always renders even if its SEO
// block is generic.
type Builder struct {
	Cfg       seo.Config
	Meta      *seo.MetaBuilder
	Schema    *seo.Schema
	I18n      *i18n.Bundle
	Analytics Analytics
}

// NewBuilder wires a Builder from the site config and locale bundle.
func NewBuilder(cfg seo.Config, bundle *i18n.Bundle) *Builder {
	return &Builder{
		Cfg:       cfg,
		Meta:      seo.NewMetaBuilder(cfg),
		Schema:    seo.NewSchema(cfg),
		I18n:      bundle,
		Analytics: LoadAnalyticsFromEnv(),
	}
}

// base fills the layout fields shared by every page and localizes the nav
// and breadcrumb labels.
func (b *Builder) base(lang, path string) PageData {
	items := nav.Build(path)
	for i := range items {
		items[i].Label = b.I18n.T(lang, items[i].LabelKey)
	}
	crumbs := nav.Breadcrumbs(path)
	for i := range crumbs {
		if crumbs[i].LabelKey != "" {
			crumbs[i].Label = b.I18n.T(lang, crumbs[i].LabelKey)
		}
	}
	return PageData{
		Lang:        lang,
		Path:        path,
		Analytics:   b.Analytics,
		Nav:         items,
		Breadcrumbs: crumbs,
	}
}

// seoData builds the head block from a meta bundle plus schemas, falling
// back to site defaults when meta generation failed.
func (b *Builder) seoData(m seo.Meta, err error, path string, schemas ...map[string]any) SEOData {
	if err != nil {
		m, _ = b.Meta.Build(seo.Page{URL: path})
	}
	out := SEOData{Meta: m, Alternates: b.Meta.HrefLangs(path)}
	for _, s := range schemas {
		if s != nil {
			out.JSONLD = append(out.JSONLD, seo.JSON(s))
		}
	}
	return out
}

// crumbSchema converts layout breadcrumbs into BreadcrumbList markup,
// resolving label keys through the locale bundle.
func (b *Builder) crumbSchema(lang string, crumbs []nav.Crumb) map[string]any {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = b.I18n.T(lang, c.LabelKey)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, URL: c.Href})
	}
	return b.Schema.Breadcrumbs(items)
}

// Home builds the landing page view model.
func (b *Builder) Home(lang string) PageData {
	pd := b.base(lang, "/")
	m, err := b.Meta.Build(seo.Page{
		URL:             "/",
		PageType:        seo.PageHome,
		TitleData:       "Antalya Airport Transfers",
		DescriptionData: "Fixed-price private transfers to Kemer, Belek, Side and Alanya.",
		KeywordsData:    "antalya airport transfer",
	})
	pd.SEO = b.seoData(m, err, "/",
		b.Schema.Organization(),
		b.Schema.WebSite(),
		b.Schema.AggregateRating(4.9, 1284),
	)
	pd.Title = pd.SEO.Meta.Title
	return pd
}

// CityPage builds a destination landing page view model.
func (b *Builder) CityPage(lang string, city catalog.City) PageData {
	path := "/" + city.Slug
	pd := b.base(lang, path)
	pd.City = &city

	m, err := b.Meta.City(city.Slug, seo.CityPage{
		Description: city.Description,
		Image:       city.Image,
		DistanceKM:  city.DistanceKM,
		DurationMin: city.DurationMin,
		PriceEUR:    city.PriceEUR,
	})

	schemas := []map[string]any{b.crumbSchema(lang, pd.Breadcrumbs)}
	if trip, terr := b.Schema.CityTransfer(city.Name, city.DistanceKM, city.DurationMin, city.PriceEUR); terr == nil {
		schemas = append(schemas, trip)
	}
	if len(city.FAQs) > 0 {
		schemas = append(schemas, b.Schema.FAQ(faqItems(city.FAQs)))
	}
	pd.SEO = b.seoData(m, err, path, schemas...)
	pd.Title = pd.SEO.Meta.Title
	return pd
}

// Destinations builds the city index page view model.
func (b *Builder) Destinations(lang string, cities []catalog.City) PageData {
	pd := b.base(lang, "/destinations")
	pd.Cities = cities
	m, err := b.Meta.Build(seo.Page{
		URL:             "/destinations",
		PageType:        seo.PageDefault,
		TitleData:       "Transfer Destinations",
		DescriptionData: "All destinations we serve from Antalya Airport with fixed transfer prices.",
		KeywordsData:    "antalya transfer destinations",
	})
	pd.SEO = b.seoData(m, err, "/destinations", b.crumbSchema(lang, pd.Breadcrumbs))
	pd.Title = pd.SEO.Meta.Title
	return pd
}

// ServicePage builds a service landing page view model.
func (b *Builder) ServicePage(lang string, svc catalog.Service) PageData {
	path := "/services/" + svc.Slug
	pd := b.base(lang, path)
	pd.Service = &svc

	m, err := b.Meta.Service(svc.Name, seo.ServicePage{
		Slug:        svc.Slug,
		Description: svc.Description,
		Image:       svc.Image,
	})

	schemas := []map[string]any{b.crumbSchema(lang, pd.Breadcrumbs)}
	if sc, serr := b.Schema.Service(seo.ServiceInput{
		Name:        svc.Name,
		Type:        svc.Type,
		Description: svc.Description,
		URL:         path,
		Price:       svc.PriceEUR,
		Features:    svc.Features,
	}); serr == nil {
		schemas = append(schemas, sc)
	}
	if len(svc.FAQs) > 0 {
		schemas = append(schemas, b.Schema.FAQ(faqItems(svc.FAQs)))
	}
	pd.SEO = b.seoData(m, err, path, schemas...)
	pd.Title = pd.SEO.Meta.Title
	return pd
}

// ServicesIndex builds the service index page view model.
func (b *Builder) ServicesIndex(lang string, services []catalog.Service) PageData {
	pd := b.base(lang, "/services")
	pd.Services = services
	m, err := b.Meta.Build(seo.Page{
		URL:             "/services",
		PageType:        seo.PageDefault,
		TitleData:       "Transfer Services",
		DescriptionData: "Private, VIP and group transfer services from Antalya Airport.",
		KeywordsData:    "antalya transfer services",
	})
	pd.SEO = b.seoData(m, err, "/services", b.crumbSchema(lang, pd.Breadcrumbs))
	pd.Title = pd.SEO.Meta.Title
	return pd
}

// BlogIndex builds the blog listing view model.
func (b *Builder) BlogIndex(lang string, posts []catalog.Post) PageData {
	pd := b.base(lang, "/blog")
	pd.Posts = posts
	m, err := b.Meta.Build(seo.Page{
		URL:             "/blog",
		PageType:        seo.PageDefault,
		TitleData:       "Travel Blog",
		DescriptionData: "Guides and tips for getting around Antalya and the Turkish Riviera.",
		KeywordsData:    "antalya travel blog",
	})
	pd.SEO = b.seoData(m, err, "/blog", b.crumbSchema(lang, pd.Breadcrumbs))
	pd.Title = pd.SEO.Meta.Title
	return pd
}

// BlogPost builds an article page view model.
func (b *Builder) BlogPost(lang string, post catalog.Post) PageData {
	path := "/blog/" + post.Slug
	pd := b.base(lang, path)
	pd.Post = &post

	published := ""
	if !post.Published.IsZero() {
		published = post.Published.Format("2006-01-02")
	}
	modified := ""
	if !post.Updated.IsZero() {
		modified = post.Updated.Format("2006-01-02")
	}
	m, err := b.Meta.Build(seo.Page{
		URL:             path,
		Image:           post.Image,
		Type:            "article",
		PageType:        seo.PageBlog,
		TitleData:       post.Title,
		DescriptionData: post.Summary,
		KeywordsData:    post.Title,
		Author:          post.Author,
		PublishDate:     published,
		ModifiedDate:    modified,
	})

	schemas := []map[string]any{b.crumbSchema(lang, pd.Breadcrumbs)}
	if art, aerr := b.Schema.Article(seo.ArticleInput{
		Headline:    post.Title,
		Description: post.Summary,
		URL:         path,
		Image:       post.Image,
		Author:      post.Author,
		Published:   published,
		Modified:    modified,
	}); aerr == nil {
		schemas = append(schemas, art)
	}
	pd.SEO = b.seoData(m, err, path, schemas...)
	pd.Title = pd.SEO.Meta.Title
	return pd
}

// StaticPage builds an informational page view model. Legal pages are kept
// out of the index-worthy template table and use plain defaults.
func (b *Builder) StaticPage(lang string, page catalog.StaticPage) PageData {
	pd := b.base(lang, page.Path)
	pd.Static = &page
	m, err := b.Meta.Build(seo.Page{
		URL:             page.Path,
		PageType:        seo.PageDefault,
		TitleData:       page.Title,
		DescriptionData: fmt.Sprintf("%s – %s", page.Title, b.Cfg.SiteName),
		KeywordsData:    page.Title,
	})
	pd.SEO = b.seoData(m, err, page.Path, b.crumbSchema(lang, pd.Breadcrumbs))
	pd.Title = pd.SEO.Meta.Title
	return pd
}

func faqItems(faqs []catalog.FAQ) []seo.FAQItem {
	out := make([]seo.FAQItem, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, seo.FAQItem{Question: f.Question, Answer: f.Answer})
	}
	return out
}
