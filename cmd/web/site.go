package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"antalyaride.com/web/internal/catalog"
	"antalyaride.com/web/internal/handlers"
	"antalyaride.com/web/internal/i18n"
	mw "antalyaride.com/web/internal/middleware"
	"antalyaride.com/web/internal/seo"
	"antalyaride.com/web/internal/sitemap"
)

// site groups the page handlers with their dependencies.
type site struct {
	cfg      seo.Config
	builder  *handlers.Builder
	provider catalog.Provider
	sitemaps *sitemap.Generator
	static   *catalog.Static
	log      zerolog.Logger
}

func newSite(cfg seo.Config, bundle *i18n.Bundle, provider catalog.Provider, log zerolog.Logger) *site {
	s := &site{
		cfg:      cfg,
		builder:  handlers.NewBuilder(cfg, bundle),
		provider: provider,
		sitemaps: sitemap.New(cfg, log),
		log:      log,
	}
	if st, ok := provider.(*catalog.Static); ok {
		s.static = st
	}
	return s
}

func (s *site) home(w http.ResponseWriter, r *http.Request) {
	render(w, "home", s.builder.Home(mw.Lang(r)))
}

func (s *site) city(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	city, ok := catalog.CityBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, "city", s.builder.CityPage(mw.Lang(r), city))
}

func (s *site) destinations(w http.ResponseWriter, r *http.Request) {
	cities, err := s.provider.Cities(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list cities")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "destinations", s.builder.Destinations(mw.Lang(r), cities))
}

func (s *site) services(w http.ResponseWriter, r *http.Request) {
	services, err := s.provider.Services(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list services")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "services", s.builder.ServicesIndex(mw.Lang(r), services))
}

func (s *site) service(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	svc, ok := catalog.ServiceBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, "service", s.builder.ServicePage(mw.Lang(r), svc))
}

func (s *site) blog(w http.ResponseWriter, r *http.Request) {
	posts, err := s.provider.Posts(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list posts")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "blog", s.builder.BlogIndex(mw.Lang(r), posts))
}

func (s *site) blogPost(w http.ResponseWriter, r *http.Request) {
	if s.static == nil {
		http.NotFound(w, r)
		return
	}
	post, err := s.static.PostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	render(w, "post", s.builder.BlogPost(mw.Lang(r), post))
}

func (s *site) staticPage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	pages, err := s.provider.StaticPages(r.Context())
	if err != nil {
		pages = catalog.DefaultStaticPages()
	}
	for _, pg := range pages {
		if pg.Path == path {
			render(w, "page", s.builder.StaticPage(mw.Lang(r), pg))
			return
		}
	}
	http.NotFound(w, r)
}

// sitemapXML serves the sitemap live; the degraded-section list travels in a
// response header so operators can spot partial output without log digging.
func (s *site) sitemapXML(w http.ResponseWriter, r *http.Request) {
	res := s.sitemaps.Build(r.Context(), s.provider)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if res.Degraded() {
		w.Header().Set("X-Sitemap-Degraded", strings.Join(res.Failed, ","))
	}
	_, _ = w.Write([]byte(res.XML))
}

func (s *site) robotsTXT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.sitemaps.Robots()))
}
