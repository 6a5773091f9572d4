package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"antalyaride.com/web/internal/catalog"
	"antalyaride.com/web/internal/i18n"
	mw "antalyaride.com/web/internal/middleware"
	"antalyaride.com/web/internal/seo"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	localesDir   = "locales"
	contentDir   = "content"
	// devMode reparses templates per request: RIDE_WEB_DEV or DEV
	devMode   bool
	tmplCache *template.Template
)

func newLogger(env string) zerolog.Logger {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return l
}

func main() {
	var (
		addr       string
		tmplPath   string
		pubPath    string
		configPath string
	)
	port := os.Getenv("RIDE_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&configPath, "config", "", "site config YAML (optional)")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	devMode = os.Getenv("RIDE_WEB_DEV") != "" || os.Getenv("DEV") != ""

	log := newLogger(os.Getenv("APP_ENV"))

	cfg := seo.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = seo.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load site config")
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid site config")
	}

	bundle, err := i18n.Load(localesDir, cfg.Languages.Default, cfg.Languages.Supported)
	if err != nil {
		log.Fatal().Err(err).Msg("load locales")
	}

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			log.Fatal().Err(err).Msg("parse templates")
		}
		tmplCache = tc
	}

	provider := catalog.NewStatic(contentDir)
	srv := newServer(cfg, bundle, provider, log)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", addr).Bool("dev", devMode).Msg("web listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("listen")
	}
}

// newServer wires the router. Split from main so tests can build the full
// stack against a fake provider.
func newServer(cfg seo.Config, bundle *i18n.Bundle, provider catalog.Provider, log zerolog.Logger) http.Handler {
	metrics := mw.NewMetrics(prometheus.DefaultRegisterer)
	site := newSite(cfg, bundle, provider, log)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only run behind a trusted proxy.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(log))
	r.Use(metrics.Handler)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(mw.Locale(bundle))
	r.Use(mw.VaryLocale)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", site.home)
	r.Get("/destinations", site.destinations)
	r.Get("/services", site.services)
	r.Get("/services/{slug}", site.service)
	r.Get("/blog", site.blog)
	r.Get("/blog/{slug}", site.blogPost)
	r.Get("/about", site.staticPage)
	r.Get("/contact", site.staticPage)
	r.Get("/privacy", site.staticPage)
	r.Get("/terms", site.staticPage)
	r.Get("/sitemap.xml", site.sitemapXML)
	r.Get("/robots.txt", site.robotsTXT)
	// city landing pages live at the root, e.g. /kemer-transfer
	r.Get("/{slug}", site.city)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		// json.Marshal escapes <, > and & so the payload is safe to inline
		"ldjson": func(s string) template.HTML {
			return template.HTML(`<script type="application/ld+json">` + s + `</script>`)
		},
	}
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the named page template. In dev mode templates are
// reparsed on each request.
func render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := tmplCache
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}
