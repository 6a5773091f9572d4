package seo

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries every site-wide constant the SEO generators depend on.
// It is constructed once at startup and passed by value into the builders;
// nothing in this package reads package-level state.
type Config struct {
	SiteName           string `yaml:"site_name"`
	SiteURL            string `yaml:"site_url"`
	DefaultTitle       string `yaml:"default_title"`
	DefaultDescription string `yaml:"default_description"`
	DefaultKeywords    string `yaml:"default_keywords"`

	Company   Company           `yaml:"company"`
	Social    map[string]string `yaml:"social"`
	Languages Languages         `yaml:"languages"`

	Meta      MetaDefaults      `yaml:"meta"`
	OpenGraph OpenGraphDefaults `yaml:"open_graph"`
	Twitter   TwitterDefaults   `yaml:"twitter"`
	Schema    SchemaDefaults    `yaml:"schema"`
}

// Company identifies the business behind the site for LocalBusiness markup.
type Company struct {
	Name           string   `yaml:"name"`
	AlternateNames []string `yaml:"alternate_names"`
	Phone          string   `yaml:"phone"`
	Email          string   `yaml:"email"`
	Street         string   `yaml:"street"`
	City           string   `yaml:"city"`
	Region         string   `yaml:"region"`
	PostalCode     string   `yaml:"postal_code"`
	Country        string   `yaml:"country"`
	Latitude       float64  `yaml:"latitude"`
	Longitude      float64  `yaml:"longitude"`
}

// Languages lists the default locale plus every locale the site serves.
// Order of Supported is the order hreflang alternates are emitted in.
type Languages struct {
	Default   string   `yaml:"default"`
	Supported []string `yaml:"supported"`
}

// MetaDefaults are the always-emitted head tag values.
type MetaDefaults struct {
	Viewport  string `yaml:"viewport"`
	Charset   string `yaml:"charset"`
	Robots    string `yaml:"robots"`
	Googlebot string `yaml:"googlebot"`
	Author    string `yaml:"author"`
}

// OpenGraphDefaults seed the og:* block for pages that do not override them.
type OpenGraphDefaults struct {
	Type         string `yaml:"type"`
	Locale       string `yaml:"locale"`
	ImageWidth   int    `yaml:"image_width"`
	ImageHeight  int    `yaml:"image_height"`
	DefaultImage string `yaml:"default_image"`
}

// TwitterDefaults seed the twitter:* card block.
type TwitterDefaults struct {
	Card    string `yaml:"card"`
	Site    string `yaml:"site"`
	Creator string `yaml:"creator"`
}

// SchemaDefaults drive the JSON-LD organization markup.
type SchemaDefaults struct {
	OrganizationType   string   `yaml:"organization_type"`
	BusinessType       string   `yaml:"business_type"`
	PriceRange         string   `yaml:"price_range"`
	CurrenciesAccepted []string `yaml:"currencies_accepted"`
	PaymentAccepted    []string `yaml:"payment_accepted"`
}

// DefaultConfig returns the production configuration for antalyaride.com.
func DefaultConfig() Config {
	return Config{
		SiteName:           "Antalya Ride",
		SiteURL:            "https://antalyaride.com",
		DefaultTitle:       "Antalya Ride – Private Airport Transfers in Antalya",
		DefaultDescription: "Private airport transfers from Antalya Airport (AYT) to Kemer, Belek, Side, Alanya and every resort on the Turkish Riviera. Fixed prices, meet and greet, 24/7.",
		DefaultKeywords:    "antalya transfer, antalya airport transfer, AYT transfer, private transfer antalya",
		Company: Company{
			Name:           "Antalya Ride Transfer Services",
			AlternateNames: []string{"Antalya Ride", "AYT Ride"},
			Phone:          "+90-242-555-0184",
			Email:          "info@antalyaride.com",
			Street:         "Fener Mah. Tekelioglu Cad. 55",
			City:           "Antalya",
			Region:         "Antalya",
			PostalCode:     "07160",
			Country:        "TR",
			Latitude:       36.8969,
			Longitude:      30.7133,
		},
		Social: map[string]string{
			"facebook":  "https://www.facebook.com/antalyaride",
			"instagram": "https://www.instagram.com/antalyaride",
			"twitter":   "https://twitter.com/antalyaride",
		},
		Languages: Languages{
			Default:   "en",
			Supported: []string{"en", "de", "ru"},
		},
		Meta: MetaDefaults{
			Viewport:  "width=device-width, initial-scale=1",
			Charset:   "utf-8",
			Robots:    "index, follow, max-snippet:-1, max-image-preview:large, max-video-preview:-1",
			Googlebot: "index, follow",
			Author:    "Antalya Ride",
		},
		OpenGraph: OpenGraphDefaults{
			Type:         "website",
			Locale:       "en_US",
			ImageWidth:   1200,
			ImageHeight:  630,
			DefaultImage: "/assets/img/og-default.jpg",
		},
		Twitter: TwitterDefaults{
			Card:    "summary_large_image",
			Site:    "@antalyaride",
			Creator: "@antalyaride",
		},
		Schema: SchemaDefaults{
			OrganizationType:   "Organization",
			BusinessType:       "LocalBusiness",
			PriceRange:         "€€",
			CurrenciesAccepted: []string{"EUR", "USD", "TRY"},
			PaymentAccepted:    []string{"Cash", "Credit Card"},
		},
	}
}

// LoadConfig overlays a YAML file on top of DefaultConfig. Zero-value fields
// in the file keep their defaults, so partial files are fine.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read site config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal site config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overlays environment variables on the config. Only the fields
// that vary per deployment (staging vs production origin) are exposed.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("RIDE_SITE_URL"); v != "" {
		c.SiteURL = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv("RIDE_SITE_NAME"); v != "" {
		c.SiteName = v
	}
}

// Validate checks the invariants every generator relies on. A broken config
// is fatal at startup; there is no sensible fallback for a bad site URL.
func (c Config) Validate() error {
	u, err := url.Parse(c.SiteURL)
	if err != nil {
		return fmt.Errorf("site_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("site_url %q: scheme must be http or https", c.SiteURL)
	}
	if u.Host == "" {
		return fmt.Errorf("site_url %q: missing host", c.SiteURL)
	}
	if strings.HasSuffix(c.SiteURL, "/") {
		return fmt.Errorf("site_url %q: must not end with a slash", c.SiteURL)
	}
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}
	if c.Languages.Default == "" || len(c.Languages.Supported) == 0 {
		return fmt.Errorf("languages: default and supported are required")
	}
	return nil
}

// AbsoluteURL joins a path with the site origin. Already-absolute URLs pass
// through untouched.
func (c Config) AbsoluteURL(path string) string {
	if path == "" {
		return c.SiteURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.SiteURL + path
}
