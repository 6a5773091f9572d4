package seo

import (
	"errors"
	"strings"
	"testing"
)

func testBuilder() *MetaBuilder {
	return NewMetaBuilder(DefaultConfig())
}

func TestBuildSubstitutesTemplates(t *testing.T) {
	b := testBuilder()
	m, err := b.Build(Page{URL: "/x", PageType: PageCity, TitleData: "X"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := fill(DefaultTemplates()[PageCity].Title, "X")
	if m.Title != want {
		t.Fatalf("title = %q, want %q", m.Title, want)
	}
}

func TestBuildFallsBackToDefaults(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	m, err := b.Build(Page{URL: "/foo"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Title != cfg.DefaultTitle {
		t.Fatalf("title = %q, want default %q", m.Title, cfg.DefaultTitle)
	}
	if m.Description != cfg.DefaultDescription {
		t.Fatalf("description = %q, want default", m.Description)
	}
	if m.Keywords != cfg.DefaultKeywords {
		t.Fatalf("keywords = %q, want default", m.Keywords)
	}
}

func TestBuildExplicitFieldsWin(t *testing.T) {
	b := testBuilder()
	m, err := b.Build(Page{URL: "/x", Title: "Explicit", PageType: PageCity, TitleData: "ignored"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Title != "Explicit" {
		t.Fatalf("title = %q, want Explicit", m.Title)
	}
}

func TestBuildRequiresURL(t *testing.T) {
	b := testBuilder()
	if _, err := b.Build(Page{Title: "no url"}); !errors.Is(err, ErrInvalidPageData) {
		t.Fatalf("expected ErrInvalidPageData, got %v", err)
	}
}

func TestBuildAbsoluteURLs(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	m, err := b.Build(Page{URL: "/kemer-transfer", Image: "/assets/img/kemer.jpg"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for name, u := range map[string]string{
		"canonical":     m.Canonical,
		"og url":        m.OG.URL,
		"og image":      m.OG.Images[0].URL,
		"twitter image": m.Twitter.Image,
	} {
		if !strings.HasPrefix(u, cfg.SiteURL) {
			t.Fatalf("%s = %q, want prefix %q", name, u, cfg.SiteURL)
		}
	}

	// already-absolute URLs pass through
	m, err = b.Build(Page{URL: "https://example.org/page"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.Canonical != "https://example.org/page" {
		t.Fatalf("canonical = %q", m.Canonical)
	}
}

func TestBuildDefaultImage(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	m, err := b.Build(Page{URL: "/x"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := cfg.SiteURL + cfg.OpenGraph.DefaultImage
	if m.OG.Images[0].URL != want {
		t.Fatalf("og image = %q, want %q", m.OG.Images[0].URL, want)
	}
}

func TestKeywordsTemplateAppendsSiteDefaults(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	m, err := b.Build(Page{URL: "/x", PageType: PageCity, KeywordsData: "kemer transfer"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := fill(DefaultTemplates()[PageCity].Keywords, "kemer transfer") + ", " + cfg.DefaultKeywords
	if m.Keywords != want {
		t.Fatalf("keywords = %q, want %q", m.Keywords, want)
	}
	// every %s in the keywords template gets the same value
	if strings.Contains(m.Keywords, "%s") {
		t.Fatalf("unreplaced placeholder in %q", m.Keywords)
	}
}

func TestRobots(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	m, _ := b.Build(Page{URL: "/x"})
	if m.Robots != cfg.Meta.Robots {
		t.Fatalf("robots = %q", m.Robots)
	}
	m, _ = b.Build(Page{URL: "/x", NoIndex: true})
	if m.Robots != "noindex, nofollow" {
		t.Fatalf("robots = %q, want noindex, nofollow", m.Robots)
	}
}

func TestOGImageAltIsTitle(t *testing.T) {
	b := testBuilder()
	m, _ := b.Build(Page{URL: "/x", Title: "Alt Source"})
	if len(m.OG.Images) != 1 {
		t.Fatalf("expected exactly one og image, got %d", len(m.OG.Images))
	}
	if m.OG.Images[0].Alt != "Alt Source" {
		t.Fatalf("alt = %q", m.OG.Images[0].Alt)
	}
}

func TestArticleFieldsOnlyWhenPresent(t *testing.T) {
	b := testBuilder()
	m, _ := b.Build(Page{URL: "/blog/x"})
	if m.Additional.Author != "" || m.Additional.PublishedTime != "" || m.Additional.ModifiedTime != "" {
		t.Fatalf("article fields should be empty: %+v", m.Additional)
	}
	m, _ = b.Build(Page{URL: "/blog/x", Author: "Deniz", PublishDate: "2025-06-18", ModifiedDate: "2025-07-02"})
	if m.Additional.Author != "Deniz" || m.Additional.PublishedTime != "2025-06-18" || m.Additional.ModifiedTime != "2025-07-02" {
		t.Fatalf("article fields not propagated: %+v", m.Additional)
	}
}

func TestHrefLangs(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	alts := b.HrefLangs("/foo")
	if len(alts) != len(cfg.Languages.Supported)+1 {
		t.Fatalf("got %d alternates, want %d", len(alts), len(cfg.Languages.Supported)+1)
	}
	last := alts[len(alts)-1]
	if last.HrefLang != "x-default" {
		t.Fatalf("last alternate = %q, want x-default", last.HrefLang)
	}
	if last.Href != cfg.SiteURL+"/foo" {
		t.Fatalf("x-default href = %q", last.Href)
	}
	for _, a := range alts {
		switch a.HrefLang {
		case cfg.Languages.Default, "x-default":
			if a.Href != cfg.SiteURL+"/foo" {
				t.Fatalf("default lang href = %q, want no prefix", a.Href)
			}
		case "de":
			if a.Href != cfg.SiteURL+"/de/foo" {
				t.Fatalf("de href = %q", a.Href)
			}
		}
	}
}

func TestCityMeta(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	m, err := b.City("kemer-transfer", CityPage{})
	if err != nil {
		t.Fatalf("city: %v", err)
	}
	want := fill(DefaultTemplates()[PageCity].Title, "kemer transfer")
	if m.Title != want {
		t.Fatalf("title = %q, want %q", m.Title, want)
	}
	if m.Canonical != cfg.SiteURL+"/kemer-transfer" {
		t.Fatalf("canonical = %q", m.Canonical)
	}
}

func TestCityMetaSynthesizedDescription(t *testing.T) {
	b := testBuilder()
	m, err := b.City("kemer-transfer", CityPage{DistanceKM: 55, DurationMin: 60, PriceEUR: 35})
	if err != nil {
		t.Fatalf("city: %v", err)
	}
	for _, want := range []string{"to Kemer", "55 km", "60 minutes", "€35"} {
		if !strings.Contains(m.Description, want) {
			t.Fatalf("description %q missing %q", m.Description, want)
		}
	}
}

func TestServiceMeta(t *testing.T) {
	cfg := DefaultConfig()
	b := NewMetaBuilder(cfg)
	m, err := b.Service("VIP Transfer", ServicePage{Slug: "vip-transfer"})
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	want := fill(DefaultTemplates()[PageService].Title, "VIP Transfer")
	if m.Title != want {
		t.Fatalf("title = %q, want %q", m.Title, want)
	}
	if m.Canonical != cfg.SiteURL+"/services/vip-transfer" {
		t.Fatalf("canonical = %q", m.Canonical)
	}
}

func TestNamingPolicy(t *testing.T) {
	n := DefaultNaming()
	if got := n.DisplayName("kemer-transfer"); got != "kemer transfer" {
		t.Fatalf("DisplayName = %q", got)
	}
	if got := n.CityName("kemer-transfer"); got != "kemer" {
		t.Fatalf("CityName = %q", got)
	}
}
