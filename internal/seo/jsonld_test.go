package seo

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC) }
}

func TestOrganizationDeterministic(t *testing.T) {
	s := NewSchema(DefaultConfig())
	a := s.Organization()
	b := s.Organization()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("organization schema not deterministic:\n%v\n%v", a, b)
	}
}

func TestOrganizationShape(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSchema(cfg)
	org := s.Organization()
	if org["@id"] != cfg.SiteURL+"/#organization" {
		t.Fatalf("@id = %v", org["@id"])
	}
	if org["@type"] != cfg.Schema.BusinessType {
		t.Fatalf("@type = %v", org["@type"])
	}
	area, ok := org["serviceArea"].(map[string]any)
	if !ok {
		t.Fatalf("serviceArea missing")
	}
	if area["geoRadius"] != 100000 {
		t.Fatalf("geoRadius = %v", area["geoRadius"])
	}
	hours, ok := org["openingHoursSpecification"].(map[string]any)
	if !ok {
		t.Fatalf("openingHoursSpecification missing")
	}
	days, _ := hours["dayOfWeek"].([]string)
	if len(days) != 7 {
		t.Fatalf("dayOfWeek = %v, want all seven days", days)
	}
}

func TestServiceProviderMatchesOrganizationID(t *testing.T) {
	s := NewSchema(DefaultConfig())
	svc, err := s.Service(ServiceInput{Name: "VIP Transfer", Description: "Business-class rides."})
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	provider, ok := svc["provider"].(map[string]any)
	if !ok {
		t.Fatalf("provider missing")
	}
	if provider["@id"] != s.Organization()["@id"] {
		t.Fatalf("provider @id %v != organization @id %v", provider["@id"], s.Organization()["@id"])
	}
}

func TestServiceOfferUsesInjectedClock(t *testing.T) {
	s := NewSchema(DefaultConfig()).WithClock(fixedClock())
	svc, err := s.Service(ServiceInput{Name: "VIP Transfer", Description: "d", Price: 55})
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	offer, ok := svc["offers"].(map[string]any)
	if !ok {
		t.Fatalf("offers missing")
	}
	if offer["validFrom"] != "2025-08-03" {
		t.Fatalf("validFrom = %v", offer["validFrom"])
	}
	if offer["priceCurrency"] != "EUR" {
		t.Fatalf("priceCurrency = %v", offer["priceCurrency"])
	}
}

func TestServiceMissingFields(t *testing.T) {
	s := NewSchema(DefaultConfig())
	if _, err := s.Service(ServiceInput{Description: "d"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for name, got %v", err)
	}
	if _, err := s.Service(ServiceInput{Name: "n"}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for description, got %v", err)
	}
}

func TestCityTransferDeparture(t *testing.T) {
	s := NewSchema(DefaultConfig())
	trip, err := s.CityTransfer("Kemer", 55, 60, 35)
	if err != nil {
		t.Fatalf("city transfer: %v", err)
	}
	dep, ok := trip["departureLocation"].(map[string]any)
	if !ok {
		t.Fatalf("departureLocation missing")
	}
	if dep["iataCode"] != "AYT" {
		t.Fatalf("iataCode = %v", dep["iataCode"])
	}
	arr, _ := trip["arrivalLocation"].(map[string]any)
	if arr["name"] != "Kemer" {
		t.Fatalf("arrival = %v", arr["name"])
	}
	if _, err := s.CityTransfer("", 0, 0, 0); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestFAQPreservesOrder(t *testing.T) {
	s := NewSchema(DefaultConfig())
	faq := s.FAQ([]FAQItem{
		{Question: "first", Answer: "a"},
		{Question: "second", Answer: "b"},
	})
	entities, ok := faq["mainEntity"].([]map[string]any)
	if !ok || len(entities) != 2 {
		t.Fatalf("mainEntity = %v", faq["mainEntity"])
	}
	if entities[0]["name"] != "first" || entities[1]["name"] != "second" {
		t.Fatalf("order not preserved: %v", entities)
	}
}

func TestBreadcrumbPositions(t *testing.T) {
	s := NewSchema(DefaultConfig())
	bc := s.Breadcrumbs([]BreadcrumbItem{
		{Name: "Home", URL: "/"},
		{Name: "Services", URL: "/services"},
	})
	el, ok := bc["itemListElement"].([]map[string]any)
	if !ok || len(el) != 2 {
		t.Fatalf("itemListElement = %v", bc["itemListElement"])
	}
	if el[0]["position"] != 1 || el[1]["position"] != 2 {
		t.Fatalf("positions = %v, %v", el[0]["position"], el[1]["position"])
	}
	if el[1]["name"] != "Services" {
		t.Fatalf("name = %v", el[1]["name"])
	}
}

func TestArticle(t *testing.T) {
	s := NewSchema(DefaultConfig())
	art, err := s.Article(ArticleInput{
		Headline:  "Arrival Guide",
		URL:       "/blog/guide",
		Author:    "Deniz Kaya",
		Published: "2025-06-18",
	})
	if err != nil {
		t.Fatalf("article: %v", err)
	}
	author, _ := art["author"].(map[string]any)
	if author["name"] != "Deniz Kaya" {
		t.Fatalf("author = %v", art["author"])
	}
	if art["datePublished"] != "2025-06-18" {
		t.Fatalf("datePublished = %v", art["datePublished"])
	}
	if _, ok := art["dateModified"]; ok {
		t.Fatalf("dateModified should be omitted when absent")
	}
	if _, err := s.Article(ArticleInput{}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestWebSiteSearchAction(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSchema(cfg)
	ws := s.WebSite()
	action, ok := ws["potentialAction"].(map[string]any)
	if !ok {
		t.Fatalf("potentialAction missing")
	}
	want := cfg.SiteURL + "/arama?q={search_term_string}"
	if action["target"] != want {
		t.Fatalf("target = %v, want %v", action["target"], want)
	}
}

func TestJSONCompactAndValid(t *testing.T) {
	s := NewSchema(DefaultConfig())
	out := JSON(s.Organization())
	if out == "" {
		t.Fatal("empty JSON output")
	}
	if strings.ContainsAny(out, "\n\t") {
		t.Fatalf("output not compact: %q", out)
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["@context"] != "https://schema.org" {
		t.Fatalf("@context = %v", parsed["@context"])
	}
}

func TestAggregateRating(t *testing.T) {
	s := NewSchema(DefaultConfig())
	r := s.AggregateRating(4.9, 1284)
	if r["ratingValue"] != 4.9 || r["reviewCount"] != 1284 {
		t.Fatalf("rating = %v", r)
	}
	item, _ := r["itemReviewed"].(map[string]any)
	if item["@id"] != s.OrganizationID() {
		t.Fatalf("itemReviewed @id = %v", item["@id"])
	}
}
