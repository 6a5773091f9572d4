package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"en.json": `{"nav.home": "Home", "nav.services": "Services"}`,
		"de.json": `{"nav.home": "Startseite"}`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	b, err := Load(dir, "en", []string{"en", "de", "ru"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestLoadRequiresFallback(t *testing.T) {
	if _, err := Load(t.TempDir(), "en", []string{"en"}); err == nil {
		t.Fatal("expected error when fallback locale file is missing")
	}
}

func TestT(t *testing.T) {
	b := testBundle(t)
	if got := b.T("de", "nav.home"); got != "Startseite" {
		t.Fatalf("de nav.home = %q", got)
	}
	// missing in de falls back to en
	if got := b.T("de", "nav.services"); got != "Services" {
		t.Fatalf("de nav.services = %q", got)
	}
	// missing everywhere returns the key
	if got := b.T("en", "nav.unknown"); got != "nav.unknown" {
		t.Fatalf("unknown key = %q", got)
	}
	// ru has no file at all, fallback applies
	if got := b.T("ru", "nav.home"); got != "Home" {
		t.Fatalf("ru nav.home = %q", got)
	}
}

func TestSupportedOrderPreserved(t *testing.T) {
	b := testBundle(t)
	got := b.Supported()
	want := []string{"en", "de", "ru"}
	if len(got) != len(want) {
		t.Fatalf("supported = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("supported[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolve(t *testing.T) {
	b := testBundle(t)
	cases := map[string]string{
		"":                          "en",
		"de":                        "de",
		"de-DE,de;q=0.9,en;q=0.8":   "de",
		"fr-FR,fr;q=0.9":            "en",
		"ru;q=0.5,de;q=0.9":         "de",
		"en;q=0.7, ru;q=0.7":        "en", // tie keeps header order
		"tr,ru;q=0.4":               "ru",
		"de;q=not-a-number,ru":      "de", // unparseable q falls back to 1.0
	}
	for header, want := range cases {
		if got := b.Resolve(header); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", header, got, want)
		}
	}
}
