package seo

import "testing"

func TestDefaultTemplatesValid(t *testing.T) {
	if err := DefaultTemplates().Validate(); err != nil {
		t.Fatalf("default templates invalid: %v", err)
	}
}

func TestTemplatesValidateRejectsMissingPlaceholder(t *testing.T) {
	tmpl := Templates{
		PageCity: {Title: "no placeholder", Description: "%s", Keywords: "%s"},
	}
	if err := tmpl.Validate(); err == nil {
		t.Fatal("expected error for template without placeholder")
	}
}

func TestFillReplacesEveryPlaceholder(t *testing.T) {
	got := fill("%s, antalya airport %s, AYT %s", "kemer transfer")
	want := "kemer transfer, antalya airport kemer transfer, AYT kemer transfer"
	if got != want {
		t.Fatalf("fill = %q, want %q", got, want)
	}
}
