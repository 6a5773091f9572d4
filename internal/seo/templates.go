package seo

import (
	"fmt"
	"strings"
)

// PageType selects which title/description/keywords templates apply.
type PageType string

const (
	PageHome    PageType = "home"
	PageCity    PageType = "city"
	PageService PageType = "service"
	PageBlog    PageType = "blog"
	PageDefault PageType = "default"
)

// PageTemplate holds the %s-placeholder templates for one page type.
// Substitution is positional: every %s is replaced with the same value.
type PageTemplate struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
}

// Templates maps page types to their templates.
type Templates map[PageType]PageTemplate

// DefaultTemplates returns the template table for antalyaride.com.
func DefaultTemplates() Templates {
	return Templates{
		PageHome: {
			Title:       "%s | Antalya Airport Transfers – Antalya Ride",
			Description: "%s Book private transfers from Antalya Airport with fixed prices and free cancellation.",
			Keywords:    "%s, antalya airport, private transfer",
		},
		PageCity: {
			Title:       "%s | Private Antalya Airport Transfer – Antalya Ride",
			Description: "Book your %s from Antalya Airport (AYT). Fixed price, meet and greet, door-to-door private transfer.",
			Keywords:    "%s, antalya airport %s, AYT %s",
		},
		PageService: {
			Title:       "%s | Antalya Ride",
			Description: "%s – professional ground transportation in Antalya with licensed drivers and fixed prices.",
			Keywords:    "%s, antalya %s",
		},
		PageBlog: {
			Title:       "%s | Antalya Ride Blog",
			Description: "%s",
			Keywords:    "%s, antalya travel",
		},
		PageDefault: {
			Title:       "%s | Antalya Ride",
			Description: "%s",
			Keywords:    "%s",
		},
	}
}

// Validate ensures every registered template carries at least one placeholder.
func (t Templates) Validate() error {
	for pt, tpl := range t {
		for name, s := range map[string]string{"title": tpl.Title, "description": tpl.Description, "keywords": tpl.Keywords} {
			if !strings.Contains(s, "%s") {
				return fmt.Errorf("template %s/%s: missing %%s placeholder", pt, name)
			}
		}
	}
	return nil
}

// fill replaces every %s occurrence with v.
func fill(template, v string) string {
	return strings.ReplaceAll(template, "%s", v)
}
