package middleware

import (
	"net/http"
	"strings"

	"antalyaride.com/web/internal/i18n"
)

// Locale resolves the preferred language: the `hl` query parameter wins and
// is persisted in a cookie, then the cookie, then Accept-Language.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			lang := ""
			if q := r.URL.Query().Get("hl"); q != "" {
				lang = strings.ToLower(q)
				http.SetCookie(w, &http.Cookie{Name: "hl", Value: lang, Path: "/"})
			} else if c, err := r.Cookie("hl"); err == nil && c.Value != "" {
				lang = strings.ToLower(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			if !contains(bundle.Supported(), lang) {
				lang = bundle.Fallback()
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(withLang(ctx, lang)))
		})
	}
}

// Lang returns the resolved language for the request, defaulting to "en".
func Lang(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	return "en"
}

// VaryLocale sets the Vary header for Accept-Language on dynamic responses.
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
