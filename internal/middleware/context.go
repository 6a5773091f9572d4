package middleware

import "context"

// context keys are unexported to avoid collisions
type ctxKey string

const ctxKeyLang ctxKey = "lang"

func withLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}
