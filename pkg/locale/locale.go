package locale

import (
	"context"
	"strings"
)

// LangList contains all supported language codes.
var LangList = []string{EN, JA, VI}

// ParseLang parses and validates a language code.
// It returns the default language if the provided code is not supported.
// The input is case-insensitive and trimmed of whitespace.
func ParseLang(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))

	switch lang {
	case EN, "english":
		return EN
	case JA, "japanese", "日本語":
		return JA
	case VI, "vietnamese":
		return VI
	default:
		return DefaultLang
	}
}

// IsValidLang checks if a language code is supported.
func IsValidLang(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// GetLang retrieves the locale from context, returning the default if not found.
func GetLang(ctx context.Context) string {
	lang, ok := GetLocaleFromContext(ctx)
	if !ok {
		return DefaultLang
	}
	return lang
}

// SetLocaleToContext sets the locale in the context for use in handlers.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, Locale{}, lang)
}

// GetLocaleFromContext retrieves the locale from context.
func GetLocaleFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(Locale{}).(string)
	if !ok || lang == "" {
		return "", false
	}
	return lang, true
}

// Translate returns msg in lang, or msg unchanged when no translation exists.
func Translate(lang, msg string) string {
	if lang == DefaultLang {
		return msg
	}
	if tr, ok := messages[msg][lang]; ok {
		return tr
	}
	return msg
}
