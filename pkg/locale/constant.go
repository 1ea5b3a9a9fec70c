package locale

// Supported languages
const (
	EN = "en" // English
	JA = "ja" // Japanese
	VI = "vi" // Vietnamese
)

// DefaultLang is the default language used when no valid locale is provided.
const DefaultLang = EN

// HeaderName is the request header carrying the preferred language.
const HeaderName = "lang"
