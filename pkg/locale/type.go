package locale

// Locale is a context key type for storing locale information.
type Locale struct{}

// catalog maps an English message to its translations.
type catalog map[string]map[string]string
