// Package i18n holds the UI dictionaries and language negotiation.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

var (
	supported = []string{"en", "hi", "es"}

	dictionaries = map[string]map[string]string{
		"en": english,
		"hi": hindi,
		"es": spanish,
	}

	// index order must follow supported
	matcher = language.NewMatcher([]language.Tag{
		language.English,
		language.Hindi,
		language.Spanish,
	})
)

// Languages returns the supported language codes, default first.
func Languages() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Supported reports whether lang has a dictionary.
func Supported(lang string) bool {
	_, ok := dictionaries[lang]
	return ok
}

// T translates key into lang. Unknown languages use the English table and
// unknown keys are returned unchanged.
func T(lang, key string) string {
	dict, ok := dictionaries[lang]
	if !ok {
		dict = dictionaries[DefaultLanguage]
	}
	if value, ok := dict[key]; ok {
		return value
	}
	return key
}

// Dictionary returns a copy of the table for lang.
func Dictionary(lang string) map[string]string {
	dict, ok := dictionaries[lang]
	if !ok {
		dict = dictionaries[DefaultLanguage]
	}
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out
}

// Match picks the best supported language for an Accept-Language header.
func Match(acceptLanguage string) string {
	header := strings.TrimSpace(acceptLanguage)
	if header == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return DefaultLanguage
	}
	return supported[index]
}
