package alpenpass

import "strings"

// BaseURL is the site all pass pages are served from.
const BaseURL = "https://alpen-paesse.ch"

// PassPathMarker is the path segment shared by all pass detail links.
const PassPathMarker = "/alpenpaesse/"

// Language selects which localized overview page is scraped.
type Language string

// Supported languages.
const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
)

// ParseLanguage validates a language code. Case is ignored.
// Returns EINVALID for anything but "en" or "de".
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case LanguageEnglish, LanguageGerman:
		return l, nil
	}
	return "", Errorf(EINVALID, "language must be \"en\" or \"de\", got %q", s)
}

// PageURL returns the overview page listing all passes.
func (l Language) PageURL() string {
	return BaseURL + "/" + string(l) + "/"
}

// DisplayName returns the language name in that language.
func (l Language) DisplayName() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageGerman:
		return "Deutsch"
	}
	return string(l)
}
