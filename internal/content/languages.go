package content

import "strings"

const (
	LangFrench  = "fr"
	LangEnglish = "en"
	LangArabic  = "ar"

	// DefaultLanguage is assumed when a request carries no ?language=.
	DefaultLanguage = LangFrench
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
	StatusCancelled = "cancelled"
)

// SupportedLanguages lists the language codes translations may use.
var SupportedLanguages = []string{LangFrench, LangEnglish, LangArabic}

func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// NormalizeLanguage returns lang (case-insensitive) when supported, the
// default otherwise.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(lang)
	if IsSupportedLanguage(lang) {
		return lang
	}
	return DefaultLanguage
}
