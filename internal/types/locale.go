package types

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Locale is the active display language. It drives UI text and the
// language generation requests are phrased in.
type Locale string

const (
	// LocaleArabic is the primary locale and the default.
	LocaleArabic Locale = "ar"
	// LocaleEnglish is the secondary locale.
	LocaleEnglish Locale = "en"
)

// DefaultLocale is used when nothing is configured.
const DefaultLocale = LocaleArabic

// ParseLocale accepts a locale code or language name, case-insensitively.
func ParseLocale(s string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ar", "arabic", "ar-sa", "ar_sa":
		return LocaleArabic, nil
	case "en", "english", "en-us", "en_us", "en-gb", "en_gb":
		return LocaleEnglish, nil
	}
	return "", errors.Newf("unsupported locale %q (valid: ar, en)", s)
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l == LocaleEnglish {
		return LocaleArabic
	}
	return LocaleEnglish
}

// LanguageName is the English name of the locale's language, used when
// phrasing generation requests.
func (l Locale) LanguageName() string {
	if l == LocaleEnglish {
		return "English"
	}
	return "Arabic"
}

// RTL reports whether the locale is written right to left.
func (l Locale) RTL() bool {
	return l == LocaleArabic
}

func (l Locale) String() string {
	if l == "" {
		return string(DefaultLocale)
	}
	return string(l)
}
