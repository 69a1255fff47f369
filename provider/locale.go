package provider

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a locale pack of the Provider, in the form language_TERRITORY.
type Locale string

const (
	EnUS Locale = "en_US"
	PtBR Locale = "pt_BR"
)

// Locales is the list of all supported locales.
// The order matches supportedTags.
func Locales() []Locale {
	return []Locale{EnUS, PtBR}
}

//nolint:gochecknoglobals // the matcher is immutable and expensive to build
var (
	supportedTags = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLocale resolves a user given locale identifier, e.g. "pt_BR", "pt-BR" or "en",
// to a supported Locale. A language without a region resolves to its locale pack.
// An explicit region must match the pack's region, so "pt_PT" and "en_GB" return
// ErrUnsupportedLocale instead of data of another region.
func ParseLocale(locale string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err) //nolint:errorlint // keep the sentinel as the only wrapped error
	}

	_, index, confidence := matcher.Match(tag)
	if confidence < language.High || !sameRegion(tag, supportedTags[index]) {
		return "", fmt.Errorf("%w: %q, use one of: %s", ErrUnsupportedLocale, locale, localeNames())
	}

	return Locales()[index], nil
}

// sameRegion reports if tag has no explicit region or the same region as supported.
func sameRegion(tag, supported language.Tag) bool {
	region, confidence := tag.Region()
	if confidence != language.Exact {
		return true
	}

	want, _ := supported.Region()

	return region == want
}

func localeNames() string {
	locales := Locales()
	names := make([]string, 0, len(locales))

	for _, l := range locales {
		names = append(names, string(l))
	}

	return strings.Join(names, ", ")
}
