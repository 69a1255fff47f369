package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/fakedata/provider"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		locale   string
		expected provider.Locale
		err      error
	}{
		"brazilian portuguese": {"pt_BR", provider.PtBR, nil},
		"bcp 47 separator":     {"pt-BR", provider.PtBR, nil},
		"american english":     {"en_US", provider.EnUS, nil},
		"language only":        {"en", provider.EnUS, nil},
		"surrounding spaces":   {" pt_BR ", provider.PtBR, nil},
		"portuguese only":      {"pt", provider.PtBR, nil},
		"other region pt":      {"pt_PT", "", provider.ErrUnsupportedLocale},
		"other region en":      {"en_GB", "", provider.ErrUnsupportedLocale},
		"no locale pack":       {"de_DE", "", provider.ErrUnsupportedLocale},
		"no locale pack es":    {"es_ES", "", provider.ErrUnsupportedLocale},
		"not a locale":         {"not a locale", "", provider.ErrUnsupportedLocale},
		"empty":                {"", "", provider.ErrUnsupportedLocale},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			locale, err := provider.ParseLocale(tt.locale)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.expected, locale)
		})
	}
}

func TestLocales(t *testing.T) {
	t.Parallel()

	for _, l := range provider.Locales() {
		parsed, err := provider.ParseLocale(string(l))
		assert.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}
