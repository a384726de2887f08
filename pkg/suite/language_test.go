package suite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/pages"
)

// TestSwitchEnglishToJapanese starts on the English landing page, switches to
// Japanese, and verifies both the URL locale and the document language.
func TestSwitchEnglishToJapanese(t *testing.T) {
	session, home := openHome(t, pages.LanguageEN)

	require.NoError(t, home.SwitchLanguage(pages.LanguageJA))

	url := session.Page.URL()
	assert.Falsef(t, strings.Contains(url, "/en/"), "still on English locale: %s", url)

	lang, err := home.Language()
	require.NoError(t, err)
	assert.Equal(t, pages.LanguageJA, lang)
}

// TestSwitchJapaneseToEnglish starts on the Japanese landing page, switches
// to English, and verifies both the URL locale and the document language.
func TestSwitchJapaneseToEnglish(t *testing.T) {
	session, home := openHome(t, pages.LanguageJA)

	require.NoError(t, home.SwitchLanguage(pages.LanguageEN))

	url := session.Page.URL()
	assert.Containsf(t, url, "/en", "expected English locale in URL: %s", url)

	lang, err := home.Language()
	require.NoError(t, err)
	assert.Equal(t, pages.LanguageEN, lang)
}

// TestLandingPageLanguageMatchesLocale verifies each locale's landing page
// declares the matching document language without any switching.
func TestLandingPageLanguageMatchesLocale(t *testing.T) {
	for _, want := range []pages.Language{pages.LanguageEN, pages.LanguageJA} {
		t.Run(string(want), func(t *testing.T) {
			_, home := openHome(t, want)

			lang, err := home.Language()
			require.NoError(t, err)
			assert.Equal(t, want, lang)
		})
	}
}
