package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/citadels-live/citadels-go/citadels"
)

func TestLocaleMatching(t *testing.T) {
	require.Equal(t, "en", New("en").Locale())
	require.Equal(t, "ru", New("ru").Locale())
	require.Equal(t, "ru", New("ru-RU").Locale())
	require.Equal(t, "en", New("en-US").Locale())
	// Unsupported locales fall back to the default.
	require.Equal(t, "en", New("fr").Locale())
	require.Equal(t, "en", New("").Locale())
	require.Equal(t, "en", New("not a tag").Locale())
}

func TestTranslationAndInterpolation(t *testing.T) {
	en := New("en")
	ru := New("ru")

	require.Equal(t, "Castle", en.T("Castle", nil))
	require.Equal(t, "Замок", ru.T("Castle", nil))

	got := en.T("ev_district_built", map[string]any{
		"player": "Alice", "district": "Castle", "cost": 3,
	})
	require.Equal(t, "Alice built Castle (3g)", got)
}

func TestJSONNumbersPrintAsIntegers(t *testing.T) {
	en := New("en")
	// Decoded json numbers arrive as float64.
	got := en.T("ev_district_built", map[string]any{
		"player": "Alice", "district": "Castle", "cost": float64(3),
	})
	require.Equal(t, "Alice built Castle (3g)", got)
}

func TestUnknownKeyFallsBackToRawKey(t *testing.T) {
	require.Equal(t, "no_such_key", New("ru").T("no_such_key", nil))
}

func TestRussianFallsBackToEnglishCatalog(t *testing.T) {
	en := New("en")
	ru := New("ru")
	// Every key present in one catalog resolves in the other, either
	// directly or through the English fallback.
	for key := range catalogs["en"] {
		require.NotEmpty(t, en.T(key, nil), key)
		require.NotEmpty(t, ru.T(key, nil), key)
	}
}

func TestColorClass(t *testing.T) {
	b := New("en")
	require.Equal(t, "color-noble", b.ColorClass(citadels.ColorNoble))
	require.Equal(t, "color-religious", b.ColorClass(citadels.ColorReligious))
	require.Equal(t, "color-trade", b.ColorClass(citadels.ColorTrade))
	require.Equal(t, "color-military", b.ColorClass(citadels.ColorMilitary))
	require.Equal(t, "color-special", b.ColorClass(citadels.ColorSpecial))
	require.Equal(t, "", b.ColorClass(citadels.ColorNone))
}

func TestDistrictEffect(t *testing.T) {
	b := New("en")
	require.NotEmpty(t, b.DistrictEffect("Laboratory"))
	require.Empty(t, b.DistrictEffect("Castle"))
}
