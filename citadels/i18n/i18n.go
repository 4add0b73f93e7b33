// Package i18n supplies the localization collaborator for the session layer:
// a pure key lookup with named-parameter interpolation, and the district
// color to presentational class mapping.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/citadels-live/citadels-go/citadels"
)

// defaultLocale is the fallback chain's last dictionary before the raw key.
const defaultLocale = "en"

var supported = []language.Tag{
	language.English,
	language.Russian,
}

var localeNames = []string{"en", "ru"}

var matcher = language.NewMatcher(supported)

// Bundle is a locale-bound catalog. Stateless after construction.
type Bundle struct {
	locale string
}

// New matches the requested locale (a BCP 47 tag such as "ru-RU") against
// the supported catalogs, defaulting to English.
func New(locale string) *Bundle {
	_, index := language.MatchStrings(matcher, locale)
	return &Bundle{locale: localeNames[index]}
}

// Locale returns the matched catalog name.
func (b *Bundle) Locale() string {
	return b.locale
}

// T looks up key in the bound catalog, falling back to the default locale
// and then to the raw key, and interpolates {param} placeholders.
func (b *Bundle) T(key string, params map[string]any) string {
	str, ok := catalogs[b.locale][key]
	if !ok {
		str, ok = catalogs[defaultLocale][key]
	}
	if !ok {
		str = key
	}
	for k, v := range params {
		str = strings.ReplaceAll(str, "{"+k+"}", formatParam(v))
	}
	return str
}

// ColorClass maps a district color to its presentational class.
func (b *Bundle) ColorClass(c citadels.DistrictColor) string {
	switch c {
	case citadels.ColorNoble:
		return "color-noble"
	case citadels.ColorReligious:
		return "color-religious"
	case citadels.ColorTrade:
		return "color-trade"
	case citadels.ColorMilitary:
		return "color-military"
	case citadels.ColorSpecial:
		return "color-special"
	default:
		return ""
	}
}

// DistrictEffect returns the localized effect line for a district, or ""
// when the district has none.
func (b *Bundle) DistrictEffect(name string) string {
	key := "effect_" + name
	if s, ok := catalogs[b.locale][key]; ok {
		return s
	}
	if s, ok := catalogs[defaultLocale][key]; ok {
		return s
	}
	return ""
}

// formatParam renders interpolation values; json numbers arrive as float64
// and integral values must not print a fraction.
func formatParam(v any) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}
