package citadels

// Localizer is the localization collaborator boundary. Implementations must
// be pure and stateless; the sessions never cache localized text across
// renders. The event log is the one exception: entries are derived once,
// at append time.
type Localizer interface {
	// T maps a symbolic key plus optional named parameters to localized
	// text, with fallback to the default locale and then to the raw key.
	T(key string, params map[string]any) string

	// ColorClass maps a district color to a presentational class.
	ColorClass(c DistrictColor) string

	// DistrictEffect returns the localized effect line for a district,
	// or "" when the district has none.
	DistrictEffect(name string) string
}
