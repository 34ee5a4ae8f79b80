package menu

// LocalizedString maps a locale tag (e.g. "en_US") to text in that locale.
type LocalizedString map[string]string

// Get returns the text for the given locale, or "" if absent.
func (ls LocalizedString) Get(locale string) string {
	return ls[locale]
}

// Localizer resolves localized strings against a preferred locale with a
// fallback to the menu's default locale.
type Localizer struct {
	defaultLocale string
	locale        string
}

// NewLocalizer creates a Localizer that prefers locale and falls back to
// defaultLocale.
func NewLocalizer(defaultLocale, locale string) *Localizer {
	return &Localizer{defaultLocale: defaultLocale, locale: locale}
}

// Localize returns the text in the preferred locale, then the default
// locale, then "".
func (l *Localizer) Localize(ls LocalizedString) string {
	if text, ok := ls[l.locale]; ok {
		return text
	}
	if text, ok := ls[l.defaultLocale]; ok {
		return text
	}
	return ""
}
