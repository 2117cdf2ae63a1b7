package i18n

import "github.com/omripeer/studydeck/internal/domain"

// LanguagePrefs is the slice of the preference store the provider needs.
type LanguagePrefs interface {
	Language() domain.Language
	SetLanguage(domain.Language) error
}

// Provider holds the active language and hands out the matching catalog.
// The language is loaded once from the preference store at construction
// and every change is persisted write-through.
type Provider struct {
	prefs LanguagePrefs
	lang  domain.Language
}

// NewProvider creates a Provider initialized from the stored preference
// (Hebrew when absent or invalid).
func NewProvider(prefs LanguagePrefs) *Provider {
	return &Provider{prefs: prefs, lang: prefs.Language()}
}

// Language returns the active language.
func (p *Provider) Language() domain.Language { return p.lang }

// Dir returns the active reading direction.
func (p *Provider) Dir() domain.Direction { return p.lang.Dir() }

// T returns the string catalog for the active language.
func (p *Provider) T() Catalog { return Lookup(p.lang) }

// SetLanguage switches the active language and persists the choice.
// The switch applies even if persistence fails; the error is returned
// so callers can surface it.
func (p *Provider) SetLanguage(lang domain.Language) error {
	p.lang = lang
	return p.prefs.SetLanguage(lang)
}

// Toggle switches between Hebrew and English.
func (p *Provider) Toggle() error {
	return p.SetLanguage(p.lang.Toggle())
}

// DayName localizes an English weekday name.
func (p *Provider) DayName(day string) string {
	if name, ok := p.T().Days[day]; ok {
		return name
	}
	return day
}
