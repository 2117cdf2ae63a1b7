package i18n

import (
	"testing"

	"github.com/omripeer/studydeck/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeLangPrefs struct {
	lang domain.Language
	err  error
}

func (f *fakeLangPrefs) Language() domain.Language { return f.lang }
func (f *fakeLangPrefs) SetLanguage(l domain.Language) error {
	f.lang = l
	return f.err
}

func TestLookup_FallsBackToHebrew(t *testing.T) {
	c := Lookup(domain.Language("fr"))
	assert.Equal(t, catalogs[domain.LangHebrew].Dashboard, c.Dashboard)
}

func TestCatalogs_DayTablesComplete(t *testing.T) {
	for lang, c := range catalogs {
		for _, day := range domain.ScheduleDays {
			assert.Contains(t, c.Days, day, "language %s missing %s", lang, day)
		}
		assert.Contains(t, c.Days, "Saturday", "language %s missing Saturday", lang)
	}
}

func TestProvider_InitialLanguageFromStore(t *testing.T) {
	p := NewProvider(&fakeLangPrefs{lang: domain.LangEnglish})

	assert.Equal(t, domain.LangEnglish, p.Language())
	assert.Equal(t, domain.DirLTR, p.Dir())
	assert.Equal(t, "Dashboard", p.T().Dashboard)
}

func TestProvider_SetLanguagePersists(t *testing.T) {
	prefs := &fakeLangPrefs{lang: domain.LangHebrew}
	p := NewProvider(prefs)

	assert.NoError(t, p.SetLanguage(domain.LangEnglish))
	assert.Equal(t, domain.LangEnglish, prefs.lang)
	assert.Equal(t, domain.LangEnglish, p.Language())
}

func TestProvider_ToggleSwitchesSynchronously(t *testing.T) {
	p := NewProvider(&fakeLangPrefs{lang: domain.LangHebrew})

	assert.NoError(t, p.Toggle())
	assert.Equal(t, domain.LangEnglish, p.Language())

	assert.NoError(t, p.Toggle())
	assert.Equal(t, domain.LangHebrew, p.Language())
}

func TestProvider_DayName(t *testing.T) {
	p := NewProvider(&fakeLangPrefs{lang: domain.LangHebrew})

	assert.Equal(t, "שני", p.DayName("Monday"))
	assert.Equal(t, "Noday", p.DayName("Noday"), "unknown day passes through")
}
