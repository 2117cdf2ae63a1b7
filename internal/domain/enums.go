package domain

// Language selects which variant of bilingual content is displayed.
type Language string

const (
	LangHebrew  Language = "he"
	LangEnglish Language = "en"
)

// ParseLanguage returns the Language for a stored preference value,
// defaulting to Hebrew for anything unrecognized.
func ParseLanguage(s string) Language {
	if s == string(LangEnglish) {
		return LangEnglish
	}
	return LangHebrew
}

// Direction is the reading direction derived from the active language.
type Direction string

const (
	DirRTL Direction = "rtl"
	DirLTR Direction = "ltr"
)

// Dir returns the reading direction for the language.
func (l Language) Dir() Direction {
	if l == LangEnglish {
		return DirLTR
	}
	return DirRTL
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LangHebrew {
		return LangEnglish
	}
	return LangHebrew
}

// ExamMoed is the sitting designation of an exam.
type ExamMoed string

const (
	MoedA ExamMoed = "A"
	MoedB ExamMoed = "B"
)
