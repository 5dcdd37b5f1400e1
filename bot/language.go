package bot

import (
	"strings"
	"unicode"
)

// Language is the closed set of reply languages the salon serves.
type Language string

const (
	LangRussian Language = "ru"
	LangTurkish Language = "tr"
)

// SupportedLanguages lists every language the template catalog must cover.
func SupportedLanguages() []Language {
	return []Language{LangRussian, LangTurkish}
}

// turkishDiacritics are characters specific to Turkish orthography.
const turkishDiacritics = "çğıöşüÇĞİÖŞÜ"

// turkishLexicon catches Turkish messages typed without diacritics.
var turkishLexicon = []string{
	"merhaba", "selam", "slm", "mrb",
	"randevu", "fiyat", "adres", "nerede", "saat",
	"istiyorum", "var", "kadar", "iyi",
}

// Detect classifies the message language. Any Cyrillic character wins
// for Russian; Turkish cues win next; everything else defaults to
// Turkish, the salon's local audience.
func Detect(text string) Language {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return LangRussian
		}
	}

	if strings.ContainsAny(text, turkishDiacritics) {
		return LangTurkish
	}

	lowered := strings.ToLower(text)
	for _, word := range strings.Fields(lowered) {
		word = strings.Trim(word, ".,!?:;\"'()")
		for _, cue := range turkishLexicon {
			if word == cue {
				return LangTurkish
			}
		}
	}

	return LangTurkish
}
