package bot

import "strings"

const wavingHand = "👋"

// greetingLexicon maps each language to the tokens that mark a message
// as a salutation, including common transliterated shorthands.
var greetingLexicon = map[Language][]string{
	LangRussian: {
		"привет", "здравствуйте", "здравствуй",
		"добрый день", "добрый вечер", "доброе утро",
	},
	LangTurkish: {
		"merhaba", "selam", "slm", "mrb",
		"iyi günler", "günaydın", "iyi akşamlar",
	},
}

// GreetingMatcher answers salutations from the catalog before any
// intent routing runs.
type GreetingMatcher struct {
	catalog *Catalog
}

func NewGreetingMatcher(catalog *Catalog) *GreetingMatcher {
	return &GreetingMatcher{catalog: catalog}
}

// Match returns the localized greeting when the message is a wave emoji
// or contains a greeting token. Greetings win even when the text also
// carries an intent keyword: "Merhaba, randevu" still greets.
func (g *GreetingMatcher) Match(text string, lang Language) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return "", false
	}

	if normalized == wavingHand {
		return g.catalog.Get(lang, KeyGreeting), true
	}

	for _, token := range greetingLexicon[lang] {
		if strings.Contains(normalized, token) {
			return g.catalog.Get(lang, KeyGreeting), true
		}
	}

	return "", false
}
