package bot

import (
	"testing"

	"salon-bot/config"
)

func TestGreetingMatcher(t *testing.T) {
	catalog := NewCatalog(config.DefaultBusiness())
	matcher := NewGreetingMatcher(catalog)

	tests := []struct {
		name      string
		text      string
		lang      Language
		wantMatch bool
	}{
		{"turkish greeting", "Merhaba", LangTurkish, true},
		{"turkish shorthand", "slm", LangTurkish, true},
		{"russian greeting", "Привет!", LangRussian, true},
		{"russian formal greeting", "Здравствуйте", LangRussian, true},
		{"bare wave emoji", "👋", LangTurkish, true},
		{"wave emoji with spaces", "  👋  ", LangRussian, true},
		{"greeting with intent keyword still greets", "Merhaba, randevu almak istiyorum", LangTurkish, true},
		{"plain booking request", "randevu almak istiyorum", LangTurkish, false},
		{"unrelated question", "What's the weather today?", LangTurkish, false},
		{"empty text", "", LangTurkish, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matcher.Match(tt.text, tt.lang)
			if ok != tt.wantMatch {
				t.Fatalf("Match(%q, %s) matched=%v, want %v", tt.text, tt.lang, ok, tt.wantMatch)
			}
			if ok && got != catalog.Get(tt.lang, KeyGreeting) {
				t.Errorf("Match(%q, %s) = %q, want greeting template", tt.text, tt.lang, got)
			}
		})
	}
}
