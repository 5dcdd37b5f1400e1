package bot

import (
	"testing"

	"salon-bot/config"
)

func TestRouterMatchesIntents(t *testing.T) {
	catalog := NewCatalog(config.DefaultBusiness())
	router := NewRouter(catalog)

	tests := []struct {
		name string
		text string
		lang Language
		key  IntentKey
	}{
		{"russian prices question", "сколько стоит массаж", LangRussian, KeyPrices},
		{"turkish booking request", "randevu almak istiyorum", LangTurkish, KeyBooking},
		{"russian booking slots", "есть свободные окошки?", LangRussian, KeyBooking},
		{"russian thanks", "Спасибо большое!", LangRussian, KeyThanks},
		{"turkish thanks without diacritics", "tesekkurler", LangTurkish, KeyThanks},
		{"turkish services", "hangi hizmetler var", LangTurkish, KeyServices},
		{"russian services", "какие услуги у вас есть", LangRussian, KeyServices},
		{"turkish prices", "masaj fiyat listesi", LangTurkish, KeyPrices},
		{"russian reviews", "где почитать отзывы", LangRussian, KeyReviews},
		{"russian address", "подскажите адрес", LangRussian, KeyAddress},
		{"turkish address", "salonunuz nerede", LangTurkish, KeyAddress},
		{"turkish hours", "çalışma saatleriniz nedir", LangTurkish, KeyHours},
		{"russian hours", "какой у вас график", LangRussian, KeyHours},
		{"brand word fallback", "Yelena hakkında bilgi", LangTurkish, KeyFallback},
		{"russian brand fallback", "расскажите про ваш салон", LangRussian, KeyFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := router.Route(tt.text)
			if !ok {
				t.Fatalf("Route(%q) returned no match, want %s", tt.text, tt.key)
			}
			if want := catalog.Get(tt.lang, tt.key); got != want {
				t.Errorf("Route(%q) = %q, want %s template %q", tt.text, got, tt.key, want)
			}
		})
	}
}

func TestRouterPriorityOrderIsStable(t *testing.T) {
	catalog := NewCatalog(config.DefaultBusiness())
	router := NewRouter(catalog)

	// Text matching both booking and address keyword sets must resolve
	// to booking, the earlier intent in the priority list.
	got, ok := router.Route("randevu için adres lazım")
	if !ok {
		t.Fatal("expected a match")
	}
	if want := catalog.Get(LangTurkish, KeyBooking); got != want {
		t.Errorf("booking+address text routed to %q, want booking template %q", got, want)
	}

	got, ok = router.Route("запись и цены")
	if !ok {
		t.Fatal("expected a match")
	}
	if want := catalog.Get(LangRussian, KeyBooking); got != want {
		t.Errorf("booking+prices text routed to %q, want booking template %q", got, want)
	}
}

func TestRouterReturnsNoMatchForUnknownText(t *testing.T) {
	router := NewRouter(NewCatalog(config.DefaultBusiness()))

	for _, text := range []string{
		"What's the weather today?",
		"просто текст ни о чем",
		"",
	} {
		if got, ok := router.Route(text); ok {
			t.Errorf("Route(%q) = %q, want no match", text, got)
		}
	}
}

func TestRouterIsDeterministic(t *testing.T) {
	router := NewRouter(NewCatalog(config.DefaultBusiness()))

	first, ok1 := router.Route("сколько стоит массаж")
	second, ok2 := router.Route("сколько стоит массаж")
	if ok1 != ok2 || first != second {
		t.Errorf("same input routed differently: %q vs %q", first, second)
	}
}
