package bot

import (
	"fmt"

	"salon-bot/config"
)

// IntentKey identifies one canned response per language.
type IntentKey string

const (
	KeyGreeting IntentKey = "greeting"
	KeyBooking  IntentKey = "booking"
	KeyServices IntentKey = "services"
	KeyPrices   IntentKey = "prices"
	KeyReviews  IntentKey = "reviews"
	KeyAddress  IntentKey = "address"
	KeyHours    IntentKey = "hours"
	KeyThanks   IntentKey = "thanks"
	KeyFallback IntentKey = "fallback"
)

// IntentKeys lists every key the catalog must carry for each language.
func IntentKeys() []IntentKey {
	return []IntentKey{
		KeyGreeting, KeyBooking, KeyServices, KeyPrices, KeyReviews,
		KeyAddress, KeyHours, KeyThanks, KeyFallback,
	}
}

// Catalog is the static Language → IntentKey → response table. Business
// constants are interpolated once at build time; the catalog is never
// mutated afterwards, so concurrent reads need no locking.
type Catalog struct {
	templates map[Language]map[IntentKey]string
}

// NewCatalog builds the full bilingual response table from the salon
// constants.
func NewCatalog(biz config.Business) *Catalog {
	bookingLine := fmt.Sprintf("Смотрите актуальные цены, свободные окошки и отзывы по ссылке 👉 %s", biz.BookingLink)
	bookingLineTR := fmt.Sprintf("Güncel fiyatları, boş saatleri ve yorumları bu bağlantıdan görebilirsiniz 👉 %s", biz.BookingLink)
	addressLine := fmt.Sprintf("%s\n👉 %s", biz.Address, biz.MapsLink)

	return &Catalog{
		templates: map[Language]map[IntentKey]string{
			LangRussian: {
				KeyGreeting: fmt.Sprintf("Здравствуйте! 🤍 Добро пожаловать в %s. Чем можем помочь?", biz.Name),
				KeyBooking:  bookingLine,
				KeyServices: fmt.Sprintf("Все наши услуги и процедуры можно посмотреть по ссылке 👉 %s", biz.BookingLink),
				KeyPrices:   fmt.Sprintf("Актуальные цены на все процедуры смотрите по ссылке 👉 %s", biz.BookingLink),
				KeyReviews:  fmt.Sprintf("Отзывы наших гостей можно почитать по ссылке 👉 %s", biz.BookingLink),
				KeyAddress:  addressLine,
				KeyHours:    fmt.Sprintf("Мы открыты с понедельника по субботу, %s.", biz.Hours),
				KeyThanks:   fmt.Sprintf("Спасибо вам 🤍 Ждём снова в %s.", biz.Name),
				KeyFallback: bookingLine,
			},
			LangTurkish: {
				KeyGreeting: fmt.Sprintf("Merhaba! 🤍 %s'ya hoş geldiniz. Size nasıl yardımcı olabiliriz?", biz.Name),
				KeyBooking:  bookingLineTR,
				KeyServices: fmt.Sprintf("Tüm hizmetlerimizi bu bağlantıdan inceleyebilirsiniz 👉 %s", biz.BookingLink),
				KeyPrices:   fmt.Sprintf("Güncel fiyat listemiz için 👉 %s", biz.BookingLink),
				KeyReviews:  fmt.Sprintf("Misafirlerimizin yorumları için 👉 %s", biz.BookingLink),
				KeyAddress:  addressLine,
				KeyHours:    fmt.Sprintf("Pazartesi–Cumartesi %s arası açığız.", biz.Hours),
				KeyThanks:   fmt.Sprintf("Biz teşekkür ederiz 🤍 %s'da tekrar görüşmek üzere.", biz.Name),
				KeyFallback: bookingLineTR,
			},
		},
	}
}

// Validate checks that every supported language carries every intent
// key. A gap is a configuration defect and must stop startup before any
// traffic is served.
func (c *Catalog) Validate() error {
	for _, lang := range SupportedLanguages() {
		entries, ok := c.templates[lang]
		if !ok {
			return fmt.Errorf("catalog: missing language %q", lang)
		}
		for _, key := range IntentKeys() {
			if entries[key] == "" {
				return fmt.Errorf("catalog: missing template %q for language %q", key, lang)
			}
		}
	}
	return nil
}

// Get returns the canned response for a language and intent key.
func (c *Catalog) Get(lang Language, key IntentKey) string {
	return c.templates[lang][key]
}
