package bot

import "strings"

// intentRoute pairs an intent with the keyword set that triggers it.
// Keywords merge Russian and Turkish vocabulary, stems and common
// transliterations; matching is plain case-insensitive substring search.
type intentRoute struct {
	key      IntentKey
	keywords []string
}

// routes is evaluated top to bottom and the first hit wins. The order is
// the disambiguation policy: text matching both booking and address
// words gets the booking reply. Do not reorder.
var routes = []intentRoute{
	{KeyBooking, []string{
		"запис", "свободн", "окошк", "бронь",
		"randevu", "müsait", "boş", "rezervasyon",
	}},
	{KeyServices, []string{
		"услуг", "процедур",
		"hizmet", "prosedür",
	}},
	{KeyPrices, []string{
		"цен", "стоим", "сколько стоит", "прайс",
		"fiyat", "ücret", "kaç para", "ne kadar",
	}},
	{KeyReviews, []string{
		"отзыв",
		"yorum", "değerlendirme",
	}},
	{KeyAddress, []string{
		"адрес", "где наход", "как добраться",
		"adres", "nerede", "konum", "nasıl gel",
	}},
	{KeyHours, []string{
		"график", "режим работы", "часы работы", "во сколько", "работаете",
		"saat kaçta", "çalışma saat", "açık mı", "kaça kadar",
	}},
	{KeyThanks, []string{
		"спасибо", "благодар",
		"teşekkür", "tesekkur", "sağol", "sagol",
	}},
	{KeyFallback, []string{
		"салон", "массаж", "спа",
		"salon", "masaj", "spa", "yelena", "aura", "studio",
	}},
}

// Router resolves messages to canned intent replies.
type Router struct {
	catalog *Catalog
}

func NewRouter(catalog *Catalog) *Router {
	return &Router{catalog: catalog}
}

// Route matches the message against the fixed-priority keyword sets and
// returns the localized template for the first hit. A miss means "defer
// to the assistant", not "no reply". Language is derived here so the
// router stays self-contained.
func (r *Router) Route(text string) (string, bool) {
	lang := Detect(text)
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, route := range routes {
		for _, keyword := range route.keywords {
			if strings.Contains(normalized, keyword) {
				return r.catalog.Get(lang, route.key), true
			}
		}
	}

	return "", false
}
