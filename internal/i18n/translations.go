package i18n

import (
	"strings"

	"github.com/tishinatyt/meetus/internal/domain"
)

// Catalog holds every user-facing string for one language. The engines fill
// in the {placeholders}; the catalog owns the wording.
type Catalog struct {
	Intro            string
	FallbackQuestion string
	FallbackOptions  []string

	RollCall             string // {u} user, {m} members, {s} status
	SearchingMore        string
	AllSet               string
	VenueSuggestion      string // {v} venue, {b} budget
	CheckingAvailability string // {v} venue
	TableReady           string
	TaxiPrompt           string // {t} meeting time
	PaymentConfirmed     string

	GroupTitle      string // {a} archetype, {p} alcohol policy
	AlcoholFriendly string
	AlcoholFree     string
	MeetingTime     string
	You             string

	Archetypes map[domain.Archetype]string
}

var ua = Catalog{
	Intro:            "Привіт! Я твій координатор Meet.ai. Давай познайомимося ближче, щоб я міг підібрати тобі ідеальну компанію для офлайн-зустрічі.",
	FallbackQuestion: "Який формат зустрічі вам ближче?",
	FallbackOptions:  []string{"Бар та вечірка", "Кава та спілкування", "Спорт", "Бізнес-ланч"},

	RollCall:             "Привіт, {u}! Наша група: {m}. {s}",
	SearchingMore:        "Ще шукаю +1 для повного складу...",
	AllSet:               "Всі в зборі!",
	VenueSuggestion:      "Я підібрав {v}. Бюджет приблизно {b}₴. Що думаєте?",
	CheckingAvailability: "Перевіряю вільні столики в {v}...",
	TableReady:           "Стіл заброньовано! Ось ваш QR-код на знижку 15%:",
	TaxiPrompt:           "Зустріч підтверджено на {t}. Бажаєте викликати таксі прямо зараз?",
	PaymentConfirmed:     "Підтвердив свою участь оплатою 💳",

	GroupTitle:      "Група: {a} ({p})",
	AlcoholFriendly: "з алкоголем",
	AlcoholFree:     "без алкоголю",
	MeetingTime:     "Сьогодні, 19:30",
	You:             "Ти",

	Archetypes: map[domain.Archetype]string{
		domain.ArchetypeParty:     "Тусовочний",
		domain.ArchetypeActive:    "Активний",
		domain.ArchetypeConscious: "Усвідомлений",
		domain.ArchetypeCreative:  "Творчий",
		domain.ArchetypeBusiness:  "Діловий",
		domain.ArchetypeUnknown:   "Обробка...",
	},
}

var en = Catalog{
	Intro:            "Hi! I'm your Meet.ai coordinator. Let's get to know each other so I can find the perfect company for an offline meetup.",
	FallbackQuestion: "Which meeting format do you prefer?",
	FallbackOptions:  []string{"Bar & Party", "Coffee & Talk", "Sports", "Business Lunch"},

	RollCall:             "Hi {u}! Our group: {m}. {s}",
	SearchingMore:        "Still looking for +1 to fill the group...",
	AllSet:               "Everyone is here!",
	VenueSuggestion:      "I picked {v}. Budget is around {b}$. Thoughts?",
	CheckingAvailability: "Checking table availability at {v}...",
	TableReady:           "Table reserved! Here is your 15% discount QR code:",
	TaxiPrompt:           "Meeting confirmed for {t}. Would you like to call a taxi now?",
	PaymentConfirmed:     "Confirmed my attendance with payment 💳",

	GroupTitle:      "{a} Tribe ({p})",
	AlcoholFriendly: "Alcohol Friendly",
	AlcoholFree:     "Alcohol Free",
	MeetingTime:     "Today, 19:30",
	You:             "You",

	Archetypes: map[domain.Archetype]string{
		domain.ArchetypeParty:     "Party",
		domain.ArchetypeActive:    "Active",
		domain.ArchetypeConscious: "Conscious",
		domain.ArchetypeCreative:  "Creative",
		domain.ArchetypeBusiness:  "Business",
		domain.ArchetypeUnknown:   "Pending...",
	},
}

// For returns the catalog for a language, defaulting to Ukrainian.
func For(lang domain.Language) Catalog {
	if lang == domain.LanguageEN {
		return en
	}
	return ua
}

// Sub substitutes {key} placeholders in a template.
func Sub(template string, values map[string]string) string {
	out := template
	for k, v := range values {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// ArchetypeName localizes an archetype, falling back to the raw value for
// anything not in the catalog.
func (c Catalog) ArchetypeName(a domain.Archetype) string {
	if name, ok := c.Archetypes[a]; ok {
		return name
	}
	return string(a)
}
