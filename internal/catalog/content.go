package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownSection возвращается для неизвестного раздела витрины.
var ErrUnknownSection = errors.New("unknown section")

// Section — раздел витрины, к которому ведёт навигация.
type Section string

const (
	SectionPackages Section = "packages"
	SectionAbout    Section = "about"
	SectionFAQ      Section = "faq"
	SectionSupport  Section = "support"
	SectionContacts Section = "contacts"
)

// Sections возвращает разделы в порядке пунктов меню.
func Sections() []Section {
	return []Section{SectionPackages, SectionAbout, SectionFAQ, SectionSupport, SectionContacts}
}

// Title — подпись пункта меню.
func (s Section) Title() string {
	switch s {
	case SectionPackages:
		return "Пакеты"
	case SectionAbout:
		return "О игре"
	case SectionFAQ:
		return "FAQ"
	case SectionSupport:
		return "Поддержка"
	case SectionContacts:
		return "Контакты"
	default:
		return string(s)
	}
}

// ParseSection разбирает имя раздела.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections() {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Feature — карточка раздела "О игре".
type Feature struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// FAQItem — вопрос и ответ.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Contact — способ связи.
type Contact struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Content — все статические тексты витрины.
type Content struct {
	Headline  string    `json:"headline"`
	Tagline   string    `json:"tagline"`
	PriceNote string    `json:"price_note"`
	About     []Feature `json:"about"`
	FAQ       []FAQItem `json:"faq"`
	Support   string    `json:"support"`
	Contacts  []Contact `json:"contacts"`
	Footer    string    `json:"footer"`
}

// StaticContent возвращает тексты витрины. Каждый вызов отдаёт новые срезы.
func StaticContent() Content {
	return Content{
		Headline:  "Games & Party & Chat",
		Tagline:   "Покупай игровую валюту Saya и получай доступ ко всем возможностям игры",
		PriceNote: "Все цены указаны с учётом комиссии",
		About: []Feature{
			{Title: "Игры", Text: "Множество увлекательных мини-игр для всей компании"},
			{Title: "Вечеринки", Text: "Создавай комнаты и устраивай вечеринки с друзьями"},
			{Title: "Чат", Text: "Общайся с игроками в реальном времени"},
		},
		FAQ: []FAQItem{
			{
				Question: "Как купить валюту?",
				Answer:   `Выберите нужный пакет, нажмите кнопку "Купить", укажите ваш ID игры Saya, заведите стрим и монеты получены.`,
			},
			{
				Question: "Безопасна ли оплата?",
				Answer:   "Да, мы используем защищённые платёжные системы. Все транзакции зашифрованы и безопасны.",
			},
			{
				Question: "Как быстро придут монеты?",
				Answer:   "Монеты зачисляются мгновенно после успешной оплаты. В редких случаях это может занять до 5 минут.",
			},
			{
				Question: "Можно ли вернуть средства?",
				Answer:   "Возврат возможен в течение 14 дней, если монеты не были использованы. Свяжитесь с поддержкой для оформления возврата.",
			},
		},
		Support: "Наша команда всегда готова помочь вам с любыми вопросами. Мы отвечаем в течение 24 часов.",
		Contacts: []Contact{
			{Kind: "Email", Value: "gogleplaydonat1@gmail.com"},
			{Kind: "Telegram", Value: "@SayaGAMeOFFICIAL"},
			{Kind: "Сайт", Value: "saya.chat"},
		},
		Footer: "© 2024 Saya. Games & Party & Chat. Все права защищены.",
	}
}
