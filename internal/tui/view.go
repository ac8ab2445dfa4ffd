package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/notify"
)

// View реализует tea.Model.
func (m Model) View() string {
	sv := m.sf.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("SAYA") + "  " + mutedStyle.Render(m.content.Headline))
	b.WriteString("\n")
	b.WriteString(m.renderTabs(sv.Section))
	b.WriteString("\n\n")

	if sv.Checkout.Open {
		b.WriteString(m.renderCheckout(sv.Checkout))
	} else {
		b.WriteString(m.renderSection(sv.Section))
	}

	if toasts := m.renderToasts(); toasts != "" {
		b.WriteString("\n\n")
		b.WriteString(toasts)
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.hint(sv.Checkout)))
	return b.String()
}

func (m Model) renderTabs(active catalog.Section) string {
	tabs := make([]string, 0, len(catalog.Sections()))
	for i, s := range catalog.Sections() {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSection(section catalog.Section) string {
	switch section {
	case catalog.SectionAbout:
		return m.renderAbout()
	case catalog.SectionFAQ:
		return m.renderFAQ()
	case catalog.SectionSupport:
		return boldStyle.Render("Поддержка") + "\n" + m.content.Support
	case catalog.SectionContacts:
		return m.renderContacts()
	default:
		return m.renderPackages()
	}
}

func (m Model) renderPackages() string {
	var rows []string
	var row []string
	for i, pkg := range catalog.Packages() {
		row = append(row, m.renderPackage(i, pkg))
		if len(row) == gridColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	head := boldStyle.Render("Выбери свой пакет") + "  " + mutedStyle.Render(m.content.PriceNote)
	return head + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderPackage(i int, pkg catalog.Package) string {
	badge := " "
	if pkg.Popular {
		badge = badgeStyle.Render("ПОПУЛЯРНЫЙ")
	}
	body := strings.Join([]string{
		badge,
		boldStyle.Render(pkg.Coins),
		mutedStyle.Render("монет"),
		priceStyle.Render(fmt.Sprintf("%d ₽", pkg.Price)),
	}, "\n")

	switch {
	case i == m.pkgCursor:
		return selectedCardStyle.Render(body)
	case pkg.Popular:
		return popularCardStyle.Render(body)
	default:
		return cardStyle.Render(body)
	}
}

func (m Model) renderAbout() string {
	cols := make([]string, 0, len(m.content.About))
	for _, f := range m.content.About {
		cols = append(cols, cardStyle.Width(28).Render(boldStyle.Render(f.Title)+"\n"+f.Text))
	}
	return boldStyle.Render("О игре Saya") + "\n" + m.content.Tagline + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderFAQ() string {
	var b strings.Builder
	b.WriteString(boldStyle.Render("Частые вопросы"))
	for i, item := range m.content.FAQ {
		marker := "▸"
		if i == m.faqOpen {
			marker = "▾"
		}
		line := fmt.Sprintf("%s %s", marker, item.Question)
		if i == m.faqCursor {
			line = titleStyle.Render(line)
		}
		b.WriteString("\n" + line)
		if i == m.faqOpen {
			b.WriteString("\n  " + mutedStyle.Render(item.Answer))
		}
	}
	return b.String()
}

func (m Model) renderContacts() string {
	lines := []string{boldStyle.Render("Контакты")}
	for _, c := range m.content.Contacts {
		lines = append(lines, fmt.Sprintf("%-9s %s", c.Kind+":", c.Value))
	}
	lines = append(lines, "", mutedStyle.Render(m.content.Footer))
	return strings.Join(lines, "\n")
}

func (m Model) renderCheckout(v checkout.View) string {
	var body string
	switch v.Step {
	case checkout.StepMethod:
		body = m.renderMethodStep(v)
	case checkout.StepCard:
		body = m.renderCardStep(v)
	case checkout.StepProcessing:
		body = fmt.Sprintf("%s %s\n%s",
			titleStyle.Render(spinnerFrames[m.spinner]),
			boldStyle.Render("Обработка платежа..."),
			mutedStyle.Render("Пожалуйста, подождите"))
	case checkout.StepSuccess:
		body = successStyle.Render("✓ Оплата успешна! 🎉") + "\n" + v.Description
	}
	return dialogStyle.Render(body)
}

func (m Model) renderMethodStep(v checkout.View) string {
	lines := []string{
		titleStyle.Render("Оплата через Robokassa"),
		mutedStyle.Render(fmt.Sprintf("%s • %d ₽", v.Description, v.Amount)),
		"",
		"Email для чека",
		focusedInputStyle.Render(placeholder(v.Email, "your@email.com")),
		"Способ оплаты",
	}
	for _, mt := range checkout.Methods() {
		mark := "( )"
		if mt == v.Method {
			mark = "(•)"
		}
		lines = append(lines, fmt.Sprintf("  %s %s", mark, mt.Label()))
	}
	lines = append(lines, "", noteStyle.Render("Демо-режим: деньги не списываются."))
	return strings.Join(lines, "\n")
}

func (m Model) renderCardStep(v checkout.View) string {
	input := func(f checkout.Field, value string) string {
		if f == m.cardFocus {
			return focusedInputStyle.Render(value)
		}
		return inputStyle.Render(value)
	}
	lines := []string{
		titleStyle.Render("Данные карты"),
		mutedStyle.Render(fmt.Sprintf("К оплате: %d ₽", v.Amount)),
		"",
		"Номер карты",
		input(checkout.FieldCardNumber, placeholder(v.CardNumber, "1234 5678 9012 3456")),
		"Срок действия",
		input(checkout.FieldCardExpiry, placeholder(v.CardExpiry, "MM/YY")),
		"CVV",
		input(checkout.FieldCardCVV, placeholder(strings.Repeat("•", len(v.CardCVV)), "123")),
		"",
		noteStyle.Render("Используйте любые данные - это демо-версия платёжного терминала"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	out := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		style := toastStyle
		if t.Variant == notify.VariantDestructive {
			style = destructiveToastStyle
		}
		out = append(out, style.Render(boldStyle.Render(t.Title)+"\n"+t.Description))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m Model) hint(v checkout.View) string {
	if !v.Open {
		return "tab/1-5 разделы • ←→↑↓ выбор • enter купить/раскрыть • q выход"
	}
	switch v.Step {
	case checkout.StepMethod:
		return "ввод email • ↑↓ способ оплаты • enter продолжить • esc отмена"
	case checkout.StepCard:
		return "tab поле • enter оплатить • ctrl+b назад • esc отмена"
	default:
		return "esc закрыть"
	}
}

func placeholder(value, ph string) string {
	if value == "" {
		return mutedStyle.Render(ph)
	}
	return value
}
