package main

import (
	"fmt"
	"strings"

	"github.com/Rshep3087/lunchperiod/period"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case periodView:
		b.WriteString(m.periodView())
	case customRange:
		b.WriteString(m.customRangeForm.View())
	case configView:
		b.WriteString(m.configView.View())
	case loading:
		fmt.Fprintf(&b, "%s Loading %s...", m.loadingSpinner.View(), strings.Join(m.loadingState.pending(), ", "))
	case errorState:
		b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("%s - 'q' to quit", m.errorMsg)))
		return m.styles.docStyle.Render(b.String())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	return m.styles.titleStyle.Render(
		fmt.Sprintf("%s | %s | %s",
			appName,
			m.sessionState.String(),
			titleCaser.String(m.state.Type().String()),
		),
	)
}

// label returns the label of the selected period, or the reason it has none.
func (m model) label() string {
	label, err := m.formatter.Label(m.state, m.today)
	if err != nil {
		return err.Error()
	}
	return label
}

func (m model) periodView() string {
	var b strings.Builder

	var box strings.Builder
	box.WriteString(m.styles.labelStyle.Render(m.label()))
	if rng, err := m.state.Range(); err == nil {
		box.WriteString("\n")
		box.WriteString(m.styles.mutedStyle.Render(
			fmt.Sprintf("%s, %d days", m.formatter.Range(rng), rng.Days()),
		))
	}
	b.WriteString(m.styles.borderStyle.Render(box.String()))

	if m.summary != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Total %s over %d records", m.summary.Total.Display(), m.summary.Count)
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.errorStyle.Render(m.statusMsg))
	}

	if m.state.Type() == period.Month {
		b.WriteString("\n\n")
		b.WriteString(m.weekly.View())
	}

	return b.String()
}
