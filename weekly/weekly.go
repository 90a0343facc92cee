// Package weekly renders a month's week buckets as a table.
package weekly

import (
	"strconv"

	"github.com/Rshep3087/lunchperiod/report"
	"github.com/Rshep3087/lunchperiod/weeks"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Colors struct {
	Primary string
}

type Model struct {
	buckets table.Model
	layout  string
}

func New(colors Colors, layout string) Model {
	buckets := table.New(
		table.WithColumns([]table.Column{
			{Title: "Week", Width: 6},
			{Title: "From", Width: 12},
			{Title: "To", Width: 12},
			{Title: "Days", Width: 6},
			{Title: "Records", Width: 8},
			{Title: "Total", Width: 14},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	buckets.SetStyles(tableStyle)

	return Model{buckets: buckets, layout: layout}
}

func (m *Model) Focused() bool {
	return m.buckets.Focused()
}

func (m *Model) SetFocus(focus bool) {
	if focus {
		m.buckets.Focus()
	} else {
		m.buckets.Blur()
	}
}

func (m *Model) SetSize(width, height int) {
	m.buckets.SetHeight(height)
	m.buckets.SetWidth(width)
}

// SetSegments shows bare segments when there are no records to total.
func (m *Model) SetSegments(segments []weeks.Segment) {
	rows := make([]table.Row, 0, len(segments))
	for i, s := range segments {
		rows = append(rows, table.Row{
			"W" + strconv.Itoa(i+1),
			s.Start.Format(m.layout),
			s.End.Format(m.layout),
			strconv.Itoa(s.Days()),
			"-",
			"-",
		})
	}

	m.buckets.SetRows(rows)
}

// SetReport shows the totals of each week.
func (m *Model) SetReport(w *report.Weekly) {
	rows := make([]table.Row, 0, len(w.Buckets))
	for i, b := range w.Buckets {
		rows = append(rows, table.Row{
			"W" + strconv.Itoa(i+1),
			b.Range.Start.Format(m.layout),
			b.Range.End.Format(m.layout),
			strconv.Itoa(b.Range.Days()),
			strconv.Itoa(b.Count),
			b.Total.Display(),
		})
	}

	m.buckets.SetRows(rows)
}

func (m *Model) Rows() []table.Row {
	return m.buckets.Rows()
}

func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.buckets, cmd = m.buckets.Update(msg)
	return *m, cmd
}

func (m *Model) View() string {
	return m.buckets.View()
}
