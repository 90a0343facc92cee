package main

import (
	"github.com/Rshep3087/lunchperiod/period"
	"github.com/Rshep3087/lunchperiod/report"
	"github.com/Rshep3087/lunchperiod/weeks"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type (
	// periodChangedMsg announces that a navigation action selected state.
	periodChangedMsg struct {
		state period.State
	}

	// periodErrMsg reports a navigation action that was rejected.
	periodErrMsg struct {
		err error
	}
)

// advancePeriod moves to the period after the current one.
func advancePeriod(m *model) (tea.Model, tea.Cmd) {
	next, err := m.state.Next()
	return changePeriod(m, next, err)
}

// retrievePreviousPeriod moves to the period before the current one.
func retrievePreviousPeriod(m *model) (tea.Model, tea.Cmd) {
	prev, err := m.state.Previous()
	return changePeriod(m, prev, err)
}

// switchPeriodType cycles day, week, month, year and custom, keeping the
// period the user is looking at.
func switchPeriodType(m *model) (tea.Model, tea.Cmd) {
	next, err := m.state.WithType(m.state.Type().Next())
	return changePeriod(m, next, err)
}

// returnToToday selects the period of the current type that contains today.
// A custom range keeps its length and starts today.
func returnToToday(m *model) (tea.Model, tea.Cmd) {
	if m.state.Type() == period.Custom {
		r := m.state.CustomRange()
		next, err := period.NewCustom(m.today, m.today.AddDays(r.Days()-1))
		return changePeriod(m, next, err)
	}

	next, err := period.New(m.state.Type(), m.today)
	return changePeriod(m, next, err)
}

func changePeriod(m *model, next period.State, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		log.Debug("period change rejected", "from", m.state, "error", err)
		return m, func() tea.Msg { return periodErrMsg{err: err} }
	}

	log.Debug("period changed", "from", m.state, "to", next)
	m.state = next
	m.statusMsg = ""
	return m, func() tea.Msg { return periodChangedMsg{state: next} }
}

// refresh recomputes everything derived from the selected period.
func (m *model) refresh() {
	m.summary = nil
	m.updateNavigationHelp()

	rng, err := m.state.Range()
	if err != nil {
		m.statusMsg = err.Error()
		return
	}

	if len(m.records) > 0 {
		b, skipped, sumErr := report.Summarize(rng, m.cfg.Currency, m.records)
		if sumErr != nil {
			m.statusMsg = sumErr.Error()
			return
		}
		log.Debug("summarized period", "range", rng, "records", b.Count, "skipped", skipped)
		m.summary = &b
	}

	if m.state.Type() != period.Month {
		return
	}

	ym := m.state.Reference().YearMonth()
	if len(m.records) == 0 {
		segments, partErr := weeks.Partition(ym)
		if partErr != nil {
			m.statusMsg = partErr.Error()
			return
		}
		m.weekly.SetSegments(segments)
		return
	}

	w, err := report.BuildWeekly(ym, m.cfg.Currency, m.records)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.weekly.SetReport(w)
}

func (m *model) updateNavigationHelp() {
	name := m.state.Type().String()
	if m.state.Type() == period.Custom {
		name = "range"
	}
	m.keys.nextPeriod.SetHelp("]", "next "+name)
	m.keys.previousPeriod.SetHelp("[", "previous "+name)
}
