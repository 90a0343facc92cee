package main

import (
	"errors"

	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/period"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

func validateDate(s string) error {
	_, err := calendar.Parse(s)
	return err
}

// newCustomRangeForm asks for the bounds of a custom range, prefilled with current.
func newCustomRangeForm(current calendar.DateRange) *huh.Form {
	start := current.Start.String()
	end := current.End.String()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("start").
				Title("Start").
				Description("First day of the range (YYYY-MM-DD)").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Key("end").
				Title("End").
				Description("Last day of the range (YYYY-MM-DD)").
				Value(&end).
				Validate(validateDate),
		),
	)
}

func openCustomRange(m *model) (tea.Model, tea.Cmd) {
	rng, err := m.state.Range()
	if err != nil {
		return m, func() tea.Msg { return periodErrMsg{err: err} }
	}

	m.customRangeForm = newCustomRangeForm(rng)
	m.previousSessionState = m.sessionState
	m.sessionState = customRange
	return m, m.customRangeForm.Init()
}

func updateCustomRange(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.customRangeForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.customRangeForm = f
	} else {
		log.Debug("customRangeForm did not return a form, returning nil")
		return m, nil
	}

	switch m.customRangeForm.State {
	case huh.StateCompleted:
		m.previousSessionState = customRange
		m.sessionState = periodView
		return applyCustomRange(m, m.customRangeForm.GetString("start"), m.customRangeForm.GetString("end"))
	case huh.StateAborted:
		m.previousSessionState = customRange
		m.sessionState = periodView
		return m, nil
	}

	return m, cmd
}

// applyCustomRange selects [start, end]. A reversed range is reported, never swapped.
func applyCustomRange(m *model, startStr, endStr string) (tea.Model, tea.Cmd) {
	start, err := calendar.Parse(startStr)
	if err != nil {
		return changePeriod(m, period.State{}, err)
	}
	end, err := calendar.Parse(endStr)
	if err != nil {
		return changePeriod(m, period.State{}, err)
	}

	next, err := period.NewCustom(start, end)
	if errors.Is(err, period.ErrInvalidRange) {
		log.Debug("custom range rejected", "start", start, "end", end)
	}
	return changePeriod(m, next, err)
}
