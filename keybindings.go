package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	periodView     key.Binding
	customRange    key.Binding
	config         key.Binding
	nextPeriod     key.Binding
	previousPeriod key.Binding
	switchPeriod   key.Binding
	today          key.Binding
	reload         key.Binding
	escape         key.Binding
	fullHelp       key.Binding
	quit           key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.previousPeriod,
		km.nextPeriod,
		km.switchPeriod,
		km.customRange,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.periodView,
			km.customRange,
			km.config,
			km.quit,
			km.fullHelp,
		},
		{
			km.nextPeriod,
			km.previousPeriod,
			km.switchPeriod,
			km.today,
			km.reload,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		periodView: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "period"),
		),
		customRange: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "custom range"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		nextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		previousPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous month"),
		),
		switchPeriod: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch range"),
		),
		today: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "back to today"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload records"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return keys
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is blocked by active forms
	if isInputBlocked(m) {
		return m, nil
	}

	// Handle navigation keys
	if model, cmd := handleNavigationKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Handle session state changes
	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	// "q" is text while a form has focus
	if key.Matches(msg, m.keys.quit) && !isInputBlocked(m) {
		return m, tea.Quit
	}

	return m, nil
}

func isInputBlocked(m *model) bool {
	if m.sessionState == customRange && m.customRangeForm != nil && m.customRangeForm.State == huh.StateNormal {
		return true
	}

	if m.sessionState == loading {
		return true
	}

	return false
}

func handleNavigationKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if m.sessionState != periodView {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.nextPeriod):
		return advancePeriod(m)
	case key.Matches(msg, m.keys.previousPeriod):
		return retrievePreviousPeriod(m)
	case key.Matches(msg, m.keys.switchPeriod):
		return switchPeriodType(m)
	case key.Matches(msg, m.keys.today):
		return returnToToday(m)
	}

	return m, nil
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.periodView):
		if m.sessionState != periodView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(false)
			m.weekly.SetFocus(true)
			m.sessionState = periodView
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.customRange):
		if m.sessionState != customRange {
			return openCustomRange(m)
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.weekly.SetFocus(false)
			m.sessionState = configView
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.reload):
		if m.sessionState == periodView && len(m.cfg.Records) > 0 {
			return reloadRecords(m)
		}

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, tea.WindowSize()
	}

	return m, nil
}

// handleEscape aborts an open form or returns to the period view.
func handleEscape(m *model) (tea.Model, tea.Cmd) {
	if m.sessionState == customRange {
		log.Debug("handling escape in custom range state")
		if m.customRangeForm != nil {
			m.customRangeForm.State = huh.StateAborted
		}
		m.previousSessionState = customRange
		m.sessionState = periodView
		return m, nil
	}

	if m.sessionState == loading || m.sessionState == errorState {
		return m, nil
	}

	m.previousSessionState = m.sessionState
	m.configView.SetFocus(false)
	m.weekly.SetFocus(true)
	m.sessionState = periodView
	return m, nil
}
