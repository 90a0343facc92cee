package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case loadRecordsMsg:
		return m.handleLoadRecords(msg)

	case periodChangedMsg:
		// the key handler already selected the newest state; msg may be stale
		m.refresh()
		return m, nil

	case periodErrMsg:
		m.statusMsg = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case periodView:
		m.weekly, cmd = m.weekly.Update(msg)
		return m, cmd

	case customRange:
		return updateCustomRange(msg, &m)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	// title, label box, summary and help
	takenHeight := 12
	m.weekly.SetSize(msg.Width-h, max(msg.Height-v-takenHeight, 3))
	m.configView.SetSize(msg.Width-h, max(msg.Height-v-5, 3))

	m.help.Width = msg.Width

	if m.customRangeForm != nil {
		m.customRangeForm = m.customRangeForm.WithHeight(msg.Height - 5).WithWidth(msg.Width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleLoadRecords(msg loadRecordsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.sessionState = errorState
		m.errorMsg = fmt.Sprintf("Could not load records: %s", msg.err.Error())
		return m, nil
	}

	log.Debug("records loaded", "count", len(msg.records))
	m.records = msg.records
	m.loadingState.set("records")
	m.sessionState = m.checkIfLoading()
	m.refresh()

	return m, tea.WindowSize()
}

func (m model) checkIfLoading() sessionState {
	if loaded, key := m.loadingState.allLoaded(); !loaded {
		log.Debug("still loading", "key", key)
		return loading
	}

	return periodView
}
