package main

import (
	"context"
	"fmt"

	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/config"
	"github.com/Rshep3087/lunchperiod/period"
	"github.com/Rshep3087/lunchperiod/report"
	"github.com/Rshep3087/lunchperiod/weekly"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type model struct {
	keys   keyMap
	help   help.Model
	styles styles

	// loadingSpinner is shown while records files are read
	loadingSpinner spinner.Model
	loadingState   loadingState

	sessionState         sessionState
	previousSessionState sessionState

	cfg       config.Config
	formatter period.Formatter
	// today is fixed for the life of the program
	today calendar.Date
	// state is the selected reporting period
	state period.State

	loader  report.Loader
	records []report.Record
	// summary totals the records inside the selected period
	summary *report.Bucket

	weekly          weekly.Model
	configView      config.Model
	customRangeForm *huh.Form

	statusMsg string
	errorMsg  string
}

// newModel builds the TUI model starting on the configured period type.
func newModel(cfg config.Config, today calendar.Date) (model, error) {
	typ, err := cfg.Type()
	if err != nil {
		return model{}, err
	}

	state, err := period.Default(today).WithType(typ)
	if err != nil {
		return model{}, err
	}

	theme := newTheme(cfg.Colors)
	formatter := cfg.Formatter()

	configView := config.New(string(theme.Primary))
	configView.SetConfig(cfg)

	m := model{
		keys:           initializeKeyMap(),
		help:           createHelpModel(theme),
		styles:         createStyles(theme),
		loadingSpinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loadingState:   newLoadingState("records"),
		sessionState:   periodView,
		cfg:            cfg,
		formatter:      formatter,
		today:          today,
		state:          state,
		loader:         report.Loader{Currency: cfg.Currency, Logger: log.Default()},
		weekly:         weekly.New(weekly.Colors{Primary: string(theme.Primary)}, formatter.DateLayout),
		configView:     configView,
	}

	if len(cfg.Records) == 0 {
		m.loadingState.set("records")
	} else {
		m.sessionState = loading
	}

	m.weekly.SetFocus(true)
	m.refresh()
	return m, nil
}

func (m model) Init() tea.Cmd {
	if len(m.cfg.Records) == 0 {
		return nil
	}

	return tea.Batch(m.loadRecords, m.loadingSpinner.Tick)
}

type loadRecordsMsg struct {
	records []report.Record
	err     error
}

func (m model) loadRecords() tea.Msg {
	records, err := m.loader.Load(context.Background(), m.cfg.Records...)
	return loadRecordsMsg{records: records, err: err}
}

// reloadRecords reads the records files again.
func reloadRecords(m *model) (tea.Model, tea.Cmd) {
	m.loadingState.unset("records")
	m.previousSessionState = m.sessionState
	m.sessionState = loading
	return m, tea.Batch(m.loadRecords, m.loadingSpinner.Tick)
}

// rootAction runs the TUI.
func rootAction(_ context.Context, cfg config.Config, today calendar.Date) error {
	if cfg.Debug {
		f, err := tea.LogToFile(appName+".log", appName)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}

	m, err := newModel(cfg, today)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
