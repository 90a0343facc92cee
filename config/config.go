package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rshep3087/lunchperiod/period"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Colors overrides theme colors. Values are hex ("#ff0000") or ANSI ("21").
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Muted         string `toml:"muted"`
	Border        string `toml:"border"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// PeriodType is the period selected at startup
	PeriodType string `toml:"period_type"`
	// DateLayout is the Go time layout used in labels
	DateLayout string `toml:"date_layout"`
	// Separator joins the two ends of a range label
	Separator string `toml:"separator"`
	// CurrentMonthToken replaces the label of the month containing today
	CurrentMonthToken string `toml:"current_month_token"`
	// Currency is used for records that do not name one
	Currency string `toml:"currency"`
	// Records are files of dated amounts shown in the weekly breakdown
	Records []string `toml:"records"`
	Colors  Colors   `toml:"colors"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		PeriodType:        period.Month.String(),
		DateLayout:        period.DefaultFormatter.DateLayout,
		Separator:         period.DefaultFormatter.Separator,
		CurrentMonthToken: period.DefaultFormatter.CurrentMonthToken,
		Currency:          "USD",
	}
}

// Formatter returns the label formatter described by the configuration.
func (c Config) Formatter() period.Formatter {
	f := period.DefaultFormatter
	if c.DateLayout != "" {
		f.DateLayout = c.DateLayout
	}
	if c.Separator != "" {
		f.Separator = c.Separator
	}
	if c.CurrentMonthToken != "" {
		f.CurrentMonthToken = c.CurrentMonthToken
	}
	return f
}

// Type returns the configured startup period type, month when unset.
func (c Config) Type() (period.Type, error) {
	if c.PeriodType == "" {
		return period.Month, nil
	}
	return period.ParseType(c.PeriodType)
}

// TOML renders the configuration as a TOML document.
func (c Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New(primary string) Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 22},
			{Title: "Value", Width: 30},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(primary))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func displayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return strconv.Quote(value)
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	records := "(none)"
	if len(config.Records) > 0 {
		records = strings.Join(config.Records, ", ")
	}

	rows := []table.Row{
		{"Debug", strconv.FormatBool(config.Debug), "Enable debug logging"},
		{"Period Type", displayValue(config.PeriodType), "Period selected at startup"},
		{"Date Layout", displayValue(config.DateLayout), "Go time layout used in labels"},
		{"Separator", displayValue(config.Separator), "Joins the two ends of a range"},
		{"Current Month Token", displayValue(config.CurrentMonthToken), "Label of the month containing today"},
		{"Currency", displayValue(config.Currency), "Currency for records without one"},
		{"Records", records, "Files of dated amounts"},
	}

	m.configTable.SetRows(rows)
}

// Rows returns the rendered settings.
func (m Model) Rows() []table.Row {
	return m.configTable.Rows()
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
