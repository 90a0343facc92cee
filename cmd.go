package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/config"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// env is the configuration and clock reading shared by every command.
type env struct {
	cfg   config.Config
	today calendar.Date
}

// Global variables for configuration.
var (
	cfgFile   string
	todayFlag string
	appEnv    = &env{cfg: config.Defaults()}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Browse spending by day, week, month, year or custom range",
	Long: `A terminal UI and CLI for moving between reporting periods and ` +
		`breaking a month down into weekly totals.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		appEnv.cfg = loadConfig(viper.GetViper())

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if appEnv.cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		today, err := resolveToday(todayFlag, time.Now())
		if err != nil {
			return err
		}
		appEnv.today = today

		log.Debug("resolved environment", "today", today, "period_type", appEnv.cfg.PeriodType)
		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), appEnv.cfg, appEnv.today)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/lunchperiod/lunchperiod.toml)")
	flags.StringVar(&todayFlag, "today", "", "treat this date as today (YYYY-MM-DD)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("period-type", "month", "period selected at startup: day, week, month, year or custom")
	flags.String("date-layout", "", "Go time layout used in labels")
	flags.String("separator", "", "text joining the two ends of a range label")
	flags.String("currency", "", "currency for records that do not name one")
	flags.StringSlice("records", nil, "files of dated amounts (.json, .yaml, .csv)")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("period_type", flags.Lookup("period-type"))
	_ = viper.BindPFlag("date_layout", flags.Lookup("date-layout"))
	_ = viper.BindPFlag("separator", flags.Lookup("separator"))
	_ = viper.BindPFlag("currency", flags.Lookup("currency"))
	_ = viper.BindPFlag("records", flags.Lookup("records"))

	setConfigDefaults(viper.GetViper())

	// Add subcommands
	rootCmd.AddCommand(newLabelCmd(appEnv))
	rootCmd.AddCommand(newNextCmd(appEnv))
	rootCmd.AddCommand(newPreviousCmd(appEnv))
	rootCmd.AddCommand(newWeeksCmd(appEnv))
	rootCmd.AddCommand(newReportCmd(appEnv))
	rootCmd.AddCommand(newConfigCmd(appEnv))
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "error", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("toml")
		for _, path := range configSearchPaths() {
			viper.AddConfigPath(path)
		}
	}

	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())
}

// resolveToday parses the --today override, falling back to the calendar day of now.
func resolveToday(override string, now time.Time) (calendar.Date, error) {
	if override == "" {
		return calendar.FromTime(now), nil
	}

	today, err := calendar.Parse(override)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid --today: %w", err)
	}
	return today, nil
}

// Utility functions for output formatting.
func outputJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
