package main

import (
	"os"
	"path/filepath"

	"github.com/Rshep3087/lunchperiod/config"
	"github.com/spf13/viper"
)

const appName = "lunchperiod"

// configSearchPaths returns the directories searched for lunchperiod.toml
// in order of precedence (first found wins).
func configSearchPaths() []string {
	// Current directory (highest precedence)
	paths := []string{"."}

	// User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, appName))
	}

	// User home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, homeDir, filepath.Join(homeDir, ".config", appName))
	}

	// System-wide config directory (lowest precedence)
	paths = append(paths, filepath.Join("/etc", appName))

	return paths
}

// setConfigDefaults registers the built-in defaults with v.
func setConfigDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("period_type", d.PeriodType)
	v.SetDefault("date_layout", d.DateLayout)
	v.SetDefault("separator", d.Separator)
	v.SetDefault("current_month_token", d.CurrentMonthToken)
	v.SetDefault("currency", d.Currency)
}

// loadConfig builds the effective configuration from v.
func loadConfig(v *viper.Viper) config.Config {
	return config.Config{
		Debug:             v.GetBool("debug"),
		PeriodType:        v.GetString("period_type"),
		DateLayout:        v.GetString("date_layout"),
		Separator:         v.GetString("separator"),
		CurrentMonthToken: v.GetString("current_month_token"),
		Currency:          v.GetString("currency"),
		Records:           v.GetStringSlice("records"),
		Colors: config.Colors{
			Primary:       v.GetString("colors.primary"),
			Error:         v.GetString("colors.error"),
			Muted:         v.GetString("colors.muted"),
			Border:        v.GetString("colors.border"),
			Text:          v.GetString("colors.text"),
			SecondaryText: v.GetString("colors.secondary_text"),
		},
	}
}
