package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/config"
	"github.com/Rshep3087/lunchperiod/period"
	"github.com/carlmjohnson/be"
	"github.com/spf13/cobra"
)

func testEnv(t *testing.T) *env {
	t.Helper()
	return &env{cfg: config.Defaults(), today: day(t, "2024-01-31")}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestLabelCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLabel string
		wantDays  int
	}{
		{
			name:      "current month",
			args:      []string{"-o", "json"},
			wantLabel: "This month",
			wantDays:  31,
		},
		{
			name:      "other month",
			args:      []string{"-t", "month", "-d", "2024-03-15", "-o", "json"},
			wantLabel: "01/03/2024 - 31/03/2024",
			wantDays:  31,
		},
		{
			name:      "week",
			args:      []string{"--type", "week", "--date", "2024-03-06", "-o", "json"},
			wantLabel: "04/03/2024 - 10/03/2024",
			wantDays:  7,
		},
		{
			name:      "year",
			args:      []string{"-t", "year", "-o", "json"},
			wantLabel: "2024",
			wantDays:  366,
		},
		{
			name:      "custom",
			args:      []string{"-t", "custom", "--start", "2024-03-01", "--end", "2024-03-10", "-o", "json"},
			wantLabel: "01/03/2024 - 10/03/2024",
			wantDays:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, newLabelCmd(testEnv(t)), tt.args...)
			be.NilErr(t, err)

			var got periodOutput
			be.NilErr(t, json.Unmarshal([]byte(out), &got))
			be.Equal(t, tt.wantLabel, got.Label)
			be.Equal(t, tt.wantDays, got.Days)
		})
	}
}

func TestLabelCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "reversed custom range",
			args:    []string{"-t", "custom", "--start", "2024-03-10", "--end", "2024-03-01"},
			wantErr: period.ErrInvalidRange,
		},
		{
			name:    "invalid date",
			args:    []string{"-d", "2023-02-29"},
			wantErr: calendar.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, newLabelCmd(testEnv(t)), tt.args...)
			be.True(t, errors.Is(err, tt.wantErr))
		})
	}

	t.Run("custom without bounds", func(t *testing.T) {
		_, err := execute(t, newLabelCmd(testEnv(t)), "-t", "custom")
		be.Nonzero(t, err)
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, err := execute(t, newLabelCmd(testEnv(t)), "-o", "xml")
		be.Nonzero(t, err)
	})
}

func TestStepCommands(t *testing.T) {
	tests := []struct {
		name      string
		cmd       func(*env) *cobra.Command
		args      []string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "next custom",
			cmd:       newNextCmd,
			args:      []string{"-t", "custom", "--start", "2024-03-01", "--end", "2024-03-10"},
			wantStart: "2024-03-11",
			wantEnd:   "2024-03-20",
		},
		{
			name:      "previous custom",
			cmd:       newPreviousCmd,
			args:      []string{"-t", "custom", "--start", "2024-03-01", "--end", "2024-03-10"},
			wantStart: "2024-02-20",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "next leap year day",
			cmd:       newNextCmd,
			args:      []string{"-t", "day", "-d", "2024-02-28"},
			wantStart: "2024-02-29",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "next year from Feb 29",
			cmd:       newNextCmd,
			args:      []string{"-t", "year", "-d", "2024-02-29"},
			wantStart: "2025-01-01",
			wantEnd:   "2025-12-31",
		},
		{
			name:      "several months back",
			cmd:       newPreviousCmd,
			args:      []string{"-d", "2024-01-31", "-n", "13"},
			wantStart: "2022-12-01",
			wantEnd:   "2022-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-o", "json")
			out, err := execute(t, tt.cmd(testEnv(t)), args...)
			be.NilErr(t, err)

			var got periodOutput
			be.NilErr(t, json.Unmarshal([]byte(out), &got))
			be.Equal(t, day(t, tt.wantStart), got.Start)
			be.Equal(t, day(t, tt.wantEnd), got.End)
		})
	}

	t.Run("year reference re-anchored", func(t *testing.T) {
		out, err := execute(t, newNextCmd(testEnv(t)), "-t", "year", "-d", "2024-02-29", "-o", "json")
		be.NilErr(t, err)

		var got periodOutput
		be.NilErr(t, json.Unmarshal([]byte(out), &got))
		be.Equal(t, day(t, "2025-02-28"), got.Reference)
	})

	t.Run("invalid steps", func(t *testing.T) {
		_, err := execute(t, newNextCmd(testEnv(t)), "-n", "0")
		be.Nonzero(t, err)
	})

	t.Run("prev alias", func(t *testing.T) {
		be.Equal(t, "prev", newPreviousCmd(testEnv(t)).Aliases[0])
	})
}

func TestWeeksCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := execute(t, newWeeksCmd(testEnv(t)), "--month", "2024-01", "-o", "json")
		be.NilErr(t, err)

		var got []segmentOutput
		be.NilErr(t, json.Unmarshal([]byte(out), &got))
		be.Equal(t, 5, len(got))
		be.Equal(t, day(t, "2024-01-01"), got[0].Start)
		be.Equal(t, day(t, "2024-01-07"), got[0].End)
		be.Equal(t, day(t, "2024-01-31"), got[4].End)
		be.Equal(t, 3, got[4].Days)
		be.Equal(t, 1, got[0].ISOWeek)
		be.Equal(t, "W1 01/01/2024-07/01/2024", got[0].Label)
	})

	t.Run("label follows the configured layout", func(t *testing.T) {
		e := testEnv(t)
		e.cfg.DateLayout = "2006-01-02"

		out, err := execute(t, newWeeksCmd(e), "--month", "2021-01", "-o", "json")
		be.NilErr(t, err)

		var got []segmentOutput
		be.NilErr(t, json.Unmarshal([]byte(out), &got))
		be.Equal(t, "W1 2021-01-01-2021-01-03", got[0].Label)
		// Friday 1 January 2021 belongs to ISO week 53 of 2020
		be.Equal(t, 53, got[0].ISOWeek)
		be.Equal(t, 1, got[1].ISOWeek)
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		out, err := execute(t, newWeeksCmd(testEnv(t)), "-o", "json")
		be.NilErr(t, err)

		var got []segmentOutput
		be.NilErr(t, json.Unmarshal([]byte(out), &got))
		be.Equal(t, day(t, "2024-01-01"), got[0].Start)
	})

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, newWeeksCmd(testEnv(t)), "-m", "2024-02")
		be.NilErr(t, err)
		be.True(t, strings.Contains(out, "29/02/2024"))
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := execute(t, newWeeksCmd(testEnv(t)), "--month", "2024-13")
		be.True(t, errors.Is(err, calendar.ErrInvalidMonth))
	})
}

func TestReportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	content := `[
		{"date": "2024-01-02", "amount": "12.50"},
		{"date": "2024-01-30", "amount": 5},
		{"date": "2024-02-01", "amount": 1}
	]`
	be.NilErr(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("month with weeks", func(t *testing.T) {
		e := testEnv(t)
		e.cfg.Records = []string{path}

		out, err := execute(t, newReportCmd(e), "-o", "json")
		be.NilErr(t, err)

		var got reportOutput
		be.NilErr(t, json.Unmarshal([]byte(out), &got))
		be.Equal(t, "This month", got.Label)
		be.Equal(t, int64(1750), got.Total.Cents)
		be.Equal(t, 2, got.Total.Count)
		be.Equal(t, 1, got.Skipped)
		be.Equal(t, 5, len(got.Weeks))
		be.Equal(t, int64(1250), got.Weeks[0].Cents)
	})

	t.Run("day has no weeks", func(t *testing.T) {
		e := testEnv(t)
		e.cfg.Records = []string{path}

		out, err := execute(t, newReportCmd(e), "-t", "day", "-d", "2024-02-01", "-o", "json")
		be.NilErr(t, err)

		var got reportOutput
		be.NilErr(t, json.Unmarshal([]byte(out), &got))
		be.Equal(t, int64(100), got.Total.Cents)
		be.Equal(t, 0, len(got.Weeks))
	})

	t.Run("no records", func(t *testing.T) {
		_, err := execute(t, newReportCmd(testEnv(t)))
		be.Nonzero(t, err)
	})
}

func TestConfigShowCommand(t *testing.T) {
	e := testEnv(t)
	e.cfg.Currency = "EUR"

	out, err := execute(t, newConfigCmd(e), "show")
	be.NilErr(t, err)
	be.True(t, strings.Contains(out, "currency"))
	be.True(t, strings.Contains(out, "EUR"))
}

func TestResolveToday(t *testing.T) {
	now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)

	got, err := resolveToday("", now)
	be.NilErr(t, err)
	be.Equal(t, day(t, "2024-03-05"), got)

	got, err = resolveToday("2020-02-29", now)
	be.NilErr(t, err)
	be.Equal(t, day(t, "2020-02-29"), got)

	_, err = resolveToday("2021-02-29", now)
	be.True(t, errors.Is(err, calendar.ErrInvalidDate))
}
