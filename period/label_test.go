package period

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestLabel(t *testing.T) {
	today := date(t, "2024-05-17")

	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{name: "day", state: mustNew(t, Day, "2024-03-05"), expected: "05/03/2024"},
		{name: "week", state: mustNew(t, Week, "2024-03-05"), expected: "04/03/2024 - 10/03/2024"},
		{name: "week spanning months", state: mustNew(t, Week, "2024-03-01"), expected: "26/02/2024 - 03/03/2024"},
		{name: "other month", state: mustNew(t, Month, "2024-02-10"), expected: "01/02/2024 - 29/02/2024"},
		{name: "current month", state: mustNew(t, Month, "2024-05-01"), expected: "This month"},
		{name: "same month last year", state: mustNew(t, Month, "2023-05-17"), expected: "01/05/2023 - 31/05/2023"},
		{name: "year", state: mustNew(t, Year, "2024-03-05"), expected: "2024"},
		{name: "early year is four digits", state: mustNew(t, Year, "0987-03-05"), expected: "0987"},
		{name: "custom", state: mustCustom(t, "2024-03-01", "2024-03-10"), expected: "01/03/2024 - 10/03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Label(tt.state, today)
			be.NilErr(t, err)
			be.Equal(t, tt.expected, got)
		})
	}
}

func TestLabelCurrentMonthUsesToday(t *testing.T) {
	today := date(t, "2026-10-17")
	got, err := Label(Default(today), today)
	be.NilErr(t, err)
	be.Equal(t, DefaultFormatter.CurrentMonthToken, got)

	next, err := Default(today).Next()
	be.NilErr(t, err)
	got, err = Label(next, today)
	be.NilErr(t, err)
	be.Equal(t, "01/11/2026 - 30/11/2026", got)
}

func TestFormatterLabel(t *testing.T) {
	f := Formatter{DateLayout: "2006-01-02", Separator: " to ", CurrentMonthToken: "Now"}
	today := date(t, "2024-05-17")

	got, err := f.Label(mustNew(t, Week, "2024-05-15"), today)
	be.NilErr(t, err)
	be.Equal(t, "2024-05-13 to 2024-05-19", got)

	got, err = f.Label(mustNew(t, Month, "2024-05-30"), today)
	be.NilErr(t, err)
	be.Equal(t, "Now", got)

	got, err = f.Label(mustNew(t, Day, "2024-05-30"), today)
	be.NilErr(t, err)
	be.True(t, strings.HasPrefix(got, "2024"))
}
