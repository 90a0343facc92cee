package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	be.NilErr(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoaderLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "records.json",
			content: `[{"date": "2024-01-02", "amount": 12.5}, {"date": "2024-01-01", "amount": "3.25", "currency": "usd"}]`,
		},
		{
			name:    "yaml",
			file:    "records.yaml",
			content: "- date: 2024-01-02\n  amount: 12.5\n- date: 2024-01-01\n  amount: \"3.25\"\n  currency: USD\n",
		},
		{
			name:    "csv",
			file:    "records.csv",
			content: "date,amount,currency\n2024-01-02,12.50,\n2024-01-01, 3.25,USD\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			records, err := Loader{Currency: "usd"}.Load(context.Background(), path)
			be.NilErr(t, err)
			be.Equal(t, 2, len(records))

			// sorted by date
			be.Equal(t, "2024-01-01", records[0].Date.String())
			be.Equal(t, int64(325), records[0].Amount.Amount())
			be.Equal(t, "2024-01-02", records[1].Date.String())
			be.Equal(t, int64(1250), records[1].Amount.Amount())
			be.Equal(t, "USD", records[1].Amount.Currency().Code)
		})
	}
}

func TestLoaderLoadMultipleFiles(t *testing.T) {
	a := writeFile(t, "a.csv", "date,amount\n2024-01-05,1\n")
	b := writeFile(t, "b.json", `[{"date": "2024-01-03", "amount": 2}]`)

	records, err := Loader{Currency: "EUR"}.Load(context.Background(), a, b)
	be.NilErr(t, err)
	be.Equal(t, 2, len(records))
	be.Equal(t, "2024-01-03", records[0].Date.String())
	be.Equal(t, "EUR", records[0].Amount.Currency().Code)
}

func TestLoaderLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errText string
	}{
		{name: "bad date", file: "r.json", content: `[{"date": "2023-02-29", "amount": 1}]`, errText: "invalid date"},
		{name: "bad amount", file: "r.csv", content: "date,amount\n2024-01-01,abc\n", errText: "invalid amount"},
		{name: "nan amount", file: "r.csv", content: "date,amount\n2024-01-01,NaN\n", errText: "invalid amount"},
		{name: "infinite amount", file: "r.yaml", content: "- date: 2024-01-01\n  amount: Inf\n", errText: "invalid amount"},
		{name: "negative infinite amount", file: "r.csv", content: "date,amount\n2024-01-01,-inf\n", errText: "invalid amount"},
		{name: "unknown currency", file: "r.json", content: `[{"date": "2024-01-01", "amount": 1, "currency": "XXQ"}]`, errText: "unknown currency"},
		{name: "missing column", file: "r.csv", content: "when,amount\n2024-01-01,1\n", errText: "date and amount"},
		{name: "unsupported format", file: "r.txt", content: "", errText: "unsupported records format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Loader{Currency: "USD"}.Load(context.Background(), path)
			be.Nonzero(t, err)
			be.True(t, strings.Contains(err.Error(), tt.errText))
		})
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := Loader{Currency: "USD"}.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	be.Nonzero(t, err)
}
