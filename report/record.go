// Package report buckets dated amounts into the weeks of a month or the
// days of a reporting period.
package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Record is a single dated amount.
type Record struct {
	Date   calendar.Date
	Amount *money.Money
}

// rawRecord is the on-disk form of a record in every supported format.
type rawRecord struct {
	Date     string      `json:"date" yaml:"date"`
	Amount   json.Number `json:"amount" yaml:"amount"`
	Currency string      `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// Loader reads records from files.
type Loader struct {
	// Currency is used for records that do not name one.
	Currency string
	Logger   *log.Logger
}

// Load reads every path concurrently and returns their records sorted by date.
// The first failure cancels the remaining reads.
func (l Loader) Load(ctx context.Context, paths ...string) ([]Record, error) {
	results := make([][]Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			records, err := l.loadFile(path)
			if err != nil {
				return err
			}

			l.logger().Debug("loaded records", "file", path, "count", len(records))
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Record
	for _, records := range results {
		all = append(all, records...)
	}
	slices.SortStableFunc(all, func(a, b Record) int {
		return a.Date.Compare(b.Date)
	})

	return all, nil
}

func (l Loader) loadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file %s: %w", path, err)
	}
	defer f.Close()

	raws, err := decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse records file %s: %w", path, err)
	}

	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		r, convErr := l.convert(raw)
		if convErr != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, i+1, convErr)
		}
		records = append(records, r)
	}

	return records, nil
}

func decode(r io.Reader, ext string) ([]rawRecord, error) {
	var raws []rawRecord

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.NewDecoder(r).Decode(&raws); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&raws); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case ".csv":
		return decodeCSV(r)
	default:
		return nil, fmt.Errorf("unsupported records format %q (must be .json, .yaml, .yml or .csv)", ext)
	}

	return raws, nil
}

// decodeCSV reads a header row naming date, amount and optionally currency.
func decodeCSV(r io.Reader) ([]rawRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	dateCol, okDate := cols["date"]
	amountCol, okAmount := cols["amount"]
	if !okDate || !okAmount {
		return nil, errors.New("csv header must contain date and amount columns")
	}
	currencyCol, hasCurrency := cols["currency"]

	var raws []rawRecord
	for {
		row, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, readErr
		}

		raw := rawRecord{Date: row[dateCol], Amount: json.Number(strings.TrimSpace(row[amountCol]))}
		if hasCurrency {
			raw.Currency = row[currencyCol]
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

func (l Loader) convert(raw rawRecord) (Record, error) {
	d, err := calendar.Parse(strings.TrimSpace(raw.Date))
	if err != nil {
		return Record{}, err
	}

	amount, err := strconv.ParseFloat(raw.Amount.String(), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Record{}, fmt.Errorf("invalid amount %q", raw.Amount)
	}

	code := strings.ToUpper(strings.TrimSpace(raw.Currency))
	if code == "" {
		code = strings.ToUpper(l.Currency)
	}
	if money.GetCurrency(code) == nil {
		return Record{}, fmt.Errorf("unknown currency %q", code)
	}

	return Record{Date: d, Amount: money.NewFromFloat(amount, code)}, nil
}

func (l Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}
