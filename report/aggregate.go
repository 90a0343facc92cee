package report

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/weeks"
)

// Bucket is the total of the records falling inside one range.
type Bucket struct {
	Range calendar.DateRange
	Total *money.Money
	Count int
}

// Weekly is a month broken down into week buckets.
type Weekly struct {
	Month   calendar.YearMonth
	Buckets []Bucket
	Total   *money.Money
	// Skipped counts records dated outside the month.
	Skipped int
}

// BuildWeekly partitions ym into weeks and sums each record into the
// segment containing its date. Every record must be in currency.
func BuildWeekly(ym calendar.YearMonth, currency string, records []Record) (*Weekly, error) {
	segments, err := weeks.Partition(ym)
	if err != nil {
		return nil, err
	}

	w := &Weekly{
		Month:   ym,
		Buckets: make([]Bucket, len(segments)),
		Total:   money.New(0, currency),
	}
	for i, s := range segments {
		w.Buckets[i] = Bucket{Range: s, Total: money.New(0, currency)}
	}

	for _, r := range records {
		i := weeks.Find(segments, r.Date)
		if i < 0 {
			w.Skipped++
			continue
		}

		if err = w.Buckets[i].add(r); err != nil {
			return nil, err
		}
		if w.Total, err = w.Total.Add(r.Amount); err != nil {
			return nil, fmt.Errorf("record on %s: %w", r.Date, err)
		}
	}

	return w, nil
}

// Summarize sums the records dated inside rng.
func Summarize(rng calendar.DateRange, currency string, records []Record) (Bucket, int, error) {
	b := Bucket{Range: rng, Total: money.New(0, currency)}
	skipped := 0

	for _, r := range records {
		if !rng.Contains(r.Date) {
			skipped++
			continue
		}
		if err := b.add(r); err != nil {
			return Bucket{}, 0, err
		}
	}

	return b, skipped, nil
}

func (b *Bucket) add(r Record) error {
	total, err := b.Total.Add(r.Amount)
	if err != nil {
		return fmt.Errorf("record on %s: %w", r.Date, err)
	}

	b.Total = total
	b.Count++
	return nil
}
