package calendar

import "fmt"

// DateRange is an inclusive span of days. Start is never after End.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewDateRange returns the range [start, end] or ErrInvalidRange when start is after end.
func NewDateRange(start, end Date) (DateRange, error) {
	r := DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate returns ErrInvalidRange when Start is after End.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Contains reports whether d falls within the range, bounds included.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of days in the range, bounds included.
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// Shift returns the range moved by n days without changing its length.
func (r DateRange) Shift(n int) DateRange {
	return DateRange{Start: r.Start.AddDays(n), End: r.End.AddDays(n)}
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s - %s", r.Start, r.End)
}
