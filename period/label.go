package period

import "github.com/Rshep3087/lunchperiod/calendar"

// Formatter renders period labels.
type Formatter struct {
	// DateLayout is a time layout used for every date in a label.
	DateLayout string
	// Separator joins the two ends of a range.
	Separator string
	// CurrentMonthToken replaces the range of the month containing today.
	CurrentMonthToken string
}

// DefaultFormatter renders dates as dd/MM/yyyy.
var DefaultFormatter = Formatter{
	DateLayout:        "02/01/2006",
	Separator:         " - ",
	CurrentMonthToken: "This month",
}

// Label returns the display label for s using DefaultFormatter.
func Label(s State, today calendar.Date) (string, error) {
	return DefaultFormatter.Label(s, today)
}

// Label returns the display label for s. A month state on today's month
// yields the current-month token instead of its range.
func (f Formatter) Label(s State, today calendar.Date) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	switch s.typ {
	case Day:
		return s.reference.Format(f.DateLayout), nil
	case Year:
		return s.reference.Format("2006"), nil
	case Month:
		if s.reference.YearMonth() == today.YearMonth() {
			return f.CurrentMonthToken, nil
		}
	}

	r, err := s.Range()
	if err != nil {
		return "", err
	}
	return f.Range(r), nil
}

// Range formats r as two dates joined by the separator.
func (f Formatter) Range(r calendar.DateRange) string {
	return r.Start.Format(f.DateLayout) + f.Separator + r.End.Format(f.DateLayout)
}
