package period

import (
	"time"

	"github.com/Rshep3087/lunchperiod/calendar"
)

// Next returns the period after s.
func (s State) Next() (State, error) {
	return s.step(1)
}

// Previous returns the period before s.
func (s State) Previous() (State, error) {
	return s.step(-1)
}

// step moves s by dir periods, dir being +1 or -1.
func (s State) step(dir int) (State, error) {
	if err := s.Validate(); err != nil {
		return State{}, err
	}

	next := s
	var err error
	switch s.typ {
	case Day:
		next.reference, err = supported(s.reference.AddDays(dir))
	case Week:
		next.reference, err = supported(s.reference.AddDays(7 * dir))
	case Month:
		next.reference, err = supported(s.reference.YearMonth().AddMonths(dir).First())
	case Year:
		next.reference, err = shiftYear(s.reference, dir)
	case Custom:
		next.custom = s.custom.Shift(s.custom.Days() * dir)
		if _, err = supported(next.custom.Start); err == nil {
			_, err = supported(next.custom.End)
		}
		next.reference = next.custom.Start
	}
	if err != nil {
		return State{}, err
	}

	return next, nil
}

// supported returns d, or ErrInvalidDate when d lies outside the supported years.
func supported(d calendar.Date) (calendar.Date, error) {
	return calendar.New(d.Year(), d.Month(), d.Day())
}

// shiftYear moves d by n years, re-anchoring Feb 29 to Feb 28 when the
// destination year has no leap day.
func shiftYear(d calendar.Date, n int) (calendar.Date, error) {
	year := d.Year() + n
	day := d.Day()
	if d.Month() == time.February && day == 29 && !calendar.IsLeap(year) {
		day = 28
	}

	return calendar.New(year, d.Month(), day)
}
