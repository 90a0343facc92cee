// Package period holds the reporting period a user has selected and the
// transitions between periods.
//
// A State is an immutable value. Navigation never mutates it; Next, Previous
// and WithType return a new State. Nothing in this package reads the system
// clock: callers pass "today" explicitly.
package period

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rshep3087/lunchperiod/calendar"
)

// ErrInvalidRange is returned for a custom period whose start is after its end.
var ErrInvalidRange = calendar.ErrInvalidRange

// State is the complete description of the selected reporting period.
type State struct {
	typ       Type
	reference calendar.Date
	custom    calendar.DateRange
}

// New returns a Day, Week, Month or Year state anchored on reference.
func New(t Type, reference calendar.Date) (State, error) {
	if t == Custom {
		return State{}, errors.New("custom period needs a start and an end, use NewCustom")
	}
	if !t.valid() {
		return State{}, fmt.Errorf("unknown period type %d", int(t))
	}
	if reference.IsZero() {
		return State{}, fmt.Errorf("%w: missing reference date", calendar.ErrInvalidDate)
	}

	return State{typ: t, reference: reference}, nil
}

// NewCustom returns a custom state covering [start, end]. It fails with
// ErrInvalidRange when start is after end; the bounds are never swapped.
func NewCustom(start, end calendar.Date) (State, error) {
	r, err := calendar.NewDateRange(start, end)
	if err != nil {
		return State{}, err
	}

	return State{typ: Custom, reference: start, custom: r}, nil
}

// Default returns the conventional initial state: the month containing today.
func Default(today calendar.Date) State {
	return State{typ: Month, reference: today}
}

func (s State) Type() Type { return s.typ }

// Reference returns the date Day, Week, Month and Year states are anchored on.
// For a custom state it is the custom start.
func (s State) Reference() calendar.Date { return s.reference }

// CustomRange returns the custom bounds. It is the zero range for other types.
func (s State) CustomRange() calendar.DateRange { return s.custom }

// Validate reports whether s can be labelled and navigated.
func (s State) Validate() error {
	if !s.typ.valid() {
		return fmt.Errorf("unknown period type %d", int(s.typ))
	}
	if s.typ == Custom {
		return s.custom.Validate()
	}
	if s.reference.IsZero() {
		return fmt.Errorf("%w: missing reference date", calendar.ErrInvalidDate)
	}
	return nil
}

// Range returns the days s covers, bounds included.
func (s State) Range() (calendar.DateRange, error) {
	if err := s.Validate(); err != nil {
		return calendar.DateRange{}, err
	}

	d := s.reference
	switch s.typ {
	case Day:
		return calendar.DateRange{Start: d, End: d}, nil
	case Week:
		return calendar.DateRange{Start: d.StartOfWeek(), End: d.EndOfWeek()}, nil
	case Month:
		return d.YearMonth().Range(), nil
	case Year:
		return calendar.DateRange{
			Start: calendar.YearMonth{Year: d.Year(), Month: time.January}.First(),
			End:   calendar.YearMonth{Year: d.Year(), Month: time.December}.Last(),
		}, nil
	}

	return s.custom, nil
}

// WithType returns a state of type t covering the period s is on. Switching
// to Custom adopts the range s covers; switching away from Custom anchors on
// the custom start.
func (s State) WithType(t Type) (State, error) {
	if err := s.Validate(); err != nil {
		return State{}, err
	}

	if t == Custom {
		r, err := s.Range()
		if err != nil {
			return State{}, err
		}
		return NewCustom(r.Start, r.End)
	}

	return New(t, s.reference)
}

func (s State) String() string {
	r, err := s.Range()
	if err != nil {
		return fmt.Sprintf("%s (invalid)", s.typ)
	}
	return fmt.Sprintf("%s %s", s.typ, r)
}
