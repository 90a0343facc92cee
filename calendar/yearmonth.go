package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a YYYY-MM month.
func ParseYearMonth(s string) (YearMonth, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return YearMonth{}, fmt.Errorf("%w: %q (expected YYYY-MM)", ErrInvalidMonth, s)
	}

	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: year %q", ErrInvalidMonth, parts[0])
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: month %q", ErrInvalidMonth, parts[1])
	}

	ym := YearMonth{Year: y, Month: time.Month(m)}
	if err = ym.Validate(); err != nil {
		return YearMonth{}, err
	}

	return ym, nil
}

// Validate returns ErrInvalidMonth when ym is outside 1-12 or its year is unsupported.
func (ym YearMonth) Validate() error {
	if ym.Month < time.January || ym.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidMonth, int(ym.Month))
	}
	if ym.Year < MinYear || ym.Year > MaxYear {
		return fmt.Errorf("%w: year %d out of range %d-%d", ErrInvalidMonth, ym.Year, MinYear, MaxYear)
	}
	return nil
}

// First returns the first day of a valid month.
func (ym YearMonth) First() Date {
	return Date{year: ym.Year, month: ym.Month, day: 1}
}

// Last returns the last day of a valid month.
func (ym YearMonth) Last() Date {
	return Date{year: ym.Year, month: ym.Month, day: DaysIn(ym.Year, ym.Month)}
}

// Range returns the whole of a valid month.
func (ym YearMonth) Range() DateRange {
	return DateRange{Start: ym.First(), End: ym.Last()}
}

// AddMonths returns the month n months after ym, carrying into the year.
func (ym YearMonth) AddMonths(n int) YearMonth {
	total := ym.Year*12 + int(ym.Month-time.January) + n
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: time.January + time.Month(month)}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
