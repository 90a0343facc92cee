package calendar

import "errors"

var (
	// ErrInvalidRange is returned when a range starts after it ends.
	ErrInvalidRange = errors.New("invalid range: start is after end")
	// ErrInvalidMonth is returned for a month outside 1-12 or a year outside the supported range.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidDate is returned for a year, month and day that do not name a calendar day.
	ErrInvalidDate = errors.New("invalid date")
)
