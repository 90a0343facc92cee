package period

import (
	"fmt"
	"strings"
)

// Type is the kind of reporting period a State selects.
type Type int

const (
	Day Type = iota
	Week
	Month
	Year
	Custom
)

// Types lists every period type in switch-range order.
var Types = []Type{Day, Week, Month, Year, Custom}

func (t Type) String() string {
	switch t {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	case Custom:
		return "custom"
	}

	return "unknown"
}

// Next returns the type after t in switch-range order, wrapping to Day.
func (t Type) Next() Type {
	return Types[(int(t)+1)%len(Types)]
}

func (t Type) valid() bool {
	return t >= Day && t <= Custom
}

// ParseType parses the text form of a period type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "today":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	case "custom":
		return Custom, nil
	}

	return Day, fmt.Errorf("unknown period type %q (must be one of %v)", s, Types)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
