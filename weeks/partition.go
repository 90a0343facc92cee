// Package weeks partitions a calendar month into week segments used as
// aggregation buckets.
//
// Segments follow ISO weeks (Monday to Sunday) clipped to the month, so the
// first and last segment may be shorter than seven days.
package weeks

import (
	"fmt"

	"github.com/Rshep3087/lunchperiod/calendar"
)

// ErrInvalidMonth is returned for a month outside 1-12 or an unsupported year.
var ErrInvalidMonth = calendar.ErrInvalidMonth

// Segment is one week of a month partition, bounds included.
type Segment = calendar.DateRange

// Partition splits ym into ascending, contiguous, non-overlapping segments
// whose union is the whole month. A month yields 4, 5 or 6 segments.
func Partition(ym calendar.YearMonth) ([]Segment, error) {
	if err := ym.Validate(); err != nil {
		return nil, err
	}

	monthStart, monthEnd := ym.First(), ym.Last()

	segments := make([]Segment, 0, 6)
	for cursor := monthStart.StartOfWeek(); !cursor.After(monthEnd); {
		weekEnd := cursor.AddDays(6)
		segments = append(segments, Segment{
			Start: calendar.Max(cursor, monthStart),
			End:   calendar.Min(weekEnd, monthEnd),
		})
		cursor = weekEnd.AddDays(1)
	}

	return segments, nil
}

// Find returns the index of the segment containing d, or -1.
func Find(segments []Segment, d calendar.Date) int {
	for i, s := range segments {
		if s.Contains(d) {
			return i
		}
	}
	return -1
}

// Label names a segment by its position and its bounds formatted with
// layout, e.g. "W1 01/01-07/01" for layout "02/01".
func Label(index int, s Segment, layout string) string {
	return fmt.Sprintf("W%d %s-%s", index+1, s.Start.Format(layout), s.End.Format(layout))
}
