package weekly

import (
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/report"
	"github.com/Rshep3087/lunchperiod/weeks"
	"github.com/carlmjohnson/be"
)

var january = calendar.YearMonth{Year: 2024, Month: time.January}

func TestNew(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"}, "02/01/2006")

	columns := model.buckets.Columns()
	be.Equal(t, 6, len(columns))
	be.Equal(t, "Week", columns[0].Title)
	be.Equal(t, "Total", columns[5].Title)
}

func TestSetSegments(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"}, "02/01/2006")

	segments, err := weeks.Partition(january)
	be.NilErr(t, err)
	model.SetSegments(segments)

	rows := model.Rows()
	be.Equal(t, 5, len(rows))
	be.Equal(t, "W1", rows[0][0])
	be.Equal(t, "01/01/2024", rows[0][1])
	be.Equal(t, "07/01/2024", rows[0][2])
	be.Equal(t, "3", rows[4][3])
	be.Equal(t, "-", rows[4][5])
}

func TestSetReport(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"}, "2006-01-02")

	d, err := calendar.Parse("2024-01-09")
	be.NilErr(t, err)

	w, err := report.BuildWeekly(january, "USD", []report.Record{
		{Date: d, Amount: money.New(1234, "USD")},
	})
	be.NilErr(t, err)
	model.SetReport(w)

	rows := model.Rows()
	be.Equal(t, 5, len(rows))
	be.Equal(t, "2024-01-08", rows[1][1])
	be.Equal(t, "1", rows[1][4])
	be.Equal(t, "$12.34", rows[1][5])
	be.Equal(t, "0", rows[0][4])
}

func TestSetFocusAndSize(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"}, "02/01/2006")

	model.SetFocus(true)
	be.True(t, model.Focused())
	model.SetSize(100, 20)
	model.SetFocus(false)
	be.False(t, model.Focused())
	be.Nonzero(t, model.View())
}
