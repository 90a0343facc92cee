package main

import (
	"errors"
	"fmt"

	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/weeks"
	"github.com/spf13/cobra"
)

// segmentOutput is the JSON form of one week segment.
type segmentOutput struct {
	Week    int           `json:"week"`
	ISOWeek int           `json:"iso_week"`
	Label   string        `json:"label"`
	Start   calendar.Date `json:"start"`
	End     calendar.Date `json:"end"`
	Days    int           `json:"days"`
}

func newWeeksCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Split a month into weeks",
		Long: `Split a month into Monday-to-Sunday weeks clipped to the month. ` +
			`The first and last week may be shorter than seven days.`,
		PreRunE: validateOutputFormat,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ym, err := monthFlag(cmd, e)
			if err != nil {
				return err
			}

			segments, err := weeks.Partition(ym)
			if err != nil {
				return err
			}

			layout := e.cfg.Formatter().DateLayout
			out := make([]segmentOutput, len(segments))
			for i, s := range segments {
				_, isoWeek := s.Start.ISOWeek()
				out[i] = segmentOutput{
					Week:    i + 1,
					ISOWeek: isoWeek,
					Label:   weeks.Label(i, s, layout),
					Start:   s.Start,
					End:     s.End,
					Days:    s.Days(),
				}
			}

			outputFormat, _ := cmd.Flags().GetString("output")
			switch outputFormat {
			case jsonOutputFormat:
				return outputJSON(cmd.OutOrStdout(), out)
			case tableOutputFormat:
				return outputSegmentsTable(cmd, e, out)
			default:
				return errors.New("unsupported output format")
			}
		},
	}
	cmd.Flags().StringP("month", "m", "", "month to split (YYYY-MM, defaults to the current month)")
	addOutputFlag(cmd)
	return cmd
}

// monthFlag returns the --month flag, or the month containing today.
func monthFlag(cmd *cobra.Command, e *env) (calendar.YearMonth, error) {
	s, _ := cmd.Flags().GetString("month")
	if s == "" {
		return e.today.YearMonth(), nil
	}

	ym, err := calendar.ParseYearMonth(s)
	if err != nil {
		return calendar.YearMonth{}, fmt.Errorf("invalid --month: %w", err)
	}
	return ym, nil
}

func outputSegmentsTable(cmd *cobra.Command, e *env, segments []segmentOutput) error {
	layout := e.cfg.Formatter().DateLayout

	t := createStyledTable("WEEK", "ISO WEEK", "START", "END", "DAYS")
	for _, s := range segments {
		t.Row(fmt.Sprint(s.Week), fmt.Sprint(s.ISOWeek), s.Start.Format(layout), s.End.Format(layout), fmt.Sprint(s.Days))
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}
