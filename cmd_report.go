package main

import (
	"errors"
	"fmt"

	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/period"
	"github.com/Rshep3087/lunchperiod/report"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// bucketOutput is the JSON form of a report bucket.
type bucketOutput struct {
	Start calendar.Date `json:"start"`
	End   calendar.Date `json:"end"`
	Count int           `json:"count"`
	Total string        `json:"total"`
	Cents int64         `json:"cents"`
}

// reportOutput is the JSON form of a period report.
type reportOutput struct {
	Label    string         `json:"label"`
	Currency string         `json:"currency"`
	Total    bucketOutput   `json:"total"`
	Weeks    []bucketOutput `json:"weeks,omitempty"`
	Skipped  int            `json:"skipped"`
}

func newBucketOutput(b report.Bucket) bucketOutput {
	return bucketOutput{
		Start: b.Range.Start,
		End:   b.Range.End,
		Count: b.Count,
		Total: b.Total.Display(),
		Cents: b.Total.Amount(),
	}
}

func newReportCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Total dated amounts over a period",
		Long: `Total the records in --records files over a period. ` +
			`Month periods are also broken down into weeks.`,
		PreRunE: validateOutputFormat,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := stateFromFlags(cmd, e)
			if err != nil {
				return err
			}

			if len(e.cfg.Records) == 0 {
				return errors.New("no records files given (set --records or records in the config file)")
			}

			loader := report.Loader{Currency: e.cfg.Currency, Logger: log.Default()}
			records, err := loader.Load(cmd.Context(), e.cfg.Records...)
			if err != nil {
				return err
			}

			out, err := buildReport(s, e, records)
			if err != nil {
				return err
			}

			outputFormat, _ := cmd.Flags().GetString("output")
			switch outputFormat {
			case jsonOutputFormat:
				return outputJSON(cmd.OutOrStdout(), out)
			case tableOutputFormat:
				return outputReportTable(cmd, e, out)
			default:
				return errors.New("unsupported output format")
			}
		},
	}
	addPeriodFlags(cmd)
	addOutputFlag(cmd)
	return cmd
}

func buildReport(s period.State, e *env, records []report.Record) (reportOutput, error) {
	f := e.cfg.Formatter()
	label, err := f.Label(s, e.today)
	if err != nil {
		return reportOutput{}, err
	}

	rng, err := s.Range()
	if err != nil {
		return reportOutput{}, err
	}

	total, skipped, err := report.Summarize(rng, e.cfg.Currency, records)
	if err != nil {
		return reportOutput{}, err
	}

	out := reportOutput{
		Label:    label,
		Currency: e.cfg.Currency,
		Total:    newBucketOutput(total),
		Skipped:  skipped,
	}

	if s.Type() == period.Month {
		w, weeklyErr := report.BuildWeekly(s.Reference().YearMonth(), e.cfg.Currency, records)
		if weeklyErr != nil {
			return reportOutput{}, weeklyErr
		}
		for _, b := range w.Buckets {
			out.Weeks = append(out.Weeks, newBucketOutput(b))
		}
	}

	log.Debug("built report", "label", label, "records", total.Count, "skipped", skipped)
	return out, nil
}

func outputReportTable(cmd *cobra.Command, e *env, out reportOutput) error {
	layout := e.cfg.Formatter().DateLayout

	t := createStyledTable("PERIOD", "START", "END", "RECORDS", "TOTAL")
	for i, w := range out.Weeks {
		t.Row(fmt.Sprintf("W%d", i+1), w.Start.Format(layout), w.End.Format(layout), fmt.Sprint(w.Count), w.Total)
	}
	t.Row(out.Label, out.Total.Start.Format(layout), out.Total.End.Format(layout),
		fmt.Sprint(out.Total.Count), out.Total.Total)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}
