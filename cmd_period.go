package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Rshep3087/lunchperiod/calendar"
	"github.com/Rshep3087/lunchperiod/period"
	"github.com/spf13/cobra"
)

// periodOutput is the JSON and table form of a period state.
type periodOutput struct {
	Type      string        `json:"type"`
	Label     string        `json:"label"`
	Reference calendar.Date `json:"reference"`
	Start     calendar.Date `json:"start"`
	End       calendar.Date `json:"end"`
	Days      int           `json:"days"`
}

// addPeriodFlags registers the flags that describe a period state.
func addPeriodFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "period type: day, week, month, year or custom (default from config)")
	cmd.Flags().StringP("date", "d", "", "reference date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().String("start", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "custom range end (YYYY-MM-DD)")
}

// addOutputFlag registers the output format flag.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func validateOutputFormat(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}
	return nil
}

// stateFromFlags builds the period state described by the period flags.
func stateFromFlags(cmd *cobra.Command, e *env) (period.State, error) {
	typeStr, _ := cmd.Flags().GetString("type")
	if typeStr == "" {
		typeStr = e.cfg.PeriodType
	}

	typ := period.Month
	if typeStr != "" {
		parsed, err := period.ParseType(typeStr)
		if err != nil {
			return period.State{}, err
		}
		typ = parsed
	}

	if typ == period.Custom {
		start, err := dateFlag(cmd, "start", calendar.Date{})
		if err != nil {
			return period.State{}, err
		}
		end, err := dateFlag(cmd, "end", calendar.Date{})
		if err != nil {
			return period.State{}, err
		}
		if start.IsZero() || end.IsZero() {
			return period.State{}, errors.New("custom period requires --start and --end")
		}
		return period.NewCustom(start, end)
	}

	ref, err := dateFlag(cmd, "date", e.today)
	if err != nil {
		return period.State{}, err
	}
	return period.New(typ, ref)
}

func dateFlag(cmd *cobra.Command, name string, fallback calendar.Date) (calendar.Date, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return fallback, nil
	}

	d, err := calendar.Parse(s)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return d, nil
}

func describeState(s period.State, f period.Formatter, today calendar.Date) (periodOutput, error) {
	label, err := f.Label(s, today)
	if err != nil {
		return periodOutput{}, err
	}

	r, err := s.Range()
	if err != nil {
		return periodOutput{}, err
	}

	return periodOutput{
		Type:      s.Type().String(),
		Label:     label,
		Reference: s.Reference(),
		Start:     r.Start,
		End:       r.End,
		Days:      r.Days(),
	}, nil
}

func newLabelCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "label",
		Short:   "Print the label of a period",
		Long:    `Print the display label of a period, e.g. "This month" or "04/03/2024 - 10/03/2024".`,
		PreRunE: validateOutputFormat,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := stateFromFlags(cmd, e)
			if err != nil {
				return err
			}
			return printState(cmd, e, s)
		},
	}
	addPeriodFlags(cmd)
	addOutputFlag(cmd)
	return cmd
}

func newNextCmd(e *env) *cobra.Command {
	return newStepCmd(e, "next", "Move forward by one or more periods", period.State.Next)
}

func newPreviousCmd(e *env) *cobra.Command {
	cmd := newStepCmd(e, "previous", "Move back by one or more periods", period.State.Previous)
	cmd.Aliases = []string{"prev"}
	return cmd
}

func newStepCmd(e *env, use, short string, step func(period.State) (period.State, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		PreRunE: validateOutputFormat,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := stateFromFlags(cmd, e)
			if err != nil {
				return err
			}

			steps, _ := cmd.Flags().GetInt("steps")
			if steps < 1 {
				return fmt.Errorf("invalid --steps: %d (must be at least 1)", steps)
			}

			for range steps {
				if s, err = step(s); err != nil {
					return err
				}
			}

			return printState(cmd, e, s)
		},
	}
	addPeriodFlags(cmd)
	addOutputFlag(cmd)
	cmd.Flags().IntP("steps", "n", 1, "number of periods to move")
	return cmd
}

func printState(cmd *cobra.Command, e *env, s period.State) error {
	out, err := describeState(s, e.cfg.Formatter(), e.today)
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), out)
	case tableOutputFormat:
		t := createStyledTable("TYPE", "LABEL", "START", "END", "DAYS")
		t.Row(out.Type, out.Label, out.Start.String(), out.End.String(), fmt.Sprint(out.Days))
		_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
		return err
	default:
		return errors.New("unsupported output format")
	}
}
