package main

import (
	"fmt"
	"io"
	"time"

	"order-time-checker/internal/domain/ordertime"
	reqdto "order-time-checker/internal/handler/dto/request"
	"order-time-checker/internal/handler/validation"
	"order-time-checker/internal/pkg/clock"
	"order-time-checker/internal/pkg/config"
	"order-time-checker/internal/pkg/errs"
	"order-time-checker/internal/pkg/reqfile"
	"order-time-checker/internal/usecase"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	colorPass   = color.New(color.FgGreen)
	colorFail   = color.New(color.FgRed, color.Bold)
	colorHeader = color.New(color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)
)

type checkFlags struct {
	now            string
	location       string
	hoursMode      string
	enforceMaxLead bool
	assumePM       bool
	noColor        bool
}

func newCheckCmd() *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Evaluate one request file (.json or .toml) and print the gate trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.noColor {
				color.NoColor = true
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			orderCfg := f.apply(cmd, cfg.OrderTime)
			if err := orderCfg.Validate(); err != nil {
				return err
			}

			now, err := f.resolveNow(orderCfg.Location)
			if err != nil {
				return err
			}

			req, err := reqfile.Load(args[0])
			if err != nil {
				return err
			}
			_, err = runCheck(cmd.OutOrStdout(), req, orderCfg, now)
			return err
		},
	}

	cmd.Flags().StringVar(&f.now, "now", "", `evaluate as if the clock read this instant ("YYYY-MM-DD HH:mm")`)
	cmd.Flags().StringVar(&f.location, "location", "", "IANA zone the clock is read in (overrides ORDER_TIME_LOCATION)")
	cmd.Flags().StringVar(&f.hoursMode, "hours-mode", "", `"instant" or "time_of_day" (overrides ORDER_TIME_HOURS_MODE)`)
	cmd.Flags().BoolVar(&f.enforceMaxLead, "enforce-max-lead", false, "reject requests later than now plus the max lead time")
	cmd.Flags().BoolVar(&f.assumePM, "assume-pm", false, "shift past morning HH:mm requests by twelve hours")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")

	return cmd
}

// apply overrides cfg with the flags the user actually set.
func (f checkFlags) apply(cmd *cobra.Command, cfg config.OrderTimeConfig) config.OrderTimeConfig {
	flags := cmd.Flags()
	if flags.Changed("location") {
		cfg.Location = f.location
	}
	if flags.Changed("hours-mode") {
		cfg.HoursMode = f.hoursMode
	}
	if flags.Changed("enforce-max-lead") {
		cfg.EnforceMaxLead = f.enforceMaxLead
	}
	if flags.Changed("assume-pm") {
		cfg.AssumePM = f.assumePM
	}
	return cfg
}

func (f checkFlags) resolveNow(location string) (time.Time, error) {
	c, err := clock.NewRealClockIn(location)
	if err != nil {
		return time.Time{}, err
	}
	now := c.Now()
	if f.now == "" {
		return now, nil
	}
	fixed, err := ordertime.ParseDateTime(f.now, now.Location())
	if err != nil {
		return time.Time{}, errs.Wrap(err, "--now")
	}
	return fixed, nil
}

// runCheck validates and evaluates req, writing a human-readable report to out.
// Rejections are reported, not returned; only invalid input is an error.
func runCheck(out io.Writer, req reqdto.OrderTimeRequest, cfg config.OrderTimeConfig, now time.Time) (ordertime.Outcome, error) {
	variant, messages := validation.New().ValidateRequest(req.Fields())
	colorHeader.Fprintf(out, "variant: %s\n", variant)

	if len(messages) > 0 {
		for _, msg := range messages {
			colorFail.Fprintf(out, "  ✗ %s\n", msg)
		}
		return ordertime.Outcome{}, errs.Mark(errs.Newf("%d validation error(s)", len(messages)), errs.ErrValidationFailed)
	}

	opts := usecase.OptionsFromConfig(cfg)
	opts.Trace = func(t ordertime.GateTrace) {
		printGate(out, t)
	}

	outcome, err := ordertime.Evaluate(req.ToDomain(), now, opts)
	if err != nil {
		colorFail.Fprintf(out, "  ✗ %s\n", err)
		return ordertime.Outcome{}, errs.Mark(err, errs.ErrValidationFailed)
	}

	if outcome.IsAccepted() {
		colorPass.Fprintf(out, "result: %d (lead time in minutes)\n", outcome.Result())
	} else {
		colorFail.Fprintf(out, "result: %d (rejected by %s)\n", outcome.Result(), outcome.Gate())
	}
	return outcome, nil
}

func printGate(out io.Writer, t ordertime.GateTrace) {
	if t.Passed {
		colorPass.Fprintf(out, "  ✓ %s", t.Gate)
	} else {
		colorFail.Fprintf(out, "  ✗ %s", t.Gate)
	}
	if !t.Bounds.Start.IsZero() && !t.Bounds.End.IsZero() {
		colorMuted.Fprintf(out, "  [%s .. %s]", formatInstant(t.Bounds.Start), formatInstant(t.Bounds.End))
	}
	fmt.Fprintln(out)
}

func formatInstant(t time.Time) string {
	return t.Format(ordertime.DateTimeLayout)
}
