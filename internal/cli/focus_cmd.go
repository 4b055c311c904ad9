package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/pomodoro"
)

func newFocusCmd(app *App) *cobra.Command {
	var (
		modeName string
		minutes  int
		start    bool
	)

	cmd := &cobra.Command{
		Use:     "focus",
		Aliases: []string{"pomodoro", "timer"},
		Short:   "Run the pomodoro timer; finished sessions count toward stats",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the timer needs an interactive terminal; use `focus log` to record a session")
			}
			mode, err := pomodoro.ParseMode(modeName)
			if err != nil {
				return err
			}
			timer := pomodoro.New(app.Presets)
			switch {
			case cmd.Flags().Changed("minutes"):
				if err := timer.SetCustom(minutes); err != nil {
					return err
				}
			case mode == pomodoro.ModeCustom:
				return fmt.Errorf("--mode custom needs --minutes")
			default:
				timer.SetMode(mode)
			}

			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			log := app.logger().Named("focus")
			view := newPomodoroView(timer, func(c pomodoro.Completion) error {
				log.Debug("session complete")
				_, err := app.Plans.RecordSession(ctx, g.ID, c.Kind(), c.Minutes)
				return err
			}, start)

			final, err := app.runProgram(view)
			if err != nil {
				return err
			}
			if pv, ok := final.(*pomodoroView); ok {
				printCompletions(cmd, pv.completed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "focus", "Timer mode: focus, short, long")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Custom length in minutes")
	cmd.Flags().BoolVar(&start, "start", false, "Start the timer immediately")
	cmd.AddCommand(newFocusLogCmd(app))
	return cmd
}

func printCompletions(cmd *cobra.Command, completed []pomodoro.Completion) {
	out := cmd.OutOrStdout()
	if len(completed) == 0 {
		fmt.Fprintln(out, formatter.Dim("No sessions finished."))
		return
	}
	for _, c := range completed {
		fmt.Fprintf(out, "Recorded %s: %s\n", c.Mode.Label(), formatter.FormatMinutes(c.Minutes))
	}
}

func newFocusLogCmd(app *App) *cobra.Command {
	var breakTime bool

	cmd := &cobra.Command{
		Use:   "log MINUTES",
		Short: "Record a finished session without running the timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil || minutes <= 0 {
				return fmt.Errorf("minutes must be a positive number, got %q", args[0])
			}
			kind := domain.SessionFocus
			if breakTime {
				kind = domain.SessionBreak
			}

			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			p, err := app.Plans.RecordSession(ctx, g.ID, kind, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(p.Stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&breakTime, "break", false, "Record break time instead of focus time")
	return cmd
}
