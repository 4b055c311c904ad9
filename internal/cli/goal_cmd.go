package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals (independent trackers)",
	}
	cmd.AddCommand(
		newGoalListCmd(app),
		newGoalCreateCmd(app),
		newGoalUseCmd(app),
		newGoalCurrentCmd(app),
	)
	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goals, err := app.Goals.List(ctx)
			if err != nil {
				return err
			}
			active := ""
			if g, err := app.Goals.Current(ctx); err == nil {
				active = g.ID
			} else if !errors.Is(err, domain.ErrNoActiveGoal) {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoals(goals, active))
			return nil
		},
	}
}

func newGoalCreateCmd(app *App) *cobra.Command {
	var typ string
	var use bool

	cmd := &cobra.Command{
		Use:   "create [TITLE]",
		Short: "Create a goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if title == "" {
				if !app.interactive() {
					return fmt.Errorf("goal title is required")
				}
				if err := wizardNewGoal(&title, &typ).Run(); err != nil {
					return err
				}
			}
			g, err := app.Goals.Create(cmd.Context(), title, domain.GoalType(strings.ToUpper(typ)))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created goal %s [%s]\n", g.Title, g.ID)
			if use {
				if _, err := app.Goals.Use(cmd.Context(), g.ID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Now using %s\n", g.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", string(domain.GoalExamSprint), "Goal type: EXAM_SPRINT or DSA")
	cmd.Flags().BoolVar(&use, "use", false, "Make the new goal active")
	return cmd
}

func newGoalUseCmd(app *App) *cobra.Command {
	var none bool

	cmd := &cobra.Command{
		Use:   "use [GOAL_ID]",
		Short: "Select the active goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if none {
				if err := app.Goals.Leave(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out, "No active goal.")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("goal ID is required (see 'examsprint goal list')")
			}
			g, err := app.Goals.Use(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Now using %s [%s]\n", g.Title, g.ID)
			if !g.HasTracker() {
				fmt.Fprintln(out, formatter.Dim("This goal type has no tracker yet."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&none, "none", false, "Clear the active goal")
	return cmd
}

func newGoalCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the active goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Goals.Current(cmd.Context())
			if errors.Is(err, domain.ErrNoActiveGoal) {
				fmt.Fprintln(cmd.OutOrStdout(), "No active goal.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s\n", g.Title, g.ID, formatter.Dim(string(g.Type)))
			return nil
		},
	}
}
