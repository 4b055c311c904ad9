package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/domain"
)

func newTargetCmd(app *App) *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "target [DATE]",
		Short: "Show or set the global finish date",
		Long:  "Show or set the global finish date (YYYY-MM-DD). Every subject is paced against the earlier of its exam date and this target.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}

			if len(args) == 0 && !unset {
				p, err := app.Plans.Get(ctx, g.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Target: %s\n", formatter.DateOrNone(p.GlobalTargetDate))
				return nil
			}

			var date domain.Date
			if !unset {
				if date, err = parseDateArg(args[0]); err != nil {
					return err
				}
			}
			p, err := app.Plans.SetGlobalTarget(ctx, g.ID, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Target set to %s\n", formatter.DateOrNone(p.GlobalTargetDate))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unset, "clear", false, "Remove the global target")
	return cmd
}

func newScratchpadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scratchpad",
		Aliases: []string{"pad"},
		Short:   "Show the free-form scratchpad",
		Args:    cobra.NoArgs,
		RunE:    func(cmd *cobra.Command, args []string) error { return showScratchpad(cmd, app) },
	}
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the scratchpad",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return showScratchpad(cmd, app) },
	}
	cmd.AddCommand(show, newScratchpadSetCmd(app), newScratchpadEditCmd(app))
	return cmd
}

func showScratchpad(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	g, err := app.goal(ctx)
	if err != nil {
		return err
	}
	p, err := app.Plans.Get(ctx, g.ID)
	if err != nil {
		return err
	}
	if p.Scratchpad == "" {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Scratchpad is empty."))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.Scratchpad)
	return nil
}

func newScratchpadSetCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set [TEXT]",
		Short: "Replace the scratchpad text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			text, err := readTextInput(cmd, app, args, file, "Scratchpad")
			if err != nil {
				return err
			}
			if _, err := app.Plans.SetScratchpad(ctx, g.ID, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Scratchpad saved.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file")
	return cmd
}

func newScratchpadEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the scratchpad in the terminal editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the editor needs an interactive terminal; use `scratchpad set` instead")
			}
			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			p, err := app.Plans.Get(ctx, g.ID)
			if err != nil {
				return err
			}
			editor := newEditorView("Scratchpad", p.Scratchpad, func(text string) error {
				_, err := app.Plans.SetScratchpad(ctx, g.ID, text)
				return err
			})
			return runEditor(cmd, app, editor)
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write a JSON backup of the plan (stdout when FILE is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			b, err := app.Backup.Export(ctx, g.ID)
			if err != nil {
				return err
			}
			data, err := b.Marshal()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(args[0], append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Backup written to %s\n", args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	var yes int

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Restore the plan from a JSON backup, replacing its subjects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}
			c, proceed, err := acknowledge(app, yes, "Importing replaces every subject and topic. Continue?")
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			p, err := app.Backup.Import(ctx, g.ID, data, c)
			if err != nil {
				return confirmationHint(err)
			}
			completed, total := p.TopicCounts()
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d subjects, %d topics (%d done).\n", len(p.Subjects), total, completed)
			return nil
		},
	}

	cmd.Flags().CountVarP(&yes, "yes", "y", "Confirm without prompting")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var yes int

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase the plan back to a fresh setup",
		Long:  "Erase every subject, topic, note, stat and the scratchpad. Needs two confirmations; pass -yy to skip both prompts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, proceed, err := acknowledge(app, yes,
				"Reset everything? All subjects, notes and stats are deleted.",
				"Really reset? This cannot be undone.")
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			if _, err := app.Plans.Reset(ctx, g.ID, c); err != nil {
				return confirmationHint(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Plan reset. Run `examsprint setup` to start over.")
			return nil
		},
	}

	cmd.Flags().CountVarP(&yes, "yes", "y", "Confirm; repeat to confirm twice")
	return cmd
}
