package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/domain"
)

func newSetupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up subjects (onboarding)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraft(cmd, app, func(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
				return app.Setup.Draft(ctx, goalID)
			})
		},
	}
	cmd.AddCommand(
		newSetupShowCmd(app),
		newSetupStartCmd(app),
		newSetupAddCmd(app),
		newSetupBulkCmd(app),
		newSetupSetCmd(app),
		newSetupRemoveCmd(app),
		newSetupNextCmd(app),
		newSetupBackCmd(app),
		newSetupClearCmd(app),
		newSetupFinishCmd(app),
		newSetupEditCmd(app),
	)
	return cmd
}

// withDraft runs a draft operation on the current goal and prints the result.
func withDraft(cmd *cobra.Command, app *App, op func(ctx context.Context, goalID string) (domain.OnboardingDraft, error)) error {
	ctx := cmd.Context()
	g, err := app.goal(ctx)
	if err != nil {
		return err
	}
	d, err := op(ctx, g.ID)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraft(d))
	return nil
}

func newSetupShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the setup in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraft(cmd, app, app.Setup.Draft)
		},
	}
}

func newSetupStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Leave the welcome step and start adding subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraft(cmd, app, func(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
				d, err := app.Setup.Draft(ctx, goalID)
				if err != nil || d.Step != domain.StepWelcome {
					return d, err
				}
				return app.Setup.Next(ctx, goalID)
			})
		},
	}
}

// setupFlags are the per-subject fields shared by "setup add" and "setup set".
type setupFlags struct {
	name     string
	icon     string
	examDate domain.Date
	topics   int
}

func (f *setupFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Subject name")
	cmd.Flags().StringVar(&f.icon, "icon", "", "Icon: code, database, math, book, activity, layout")
	cmd.Flags().Var(newDateValue(&f.examDate), "exam-date", "Exam date (YYYY-MM-DD, or none)")
	cmd.Flags().IntVar(&f.topics, "topics", 0, "Topic count")
}

func (f *setupFlags) patch(cmd *cobra.Command) (domain.SetupPatch, error) {
	var p domain.SetupPatch
	if cmd.Flags().Changed("name") {
		p.Name = &f.name
	}
	if cmd.Flags().Changed("icon") {
		icon := domain.IconType(strings.ToLower(f.icon))
		if !icon.Valid() {
			return p, fmt.Errorf("invalid icon %q (valid: %v)", f.icon, domain.IconTypes)
		}
		p.IconType = &icon
	}
	if cmd.Flags().Changed("exam-date") {
		p.ExamDate = &f.examDate
	}
	if cmd.Flags().Changed("topics") {
		if f.topics <= 0 {
			return p, fmt.Errorf("--topics must be at least 1")
		}
		p.TopicCount = &f.topics
	}
	return p, nil
}

func newSetupAddCmd(app *App) *cobra.Command {
	var flags setupFlags

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Add a subject",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cmd.Flags().Set("name", args[0]); err != nil {
					return err
				}
			}
			patch, err := flags.patch(cmd)
			if err != nil {
				return err
			}
			return withDraft(cmd, app, func(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
				d, err := app.Setup.AddSubject(ctx, goalID)
				if err != nil {
					return d, err
				}
				added := d.Subjects[len(d.Subjects)-1]
				return app.Setup.UpdateSubject(ctx, goalID, added.ID, patch)
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newSetupBulkCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "bulk [TEXT]",
		Short: "Add subjects from text, one per line",
		Long: "Add subjects from text, one per line. Text comes from the argument, " +
			"--file, standard input, or an editor prompt when interactive.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextInput(cmd, app, args, file, "Paste subject names")
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			d, added, err := app.Setup.BulkAddSubjects(ctx, g.ID, text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %d subjects.\n\n", added)
			fmt.Fprint(out, formatter.FormatDraft(d))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read lines from a file")
	return cmd
}

// readTextInput returns multi-line input from the argument, a file, a piped
// stdin, or an interactive text form, in that order.
func readTextInput(cmd *cobra.Command, app *App, args []string, file, prompt string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	case app.interactive():
		var text string
		if err := wizardText(prompt, &text).Run(); err != nil {
			return "", err
		}
		return text, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return string(data), nil
}

func newSetupSetCmd(app *App) *cobra.Command {
	var flags setupFlags

	cmd := &cobra.Command{
		Use:   "set SUBJECT",
		Short: "Change a subject's name, icon, exam date or topic count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := flags.patch(cmd)
			if err != nil {
				return err
			}
			return withDraft(cmd, app, func(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
				d, err := app.Setup.Draft(ctx, goalID)
				if err != nil {
					return d, err
				}
				s, err := resolveSetupSubject(d, args[0])
				if err != nil {
					return d, err
				}
				return app.Setup.UpdateSubject(ctx, goalID, s.ID, patch)
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newSetupRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SUBJECT",
		Aliases: []string{"rm"},
		Short:   "Remove a subject (the last one stays)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraft(cmd, app, func(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
				d, err := app.Setup.Draft(ctx, goalID)
				if err != nil {
					return d, err
				}
				if len(d.Subjects) <= 1 {
					return d, fmt.Errorf("cannot remove the only subject")
				}
				s, err := resolveSetupSubject(d, args[0])
				if err != nil {
					return d, err
				}
				return app.Setup.RemoveSubject(ctx, goalID, s.ID)
			})
		},
	}
}

func newSetupNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Go to the next setup step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraft(cmd, app, app.Setup.Next)
		},
	}
}

func newSetupBackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Go to the previous setup step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraft(cmd, app, app.Setup.Back)
		},
	}
}

func newSetupClearCmd(app *App) *cobra.Command {
	var yes int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every subject from the setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, proceed, err := acknowledge(app, yes, "Remove all subjects from the setup?")
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return withDraft(cmd, app, func(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
				d, err := app.Setup.ClearAll(ctx, goalID, c)
				return d, confirmationHint(err)
			})
		},
	}

	cmd.Flags().CountVarP(&yes, "yes", "y", "Confirm without prompting")
	return cmd
}

func newSetupFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Create the subjects and open the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			p, err := app.Setup.Finish(ctx, g.ID)
			if err != nil {
				return err
			}
			completed, total := p.TopicCounts()
			fmt.Fprintf(cmd.OutOrStdout(), "Setup complete: %d subjects, %d topics (%d done).\n",
				len(p.Subjects), total, completed)
			return nil
		},
	}
}

func newSetupEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Reopen setup with the current subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDraft(cmd, app, app.Setup.EditSubjects)
		},
	}
}
