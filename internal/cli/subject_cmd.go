package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/domain"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"subj", "s"},
		Short:   "Inspect and edit subjects",
	}
	cmd.AddCommand(
		newSubjectListCmd(app),
		newSubjectShowCmd(app),
		newSubjectRenameCmd(app),
		newSubjectIconCmd(app),
		newSubjectExamDateCmd(app),
		newSubjectAddTopicCmd(app),
		newSubjectRmTopicCmd(app),
		newSubjectReplaceTopicsCmd(app),
	)
	return cmd
}

// subjectTarget is a resolved subject reference on the current goal.
type subjectTarget struct {
	goalID  string
	plan    domain.Plan
	subject domain.Subject
}

func loadSubject(ctx context.Context, app *App, ref string) (subjectTarget, error) {
	g, err := app.goal(ctx)
	if err != nil {
		return subjectTarget{}, err
	}
	p, err := app.Plans.Get(ctx, g.ID)
	if err != nil {
		return subjectTarget{}, err
	}
	if !p.OnboardingComplete {
		return subjectTarget{}, fmt.Errorf("%w: run `examsprint setup` first", domain.ErrNeedsOnboarding)
	}
	s, err := resolveSubject(p, ref)
	if err != nil {
		return subjectTarget{}, err
	}
	return subjectTarget{goalID: g.ID, plan: p, subject: s}, nil
}

// editSubject applies a plan change to the referenced subject and prints the
// subject's topics afterwards.
func editSubject(cmd *cobra.Command, app *App, ref string, change func(ctx context.Context, t subjectTarget) (domain.Plan, error)) error {
	ctx := cmd.Context()
	t, err := loadSubject(ctx, app, ref)
	if err != nil {
		return err
	}
	p, err := change(ctx, t)
	if err != nil {
		return err
	}
	s, ok := p.Subject(t.subject.ID)
	if !ok {
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.SubjectName(s)+"  "+formatter.Dim("exam "+formatter.DateOrNone(s.ExamDate)))
	fmt.Fprint(out, formatter.FormatTopics(s.Topics))
	return nil
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List subjects with pace and urgency",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			a, err := app.Dashboard.Agenda(ctx, g.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubjectPaces(a.Subjects))
			return nil
		},
	}
}

func newSubjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SUBJECT",
		Short: "Show a subject's paces and topics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Dashboard.SubjectDetail(ctx, t.goalID, t.subject.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubjectDetail(d))
			return nil
		},
	}
}

func newSubjectRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename SUBJECT NAME",
		Short: "Rename a subject",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[1])
			if name == "" {
				return fmt.Errorf("name cannot be empty")
			}
			return editSubject(cmd, app, args[0], func(ctx context.Context, t subjectTarget) (domain.Plan, error) {
				return app.Plans.UpdateSubjectName(ctx, t.goalID, t.subject.ID, name)
			})
		},
	}
}

func newSubjectIconCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "icon SUBJECT ICON",
		Short: "Change a subject's icon (code, database, math, book, activity, layout)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			icon := domain.IconType(strings.ToLower(args[1]))
			if !icon.Valid() {
				return fmt.Errorf("invalid icon %q (valid: %v)", args[1], domain.IconTypes)
			}
			return editSubject(cmd, app, args[0], func(ctx context.Context, t subjectTarget) (domain.Plan, error) {
				return app.Plans.UpdateSubjectIcon(ctx, t.goalID, t.subject.ID, icon)
			})
		},
	}
}

func newSubjectExamDateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exam-date SUBJECT DATE",
		Short: "Set a subject's exam date (YYYY-MM-DD, or none to clear)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[1])
			if err != nil {
				return err
			}
			return editSubject(cmd, app, args[0], func(ctx context.Context, t subjectTarget) (domain.Plan, error) {
				return app.Plans.UpdateExamDate(ctx, t.goalID, t.subject.ID, date)
			})
		},
	}
}

func newSubjectAddTopicCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add-topic SUBJECT",
		Short: "Append a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editSubject(cmd, app, args[0], func(ctx context.Context, t subjectTarget) (domain.Plan, error) {
				p, err := app.Plans.AddTopic(ctx, t.goalID, t.subject.ID)
				if err != nil || strings.TrimSpace(title) == "" {
					return p, err
				}
				s, _ := p.Subject(t.subject.ID)
				added := s.Topics[len(s.Topics)-1]
				return app.Plans.UpdateTopicTitle(ctx, t.goalID, s.ID, added.ID, title)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title for the new topic (default: \"Topic N\")")
	return cmd
}

func newSubjectRmTopicCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-topic SUBJECT TOPIC",
		Short: "Delete a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editSubject(cmd, app, args[0], func(ctx context.Context, t subjectTarget) (domain.Plan, error) {
				tp, err := resolveTopic(t.subject, args[1])
				if err != nil {
					return t.plan, err
				}
				return app.Plans.DeleteTopic(ctx, t.goalID, t.subject.ID, tp.ID)
			})
		},
	}
}

func newSubjectReplaceTopicsCmd(app *App) *cobra.Command {
	var (
		file string
		yes  int
	)

	cmd := &cobra.Command{
		Use:   "replace-topics SUBJECT [TEXT]",
		Short: "Replace every topic with a pasted list, one per line",
		Long: "Replace every topic of a subject with a pasted list, one title per line. " +
			"Completion and notes are lost. Text comes from the argument, --file, " +
			"standard input, or an editor prompt when interactive.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			text, err := readTextInput(cmd, app, args[1:], file, "Paste topics for "+t.subject.Name)
			if err != nil {
				return err
			}
			c, proceed, err := acknowledge(app, yes,
				fmt.Sprintf("Replace all %d topics of %s? Progress and notes are lost.", len(t.subject.Topics), t.subject.Name))
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return editSubject(cmd, app, args[0], func(ctx context.Context, t subjectTarget) (domain.Plan, error) {
				p, err := app.Plans.ReplaceTopics(ctx, t.goalID, t.subject.ID, text, c)
				return p, confirmationHint(err)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read topic titles from a file")
	cmd.Flags().CountVarP(&yes, "yes", "y", "Confirm without prompting")
	return cmd
}
