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
	"github.com/alexanderramin/examsprint/internal/notes"
)

func newTopicCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "topic",
		Aliases: []string{"t"},
		Short:   "Check off topics and keep notes",
	}
	cmd.AddCommand(
		newTopicShowCmd(app),
		newTopicToggleCmd(app),
		newTopicTitleCmd(app),
		newTopicNotesCmd(app),
		newTopicEditCmd(app),
	)
	return cmd
}

// topicTarget is a resolved subject/topic reference pair.
type topicTarget struct {
	subjectTarget
	topic domain.Topic
}

func loadTopic(ctx context.Context, app *App, subjectRef, topicRef string) (topicTarget, error) {
	st, err := loadSubject(ctx, app, subjectRef)
	if err != nil {
		return topicTarget{}, err
	}
	tp, err := resolveTopic(st.subject, topicRef)
	if err != nil {
		return topicTarget{}, err
	}
	return topicTarget{subjectTarget: st, topic: tp}, nil
}

func newTopicShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SUBJECT TOPIC",
		Short: "Show a topic with its rendered notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTopic(cmd.Context(), app, args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatter.Checkbox(t.topic.Completed), formatter.StyleHeader.Render(t.topic.Title))
			fmt.Fprintln(out, formatter.Dim(formatter.SubjectName(t.subject)))
			fmt.Fprintln(out)
			return printNotes(out, app, t.topic.Notes, false)
		},
	}
}

// printNotes renders markdown through app.Notes, or prints it as is when
// raw is set or no renderer is available.
func printNotes(out io.Writer, app *App, text string, raw bool) error {
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(out, formatter.Dim("No notes yet."))
		return nil
	}
	if raw || app.Notes == nil {
		fmt.Fprintln(out, text)
		return nil
	}
	rendered, err := app.Notes.Render(text)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}

func newTopicToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle SUBJECT TOPIC...",
		Aliases: []string{"done", "check"},
		Short:   "Flip the completion of one or more topics",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			topics := make([]domain.Topic, 0, len(args)-1)
			for _, ref := range args[1:] {
				tp, err := resolveTopic(st.subject, ref)
				if err != nil {
					return err
				}
				topics = append(topics, tp)
			}

			out := cmd.OutOrStdout()
			p := st.plan
			for _, tp := range topics {
				if p, err = app.Plans.ToggleTopic(ctx, st.goalID, st.subject.ID, tp.ID); err != nil {
					return err
				}
				s, _ := p.Subject(st.subject.ID)
				for _, now := range s.Topics {
					if now.ID == tp.ID {
						fmt.Fprintf(out, "%s %s\n", formatter.Checkbox(now.Completed), now.Title)
					}
				}
			}
			s, _ := p.Subject(st.subject.ID)
			fmt.Fprintf(out, "%s  %s\n", formatter.SubjectName(s), formatter.RenderProgress(s.ProgressPct(), 20))
			return nil
		},
	}
}

func newTopicTitleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "title SUBJECT TOPIC TITLE",
		Aliases: []string{"rename"},
		Short:   "Rename a topic",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[2])
			if title == "" {
				return fmt.Errorf("title cannot be empty")
			}
			return editSubject(cmd, app, args[0], func(ctx context.Context, st subjectTarget) (domain.Plan, error) {
				tp, err := resolveTopic(st.subject, args[1])
				if err != nil {
					return st.plan, err
				}
				return app.Plans.UpdateTopicTitle(ctx, st.goalID, st.subject.ID, tp.ID, title)
			})
		},
	}
}

func newTopicNotesCmd(app *App) *cobra.Command {
	var (
		set       string
		file      string
		exportDir string
		raw       bool
	)

	cmd := &cobra.Command{
		Use:   "notes SUBJECT TOPIC",
		Short: "Show, replace or export a topic's markdown notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			t, err := loadTopic(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			text := t.topic.Notes
			replace := cmd.Flags().Changed("set") || file != ""
			if replace {
				text = set
				if file != "" {
					data, err := os.ReadFile(file)
					if err != nil {
						return fmt.Errorf("reading %s: %w", file, err)
					}
					text = string(data)
				}
				if _, err := app.Plans.UpdateTopicNotes(ctx, t.goalID, t.subject.ID, t.topic.ID, text); err != nil {
					return err
				}
				fmt.Fprintf(out, "Notes saved for %s.\n", t.topic.Title)
			}

			if exportDir != "" {
				path, err := notes.ExportMarkdown(exportDir, t.subject.Name, t.topic.Title, text)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %s\n", path)
			}
			if replace || exportDir != "" {
				return nil
			}

			return printNotes(out, app, text, raw)
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Replace the notes with this text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Replace the notes with the contents of a file")
	cmd.Flags().StringVar(&exportDir, "export", "", "Write the notes as a markdown document into this directory")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source instead of rendering it")
	cmd.MarkFlagsMutuallyExclusive("set", "file")
	return cmd
}

func newTopicEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit SUBJECT TOPIC",
		Short: "Edit a topic's notes in the terminal editor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the notes editor needs an interactive terminal; use `topic notes --set` instead")
			}
			ctx := cmd.Context()
			t, err := loadTopic(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			editor := newEditorView(t.subject.Name+" / "+t.topic.Title, t.topic.Notes, func(text string) error {
				_, err := app.Plans.UpdateTopicNotes(ctx, t.goalID, t.subject.ID, t.topic.ID, text)
				return err
			})
			return runEditor(cmd, app, editor)
		},
	}
}

// runEditor runs an editor view and reports whether changes were kept.
func runEditor(cmd *cobra.Command, app *App, editor *editorView) error {
	final, err := app.runProgram(editor)
	if err != nil {
		return err
	}
	if ev, ok := final.(*editorView); ok && ev.Dirty() {
		fmt.Fprintln(cmd.OutOrStdout(), "Closed without saving the last changes.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
	return nil
}
