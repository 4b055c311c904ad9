package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/domain"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "today"},
		Short:   "Show progress, today's agenda and every subject by deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

// runDashboard prints the agenda, or the setup in progress when the goal has
// not finished onboarding.
func runDashboard(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	g, err := app.goal(ctx)
	if err != nil {
		return err
	}
	a, err := app.Dashboard.Agenda(ctx, g.ID)
	if errors.Is(err, domain.ErrNeedsOnboarding) {
		d, derr := app.Setup.Draft(ctx, g.ID)
		if derr != nil {
			return derr
		}
		fmt.Fprintln(out, formatter.Dim("Setup is not finished yet. Continue with `examsprint setup`."))
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.FormatDraft(d))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatter.Header(g.Title))
	fmt.Fprint(out, formatter.FormatAgenda(a, app.quoteLine()))
	return nil
}

// quoteLine formats a random quote, or "" when no picker is configured.
func (a *App) quoteLine() string {
	if a.Quotes == nil {
		return ""
	}
	q := a.Quotes.Pick()
	return fmt.Sprintf("%q  - %s", q.Text, q.Author)
}

func newQuoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := app.quoteLine()
			if line == "" {
				return fmt.Errorf("no quotes available")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show focus and break totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := app.goal(ctx)
			if err != nil {
				return err
			}
			p, err := app.Plans.Get(ctx, g.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(p.Stats))
			return nil
		},
	}
}
