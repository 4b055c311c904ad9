package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/notes"
	"github.com/alexanderramin/examsprint/internal/pomodoro"
	"github.com/alexanderramin/examsprint/internal/quotes"
	"github.com/alexanderramin/examsprint/internal/service"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	Goal    string
	DBPath  string
	Verbose bool
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals     service.GoalService
	Plans     service.PlanService
	Setup     service.OnboardingService
	Backup    service.BackupService
	Dashboard service.DashboardService

	Quotes  *quotes.Picker
	Notes   notes.Renderer
	Presets pomodoro.Presets
	Logger  *zap.Logger

	// IsInteractive reports whether prompts and full-screen views may be
	// used. Nil means non-interactive.
	IsInteractive func() bool
	// Confirm asks a yes/no question; defaults to a huh confirm form.
	Confirm func(title string) (bool, error)
	// RunProgram runs a bubbletea model until it quits; defaults to
	// tea.NewProgram on the alternate screen.
	RunProgram func(m tea.Model) (tea.Model, error)

	// Boot wires the services from the global flags before any command
	// runs; Close releases what Boot opened and is run by Shutdown. Both
	// are optional.
	Boot  func(opts GlobalOptions) error
	Close func() error

	opts GlobalOptions
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) runProgram(m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// Shutdown flushes the logger and closes the store. Later calls are no-ops.
func (a *App) Shutdown() error {
	_ = a.logger().Sync()
	if a.Close == nil {
		return nil
	}
	closeStore := a.Close
	a.Close = nil
	return closeStore()
}

// Execute runs the command tree for args and then shuts the app down,
// whether or not the command failed.
func Execute(app *App, args []string) error {
	root := NewRootCmd(app)
	root.SetArgs(args)
	err := root.Execute()
	if cerr := app.Shutdown(); err == nil {
		err = cerr
	}
	return err
}

// goal resolves the goal a command operates on: --goal, else the active goal.
func (a *App) goal(ctx context.Context) (domain.Goal, error) {
	return a.Goals.Resolve(ctx, a.opts.Goal)
}

// NewRootCmd creates the top-level "examsprint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "examsprint",
		Short:         "Deadline-driven exam study planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Boot == nil {
				return nil
			}
			return app.Boot(app.opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}

	root.PersistentFlags().StringVar(&app.opts.Goal, "goal", "", "Goal ID to operate on (default: the active goal)")
	root.PersistentFlags().StringVar(&app.opts.DBPath, "db", "", "Database path (default: ~/.examsprint/examsprint.db)")
	root.PersistentFlags().BoolVarP(&app.opts.Verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newGoalCmd(app),
		newSetupCmd(app),
		newDashboardCmd(app),
		newSubjectCmd(app),
		newTopicCmd(app),
		newTargetCmd(app),
		newScratchpadCmd(app),
		newFocusCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newResetCmd(app),
		newQuoteCmd(app),
	)

	return root
}
