package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/examsprint/internal/cli"
	"github.com/alexanderramin/examsprint/internal/config"
	"github.com/alexanderramin/examsprint/internal/db"
	"github.com/alexanderramin/examsprint/internal/logging"
	"github.com/alexanderramin/examsprint/internal/notes"
	"github.com/alexanderramin/examsprint/internal/pomodoro"
	"github.com/alexanderramin/examsprint/internal/quotes"
	"github.com/alexanderramin/examsprint/internal/repository"
	"github.com/alexanderramin/examsprint/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	app := &cli.App{
		Quotes: quotes.NewPicker(nil, quotes.Fallback),
		Presets: pomodoro.Presets{
			FocusMin:      cfg.Pomodoro.FocusMin,
			ShortBreakMin: cfg.Pomodoro.ShortBreakMin,
			LongBreakMin:  cfg.Pomodoro.LongBreakMin,
		},
	}

	// Detect interactive terminal for prompts and full-screen views.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Boot = func(opts cli.GlobalOptions) error {
		return boot(app, cfg, opts)
	}

	return cli.Execute(app, os.Args[1:])
}

// boot opens the database and wires every service once the global flags
// are parsed.
func boot(app *cli.App, cfg *config.Config, opts cli.GlobalOptions) error {
	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return err
	}
	app.Logger = logger

	dbPath := cfg.DBPath
	if opts.DBPath != "" {
		dbPath = opts.DBPath
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	app.Close = database.Close

	// Wire repositories
	kv := repository.NewSQLiteKVStore(database)
	plans := repository.NewKVPlanRepo(kv)
	goals := repository.NewKVGoalRepo(kv)
	drafts := repository.NewKVDraftRepo(kv)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	applied, err := repository.RunDataMigrations(context.Background(), uow)
	if err != nil {
		return fmt.Errorf("migrating data: %w", err)
	}
	if len(applied) > 0 {
		logger.Info("data migrations applied", zap.Strings("migrations", applied))
	}

	rt := service.Runtime{Logger: logger}
	observer := service.NewLogUseCaseObserver(logger)

	app.Goals = service.NewGoalService(goals, rt, observer)
	app.Plans = service.NewPlanService(plans, uow, rt, observer)
	app.Setup = service.NewOnboardingService(plans, drafts, uow, rt, observer)
	app.Backup = service.NewBackupService(plans, uow, rt, observer)
	app.Dashboard = service.NewDashboardService(plans, rt, observer)

	renderer, err := notes.NewGlamourRenderer(notesStyle(), 80)
	if err != nil {
		logger.Warn("markdown rendering disabled", zap.Error(err))
		return nil
	}
	app.Notes = renderer
	return nil
}

// notesStyle renders plain text when stdout is not a terminal.
func notesStyle() string {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return ""
	}
	return "notty"
}
