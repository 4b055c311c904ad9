package service

import (
	"context"
	"time"

	"github.com/alexanderramin/examsprint/internal/db"
	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/importer"
	"github.com/alexanderramin/examsprint/internal/repository"
)

type backupService struct {
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	rt       Runtime
	observer UseCaseObserver
}

func NewBackupService(plans repository.PlanRepo, uow db.UnitOfWork, rt Runtime, observers ...UseCaseObserver) BackupService {
	return &backupService{
		plans:    plans,
		uow:      uow,
		rt:       rt.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *backupService) Export(ctx context.Context, goalID string) (backup importer.Backup, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "backup.export",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": goalID, "subjects": len(backup.Subjects)},
		})
	}()

	plan, err := s.plans.Load(ctx, goalID, s.rt.today())
	if err != nil {
		return importer.Backup{}, err
	}
	return importer.BuildBackup(plan, s.rt.Now()), nil
}

// Import overwrites the goal's plan with the fields present in data. A
// malformed document leaves the stored plan untouched.
func (s *backupService) Import(ctx context.Context, goalID string, data []byte, c domain.Confirmation) (plan domain.Plan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "backup.import",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": goalID, "bytes": len(data), "subjects": len(plan.Subjects)},
		})
	}()

	if err := c.Require(domain.Confirmed); err != nil {
		return domain.Plan{}, err
	}
	backup, err := importer.ParseBackup(data)
	if err != nil {
		return domain.Plan{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := txPlans(tx)
		current, err := plans.Load(ctx, goalID, s.rt.today())
		if err != nil {
			return err
		}
		plan = backup.Apply(current)
		if err := plans.Save(ctx, plan); err != nil {
			return err
		}
		if plan.OnboardingComplete {
			return txDrafts(tx).Clear(ctx, goalID)
		}
		return nil
	})
	if err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}
