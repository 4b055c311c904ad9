package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/examsprint/internal/db"
	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/repository"
)

type onboardingService struct {
	plans    repository.PlanRepo
	drafts   repository.DraftRepo
	uow      db.UnitOfWork
	rt       Runtime
	observer UseCaseObserver
}

func NewOnboardingService(plans repository.PlanRepo, drafts repository.DraftRepo, uow db.UnitOfWork, rt Runtime, observers ...UseCaseObserver) OnboardingService {
	return &onboardingService{
		plans:    plans,
		drafts:   drafts,
		uow:      uow,
		rt:       rt.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

// loadDraft returns the saved draft or, when none exists, a new one seeded
// from the plan's subjects.
func (s *onboardingService) loadDraft(ctx context.Context, plans repository.PlanRepo, drafts repository.DraftRepo, goalID string) (domain.OnboardingDraft, error) {
	plan, err := plans.Load(ctx, goalID, s.rt.today())
	if err != nil {
		return domain.OnboardingDraft{}, err
	}
	if plan.OnboardingComplete {
		return domain.OnboardingDraft{}, domain.ErrSetupFinished
	}
	d, err := drafts.Load(ctx, goalID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewDraft(plan.Subjects, s.rt.IDs), nil
	}
	return d, err
}

func (s *onboardingService) Draft(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
	return s.loadDraft(ctx, s.plans, s.drafts, goalID)
}

type draftChange func(d domain.OnboardingDraft) (domain.OnboardingDraft, error)

func (s *onboardingService) edit(ctx context.Context, name, goalID string, change draftChange) (draft domain.OnboardingDraft, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": goalID, "step": draft.Step, "subjects": len(draft.Subjects)},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		drafts := txDrafts(tx)
		current, err := s.loadDraft(ctx, txPlans(tx), drafts, goalID)
		if err != nil {
			return err
		}
		next, err := change(current)
		if err != nil {
			return err
		}
		if err := drafts.Save(ctx, goalID, next); err != nil {
			return err
		}
		draft = next
		return nil
	})
	if err != nil {
		return domain.OnboardingDraft{}, err
	}
	return draft, nil
}

func (s *onboardingService) AddSubject(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
	return s.edit(ctx, "setup.add_subject", goalID, func(d domain.OnboardingDraft) (domain.OnboardingDraft, error) {
		return d.AddSubject(s.rt.IDs), nil
	})
}

func (s *onboardingService) BulkAddSubjects(ctx context.Context, goalID, text string) (domain.OnboardingDraft, int, error) {
	var added int
	d, err := s.edit(ctx, "setup.bulk_add_subjects", goalID, func(d domain.OnboardingDraft) (domain.OnboardingDraft, error) {
		var out domain.OnboardingDraft
		out, added = d.BulkAddSubjects(text, s.rt.IDs, s.rt.PickIcon)
		return out, nil
	})
	return d, added, err
}

func (s *onboardingService) RemoveSubject(ctx context.Context, goalID, subjectID string) (domain.OnboardingDraft, error) {
	return s.edit(ctx, "setup.remove_subject", goalID, func(d domain.OnboardingDraft) (domain.OnboardingDraft, error) {
		out, ok := d.RemoveSubject(subjectID)
		if !ok {
			s.rt.Logger.Debug("setup subject not removed")
		}
		return out, nil
	})
}

func (s *onboardingService) UpdateSubject(ctx context.Context, goalID, subjectID string, patch domain.SetupPatch) (domain.OnboardingDraft, error) {
	return s.edit(ctx, "setup.update_subject", goalID, func(d domain.OnboardingDraft) (domain.OnboardingDraft, error) {
		if patch.IconType != nil && !patch.IconType.Valid() {
			return d, errInvalidIcon(*patch.IconType)
		}
		out, ok := d.UpdateSubject(subjectID, patch)
		if !ok {
			s.rt.Logger.Debug("setup subject not found")
		}
		return out, nil
	})
}

func (s *onboardingService) ClearAll(ctx context.Context, goalID string, c domain.Confirmation) (domain.OnboardingDraft, error) {
	return s.edit(ctx, "setup.clear_all", goalID, func(d domain.OnboardingDraft) (domain.OnboardingDraft, error) {
		return d.ClearAll(s.rt.IDs, c)
	})
}

func (s *onboardingService) Next(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
	return s.edit(ctx, "setup.next", goalID, func(d domain.OnboardingDraft) (domain.OnboardingDraft, error) {
		return d.Next()
	})
}

func (s *onboardingService) Back(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
	return s.edit(ctx, "setup.back", goalID, func(d domain.OnboardingDraft) (domain.OnboardingDraft, error) {
		return d.Back(), nil
	})
}

// Finish installs the draft's subjects into the plan and discards the draft.
func (s *onboardingService) Finish(ctx context.Context, goalID string) (plan domain.Plan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "setup.finish",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": goalID, "subjects": len(plan.Subjects)},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans, drafts := txPlans(tx), txDrafts(tx)
		d, err := s.loadDraft(ctx, plans, drafts, goalID)
		if err != nil {
			return err
		}
		if err := d.Validate(); err != nil {
			return err
		}
		current, err := plans.Load(ctx, goalID, s.rt.today())
		if err != nil {
			return err
		}
		plan = current.CompleteOnboarding(d.Finish(s.rt.IDs))
		if err := plans.Save(ctx, plan); err != nil {
			return err
		}
		return drafts.Clear(ctx, goalID)
	})
	if err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

// EditSubjects reopens setup with the current subjects loaded. Subjects
// stay in the plan until Finish.
func (s *onboardingService) EditSubjects(ctx context.Context, goalID string) (draft domain.OnboardingDraft, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "setup.edit_subjects",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": goalID, "subjects": len(draft.Subjects)},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans, drafts := txPlans(tx), txDrafts(tx)
		current, err := plans.Load(ctx, goalID, s.rt.today())
		if err != nil {
			return err
		}
		if !current.OnboardingComplete {
			return domain.ErrNeedsOnboarding
		}
		if err := plans.Save(ctx, current.EditSubjects()); err != nil {
			return err
		}
		draft = domain.NewDraft(current.Subjects, s.rt.IDs)
		return drafts.Save(ctx, goalID, draft)
	})
	if err != nil {
		return domain.OnboardingDraft{}, err
	}
	return draft, nil
}
