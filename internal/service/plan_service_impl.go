package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/examsprint/internal/db"
	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/repository"
)

type planService struct {
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	rt       Runtime
	observer UseCaseObserver
}

func NewPlanService(plans repository.PlanRepo, uow db.UnitOfWork, rt Runtime, observers ...UseCaseObserver) PlanService {
	return &planService{
		plans:    plans,
		uow:      uow,
		rt:       rt.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Get(ctx context.Context, goalID string) (domain.Plan, error) {
	return s.plans.Load(ctx, goalID, s.rt.today())
}

// planChange transforms a loaded plan. ok=false means the target ids were
// not found and nothing is written.
type planChange func(p domain.Plan) (next domain.Plan, ok bool, err error)

// mutate runs load, change and save in one transaction. Tracker mutations
// pass onboarded=true and fail with ErrNeedsOnboarding during setup.
func (s *planService) mutate(ctx context.Context, name, goalID string, onboarded bool, fields map[string]any, change planChange) (plan domain.Plan, err error) {
	startedAt := time.Now()
	applied := false
	if fields == nil {
		fields = map[string]any{}
	}
	fields["goal_id"] = goalID
	defer func() {
		fields["applied"] = applied
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := txPlans(tx)
		current, err := plans.Load(ctx, goalID, s.rt.today())
		if err != nil {
			return err
		}
		if onboarded && !current.OnboardingComplete {
			return domain.ErrNeedsOnboarding
		}
		next, ok, err := change(current)
		if err != nil {
			return err
		}
		if !ok {
			logFields := make([]zap.Field, 0, len(fields)+1)
			logFields = append(logFields, zap.String("use_case", name))
			for k, v := range fields {
				logFields = append(logFields, zap.Any(k, v))
			}
			s.rt.Logger.Debug("no matching subject or topic", logFields...)
			plan = current
			return nil
		}
		if err := plans.Save(ctx, next); err != nil {
			return err
		}
		plan, applied = next, true
		return nil
	})
	if err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

func ifFound(fn func(p domain.Plan) (domain.Plan, bool)) planChange {
	return func(p domain.Plan) (domain.Plan, bool, error) {
		next, ok := fn(p)
		return next, ok, nil
	}
}

func always(fn func(p domain.Plan) domain.Plan) planChange {
	return func(p domain.Plan) (domain.Plan, bool, error) {
		return fn(p), true, nil
	}
}

func errInvalidIcon(icon domain.IconType) error {
	return fmt.Errorf("invalid icon %q (expected one of %v)", icon, domain.IconTypes)
}

func topicFields(subjectID, topicID string) map[string]any {
	return map[string]any{"subject_id": subjectID, "topic_id": topicID}
}

func subjectFields(subjectID string) map[string]any {
	return map[string]any{"subject_id": subjectID}
}

func (s *planService) ToggleTopic(ctx context.Context, goalID, subjectID, topicID string) (domain.Plan, error) {
	return s.mutate(ctx, "plan.toggle_topic", goalID, true, topicFields(subjectID, topicID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.ToggleTopic(subjectID, topicID) }))
}

func (s *planService) UpdateTopicNotes(ctx context.Context, goalID, subjectID, topicID, notes string) (domain.Plan, error) {
	return s.mutate(ctx, "plan.update_topic_notes", goalID, true, topicFields(subjectID, topicID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.UpdateTopicNotes(subjectID, topicID, notes) }))
}

func (s *planService) UpdateTopicTitle(ctx context.Context, goalID, subjectID, topicID, title string) (domain.Plan, error) {
	return s.mutate(ctx, "plan.update_topic_title", goalID, true, topicFields(subjectID, topicID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.UpdateTopicTitle(subjectID, topicID, title) }))
}

func (s *planService) UpdateExamDate(ctx context.Context, goalID, subjectID string, date domain.Date) (domain.Plan, error) {
	return s.mutate(ctx, "plan.update_exam_date", goalID, true, subjectFields(subjectID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.UpdateExamDate(subjectID, date) }))
}

func (s *planService) UpdateSubjectName(ctx context.Context, goalID, subjectID, name string) (domain.Plan, error) {
	return s.mutate(ctx, "plan.update_subject_name", goalID, true, subjectFields(subjectID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.UpdateSubjectName(subjectID, name) }))
}

func (s *planService) UpdateSubjectIcon(ctx context.Context, goalID, subjectID string, icon domain.IconType) (domain.Plan, error) {
	if !icon.Valid() {
		return domain.Plan{}, errInvalidIcon(icon)
	}
	return s.mutate(ctx, "plan.update_subject_icon", goalID, true, subjectFields(subjectID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.UpdateSubjectIcon(subjectID, icon) }))
}

func (s *planService) AddTopic(ctx context.Context, goalID, subjectID string) (domain.Plan, error) {
	return s.mutate(ctx, "plan.add_topic", goalID, true, subjectFields(subjectID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.AddTopic(subjectID, s.rt.IDs) }))
}

func (s *planService) DeleteTopic(ctx context.Context, goalID, subjectID, topicID string) (domain.Plan, error) {
	return s.mutate(ctx, "plan.delete_topic", goalID, true, topicFields(subjectID, topicID),
		ifFound(func(p domain.Plan) (domain.Plan, bool) { return p.DeleteTopic(subjectID, topicID) }))
}

// ReplaceTopics swaps a subject's topics for the lines of text.
func (s *planService) ReplaceTopics(ctx context.Context, goalID, subjectID, text string, c domain.Confirmation) (domain.Plan, error) {
	titles := domain.BulkParseLines(text)
	if len(titles) == 0 {
		return domain.Plan{}, fmt.Errorf("no topics found in text")
	}
	fields := subjectFields(subjectID)
	fields["topics"] = len(titles)
	return s.mutate(ctx, "plan.replace_topics", goalID, true, fields,
		func(p domain.Plan) (domain.Plan, bool, error) {
			return p.ReplaceTopics(subjectID, domain.TopicsFromTitles(titles, s.rt.IDs), c)
		})
}

// SetGlobalTarget sets the shared finish date; the zero Date clears it.
func (s *planService) SetGlobalTarget(ctx context.Context, goalID string, date domain.Date) (domain.Plan, error) {
	return s.mutate(ctx, "plan.set_global_target", goalID, true, map[string]any{"target": date.String()},
		always(func(p domain.Plan) domain.Plan { return p.SetGlobalTargetDate(date) }))
}

func (s *planService) SetScratchpad(ctx context.Context, goalID, text string) (domain.Plan, error) {
	return s.mutate(ctx, "plan.set_scratchpad", goalID, true, nil,
		always(func(p domain.Plan) domain.Plan { return p.SetScratchpad(text) }))
}

func (s *planService) RecordSession(ctx context.Context, goalID string, kind domain.SessionKind, minutes int) (domain.Plan, error) {
	if minutes <= 0 {
		return domain.Plan{}, fmt.Errorf("session minutes must be positive, got %d", minutes)
	}
	return s.mutate(ctx, "plan.record_session", goalID, true, map[string]any{"kind": string(kind), "minutes": minutes},
		always(func(p domain.Plan) domain.Plan { return p.RecordSession(kind, minutes) }))
}

// Reset wipes the goal's plan and any setup in progress.
func (s *planService) Reset(ctx context.Context, goalID string, c domain.Confirmation) (plan domain.Plan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan.reset",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": goalID},
		})
	}()

	if err := c.Require(domain.DoubleConfirmed); err != nil {
		return domain.Plan{}, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := txPlans(tx)
		current, err := plans.Load(ctx, goalID, s.rt.today())
		if err != nil {
			return err
		}
		plan, err = current.Reset(s.rt.today(), c)
		if err != nil {
			return err
		}
		if err := plans.Save(ctx, plan); err != nil {
			return err
		}
		return txDrafts(tx).Clear(ctx, goalID)
	})
	if err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}
