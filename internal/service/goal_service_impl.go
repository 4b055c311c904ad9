package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/repository"
)

type goalService struct {
	goals    repository.GoalRepo
	rt       Runtime
	observer UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, rt Runtime, observers ...UseCaseObserver) GoalService {
	return &goalService{
		goals:    goals,
		rt:       rt.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.goals.List(ctx, s.rt.Now())
}

func (s *goalService) Create(ctx context.Context, title string, typ domain.GoalType) (goal domain.Goal, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "goal.create",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": goal.ID, "type": string(typ)},
		})
	}()

	goal, err = domain.NewGoal(title, typ, s.rt.IDs, s.rt.Now())
	if err != nil {
		return domain.Goal{}, err
	}
	goals, err := s.goals.List(ctx, s.rt.Now())
	if err != nil {
		return domain.Goal{}, err
	}
	if err := s.goals.SaveAll(ctx, append(goals, goal)); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *goalService) Use(ctx context.Context, id string) (goal domain.Goal, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "goal.use",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_id": id},
		})
	}()

	goal, err = s.find(ctx, id)
	if err != nil {
		return domain.Goal{}, err
	}
	if err := s.goals.SetActiveID(ctx, goal.ID); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// Leave clears the active goal, returning to the goal library.
func (s *goalService) Leave(ctx context.Context) error {
	return s.goals.SetActiveID(ctx, "")
}

func (s *goalService) Current(ctx context.Context) (domain.Goal, error) {
	id, err := s.goals.ActiveID(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	if id == "" {
		return domain.Goal{}, domain.ErrNoActiveGoal
	}
	return s.find(ctx, id)
}

// Resolve falls back to the only goal when none is active, so a fresh
// install works without selecting one first.
func (s *goalService) Resolve(ctx context.Context, override string) (domain.Goal, error) {
	var (
		goal domain.Goal
		err  error
	)
	switch {
	case override != "":
		goal, err = s.find(ctx, override)
	default:
		goal, err = s.Current(ctx)
		if errors.Is(err, domain.ErrNoActiveGoal) {
			goals, listErr := s.goals.List(ctx, s.rt.Now())
			if listErr != nil {
				return domain.Goal{}, listErr
			}
			if len(goals) != 1 {
				return domain.Goal{}, fmt.Errorf("%w: choose one with 'examsprint goal use <id>'", domain.ErrNoActiveGoal)
			}
			goal, err = goals[0], nil
		}
	}
	if err != nil {
		return domain.Goal{}, err
	}
	if !goal.HasTracker() {
		return domain.Goal{}, fmt.Errorf("goal %q (%s): %w", goal.Title, goal.Type, domain.ErrTrackerUnavailable)
	}
	return goal, nil
}

func (s *goalService) find(ctx context.Context, id string) (domain.Goal, error) {
	goals, err := s.goals.List(ctx, s.rt.Now())
	if err != nil {
		return domain.Goal{}, err
	}
	goal, ok := domain.FindGoal(goals, id)
	if !ok {
		return domain.Goal{}, fmt.Errorf("goal %s: %w", id, domain.ErrUnknownGoal)
	}
	return goal, nil
}
