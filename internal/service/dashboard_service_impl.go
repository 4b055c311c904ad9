package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/repository"
	"github.com/alexanderramin/examsprint/internal/scheduler"
)

type dashboardService struct {
	plans    repository.PlanRepo
	rt       Runtime
	observer UseCaseObserver
}

func NewDashboardService(plans repository.PlanRepo, rt Runtime, observers ...UseCaseObserver) DashboardService {
	return &dashboardService{
		plans:    plans,
		rt:       rt.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) Agenda(ctx context.Context, goalID string) (agenda scheduler.Agenda, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dashboard.agenda",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"goal_id":            goalID,
				"subjects":           len(agenda.Subjects),
				"total_daily_topics": agenda.TotalDailyTopics,
			},
		})
	}()

	now := s.rt.Now()
	plan, err := s.plans.Load(ctx, goalID, domain.DateOf(now))
	if err != nil {
		return scheduler.Agenda{}, err
	}
	if !plan.OnboardingComplete {
		return scheduler.Agenda{}, domain.ErrNeedsOnboarding
	}
	return scheduler.BuildAgenda(plan, now), nil
}

func (s *dashboardService) SubjectDetail(ctx context.Context, goalID, subjectID string) (scheduler.SubjectDetail, error) {
	now := s.rt.Now()
	plan, err := s.plans.Load(ctx, goalID, domain.DateOf(now))
	if err != nil {
		return scheduler.SubjectDetail{}, err
	}
	if !plan.OnboardingComplete {
		return scheduler.SubjectDetail{}, domain.ErrNeedsOnboarding
	}
	subject, ok := plan.Subject(subjectID)
	if !ok {
		return scheduler.SubjectDetail{}, fmt.Errorf("subject %s: %w", subjectID, domain.ErrUnknownSubject)
	}
	return scheduler.BuildSubjectDetail(subject, plan.GlobalTargetDate, now), nil
}
