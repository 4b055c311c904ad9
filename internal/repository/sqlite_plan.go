package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// KVPlanRepo implements PlanRepo on a KVStore, one key per plan field.
type KVPlanRepo struct {
	kv KVStore
}

// NewKVPlanRepo creates a new KVPlanRepo.
func NewKVPlanRepo(kv KVStore) *KVPlanRepo {
	return &KVPlanRepo{kv: kv}
}

func (r *KVPlanRepo) Load(ctx context.Context, goalID string, today domain.Date) (domain.Plan, error) {
	p := domain.NewPlan(goalID, today)

	fields := []struct {
		name string
		dst  any
	}{
		{keyOnboarded, &p.OnboardingComplete},
		{keySubjects, &p.Subjects},
		{keyTarget, &p.GlobalTargetDate},
		{keyScratchpad, &p.Scratchpad},
		{keyStats, &p.Stats},
	}
	for _, f := range fields {
		if _, err := r.kv.Get(ctx, planKey(goalID, f.name), f.dst); err != nil {
			return domain.Plan{}, fmt.Errorf("loading plan for goal %s: %w", goalID, err)
		}
	}
	if p.Subjects == nil {
		p.Subjects = []domain.Subject{}
	}
	for i := range p.Subjects {
		if p.Subjects[i].Topics == nil {
			p.Subjects[i].Topics = []domain.Topic{}
		}
	}
	return p, nil
}

func (r *KVPlanRepo) Save(ctx context.Context, p domain.Plan) error {
	subjects := p.Subjects
	if subjects == nil {
		subjects = []domain.Subject{}
	}
	values := []struct {
		name  string
		value any
	}{
		{keyOnboarded, p.OnboardingComplete},
		{keySubjects, subjects},
		{keyTarget, p.GlobalTargetDate},
		{keyScratchpad, p.Scratchpad},
		{keyStats, p.Stats},
	}
	for _, v := range values {
		if err := r.kv.Set(ctx, planKey(p.GoalID, v.name), v.value); err != nil {
			return fmt.Errorf("saving plan for goal %s: %w", p.GoalID, err)
		}
	}
	return nil
}
