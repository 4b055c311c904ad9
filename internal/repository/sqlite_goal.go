package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// KVGoalRepo implements GoalRepo on a KVStore.
type KVGoalRepo struct {
	kv KVStore
}

// NewKVGoalRepo creates a new KVGoalRepo.
func NewKVGoalRepo(kv KVStore) *KVGoalRepo {
	return &KVGoalRepo{kv: kv}
}

func (r *KVGoalRepo) List(ctx context.Context, now time.Time) ([]domain.Goal, error) {
	var goals []domain.Goal
	found, err := r.kv.Get(ctx, KeyGoals, &goals)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	if !found {
		return []domain.Goal{domain.DefaultGoal(now)}, nil
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	return goals, nil
}

func (r *KVGoalRepo) SaveAll(ctx context.Context, goals []domain.Goal) error {
	if goals == nil {
		goals = []domain.Goal{}
	}
	if err := r.kv.Set(ctx, KeyGoals, goals); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}
	return nil
}

func (r *KVGoalRepo) ActiveID(ctx context.Context) (string, error) {
	var id *string
	if _, err := r.kv.Get(ctx, KeyActiveGoalID, &id); err != nil {
		return "", fmt.Errorf("reading active goal: %w", err)
	}
	if id == nil {
		return "", nil
	}
	return *id, nil
}

// SetActiveID selects a goal; "" stores null, returning to the goal library.
func (r *KVGoalRepo) SetActiveID(ctx context.Context, id string) error {
	var value any
	if id != "" {
		value = id
	}
	if err := r.kv.Set(ctx, KeyActiveGoalID, value); err != nil {
		return fmt.Errorf("setting active goal: %w", err)
	}
	return nil
}
