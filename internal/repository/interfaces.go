package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// KVStore is a key-value store of JSON documents.
type KVStore interface {
	// Get decodes the value at key into dst and reports whether the key existed.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// PlanRepo persists a goal's plan under its namespaced keys.
type PlanRepo interface {
	// Load returns the stored plan, filling missing keys with defaults
	// relative to today.
	Load(ctx context.Context, goalID string, today domain.Date) (domain.Plan, error)
	Save(ctx context.Context, p domain.Plan) error
}

type GoalRepo interface {
	// List returns the stored goals, or the seeded default goal when none
	// were ever saved.
	List(ctx context.Context, now time.Time) ([]domain.Goal, error)
	SaveAll(ctx context.Context, goals []domain.Goal) error
	// ActiveID returns the selected goal id, "" when none is selected.
	ActiveID(ctx context.Context) (string, error)
	SetActiveID(ctx context.Context, id string) error
}

type DraftRepo interface {
	Load(ctx context.Context, goalID string) (domain.OnboardingDraft, error)
	Save(ctx context.Context, goalID string, d domain.OnboardingDraft) error
	Clear(ctx context.Context, goalID string) error
}
