package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// KVDraftRepo implements DraftRepo on a KVStore. The step and the setup
// subjects are stored under separate keys.
type KVDraftRepo struct {
	kv KVStore
}

// NewKVDraftRepo creates a new KVDraftRepo.
func NewKVDraftRepo(kv KVStore) *KVDraftRepo {
	return &KVDraftRepo{kv: kv}
}

// Load returns the saved draft, or ErrNotFound when no setup is in progress.
func (r *KVDraftRepo) Load(ctx context.Context, goalID string) (domain.OnboardingDraft, error) {
	var d domain.OnboardingDraft
	hasStep, err := r.kv.Get(ctx, draftStepKey(goalID), &d.Step)
	if err != nil {
		return domain.OnboardingDraft{}, fmt.Errorf("loading draft step: %w", err)
	}
	hasSubjects, err := r.kv.Get(ctx, draftSubjectsKey(goalID), &d.Subjects)
	if err != nil {
		return domain.OnboardingDraft{}, fmt.Errorf("loading draft subjects: %w", err)
	}
	if !hasSubjects || len(d.Subjects) == 0 {
		return domain.OnboardingDraft{}, fmt.Errorf("onboarding draft for goal %s: %w", goalID, ErrNotFound)
	}
	if !hasStep {
		d.Step = domain.StepWelcome
	}
	return d, nil
}

func (r *KVDraftRepo) Save(ctx context.Context, goalID string, d domain.OnboardingDraft) error {
	if err := r.kv.Set(ctx, draftStepKey(goalID), d.Step); err != nil {
		return fmt.Errorf("saving draft step: %w", err)
	}
	if err := r.kv.Set(ctx, draftSubjectsKey(goalID), d.Subjects); err != nil {
		return fmt.Errorf("saving draft subjects: %w", err)
	}
	return nil
}

func (r *KVDraftRepo) Clear(ctx context.Context, goalID string) error {
	for _, k := range []string{draftStepKey(goalID), draftSubjectsKey(goalID)} {
		if err := r.kv.Remove(ctx, k); err != nil {
			return fmt.Errorf("clearing draft: %w", err)
		}
	}
	return nil
}
