package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRepo_LoadMissing(t *testing.T) {
	repo := NewKVDraftRepo(NewSQLiteKVStore(testutil.NewTestDB(t)))
	_, err := repo.Load(context.Background(), "g1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_SaveLoadClear(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	repo := NewKVDraftRepo(kv)
	ctx := context.Background()

	ids := &domain.CounterIDs{Prefix: "s"}
	d := domain.NewDraft(nil, ids).AddSubject(ids)
	d, _ = d.UpdateSubject(d.Subjects[0].ID, domain.SetupPatch{ExamDate: ptrDate("2025-07-01")})
	d, err := d.Next()
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, "g1", d))

	var step int
	_, err = kv.Get(ctx, "onboarding_draft_g1_step", &step)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSubjects, step)

	got, err := repo.Load(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, d, got)

	require.NoError(t, repo.Clear(ctx, "g1"))
	_, err = repo.Load(ctx, "g1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func ptrDate(s string) *domain.Date {
	d := domain.MustParseDate(s)
	return &d
}
