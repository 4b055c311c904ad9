package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft_EmptyStartsAtWelcome(t *testing.T) {
	d := NewDraft(nil, &CounterIDs{Prefix: "s"})
	assert.Equal(t, StepWelcome, d.Step)
	require.Len(t, d.Subjects, 1)
	assert.Equal(t, "Subject 1", d.Subjects[0].Name)
	assert.Equal(t, IconBook, d.Subjects[0].IconType)
	assert.Equal(t, DefaultSetupTopicCount, d.Subjects[0].TopicCount)
}

func TestNewDraft_SeedsFromExistingSubjects(t *testing.T) {
	existing := testPlan().Subjects
	d := NewDraft(existing, &CounterIDs{Prefix: "s"})

	assert.Equal(t, StepSubjects, d.Step)
	require.Len(t, d.Subjects, 2)
	assert.Equal(t, "math", d.Subjects[0].ID)
	assert.Equal(t, 5, d.Subjects[0].TopicCount)
	assert.Equal(t, existing[0].Topics, d.Subjects[0].Topics)
	assert.Equal(t, "2025-07-01", d.Subjects[0].ExamDate.String())
}

func TestDraft_BulkAddReplacesSingleBlankSubject(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids)
	d, _ = d.UpdateSubject(d.Subjects[0].ID, SetupPatch{Name: ptr("  ")})

	d, n := d.BulkAddSubjects("1. Physics\n2) Chemistry\n\nBiology", ids, func() IconType { return IconActivity })
	assert.Equal(t, 3, n)
	require.Len(t, d.Subjects, 3)
	assert.Equal(t, "Physics", d.Subjects[0].Name)
	assert.Equal(t, "Chemistry", d.Subjects[1].Name)
	assert.Equal(t, "Biology", d.Subjects[2].Name)
	for _, s := range d.Subjects {
		assert.Equal(t, IconActivity, s.IconType)
		assert.Equal(t, DefaultSetupTopicCount, s.TopicCount)
	}
}

func TestDraft_BulkAddAppendsToNamedSubjects(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids)

	d, n := d.BulkAddSubjects("Physics\nChemistry", ids, nil)
	assert.Equal(t, 2, n)
	require.Len(t, d.Subjects, 3)
	assert.Equal(t, "Subject 1", d.Subjects[0].Name)
	assert.Equal(t, IconBook, d.Subjects[2].IconType)
}

func TestDraft_BulkAddBlankTextIsNoOp(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids)
	out, n := d.BulkAddSubjects(" \n\n", ids, nil)
	assert.Zero(t, n)
	assert.Equal(t, d, out)
}

func TestDraft_RemoveKeepsLastSubject(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids).AddSubject(ids)
	require.Len(t, d.Subjects, 2)

	d, ok := d.RemoveSubject(d.Subjects[1].ID)
	require.True(t, ok)
	require.Len(t, d.Subjects, 1)

	d, ok = d.RemoveSubject(d.Subjects[0].ID)
	assert.False(t, ok)
	assert.Len(t, d.Subjects, 1)
}

func TestDraft_RemoveUnknownSubject(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids).AddSubject(ids)
	_, ok := d.RemoveSubject("missing")
	assert.False(t, ok)
}

func TestDraft_UpdateFloorsTopicCount(t *testing.T) {
	d := NewDraft(nil, &CounterIDs{Prefix: "s"})
	id := d.Subjects[0].ID

	d, ok := d.UpdateSubject(id, SetupPatch{TopicCount: ptr(0)})
	require.True(t, ok)
	assert.Equal(t, 1, d.Subjects[0].TopicCount)

	d, _ = d.UpdateSubject(id, SetupPatch{TopicCount: ptr(30), IconType: ptr(IconMath)})
	assert.Equal(t, 30, d.Subjects[0].TopicCount)
	assert.Equal(t, IconMath, d.Subjects[0].IconType)
	assert.Equal(t, "Subject 1", d.Subjects[0].Name)
}

func TestDraft_ClearAllNeedsConfirmation(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids).AddSubject(ids).AddSubject(ids)

	_, err := d.ClearAll(ids, Unconfirmed)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	out, err := d.ClearAll(ids, Confirmed)
	require.NoError(t, err)
	require.Len(t, out.Subjects, 1)
	assert.Empty(t, out.Subjects[0].Name)
}

func TestDraft_NextRequiresNamesOnSubjectStep(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids).AddSubject(ids)

	d, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, StepSubjects, d.Step)

	_, err = d.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject 2")

	d, _ = d.UpdateSubject(d.Subjects[1].ID, SetupPatch{Name: ptr("History")})
	d, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, StepTopics, d.Step)

	_, err = d.Next()
	assert.Error(t, err)
}

func TestDraft_BackStopsAtWelcome(t *testing.T) {
	d := OnboardingDraft{Step: StepTopics}
	d = d.Back().Back().Back()
	assert.Equal(t, StepWelcome, d.Step)
}

func TestDraft_FinishGeneratesAndReconciles(t *testing.T) {
	ids := &CounterIDs{Prefix: "x"}
	d := NewDraft(testPlan().Subjects, ids)
	d, _ = d.UpdateSubject("math", SetupPatch{TopicCount: ptr(7)})
	d, _ = d.UpdateSubject("algo", SetupPatch{TopicCount: ptr(1)})
	d = d.AddSubject(ids)
	newID := d.Subjects[2].ID
	d, _ = d.UpdateSubject(newID, SetupPatch{Name: ptr("  Physics  ")})

	subjects := d.Finish(ids)
	require.Len(t, subjects, 3)

	math := subjects[0]
	require.Len(t, math.Topics, 7)
	assert.Equal(t, fiveTopics(), math.Topics[:5])
	assert.Equal(t, "Topic 6", math.Topics[5].Title)

	algo := subjects[1]
	require.Len(t, algo.Topics, 1)
	assert.Equal(t, "Sorting", algo.Topics[0].Title)

	phys := subjects[2]
	assert.Equal(t, "Physics", phys.Name)
	assert.Len(t, phys.Topics, DefaultSetupTopicCount)
	assert.Equal(t, "Topic 1", phys.Topics[0].Title)

	for i, s := range subjects {
		assert.Equal(t, i%PaletteSize, s.Color)
	}
}

func TestDraft_FinishFallbackCountAndIcon(t *testing.T) {
	d := OnboardingDraft{Step: StepTopics, Subjects: []SetupSubject{{ID: "s", Name: "Art"}}}
	subjects := d.Finish(&CounterIDs{Prefix: "t"})
	require.Len(t, subjects, 1)
	assert.Len(t, subjects[0].Topics, FallbackTopicCount)
	assert.Equal(t, IconBook, subjects[0].IconType)
}

func TestDraft_ColorsWrapAroundPalette(t *testing.T) {
	ids := &CounterIDs{Prefix: "s"}
	d := NewDraft(nil, ids)
	for range 8 {
		d = d.AddSubject(ids)
	}
	subjects := d.Finish(ids)
	require.Len(t, subjects, 9)
	assert.Equal(t, 0, subjects[7].Color)
	assert.Equal(t, 1, subjects[8].Color)
}

func ptr[T any](v T) *T { return &v }

func TestDraftValidate(t *testing.T) {
	d := OnboardingDraft{Subjects: []SetupSubject{{Name: "Math"}, {Name: "  "}}}
	assert.EqualError(t, d.Validate(), "subject 2 needs a name")

	assert.Error(t, OnboardingDraft{}.Validate())

	d.Subjects[1].Name = "Physics"
	assert.NoError(t, d.Validate())
}
