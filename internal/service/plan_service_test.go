package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/testutil"
)

func seededPlanService(t *testing.T) (testRepos, PlanService, domain.Plan) {
	t.Helper()
	r := setupRepos(t)
	p := testutil.NewTestPlan("g1", testutil.WithSubjects(
		testutil.NewTestSubject("Math", testutil.WithSubjectID("math"), testutil.WithTopics("Limits", "Series")),
		testutil.NewTestSubject("Physics", testutil.WithSubjectID("phys"), testutil.WithGeneratedTopics(3, 1)),
	))
	seedPlan(t, r, p)
	return r, NewPlanService(r.plans, r.uow, testRuntime()), p
}

func TestPlanService_ToggleWritesThrough(t *testing.T) {
	r, svc, p := seededPlanService(t)
	ctx := context.Background()
	topicID := p.Subjects[0].Topics[1].ID

	out, err := svc.ToggleTopic(ctx, "g1", "math", topicID)
	require.NoError(t, err)
	assert.True(t, out.Subjects[0].Topics[1].Completed)

	stored := loadPlan(t, r, "g1")
	if diff := cmp.Diff(out, stored); diff != "" {
		t.Errorf("stored plan differs (-returned +stored):\n%s", diff)
	}
}

func TestPlanService_UnknownIDsAreNoOps(t *testing.T) {
	r := setupRepos(t)
	p := testutil.NewTestPlan("g1", testutil.WithSubjects(
		testutil.NewTestSubject("Math", testutil.WithSubjectID("math"), testutil.WithTopics("Limits")),
	))
	seedPlan(t, r, p)
	obs := &recordingObserver{}
	svc := NewPlanService(r.plans, r.uow, testRuntime(), obs)

	out, err := svc.ToggleTopic(context.Background(), "g1", "math", "missing")
	require.NoError(t, err)
	if diff := cmp.Diff(p, out); diff != "" {
		t.Errorf("no-op changed plan (-want +got):\n%s", diff)
	}
	assert.Equal(t, false, obs.last().Fields["applied"])
	assert.Equal(t, "plan.toggle_topic", obs.last().Name)

	_, err = svc.DeleteTopic(context.Background(), "g1", "missing", "x")
	require.NoError(t, err)
	if diff := cmp.Diff(p, loadPlan(t, r, "g1")); diff != "" {
		t.Errorf("stored plan changed (-want +got):\n%s", diff)
	}
}

func TestPlanService_SubjectAndTopicEdits(t *testing.T) {
	r, svc, p := seededPlanService(t)
	ctx := context.Background()
	topicID := p.Subjects[0].Topics[0].ID

	_, err := svc.UpdateTopicTitle(ctx, "g1", "math", topicID, "Limits and Continuity")
	require.NoError(t, err)
	_, err = svc.UpdateTopicNotes(ctx, "g1", "math", topicID, "# eps\n")
	require.NoError(t, err)
	_, err = svc.UpdateSubjectName(ctx, "g1", "math", "Calculus")
	require.NoError(t, err)
	_, err = svc.UpdateSubjectIcon(ctx, "g1", "math", domain.IconMath)
	require.NoError(t, err)
	_, err = svc.UpdateExamDate(ctx, "g1", "math", domain.MustParseDate("2025-07-01"))
	require.NoError(t, err)
	_, err = svc.AddTopic(ctx, "g1", "phys")
	require.NoError(t, err)
	_, err = svc.DeleteTopic(ctx, "g1", "phys", p.Subjects[1].Topics[0].ID)
	require.NoError(t, err)

	stored := loadPlan(t, r, "g1")
	math, _ := stored.Subject("math")
	assert.Equal(t, "Calculus", math.Name)
	assert.Equal(t, domain.IconMath, math.IconType)
	assert.Equal(t, "2025-07-01", math.ExamDate.String())
	assert.Equal(t, "Limits and Continuity", math.Topics[0].Title)
	assert.Equal(t, "# eps\n", math.Topics[0].Notes)

	phys, _ := stored.Subject("phys")
	require.Len(t, phys.Topics, 3)
	assert.Equal(t, "Topic 4", phys.Topics[2].Title)
	assert.Equal(t, "id-1", phys.Topics[2].ID)
}

func TestPlanService_InvalidIcon(t *testing.T) {
	_, svc, _ := seededPlanService(t)
	_, err := svc.UpdateSubjectIcon(context.Background(), "g1", "math", "rocket")
	assert.ErrorContains(t, err, "invalid icon")
}

func TestPlanService_ReplaceTopics(t *testing.T) {
	r, svc, _ := seededPlanService(t)
	ctx := context.Background()

	_, err := svc.ReplaceTopics(ctx, "g1", "math", "1. Vectors\n2) Matrices", domain.Unconfirmed)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	math, _ := loadPlan(t, r, "g1").Subject("math")
	assert.Equal(t, "Limits", math.Topics[0].Title)

	_, err = svc.ReplaceTopics(ctx, "g1", "math", "  \n ", domain.Confirmed)
	assert.ErrorContains(t, err, "no topics")

	out, err := svc.ReplaceTopics(ctx, "g1", "math", "1. Vectors\n2) Matrices", domain.Confirmed)
	require.NoError(t, err)
	math, _ = out.Subject("math")
	require.Len(t, math.Topics, 2)
	assert.Equal(t, "Vectors", math.Topics[0].Title)
	assert.Equal(t, "Matrices", math.Topics[1].Title)
}

func TestPlanService_TargetScratchpadAndSessions(t *testing.T) {
	r, svc, _ := seededPlanService(t)
	ctx := context.Background()

	_, err := svc.SetGlobalTarget(ctx, "g1", domain.Date{})
	require.NoError(t, err)
	_, err = svc.SetScratchpad(ctx, "g1", "call lab partner")
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, "g1", domain.SessionFocus, 25)
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, "g1", domain.SessionBreak, 5)
	require.NoError(t, err)

	_, err = svc.RecordSession(ctx, "g1", domain.SessionFocus, 0)
	assert.Error(t, err)

	stored := loadPlan(t, r, "g1")
	assert.True(t, stored.GlobalTargetDate.IsZero())
	assert.Equal(t, "call lab partner", stored.Scratchpad)
	assert.Equal(t, domain.Stats{FocusMinutes: 25, BreakMinutes: 5, Sessions: 1}, stored.Stats)
}

func TestPlanService_TrackerNeedsOnboarding(t *testing.T) {
	r := setupRepos(t)
	svc := NewPlanService(r.plans, r.uow, testRuntime())

	_, err := svc.SetScratchpad(context.Background(), "fresh", "x")
	assert.ErrorIs(t, err, domain.ErrNeedsOnboarding)

	subj := testutil.NewTestSubject("Math", testutil.WithSubjectID("math"))
	subj.Topics = append(subj.Topics, testutil.NewTestTopic("Limits", testutil.WithNotes("epsilon-delta")))
	seedPlan(t, r, testutil.NewTestPlan("draft", testutil.NotOnboarded(), testutil.WithSubjects(subj)))

	_, err = svc.ToggleTopic(context.Background(), "draft", "math", subj.Topics[0].ID)
	assert.ErrorIs(t, err, domain.ErrNeedsOnboarding)
	stored := loadPlan(t, r, "draft")
	assert.False(t, stored.Subjects[0].Topics[0].Completed)
	assert.Equal(t, "epsilon-delta", stored.Subjects[0].Topics[0].Notes)
}

func TestPlanService_Reset(t *testing.T) {
	r, svc, _ := seededPlanService(t)
	ctx := context.Background()
	require.NoError(t, r.drafts.Save(ctx, "g1", domain.NewDraft(nil, &domain.CounterIDs{Prefix: "d"})))

	_, err := svc.Reset(ctx, "g1", domain.Confirmed)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.True(t, loadPlan(t, r, "g1").OnboardingComplete)

	out, err := svc.Reset(ctx, "g1", domain.DoubleConfirmed)
	require.NoError(t, err)
	assert.False(t, out.OnboardingComplete)
	assert.Empty(t, out.Subjects)
	assert.Equal(t, "2026-06-15", out.GlobalTargetDate.String())

	stored := loadPlan(t, r, "g1")
	if diff := cmp.Diff(out, stored); diff != "" {
		t.Errorf("stored plan differs (-returned +stored):\n%s", diff)
	}
	_, err = r.drafts.Load(ctx, "g1")
	assert.Error(t, err)
}

func TestPlanService_ResetRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	r := setupReposOn(database)
	p := testutil.NewTestPlan("g1", testutil.WithSubjects(testutil.NewTestSubject("Math", testutil.WithTopics("Limits"))))
	seedPlan(t, r, p)

	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected write failure"),
	}
	svc := NewPlanService(r.plans, failUoW, testRuntime())

	_, err := svc.Reset(context.Background(), "g1", domain.DoubleConfirmed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected write failure")

	if diff := cmp.Diff(p, loadPlan(t, r, "g1")); diff != "" {
		t.Errorf("plan changed after rollback (-want +got):\n%s", diff)
	}
}
