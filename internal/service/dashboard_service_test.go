package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/testutil"
)

func TestDashboard_Agenda(t *testing.T) {
	r := setupRepos(t)
	seedPlan(t, r, testutil.NewTestPlan("g1",
		testutil.WithGlobalTarget("2025-12-31"),
		testutil.WithSubjects(
			testutil.NewTestSubject("Late", testutil.WithGeneratedTopics(10, 0)),
			testutil.NewTestSubject("Soon", testutil.WithExamDate("2025-06-20"), testutil.WithGeneratedTopics(10, 0)),
		)))
	obs := &recordingObserver{}
	svc := NewDashboardService(r.plans, testRuntime(), obs)

	agenda, err := svc.Agenda(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, agenda.Subjects, 2)
	assert.Equal(t, "Soon", agenda.Subjects[0].Subject.Name)
	assert.Equal(t, 5, agenda.Subjects[0].DaysLeft)
	assert.InDelta(t, 2.0, agenda.Subjects[0].Velocity, 1e-9)
	assert.Equal(t, domain.UrgencyHigh, agenda.Subjects[0].Urgency.Level)
	require.Len(t, agenda.Attention, 2)
	assert.Len(t, agenda.Attention[0].Topics, 2)
	assert.Equal(t, 20, agenda.TotalTopics)

	assert.Equal(t, "dashboard.agenda", obs.last().Name)
}

func TestDashboard_NeedsOnboarding(t *testing.T) {
	r := setupRepos(t)
	svc := NewDashboardService(r.plans, testRuntime())

	_, err := svc.Agenda(context.Background(), "g1")
	assert.ErrorIs(t, err, domain.ErrNeedsOnboarding)
	_, err = svc.SubjectDetail(context.Background(), "g1", "x")
	assert.ErrorIs(t, err, domain.ErrNeedsOnboarding)
}

func TestDashboard_SubjectDetail(t *testing.T) {
	r := setupRepos(t)
	seedPlan(t, r, testutil.NewTestPlan("g1",
		testutil.WithGlobalTarget("2025-06-25"),
		testutil.WithSubjects(testutil.NewTestSubject("Math",
			testutil.WithSubjectID("math"),
			testutil.WithExamDate("2025-07-15"),
			testutil.WithGeneratedTopics(12, 2))),
	))
	svc := NewDashboardService(r.plans, testRuntime())

	detail, err := svc.SubjectDetail(context.Background(), "g1", "math")
	require.NoError(t, err)
	assert.Equal(t, 30, detail.ExamDaysLeft)
	assert.Equal(t, 10, detail.GlobalDaysLeft)
	assert.InDelta(t, 1.0, detail.GlobalVelocity, 1e-9)
	assert.InDelta(t, 10.0/30.0, detail.ExamVelocity, 1e-9)
	assert.InDelta(t, 1.0, detail.SmartVelocity, 1e-9)
	assert.Equal(t, 10, detail.RemainingTopics)

	_, err = svc.SubjectDetail(context.Background(), "g1", "missing")
	assert.ErrorIs(t, err, domain.ErrUnknownSubject)
}
