package scheduler

import (
	"testing"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agendaPlan() domain.Plan {
	late := subjectWith(4, 0, date("2025-04-14")) // 30 days
	late.ID, late.Name = "late", "Late"
	undated := subjectWith(3, 1, domain.Date{})
	undated.ID, undated.Name = "undated", "Undated"
	soon := subjectWith(10, 2, date("2025-03-19")) // 4 days
	soon.ID, soon.Name = "soon", "Soon"
	done := subjectWith(0, 3, date("2025-03-17"))
	done.ID, done.Name = "done", "Done"
	return domain.Plan{
		GoalID:             "g",
		OnboardingComplete: true,
		Subjects:           []domain.Subject{late, undated, soon, done},
	}
}

func subjectIDs(rows []SubjectPace) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.Subject.ID
	}
	return ids
}

func TestEffectiveDate(t *testing.T) {
	a, b := date("2025-04-01"), date("2025-05-01")
	assert.Equal(t, a, EffectiveDate(a, b))
	assert.Equal(t, a, EffectiveDate(b, a))
	assert.Equal(t, b, EffectiveDate(domain.Date{}, b))
	assert.Equal(t, a, EffectiveDate(a, domain.Date{}))
	assert.True(t, EffectiveDate(domain.Date{}, domain.Date{}).IsZero())
}

func TestBuildAgenda_SortsByEffectiveDateUndatedLast(t *testing.T) {
	a := BuildAgenda(agendaPlan(), testNow)
	assert.Equal(t, []string{"done", "soon", "late", "undated"}, subjectIDs(a.Subjects))

	indexes := make([]int, len(a.Subjects))
	for i, sp := range a.Subjects {
		indexes[i] = sp.Index
	}
	assert.Equal(t, []int{3, 2, 0, 1}, indexes)
}

func TestBuildAgenda_GlobalTargetTightensSubjects(t *testing.T) {
	p := agendaPlan()
	p.GlobalTargetDate = date("2025-03-25") // 10 days
	a := BuildAgenda(p, testNow)

	assert.Equal(t, []string{"done", "soon", "late", "undated"}, subjectIDs(a.Subjects))
	late := a.Subjects[2]
	assert.Equal(t, "2025-03-25", late.EffectiveDate.String())
	assert.Equal(t, 10, late.DaysLeft)
	assert.Equal(t, 30, late.ExamDaysLeft)
	assert.InDelta(t, 0.4, late.Velocity, 1e-9)
	assert.Equal(t, 10, a.GlobalDaysLeft)
}

func TestBuildAgenda_TotalsAndAttention(t *testing.T) {
	a := BuildAgenda(agendaPlan(), testNow)

	// soon: 10/4 = 2.5, late: 4/30, undated: 0, done: 0
	assert.InDelta(t, 2.5+4.0/30, a.TotalDailyTopics, 1e-9)

	require.Len(t, a.Attention, 2)
	assert.Equal(t, "soon", a.Attention[0].SubjectID)
	require.Len(t, a.Attention[0].Topics, 3, "ceil(2.5)")
	for _, tp := range a.Attention[0].Topics {
		assert.False(t, tp.Completed)
	}
	assert.Equal(t, "late", a.Attention[1].SubjectID)
	assert.Len(t, a.Attention[1].Topics, 1)

	assert.Equal(t, domain.UrgencyHigh, a.Subjects[1].Urgency.Level)
	assert.Equal(t, domain.UrgencyDone, a.Subjects[0].Urgency.Level)
}

func TestBuildAgenda_OverallProgress(t *testing.T) {
	a := BuildAgenda(agendaPlan(), testNow)
	assert.Equal(t, 6, a.CompletedTopics)
	assert.Equal(t, 23, a.TotalTopics)
	assert.Equal(t, 26, a.OverallProgressPct)
}

func TestBuildAgenda_EmptyPlan(t *testing.T) {
	a := BuildAgenda(domain.NewPlan("g", domain.DateOf(testNow)), testNow)
	assert.Empty(t, a.Subjects)
	assert.Empty(t, a.Attention)
	assert.Zero(t, a.TotalDailyTopics)
	assert.Zero(t, a.OverallProgressPct)
	assert.Equal(t, 365, a.GlobalDaysLeft)
}

func TestBuildSubjectDetail(t *testing.T) {
	s := subjectWith(20, 5, date("2025-03-25"))
	d := BuildSubjectDetail(s, date("2025-03-20"), testNow)

	assert.Equal(t, 10, d.ExamDaysLeft)
	assert.InDelta(t, 2.0, d.ExamVelocity, 1e-9)
	assert.Equal(t, 5, d.GlobalDaysLeft)
	assert.InDelta(t, 4.0, d.GlobalVelocity, 1e-9)
	assert.InDelta(t, 4.0, d.SmartVelocity, 1e-9)
	assert.Equal(t, domain.UrgencyCritical, d.Urgency.Level)
	assert.Equal(t, 20, d.ProgressPct)
	assert.Equal(t, 5, d.CompletedTopics)
	assert.Equal(t, 20, d.RemainingTopics)
}
