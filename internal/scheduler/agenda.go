package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// SubjectPace is one dashboard row.
type SubjectPace struct {
	// Index is the subject's position in the plan.
	Index         int
	Subject       domain.Subject
	EffectiveDate domain.Date
	DaysLeft      int
	ExamDaysLeft  int
	Velocity      float64
	Urgency       Urgency
	ProgressPct   int
}

// AttentionItem lists the topics to cover today for a subject under pace
// pressure.
type AttentionItem struct {
	SubjectID   string
	SubjectName string
	Velocity    float64
	Topics      []domain.Topic
}

// Agenda is the dashboard view of a plan at a point in time.
type Agenda struct {
	Subjects           []SubjectPace
	Attention          []AttentionItem
	TotalDailyTopics   float64
	CompletedTopics    int
	TotalTopics        int
	OverallProgressPct int
	GlobalDaysLeft     int
}

// SubjectDetail carries the paces shown on a subject page: one against its
// own exam date and one against the global target.
type SubjectDetail struct {
	Subject         domain.Subject
	ExamDaysLeft    int
	ExamVelocity    float64
	GlobalDaysLeft  int
	GlobalVelocity  float64
	SmartVelocity   float64
	Urgency         Urgency
	ProgressPct     int
	CompletedTopics int
	RemainingTopics int
}

// EffectiveDate is the earlier of the exam date and the global target; the
// zero Date when neither is set.
func EffectiveDate(exam, global domain.Date) domain.Date {
	switch {
	case exam.IsZero():
		return global
	case global.IsZero():
		return exam
	case exam.Before(global):
		return exam
	default:
		return global
	}
}

// BuildAgenda computes the dashboard for plan at now. Subjects are ordered
// by effective date, earliest first, with undated subjects last; ties keep
// plan order.
func BuildAgenda(plan domain.Plan, now time.Time) Agenda {
	a := Agenda{
		Subjects:       make([]SubjectPace, 0, len(plan.Subjects)),
		GlobalDaysLeft: DaysLeft(plan.GlobalTargetDate, now),
	}
	for i, s := range plan.Subjects {
		v := SmartVelocity(s, plan.GlobalTargetDate, now)
		eff := EffectiveDate(s.ExamDate, plan.GlobalTargetDate)
		a.Subjects = append(a.Subjects, SubjectPace{
			Index:         i,
			Subject:       s,
			EffectiveDate: eff,
			DaysLeft:      DaysLeft(eff, now),
			ExamDaysLeft:  DaysLeft(s.ExamDate, now),
			Velocity:      v,
			Urgency:       UrgencyFor(v),
			ProgressPct:   s.ProgressPct(),
		})
	}
	sort.SliceStable(a.Subjects, func(i, j int) bool {
		di, dj := a.Subjects[i].EffectiveDate, a.Subjects[j].EffectiveDate
		if di.IsZero() != dj.IsZero() {
			return !di.IsZero()
		}
		return di.Before(dj)
	})

	for _, sp := range a.Subjects {
		if sp.Velocity <= 0 {
			continue
		}
		a.TotalDailyTopics += sp.Velocity
		a.Attention = append(a.Attention, AttentionItem{
			SubjectID:   sp.Subject.ID,
			SubjectName: sp.Subject.Name,
			Velocity:    sp.Velocity,
			Topics:      sp.Subject.NextTopics(int(math.Ceil(sp.Velocity))),
		})
	}

	a.CompletedTopics, a.TotalTopics = plan.TopicCounts()
	if a.TotalTopics > 0 {
		a.OverallProgressPct = int(math.Round(float64(a.CompletedTopics) / float64(a.TotalTopics) * 100))
	}
	return a
}

// BuildSubjectDetail computes the subject page paces.
func BuildSubjectDetail(s domain.Subject, global domain.Date, now time.Time) SubjectDetail {
	smart := SmartVelocity(s, global, now)
	return SubjectDetail{
		Subject:         s,
		ExamDaysLeft:    DaysLeft(s.ExamDate, now),
		ExamVelocity:    RawVelocity(s, s.ExamDate, now),
		GlobalDaysLeft:  DaysLeft(global, now),
		GlobalVelocity:  RawVelocity(s, global, now),
		SmartVelocity:   smart,
		Urgency:         UrgencyFor(smart),
		ProgressPct:     s.ProgressPct(),
		CompletedTopics: s.CompletedCount(),
		RemainingTopics: s.Remaining(),
	}
}
