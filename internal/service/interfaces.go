package service

import (
	"context"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/importer"
	"github.com/alexanderramin/examsprint/internal/scheduler"
)

type GoalService interface {
	List(ctx context.Context) ([]domain.Goal, error)
	Create(ctx context.Context, title string, typ domain.GoalType) (domain.Goal, error)
	Use(ctx context.Context, id string) (domain.Goal, error)
	Leave(ctx context.Context) error
	Current(ctx context.Context) (domain.Goal, error)
	// Resolve picks the goal a command operates on: override when set,
	// otherwise the active goal. The goal must have a tracker.
	Resolve(ctx context.Context, override string) (domain.Goal, error)
}

type PlanService interface {
	Get(ctx context.Context, goalID string) (domain.Plan, error)
	ToggleTopic(ctx context.Context, goalID, subjectID, topicID string) (domain.Plan, error)
	UpdateTopicNotes(ctx context.Context, goalID, subjectID, topicID, notes string) (domain.Plan, error)
	UpdateTopicTitle(ctx context.Context, goalID, subjectID, topicID, title string) (domain.Plan, error)
	UpdateExamDate(ctx context.Context, goalID, subjectID string, date domain.Date) (domain.Plan, error)
	UpdateSubjectName(ctx context.Context, goalID, subjectID, name string) (domain.Plan, error)
	UpdateSubjectIcon(ctx context.Context, goalID, subjectID string, icon domain.IconType) (domain.Plan, error)
	AddTopic(ctx context.Context, goalID, subjectID string) (domain.Plan, error)
	DeleteTopic(ctx context.Context, goalID, subjectID, topicID string) (domain.Plan, error)
	ReplaceTopics(ctx context.Context, goalID, subjectID, text string, c domain.Confirmation) (domain.Plan, error)
	SetGlobalTarget(ctx context.Context, goalID string, date domain.Date) (domain.Plan, error)
	SetScratchpad(ctx context.Context, goalID, text string) (domain.Plan, error)
	RecordSession(ctx context.Context, goalID string, kind domain.SessionKind, minutes int) (domain.Plan, error)
	Reset(ctx context.Context, goalID string, c domain.Confirmation) (domain.Plan, error)
}

type OnboardingService interface {
	Draft(ctx context.Context, goalID string) (domain.OnboardingDraft, error)
	AddSubject(ctx context.Context, goalID string) (domain.OnboardingDraft, error)
	BulkAddSubjects(ctx context.Context, goalID, text string) (domain.OnboardingDraft, int, error)
	RemoveSubject(ctx context.Context, goalID, subjectID string) (domain.OnboardingDraft, error)
	UpdateSubject(ctx context.Context, goalID, subjectID string, patch domain.SetupPatch) (domain.OnboardingDraft, error)
	ClearAll(ctx context.Context, goalID string, c domain.Confirmation) (domain.OnboardingDraft, error)
	Next(ctx context.Context, goalID string) (domain.OnboardingDraft, error)
	Back(ctx context.Context, goalID string) (domain.OnboardingDraft, error)
	Finish(ctx context.Context, goalID string) (domain.Plan, error)
	EditSubjects(ctx context.Context, goalID string) (domain.OnboardingDraft, error)
}

type BackupService interface {
	Export(ctx context.Context, goalID string) (importer.Backup, error)
	Import(ctx context.Context, goalID string, data []byte, c domain.Confirmation) (domain.Plan, error)
}

type DashboardService interface {
	Agenda(ctx context.Context, goalID string) (scheduler.Agenda, error)
	SubjectDetail(ctx context.Context, goalID, subjectID string) (scheduler.SubjectDetail, error)
}
