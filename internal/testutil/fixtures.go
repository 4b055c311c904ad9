package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/google/uuid"
)

var testSubjectCounter atomic.Int64

// Subject options
type SubjectOption func(*domain.Subject)

func WithExamDate(d string) SubjectOption {
	return func(s *domain.Subject) {
		s.ExamDate = domain.MustParseDate(d)
	}
}

func WithIcon(icon domain.IconType) SubjectOption {
	return func(s *domain.Subject) {
		s.IconType = icon
	}
}

func WithColor(c int) SubjectOption {
	return func(s *domain.Subject) {
		s.Color = c
	}
}

func WithSubjectID(id string) SubjectOption {
	return func(s *domain.Subject) {
		s.ID = id
	}
}

// WithTopics appends fresh topics with the given titles.
func WithTopics(titles ...string) SubjectOption {
	return func(s *domain.Subject) {
		for _, title := range titles {
			s.Topics = append(s.Topics, NewTestTopic(title))
		}
	}
}

// WithGeneratedTopics appends n topics, the first done of them completed.
func WithGeneratedTopics(n, done int) SubjectOption {
	return func(s *domain.Subject) {
		start := len(s.Topics)
		for i := range n {
			t := NewTestTopic(domain.GeneratedTopicTitle(start + i + 1))
			t.Completed = i < done
			s.Topics = append(s.Topics, t)
		}
	}
}

func NewTestSubject(name string, opts ...SubjectOption) domain.Subject {
	s := domain.Subject{
		ID:       fmt.Sprintf("subj-%d", testSubjectCounter.Add(1)),
		Name:     name,
		IconType: domain.IconBook,
		Topics:   []domain.Topic{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Topic options
type TopicOption func(*domain.Topic)

func Completed() TopicOption {
	return func(t *domain.Topic) {
		t.Completed = true
	}
}

func WithNotes(n string) TopicOption {
	return func(t *domain.Topic) {
		t.Notes = n
	}
}

func NewTestTopic(title string, opts ...TopicOption) domain.Topic {
	t := domain.Topic{ID: uuid.New().String(), Title: title}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Plan options
type PlanOption func(*domain.Plan)

func WithSubjects(subjects ...domain.Subject) PlanOption {
	return func(p *domain.Plan) {
		p.Subjects = append(p.Subjects, subjects...)
	}
}

func WithGlobalTarget(d string) PlanOption {
	return func(p *domain.Plan) {
		p.GlobalTargetDate = domain.MustParseDate(d)
	}
}

func WithScratchpad(text string) PlanOption {
	return func(p *domain.Plan) {
		p.Scratchpad = text
	}
}

func WithStats(s domain.Stats) PlanOption {
	return func(p *domain.Plan) {
		p.Stats = s
	}
}

func NotOnboarded() PlanOption {
	return func(p *domain.Plan) {
		p.OnboardingComplete = false
	}
}

// NewTestPlan returns an onboarded plan for goalID with a global target of
// 2024-12-31.
func NewTestPlan(goalID string, opts ...PlanOption) domain.Plan {
	p := domain.NewPlan(goalID, domain.MustParseDate("2024-12-31"))
	p.OnboardingComplete = true
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
