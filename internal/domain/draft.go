package domain

import (
	"fmt"
	"strings"
)

// Onboarding steps.
const (
	StepWelcome  = 0
	StepSubjects = 1
	StepTopics   = 2
)

const (
	// DefaultSetupTopicCount is the topic count a new setup subject starts with.
	DefaultSetupTopicCount = 14
	// FallbackTopicCount is used when a setup subject ends with no count.
	FallbackTopicCount = 10
)

// SetupSubject is a subject being edited during onboarding. Topics is
// non-empty only for subjects that already existed before the edit.
type SetupSubject struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	IconType   IconType `json:"iconType"`
	ExamDate   Date     `json:"examDate"`
	TopicCount int      `json:"topicCount"`
	Topics     []Topic  `json:"topics"`
}

// OnboardingDraft is the in-progress setup. It is persisted separately from
// the plan so an interrupted setup survives a restart.
type OnboardingDraft struct {
	Step     int            `json:"step"`
	Subjects []SetupSubject `json:"subjects"`
}

// SetupPatch carries the fields UpdateSetupSubject should change; nil
// fields are left alone.
type SetupPatch struct {
	Name       *string
	IconType   *IconType
	ExamDate   *Date
	TopicCount *int
}

func blankSetupSubject(id, name string) SetupSubject {
	return SetupSubject{
		ID:         id,
		Name:       name,
		IconType:   IconBook,
		TopicCount: DefaultSetupTopicCount,
		Topics:     []Topic{},
	}
}

// NewDraft starts a setup. With no existing subjects it opens on the welcome
// step with one "Subject 1"; otherwise it opens on the subject step with the
// existing subjects loaded for editing.
func NewDraft(existing []Subject, ids IDGenerator) OnboardingDraft {
	if len(existing) == 0 {
		return OnboardingDraft{
			Step:     StepWelcome,
			Subjects: []SetupSubject{blankSetupSubject(ids.NewID(), "Subject 1")},
		}
	}
	subjects := make([]SetupSubject, len(existing))
	for i, s := range existing {
		subjects[i] = SetupSubject{
			ID:         s.ID,
			Name:       s.Name,
			IconType:   s.IconType,
			ExamDate:   s.ExamDate,
			TopicCount: len(s.Topics),
			Topics:     append([]Topic(nil), s.Topics...),
		}
	}
	return OnboardingDraft{Step: StepSubjects, Subjects: subjects}
}

func (d OnboardingDraft) clone() OnboardingDraft {
	out := d
	out.Subjects = make([]SetupSubject, len(d.Subjects))
	for i, s := range d.Subjects {
		s.Topics = append([]Topic(nil), s.Topics...)
		out.Subjects[i] = s
	}
	return out
}

// AddSubject appends an unnamed subject.
func (d OnboardingDraft) AddSubject(ids IDGenerator) OnboardingDraft {
	out := d.clone()
	out.Subjects = append(out.Subjects, blankSetupSubject(ids.NewID(), ""))
	return out
}

// BulkAddSubjects appends one subject per parsed line of text, each with an
// icon from pick. A draft holding only a single unnamed subject is replaced.
func (d OnboardingDraft) BulkAddSubjects(text string, ids IDGenerator, pick func() IconType) (OnboardingDraft, int) {
	names := BulkParseLines(text)
	if len(names) == 0 {
		return d, 0
	}
	added := make([]SetupSubject, len(names))
	for i, name := range names {
		s := blankSetupSubject(ids.NewID(), name)
		if pick != nil {
			s.IconType = pick()
		}
		added[i] = s
	}
	out := d.clone()
	if len(out.Subjects) == 1 && strings.TrimSpace(out.Subjects[0].Name) == "" {
		out.Subjects = added
	} else {
		out.Subjects = append(out.Subjects, added...)
	}
	return out, len(added)
}

// RemoveSubject drops a setup subject. The last remaining subject stays.
func (d OnboardingDraft) RemoveSubject(id string) (OnboardingDraft, bool) {
	if len(d.Subjects) <= 1 {
		return d, false
	}
	out := d.clone()
	kept := out.Subjects[:0]
	for _, s := range out.Subjects {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(d.Subjects) {
		return d, false
	}
	out.Subjects = kept
	return out, true
}

// UpdateSubject applies patch to the setup subject with the given id. Topic
// counts are floored at 1.
func (d OnboardingDraft) UpdateSubject(id string, patch SetupPatch) (OnboardingDraft, bool) {
	for i := range d.Subjects {
		if d.Subjects[i].ID != id {
			continue
		}
		out := d.clone()
		s := &out.Subjects[i]
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.IconType != nil {
			s.IconType = *patch.IconType
		}
		if patch.ExamDate != nil {
			s.ExamDate = *patch.ExamDate
		}
		if patch.TopicCount != nil {
			s.TopicCount = max(1, *patch.TopicCount)
		}
		return out, true
	}
	return d, false
}

// ClearAll discards every setup subject, leaving one blank entry.
func (d OnboardingDraft) ClearAll(ids IDGenerator, c Confirmation) (OnboardingDraft, error) {
	if err := c.Require(Confirmed); err != nil {
		return d, err
	}
	out := d.clone()
	out.Subjects = []SetupSubject{blankSetupSubject(ids.NewID(), "")}
	return out, nil
}

// Next advances one step. Leaving the subject step requires every subject
// to be named.
func (d OnboardingDraft) Next() (OnboardingDraft, error) {
	if d.Step >= StepTopics {
		return d, fmt.Errorf("already on the last setup step")
	}
	if d.Step == StepSubjects {
		if err := d.Validate(); err != nil {
			return d, err
		}
	}
	out := d.clone()
	out.Step++
	return out, nil
}

// Validate checks that every setup subject is named.
func (d OnboardingDraft) Validate() error {
	if len(d.Subjects) == 0 {
		return fmt.Errorf("add at least one subject")
	}
	for i, s := range d.Subjects {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("subject %d needs a name", i+1)
		}
	}
	return nil
}

// Back returns to the previous step.
func (d OnboardingDraft) Back() OnboardingDraft {
	if d.Step <= StepWelcome {
		return d
	}
	out := d.clone()
	out.Step--
	return out
}

// Finish turns the draft into final subjects. Subjects that already had
// topics are reconciled to their count; new ones get generated topics.
// Colors follow the subject order.
func (d OnboardingDraft) Finish(ids IDGenerator) []Subject {
	subjects := make([]Subject, len(d.Subjects))
	for i, s := range d.Subjects {
		count := s.TopicCount
		if count <= 0 {
			count = FallbackTopicCount
		}
		var topics []Topic
		if len(s.Topics) > 0 {
			topics = ReconcileTopicCount(s.Topics, count, ids)
		} else {
			topics = GenerateTopics(count, ids)
		}
		icon := s.IconType
		if icon == "" {
			icon = IconBook
		}
		subjects[i] = Subject{
			ID:       s.ID,
			Name:     strings.TrimSpace(s.Name),
			IconType: icon,
			Color:    i % PaletteSize,
			ExamDate: s.ExamDate,
			Topics:   topics,
		}
	}
	return subjects
}
