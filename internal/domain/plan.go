package domain

import (
	"encoding/json"
	"slices"
)

type Topic struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

// UnmarshalJSON accepts numeric ids, as written by older backups.
func (t *Topic) UnmarshalJSON(data []byte) error {
	type topicFields Topic
	aux := struct {
		ID looseID `json:"id"`
		*topicFields
	}{topicFields: (*topicFields)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.ID = string(aux.ID)
	return nil
}

// Subject is a syllabus unit. Topic order is significant: it drives display
// and which topics are suggested next.
type Subject struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	IconType IconType `json:"iconType"`
	Color    int      `json:"color"`
	ExamDate Date     `json:"examDate"`
	Topics   []Topic  `json:"topics"`
}

// UnmarshalJSON accepts numeric ids, as written by older backups.
func (s *Subject) UnmarshalJSON(data []byte) error {
	type subjectFields Subject
	aux := struct {
		ID looseID `json:"id"`
		*subjectFields
	}{subjectFields: (*subjectFields)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = string(aux.ID)
	return nil
}

// Remaining counts incomplete topics.
func (s Subject) Remaining() int {
	n := 0
	for _, t := range s.Topics {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount counts completed topics.
func (s Subject) CompletedCount() int {
	return len(s.Topics) - s.Remaining()
}

// ProgressPct is the rounded completion percentage; 0 for an empty subject.
func (s Subject) ProgressPct() int {
	return percent(s.CompletedCount(), len(s.Topics))
}

// NextTopics returns up to n incomplete topics in topic order.
func (s Subject) NextTopics(n int) []Topic {
	var out []Topic
	for _, t := range s.Topics {
		if len(out) >= n {
			break
		}
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func (s Subject) clone() Subject {
	s.Topics = slices.Clone(s.Topics)
	return s
}

// Stats accumulates pomodoro totals.
type Stats struct {
	FocusMinutes int `json:"focusMinutes"`
	BreakMinutes int `json:"breakMinutes"`
	Sessions     int `json:"sessions"`
}

// Record adds a finished session. Only focus sessions bump the session count.
func (s Stats) Record(kind SessionKind, minutes int) Stats {
	if minutes < 0 {
		minutes = 0
	}
	if kind == SessionFocus {
		s.FocusMinutes += minutes
		s.Sessions++
	} else {
		s.BreakMinutes += minutes
	}
	return s
}

// Plan is the complete per-goal state. It is persisted as a whole and every
// mutation returns a new Plan, leaving the receiver untouched.
type Plan struct {
	GoalID             string
	OnboardingComplete bool
	Subjects           []Subject
	GlobalTargetDate   Date
	Scratchpad         string
	Stats              Stats
}

// DefaultGlobalTarget is the global finish date a fresh or reset plan gets.
func DefaultGlobalTarget(today Date) Date {
	return today.AddYears(1)
}

// NewPlan returns the empty plan for goalID.
func NewPlan(goalID string, today Date) Plan {
	return Plan{
		GoalID:           goalID,
		Subjects:         []Subject{},
		GlobalTargetDate: DefaultGlobalTarget(today),
	}
}

// Clone returns a deep copy of p.
func (p Plan) Clone() Plan {
	out := p
	out.Subjects = make([]Subject, len(p.Subjects))
	for i, s := range p.Subjects {
		out.Subjects[i] = s.clone()
	}
	return out
}

// Subject returns the subject with the given id.
func (p Plan) Subject(id string) (Subject, bool) {
	for _, s := range p.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// TopicCounts returns completed and total topics across all subjects.
func (p Plan) TopicCounts() (completed, total int) {
	for _, s := range p.Subjects {
		completed += s.CompletedCount()
		total += len(s.Topics)
	}
	return completed, total
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(float64(part)/float64(whole)*100 + 0.5)
}
