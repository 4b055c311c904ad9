package domain

// Mutations on Plan. Each returns the updated plan and whether the target
// ids were found; an unknown id leaves the plan as it was. Callers persist
// the result.

// withSubject applies fn to a copy of the subject with the given id.
func (p Plan) withSubject(subjectID string, fn func(*Subject) bool) (Plan, bool) {
	for i := range p.Subjects {
		if p.Subjects[i].ID != subjectID {
			continue
		}
		out := p.Clone()
		if !fn(&out.Subjects[i]) {
			return p, false
		}
		return out, true
	}
	return p, false
}

// withTopic applies fn to a copy of the given topic.
func (p Plan) withTopic(subjectID, topicID string, fn func(*Topic)) (Plan, bool) {
	return p.withSubject(subjectID, func(s *Subject) bool {
		for j := range s.Topics {
			if s.Topics[j].ID == topicID {
				fn(&s.Topics[j])
				return true
			}
		}
		return false
	})
}

func (p Plan) ToggleTopic(subjectID, topicID string) (Plan, bool) {
	return p.withTopic(subjectID, topicID, func(t *Topic) { t.Completed = !t.Completed })
}

func (p Plan) UpdateTopicNotes(subjectID, topicID, notes string) (Plan, bool) {
	return p.withTopic(subjectID, topicID, func(t *Topic) { t.Notes = notes })
}

func (p Plan) UpdateTopicTitle(subjectID, topicID, title string) (Plan, bool) {
	return p.withTopic(subjectID, topicID, func(t *Topic) { t.Title = title })
}

// UpdateExamDate sets or, with the zero Date, clears a subject's exam date.
func (p Plan) UpdateExamDate(subjectID string, date Date) (Plan, bool) {
	return p.withSubject(subjectID, func(s *Subject) bool {
		s.ExamDate = date
		return true
	})
}

func (p Plan) UpdateSubjectName(subjectID, name string) (Plan, bool) {
	return p.withSubject(subjectID, func(s *Subject) bool {
		s.Name = name
		return true
	})
}

func (p Plan) UpdateSubjectIcon(subjectID string, icon IconType) (Plan, bool) {
	return p.withSubject(subjectID, func(s *Subject) bool {
		s.IconType = icon
		return true
	})
}

// AddTopic appends "Topic N+1", N being the current topic count.
func (p Plan) AddTopic(subjectID string, ids IDGenerator) (Plan, bool) {
	return p.withSubject(subjectID, func(s *Subject) bool {
		s.Topics = append(s.Topics, NewTopic(ids.NewID(), GeneratedTopicTitle(len(s.Topics)+1)))
		return true
	})
}

func (p Plan) DeleteTopic(subjectID, topicID string) (Plan, bool) {
	return p.withSubject(subjectID, func(s *Subject) bool {
		kept := make([]Topic, 0, len(s.Topics))
		for _, t := range s.Topics {
			if t.ID != topicID {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(s.Topics) {
			return false
		}
		s.Topics = kept
		return true
	})
}

// ReplaceTopics swaps a subject's topics wholesale, discarding completion and
// notes. It is irreversible and refuses to run without confirmation.
func (p Plan) ReplaceTopics(subjectID string, topics []Topic, c Confirmation) (Plan, bool, error) {
	if err := c.Require(Confirmed); err != nil {
		return p, false, err
	}
	out, ok := p.withSubject(subjectID, func(s *Subject) bool {
		s.Topics = append(make([]Topic, 0, len(topics)), topics...)
		return true
	})
	return out, ok, nil
}

// SetGlobalTargetDate sets or clears the shared finish date.
func (p Plan) SetGlobalTargetDate(date Date) Plan {
	out := p.Clone()
	out.GlobalTargetDate = date
	return out
}

func (p Plan) SetScratchpad(text string) Plan {
	out := p.Clone()
	out.Scratchpad = text
	return out
}

// RecordSession adds a finished pomodoro session to the stats.
func (p Plan) RecordSession(kind SessionKind, minutes int) Plan {
	out := p.Clone()
	out.Stats = out.Stats.Record(kind, minutes)
	return out
}

// CompleteOnboarding installs the subjects produced by setup and leaves the
// onboarding state.
func (p Plan) CompleteOnboarding(subjects []Subject) Plan {
	out := p.Clone()
	out.Subjects = append(make([]Subject, 0, len(subjects)), subjects...)
	out.OnboardingComplete = true
	return out
}

// EditSubjects returns to onboarding without touching subjects; the draft is
// seeded from them.
func (p Plan) EditSubjects() Plan {
	out := p.Clone()
	out.OnboardingComplete = false
	return out
}

// Reset wipes the plan back to its initial state. It needs a double
// confirmation.
func (p Plan) Reset(today Date, c Confirmation) (Plan, error) {
	if err := c.Require(DoubleConfirmed); err != nil {
		return p, err
	}
	return NewPlan(p.GoalID, today), nil
}
