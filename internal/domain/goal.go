package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultGoalID and DefaultGoalTitle describe the goal seeded into an empty store.
const (
	DefaultGoalID    = "default"
	DefaultGoalTitle = "ExamSprint"
)

// LegacyGoalTitles are titles written by older releases; they are rewritten
// to DefaultGoalTitle once, at load time.
var LegacyGoalTitles = []string{"Exam Sprint", "My Exam Sprint"}

// Goal is an independent tracker instance. Each goal owns its own plan
// namespace in the key-value store.
type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      GoalType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultGoal returns the goal seeded on first use.
func DefaultGoal(now time.Time) Goal {
	return Goal{
		ID:        DefaultGoalID,
		Title:     DefaultGoalTitle,
		Type:      GoalExamSprint,
		CreatedAt: now.UTC(),
	}
}

// NewGoal builds a goal with a fresh id. The title must be non-blank.
func NewGoal(title string, typ GoalType, ids IDGenerator, now time.Time) (Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Goal{}, fmt.Errorf("goal title is required")
	}
	if typ == "" {
		typ = GoalExamSprint
	}
	if !ValidGoalTypes[typ] {
		return Goal{}, fmt.Errorf("invalid goal type %q (expected %s or %s)", typ, GoalExamSprint, GoalDSA)
	}
	return Goal{
		ID:        "goal_" + ids.NewID(),
		Title:     title,
		Type:      typ,
		CreatedAt: now.UTC(),
	}, nil
}

// HasTracker reports whether the goal type has a working tracker.
// DSA roadmaps are listed but not tracked yet.
func (g Goal) HasTracker() bool {
	return g.Type == GoalExamSprint
}

// MigrateLegacyTitles rewrites legacy goal titles and reports whether any
// goal changed.
func MigrateLegacyTitles(goals []Goal) ([]Goal, bool) {
	out := make([]Goal, len(goals))
	changed := false
	for i, g := range goals {
		for _, legacy := range LegacyGoalTitles {
			if g.Title == legacy {
				g.Title = DefaultGoalTitle
				changed = true
				break
			}
		}
		out[i] = g
	}
	return out, changed
}

// FindGoal returns the goal with the given id.
func FindGoal(goals []Goal, id string) (Goal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}
