package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestNewGoal(t *testing.T) {
	g, err := NewGoal("  LeetCode  ", GoalDSA, &CounterIDs{Prefix: "1"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "goal_1-1", g.ID)
	assert.Equal(t, "LeetCode", g.Title)
	assert.Equal(t, GoalDSA, g.Type)
	assert.False(t, g.HasTracker())
	assert.Equal(t, testNow, g.CreatedAt)
}

func TestNewGoal_DefaultsToExamSprint(t *testing.T) {
	g, err := NewGoal("Finals", "", UUIDGenerator{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, GoalExamSprint, g.Type)
	assert.True(t, g.HasTracker())
}

func TestNewGoal_Validation(t *testing.T) {
	_, err := NewGoal("   ", GoalExamSprint, UUIDGenerator{}, testNow)
	assert.Error(t, err)

	_, err = NewGoal("Finals", GoalType("QUIZ"), UUIDGenerator{}, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUIZ")
}

func TestMigrateLegacyTitles(t *testing.T) {
	goals := []Goal{
		{ID: "default", Title: "Exam Sprint"},
		{ID: "a", Title: "My Exam Sprint"},
		{ID: "b", Title: "Physics Finals"},
	}
	out, changed := MigrateLegacyTitles(goals)
	assert.True(t, changed)
	assert.Equal(t, DefaultGoalTitle, out[0].Title)
	assert.Equal(t, DefaultGoalTitle, out[1].Title)
	assert.Equal(t, "Physics Finals", out[2].Title)
	assert.Equal(t, "Exam Sprint", goals[0].Title, "input must not be modified")

	_, changed = MigrateLegacyTitles(out)
	assert.False(t, changed)
}

func TestFindGoal(t *testing.T) {
	goals := []Goal{DefaultGoal(testNow)}
	g, ok := FindGoal(goals, DefaultGoalID)
	require.True(t, ok)
	assert.Equal(t, DefaultGoalTitle, g.Title)

	_, ok = FindGoal(goals, "missing")
	assert.False(t, ok)
}

func TestConfirmation_Require(t *testing.T) {
	assert.ErrorIs(t, Unconfirmed.Require(Confirmed), ErrConfirmationRequired)
	assert.NoError(t, Confirmed.Require(Confirmed))
	assert.ErrorIs(t, Confirmed.Require(DoubleConfirmed), ErrConfirmationRequired)
	assert.NoError(t, DoubleConfirmed.Require(Confirmed))
}

func TestIconType_Valid(t *testing.T) {
	for _, icon := range IconTypes {
		assert.True(t, icon.Valid(), icon)
	}
	assert.False(t, IconType("rocket").Valid())
}

func TestStats_Record(t *testing.T) {
	s := Stats{}.Record(SessionFocus, 25).Record(SessionBreak, 5).Record(SessionFocus, -4)
	assert.Equal(t, Stats{FocusMinutes: 25, BreakMinutes: 5, Sessions: 2}, s)
}
