package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/examsprint/internal/domain"
)

func TestGoalService_ListSeedsDefault(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, testRuntime())

	goals, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, domain.DefaultGoalID, goals[0].ID)
	assert.Equal(t, domain.DefaultGoalTitle, goals[0].Title)
}

func TestGoalService_CreateKeepsDefault(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewGoalService(r.goals, testRuntime(), obs)
	ctx := context.Background()

	g, err := svc.Create(ctx, "  Finals  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Finals", g.Title)
	assert.Equal(t, domain.GoalExamSprint, g.Type)
	assert.Equal(t, "goal_id-1", g.ID)

	goals, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, domain.DefaultGoalID, goals[0].ID)
	assert.Equal(t, g.ID, goals[1].ID)

	event := obs.last()
	assert.Equal(t, "goal.create", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, g.ID, event.Fields["goal_id"])
}

func TestGoalService_CreateRejectsBlankTitle(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewGoalService(r.goals, testRuntime(), obs)

	_, err := svc.Create(context.Background(), "   ", domain.GoalExamSprint)
	require.Error(t, err)
	assert.False(t, obs.last().Success)
}

func TestGoalService_UseAndCurrent(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, testRuntime())
	ctx := context.Background()

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveGoal)

	g, err := svc.Create(ctx, "Finals", domain.GoalExamSprint)
	require.NoError(t, err)
	_, err = svc.Use(ctx, g.ID)
	require.NoError(t, err)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, g.ID, current.ID)

	require.NoError(t, svc.Leave(ctx))
	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveGoal)
}

func TestGoalService_UseUnknown(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, testRuntime())

	_, err := svc.Use(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUnknownGoal)
}

func TestGoalService_Resolve(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, testRuntime())
	ctx := context.Background()

	// Only the seeded goal exists: it is used without selecting it.
	g, err := svc.Resolve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGoalID, g.ID)

	finals, err := svc.Create(ctx, "Finals", domain.GoalExamSprint)
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNoActiveGoal)

	g, err = svc.Resolve(ctx, finals.ID)
	require.NoError(t, err)
	assert.Equal(t, finals.ID, g.ID)

	_, err = svc.Use(ctx, domain.DefaultGoalID)
	require.NoError(t, err)
	g, err = svc.Resolve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGoalID, g.ID)

	_, err = svc.Resolve(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUnknownGoal)
}

func TestGoalService_ResolveRejectsUntrackedType(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, testRuntime())
	ctx := context.Background()

	dsa, err := svc.Create(ctx, "Roadmap", domain.GoalDSA)
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, dsa.ID)
	assert.ErrorIs(t, err, domain.ErrTrackerUnavailable)
}
