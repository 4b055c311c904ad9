package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/examsprint/internal/db"
	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/repository"
	"github.com/alexanderramin/examsprint/internal/testutil"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func testRuntime() Runtime {
	return Runtime{
		Now:      func() time.Time { return testNow },
		IDs:      &domain.CounterIDs{Prefix: "id"},
		PickIcon: func() domain.IconType { return domain.IconCode },
	}
}

type testRepos struct {
	kv     *repository.SQLiteKVStore
	plans  repository.PlanRepo
	goals  repository.GoalRepo
	drafts repository.DraftRepo
	uow    db.UnitOfWork
}

// helper to set up all repos from a test DB
func setupRepos(t *testing.T) testRepos {
	t.Helper()
	return setupReposOn(testutil.NewTestDB(t))
}

func setupReposOn(database *sql.DB) testRepos {
	kv := repository.NewSQLiteKVStore(database)
	return testRepos{
		kv:     kv,
		plans:  repository.NewKVPlanRepo(kv),
		goals:  repository.NewKVGoalRepo(kv),
		drafts: repository.NewKVDraftRepo(kv),
		uow:    testutil.NewTestUoW(database),
	}
}

func seedPlan(t *testing.T, r testRepos, p domain.Plan) {
	t.Helper()
	require.NoError(t, r.plans.Save(context.Background(), p))
}

func loadPlan(t *testing.T, r testRepos, goalID string) domain.Plan {
	t.Helper()
	p, err := r.plans.Load(context.Background(), goalID, domain.DateOf(testNow))
	require.NoError(t, err)
	return p
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
