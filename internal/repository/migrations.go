package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/examsprint/internal/db"
	"github.com/alexanderramin/examsprint/internal/domain"
)

// DataMigrations lists the stored-value rewrites applied at open time.
func DataMigrations() []db.DataMigration {
	return []db.DataMigration{
		{ID: "0001_legacy_goal_titles", Apply: migrateLegacyGoalTitles},
	}
}

func migrateLegacyGoalTitles(ctx context.Context, tx db.DBTX) error {
	kv := NewSQLiteKVStore(tx)
	var goals []domain.Goal
	found, err := kv.Get(ctx, KeyGoals, &goals)
	if err != nil || !found {
		return err
	}
	migrated, changed := domain.MigrateLegacyTitles(goals)
	if !changed {
		return nil
	}
	return kv.Set(ctx, KeyGoals, migrated)
}

// RunDataMigrations applies pending DataMigrations.
func RunDataMigrations(ctx context.Context, uow db.UnitOfWork) ([]string, error) {
	return db.RunDataMigrations(ctx, uow, DataMigrations(), time.Now())
}
