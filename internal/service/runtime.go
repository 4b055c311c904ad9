package service

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/examsprint/internal/db"
	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/repository"
)

// Runtime carries the collaborators every service shares. Zero fields fall
// back to the wall clock, UUID ids and a no-op logger.
type Runtime struct {
	Now    func() time.Time
	IDs    domain.IDGenerator
	Logger *zap.Logger
	// PickIcon chooses icons for bulk-added setup subjects.
	PickIcon func() domain.IconType
}

func (r Runtime) withDefaults() Runtime {
	if r.Now == nil {
		r.Now = time.Now
	}
	if r.IDs == nil {
		r.IDs = domain.UUIDGenerator{}
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	if r.PickIcon == nil {
		r.PickIcon = func() domain.IconType {
			return domain.IconTypes[rand.IntN(len(domain.IconTypes))]
		}
	}
	return r
}

func (r Runtime) today() domain.Date {
	return domain.DateOf(r.Now())
}

// Transaction-scoped repositories.

func txPlans(tx db.DBTX) repository.PlanRepo {
	return repository.NewKVPlanRepo(repository.NewSQLiteKVStore(tx))
}

func txDrafts(tx db.DBTX) repository.DraftRepo {
	return repository.NewKVDraftRepo(repository.NewSQLiteKVStore(tx))
}
