package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/examsprint/internal/db"
)

// FailOnNthExecUoW runs transactions like the real unit of work but fails
// the FailOn-th write (1-based) with Err. A plan save issues one write per
// plan field, so FailOn picks the field at which a save breaks off. Reads
// are never counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &writeCounter{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type writeCounter struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (w *writeCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	w.writes++
	if w.writes == w.failOn {
		return nil, w.err
	}
	return w.DBTX.ExecContext(ctx, query, args...)
}
