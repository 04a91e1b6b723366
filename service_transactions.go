package roleauth

import (
	"context"
	"time"

	"github.com/fernandezvara/dbkit"
)

// transaction runs fn as a single commit on db.
// A *dbkit.DBKit starts a new transaction and a *dbkit.Tx nests a savepoint;
// in both cases an error from fn rolls back before it is returned. Other
// handles run fn directly and are expected to be transactional themselves.
func (s *Service) transaction(ctx context.Context, db dbkit.IDB, entity string, fn func(tx dbkit.IDB) error) error {
	start := time.Now()
	var err error

	switch h := db.(type) {
	case *dbkit.Tx:
		err = h.Transaction(ctx, func(tx *dbkit.Tx) error {
			return fn(tx)
		})
	case *dbkit.DBKit:
		err = h.Transaction(ctx, func(tx *dbkit.Tx) error {
			return fn(tx)
		})
	default:
		err = fn(db)
	}

	s.monitor.recordCommit(entity, time.Since(start), err == nil)
	return err
}
