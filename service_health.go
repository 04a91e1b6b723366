package roleauth

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Health reports the state of the store behind the session provider.
// A *dbkit.DBKit handle gets dbkit's full check; other handles are pinged.
func (s *Service) Health(ctx context.Context) dbkit.HealthStatus {
	db, release, err := s.sessions.Acquire(ctx)
	if err != nil {
		return dbkit.HealthStatus{Healthy: false, Error: err.Error()}
	}
	defer release()

	if kit, ok := db.(*dbkit.DBKit); ok {
		return kit.Health(ctx)
	}

	if err := ping(ctx, db); err != nil {
		return dbkit.HealthStatus{Healthy: false, Error: err.Error()}
	}
	return dbkit.HealthStatus{Healthy: true}
}

// IsHealthy performs a simple health check of the store.
func (s *Service) IsHealthy(ctx context.Context) bool {
	return s.Ping(ctx) == nil
}

// Ping performs a basic connectivity test to the store.
func (s *Service) Ping(ctx context.Context) error {
	db, release, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return ping(ctx, db)
}

func ping(ctx context.Context, db dbkit.IDB) error {
	var one int
	return dbkit.WithErr1(db.NewRaw("SELECT 1").Scan(ctx, &one), "Ping").Err()
}

// PoolStats returns connection pool statistics for monitoring.
// Handles that are not a *dbkit.DBKit report zero values.
func (s *Service) PoolStats(ctx context.Context) dbkit.PoolStats {
	db, release, err := s.sessions.Acquire(ctx)
	if err != nil {
		return dbkit.PoolStats{}
	}
	defer release()

	if kit, ok := db.(*dbkit.DBKit); ok {
		return dbkit.PoolStatsFromSQL(kit.Stats())
	}
	return dbkit.PoolStats{}
}
