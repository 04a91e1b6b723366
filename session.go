package roleauth

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// ReleaseFunc returns a data-access handle to its owner. It is always called
// exactly once per successful Acquire.
type ReleaseFunc func()

// SessionProvider hands out one data-access handle per call.
// The host application owns connection setup; the service only borrows handles.
type SessionProvider interface {
	Acquire(ctx context.Context) (dbkit.IDB, ReleaseFunc, error)
}

// SessionFunc adapts a function to SessionProvider.
//
// Example:
//
//	sessions := roleauth.SessionFunc(func(ctx context.Context) (dbkit.IDB, roleauth.ReleaseFunc, error) {
//	    conn := pool.Get()
//	    return conn, func() { pool.Put(conn) }, nil
//	})
type SessionFunc func(ctx context.Context) (dbkit.IDB, ReleaseFunc, error)

// Acquire implements SessionProvider.
func (f SessionFunc) Acquire(ctx context.Context) (dbkit.IDB, ReleaseFunc, error) {
	return f(ctx)
}

// StaticSession returns a provider that shares one pooled handle across calls.
// Release is a no-op; the host closes db on shutdown.
//
// Example:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	service := roleauth.NewService(roleauth.StaticSession(db))
func StaticSession(db dbkit.IDB) SessionProvider {
	return SessionFunc(func(context.Context) (dbkit.IDB, ReleaseFunc, error) {
		return db, func() {}, nil
	})
}
