package roleauth

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/fernandezvara/dbkit"
	"github.com/stretchr/testify/require"
)

// getTestDatabaseURL returns the database URL used by store tests.
func getTestDatabaseURL() string {
	return os.Getenv("TEST_DATABASE_URL")
}

// openTestDatabase connects to TEST_DATABASE_URL, or returns nil when it is
// unset or unreachable.
func openTestDatabase() *dbkit.DBKit {
	dbURL := getTestDatabaseURL()
	if dbURL == "" {
		return nil
	}

	db, err := dbkit.New(dbkit.Config{URL: dbURL})
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil
	}
	return db
}

// testStore bundles a migrated, empty database with a service over it.
type testStore struct {
	db      *dbkit.DBKit
	service *Service
	logs    *bytes.Buffer
	ctx     context.Context
}

// requireDatabase skips the test if the database is not available.
// Otherwise it migrates, truncates the roleauth tables and returns a store.
func requireDatabase(t *testing.T) *testStore {
	t.Helper()

	db := openTestDatabase()
	if db == nil {
		t.Log("Database not available - set TEST_DATABASE_URL to run store tests")
		t.Skip("database not available")
		return nil
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	_, err := db.Migrate(ctx, Migrations())
	require.NoError(t, err, "failed to run migrations")

	_, err = db.NewRaw("TRUNCATE fastzdp_roles, fastzdp_auths, fastzdp_role_users, fastzdp_role_auths RESTART IDENTITY").Exec(ctx)
	require.NoError(t, err, "failed to truncate tables")

	var logs bytes.Buffer
	return &testStore{
		db:      db,
		service: NewService(StaticSession(db), WithLogger(quietLogger(&logs))),
		logs:    &logs,
		ctx:     ctx,
	}
}

func (s *testStore) createRole(t *testing.T, name, nickname string) *Role {
	t.Helper()
	role, err := s.service.CreateRole(s.ctx, RoleInput{Name: name, Nickname: nickname})
	require.NoError(t, err)
	return role
}

func (s *testStore) createPermission(t *testing.T, name, nickname string) *Permission {
	t.Helper()
	perm, err := s.service.CreatePermission(s.ctx, PermissionInput{Name: name, Nickname: nickname})
	require.NoError(t, err)
	return perm
}
