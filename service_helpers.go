package roleauth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fernandezvara/dbkit"
	"github.com/uptrace/bun"
)

// ============================================================================
// INTERNAL HELPERS
// ============================================================================

// listPage counts the rows matching where, then scans the requested page.
func listPage[T any](ctx context.Context, db dbkit.IDB, op string, page Pagination, where func(*bun.SelectQuery) *bun.SelectQuery) (*PageResult[T], error) {
	page = page.normalized()
	rows := make([]T, 0, page.Size)

	count, err := where(db.NewSelect().Model(&rows)).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		ScanAndCount(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, dbkit.WithErr1(err, op).Err()
	}

	return &PageResult[T]{Count: count, Data: rows}, nil
}

// getByID loads the row with the given primary key into model.
func getByID(ctx context.Context, db dbkit.IDB, op string, model any, id int64, notFound string, entity string) error {
	err := dbkit.WithErr1(db.NewSelect().Model(model).Where("id = ?", id).Limit(1).Scan(ctx), op).Err()
	if err != nil {
		if dbkit.IsNotFound(err) || errors.Is(err, sql.ErrNoRows) {
			return NewError(ErrNotFound, notFound).WithEntity(entity).WithID(id)
		}
		return err
	}
	return nil
}

// nameTaken reports whether a row other than exceptID already uses name.
// Pass exceptID 0 to check every row.
func nameTaken[T any](ctx context.Context, db dbkit.IDB, name string, exceptID int64) (bool, error) {
	return dbkit.Exists[T](ctx, db, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("name = ?", name)
		if exceptID > 0 {
			q = q.Where("id <> ?", exceptID)
		}
		return q
	})
}

// whereContains adds a case-sensitive substring filter when value is set.
func whereContains(q *bun.SelectQuery, column, value string) *bun.SelectQuery {
	if value == "" {
		return q
	}
	return q.Where("? LIKE ?", bun.Ident(column), containsPattern(value))
}

// whereEquals adds an exact id filter when value is set.
func whereEquals(q *bun.SelectQuery, column string, value int64) *bun.SelectQuery {
	if value == 0 {
		return q
	}
	return q.Where("? = ?", bun.Ident(column), value)
}

// requireAffected turns a write that touched no rows into ErrNotFound.
// The row existed when it was read, so this only happens when a concurrent
// delete wins the race.
func requireAffected(result sql.Result, notFound, entity string, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return NewError(ErrNotFound, notFound).WithEntity(entity).WithID(id)
	}
	return nil
}

// writeFailed classifies an error from a rolled-back write.
// Unique violations become conflicts; everything else is logged once and
// reported as a persistence failure carrying the caller-facing message.
func (s *Service) writeFailed(ctx context.Context, err error, entity, op string, id int64, conflictMsg, failMsg string) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if conflictMsg != "" && dbkit.IsDuplicate(err) {
		return NewError(ErrConflict, conflictMsg).WithEntity(entity).WithID(id)
	}

	s.logger.Error("write rolled back",
		"entity", entity,
		"op", op,
		"id", id,
		"request_id", GetRequestID(ctx),
		"err", err,
	)
	return NewError(ErrPersistence, failMsg).WithEntity(entity).WithID(id)
}

// reject records an operation refused before any handle was acquired.
func (s *Service) reject(entity, op string, err error) error {
	s.monitor.recordOperation(entity, op, err)
	return err
}
