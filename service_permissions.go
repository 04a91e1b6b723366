package roleauth

import (
	"context"

	"github.com/fernandezvara/dbkit"
	"github.com/uptrace/bun"
)

// ============================================================================
// PERMISSION OPERATIONS
// ============================================================================

// CreatePermission creates a permission with a globally unique name.
//
// Example:
//
//	perm, err := service.CreatePermission(ctx, roleauth.PermissionInput{Name: "files.upload"})
//	if roleauth.IsConflict(err) {
//	    // name already taken
//	}
func (s *Service) CreatePermission(ctx context.Context, input PermissionInput) (*Permission, error) {
	if err := s.validateInput(EntityAuth, input); err != nil {
		return nil, s.reject(EntityAuth, "create", err)
	}

	perm := &Permission{Name: input.Name, Nickname: input.Nickname}
	err := s.run(ctx, EntityAuth, "create", func(db dbkit.IDB) error {
		taken, err := nameTaken[Permission](ctx, db, input.Name, 0)
		if err != nil {
			return dbkit.WithErr1(err, "CheckPermissionName").Err()
		}
		if taken {
			return NewError(ErrConflict, "权限名已存在").WithEntity(EntityAuth)
		}

		err = s.transaction(ctx, db, EntityAuth, func(tx dbkit.IDB) error {
			_, err := tx.NewInsert().Model(perm).Returning("id").Exec(ctx)
			return dbkit.WithErr1(err, "CreatePermission").Err()
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityAuth, "create", 0, "权限名已存在", "新增权限失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return perm, nil
}

// ListPermissions returns one page of permissions matching the filter.
func (s *Service) ListPermissions(ctx context.Context, filter PermissionFilter) (*PageResult[Permission], error) {
	var result *PageResult[Permission]
	err := s.run(ctx, EntityAuth, "list", func(db dbkit.IDB) error {
		var err error
		result, err = listPage[Permission](ctx, db, "ListPermissions", filter.Pagination, func(q *bun.SelectQuery) *bun.SelectQuery {
			q = whereContains(q, "name", filter.Name)
			q = whereContains(q, "nickname", filter.Nickname)
			return q
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetPermission returns the permission with the given id.
func (s *Service) GetPermission(ctx context.Context, id int64) (*Permission, error) {
	perm := new(Permission)
	err := s.run(ctx, EntityAuth, "get", func(db dbkit.IDB) error {
		return getByID(ctx, db, "GetPermission", perm, id, "权限不存在", EntityAuth)
	})
	if err != nil {
		return nil, err
	}
	return perm, nil
}

// UpdatePermission applies a partial update. An empty Name or Nickname keeps
// the stored value. Renaming re-checks uniqueness against other permissions.
//
// Example:
//
//	perm, err := service.UpdatePermission(ctx, id, roleauth.PermissionUpdate{Nickname: "Editors"})
func (s *Service) UpdatePermission(ctx context.Context, id int64, update PermissionUpdate) (*Permission, error) {
	if err := s.validateInput(EntityAuth, update); err != nil {
		return nil, s.reject(EntityAuth, "update", err)
	}

	perm := new(Permission)
	err := s.run(ctx, EntityAuth, "update", func(db dbkit.IDB) error {
		if err := getByID(ctx, db, "GetPermission", perm, id, "权限不存在", EntityAuth); err != nil {
			return err
		}

		if update.Name != "" && update.Name != perm.Name {
			taken, err := nameTaken[Permission](ctx, db, update.Name, id)
			if err != nil {
				return dbkit.WithErr1(err, "CheckPermissionName").Err()
			}
			if taken {
				return NewError(ErrConflict, "权限名已存在").WithEntity(EntityAuth).WithID(id)
			}
			perm.Name = update.Name
		}
		if update.Nickname != "" {
			perm.Nickname = update.Nickname
		}

		err := s.transaction(ctx, db, EntityAuth, func(tx dbkit.IDB) error {
			result, err := tx.NewUpdate().Model(perm).Column("name", "nickname").WherePK().Exec(ctx)
			if err := dbkit.WithErr(result, err, "UpdatePermission").Err(); err != nil {
				return err
			}
			return requireAffected(result, "权限不存在", EntityAuth, id)
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityAuth, "update", id, "权限名已存在", "修改权限失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return perm, nil
}

// DeletePermission removes a permission and returns its last stored state.
// Links that reference it are left untouched.
func (s *Service) DeletePermission(ctx context.Context, id int64) (*Permission, error) {
	perm := new(Permission)
	err := s.run(ctx, EntityAuth, "delete", func(db dbkit.IDB) error {
		if err := getByID(ctx, db, "GetPermission", perm, id, "权限不存在", EntityAuth); err != nil {
			return err
		}

		err := s.transaction(ctx, db, EntityAuth, func(tx dbkit.IDB) error {
			result, err := tx.NewDelete().Model(perm).WherePK().Exec(ctx)
			if err := dbkit.WithErr(result, err, "DeletePermission").Err(); err != nil {
				return err
			}
			return requireAffected(result, "权限不存在", EntityAuth, id)
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityAuth, "delete", id, "", "删除权限失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return perm, nil
}
