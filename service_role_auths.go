package roleauth

import (
	"context"

	"github.com/fernandezvara/dbkit"
	"github.com/uptrace/bun"
)

// ============================================================================
// ROLE-PERMISSION LINK OPERATIONS
// ============================================================================

// CreateRoleAuth links a role to a permission. Neither side is looked up;
// the names given are stored as a snapshot.
//
// Example:
//
//	link, err := service.CreateRoleAuth(ctx, roleauth.RoleAuthInput{
//	    RoleID: 1, RoleName: "editor", AuthID: 7, AuthName: "files.upload",
//	})
func (s *Service) CreateRoleAuth(ctx context.Context, input RoleAuthInput) (*RoleAuth, error) {
	if err := s.validateInput(EntityRoleAuth, input); err != nil {
		return nil, s.reject(EntityRoleAuth, "create", err)
	}

	link := &RoleAuth{
		RoleID:   input.RoleID,
		RoleName: input.RoleName,
		AuthID:   input.AuthID,
		AuthName: input.AuthName,
	}
	err := s.run(ctx, EntityRoleAuth, "create", func(db dbkit.IDB) error {
		err := s.transaction(ctx, db, EntityRoleAuth, func(tx dbkit.IDB) error {
			_, err := tx.NewInsert().Model(link).Returning("id").Exec(ctx)
			return dbkit.WithErr1(err, "CreateRoleAuth").Err()
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityRoleAuth, "create", 0, "", "新增角色与权限关系失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// ListRoleAuths returns one page of role-permission links matching the filter.
func (s *Service) ListRoleAuths(ctx context.Context, filter RoleAuthFilter) (*PageResult[RoleAuth], error) {
	var result *PageResult[RoleAuth]
	err := s.run(ctx, EntityRoleAuth, "list", func(db dbkit.IDB) error {
		var err error
		result, err = listPage[RoleAuth](ctx, db, "ListRoleAuths", filter.Pagination, func(q *bun.SelectQuery) *bun.SelectQuery {
			q = whereEquals(q, "role_id", filter.RoleID)
			q = whereEquals(q, "auth_id", filter.AuthID)
			q = whereContains(q, "role_name", filter.RoleName)
			q = whereContains(q, "auth_name", filter.AuthName)
			return q
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetRoleAuth returns the role-permission link with the given id.
func (s *Service) GetRoleAuth(ctx context.Context, id int64) (*RoleAuth, error) {
	link := new(RoleAuth)
	err := s.run(ctx, EntityRoleAuth, "get", func(db dbkit.IDB) error {
		return getByID(ctx, db, "GetRoleAuth", link, id, "角色与权限关系不存在", EntityRoleAuth)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateRoleAuth overwrites all four fields of an existing link.
func (s *Service) UpdateRoleAuth(ctx context.Context, id int64, input RoleAuthInput) (*RoleAuth, error) {
	if err := s.validateInput(EntityRoleAuth, input); err != nil {
		return nil, s.reject(EntityRoleAuth, "update", err)
	}

	link := new(RoleAuth)
	err := s.run(ctx, EntityRoleAuth, "update", func(db dbkit.IDB) error {
		if err := getByID(ctx, db, "GetRoleAuth", link, id, "角色与权限关系不存在", EntityRoleAuth); err != nil {
			return err
		}

		link.RoleID = input.RoleID
		link.RoleName = input.RoleName
		link.AuthID = input.AuthID
		link.AuthName = input.AuthName

		err := s.transaction(ctx, db, EntityRoleAuth, func(tx dbkit.IDB) error {
			result, err := tx.NewUpdate().Model(link).WherePK().Exec(ctx)
			if err := dbkit.WithErr(result, err, "UpdateRoleAuth").Err(); err != nil {
				return err
			}
			return requireAffected(result, "角色与权限关系不存在", EntityRoleAuth, id)
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityRoleAuth, "update", id, "", "修改角色与权限关系失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteRoleAuth removes a link and returns its last stored state.
// Deleting the referenced role or permission never removes links, and
// deleting a link never touches them either.
func (s *Service) DeleteRoleAuth(ctx context.Context, id int64) (*RoleAuth, error) {
	link := new(RoleAuth)
	err := s.run(ctx, EntityRoleAuth, "delete", func(db dbkit.IDB) error {
		if err := getByID(ctx, db, "GetRoleAuth", link, id, "角色与权限关系不存在", EntityRoleAuth); err != nil {
			return err
		}

		err := s.transaction(ctx, db, EntityRoleAuth, func(tx dbkit.IDB) error {
			result, err := tx.NewDelete().Model(link).WherePK().Exec(ctx)
			if err := dbkit.WithErr(result, err, "DeleteRoleAuth").Err(); err != nil {
				return err
			}
			return requireAffected(result, "角色与权限关系不存在", EntityRoleAuth, id)
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityRoleAuth, "delete", id, "", "删除角色与权限关系失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}
