package roleauth

import (
	"context"

	"github.com/fernandezvara/dbkit"
	"github.com/uptrace/bun"
)

// ============================================================================
// ROLE-USER LINK OPERATIONS
// ============================================================================

// CreateRoleUser links a role to a user. The role and user are not looked up;
// the names given are stored as a snapshot.
//
// Example:
//
//	link, err := service.CreateRoleUser(ctx, roleauth.RoleUserInput{
//	    RoleID: 1, RoleName: "editor", UserID: 42, UserName: "alice",
//	})
func (s *Service) CreateRoleUser(ctx context.Context, input RoleUserInput) (*RoleUser, error) {
	if err := s.validateInput(EntityRoleUser, input); err != nil {
		return nil, s.reject(EntityRoleUser, "create", err)
	}

	link := &RoleUser{
		RoleID:   input.RoleID,
		RoleName: input.RoleName,
		UserID:   input.UserID,
		UserName: input.UserName,
	}
	err := s.run(ctx, EntityRoleUser, "create", func(db dbkit.IDB) error {
		err := s.transaction(ctx, db, EntityRoleUser, func(tx dbkit.IDB) error {
			_, err := tx.NewInsert().Model(link).Returning("id").Exec(ctx)
			return dbkit.WithErr1(err, "CreateRoleUser").Err()
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityRoleUser, "create", 0, "", "新增角色与用户关系失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// ListRoleUsers returns one page of role-user links matching the filter.
//
// Example:
//
//	page, err := service.ListRoleUsers(ctx, roleauth.NewRoleUserFilter().WithUser(42, ""))
func (s *Service) ListRoleUsers(ctx context.Context, filter RoleUserFilter) (*PageResult[RoleUser], error) {
	var result *PageResult[RoleUser]
	err := s.run(ctx, EntityRoleUser, "list", func(db dbkit.IDB) error {
		var err error
		result, err = listPage[RoleUser](ctx, db, "ListRoleUsers", filter.Pagination, func(q *bun.SelectQuery) *bun.SelectQuery {
			q = whereEquals(q, "role_id", filter.RoleID)
			q = whereEquals(q, "user_id", filter.UserID)
			q = whereContains(q, "role_name", filter.RoleName)
			q = whereContains(q, "user_name", filter.UserName)
			return q
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetRoleUser returns the role-user link with the given id.
func (s *Service) GetRoleUser(ctx context.Context, id int64) (*RoleUser, error) {
	link := new(RoleUser)
	err := s.run(ctx, EntityRoleUser, "get", func(db dbkit.IDB) error {
		return getByID(ctx, db, "GetRoleUser", link, id, "角色与用户关系不存在", EntityRoleUser)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateRoleUser overwrites all four fields of an existing link.
func (s *Service) UpdateRoleUser(ctx context.Context, id int64, input RoleUserInput) (*RoleUser, error) {
	if err := s.validateInput(EntityRoleUser, input); err != nil {
		return nil, s.reject(EntityRoleUser, "update", err)
	}

	link := new(RoleUser)
	err := s.run(ctx, EntityRoleUser, "update", func(db dbkit.IDB) error {
		if err := getByID(ctx, db, "GetRoleUser", link, id, "角色与用户关系不存在", EntityRoleUser); err != nil {
			return err
		}

		link.RoleID = input.RoleID
		link.RoleName = input.RoleName
		link.UserID = input.UserID
		link.UserName = input.UserName

		err := s.transaction(ctx, db, EntityRoleUser, func(tx dbkit.IDB) error {
			result, err := tx.NewUpdate().Model(link).WherePK().Exec(ctx)
			if err := dbkit.WithErr(result, err, "UpdateRoleUser").Err(); err != nil {
				return err
			}
			return requireAffected(result, "角色与用户关系不存在", EntityRoleUser, id)
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityRoleUser, "update", id, "", "修改角色与用户关系失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteRoleUser removes a link and returns its last stored state.
func (s *Service) DeleteRoleUser(ctx context.Context, id int64) (*RoleUser, error) {
	link := new(RoleUser)
	err := s.run(ctx, EntityRoleUser, "delete", func(db dbkit.IDB) error {
		if err := getByID(ctx, db, "GetRoleUser", link, id, "角色与用户关系不存在", EntityRoleUser); err != nil {
			return err
		}

		err := s.transaction(ctx, db, EntityRoleUser, func(tx dbkit.IDB) error {
			result, err := tx.NewDelete().Model(link).WherePK().Exec(ctx)
			if err := dbkit.WithErr(result, err, "DeleteRoleUser").Err(); err != nil {
				return err
			}
			return requireAffected(result, "角色与用户关系不存在", EntityRoleUser, id)
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityRoleUser, "delete", id, "", "删除角色与用户关系失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}
