package roleauth

import (
	"context"

	"github.com/fernandezvara/dbkit"
	"github.com/uptrace/bun"
)

// ============================================================================
// ROLE OPERATIONS
// ============================================================================

// Roles expose only create, list and get. There is no update or
// delete for a role.

// CreateRole creates a role with a unique name.
// A unique violation from a concurrent create is reported as ErrConflict.
//
// Example:
//
//	role, err := service.CreateRole(ctx, roleauth.RoleInput{Name: "editor", Nickname: "Editor"})
func (s *Service) CreateRole(ctx context.Context, input RoleInput) (*Role, error) {
	if err := s.validateInput(EntityRole, input); err != nil {
		return nil, s.reject(EntityRole, "create", err)
	}

	role := &Role{Name: input.Name, Nickname: input.Nickname}
	err := s.run(ctx, EntityRole, "create", func(db dbkit.IDB) error {
		taken, err := nameTaken[Role](ctx, db, input.Name, 0)
		if err != nil {
			return dbkit.WithErr1(err, "CheckRoleName").Err()
		}
		if taken {
			return NewError(ErrConflict, "角色名已存在").WithEntity(EntityRole)
		}

		err = s.transaction(ctx, db, EntityRole, func(tx dbkit.IDB) error {
			_, err := tx.NewInsert().Model(role).Returning("id").Exec(ctx)
			return dbkit.WithErr1(err, "CreateRole").Err()
		})
		if err != nil {
			return s.writeFailed(ctx, err, EntityRole, "create", 0, "角色名已存在", "新增角色失败")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// ListRoles returns one page of roles matching the filter.
//
// Example:
//
//	page, err := service.ListRoles(ctx, roleauth.NewRoleFilter().WithName("edit"))
func (s *Service) ListRoles(ctx context.Context, filter RoleFilter) (*PageResult[Role], error) {
	var result *PageResult[Role]
	err := s.run(ctx, EntityRole, "list", func(db dbkit.IDB) error {
		var err error
		result, err = listPage[Role](ctx, db, "ListRoles", filter.Pagination, func(q *bun.SelectQuery) *bun.SelectQuery {
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

// GetRole returns the role with the given id.
func (s *Service) GetRole(ctx context.Context, id int64) (*Role, error) {
	role := new(Role)
	err := s.run(ctx, EntityRole, "get", func(db dbkit.IDB) error {
		return getByID(ctx, db, "GetRole", role, id, "角色不存在", EntityRole)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}
