package roleauth

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// RoleManager defines the role operations. Roles have no update or delete.
type RoleManager interface {
	CreateRole(ctx context.Context, input RoleInput) (*Role, error)
	ListRoles(ctx context.Context, filter RoleFilter) (*PageResult[Role], error)
	GetRole(ctx context.Context, id int64) (*Role, error)
}

// PermissionManager defines the permission operations.
type PermissionManager interface {
	CreatePermission(ctx context.Context, input PermissionInput) (*Permission, error)
	ListPermissions(ctx context.Context, filter PermissionFilter) (*PageResult[Permission], error)
	GetPermission(ctx context.Context, id int64) (*Permission, error)
	UpdatePermission(ctx context.Context, id int64, update PermissionUpdate) (*Permission, error)
	DeletePermission(ctx context.Context, id int64) (*Permission, error)
}

// RoleUserManager defines the role-user link operations.
type RoleUserManager interface {
	CreateRoleUser(ctx context.Context, input RoleUserInput) (*RoleUser, error)
	ListRoleUsers(ctx context.Context, filter RoleUserFilter) (*PageResult[RoleUser], error)
	GetRoleUser(ctx context.Context, id int64) (*RoleUser, error)
	UpdateRoleUser(ctx context.Context, id int64, input RoleUserInput) (*RoleUser, error)
	DeleteRoleUser(ctx context.Context, id int64) (*RoleUser, error)
}

// RoleAuthManager defines the role-permission link operations.
type RoleAuthManager interface {
	CreateRoleAuth(ctx context.Context, input RoleAuthInput) (*RoleAuth, error)
	ListRoleAuths(ctx context.Context, filter RoleAuthFilter) (*PageResult[RoleAuth], error)
	GetRoleAuth(ctx context.Context, id int64) (*RoleAuth, error)
	UpdateRoleAuth(ctx context.Context, id int64, input RoleAuthInput) (*RoleAuth, error)
	DeleteRoleAuth(ctx context.Context, id int64) (*RoleAuth, error)
}

// HealthMonitor defines the health monitoring interface
type HealthMonitor interface {
	Health(ctx context.Context) dbkit.HealthStatus
	IsHealthy(ctx context.Context) bool
	Ping(ctx context.Context) error
	PoolStats(ctx context.Context) dbkit.PoolStats
}

var (
	_ RoleManager       = (*Service)(nil)
	_ PermissionManager = (*Service)(nil)
	_ RoleUserManager   = (*Service)(nil)
	_ RoleAuthManager   = (*Service)(nil)
	_ HealthMonitor     = (*Service)(nil)
)
