package roleauth

import (
	"github.com/uptrace/bun"
)

// Entity names used in errors, logs and metric labels.
const (
	EntityRole     = "role"
	EntityAuth     = "auth"
	EntityRoleUser = "role_user"
	EntityRoleAuth = "role_auth"
)

// Role is a named grouping that permissions and users attach to.
type Role struct {
	bun.BaseModel `bun:"table:fastzdp_roles,alias:r"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Name     string `bun:"name,notnull,unique" json:"name"`
	Nickname string `bun:"nickname,notnull" json:"nickname"`
}

// Permission is a named capability ("auth") that can be associated with roles.
type Permission struct {
	bun.BaseModel `bun:"table:fastzdp_auths,alias:a"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Name     string `bun:"name,notnull,unique" json:"name"`
	Nickname string `bun:"nickname,notnull" json:"nickname"`
}

// RoleUser links a role to an external user.
// Names are copied when the link is written and are not re-synced afterwards.
type RoleUser struct {
	bun.BaseModel `bun:"table:fastzdp_role_users,alias:ru"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	RoleID   int64  `bun:"role_id,notnull" json:"role_id"`
	RoleName string `bun:"role_name,notnull" json:"role_name"`
	UserID   int64  `bun:"user_id,notnull" json:"user_id"`
	UserName string `bun:"user_name,notnull" json:"user_name"`
}

// RoleAuth links a role to a permission, with the same snapshot semantics as RoleUser.
type RoleAuth struct {
	bun.BaseModel `bun:"table:fastzdp_role_auths,alias:ra"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	RoleID   int64  `bun:"role_id,notnull" json:"role_id"`
	RoleName string `bun:"role_name,notnull" json:"role_name"`
	AuthID   int64  `bun:"auth_id,notnull" json:"auth_id"`
	AuthName string `bun:"auth_name,notnull" json:"auth_name"`
}

// PageResult is one page of a filtered listing.
// Count is the total number of rows matching the filters, not the page length.
type PageResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// RoleInput holds the fields accepted when creating a role.
type RoleInput struct {
	Name     string `json:"name" validate:"required,min=2,max=36"`
	Nickname string `json:"nickname"`
}

// PermissionInput holds the fields accepted when creating a permission.
type PermissionInput struct {
	Name     string `json:"name" validate:"required,min=2,max=36"`
	Nickname string `json:"nickname"`
}

// PermissionUpdate is a partial update. Empty fields leave the stored value unchanged.
type PermissionUpdate struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=36"`
	Nickname string `json:"nickname"`
}

// RoleUserInput is used for both create and update; update overwrites every field.
type RoleUserInput struct {
	RoleID   int64  `json:"role_id" validate:"gt=0"`
	RoleName string `json:"role_name" validate:"min=3,max=36"`
	UserID   int64  `json:"user_id" validate:"gt=0"`
	UserName string `json:"user_name" validate:"min=3,max=36"`
}

// RoleAuthInput is used for both create and update; update overwrites every field.
type RoleAuthInput struct {
	RoleID   int64  `json:"role_id" validate:"gt=0"`
	RoleName string `json:"role_name" validate:"min=3,max=36"`
	AuthID   int64  `json:"auth_id" validate:"gt=0"`
	AuthName string `json:"auth_name" validate:"min=3,max=36"`
}
