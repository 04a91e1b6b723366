package roleauth

import "strings"

// Default pagination values used when a caller leaves them unset.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
)

// Pagination selects one page of a listing. Page is 1-indexed.
type Pagination struct {
	Page int
	Size int
}

// DefaultPagination returns page 1 with 20 rows per page.
func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPageNumber, Size: DefaultPageSize}
}

// normalized replaces non-positive values with the defaults.
func (p Pagination) normalized() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPageNumber
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset returns the number of rows skipped before this page.
func (p Pagination) Offset() int {
	n := p.normalized()
	return (n.Page - 1) * n.Size
}

// RoleFilter provides options for filtering role listings.
// String fields are case-sensitive substring matches; empty means no filter.
type RoleFilter struct {
	Pagination

	Name     string
	Nickname string
}

// NewRoleFilter creates a RoleFilter with default pagination.
func NewRoleFilter() RoleFilter {
	return RoleFilter{Pagination: DefaultPagination()}
}

// WithPage sets the page number and size.
func (f RoleFilter) WithPage(page, size int) RoleFilter {
	f.Pagination = Pagination{Page: page, Size: size}
	return f
}

// WithName sets the name substring filter.
func (f RoleFilter) WithName(name string) RoleFilter {
	f.Name = name
	return f
}

// WithNickname sets the nickname substring filter.
func (f RoleFilter) WithNickname(nickname string) RoleFilter {
	f.Nickname = nickname
	return f
}

// PermissionFilter provides options for filtering permission listings.
type PermissionFilter struct {
	Pagination

	Name     string
	Nickname string
}

// NewPermissionFilter creates a PermissionFilter with default pagination.
func NewPermissionFilter() PermissionFilter {
	return PermissionFilter{Pagination: DefaultPagination()}
}

// WithPage sets the page number and size.
func (f PermissionFilter) WithPage(page, size int) PermissionFilter {
	f.Pagination = Pagination{Page: page, Size: size}
	return f
}

// WithName sets the name substring filter.
func (f PermissionFilter) WithName(name string) PermissionFilter {
	f.Name = name
	return f
}

// WithNickname sets the nickname substring filter.
func (f PermissionFilter) WithNickname(nickname string) PermissionFilter {
	f.Nickname = nickname
	return f
}

// RoleUserFilter provides options for filtering role-user links.
// Id fields are exact matches; zero means no filter.
type RoleUserFilter struct {
	Pagination

	RoleID   int64
	RoleName string
	UserID   int64
	UserName string
}

// NewRoleUserFilter creates a RoleUserFilter with default pagination.
func NewRoleUserFilter() RoleUserFilter {
	return RoleUserFilter{Pagination: DefaultPagination()}
}

// WithPage sets the page number and size.
func (f RoleUserFilter) WithPage(page, size int) RoleUserFilter {
	f.Pagination = Pagination{Page: page, Size: size}
	return f
}

// WithRole sets the role id and role name filters.
func (f RoleUserFilter) WithRole(roleID int64, roleName string) RoleUserFilter {
	f.RoleID = roleID
	f.RoleName = roleName
	return f
}

// WithUser sets the user id and user name filters.
func (f RoleUserFilter) WithUser(userID int64, userName string) RoleUserFilter {
	f.UserID = userID
	f.UserName = userName
	return f
}

// RoleAuthFilter provides options for filtering role-permission links.
type RoleAuthFilter struct {
	Pagination

	RoleID   int64
	RoleName string
	AuthID   int64
	AuthName string
}

// NewRoleAuthFilter creates a RoleAuthFilter with default pagination.
func NewRoleAuthFilter() RoleAuthFilter {
	return RoleAuthFilter{Pagination: DefaultPagination()}
}

// WithPage sets the page number and size.
func (f RoleAuthFilter) WithPage(page, size int) RoleAuthFilter {
	f.Pagination = Pagination{Page: page, Size: size}
	return f
}

// WithRole sets the role id and role name filters.
func (f RoleAuthFilter) WithRole(roleID int64, roleName string) RoleAuthFilter {
	f.RoleID = roleID
	f.RoleName = roleName
	return f
}

// WithAuth sets the permission id and permission name filters.
func (f RoleAuthFilter) WithAuth(authID int64, authName string) RoleAuthFilter {
	f.AuthID = authID
	f.AuthName = authName
	return f
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere in the column.
// Wildcard characters inside s match literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
