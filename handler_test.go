package roleauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memManagers is an in-memory implementation of every manager interface.
// It runs inputs through the real validator so handler tests see the same
// validation errors as the service.
type memManagers struct {
	mu        sync.Mutex
	svc       *Service
	roles     []Role
	perms     []Permission
	roleUsers []RoleUser
	roleAuths []RoleAuth
	nextID    int64
	failNext  error
}

func newMemManagers() *memManagers {
	return &memManagers{svc: NewService(&countingSessions{})}
}

func (m *memManagers) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memManagers) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func pageOf[T any](rows []T, p Pagination, keep func(T) bool) *PageResult[T] {
	p = p.normalized()
	matched := make([]T, 0)
	for _, r := range rows {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	data := make([]T, 0)
	for i := p.Offset(); i < len(matched) && len(data) < p.Size; i++ {
		data = append(data, matched[i])
	}
	return &PageResult[T]{Count: len(matched), Data: data}
}

func contains(s, sub string) bool { return sub == "" || strings.Contains(s, sub) }

func idMatch(v, want int64) bool { return want == 0 || v == want }

func (m *memManagers) CreateRole(ctx context.Context, input RoleInput) (*Role, error) {
	if err := m.svc.validateInput(EntityRole, input); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	for _, r := range m.roles {
		if r.Name == input.Name {
			return nil, NewError(ErrConflict, "角色名已存在").WithEntity(EntityRole)
		}
	}
	role := Role{ID: m.id(), Name: input.Name, Nickname: input.Nickname}
	m.roles = append(m.roles, role)
	return &role, nil
}

func (m *memManagers) ListRoles(ctx context.Context, f RoleFilter) (*PageResult[Role], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pageOf(m.roles, f.Pagination, func(r Role) bool {
		return contains(r.Name, f.Name) && contains(r.Nickname, f.Nickname)
	}), nil
}

func (m *memManagers) GetRole(ctx context.Context, id int64) (*Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	for _, r := range m.roles {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, NewError(ErrNotFound, "角色不存在").WithEntity(EntityRole).WithID(id)
}

func (m *memManagers) CreatePermission(ctx context.Context, input PermissionInput) (*Permission, error) {
	if err := m.svc.validateInput(EntityAuth, input); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.perms {
		if p.Name == input.Name {
			return nil, NewError(ErrConflict, "权限名已存在").WithEntity(EntityAuth)
		}
	}
	perm := Permission{ID: m.id(), Name: input.Name, Nickname: input.Nickname}
	m.perms = append(m.perms, perm)
	return &perm, nil
}

func (m *memManagers) ListPermissions(ctx context.Context, f PermissionFilter) (*PageResult[Permission], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pageOf(m.perms, f.Pagination, func(p Permission) bool {
		return contains(p.Name, f.Name) && contains(p.Nickname, f.Nickname)
	}), nil
}

func (m *memManagers) permIndex(id int64) int {
	for i, p := range m.perms {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *memManagers) GetPermission(ctx context.Context, id int64) (*Permission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.permIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "权限不存在").WithEntity(EntityAuth).WithID(id)
	}
	p := m.perms[i]
	return &p, nil
}

func (m *memManagers) UpdatePermission(ctx context.Context, id int64, u PermissionUpdate) (*Permission, error) {
	if err := m.svc.validateInput(EntityAuth, u); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.permIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "权限不存在").WithEntity(EntityAuth).WithID(id)
	}
	if u.Name != "" && u.Name != m.perms[i].Name {
		for _, p := range m.perms {
			if p.Name == u.Name {
				return nil, NewError(ErrConflict, "权限名已存在").WithEntity(EntityAuth).WithID(id)
			}
		}
		m.perms[i].Name = u.Name
	}
	if u.Nickname != "" {
		m.perms[i].Nickname = u.Nickname
	}
	p := m.perms[i]
	return &p, nil
}

func (m *memManagers) DeletePermission(ctx context.Context, id int64) (*Permission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.permIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "权限不存在").WithEntity(EntityAuth).WithID(id)
	}
	p := m.perms[i]
	m.perms = append(m.perms[:i], m.perms[i+1:]...)
	return &p, nil
}

func (m *memManagers) CreateRoleUser(ctx context.Context, in RoleUserInput) (*RoleUser, error) {
	if err := m.svc.validateInput(EntityRoleUser, in); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}
	link := RoleUser{ID: m.id(), RoleID: in.RoleID, RoleName: in.RoleName, UserID: in.UserID, UserName: in.UserName}
	m.roleUsers = append(m.roleUsers, link)
	return &link, nil
}

func (m *memManagers) ListRoleUsers(ctx context.Context, f RoleUserFilter) (*PageResult[RoleUser], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pageOf(m.roleUsers, f.Pagination, func(l RoleUser) bool {
		return idMatch(l.RoleID, f.RoleID) && idMatch(l.UserID, f.UserID) &&
			contains(l.RoleName, f.RoleName) && contains(l.UserName, f.UserName)
	}), nil
}

func (m *memManagers) roleUserIndex(id int64) int {
	for i, l := range m.roleUsers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (m *memManagers) GetRoleUser(ctx context.Context, id int64) (*RoleUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.roleUserIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "角色与用户关系不存在").WithEntity(EntityRoleUser).WithID(id)
	}
	l := m.roleUsers[i]
	return &l, nil
}

func (m *memManagers) UpdateRoleUser(ctx context.Context, id int64, in RoleUserInput) (*RoleUser, error) {
	if err := m.svc.validateInput(EntityRoleUser, in); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.roleUserIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "角色与用户关系不存在").WithEntity(EntityRoleUser).WithID(id)
	}
	m.roleUsers[i] = RoleUser{ID: id, RoleID: in.RoleID, RoleName: in.RoleName, UserID: in.UserID, UserName: in.UserName}
	l := m.roleUsers[i]
	return &l, nil
}

func (m *memManagers) DeleteRoleUser(ctx context.Context, id int64) (*RoleUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.roleUserIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "角色与用户关系不存在").WithEntity(EntityRoleUser).WithID(id)
	}
	l := m.roleUsers[i]
	m.roleUsers = append(m.roleUsers[:i], m.roleUsers[i+1:]...)
	return &l, nil
}

func (m *memManagers) CreateRoleAuth(ctx context.Context, in RoleAuthInput) (*RoleAuth, error) {
	if err := m.svc.validateInput(EntityRoleAuth, in); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	link := RoleAuth{ID: m.id(), RoleID: in.RoleID, RoleName: in.RoleName, AuthID: in.AuthID, AuthName: in.AuthName}
	m.roleAuths = append(m.roleAuths, link)
	return &link, nil
}

func (m *memManagers) ListRoleAuths(ctx context.Context, f RoleAuthFilter) (*PageResult[RoleAuth], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pageOf(m.roleAuths, f.Pagination, func(l RoleAuth) bool {
		return idMatch(l.RoleID, f.RoleID) && idMatch(l.AuthID, f.AuthID) &&
			contains(l.RoleName, f.RoleName) && contains(l.AuthName, f.AuthName)
	}), nil
}

func (m *memManagers) roleAuthIndex(id int64) int {
	for i, l := range m.roleAuths {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (m *memManagers) GetRoleAuth(ctx context.Context, id int64) (*RoleAuth, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.roleAuthIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "角色与权限关系不存在").WithEntity(EntityRoleAuth).WithID(id)
	}
	l := m.roleAuths[i]
	return &l, nil
}

func (m *memManagers) UpdateRoleAuth(ctx context.Context, id int64, in RoleAuthInput) (*RoleAuth, error) {
	if err := m.svc.validateInput(EntityRoleAuth, in); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.roleAuthIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "角色与权限关系不存在").WithEntity(EntityRoleAuth).WithID(id)
	}
	m.roleAuths[i] = RoleAuth{ID: id, RoleID: in.RoleID, RoleName: in.RoleName, AuthID: in.AuthID, AuthName: in.AuthName}
	l := m.roleAuths[i]
	return &l, nil
}

func (m *memManagers) DeleteRoleAuth(ctx context.Context, id int64) (*RoleAuth, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.roleAuthIndex(id)
	if i < 0 {
		return nil, NewError(ErrNotFound, "角色与权限关系不存在").WithEntity(EntityRoleAuth).WithID(id)
	}
	l := m.roleAuths[i]
	m.roleAuths = append(m.roleAuths[:i], m.roleAuths[i+1:]...)
	return &l, nil
}

func (m *memManagers) managers() Managers {
	return Managers{Roles: m, Permissions: m, RoleUsers: m, RoleAuths: m}
}

// ============================================================================
// HTTP HELPERS
// ============================================================================

func newTestRouter(t *testing.T) (*memManagers, http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	mem := newMemManagers()
	h := NewHandler(mem.managers(), WithErrorLogger(quietLogger(&logs)))
	return mem, h.Router(""), &logs
}

func do(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	}
	return w.Code, out
}

const apiPrefix = DefaultPrefix

// ============================================================================
// TESTS
// ============================================================================

// TestHandlerRoleScenario walks through create, duplicate, list and get
func TestHandlerRoleScenario(t *testing.T) {
	_, router, _ := newTestRouter(t)

	code, body := do(t, router, http.MethodPost, apiPrefix+"/", `{"name":"editor","nickname":"Editor"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "新增角色成功", body["message"])
	assert.Equal(t, float64(1), body["role_id"])

	code, body = do(t, router, http.MethodPost, apiPrefix+"/", `{"name":"editor","nickname":"Other"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "角色名已存在", body["detail"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/?name=edit", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "editor", data[0].(map[string]any)["name"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/1/", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Editor", body["nickname"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/99/", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "角色不存在", body["detail"])
}

// TestHandlerRoleHasNoUpdateOrDelete tests that roles expose no write-by-id routes
func TestHandlerRoleHasNoUpdateOrDelete(t *testing.T) {
	_, router, _ := newTestRouter(t)
	do(t, router, http.MethodPost, apiPrefix+"/", `{"name":"editor"}`)

	req := httptest.NewRequest(http.MethodDelete, apiPrefix+"/1/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	req = httptest.NewRequest(http.MethodPut, apiPrefix+"/1/", strings.NewReader(`{"name":"x"}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

// TestHandlerValidation tests body validation and malformed input
func TestHandlerValidation(t *testing.T) {
	_, router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"role name too short", http.MethodPost, apiPrefix + "/", `{"name":"a"}`},
		{"role name missing", http.MethodPost, apiPrefix + "/", `{"nickname":"x"}`},
		{"malformed json", http.MethodPost, apiPrefix + "/", `{"name":`},
		{"trailing data", http.MethodPost, apiPrefix + "/", `{"name":"editor"} {}`},
		{"wrong field type", http.MethodPost, apiPrefix + "/auth/", `{"name":5}`},
		{"empty body", http.MethodPost, apiPrefix + "/auth/", ``},
		{"role user id zero", http.MethodPost, apiPrefix + "/role_user/", `{"role_id":0,"role_name":"editor","user_id":1,"user_name":"bob"}`},
		{"role auth name short", http.MethodPost, apiPrefix + "/role_auth/", `{"role_id":1,"role_name":"ed","auth_id":1,"auth_name":"upload"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.NotEmpty(t, body["detail"])
		})
	}
}

// TestHandlerQueryValidation tests page, size and id parsing
func TestHandlerQueryValidation(t *testing.T) {
	_, router, _ := newTestRouter(t)

	bad := []string{
		apiPrefix + "/?page=0",
		apiPrefix + "/?size=-1",
		apiPrefix + "/?page=abc",
		apiPrefix + "/auth/?size=1.5",
		apiPrefix + "/role_user/?role_id=x",
		apiPrefix + "/role_auth/?auth_id=-2",
		apiPrefix + "/abc/",
		apiPrefix + "/auth/0/",
	}
	for _, path := range bad {
		t.Run(path, func(t *testing.T) {
			code, body := do(t, router, http.MethodGet, path, "")
			assert.Equal(t, http.StatusBadRequest, code)
			assert.NotEmpty(t, body["detail"])
		})
	}

	code, body := do(t, router, http.MethodGet, apiPrefix+"/abc/", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "无效的ID", body["detail"])
}

// TestHandlerPagination tests page windows and totals
func TestHandlerPagination(t *testing.T) {
	_, router, _ := newTestRouter(t)
	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		code, _ := do(t, router, http.MethodPost, apiPrefix+"/auth/", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusOK, code)
	}

	code, body := do(t, router, http.MethodGet, apiPrefix+"/auth/?page=2&size=2", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(5), body["count"])
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "gamma", data[0].(map[string]any)["name"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/auth/?page=9", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(5), body["count"])
	assert.Empty(t, body["data"])
}

// TestHandlerPermissionLifecycle tests create, update, delete of a permission
func TestHandlerPermissionLifecycle(t *testing.T) {
	_, router, _ := newTestRouter(t)

	code, body := do(t, router, http.MethodPost, apiPrefix+"/auth/", `{"name":"files.upload","nickname":"上传"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "新增权限成功", body["message"])
	assert.Equal(t, float64(1), body["auth_id"])

	code, _ = do(t, router, http.MethodPost, apiPrefix+"/auth/", `{"name":"files.read"}`)
	require.Equal(t, http.StatusOK, code)

	// Rename onto an existing name
	code, body = do(t, router, http.MethodPut, apiPrefix+"/auth/1/", `{"name":"files.read"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "权限名已存在", body["detail"])

	// Nickname-only update keeps the name
	code, body = do(t, router, http.MethodPut, apiPrefix+"/auth/1/", `{"nickname":"上传文件"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "files.upload", body["name"])
	assert.Equal(t, "上传文件", body["nickname"])

	code, body = do(t, router, http.MethodPut, apiPrefix+"/auth/42/", `{"nickname":"x"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "权限不存在", body["detail"])

	code, body = do(t, router, http.MethodDelete, apiPrefix+"/auth/1/", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "files.upload", body["name"])

	code, _ = do(t, router, http.MethodGet, apiPrefix+"/auth/1/", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodDelete, apiPrefix+"/auth/1/", "")
	assert.Equal(t, http.StatusNotFound, code)
}

// TestHandlerRoleUserLinks tests link create, filter, update and delete
func TestHandlerRoleUserLinks(t *testing.T) {
	_, router, _ := newTestRouter(t)

	code, body := do(t, router, http.MethodPost, apiPrefix+"/role_user/", `{"role_id":1,"role_name":"editor","user_id":10,"user_name":"alice"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "新增角色与用户关系成功", body["message"])
	assert.Equal(t, float64(1), body["id"])

	code, _ = do(t, router, http.MethodPost, apiPrefix+"/role_user/", `{"role_id":2,"role_name":"viewer","user_id":10,"user_name":"alice"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = do(t, router, http.MethodGet, apiPrefix+"/role_user/?user_id=10", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["count"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/role_user/?user_id=10&role_name=view", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = do(t, router, http.MethodPut, apiPrefix+"/role_user/1/", `{"role_id":3,"role_name":"admin","user_id":11,"user_name":"carol"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "admin", body["role_name"])
	assert.Equal(t, float64(11), body["user_id"])

	code, body = do(t, router, http.MethodDelete, apiPrefix+"/role_user/1/", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "carol", body["user_name"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/role_user/1/", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "角色与用户关系不存在", body["detail"])
}

// TestHandlerRoleAuthLinks tests the role-permission link endpoints
func TestHandlerRoleAuthLinks(t *testing.T) {
	_, router, _ := newTestRouter(t)

	code, body := do(t, router, http.MethodPost, apiPrefix+"/role_auth/", `{"role_id":1,"role_name":"editor","auth_id":7,"auth_name":"files.upload"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "新增角色与权限关系成功", body["message"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/role_auth/?auth_id=7&auth_name=upload", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = do(t, router, http.MethodGet, apiPrefix+"/role_auth/?auth_id=8", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["count"])

	code, body = do(t, router, http.MethodPut, apiPrefix+"/role_auth/1/", `{"role_id":1,"role_name":"editor","auth_id":8,"auth_name":"files.read"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(8), body["auth_id"])

	code, body = do(t, router, http.MethodDelete, apiPrefix+"/role_auth/5/", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "角色与权限关系不存在", body["detail"])
}

// TestHandlerPersistenceFailure tests that rolled-back writes answer 400 with the message
func TestHandlerPersistenceFailure(t *testing.T) {
	mem, router, _ := newTestRouter(t)
	mem.failNext = NewError(ErrPersistence, "新增角色与用户关系失败").WithEntity(EntityRoleUser)

	code, body := do(t, router, http.MethodPost, apiPrefix+"/role_user/", `{"role_id":1,"role_name":"editor","user_id":10,"user_name":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "新增角色与用户关系失败", body["detail"])
}

// TestHandlerUnexpectedError tests that unclassified errors are hidden and logged
func TestHandlerUnexpectedError(t *testing.T) {
	mem, router, logs := newTestRouter(t)
	mem.failNext = errors.New("connection reset by peer")

	req := httptest.NewRequest(http.MethodGet, apiPrefix+"/1/", nil)
	req.Header.Set(RequestIDHeader, "req-500")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"服务器内部错误"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Contains(t, logs.String(), "connection reset by peer")
	assert.Contains(t, logs.String(), "req-500")
}

// TestHandlerContentType tests that every response is JSON
func TestHandlerContentType(t *testing.T) {
	_, router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, apiPrefix+"/", nil))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":0,"data":[]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

// TestHandlerPartialMount tests that nil managers leave their routes unmounted
func TestHandlerPartialMount(t *testing.T) {
	mem := newMemManagers()
	h := NewHandler(Managers{Permissions: mem})

	r := chi.NewRouter()
	r.Route("/perms", h.MountRoutes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/perms/auth/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/perms/role_user/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestHandlerCustomPrefix tests WithPrefix and explicit Router prefixes
func TestHandlerCustomPrefix(t *testing.T) {
	mem := newMemManagers()
	h := NewHandler(mem.managers(), WithPrefix("/rbac"))
	assert.Equal(t, "/rbac", h.Prefix())

	w := httptest.NewRecorder()
	h.Router("").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/auth/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Router("/other").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/other/role_auth/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Router("").ServeHTTP(w, httptest.NewRequest(http.MethodGet, DefaultPrefix+"/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestServiceManagers tests that a Service fills every manager slot
func TestServiceManagers(t *testing.T) {
	service := NewService(&countingSessions{})
	m := ServiceManagers(service)

	assert.Same(t, service, m.Roles)
	assert.Same(t, service, m.Permissions)
	assert.Same(t, service, m.RoleUsers)
	assert.Same(t, service, m.RoleAuths)
}
