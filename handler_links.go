package roleauth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ============================================================================
// ROLE-USER LINKS
// ============================================================================

// MountRoleUserRoutes registers the role-user link endpoints relative to r.
// MountRoutes places them under /role_user.
func (h *Handler) MountRoleUserRoutes(r chi.Router) {
	r.Post("/", h.createRoleUser)
	r.Get("/", h.listRoleUsers)
	r.Get("/{id}/", h.getRoleUser)
	r.Put("/{id}/", h.updateRoleUser)
	r.Delete("/{id}/", h.deleteRoleUser)
}

func (h *Handler) createRoleUser(w http.ResponseWriter, r *http.Request) {
	var input RoleUserInput
	if err := decodeBody(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	link, err := h.managers.RoleUsers.CreateRoleUser(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "新增角色与用户关系成功",
		"id":      link.ID,
	})
}

func (h *Handler) listRoleUsers(w http.ResponseWriter, r *http.Request) {
	page, ok := queryPage(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidPage)
		return
	}
	roleID, ok1 := queryID(r, "role_id")
	userID, ok2 := queryID(r, "user_id")
	if !ok1 || !ok2 {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	q := r.URL.Query()
	result, err := h.managers.RoleUsers.ListRoleUsers(r.Context(), RoleUserFilter{
		Pagination: page,
		RoleID:     roleID,
		RoleName:   q.Get("role_name"),
		UserID:     userID,
		UserName:   q.Get("user_name"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getRoleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	link, err := h.managers.RoleUsers.GetRoleUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) updateRoleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input RoleUserInput
	if err := decodeBody(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	link, err := h.managers.RoleUsers.UpdateRoleUser(r.Context(), id, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) deleteRoleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	link, err := h.managers.RoleUsers.DeleteRoleUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// ============================================================================
// ROLE-PERMISSION LINKS
// ============================================================================

// MountRoleAuthRoutes registers the role-permission link endpoints relative to r.
// MountRoutes places them under /role_auth.
func (h *Handler) MountRoleAuthRoutes(r chi.Router) {
	r.Post("/", h.createRoleAuth)
	r.Get("/", h.listRoleAuths)
	r.Get("/{id}/", h.getRoleAuth)
	r.Put("/{id}/", h.updateRoleAuth)
	r.Delete("/{id}/", h.deleteRoleAuth)
}

func (h *Handler) createRoleAuth(w http.ResponseWriter, r *http.Request) {
	var input RoleAuthInput
	if err := decodeBody(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	link, err := h.managers.RoleAuths.CreateRoleAuth(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "新增角色与权限关系成功",
		"id":      link.ID,
	})
}

func (h *Handler) listRoleAuths(w http.ResponseWriter, r *http.Request) {
	page, ok := queryPage(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidPage)
		return
	}
	roleID, ok1 := queryID(r, "role_id")
	authID, ok2 := queryID(r, "auth_id")
	if !ok1 || !ok2 {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	q := r.URL.Query()
	result, err := h.managers.RoleAuths.ListRoleAuths(r.Context(), RoleAuthFilter{
		Pagination: page,
		RoleID:     roleID,
		RoleName:   q.Get("role_name"),
		AuthID:     authID,
		AuthName:   q.Get("auth_name"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getRoleAuth(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	link, err := h.managers.RoleAuths.GetRoleAuth(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) updateRoleAuth(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input RoleAuthInput
	if err := decodeBody(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	link, err := h.managers.RoleAuths.UpdateRoleAuth(r.Context(), id, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *Handler) deleteRoleAuth(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	link, err := h.managers.RoleAuths.DeleteRoleAuth(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}
