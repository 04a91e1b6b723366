package roleauth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountPermissionRoutes registers the permission endpoints relative to r.
// MountRoutes places them under /auth.
func (h *Handler) MountPermissionRoutes(r chi.Router) {
	r.Post("/", h.createPermission)
	r.Get("/", h.listPermissions)
	r.Get("/{id}/", h.getPermission)
	r.Put("/{id}/", h.updatePermission)
	r.Delete("/{id}/", h.deletePermission)
}

func (h *Handler) createPermission(w http.ResponseWriter, r *http.Request) {
	var input PermissionInput
	if err := decodeBody(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	perm, err := h.managers.Permissions.CreatePermission(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "新增权限成功",
		"auth_id": perm.ID,
	})
}

func (h *Handler) listPermissions(w http.ResponseWriter, r *http.Request) {
	page, ok := queryPage(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidPage)
		return
	}

	q := r.URL.Query()
	result, err := h.managers.Permissions.ListPermissions(r.Context(), PermissionFilter{
		Pagination: page,
		Name:       q.Get("name"),
		Nickname:   q.Get("nickname"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getPermission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	perm, err := h.managers.Permissions.GetPermission(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, perm)
}

func (h *Handler) updatePermission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var update PermissionUpdate
	if err := decodeBody(r, &update); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	perm, err := h.managers.Permissions.UpdatePermission(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, perm)
}

func (h *Handler) deletePermission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	perm, err := h.managers.Permissions.DeletePermission(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, perm)
}
