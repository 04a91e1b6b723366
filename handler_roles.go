package roleauth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoleRoutes registers the role endpoints relative to r.
func (h *Handler) MountRoleRoutes(r chi.Router) {
	r.Post("/", h.createRole)
	r.Get("/", h.listRoles)
	r.Get("/{id}/", h.getRole)
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var input RoleInput
	if err := decodeBody(r, &input); err != nil {
		writeDetail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	role, err := h.managers.Roles.CreateRole(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "新增角色成功",
		"role_id": role.ID,
	})
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	page, ok := queryPage(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidPage)
		return
	}

	q := r.URL.Query()
	result, err := h.managers.Roles.ListRoles(r.Context(), RoleFilter{
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

func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	role, err := h.managers.Roles.GetRole(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}
