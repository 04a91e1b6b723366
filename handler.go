package roleauth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

// DefaultPrefix is the path all routes are mounted under by Router.
const DefaultPrefix = "/fastzdp_roleauth"

// Response messages that are not tied to a store error.
const (
	msgInternal    = "服务器内部错误"
	msgInvalidID   = "无效的ID"
	msgInvalidBody = "无效的请求体"
	msgInvalidPage = "page和size必须是大于0的整数"
)

// Managers groups the operation sets served over HTTP. A nil manager leaves
// its routes unmounted.
type Managers struct {
	Roles       RoleManager
	Permissions PermissionManager
	RoleUsers   RoleUserManager
	RoleAuths   RoleAuthManager
}

// ServiceManagers serves every entity from one Service.
func ServiceManagers(s *Service) Managers {
	return Managers{
		Roles:       s,
		Permissions: s,
		RoleUsers:   s,
		RoleAuths:   s,
	}
}

// Handler exposes the managers as JSON endpoints on a chi router.
type Handler struct {
	managers Managers
	prefix   string
	logger   *log.Logger
}

// HandlerOption configures the Handler.
type HandlerOption func(*Handler)

// WithPrefix sets the prefix used by Router when it is called with "".
func WithPrefix(prefix string) HandlerOption {
	return func(h *Handler) {
		h.prefix = prefix
	}
}

// WithErrorLogger sets the logger for unexpected (500) failures.
func WithErrorLogger(logger *log.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates the HTTP layer over the given managers.
//
// Example:
//
//	h := roleauth.NewHandler(roleauth.ServiceManagers(service))
//	r.Route(roleauth.DefaultPrefix, h.MountRoutes)
func NewHandler(managers Managers, opts ...HandlerOption) *Handler {
	h := &Handler{
		managers: managers,
		prefix:   DefaultPrefix,
		logger:   defaultLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Prefix returns the configured mount prefix.
func (h *Handler) Prefix() string {
	return h.prefix
}

// MountRoutes registers every entity on r:
//
//	/             roles
//	/auth/        permissions
//	/role_user/   role-user links
//	/role_auth/   role-permission links
func (h *Handler) MountRoutes(r chi.Router) {
	if h.managers.Permissions != nil {
		r.Route("/auth", h.MountPermissionRoutes)
	}
	if h.managers.RoleUsers != nil {
		r.Route("/role_user", h.MountRoleUserRoutes)
	}
	if h.managers.RoleAuths != nil {
		r.Route("/role_auth", h.MountRoleAuthRoutes)
	}
	if h.managers.Roles != nil {
		h.MountRoleRoutes(r)
	}
}

// Router returns a standalone router with RequestContext applied and all
// routes mounted under prefix. An empty prefix uses the configured one.
func (h *Handler) Router(prefix string) http.Handler {
	if prefix == "" {
		prefix = h.prefix
	}
	r := chi.NewRouter()
	r.Use(RequestContext())
	r.Route(prefix, h.MountRoutes)
	return r
}

// ============================================================================
// REQUEST / RESPONSE HELPERS
// ============================================================================

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// writeError maps err onto a status code and a {"detail": ...} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", GetRequestID(r.Context()),
			"err", err,
		)
		writeDetail(w, status, msgInternal)
		return
	}
	writeDetail(w, status, Message(err, http.StatusText(status)))
}

// decodeBody reads a single JSON object into dst.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// queryPage reads page and size, defaulting to 1 and 20.
func queryPage(r *http.Request) (Pagination, bool) {
	p := DefaultPagination()
	q := r.URL.Query()
	for key, dst := range map[string]*int{"page": &p.Page, "size": &p.Size} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, false
		}
		*dst = n
	}
	return p, true
}

// queryID reads an optional id filter; absent means zero (no filter).
func queryID(r *http.Request, key string) (int64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
