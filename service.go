package roleauth

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fernandezvara/dbkit"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

// Service manages roles, permissions and the links between them.
// It holds no per-call state: every operation borrows one handle from the
// SessionProvider and releases it before returning.
//
// Error Handling:
// Operations return *Error values wrapping ErrValidation, ErrConflict,
// ErrNotFound or ErrPersistence. Anything else is an unexpected store or
// session failure and is returned as-is.
//
//	perm, err := service.CreatePermission(ctx, roleauth.PermissionInput{Name: "editor"})
//	if roleauth.IsConflict(err) {
//	    // name already taken
//	}
type Service struct {
	sessions SessionProvider
	logger   *log.Logger
	validate *validator.Validate
	monitor  *commitMonitor
	registry prometheus.Registerer
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics registers operation and commit collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Service) {
		s.registry = reg
	}
}

// NewService creates a new roleauth service.
//
// Example:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	service := roleauth.NewService(roleauth.StaticSession(db),
//	    roleauth.WithLogger(logger),
//	)
func NewService(sessions SessionProvider, opts ...Option) *Service {
	s := &Service{
		sessions: sessions,
		logger:   defaultLogger(),
		validate: newValidator(),
	}

	for _, opt := range opts {
		opt(s)
	}

	var m *metrics
	if s.registry != nil {
		var err error
		m, err = newMetrics(s.registry)
		if err != nil {
			s.logger.Warn("metrics disabled", "err", err)
		}
	}
	s.monitor = newCommitMonitor(m)

	return s
}

func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "roleauth",
		ReportTimestamp: true,
	})
}

// newValidator reports field errors by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks struct tags and turns failures into ErrValidation.
func (s *Service) validateInput(entity string, input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewError(ErrValidation, err.Error()).WithEntity(entity)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
		}
	}
	return NewError(ErrValidation, strings.Join(msgs, "; ")).WithEntity(entity)
}

// run acquires a handle, executes fn and always releases the handle.
func (s *Service) run(ctx context.Context, entity, op string, fn func(db dbkit.IDB) error) (err error) {
	defer func() {
		s.monitor.recordOperation(entity, op, err)
	}()

	db, release, err := s.sessions.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("roleauth: acquire session: %w", err)
	}
	defer release()

	return fn(db)
}

// CommitMetrics returns commit statistics gathered since the last reset.
func (s *Service) CommitMetrics() CommitMetrics {
	return s.monitor.getMetrics()
}

// ResetCommitMetrics resets the in-process commit statistics.
func (s *Service) ResetCommitMetrics() {
	s.monitor.reset()
}
