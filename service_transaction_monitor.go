package roleauth

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CommitMetrics provides commit performance and failure statistics.
type CommitMetrics struct {
	TotalCommits      int64         `json:"total_commits"`
	SuccessfulCommits int64         `json:"successful_commits"`
	FailedCommits     int64         `json:"failed_commits"`
	AverageDuration   time.Duration `json:"average_duration"`
	MaxDuration       time.Duration `json:"max_duration"`
	MinDuration       time.Duration `json:"min_duration"`
	LastReset         time.Time     `json:"last_reset"`
}

// Outcome labels for roleauth_operations_total.
const (
	outcomeOK          = "ok"
	outcomeValidation  = "validation"
	outcomeConflict    = "conflict"
	outcomeNotFound    = "not_found"
	outcomePersistence = "persistence"
	outcomeError       = "error"
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case IsValidation(err):
		return outcomeValidation
	case IsConflict(err):
		return outcomeConflict
	case IsNotFound(err):
		return outcomeNotFound
	case IsPersistence(err):
		return outcomePersistence
	default:
		return outcomeError
	}
}

type metrics struct {
	operations     *prometheus.CounterVec
	commitDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roleauth_operations_total",
			Help: "Role and permission operations by entity, operation and outcome",
		},
		[]string{"entity", "operation", "outcome"},
	)
	commitDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roleauth_commit_duration_seconds",
			Help:    "Duration of roleauth write transactions in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity"},
	)

	if err := reg.Register(operations); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		operations = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(commitDuration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		commitDuration = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &metrics{operations: operations, commitDuration: commitDuration}, nil
}

// commitMonitor holds the commit statistics; metrics may be nil.
type commitMonitor struct {
	mu            sync.Mutex
	totalCount    int64
	successCount  int64
	failureCount  int64
	totalDuration time.Duration
	maxDuration   time.Duration
	minDuration   time.Duration
	lastReset     time.Time

	metrics *metrics
}

func newCommitMonitor(m *metrics) *commitMonitor {
	return &commitMonitor{
		minDuration: time.Hour,
		lastReset:   time.Now(),
		metrics:     m,
	}
}

// recordCommit records one write transaction with its duration and result.
func (cm *commitMonitor) recordCommit(entity string, duration time.Duration, success bool) {
	cm.mu.Lock()
	cm.totalCount++
	cm.totalDuration += duration
	if success {
		cm.successCount++
	} else {
		cm.failureCount++
	}
	if duration > cm.maxDuration {
		cm.maxDuration = duration
	}
	if duration < cm.minDuration {
		cm.minDuration = duration
	}
	cm.mu.Unlock()

	if cm.metrics != nil {
		cm.metrics.commitDuration.WithLabelValues(entity).Observe(duration.Seconds())
	}
}

// recordOperation counts one service call by its outcome.
func (cm *commitMonitor) recordOperation(entity, op string, err error) {
	if cm.metrics == nil {
		return
	}
	cm.metrics.operations.WithLabelValues(entity, op, outcomeOf(err)).Inc()
}

func (cm *commitMonitor) getMetrics() CommitMetrics {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	var avg time.Duration
	if cm.totalCount > 0 {
		avg = cm.totalDuration / time.Duration(cm.totalCount)
	}

	return CommitMetrics{
		TotalCommits:      cm.totalCount,
		SuccessfulCommits: cm.successCount,
		FailedCommits:     cm.failureCount,
		AverageDuration:   avg,
		MaxDuration:       cm.maxDuration,
		MinDuration:       cm.minDuration,
		LastReset:         cm.lastReset,
	}
}

func (cm *commitMonitor) reset() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.totalCount = 0
	cm.successCount = 0
	cm.failureCount = 0
	cm.totalDuration = 0
	cm.maxDuration = 0
	cm.minDuration = time.Hour
	cm.lastReset = time.Now()
}
