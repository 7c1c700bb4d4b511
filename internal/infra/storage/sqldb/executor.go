package sqldb

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	"github.com/radcomm/riskcalc/internal/core/domain"
	"github.com/radcomm/riskcalc/internal/metrics"
)

// Handle is one live session to the backing store. *sqlx.DB satisfies it;
// tests substitute fakes. The Executor owns the handle exclusively and
// never mutates it in place: reconnection discards the old handle and
// installs a fresh one.
type Handle interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	Close() error
}

// DialFunc establishes a fresh session using the last-known connection
// parameters.
type DialFunc func(ctx context.Context) (Handle, error)

// QueryRequest is an opaque query descriptor. Immutable once issued.
// MaxAttempts of zero uses the executor's configured budget.
type QueryRequest struct {
	SQL         string
	Args        []any
	MaxAttempts int
}

// Rows is an ordered, driver-independent result set.
type Rows struct {
	Columns []string
	Values  [][]any
}

// RetryConfig bounds the retry loop.
type RetryConfig struct {
	MaxAttempts  int
	BaseDelay    time.Duration
	ProbeTimeout time.Duration
}

// DefaultRetryConfig provides sensible defaults.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:  3,
	BaseDelay:    2 * time.Second,
	ProbeTimeout: 3 * time.Second,
}

// ExhaustedError reports a request that ran out of attempt budget. It
// carries the full diagnostic context: attempt count, last underlying
// error, and the truncated request text.
type ExhaustedError struct {
	Attempts int
	Query    string
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("query failed after %d attempts: %v (query: %s)", e.Attempts, e.Last, e.Query)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// RetryFunc observes each scheduled retry, surfacing progress to the
// caller instead of swallowing it.
type RetryFunc func(attempt int, delay time.Duration, err error)

// Executor runs queries against the backing store, recovering from
// transient faults: probe, execute, classify failure, back off, reconnect,
// retry, bounded by the attempt budget. The executor is safe for
// concurrent use: callers are serialized, and the handle is only ever
// touched by the caller holding the lock.
type Executor struct {
	dial    DialFunc
	cfg     RetryConfig
	sigs    FaultSignatures
	log     *slog.Logger
	onRetry RetryFunc

	mu     sync.Mutex
	handle Handle

	// Injected for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates an executor over a dial function. The first query
// establishes the initial handle.
func NewExecutor(dial DialFunc, cfg RetryConfig, sigs FaultSignatures, log *slog.Logger) *Executor {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultRetryConfig.MaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultRetryConfig.BaseDelay
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultRetryConfig.ProbeTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	e := &Executor{
		dial:  dial,
		cfg:   cfg,
		sigs:  sigs,
		log:   log,
		sleep: sleepCtx,
	}
	e.onRetry = func(attempt int, delay time.Duration, err error) {
		e.log.Warn("retrying query after transient fault",
			"attempt", attempt, "backoff", delay, "error", err)
	}
	return e
}

// NewExecutorFromConfig wires an executor to Open with the given config.
func NewExecutorFromConfig(cfg Config, log *slog.Logger) *Executor {
	dial := func(ctx context.Context) (Handle, error) {
		return Open(ctx, cfg)
	}
	return NewExecutor(dial, RetryConfig{
		MaxAttempts:  cfg.MaxAttempts,
		BaseDelay:    cfg.BaseDelay,
		ProbeTimeout: cfg.ProbeTimeout,
	}, DefaultFaultSignatures(), log)
}

// OnRetry replaces the per-retry notification hook.
func (e *Executor) OnRetry(fn RetryFunc) {
	if fn != nil {
		e.onRetry = fn
	}
}

// IsAlive probes the held handle with a trivial query under a short
// timeout. A failed probe is reported as false, never as an error. A probe
// with no handle held reports false. IsAlive waits for any in-flight
// request to finish before probing.
func (e *Executor) IsAlive(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.probe(ctx, e.handle)
}

func (e *Executor) probe(ctx context.Context, h Handle) bool {
	if h == nil {
		return false
	}
	probeCtx, cancel := context.WithTimeout(ctx, e.cfg.ProbeTimeout)
	defer cancel()

	var one int
	return h.GetContext(probeCtx, &one, "SELECT 1") == nil
}

// Query executes the request and returns its rows in result order.
func (e *Executor) Query(ctx context.Context, req QueryRequest) (*Rows, error) {
	var out *Rows
	err := e.execute(ctx, req, func(h Handle) error {
		rows, err := h.QueryxContext(ctx, req.SQL, req.Args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}
		result := &Rows{Columns: cols}
		for rows.Next() {
			vals, err := rows.SliceScan()
			if err != nil {
				return err
			}
			result.Values = append(result.Values, vals)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		out = result
		return nil
	})
	return out, err
}

// Get executes the request and scans a single row into dest.
func (e *Executor) Get(ctx context.Context, dest any, req QueryRequest) error {
	return e.execute(ctx, req, func(h Handle) error {
		return h.GetContext(ctx, dest, req.SQL, req.Args...)
	})
}

// Select executes the request and scans all rows into dest.
func (e *Executor) Select(ctx context.Context, dest any, req QueryRequest) error {
	return e.execute(ctx, req, func(h Handle) error {
		return h.SelectContext(ctx, dest, req.SQL, req.Args...)
	})
}

// Close discards the held handle.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handle == nil {
		return nil
	}
	err := e.handle.Close()
	e.handle = nil
	return err
}

// execute is the retry loop shared by Query, Get, and Select. Failed
// reconnections consume attempt budget like failed executions do;
// reconnecting never resets the budget. Callers are serialized on the
// executor lock for the whole loop: the handle changes hands only between
// requests, never under one.
func (e *Executor) execute(ctx context.Context, req QueryRequest, op func(Handle) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = e.cfg.MaxAttempts
	}

	start := time.Now()
	defer func() {
		metrics.QueryDuration.Observe(time.Since(start).Seconds())
	}()

	attempts := 0
	var lastErr error

	for {
		// Probe before use; reconnect when no usable handle is held.
		if e.handle == nil || !e.probe(ctx, e.handle) {
			if err := e.reconnect(ctx); err != nil {
				attempts++
				lastErr = fmt.Errorf("reconnect: %w", err)
				if attempts >= maxAttempts {
					break
				}
				if err := e.backoff(ctx, attempts, lastErr); err != nil {
					return err
				}
				continue
			}
		}

		attempts++
		err := op(e.handle)
		if err == nil {
			metrics.QueryAttemptsTotal.WithLabelValues("success").Inc()
			return nil
		}
		lastErr = err

		if e.sigs.Classify(err) == domain.FaultFatal {
			metrics.QueryAttemptsTotal.WithLabelValues("fatal").Inc()
			return fmt.Errorf("query failed on attempt %d: %w (query: %s)",
				attempts, err, truncateSQL(req.SQL))
		}
		metrics.QueryAttemptsTotal.WithLabelValues("transient").Inc()

		if attempts >= maxAttempts {
			break
		}

		// The handle failed; never reuse it. The next iteration dials fresh.
		e.discardHandle()
		if err := e.backoff(ctx, attempts, lastErr); err != nil {
			return err
		}
	}

	metrics.RetriesExhaustedTotal.Inc()
	return &ExhaustedError{Attempts: attempts, Query: truncateSQL(req.SQL), Last: lastErr}
}

// reconnect replaces the handle wholesale with a freshly dialed session.
func (e *Executor) reconnect(ctx context.Context) error {
	e.discardHandle()

	h, err := e.dial(ctx)
	if err != nil {
		metrics.ReconnectsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.ReconnectsTotal.WithLabelValues("success").Inc()
	e.handle = h
	return nil
}

func (e *Executor) discardHandle() {
	if e.handle != nil {
		_ = e.handle.Close()
		e.handle = nil
	}
}

// backoff sleeps for attempt x base delay, so delays strictly increase
// between attempts. The retry hook fires before the sleep.
func (e *Executor) backoff(ctx context.Context, attempt int, cause error) error {
	delay := time.Duration(attempt) * e.cfg.BaseDelay
	metrics.QueryRetriesTotal.Inc()
	e.onRetry(attempt, delay, cause)
	return e.sleep(ctx, delay)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// truncateSQL caps query text for error messages, backing off to a rune
// boundary so multibyte literals never truncate into invalid UTF-8.
func truncateSQL(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
