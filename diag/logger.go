package diag

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is a per-query diagnostics sink: a correlation id plus a
// zerolog.Logger disabled unless the owning query was constructed with
// verbose=true. Its zero value is not usable; construct with New.
type Logger struct {
	id     string
	logger zerolog.Logger
}

// New returns a Logger tagged with a fresh query correlation id. When
// verbose is false the returned Logger is fully disabled: every call is a
// cheap no-op, never touching w.
func New(verbose bool, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	id := uuid.NewString()
	zl := zerolog.New(w).Level(level).With().Timestamp().Str("query_id", id).Logger()
	return &Logger{id: id, logger: zl}
}

// ID returns the query's correlation id, surfaced in diagnostics only; it
// is never consumed by the belief/condition algorithms themselves.
func (l *Logger) ID() string { return l.id }

// DiamondDetected logs a join node's diamond discovery: its conditioning
// set size and induced node count.
func (l *Logger) DiamondDetected(join string, conditioningSize, relevantNodes int) {
	l.logger.Debug().
		Str("join", join).
		Int("conditioning_size", conditioningSize).
		Int("relevant_nodes", relevantNodes).
		Msg("diamond detected")
}

// ConditioningStates logs the number of joint Bernoulli states a diamond's
// conditioner is about to enumerate.
func (l *Logger) ConditioningStates(join string, k int) {
	l.logger.Debug().
		Str("join", join).
		Int("conditioning_nodes", k).
		Int("states", 1<<uint(k)).
		Msg("enumerating conditioning states")
}

// Warn logs a node whose contribution count exceeded the warn threshold of
// spec.md §9, without altering the computed result.
func (l *Logger) Warn(node string, contributions int) {
	l.logger.Warn().
		Str("node", node).
		Int("contributions", contributions).
		Msg("node accumulated an unusually large number of contributions")
}

// CacheStats logs a query-scoped cache's final hit/miss/eviction counts.
func (l *Logger) CacheStats(name string, hits, misses, evictions int64) {
	l.logger.Debug().
		Str("cache", name).
		Int64("hits", hits).
		Int64("misses", misses).
		Int64("evictions", evictions).
		Msg("cache stats")
}

// Error logs a terminal query error.
func (l *Logger) Error(err error) {
	l.logger.Error().Err(err).Msg("query failed")
}
