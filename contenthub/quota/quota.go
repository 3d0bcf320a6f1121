// Package quota enforces the per-session daily generation limit.
//
// The limit is best-effort: checking the quota and creating the record are
// two separate store operations with no reservation between them, so
// concurrent requests from one session can race past the boundary. Sequential
// callers are counted exactly.
package quota

import (
	"errors"
	"time"
)

// DefaultDailyLimit is the number of generation-counted requests a session
// may make per calendar day when no override is configured.
const DefaultDailyLimit = 10

// ErrLimitExceeded is returned when a session has used up today's quota.
var ErrLimitExceeded = errors.New("daily generation limit exceeded")

// UsageSource answers how many records a session created on a given day
type UsageSource interface {
	CountSessionRecordsOnDate(sessionID string, day time.Time) int
}

// Counter derives per-session usage from the content record store
type Counter struct {
	source UsageSource
	limit  int
}

// Status is the derived usage snapshot for one session. It is computed fresh
// on every query and never cached.
type Status struct {
	UsedCount      int  `json:"usedCount"`
	RemainingCount int  `json:"remainingCount"`
	MaxDaily       int  `json:"maxDaily"`
	LimitReached   bool `json:"limitReached"`
}

// creates a usage counter over the given source; a non-positive limit falls
// back to the default
func NewCounter(source UsageSource, limit int) *Counter {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}

	return &Counter{source: source, limit: limit}
}

// returns the configured daily limit
func (c *Counter) Limit() int {
	return c.limit
}

// returns how many records the session created today, evaluated against the
// serving process's local clock
func (c *Counter) CurrentUsage(sessionID string) int {
	return c.source.CountSessionRecordsOnDate(sessionID, time.Now())
}

// rejects with ErrLimitExceeded when the session has no quota left today.
// Callers must invoke this before creating a record; there is no atomic
// reserve-and-create.
func (c *Counter) CheckAndReserve(sessionID string) error {
	if c.CurrentUsage(sessionID) >= c.limit {
		return ErrLimitExceeded
	}

	return nil
}

// computes the session's usage status
func (c *Counter) Status(sessionID string) Status {
	used := c.CurrentUsage(sessionID)

	remaining := c.limit - used
	if remaining < 0 {
		remaining = 0
	}

	return Status{
		UsedCount:      used,
		RemainingCount: remaining,
		MaxDaily:       c.limit,
		LimitReached:   used >= c.limit,
	}
}
