package gencontext

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyRunID     KeyContext = "generation_run_id"
	keySessionID KeyContext = "generation_session_id"
	keyContactID KeyContext = "generation_contact_id"
	keyEpoch     KeyContext = "generation_epoch"
	keyStartTime KeyContext = "generation_start_time"
)

// Metadata holds metadata for one AI generation run
type Metadata struct {
	RunID     uuid.UUID
	SessionID string
	ContactID string
	Epoch     uint64
	StartTime time.Time
}

// Begin derives a generation context bound to the editing session that
// started it. The epoch is the controller epoch at start time; results are
// only applied while it is still current.
func Begin(parent context.Context, sessionID, contactID string, epoch uint64, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)

	ctx = context.WithValue(ctx, keyRunID, uuid.New())
	ctx = context.WithValue(ctx, keySessionID, sessionID)
	ctx = context.WithValue(ctx, keyContactID, contactID)
	ctx = context.WithValue(ctx, keyEpoch, epoch)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// GetRunID extracts the run id from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyRunID).(uuid.UUID)
	return id, ok
}

// GetEpoch extracts the epoch captured at start
func GetEpoch(ctx context.Context) (uint64, bool) {
	epoch, ok := ctx.Value(keyEpoch).(uint64)
	return epoch, ok
}

// GetContactID extracts the contact id the run was started for
func GetContactID(ctx context.Context) string {
	id, _ := ctx.Value(keyContactID).(string)
	return id
}

// GetMetadata extracts all generation metadata from context
func GetMetadata(ctx context.Context) *Metadata {
	runID, _ := GetRunID(ctx)
	epoch, _ := GetEpoch(ctx)
	sessionID, _ := ctx.Value(keySessionID).(string)
	startTime, _ := ctx.Value(keyStartTime).(time.Time)

	return &Metadata{
		RunID:     runID,
		SessionID: sessionID,
		ContactID: GetContactID(ctx),
		Epoch:     epoch,
		StartTime: startTime,
	}
}

// Elapsed returns the time since the run started, zero when unknown
func Elapsed(ctx context.Context) time.Duration {
	start, ok := ctx.Value(keyStartTime).(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// IsRetryableError checks if a gateway error should trigger a retry.
// Retryable errors include: network errors, timeouts, rate limits, 5xx.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// The caller's own cancellation is final
	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := strings.ToLower(err.Error())

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "eof") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "status 429") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	return false
}
