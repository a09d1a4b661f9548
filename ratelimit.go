package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bearsden/advisor/metrics"
)

func logConversationFailure(userID string, err error) {
	slog.Warn("conversation log append failed", "userId", userID, "error", err)
}

// =============================================================================
// RATE LIMITER + LOGGER (C10)
// =============================================================================
// checkRateLimit/recordRequest must be atomic per-user (§5). The backing
// Repository.UpdateRateState (store/repository.go) already does this via a
// NATS KV compare-and-swap retry loop; RateLimiter additionally holds a local
// per-user mutex so two goroutines sharing one process serialize without a
// round trip, matching the spec's "logical mutex keyed by userId" option.
// =============================================================================

// RateLimitResult is the outcome of a rate-limit check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	Err       *AdvisorError
}

// ConversationLogger appends conversation records; logging failures must
// never fail the user-visible answer (§4.10).
type ConversationLogger interface {
	AppendConversation(ctx context.Context, record ConversationRecord) error
}

// RateStateStore is the subset of the Repository capability the rate
// limiter needs, expressed as an interface so tests can fake it.
type RateStateStore interface {
	GetRateState(ctx context.Context, userID string) (UserRateState, error)
	UpdateRateState(ctx context.Context, userID string, fn func(*UserRateState) error) error
}

// RateLimiter enforces the daily + cooldown policy and fans out conversation
// logging.
type RateLimiter struct {
	store    RateStateStore
	logger   ConversationLogger
	settings func() *AISettings

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRateLimiter builds a RateLimiter. settingsFn is called on every check so
// admin-edited settings take effect without a restart (§5).
func NewRateLimiter(store RateStateStore, logger ConversationLogger, settingsFn func() *AISettings) *RateLimiter {
	return &RateLimiter{store: store, logger: logger, settings: settingsFn, locks: make(map[string]*sync.Mutex)}
}

func (r *RateLimiter) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userID] = l
	}
	return l
}

// CheckAndRecord performs the check-and-increment as one atomic operation:
// it only increments when the check passes, so two concurrent callers at
// exactly the daily limit result in exactly one allow and one deny.
func (r *RateLimiter) CheckAndRecord(ctx context.Context, user User) RateLimitResult {
	settings := r.settings()

	if settings.Mode == AIModeOff {
		metrics.RecordRateLimitDenied(string(ErrAiDisabled))
		return RateLimitResult{Allowed: false, Err: aiDisabledError()}
	}
	if settings.Mode == AIModeUnlimited {
		return RateLimitResult{Allowed: true, Remaining: -1}
	}

	lock := r.userLock(user.ID)
	lock.Lock()
	defer lock.Unlock()

	limit := settings.DailyLimitFree
	if user.IsAdmin {
		limit = settings.DailyLimitAdmin
	} else if user.AIDailyLimit != nil {
		limit = *user.AIDailyLimit
	}

	var result RateLimitResult
	now := time.Now().UTC()
	err := r.store.UpdateRateState(ctx, user.ID, func(state *UserRateState) error {
		if state.AIRequestsToday >= limit {
			result = RateLimitResult{Allowed: false, Err: dailyLimitError(limit)}
			return errSkipIncrement
		}
		if settings.CooldownSeconds > 0 && state.LastAIRequestAt != nil {
			elapsed := now.Sub(*state.LastAIRequestAt)
			if elapsed < time.Duration(settings.CooldownSeconds)*time.Second {
				remaining := int((time.Duration(settings.CooldownSeconds)*time.Second - elapsed).Seconds())
				if remaining < 1 {
					remaining = 1
				}
				result = RateLimitResult{Allowed: false, Err: cooldownError(remaining)}
				return errSkipIncrement
			}
		}
		state.AIRequestsToday++
		state.LastAIRequestAt = &now
		result = RateLimitResult{Allowed: true, Remaining: limit - state.AIRequestsToday}
		return nil
	})
	if err != nil && err != errSkipIncrement {
		return RateLimitResult{Allowed: false, Err: notConfiguredError(err)}
	}
	if !result.Allowed && result.Err != nil {
		metrics.RecordRateLimitDenied(string(result.Err.Kind))
	}
	return result
}

// errSkipIncrement is returned by the UpdateRateState closure to leave the
// stored state untouched when a deny decision was made - the closure still
// runs inside the CAS retry loop, but we don't want a denied check to
// persist a no-op write.
var errSkipIncrement = fmt.Errorf("advisor: rate check denied, state unchanged")

// LogConversation appends a conversation record. Best-effort: a failure is
// logged through slog (logConversationFailure) and never fails the user's
// answer.
func (r *RateLimiter) LogConversation(ctx context.Context, record ConversationRecord) {
	if err := r.logger.AppendConversation(ctx, record); err != nil {
		logConversationFailure(record.UserID, err)
	}
}
