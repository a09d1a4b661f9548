package advisor

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRateStore is a minimal in-memory RateStateStore. UpdateRateState holds
// its own mutex for the duration of the closure, mirroring the atomicity the
// real NATS KV compare-and-swap retry loop provides.
type fakeRateStore struct {
	mu     sync.Mutex
	states map[string]UserRateState
}

func newFakeRateStore() *fakeRateStore {
	return &fakeRateStore{states: make(map[string]UserRateState)}
}

func (s *fakeRateStore) GetRateState(ctx context.Context, userID string) (UserRateState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID], nil
}

func (s *fakeRateStore) UpdateRateState(ctx context.Context, userID string, fn func(*UserRateState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.states[userID]
	err := fn(&state)
	if err != nil {
		return err
	}
	s.states[userID] = state
	return nil
}

type fakeConversationLogger struct {
	mu      sync.Mutex
	records []ConversationRecord
}

func (l *fakeConversationLogger) AppendConversation(ctx context.Context, record ConversationRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return nil
}

func TestRateLimiter_AiModeOffDeniesWithAiDisabled(t *testing.T) {
	settings := &AISettings{Mode: AIModeOff}
	limiter := NewRateLimiter(newFakeRateStore(), &fakeConversationLogger{}, func() *AISettings { return settings })

	result := limiter.CheckAndRecord(context.Background(), User{ID: "u1"})
	assert.False(t, result.Allowed)
	require.NotNil(t, result.Err)
	assert.Equal(t, ErrAiDisabled, result.Err.Kind)
}

func TestRateLimiter_UnlimitedModeAlwaysAllows(t *testing.T) {
	settings := &AISettings{Mode: AIModeUnlimited}
	limiter := NewRateLimiter(newFakeRateStore(), &fakeConversationLogger{}, func() *AISettings { return settings })

	for i := 0; i < 5; i++ {
		result := limiter.CheckAndRecord(context.Background(), User{ID: "u1"})
		assert.True(t, result.Allowed)
		assert.Equal(t, -1, result.Remaining)
	}
}

func TestRateLimiter_AdminGetsAdminLimit(t *testing.T) {
	settings := &AISettings{Mode: AIModeOn, DailyLimitFree: 1, DailyLimitAdmin: 5}
	limiter := NewRateLimiter(newFakeRateStore(), &fakeConversationLogger{}, func() *AISettings { return settings })

	for i := 0; i < 5; i++ {
		result := limiter.CheckAndRecord(context.Background(), User{ID: "admin1", IsAdmin: true})
		assert.True(t, result.Allowed, "request %d", i)
	}
	result := limiter.CheckAndRecord(context.Background(), User{ID: "admin1", IsAdmin: true})
	assert.False(t, result.Allowed)
}

func TestRateLimiter_PerUserOverrideBeatsTierDefault(t *testing.T) {
	settings := &AISettings{Mode: AIModeOn, DailyLimitFree: 3}
	limiter := NewRateLimiter(newFakeRateStore(), &fakeConversationLogger{}, func() *AISettings { return settings })
	override := 1
	user := User{ID: "u1", AIDailyLimit: &override}

	result := limiter.CheckAndRecord(context.Background(), user)
	assert.True(t, result.Allowed)
	result = limiter.CheckAndRecord(context.Background(), user)
	assert.False(t, result.Allowed)
}

func TestRateLimiter_CooldownBlocksImmediateRetry(t *testing.T) {
	settings := &AISettings{Mode: AIModeOn, DailyLimitFree: 10, CooldownSeconds: 3600}
	limiter := NewRateLimiter(newFakeRateStore(), &fakeConversationLogger{}, func() *AISettings { return settings })
	user := User{ID: "u1"}

	first := limiter.CheckAndRecord(context.Background(), user)
	assert.True(t, first.Allowed)

	second := limiter.CheckAndRecord(context.Background(), user)
	assert.False(t, second.Allowed)
	require.NotNil(t, second.Err)
	assert.Equal(t, ErrRateLimited, second.Err.Kind)
}

// Scenario 4: dailyLimitFree=3, cooldownSeconds=0, aiRequestsToday already at
// 2. Two concurrent requests for the same user: exactly one must be allowed
// (bringing the count to 3) and the other must be denied with the exact
// daily-limit message.
func TestRateLimiter_ConcurrentRequestsAtBoundary_ExactlyOneAllowed(t *testing.T) {
	settings := &AISettings{Mode: AIModeOn, DailyLimitFree: 3, CooldownSeconds: 0}
	store := newFakeRateStore()
	store.states["u1"] = UserRateState{AIRequestsToday: 2}
	limiter := NewRateLimiter(store, &fakeConversationLogger{}, func() *AISettings { return settings })

	var wg sync.WaitGroup
	results := make([]RateLimitResult, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = limiter.CheckAndRecord(context.Background(), User{ID: "u1"})
		}(i)
	}
	wg.Wait()

	var allowed, denied int
	var deniedResult RateLimitResult
	for _, r := range results {
		if r.Allowed {
			allowed++
		} else {
			denied++
			deniedResult = r
		}
	}
	assert.Equal(t, 1, allowed)
	assert.Equal(t, 1, denied)
	require.NotNil(t, deniedResult.Err)
	assert.Equal(t, "Daily limit reached (3 requests). Resets at midnight UTC.", deniedResult.Err.Message)

	final, err := store.GetRateState(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, final.AIRequestsToday)
}

func TestRateLimiter_ConcurrentRequestsHighVolume_NeverExceedsLimit(t *testing.T) {
	settings := &AISettings{Mode: AIModeOn, DailyLimitFree: 3, CooldownSeconds: 0}
	store := newFakeRateStore()
	limiter := NewRateLimiter(store, &fakeConversationLogger{}, func() *AISettings { return settings })

	var wg sync.WaitGroup
	var allowedCount int64
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := limiter.CheckAndRecord(context.Background(), User{ID: "u1"})
			if result.Allowed {
				atomic.AddInt64(&allowedCount, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 3, allowedCount)
	final, err := store.GetRateState(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, final.AIRequestsToday)
}

func TestRateLimiter_LogConversation_SwallowsLoggerFailure(t *testing.T) {
	limiter := NewRateLimiter(newFakeRateStore(), failingLogger{}, func() *AISettings { return DefaultAISettings() })
	assert.NotPanics(t, func() {
		limiter.LogConversation(context.Background(), ConversationRecord{UserID: "u1"})
	})
}

type failingLogger struct{}

func (failingLogger) AppendConversation(ctx context.Context, record ConversationRecord) error {
	return assertErr
}

var assertErr = &AdvisorError{Kind: ErrNotConfigured, Message: "boom"}
