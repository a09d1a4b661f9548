package advisor

import (
	"context"
	"errors"
	"time"

	"github.com/c360studio/semstreams/natsclient"
)

// =============================================================================
// EVENTS - Typed subjects using vocabulary predicates
// =============================================================================
// Two event families: one per completed advisory exchange (for analytics
// consumers downstream), one per denied AI request (for alliance/ops
// dashboards watching rate-limit pressure). Subjects use three-part
// vocabulary predicates (advisor.conversation.answered) so a wildcard
// subscription like "advisor.>" picks up everything this package emits.
// =============================================================================

const (
	PredicateConversationAnswered = "advisor.conversation.answered"
	PredicateRateLimitDenied      = "advisor.ratelimit.denied"
)

var (
	SubjectConversationAnswered = natsclient.NewSubject[ConversationAnsweredPayload](PredicateConversationAnswered)
	SubjectRateLimitDenied      = natsclient.NewSubject[RateLimitDeniedPayload](PredicateRateLimitDenied)
)

// ConversationAnsweredPayload describes one completed Ask call, rules-only
// or AI-backed, successful or not - the Source field lets a downstream
// consumer tell them apart without re-deriving classification logic. Ask
// does not publish it; a caller publishes it through EventPublisher.
type ConversationAnsweredPayload struct {
	ConversationID string    `json:"conversationId"`
	UserID         string    `json:"userId"`
	Category       string    `json:"category"`
	Source         Source    `json:"source"`
	Provider       string    `json:"provider,omitempty"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
	AnsweredAt     time.Time `json:"answeredAt"`
}

func (p *ConversationAnsweredPayload) Validate() error {
	if p.ConversationID == "" {
		return errors.New("conversation_id required")
	}
	if p.UserID == "" {
		return errors.New("user_id required")
	}
	if p.AnsweredAt.IsZero() {
		return errors.New("answered_at required")
	}
	return nil
}

// RateLimitDeniedPayload describes one request denied by CheckAndRecord, so
// an alliance's daily-limit pressure is observable without scraping the
// conversation log for error-source answers. CheckAndRecord does not publish
// it; a caller publishes it through EventPublisher.
type RateLimitDeniedPayload struct {
	UserID   string    `json:"userId"`
	Kind     ErrorKind `json:"kind"`
	DeniedAt time.Time `json:"deniedAt"`
}

func (p *RateLimitDeniedPayload) Validate() error {
	if p.UserID == "" {
		return errors.New("user_id required")
	}
	if p.DeniedAt.IsZero() {
		return errors.New("denied_at required")
	}
	return nil
}

// EventPublisher provides type-safe event publishing for the advisor's two
// subjects.
type EventPublisher struct {
	client *natsclient.Client
}

// NewEventPublisher creates a new event publisher.
func NewEventPublisher(client *natsclient.Client) *EventPublisher {
	return &EventPublisher{client: client}
}

// PublishConversationAnswered publishes an advisor.conversation.answered event.
func (ep *EventPublisher) PublishConversationAnswered(ctx context.Context, payload ConversationAnsweredPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	return SubjectConversationAnswered.Publish(ctx, ep.client, payload)
}

// PublishRateLimitDenied publishes an advisor.ratelimit.denied event.
func (ep *EventPublisher) PublishRateLimitDenied(ctx context.Context, payload RateLimitDeniedPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	return SubjectRateLimitDenied.Publish(ctx, ep.client, payload)
}
