package advisor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nuid"
)

// =============================================================================
// ENTITY ID - Six-part dotted notation for federated entity management
// =============================================================================
// Format: org.platform.game.app.type.instance
//
// For the advisor:
//   - domain is always "game"
//   - app is the application name (e.g. "advisor")
//   - type is recommendation, conversation, rate
//   - instance is a unique identifier
//
// Example: bearsden.prod.game.advisor.conversation.abc123
// =============================================================================

// EntityType constants for the type part of entity IDs.
const (
	EntityTypeRecommendation = "recommendation"
	EntityTypeConversation   = "conversation"
	EntityTypeRate           = "rate"
)

// AppConfig holds the configuration for an advisor deployment.
// This determines the entity ID prefix and KV bucket name.
type AppConfig struct {
	Org      string // Organization namespace (e.g., "bearsden")
	Platform string // Deployment instance (e.g., "prod", "dev")
	App      string // Application name (e.g., "advisor")
}

// DefaultAppConfig returns a reasonable default configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{Org: "bearsden", Platform: "local", App: "advisor"}
}

// Prefix returns the 4-part prefix for all entities in this app.
func (c *AppConfig) Prefix() string {
	return fmt.Sprintf("%s.%s.game.%s", c.Org, c.Platform, c.App)
}

// EntityID generates a full 6-part entity ID.
// Format: org.platform.game.app.type.instance
func (c *AppConfig) EntityID(entityType, instance string) string {
	return fmt.Sprintf("%s.%s.game.%s.%s.%s", c.Org, c.Platform, c.App, entityType, instance)
}

// RecommendationEntityID generates a recommendation entity ID.
func (c *AppConfig) RecommendationEntityID(instance string) string {
	return c.EntityID(EntityTypeRecommendation, instance)
}

// ConversationEntityID generates a conversation entity ID.
func (c *AppConfig) ConversationEntityID(instance string) string {
	return c.EntityID(EntityTypeConversation, instance)
}

// RateEntityID generates a per-user rate-state entity ID.
func (c *AppConfig) RateEntityID(instance string) string {
	return c.EntityID(EntityTypeRate, instance)
}

// BucketName returns the KV bucket name for this app.
// Format: advisor-org-platform-app (dashes, not dots - NATS KV requirement)
func (c *AppConfig) BucketName() string {
	return fmt.Sprintf("advisor-%s-%s-%s", c.Org, c.Platform, c.App)
}

// --- Entity ID Parsing ---

// ParsedEntityID holds the parsed components of a 6-part entity ID.
type ParsedEntityID struct {
	Org      string
	Platform string
	Domain   string // Always "game"
	App      string
	Type     string // recommendation, conversation, rate
	Instance string
}

// ParseEntityID parses a 6-part entity ID into its components.
func ParseEntityID(id string) (*ParsedEntityID, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid entity ID: expected 6 parts, got %d", len(parts))
	}
	return &ParsedEntityID{
		Org:      parts[0],
		Platform: parts[1],
		Domain:   parts[2],
		App:      parts[3],
		Type:     parts[4],
		Instance: parts[5],
	}, nil
}

// ExtractInstance extracts the instance part (last segment) from an entity ID.
func ExtractInstance(id string) string {
	if idx := strings.LastIndex(id, "."); idx >= 0 {
		return id[idx+1:]
	}
	return id
}

// ExtractType extracts the type part (second to last segment) from an entity ID.
func ExtractType(id string) string {
	parts := strings.Split(id, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return ""
}

// GenerateInstance generates a globally-unique instance ID for entities that
// outlive a single process (conversation records, persisted recommendations).
func GenerateInstance() string {
	return uuid.New().String()
}

// GenerateShortInstance generates a compact, roughly-sortable instance ID for
// high-volume, process-local entities (rate-state retry attempts) where
// NUID's speed matters more than uuid's collision guarantees.
func GenerateShortInstance() string {
	return nuid.Next()
}

// IsValidEntityID checks if an ID has the correct 6-part format.
func IsValidEntityID(id string) bool {
	parts := strings.Split(id, ".")
	if len(parts) != 6 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return true
}
