// Package store is the NATS JetStream KV-backed implementation of the
// advisor's Repository capability (spec §6). It mirrors the teacher's
// single-bucket, dotted-key Storage shape: entities keyed by a type prefix
// plus the owning user or profile ID (conversations by their record ID),
// rate state updated through UpdateWithRetry so concurrent requests from the
// same user serialize correctly.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bearsden/advisor"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/c360studio/semstreams/pkg/errs"
	"github.com/nats-io/nats.go/jetstream"
)

// Key prefixes for the advisor's single KV bucket.
const (
	profilePrefix    = "profile."
	ownedPrefix      = "owned."
	chiefGearPrefix  = "chiefgear."
	userPrefix       = "user."
	rateStatePrefix  = "rate."
	conversationPfx  = "conversation."
)

// Repository is the NATS JetStream KV-backed storage adapter.
type Repository struct {
	kv     *natsclient.KVStore
	config advisor.AppConfig
	logger *slog.Logger
}

// New creates a Repository with an existing KV store.
func New(kv *natsclient.KVStore, config advisor.AppConfig) *Repository {
	return &Repository{kv: kv, config: config, logger: slog.Default()}
}

// WithLogger sets a custom logger for the repository.
func (r *Repository) WithLogger(l *slog.Logger) *Repository {
	r.logger = l
	return r
}

// Create creates a new repository, creating the KV bucket if needed.
func Create(ctx context.Context, client *natsclient.Client, config advisor.AppConfig) (*Repository, error) {
	bucketName := config.BucketName()
	bucket, err := client.CreateKeyValueBucket(ctx, jetstream.KeyValueConfig{
		Bucket:      bucketName,
		Description: fmt.Sprintf("Advisor state: %s", config.App),
		History:     5,
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		return nil, errs.Wrap(err, "Repository", "Create", "create bucket")
	}
	return New(client.NewKVStore(bucket), config), nil
}

// --- Reads ---

// GetProfile loads a player's profile.
func (r *Repository) GetProfile(ctx context.Context, userID string) (advisor.Profile, error) {
	var profile advisor.Profile
	if err := r.get(ctx, profilePrefix+userID, &profile); err != nil {
		return advisor.Profile{}, err
	}
	return profile, nil
}

// GetOwnedHeroes loads a profile's owned-hero roster.
func (r *Repository) GetOwnedHeroes(ctx context.Context, profileID string) ([]advisor.OwnedHero, error) {
	var heroes []advisor.OwnedHero
	if err := r.get(ctx, ownedPrefix+profileID, &heroes); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return heroes, nil
}

// GetChiefGear loads a profile's chief gear, or nil if never set.
func (r *Repository) GetChiefGear(ctx context.Context, profileID string) (advisor.ChiefGear, error) {
	var gear advisor.ChiefGear
	if err := r.get(ctx, chiefGearPrefix+profileID, &gear); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return gear, nil
}

// GetUser loads a user's account record (role, per-user AI limit override).
func (r *Repository) GetUser(ctx context.Context, userID string) (advisor.User, error) {
	var user advisor.User
	if err := r.get(ctx, userPrefix+userID, &user); err != nil {
		return advisor.User{}, err
	}
	return user, nil
}

// GetRateState loads a user's current rate-limit counters.
func (r *Repository) GetRateState(ctx context.Context, userID string) (advisor.UserRateState, error) {
	var state advisor.UserRateState
	if err := r.get(ctx, rateStatePrefix+userID, &state); err != nil {
		if isNotFound(err) {
			return advisor.UserRateState{}, nil
		}
		return advisor.UserRateState{}, err
	}
	return state, nil
}

// --- Writes ---

// PutProfile stores a profile.
func (r *Repository) PutProfile(ctx context.Context, userID string, profile advisor.Profile) error {
	return r.put(ctx, profilePrefix+userID, profile)
}

// PutOwnedHeroes stores a profile's roster.
func (r *Repository) PutOwnedHeroes(ctx context.Context, profileID string, heroes []advisor.OwnedHero) error {
	return r.put(ctx, ownedPrefix+profileID, heroes)
}

// PutChiefGear stores a profile's chief gear.
func (r *Repository) PutChiefGear(ctx context.Context, profileID string, gear advisor.ChiefGear) error {
	return r.put(ctx, chiefGearPrefix+profileID, gear)
}

// UpdateRateState atomically applies fn to a user's rate state via
// compare-and-swap retry, so two concurrent requests from the same user
// cannot both observe a stale counter (§5's per-user serialization
// requirement).
func (r *Repository) UpdateRateState(ctx context.Context, userID string, fn func(*advisor.UserRateState) error) error {
	key := rateStatePrefix + userID
	return r.kv.UpdateWithRetry(ctx, key, func(current []byte) ([]byte, error) {
		var state advisor.UserRateState
		if len(current) > 0 {
			if err := json.Unmarshal(current, &state); err != nil {
				return nil, err
			}
		}
		today := time.Now().UTC().Format("2006-01-02")
		if state.ResetAt != "" && today > state.ResetAt {
			state = advisor.UserRateState{}
		}
		if err := fn(&state); err != nil {
			return nil, err
		}
		if state.ResetAt == "" {
			state.ResetAt = today
		}
		return json.Marshal(&state)
	})
}

// AppendConversation appends a conversation record, keyed by its own entity
// ID so the log is naturally append-only with no per-record locking.
func (r *Repository) AppendConversation(ctx context.Context, record advisor.ConversationRecord) error {
	return r.put(ctx, conversationPfx+record.ID, record)
}

// --- helpers ---

func (r *Repository) get(ctx context.Context, key string, out any) error {
	entry, err := r.kv.Get(ctx, key)
	if err != nil {
		if natsclient.IsKVNotFoundError(err) {
			return fmt.Errorf("%w: %s", errNotFound, key)
		}
		return errs.Wrap(err, "Repository", "get", key)
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		return errs.Wrap(err, "Repository", "get", "unmarshal "+key)
	}
	return nil
}

func (r *Repository) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "Repository", "put", "marshal "+key)
	}
	if _, err := r.kv.Put(ctx, key, data); err != nil {
		return errs.Wrap(err, "Repository", "put", key)
	}
	return nil
}

var errNotFound = errors.New("not found")

func isNotFound(err error) bool {
	return errors.Is(err, errNotFound)
}
