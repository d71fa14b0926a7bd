// internal/common/profiles/repository.go
package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"idea-match-workers/internal/common/config"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/metrics"
	"idea-match-workers/internal/common/validation"
	"idea-match-workers/internal/models"
)

var (
	ErrInputValidation     = errors.New("INPUT_VALIDATION_FAILED")
	ErrProfileNotFound     = errors.New("PROFILE_NOT_FOUND")
	ErrProfileLookupFailed = errors.New("PROFILE_LOOKUP_FAILED")
	ErrProfileCorrupt      = errors.New("PROFILE_CORRUPT")
	ErrDatabaseWrite       = errors.New("DATABASE_WRITE_FAILED")
)

const (
	queryProfile = `SELECT profile FROM founder_profiles WHERE user_id = $1`

	queryDismissed = `
		SELECT idea_id FROM dismissed_ideas
		WHERE user_id = $1
		ORDER BY dismissed_at, idea_id`

	insertDismissed = `
		INSERT INTO dismissed_ideas (user_id, idea_id, dismissed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, idea_id) DO NOTHING`
)

func ProfileKey(userID string) string   { return "profile:" + userID }
func DismissedKey(userID string) string { return "dismissed:" + userID }

// Repository reads founder profiles and dismissed ideas from Postgres with a
// Redis read-through cache in front.
type Repository struct {
	db           *sql.DB
	redis        *redis.Client
	profileTTL   time.Duration
	dismissedTTL time.Duration
	logger       logger.Logger
}

func NewRepository(db *sql.DB, rdb *redis.Client, cache config.CacheConfig, log logger.Logger) *Repository {
	return &Repository{
		db:           db,
		redis:        rdb,
		profileTTL:   cache.ProfileTTL,
		dismissedTTL: cache.DismissedTTL,
		logger:       log,
	}
}

// Resolve returns the inline profile when one is given, otherwise the stored
// profile for userID. Inline profiles are schema-checked first.
func (r *Repository) Resolve(ctx context.Context, userID string, inline json.RawMessage) (models.FounderProfile, error) {
	if len(inline) > 0 && string(inline) != "null" {
		return DecodeProfile(inline)
	}
	if userID == "" {
		return models.FounderProfile{}, fmt.Errorf("%w: userId or profile is required", ErrInputValidation)
	}
	return r.Get(ctx, userID)
}

// DecodeProfile validates raw against the founder profile schema and decodes it.
func DecodeProfile(raw json.RawMessage) (models.FounderProfile, error) {
	var p models.FounderProfile
	if result := validation.FounderProfile().ValidateJSON(raw); !result.Valid {
		return p, fmt.Errorf("%w: %s", ErrInputValidation, result.Error())
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %v", ErrInputValidation, err)
	}
	return p, nil
}

// Get loads the stored profile for userID.
func (r *Repository) Get(ctx context.Context, userID string) (models.FounderProfile, error) {
	var p models.FounderProfile
	key := ProfileKey(userID)

	if cached, ok := r.cached(ctx, key); ok {
		if err := json.Unmarshal(cached, &p); err == nil {
			metrics.ProfileCacheRequests.WithLabelValues("hit").Inc()
			return p, nil
		}
		r.logger.Warn("dropping unreadable cached profile", map[string]interface{}{"userId": userID})
		r.redis.Del(ctx, key)
	}
	metrics.ProfileCacheRequests.WithLabelValues("miss").Inc()

	var raw []byte
	err := r.db.QueryRowContext(ctx, queryProfile, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("%w: user %s", ErrProfileNotFound, userID)
	}
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrProfileLookupFailed, err)
	}

	if result := validation.FounderProfile().ValidateJSON(raw); !result.Valid {
		return p, fmt.Errorf("%w: user %s: %s", ErrProfileCorrupt, userID, result.Error())
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: user %s: %v", ErrProfileCorrupt, userID, err)
	}

	r.store(ctx, key, raw, r.profileTTL)
	return p, nil
}

// Dismissed lists the idea ids userID has dismissed, oldest first.
func (r *Repository) Dismissed(ctx context.Context, userID string) ([]string, error) {
	key := DismissedKey(userID)
	if cached, ok := r.cached(ctx, key); ok {
		var ids []string
		if err := json.Unmarshal(cached, &ids); err == nil {
			return ids, nil
		}
		r.redis.Del(ctx, key)
	}

	rows, err := r.db.QueryContext(ctx, queryDismissed, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: dismissed ideas: %v", ErrProfileLookupFailed, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: dismissed ideas: %v", ErrProfileLookupFailed, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: dismissed ideas: %v", ErrProfileLookupFailed, err)
	}

	if data, err := json.Marshal(ids); err == nil {
		r.store(ctx, key, data, r.dismissedTTL)
	}
	return ids, nil
}

// Dismiss records that userID dismissed ideaID. Dismissing twice is a no-op.
func (r *Repository) Dismiss(ctx context.Context, userID, ideaID string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, insertDismissed, userID, ideaID, at); err != nil {
		return fmt.Errorf("%w: dismiss %s: %v", ErrDatabaseWrite, ideaID, err)
	}
	if err := r.redis.Del(ctx, DismissedKey(userID)).Err(); err != nil {
		r.logger.Warn("failed to invalidate dismissed cache", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}
	return nil
}

// Invalidate drops every cached entry for userID.
func (r *Repository) Invalidate(ctx context.Context, userID string) error {
	return r.redis.Del(ctx, ProfileKey(userID), DismissedKey(userID)).Err()
}

// cached treats any cache failure as a miss; Postgres stays authoritative.
func (r *Repository) cached(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.redis.Get(ctx, key).Bytes()
	if err == nil {
		return val, true
	}
	if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return nil, false
}

func (r *Repository) store(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.redis.Set(ctx, key, string(data), ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
