package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"MediCare/cache"
	"MediCare/models"
)

// SessionRepository keeps logged-in sessions in the session cache under
// medicare-auth:<userID>:<sessionID>.
type SessionRepository struct {
	cache cache.Cache
}

func NewSessionRepository(c cache.Cache) *SessionRepository {
	return &SessionRepository{cache: c}
}

func (r *SessionRepository) Save(ctx context.Context, session models.Session, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.cache.Set(ctx, sessionKey(session.User.ID, session.ID), raw, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns models.ErrUnauthenticated when the session is gone.
func (r *SessionRepository) Get(ctx context.Context, userID int64, sessionID string) (*models.Session, error) {
	raw, err := r.cache.Get(ctx, sessionKey(userID, sessionID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, models.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID int64, sessionID string) error {
	if err := r.cache.Delete(ctx, sessionKey(userID, sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteAllForUser ends every session of a user.
func (r *SessionRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	if err := r.cache.DeleteAll(ctx, sessionKey(userID, "*")); err != nil {
		return fmt.Errorf("failed to delete sessions of user %d: %w", userID, err)
	}
	return nil
}

func sessionKey(userID int64, sessionID string) string {
	return cache.Key(models.SessionNamespace, strconv.FormatInt(userID, 10), sessionID)
}
