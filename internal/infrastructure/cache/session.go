package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/talksense/internal/domain/entities"
)

// Store is the key-value backend behind the session cache
type Store interface {
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
}

// SessionCache stores completed analysis sessions by ID
type SessionCache struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewSessionCache creates a session cache over the given backend
func NewSessionCache(store Store, ttl time.Duration, logger *zap.Logger) *SessionCache {
	return &SessionCache{store: store, ttl: ttl, logger: logger}
}

// Save stores one session under its ID
func (c *SessionCache) Save(ctx context.Context, session *entities.AnalysisSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, sessionKey(session.ID.String()), data, c.ttl); err != nil {
		return err
	}
	if c.logger != nil {
		c.logger.Info("✅ Session cached",
			zap.String("session_id", session.ID.String()),
			zap.String("mode", session.Mode),
		)
	}
	return nil
}

// Get loads a session by ID, returning nil on a cache miss
func (c *SessionCache) Get(ctx context.Context, id string) (*entities.AnalysisSession, error) {
	data, found, err := c.store.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var session entities.AnalysisSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func sessionKey(id string) string {
	return "session:" + id
}
