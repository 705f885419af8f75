package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/repository"
)

// sessionTTL keeps abandoned demo sessions from accumulating.
const sessionTTL = 24 * time.Hour

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository stores sessions as JSON blobs in Redis. Used when
// the demo runs more than one instance behind a balancer.
func NewSessionRepository(client *redis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(id string) string {
	return "meetus:session:" + id
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, sessionKey(session.ID), data, sessionTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if !ok {
		return domain.ErrSessionExists
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}
