package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/repository"
)

// sessionRepository keeps sessions as JSON blobs, the same wire format the
// redis store uses. Encoding on every access means each caller works on a
// private copy: a scheduled coordinator write and a concurrent read never
// share slices.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewSessionRepository returns the in-process session store, the default
// for single-instance demo deployments.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string][]byte),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return domain.ErrSessionExists
	}
	r.sessions[session.ID] = data
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	data, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
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

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = data
	return nil
}
