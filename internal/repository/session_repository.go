package repository

import (
	"context"

	"github.com/tishinatyt/meetus/internal/domain"
)

// SessionRepository stores per-session state. Implementations return a
// private copy from GetByID; nothing the caller mutates is visible until
// Save. The coordinator's busy flags serialize writers on top of that.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}
