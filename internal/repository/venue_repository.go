package repository

import (
	"context"

	"github.com/tishinatyt/meetus/internal/domain"
)

// VenueCatalog is the read-only partner venue directory. Implementations
// must never return an empty catalog; meeting assembly relies on that.
type VenueCatalog interface {
	List(ctx context.Context) ([]domain.Venue, error)
}
