package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/repository"
)

type venueRepository struct {
	db *sqlx.DB
}

// NewVenueRepository reads the partner catalog from the venues table.
func NewVenueRepository(db *sqlx.DB) repository.VenueCatalog {
	return &venueRepository{db: db}
}

func (r *venueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	var venues []domain.Venue
	query := `
		SELECT id, name, category, address, image,
		       price_level, rating, lat, lng, allows_alcohol
		FROM venues
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &venues, query); err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("venue catalog is empty")
	}
	return venues, nil
}
