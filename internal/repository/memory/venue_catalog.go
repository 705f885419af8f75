package memory

import (
	"context"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/repository"
)

// mockPartners mirrors the partner venue list of the demo. Order matters:
// assembly falls back to the first entry when no venue matches the profile.
var mockPartners = []domain.Venue{
	{ID: "loc_1", Name: "Binary Brews", Category: "Coffee & Code", Address: "123 Tech Ave", Image: "https://picsum.photos/seed/cafe/600/400", PriceLevel: 2, Rating: 4.8, Lat: 50.4501, Lng: 30.5234, AllowsAlcohol: false},
	{ID: "loc_2", Name: "The Art Vault", Category: "Gallery", Address: "45 Creative Blvd", Image: "https://picsum.photos/seed/art/600/400", PriceLevel: 3, Rating: 4.5, Lat: 50.4541, Lng: 30.5111, AllowsAlcohol: true},
	{ID: "loc_3", Name: "Peak Fitness", Category: "Climbing Gym", Address: "88 Sport Way", Image: "https://picsum.photos/seed/climb/600/400", PriceLevel: 2, Rating: 4.9, Lat: 50.4601, Lng: 30.5334, AllowsAlcohol: false},
	{ID: "loc_4", Name: "Neon Nights", Category: "Cocktail Bar", Address: "10 Party St", Image: "https://picsum.photos/seed/bar/600/400", PriceLevel: 4, Rating: 4.7, Lat: 50.4401, Lng: 30.5034, AllowsAlcohol: true},
}

type venueCatalog struct {
	venues []domain.Venue
}

// NewVenueCatalog returns the static partner catalog.
func NewVenueCatalog() repository.VenueCatalog {
	return &venueCatalog{venues: mockPartners}
}

func (c *venueCatalog) List(ctx context.Context) ([]domain.Venue, error) {
	out := make([]domain.Venue, len(c.venues))
	copy(out, c.venues)
	return out, nil
}
