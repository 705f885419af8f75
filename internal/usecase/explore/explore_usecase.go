package explore

import (
	"context"
	"math"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/repository"
)

// VenueView is a catalog entry enriched with distance and ETA when the
// caller's coordinates are known. Without coordinates both stay nil: a
// missing location degrades the display, never the flow.
type VenueView struct {
	domain.Venue
	DistanceKm *float64 `json:"distance_km,omitempty"`
	EtaMinutes *int     `json:"eta_minutes,omitempty"`
}

type ExploreUseCase struct {
	venueCatalog repository.VenueCatalog
}

func NewExploreUseCase(venueCatalog repository.VenueCatalog) *ExploreUseCase {
	return &ExploreUseCase{venueCatalog: venueCatalog}
}

// ListVenues returns the partner catalog in its stored order.
func (uc *ExploreUseCase) ListVenues(ctx context.Context, userCoords *domain.Coordinates) ([]VenueView, error) {
	venues, err := uc.venueCatalog.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]VenueView, 0, len(venues))
	for _, v := range venues {
		view := VenueView{Venue: v}
		if userCoords != nil {
			d := calculateDistance(userCoords.Lat, userCoords.Lng, v.Lat, v.Lng)
			d = math.Round(d*10) / 10
			eta := int(math.Round(d*5 + 5))
			view.DistanceKm = &d
			view.EtaMinutes = &eta
		}
		views = append(views, view)
	}
	return views, nil
}

// calculateDistance uses stdlib math
func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371 // km
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)
	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}
