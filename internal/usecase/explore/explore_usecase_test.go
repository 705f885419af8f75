package explore

import (
	"context"
	"math"
	"testing"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/repository/memory"
)

func TestListVenuesWithoutCoordinates(t *testing.T) {
	uc := NewExploreUseCase(memory.NewVenueCatalog())

	views, err := uc.ListVenues(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListVenues failed: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("got %d venues, want 4", len(views))
	}
	if views[0].Name != "Binary Brews" {
		t.Errorf("catalog order broken, first = %q", views[0].Name)
	}
	for _, v := range views {
		if v.DistanceKm != nil || v.EtaMinutes != nil {
			t.Errorf("venue %s carries distance without caller coordinates", v.Name)
		}
	}
}

func TestListVenuesWithCoordinates(t *testing.T) {
	uc := NewExploreUseCase(memory.NewVenueCatalog())

	coords := &domain.Coordinates{Lat: 50.4501, Lng: 30.5234}
	views, err := uc.ListVenues(context.Background(), coords)
	if err != nil {
		t.Fatalf("ListVenues failed: %v", err)
	}

	for _, v := range views {
		if v.DistanceKm == nil || v.EtaMinutes == nil {
			t.Fatalf("venue %s misses distance or eta", v.Name)
		}
		wantEta := int(math.Round(*v.DistanceKm*5 + 5))
		if *v.EtaMinutes != wantEta {
			t.Errorf("venue %s eta = %d, want %d for %.1f km", v.Name, *v.EtaMinutes, wantEta, *v.DistanceKm)
		}
	}

	// Caller standing at the first venue
	if first := views[0]; *first.DistanceKm != 0 || *first.EtaMinutes != 5 {
		t.Errorf("zero distance venue: %.1f km / %d min, want 0.0 / 5", *first.DistanceKm, *first.EtaMinutes)
	}
}

func TestCalculateDistance(t *testing.T) {
	// Kyiv center to Boryspil is roughly 29 km
	d := calculateDistance(50.4501, 30.5234, 50.3500, 30.8900)
	if d < 26 || d > 32 {
		t.Errorf("distance = %.1f km, want around 29", d)
	}

	if d := calculateDistance(50.4501, 30.5234, 50.4501, 30.5234); d != 0 {
		t.Errorf("same-point distance = %f, want 0", d)
	}
}
