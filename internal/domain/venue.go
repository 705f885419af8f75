package domain

type Coordinates struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Venue is a partner location. Records are immutable and come from a static
// catalog or the venues table, depending on storage configuration.
type Venue struct {
	ID            string  `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Category      string  `json:"category" db:"category"`
	Address       string  `json:"address" db:"address"`
	Image         string  `json:"image" db:"image"`
	PriceLevel    int     `json:"price_level" db:"price_level"`
	Rating        float64 `json:"rating" db:"rating"`
	Lat           float64 `json:"lat" db:"lat"`
	Lng           float64 `json:"lng" db:"lng"`
	AllowsAlcohol bool    `json:"allows_alcohol" db:"allows_alcohol"`
}

func (v *Venue) Coords() Coordinates {
	return Coordinates{Lat: v.Lat, Lng: v.Lng}
}
