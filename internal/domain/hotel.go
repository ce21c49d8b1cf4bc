package domain

type Coords struct{ Lat, Lon float64 }

// Hotel is the canonical catalog record. The backend and the seed data
// carry two historical shapes (location/price vs address/city/country/
// pricePerNight); both are normalized into this one at the mapping
// boundary and nothing past it sees the variants.
type Hotel struct {
	ID            string
	Name          string
	Address       string
	City          string
	Country       string
	PricePerNight float64
	Rating        float64
	Reviews       int
	ImageURL      string
	Images        []string
	Description   string
	Amenities     []string
	Type          string // resort|boutique|hotel|lodge
	Coords        *Coords
	CheckInTime   string
	CheckOutTime  string
}
