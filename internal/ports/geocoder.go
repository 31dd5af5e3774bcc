package ports

import (
	"context"

	"github.com/elasticboard/elasticboard/internal/domain"
)

// Geocoder converts a free-text address into coordinates.
type Geocoder interface {
	// Geocode resolves an address. A nil GeoPoint with a nil error means the
	// service had no candidates for the address, or the address was empty.
	Geocode(ctx context.Context, address string) (*domain.GeoPoint, error)
}
