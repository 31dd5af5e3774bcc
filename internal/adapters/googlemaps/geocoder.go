package googlemaps

import (
	"context"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"

	"github.com/elasticboard/elasticboard/internal/domain"
)

// Geocoder implements the Geocoder interface on the Google Maps geocoding
// API.
type Geocoder struct {
	client *maps.Client
	logger *slog.Logger
}

// New creates a new Geocoder. reqsPerSec caps the client-side request rate,
// in addition to the quota enforced by the sync loop.
func New(apiKey string, reqsPerSec int) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithRateLimit(reqsPerSec))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient creates a new Geocoder with a preconfigured maps client.
// This constructor is primarily intended for testing purposes.
func NewWithClient(client *maps.Client) *Geocoder {
	return &Geocoder{
		client: client,
		logger: slog.Default().With("component", "maps"),
	}
}

// Geocode resolves an address into coordinates. An empty address returns nil
// without calling the service; a lookup with no candidates returns nil as
// well. The first candidate wins otherwise.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*domain.GeoPoint, error) {
	if address == "" {
		return nil, nil
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", address, err)
	}

	if len(results) == 0 {
		g.logger.DebugContext(ctx, "no geocoding results", "address", address)
		return nil, nil
	}

	loc := results[0].Geometry.Location
	g.logger.DebugContext(ctx, "geocoded address",
		"address", address,
		"lat", loc.Lat,
		"lng", loc.Lng,
	)

	return &domain.GeoPoint{Lat: loc.Lat, Lon: loc.Lng}, nil
}
