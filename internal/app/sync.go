package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elasticboard/elasticboard/internal/domain"
	"github.com/elasticboard/elasticboard/internal/ports"
)

// SyncService runs one synchronization pass from the directory service into
// the search index.
type SyncService struct {
	source        ports.UserSource
	geocoder      ports.Geocoder
	searchIndex   ports.SearchIndex
	index         string
	mapping       string
	table         *domain.FieldTable
	addressFields []string
	quota         int
	sleep         func(time.Duration)
	logger        *slog.Logger
}

// RunOptions control a single sync run.
type RunOptions struct {
	Email         string
	RecreateIndex bool
}

// NewSyncService creates a new SyncService. The geocoder and searchIndex may
// be nil; enrichment and indexing are then skipped, which keeps dry runs
// without a maps key or an Elasticsearch host working.
func NewSyncService(
	source ports.UserSource,
	geocoder ports.Geocoder,
	searchIndex ports.SearchIndex,
	index string,
	mapping string,
	table *domain.FieldTable,
	addressFields []string,
	geocodeQuota int,
) *SyncService {
	// a non-positive quota would turn the limiter off after the first pause
	if geocodeQuota < 1 {
		geocodeQuota = 1
	}
	return &SyncService{
		source:        source,
		geocoder:      geocoder,
		searchIndex:   searchIndex,
		index:         index,
		mapping:       mapping,
		table:         table,
		addressFields: addressFields,
		quota:         geocodeQuota,
		sleep:         time.Sleep,
		logger:        slog.Default().With("component", "sync"),
	}
}

// Run executes one full fetch-enrich-index pass.
func (s *SyncService) Run(ctx context.Context, opts RunOptions) error {
	s.logger.Info("starting sync run",
		"recreateIndex", opts.RecreateIndex,
		"emailFilter", opts.Email,
	)

	if s.searchIndex != nil {
		if opts.RecreateIndex {
			if err := s.recreateIndex(ctx); err != nil {
				return err
			}
		} else if err := s.ensureIndexExists(ctx); err != nil {
			return err
		}
	} else {
		s.logger.Warn("no search index configured, documents will not be indexed")
	}

	users, err := s.source.ListUsers(ctx, opts.Email)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}

	s.logger.Info("fetched users", "count", len(users))

	quota := s.quota
	var geocoded, indexed int

	for _, raw := range users {
		doc, err := domain.Shape(raw, s.table)
		if err != nil {
			return fmt.Errorf("failed to shape user %s: %w", raw.ID(), err)
		}

		if s.geocoder != nil {
			if quota == 0 {
				s.sleep(time.Second)
				quota = s.quota
			}
			point := s.geocodeUser(ctx, raw)
			// the quota also covers iterations where geocoding was skipped,
			// keeping observed throughput stable
			quota--
			if point != nil {
				doc.SetLocation(*point)
				geocoded++
			}
		}

		if s.searchIndex != nil {
			if err := s.searchIndex.Upsert(ctx, s.index, raw.ID(), doc); err != nil {
				return fmt.Errorf("failed to index user %s: %w", raw.ID(), err)
			}
			indexed++
		}
	}

	s.logger.Info("sync run completed",
		"users", len(users),
		"geocoded", geocoded,
		"indexed", indexed,
	)

	return nil
}

// geocodeUser resolves a user's address. Geocoding is best-effort: failures
// are logged and the user is indexed without a location.
func (s *SyncService) geocodeUser(ctx context.Context, raw domain.RawUser) *domain.GeoPoint {
	address := raw.Address(s.addressFields)

	point, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.Error("geocoding failed",
			"user", raw.ID(),
			"address", address,
			"error", err,
		)
		return nil
	}
	return point
}

// recreateIndex deletes and recreates the index with the field-table mapping
func (s *SyncService) recreateIndex(ctx context.Context) error {
	if err := s.searchIndex.DeleteIndex(ctx, s.index); err != nil {
		return fmt.Errorf("failed to delete index %s: %w", s.index, err)
	}

	if err := s.searchIndex.CreateIndex(ctx, s.index, s.mapping); err != nil {
		return fmt.Errorf("failed to create index %s: %w", s.index, err)
	}

	return nil
}

// ensureIndexExists creates the index if it doesn't exist
func (s *SyncService) ensureIndexExists(ctx context.Context) error {
	exists, err := s.searchIndex.IndexExists(ctx, s.index)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if !exists {
		if err := s.searchIndex.CreateIndex(ctx, s.index, s.mapping); err != nil {
			return fmt.Errorf("failed to create index %s: %w", s.index, err)
		}
	}

	return nil
}
