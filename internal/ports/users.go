package ports

import (
	"context"

	"github.com/elasticboard/elasticboard/internal/domain"
)

// UserSource defines the interface for fetching user records from the
// directory service.
type UserSource interface {
	// ListUsers retrieves all users, optionally narrowed by an email filter.
	// The result is fully materialized; one call covers the whole run.
	ListUsers(ctx context.Context, emailFilter string) ([]domain.RawUser, error)
}
