package ports

import (
	"context"

	"github.com/elasticboard/elasticboard/internal/domain"
)

// SearchIndex defines the index operations used by a sync run.
type SearchIndex interface {
	// CreateIndex creates an index with the given mapping. An index that
	// already exists is not an error.
	CreateIndex(ctx context.Context, indexName string, mapping string) error

	// DeleteIndex removes an index. A missing index is not an error.
	DeleteIndex(ctx context.Context, indexName string) error

	// IndexExists checks whether an index exists.
	IndexExists(ctx context.Context, indexName string) (bool, error)

	// Upsert writes the document under the given id, replacing any previous
	// document with the same id.
	Upsert(ctx context.Context, indexName string, id string, doc domain.Document) error
}
