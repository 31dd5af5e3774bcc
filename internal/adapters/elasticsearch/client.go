package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/elasticboard/elasticboard/internal/domain"
)

// Client implements the SearchIndex interface for Elasticsearch operations.
type Client struct {
	es     *elasticsearch.Client
	logger *slog.Logger
}

// New creates a new Elasticsearch client and verifies connectivity.
func New(hosts []string, username, password string) (*Client, error) {
	cfg := elasticsearch.Config{
		Addresses: hosts,
	}

	// Add authentication if credentials are provided
	if username != "" && password != "" {
		cfg.Username = username
		cfg.Password = password
	}

	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	// Verify connection
	res, err := es.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch connection error: %s - %s", res.Status(), string(body))
	}

	logger := slog.Default().With("component", "elasticsearch")
	logger.Info("connected to elasticsearch", "hosts", hosts, "authenticated", username != "")

	return &Client{
		es:     es,
		logger: logger,
	}, nil
}

// Upsert writes the document under the given id, replacing any previous
// document with the same id.
func (c *Client) Upsert(ctx context.Context, indexName, id string, doc domain.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", id, err)
	}

	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: id,
		Body:       bytes.NewReader(body),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to index document %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		resBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("index document error: %s - %s", res.Status(), string(resBody))
	}

	c.logger.Debug("indexed document", "index", indexName, "id", id)
	return nil
}

// DeleteIndex removes an index from Elasticsearch.
func (c *Client) DeleteIndex(ctx context.Context, indexName string) error {
	req := esapi.IndicesDeleteRequest{
		Index: []string{indexName},
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to delete index %s: %w", indexName, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		// 404 is acceptable - index already doesn't exist
		if res.StatusCode == http.StatusNotFound {
			c.logger.Info("index does not exist (already deleted)", "index", indexName)
			return nil
		}

		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("delete index error: %s - %s", res.Status(), string(body))
	}

	c.logger.Info("deleted index", "index", indexName)
	return nil
}

// CreateIndex creates a new index with the specified mapping. An index that
// already exists is left untouched.
func (c *Client) CreateIndex(ctx context.Context, indexName string, mapping string) error {
	req := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mapping),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", indexName, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)

		// 400 with resource_already_exists means a concurrent or previous run
		// created the index; not an error for this job
		if res.StatusCode == http.StatusBadRequest && strings.Contains(string(body), "resource_already_exists_exception") {
			c.logger.Info("index already exists", "index", indexName)
			return nil
		}

		return fmt.Errorf("create index error: %s - %s", res.Status(), string(body))
	}

	c.logger.Info("created index", "index", indexName)
	return nil
}

// IndexExists checks if an index exists in Elasticsearch.
func (c *Client) IndexExists(ctx context.Context, indexName string) (bool, error) {
	req := esapi.IndicesExistsRequest{
		Index: []string{indexName},
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return false, fmt.Errorf("failed to check if index exists %s: %w", indexName, err)
	}
	defer res.Body.Close()

	// 200 = exists, 404 = does not exist
	if res.StatusCode == http.StatusOK {
		return true, nil
	}
	if res.StatusCode == http.StatusNotFound {
		return false, nil
	}

	// Any other status is an error
	body, _ := io.ReadAll(res.Body)
	return false, fmt.Errorf("index exists check error: %s - %s", res.Status(), string(body))
}
