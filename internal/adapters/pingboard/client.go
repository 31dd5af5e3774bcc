package pingboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/elasticboard/elasticboard/internal/domain"
)

// Client implements the UserSource interface for the Pingboard API.
type Client struct {
	baseURL    string
	pageSize   int
	creds      clientcredentials.Config
	token      *oauth2.Token
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new Pingboard client. Authenticate must be called before any
// data request.
func New(baseURL, clientID, clientSecret string, pageSize int, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, clientID, clientSecret, pageSize, &http.Client{
		Timeout: timeout,
	})
}

// NewWithHTTPClient creates a new Pingboard client with a custom HTTP client.
// This constructor is primarily intended for testing purposes.
func NewWithHTTPClient(baseURL, clientID, clientSecret string, pageSize int, httpClient *http.Client) *Client {
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		creds: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     baseURL + "/oauth/token",
		},
		httpClient: httpClient,
		logger:     slog.Default().With("component", "pingboard"),
	}
}

// Authenticate exchanges the client credentials for a bearer token. All
// subsequent requests carry the token.
func (c *Client) Authenticate(ctx context.Context) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.creds.Token(ctx)
	if err != nil {
		return &AuthError{Err: err}
	}
	c.token = token

	c.logger.DebugContext(ctx, "obtained access token", "expires", token.Expiry)
	return nil
}

// doRequest performs an authenticated HTTP request
func (c *Client) doRequest(ctx context.Context, method, rawURL string) ([]byte, error) {
	if c.token == nil {
		return nil, &FetchError{URL: rawURL, Err: errors.New("client is not authenticated")}
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	c.token.SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "Making HTTP request",
		"method", method,
		"url", rawURL,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "HTTP request failed",
			"status", resp.StatusCode,
			"url", rawURL,
			"body", string(body),
		)
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	return body, nil
}

// UsersAPIResponse is the envelope of the users endpoint response.
type UsersAPIResponse struct {
	Users []domain.RawUser `json:"users"`
}

// ListUsers retrieves all users in a single page-size-capped request,
// optionally narrowed by an email filter.
func (c *Client) ListUsers(ctx context.Context, emailFilter string) ([]domain.RawUser, error) {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(c.pageSize))
	if emailFilter != "" {
		q.Set("email", emailFilter)
	}
	usersURL := c.baseURL + "/api/v2/users?" + q.Encode()

	c.logger.InfoContext(ctx, "Fetching users from Pingboard API", "emailFilter", emailFilter)

	body, err := c.doRequest(ctx, http.MethodGet, usersURL)
	if err != nil {
		return nil, err
	}

	var response UsersAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal users response",
			"error", err,
			"body", string(body),
		)
		return nil, &FetchError{URL: usersURL, Err: fmt.Errorf("failed to unmarshal users: %w", err)}
	}

	for _, user := range response.Users {
		c.logger.DebugContext(ctx, "fetched user", "id", user.ID())
	}

	c.logger.InfoContext(ctx, "Successfully fetched users", "count", len(response.Users))

	return response.Users, nil
}
