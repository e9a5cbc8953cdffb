package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnavailable is returned when the catalog provider cannot be reached or
// answers with a non-success status.
var ErrUnavailable = errors.New("tmdb: source unavailable")

// ErrMalformed is returned when the provider answers with a payload that
// cannot be decoded.
var ErrMalformed = errors.New("tmdb: malformed payload")

// Movie is a single catalog record as returned by the provider. The id is
// provider-assigned and stable across pages and runs.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// Client defines the contract for pulling catalog pages from the provider.
type Client interface {
	NowPlaying(ctx context.Context, page int) ([]Movie, error)
}

// HTTPClient implements Client over HTTP with bearer-token auth. Transport
// security relies on the platform's trusted certificate store.
type HTTPClient struct {
	baseURL *url.URL
	token   string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTPClient constructs a new HTTP-backed catalog provider client.
func NewHTTPClient(baseURL, token string, timeout time.Duration, logger *log.Logger) (*HTTPClient, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	return &HTTPClient{
		baseURL: parsed,
		token:   token,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// NowPlaying retrieves one page of now-playing catalog records.
func (c *HTTPClient) NowPlaying(ctx context.Context, page int) ([]Movie, error) {
	rel := &url.URL{Path: c.baseURL.Path + "/movie/now_playing"}
	q := rel.Query()
	q.Set("page", strconv.Itoa(page))
	rel.RawQuery = q.Encode()
	endpoint := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("tmdb: unexpected status %d for now_playing page %d", resp.StatusCode, page)
		return nil, fmt.Errorf("%w: upstream returned %d", ErrUnavailable, resp.StatusCode)
	}

	var payload pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode now_playing page: %v", ErrMalformed, err)
	}
	return payload.Results, nil
}

type pageResponse struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}
