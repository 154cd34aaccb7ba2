// Package tmdb talks to The Movie Database v3 REST API.
//
// Every fetch is a single attempt. Failures (transport errors, non-2xx
// statuses, undecodable bodies) are logged and reported to the caller as
// absence, which callers treat exactly like an empty result.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sebastiantruijens/moviefinder/internal/metrics"
)

// DefaultBaseURL is the TMDB v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "moviefinder/1.0 (+https://github.com/sebastiantruijens/moviefinder)"
)

// Params is the query mapping of a request; each key is sent once
type Params map[string]string

// StatusError is returned for a non-success HTTP status
type StatusError struct {
	Resource   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: failed with status code: %d", e.Resource, e.StatusCode)
}

// Client handles interactions with TMDB
type Client struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithLogger sets the logger used for fetch diagnostics
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records fetch outcomes on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLanguage sets the locale used by discover queries
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// NewClient creates a new API client
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	discard := logrus.New()
	discard.Out = io.Discard
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		language: "en-US",
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		log: discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchJSON GETs resource with params and decodes the body into out.
// It reports false on any failure after logging it; it never returns an error.
func (c *Client) FetchJSON(ctx context.Context, resource string, params Params, out any) bool {
	reqID := uuid.NewString()
	start := time.Now()
	log := c.log.WithFields(logrus.Fields{
		"resource":   resource,
		"request_id": reqID,
	})

	err := c.get(ctx, resource, params, out)
	elapsed := time.Since(start)
	if err == nil {
		c.metrics.ObserveFetch(resource, metrics.OutcomeOK, elapsed)
		log.WithField("elapsed", elapsed).Debug("fetch ok")
		return true
	}

	outcome := metrics.OutcomeError
	var se *StatusError
	if errors.As(err, &se) {
		outcome = metrics.OutcomeStatus
		log = log.WithField("status", se.StatusCode)
	}
	c.metrics.ObserveFetch(resource, outcome, elapsed)
	log.WithError(err).WithField("elapsed", elapsed).Warn("fetch failed")
	return false
}

func (c *Client) get(ctx context.Context, resource string, params Params, out any) error {
	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(resource, "/"))
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Resource: resource, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", resource, err)
	}
	return nil
}

// Trending returns this week's trending movies
func (c *Client) Trending(ctx context.Context) []Movie {
	var res movieList
	if !c.FetchJSON(ctx, "trending/movie/week", nil, &res) {
		return nil
	}
	return res.Results
}

// Genres returns the movie genre catalog
func (c *Client) Genres(ctx context.Context) []Genre {
	var res genreList
	if !c.FetchJSON(ctx, "genre/movie/list", nil, &res) {
		return nil
	}
	return res.Genres
}

// DiscoverByGenre returns the first page of the most popular movies in a genre
func (c *Client) DiscoverByGenre(ctx context.Context, genreID int) []Movie {
	var res movieList
	ok := c.FetchJSON(ctx, "discover/movie", Params{
		"with_genres":   strconv.Itoa(genreID),
		"include_adult": "false",
		"language":      c.language,
		"sort_by":       "popularity.desc",
		"page":          "1",
	}, &res)
	if !ok {
		return nil
	}
	return res.Results
}

// Search returns the first page of a free-text movie search
func (c *Client) Search(ctx context.Context, query string) []Movie {
	var res movieList
	ok := c.FetchJSON(ctx, "search/movie", Params{
		"query":         query,
		"include_adult": "false",
		"page":          "1",
	}, &res)
	if !ok {
		return nil
	}
	return res.Results
}

// MovieDetail fetches the full record of a movie, or nil
func (c *Client) MovieDetail(ctx context.Context, id int) *MovieDetail {
	var res MovieDetail
	if !c.FetchJSON(ctx, fmt.Sprintf("movie/%d", id), nil, &res) {
		return nil
	}
	return &res
}

// Credits fetches the credits of a movie, or nil
func (c *Client) Credits(ctx context.Context, id int) *Credits {
	var res Credits
	if !c.FetchJSON(ctx, fmt.Sprintf("movie/%d/credits", id), nil, &res) {
		return nil
	}
	return &res
}
