// Package client is a caching Go client for the portfolio API.
//
// List endpoints are memoized for the life of the Client and degrade to empty
// results when the API is unreachable. Vibe presets are also kept in a
// persistent Store with a one hour lifetime, and a stale copy is preferred
// over an empty result when a refresh fails.
package client

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
	"sync"
	"time"

	"github.com/rpupo63/chameleon-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL = "http://localhost:3001"
	DefaultVibeTTL = time.Hour

	VibeCacheKey          = "vibe_cache"
	VibeCacheTimestampKey = "vibe_cache_timestamp"
)

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func WithStore(store Store) Option {
	return func(c *Client) { c.store = store }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithVibeTTL(ttl time.Duration) Option {
	return func(c *Client) { c.vibeTTL = ttl }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

type Client struct {
	baseURL string
	http    *http.Client
	store   Store
	now     func() time.Time
	vibeTTL time.Duration
	logger  zerolog.Logger

	group       singleflight.Group
	mu          sync.Mutex
	projects    *[]models.Project
	caseStudies *[]models.CaseStudy
	about       *models.About
}

// New creates a Client for the API at baseURL, e.g. http://localhost:3001
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
		vibeTTL: DefaultVibeTTL,
		logger:  log.With().Str("component", "client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewMemoryStore()
	}
	return c
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil && json.Unmarshal(body, &envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}

// memoize returns the cached value in slot, or fetches it once for all
// concurrent callers. Failures are logged and yield empty without being cached.
func memoize[T any](ctx context.Context, c *Client, key string, slot **T, fetch func(context.Context) (T, error), empty T) (T, error) {
	c.mu.Lock()
	if *slot != nil {
		v := **slot
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		if *slot != nil {
			v := **slot
			c.mu.Unlock()
			return v, nil
		}
		c.mu.Unlock()

		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		*slot = &fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return empty, ctxErr
		}
		c.logger.Error().Err(err).Str("resource", key).Msg("Failed to fetch")
		return empty, nil
	}
	return v.(T), nil
}

// Projects returns all projects, newest first
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	return memoize(ctx, c, "projects", &c.projects, func(ctx context.Context) ([]models.Project, error) {
		var resp struct {
			Projects []models.Project `json:"projects"`
		}
		if err := c.getJSON(ctx, "/api/projects", &resp); err != nil {
			return nil, err
		}
		if resp.Projects == nil {
			resp.Projects = []models.Project{}
		}
		return resp.Projects, nil
	}, []models.Project{})
}

// CaseStudies returns all case studies ordered by their index
func (c *Client) CaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	return memoize(ctx, c, "case-studies", &c.caseStudies, func(ctx context.Context) ([]models.CaseStudy, error) {
		var resp struct {
			CaseStudies []models.CaseStudy `json:"caseStudies"`
		}
		if err := c.getJSON(ctx, "/api/case-studies", &resp); err != nil {
			return nil, err
		}
		if resp.CaseStudies == nil {
			resp.CaseStudies = []models.CaseStudy{}
		}
		return resp.CaseStudies, nil
	}, []models.CaseStudy{})
}

// About returns the about content; the zero value when none is available
func (c *Client) About(ctx context.Context) (models.About, error) {
	return memoize(ctx, c, "about", &c.about, func(ctx context.Context) (models.About, error) {
		var about models.About
		err := c.getJSON(ctx, "/api/about", &about)
		return about, err
	}, models.About{})
}

// ProjectByID fetches one project. An id that is not a UUID v4 or an unknown
// project yields (nil, nil); other failures are returned.
func (c *Client) ProjectByID(ctx context.Context, id string) (*models.Project, error) {
	if !models.IsUUIDv4(id) {
		c.logger.Warn().Str("id", id).Msg("Invalid UUID format")
		return nil, nil
	}

	var project models.Project
	err := c.getJSON(ctx, "/api/projects/"+url.PathEscape(id), &project)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Vibes returns the vibe presets, served from the persistent store while the
// cached copy is younger than the TTL
func (c *Client) Vibes(ctx context.Context) ([]models.VibeConfig, error) {
	now := c.now()

	if ts, ok := c.store.Get(VibeCacheTimestampKey); ok {
		if ms, err := strconv.ParseInt(ts, 10, 64); err == nil && now.Sub(time.UnixMilli(ms)) < c.vibeTTL {
			if vibes, ok := c.storedVibes(); ok {
				return vibes, nil
			}
		}
	}

	v, err, _ := c.group.Do("vibes", func() (any, error) {
		var resp struct {
			Vibes []models.VibeConfig `json:"vibes"`
		}
		if err := c.getJSON(ctx, "/api/vibes", &resp); err != nil {
			return nil, err
		}
		if resp.Vibes == nil {
			resp.Vibes = []models.VibeConfig{}
		}

		payload, err := json.Marshal(resp.Vibes)
		if err == nil {
			err = c.store.Set(VibeCacheKey, string(payload))
		}
		if err == nil {
			err = c.store.Set(VibeCacheTimestampKey, strconv.FormatInt(now.UnixMilli(), 10))
		}
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to persist vibe cache")
		}
		return resp.Vibes, nil
	})
	if err == nil {
		return v.([]models.VibeConfig), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return []models.VibeConfig{}, ctxErr
	}
	c.logger.Error().Err(err).Msg("Failed to fetch vibes")
	if vibes, ok := c.storedVibes(); ok {
		return vibes, nil
	}
	return []models.VibeConfig{}, nil
}

func (c *Client) storedVibes() ([]models.VibeConfig, bool) {
	payload, ok := c.store.Get(VibeCacheKey)
	if !ok {
		return nil, false
	}
	var vibes []models.VibeConfig
	if err := json.Unmarshal([]byte(payload), &vibes); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to parse cached vibes")
		return nil, false
	}
	if vibes == nil {
		vibes = []models.VibeConfig{}
	}
	return vibes, true
}

// ClearCaches drops every memoized result and the persisted vibe presets
func (c *Client) ClearCaches() {
	c.mu.Lock()
	c.projects = nil
	c.caseStudies = nil
	c.about = nil
	c.mu.Unlock()

	for _, key := range []string{VibeCacheKey, VibeCacheTimestampKey} {
		if err := c.store.Delete(key); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("Failed to clear cache entry")
		}
	}
}

// Prefetch warms every cache concurrently
func (c *Client) Prefetch(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := c.Projects(ctx); return err })
	g.Go(func() error { _, err := c.CaseStudies(ctx); return err })
	g.Go(func() error { _, err := c.About(ctx); return err })
	g.Go(func() error { _, err := c.Vibes(ctx); return err })
	return g.Wait()
}
