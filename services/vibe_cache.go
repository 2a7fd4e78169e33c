package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rpupo63/chameleon-site/models"
	"github.com/rpupo63/chameleon-site/vibe"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// VibeLoader reads every vibe preset ordered by slider position
type VibeLoader interface {
	FindAllOrdered(ctx context.Context) ([]models.VibeConfig, error)
}

// VibeCache holds an immutable snapshot of the vibe presets. Readers never
// block; a reload swaps the snapshot wholesale.
type VibeCache struct {
	loader   VibeLoader
	snapshot atomic.Pointer[[]models.VibeConfig]
	loadMu   sync.Mutex
	logger   zerolog.Logger
}

func NewVibeCache(loader VibeLoader) *VibeCache {
	return &VibeCache{
		loader: loader,
		logger: log.With().Str("serviceName", "VibeCache").Logger(),
	}
}

// Init loads the presets unless some are already cached. Concurrent callers
// on an empty cache share a single query.
func (c *VibeCache) Init(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if c.IsReady() {
		return nil
	}
	return c.load(ctx)
}

// Refresh reloads the presets. Readers keep the previous snapshot until the
// new one is swapped in. When the reload fails the snapshot is dropped and
// the cache stays empty until the next successful load.
func (c *VibeCache) Refresh(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if err := c.load(ctx); err != nil {
		c.snapshot.Store(nil)
		return err
	}
	return nil
}

// load must be called with loadMu held
func (c *VibeCache) load(ctx context.Context) error {
	presets, err := c.loader.FindAllOrdered(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load vibe configs")
		return err
	}
	if presets == nil {
		presets = []models.VibeConfig{}
	}
	c.snapshot.Store(&presets)
	c.logger.Info().Int("count", len(presets)).Msg("Vibe cache loaded")
	return nil
}

// Get returns the cached presets. The slice is shared and must not be modified.
func (c *VibeCache) Get() []models.VibeConfig {
	if p := c.snapshot.Load(); p != nil {
		return *p
	}
	return []models.VibeConfig{}
}

// GetByPosition returns the preset nearest to position
func (c *VibeCache) GetByPosition(position int) (models.VibeConfig, bool) {
	return vibe.Nearest(c.Get(), position)
}

// IsReady reports whether at least one preset is cached
func (c *VibeCache) IsReady() bool {
	return len(c.Get()) > 0
}
