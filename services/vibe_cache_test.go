package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rpupo63/chameleon-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	mu      sync.Mutex
	presets []models.VibeConfig
	err     error
	delay   time.Duration
	calls   atomic.Int32
}

func (f *fakeLoader) FindAllOrdered(ctx context.Context) ([]models.VibeConfig, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.VibeConfig, len(f.presets))
	copy(out, f.presets)
	return out, nil
}

func (f *fakeLoader) set(presets []models.VibeConfig, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presets = presets
	f.err = err
}

func presets(positions ...int) []models.VibeConfig {
	out := make([]models.VibeConfig, 0, len(positions))
	for _, p := range positions {
		out = append(out, models.VibeConfig{SliderPosition: p})
	}
	return out
}

func TestVibeCache_BeforeInit(t *testing.T) {
	cache := NewVibeCache(&fakeLoader{})

	assert.False(t, cache.IsReady())
	assert.NotNil(t, cache.Get())
	assert.Empty(t, cache.Get())
	_, ok := cache.GetByPosition(50)
	assert.False(t, ok)
}

func TestVibeCache_Init(t *testing.T) {
	loader := &fakeLoader{presets: presets(0, 25, 50, 75, 100)}
	cache := NewVibeCache(loader)

	require.NoError(t, cache.Init(context.Background()))
	assert.True(t, cache.IsReady())
	assert.Len(t, cache.Get(), 5)

	got, ok := cache.GetByPosition(60)
	require.True(t, ok)
	assert.Equal(t, 50, got.SliderPosition)

	require.NoError(t, cache.Init(context.Background()))
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestVibeCache_InitError(t *testing.T) {
	boom := errors.New("connection refused")
	cache := NewVibeCache(&fakeLoader{err: boom})

	err := cache.Init(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, cache.IsReady())
}

func TestVibeCache_EmptyStoreIsNotReady(t *testing.T) {
	cache := NewVibeCache(&fakeLoader{})

	require.NoError(t, cache.Init(context.Background()))
	assert.False(t, cache.IsReady())
	assert.NotNil(t, cache.Get())
}

func TestVibeCache_ConcurrentInitIssuesOneQuery(t *testing.T) {
	loader := &fakeLoader{presets: presets(0, 100), delay: 20 * time.Millisecond}
	cache := NewVibeCache(loader)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cache.Init(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loader.calls.Load())
	assert.Len(t, cache.Get(), 2)
}

func TestVibeCache_Refresh(t *testing.T) {
	loader := &fakeLoader{presets: presets(0, 100)}
	cache := NewVibeCache(loader)
	require.NoError(t, cache.Init(context.Background()))

	loader.set(presets(0, 50, 100), nil)
	require.NoError(t, cache.Refresh(context.Background()))
	assert.Len(t, cache.Get(), 3)
}

func TestVibeCache_FailedRefreshDiscardsSnapshot(t *testing.T) {
	loader := &fakeLoader{presets: presets(0, 100)}
	cache := NewVibeCache(loader)
	require.NoError(t, cache.Init(context.Background()))

	loader.set(nil, errors.New("timeout"))
	assert.Error(t, cache.Refresh(context.Background()))
	assert.False(t, cache.IsReady())
	assert.Empty(t, cache.Get())

	loader.set(presets(0), nil)
	require.NoError(t, cache.Init(context.Background()))
	assert.True(t, cache.IsReady())
}

func TestVibeCache_ReadersNeverSeePartialSnapshot(t *testing.T) {
	small := presets(0, 100)
	large := presets(0, 25, 50, 75, 100)
	loader := &fakeLoader{presets: small}
	cache := NewVibeCache(loader)
	require.NoError(t, cache.Init(context.Background()))

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				n := len(cache.Get())
				if n != len(small) && n != len(large) {
					t.Errorf("observed snapshot of length %d during refresh", n)
					return
				}
				if !cache.IsReady() {
					t.Error("cache reported not ready during refresh")
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			loader.set(large, nil)
		} else {
			loader.set(small, nil)
		}
		require.NoError(t, cache.Refresh(context.Background()))
	}
	close(stop)
	wg.Wait()
}

func TestVibeCache_RefreshKeepsServingOldSnapshot(t *testing.T) {
	loader := &fakeLoader{presets: presets(0, 100)}
	cache := NewVibeCache(loader)
	require.NoError(t, cache.Init(context.Background()))

	loader.delay = 200 * time.Millisecond
	loader.set(presets(0, 50, 100), nil)

	done := make(chan error, 1)
	go func() { done <- cache.Refresh(context.Background()) }()

	require.Eventually(t, func() bool { return loader.calls.Load() == 2 }, time.Second, time.Millisecond)
	assert.Len(t, cache.Get(), 2)
	assert.True(t, cache.IsReady())
	got, ok := cache.GetByPosition(60)
	require.True(t, ok)
	assert.Equal(t, 100, got.SliderPosition)

	require.NoError(t, <-done)
	assert.Len(t, cache.Get(), 3)
	got, _ = cache.GetByPosition(60)
	assert.Equal(t, 50, got.SliderPosition)
}
