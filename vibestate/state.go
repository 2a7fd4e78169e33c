// Package vibestate owns the slider position and the loaded vibe presets on
// the client side, and derives the current vibe from them.
package vibestate

import (
	"context"
	"errors"
	"sync"

	"github.com/rpupo63/chameleon-site/models"
	"github.com/rpupo63/chameleon-site/vibe"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrSuperseded is returned by a Load whose result was discarded because a
// newer Load was issued before it finished
var ErrSuperseded = errors.New("vibe load superseded by a newer load")

// Fetcher loads the vibe presets
type Fetcher interface {
	Vibes(ctx context.Context) ([]models.VibeConfig, error)
}

// Snapshot is a consistent view of the state passed to subscribers
type Snapshot struct {
	Position int
	Presets  []models.VibeConfig
	Current  *models.VibeConfig
	Loading  bool
}

type Option func(*State)

func WithInitialPosition(position int) Option {
	return func(s *State) { s.position = vibe.Clamp(position) }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *State) { s.logger = logger }
}

type State struct {
	fetcher Fetcher
	logger  zerolog.Logger

	mu          sync.Mutex
	position    int
	presets     []models.VibeConfig
	loading     bool
	loadSeq     uint64
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// New creates a State at the middle of the slider. Loading reports true
// until the first Load resolves.
func New(fetcher Fetcher, opts ...Option) *State {
	s := &State{
		fetcher:     fetcher,
		logger:      log.With().Str("component", "vibestate").Logger(),
		position:    vibe.DefaultPosition,
		presets:     []models.VibeConfig{},
		loading:     true,
		subscribers: map[int]func(Snapshot){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetPosition moves the slider, clamping to [0, 100]
func (s *State) SetPosition(position int) {
	clamped := vibe.Clamp(position)
	if clamped != position {
		s.logger.Debug().Int("position", position).Int("clamped", clamped).Msg("Slider position clamped")
	}

	s.mu.Lock()
	if s.position == clamped {
		s.mu.Unlock()
		return
	}
	s.position = clamped
	snapshot, subscribers := s.snapshotLocked()
	s.mu.Unlock()

	notify(subscribers, snapshot)
}

func (s *State) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *State) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Presets returns a copy of the loaded presets
func (s *State) Presets() []models.VibeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.VibeConfig, len(s.presets))
	copy(out, s.presets)
	return out
}

// Current returns the preset nearest to the slider position
func (s *State) Current() (models.VibeConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return vibe.Nearest(s.presets, s.position)
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, _ := s.snapshotLocked()
	return snapshot
}

// Load fetches the presets. Only the most recently issued Load may apply its
// result; earlier ones return ErrSuperseded. On a fetch error the previous
// presets are kept.
func (s *State) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.loading = true
	s.mu.Unlock()

	presets, err := s.fetcher.Vibes(ctx)

	s.mu.Lock()
	if seq != s.loadSeq {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.loading = false
	if err == nil {
		if presets == nil {
			presets = []models.VibeConfig{}
		}
		s.presets = presets
	}
	snapshot, subscribers := s.snapshotLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load vibes")
	}
	notify(subscribers, snapshot)
	return err
}

// OnChange registers fn to run after every position or preset change. The
// returned function removes it.
func (s *State) OnChange(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// snapshotLocked must be called with mu held
func (s *State) snapshotLocked() (Snapshot, []func(Snapshot)) {
	snapshot := Snapshot{Position: s.position, Presets: s.presets, Loading: s.loading}
	if current, ok := vibe.Nearest(s.presets, s.position); ok {
		snapshot.Current = &current
	}

	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subscribers = append(subscribers, fn)
		}
	}
	return snapshot, subscribers
}

func notify(subscribers []func(Snapshot), snapshot Snapshot) {
	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// Theme returns a subscriber that applies the current vibe to setter
func Theme(setter vibe.PropertySetter) func(Snapshot) {
	return func(snapshot Snapshot) {
		if snapshot.Current == nil {
			return
		}
		cfg := snapshot.Current.Style()
		vibe.Apply(setter, &cfg)
	}
}
