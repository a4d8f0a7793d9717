// Package syncer owns the dual-write persistence policy: every document
// change lands in the local cache synchronously, while remote writes are
// debounced behind a quiet period and coalesced. It also runs the startup
// merge between the two backends and exposes the sync status the UI shows.
package syncer

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Status is the observable sync state. It never gates local mutation.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusSynced  Status = "synced"
	StatusError   Status = "error"
)

// Cache is the synchronous local backend.
type Cache interface {
	Read(ctx context.Context) (value []byte, legacy bool, err error)
	Write(ctx context.Context, value []byte) error
	Clear(ctx context.Context) error
}

// Remote is the asynchronous document store.
type Remote interface {
	Setup(ctx context.Context) error
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, document []byte) bool
}

// LoadResult is the document chosen by the startup merge. A nil Raw means
// neither backend held anything and the caller starts from defaults. Legacy
// marks data read from the pre-v3 cache key, which needs migration.
type LoadResult struct {
	Raw    []byte
	Legacy bool
}

// Syncer coordinates the two backends. It implements tracker.Listener.
type Syncer struct {
	cache  Cache
	remote Remote
	delay  time.Duration
	logger *slog.Logger

	mu     sync.Mutex
	timer  *time.Timer
	latest []byte
	dirty  bool
	status Status
	closed bool
}

// New creates a syncer. delay is the remote quiet period; the app default
// is two seconds.
func New(cache Cache, remote Remote, delay time.Duration, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Syncer{
		cache:  cache,
		remote: remote,
		delay:  delay,
		logger: logger,
		status: StatusIdle,
	}
}

// Status returns the current sync state.
func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Syncer) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Start runs the load-time merge policy and returns the winning document.
//
// A non-empty remote document is authoritative: it overwrites the local
// cache. An empty remote store is seeded from the local cache. A remote
// failure falls back silently to the cache and marks the status errored;
// the app stays fully usable offline. A context cancelled across the remote
// round-trip drops the result so a late response cannot clobber newer state.
func (s *Syncer) Start(ctx context.Context) (LoadResult, error) {
	if err := s.remote.Setup(ctx); err != nil {
		s.logger.Warn("remote setup failed, using local cache", "error", err)
		return s.fallbackLocal(ctx)
	}

	raw, err := s.remote.Load(ctx)
	if ctx.Err() != nil {
		return LoadResult{}, ctx.Err()
	}
	if err != nil {
		s.logger.Warn("remote load failed, using local cache", "error", err)
		return s.fallbackLocal(ctx)
	}

	if raw != nil {
		if err := s.cache.Write(ctx, raw); err != nil {
			s.logger.Warn("cache write failed", "error", err)
		}
		s.setStatus(StatusSynced)
		return LoadResult{Raw: raw}, nil
	}

	// Remote store is empty: seed it from whatever the cache holds.
	local, legacy, err := s.cache.Read(ctx)
	if err != nil {
		s.logger.Warn("cache read failed", "error", err)
		s.setStatus(StatusError)
		return LoadResult{}, nil
	}
	if local != nil {
		if s.remote.Save(ctx, local) {
			s.setStatus(StatusSynced)
		} else {
			s.setStatus(StatusError)
		}
		return LoadResult{Raw: local, Legacy: legacy}, nil
	}
	s.setStatus(StatusSynced)
	return LoadResult{}, nil
}

func (s *Syncer) fallbackLocal(ctx context.Context) (LoadResult, error) {
	s.setStatus(StatusError)
	local, legacy, err := s.cache.Read(ctx)
	if err != nil {
		s.logger.Warn("cache read failed", "error", err)
		return LoadResult{}, nil
	}
	return LoadResult{Raw: local, Legacy: legacy}, nil
}

// DocumentChanged persists a new document snapshot: the cache write happens
// now, the remote write after the quiet period. Rapid changes replace the
// pending timer rather than stacking, and the remote payload is whatever is
// latest when the timer fires.
func (s *Syncer) DocumentChanged(snapshot []byte) {
	if err := s.cache.Write(context.Background(), snapshot); err != nil {
		s.logger.Error("cache write failed", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.latest = snapshot
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *Syncer) fire() {
	s.mu.Lock()
	if !s.dirty || s.closed {
		s.mu.Unlock()
		return
	}
	payload := s.latest
	s.dirty = false
	s.status = StatusSyncing
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if s.remote.Save(ctx, payload) {
		s.setStatus(StatusSynced)
	} else {
		s.setStatus(StatusError)
	}
}

// Flush cancels any pending quiet period and pushes the latest document to
// the remote store immediately. One-shot CLI commands call this before exit
// so a debounced save is never lost.
func (s *Syncer) Flush(ctx context.Context) bool {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.dirty {
		s.mu.Unlock()
		return true
	}
	payload := s.latest
	s.dirty = false
	s.status = StatusSyncing
	s.mu.Unlock()

	if s.remote.Save(ctx, payload) {
		s.setStatus(StatusSynced)
		return true
	}
	s.setStatus(StatusError)
	return false
}

// Reset clears both backends and seeds them with defaults. The remote write
// is best-effort; a failure leaves the status errored and the local state
// already reset.
func (s *Syncer) Reset(ctx context.Context, defaults []byte) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.dirty = false
	s.latest = defaults
	s.mu.Unlock()

	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("cache clear failed", "error", err)
	}
	if err := s.cache.Write(ctx, defaults); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}
	if s.remote.Save(ctx, defaults) {
		s.setStatus(StatusSynced)
	} else {
		s.setStatus(StatusError)
	}
}

// Close stops any pending save timer. Pending work can be pushed out first
// with Flush.
func (s *Syncer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
