package root

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"founderos/internal/config"
	"founderos/internal/founder"
	"founderos/internal/localcache"
	"founderos/internal/remote"
	"founderos/internal/syncer"
	"founderos/internal/tracker"
)

// app bundles everything a command needs: config, the state container, and
// the persistence pipeline behind it. sync is nil when no remote is
// configured and the app runs cache-only.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	cache  *localcache.Cache
	sync   *syncer.Syncer
	svc    *tracker.Service
}

// openApp loads config, opens the local cache, runs the startup merge
// against the remote store when one is configured, and wires the tracker to
// the persistence listener. The returned cleanup closes everything.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cfg.Log.Level)

	cachePath := cfg.Cache.Path
	if cachePath == "" {
		cachePath, err = localcache.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	cache, err := localcache.Open(cachePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open local cache: %w", err)
	}

	a := &app{cfg: cfg, logger: logger, cache: cache}

	var loaded syncer.LoadResult
	if cfg.Remote.URL != "" {
		client := remote.NewClient(cfg.Remote.URL, logger)
		a.sync = syncer.New(cache, client, cfg.Sync.SaveDelay, logger)
		loaded, err = a.sync.Start(ctx)
		if err != nil {
			cache.Close()
			return nil, nil, err
		}
	} else {
		raw, legacy, err := cache.Read(ctx)
		if err != nil {
			cache.Close()
			return nil, nil, fmt.Errorf("read local cache: %w", err)
		}
		loaded = syncer.LoadResult{Raw: raw, Legacy: legacy}
	}

	var doc *founder.Document
	if loaded.Legacy {
		doc, err = founder.OverlayLegacy(loaded.Raw)
	} else {
		doc, err = founder.Overlay(loaded.Raw)
	}
	if err != nil {
		logger.Warn("stored document unreadable, starting fresh", "error", err)
		doc = founder.Defaults()
	}

	a.svc = tracker.New(doc, logger)
	if a.sync != nil {
		a.svc.SetListener(a.sync)
	} else {
		a.svc.SetListener(cacheWriter{cache: cache, logger: logger})
	}

	cleanup := func() {
		if a.sync != nil {
			a.sync.Close()
		}
		_ = cache.Close()
	}
	return a, cleanup, nil
}

// flush pushes any pending remote write before a one-shot command exits.
func (a *app) flush(ctx context.Context) {
	if a.sync != nil {
		a.sync.Flush(ctx)
	}
}

func (a *app) syncStatus() string {
	if a.sync == nil {
		return "local"
	}
	return string(a.sync.Status())
}

// cacheWriter persists snapshots to the local cache only, for runs without
// a remote store.
type cacheWriter struct {
	cache  *localcache.Cache
	logger *slog.Logger
}

func (w cacheWriter) DocumentChanged(snapshot []byte) {
	if err := w.cache.Write(context.Background(), snapshot); err != nil {
		w.logger.Error("cache write failed", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
