package presentation

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/chennai-a11y/prefsync/internal/shared/goroutine"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// Tab is one open page. It applies the cached settings when loaded and again
// whenever another tab of the same origin changes them.
type Tab struct {
	id     string
	cache  Cache
	logger logger.Interface

	// mu serializes Load, Save and event reactions.
	mu      sync.Mutex
	doc     *Document
	onApply func(State)
}

func NewTab(cache Cache, log logger.Interface) *Tab {
	id := uuid.NewString()
	return &Tab{
		id:     id,
		cache:  cache,
		logger: log.With("tab", id),
		doc:    NewDocument(),
	}
}

func (t *Tab) ID() string { return t.id }

// OnApply registers fn to observe the state after every application. It must
// be set before Load or Start.
func (t *Tab) OnApply(fn func(State)) {
	t.mu.Lock()
	t.onApply = fn
	t.mu.Unlock()
}

// State returns the current presentation state.
func (t *Tab) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doc.Snapshot()
}

// Load applies the cached settings, if any. A page with nothing cached keeps
// its initial state.
func (t *Tab) Load(ctx context.Context) error {
	return t.refresh(ctx)
}

// Save applies raw to this tab and writes it to the shared cache, which
// notifies every other tab. mu is held until the write lands so a refresh
// cannot apply the previous cache value over this edit.
func (t *Tab) Save(ctx context.Context, raw []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	Apply(t.doc, raw)
	t.notifyLocked()

	if err := t.cache.Set(ctx, t.id, SettingsKey, raw); err != nil {
		return fmt.Errorf("failed to write settings cache: %w", err)
	}
	return nil
}

// Start subscribes to storage events and reacts to them in the background
// until ctx ends. The returned channel is closed when the tab stops.
func (t *Tab) Start(ctx context.Context) (<-chan struct{}, error) {
	events, err := t.cache.Subscribe(ctx, t.id)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to storage events: %w", err)
	}

	done := goroutine.SafeGoDone(t.logger, "presentation-tab", func() {
		t.watch(ctx, events)
	})
	return done, nil
}

// Run is Start followed by waiting for the tab to stop.
func (t *Tab) Run(ctx context.Context) error {
	done, err := t.Start(ctx)
	if err != nil {
		return err
	}
	<-done
	return nil
}

func (t *Tab) watch(ctx context.Context, events <-chan StorageEvent) {
	for ev := range events {
		if ev.Key != SettingsKey {
			continue
		}
		if err := t.refresh(ctx); err != nil {
			t.logger.Warnw("failed to refresh settings after storage event",
				"source", ev.Source,
				"error", err,
			)
		}
	}
}

// refresh holds mu across the read so a slower reaction cannot apply an
// older value over a newer one.
func (t *Tab) refresh(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	raw, ok, err := t.cache.Get(ctx, SettingsKey)
	if err != nil {
		return fmt.Errorf("failed to read settings cache: %w", err)
	}
	if !ok {
		return nil
	}

	Apply(t.doc, raw)
	t.notifyLocked()
	return nil
}

func (t *Tab) notifyLocked() {
	if t.onApply != nil {
		t.onApply(t.doc.Snapshot())
	}
}
