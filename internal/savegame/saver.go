package savegame

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/CookieClicker_Go/internal/config"
	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/logger"
	"github.com/osse101/CookieClicker_Go/internal/metrics"
	"github.com/osse101/CookieClicker_Go/internal/scheduler"
	"github.com/osse101/CookieClicker_Go/internal/storage"
	"github.com/osse101/CookieClicker_Go/internal/worker"
)

// Source hands out state snapshots to persist
type Source interface {
	Snapshot() domain.GameState
}

// LoadResult describes how a load went
type LoadResult struct {
	Found       bool
	FieldErrors []FieldError
	Err         error
}

// Defaulted lists the fields that fell back to defaults
func (r LoadResult) Defaulted() []string {
	fields := make([]string, len(r.FieldErrors))
	for i, fe := range r.FieldErrors {
		fields[i] = fe.Field
	}
	return fields
}

// Saver persists snapshots of a Source according to a save mode:
//   - immediate saves as soon as possible after every change
//   - debounced saves once changes have been quiet for the interval; only
//     player actions restart the delay, so steady production still saves
//   - periodic saves every interval when something changed
//
// Saves are serialized. A failed save is logged and counted, never retried.
type Saver struct {
	store    storage.Adapter
	codec    *Codec
	source   Source
	mode     string
	interval time.Duration
	tracer   trace.Tracer

	mu      sync.Mutex
	dirty   bool
	closed  bool
	timer   *time.Timer
	pending bool

	saveMu   sync.Mutex
	inflight sync.WaitGroup

	pool  *worker.Pool
	sched *scheduler.Scheduler
}

// Option configures a Saver
type Option func(*Saver)

// WithMode sets the save mode
func WithMode(mode string) Option {
	return func(s *Saver) {
		s.mode = mode
	}
}

// WithInterval sets the debounce delay or periodic interval
func WithInterval(d time.Duration) Option {
	return func(s *Saver) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithTracerProvider sets where persistence spans go
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Saver) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewSaver creates a saver. Periodic mode starts its schedule immediately.
func NewSaver(store storage.Adapter, codec *Codec, source Source, opts ...Option) (*Saver, error) {
	s := &Saver{
		store:    store,
		codec:    codec,
		source:   source,
		mode:     config.DefaultSaveMode,
		interval: DefaultSaveInterval,
		tracer:   otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}

	switch s.mode {
	case config.SaveModeImmediate, config.SaveModeDebounced:
	case config.SaveModePeriodic:
		s.pool = worker.NewPool(1, 1)
		s.pool.Start()
		s.sched = scheduler.New(s.pool)
		s.sched.Every(s.interval, s.saveIfDirty)
	default:
		return nil, fmt.Errorf("unknown save mode %q", s.mode)
	}
	return s, nil
}

// Mode returns the configured save mode
func (s *Saver) Mode() string {
	return s.mode
}

// MarkDirty records a state change. userAction distinguishes player input
// from passive production.
func (s *Saver) MarkDirty(userAction bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.dirty = true

	switch s.mode {
	case config.SaveModeImmediate:
		s.scheduleLocked(0, false)
	case config.SaveModeDebounced:
		s.scheduleLocked(s.interval, userAction)
	}
}

// scheduleLocked arms the save timer. When restart is false a pending
// timer is left alone.
func (s *Saver) scheduleLocked(delay time.Duration, restart bool) {
	if s.pending {
		if !restart {
			return
		}
		if !s.timer.Stop() {
			// already fired and waiting on mu; it will save the latest state
			return
		}
	}
	s.pending = true
	s.timer = time.AfterFunc(delay, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	s.pending = false
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.inflight.Add(1)
	s.mu.Unlock()

	defer s.inflight.Done()
	_ = s.saveIfDirty(context.Background())
}

// Dirty reports whether there are unsaved changes
func (s *Saver) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Saver) saveIfDirty(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	// changes made while saving mark it dirty again
	s.dirty = false
	s.mu.Unlock()

	return s.save(ctx)
}

// Save persists the current snapshot now regardless of the dirty flag
func (s *Saver) Save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	return s.save(ctx)
}

func (s *Saver) save(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "savegame.Save", trace.WithAttributes(
		attribute.String("savegame.namespace", s.codec.Namespace()),
		attribute.String("savegame.mode", s.mode),
	))
	defer span.End()

	start := time.Now()
	values, err := s.codec.Encode(s.source.Snapshot())
	if err == nil {
		err = s.store.SetMany(ctx, values)
	}
	metrics.SaveDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, LogMsgSaveFailed)
		metrics.SaveFailures.WithLabelValues(s.mode).Inc()
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "namespace", s.codec.Namespace(), "error", err)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	metrics.Saves.WithLabelValues(s.mode).Inc()
	logger.FromContext(ctx).Debug(LogMsgSaved, "namespace", s.codec.Namespace())
	return nil
}

// Flush cancels any pending timer and saves synchronously when dirty
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.pending && s.timer.Stop() {
		s.pending = false
	}
	s.mu.Unlock()

	return s.saveIfDirty(ctx)
}

// Close stops all timers and flushes. Later changes are ignored.
func (s *Saver) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.sched != nil {
		s.sched.Stop()
		s.pool.Stop()
	}
	err := s.Flush(ctx)
	s.inflight.Wait()
	return err
}

// Load reads the saved game. A storage failure yields defaults and is
// reported in the result rather than returned.
func (s *Saver) Load(ctx context.Context) (domain.GameState, LoadResult) {
	return Load(ctx, s.store, s.codec, s.tracer)
}

// Load reads and decodes the saved game for codec from store
func Load(ctx context.Context, store storage.Adapter, codec *Codec, tracer trace.Tracer) (domain.GameState, LoadResult) {
	if tracer == nil {
		tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	ctx, span := tracer.Start(ctx, "savegame.Load", trace.WithAttributes(
		attribute.String("savegame.namespace", codec.Namespace()),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	values, err := store.GetMany(ctx, codec.Keys())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, LogMsgLoadFailed)
		metrics.Loads.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warn(LogMsgLoadFailed, "namespace", codec.Namespace(), "error", err)
		state, _ := codec.Decode(nil)
		return state, LoadResult{Err: fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)}
	}

	state, fieldErrs := codec.Decode(values)
	for _, fe := range fieldErrs {
		metrics.FieldErrors.WithLabelValues(fe.Field).Inc()
		log.Warn(LogMsgFieldDefaulted, "field", fe.Field, "error", fe.Err)
	}

	result := LoadResult{Found: len(values) > 0, FieldErrors: fieldErrs}
	span.SetAttributes(
		attribute.Bool("savegame.found", result.Found),
		attribute.Int("savegame.field_errors", len(fieldErrs)),
	)

	if result.Found {
		metrics.Loads.WithLabelValues(metrics.OutcomeLoaded).Inc()
		log.Info(LogMsgSavedGameLoaded, "namespace", codec.Namespace(), "currency", state.Currency)
	} else {
		metrics.Loads.WithLabelValues(metrics.OutcomeDefaults).Inc()
		log.Info(LogMsgNoSavedGame, "namespace", codec.Namespace())
	}
	return state, result
}

// Reset removes every saved field of the codec's namespace
func Reset(ctx context.Context, store storage.Adapter, codec *Codec) error {
	for _, key := range codec.Keys() {
		if err := store.Remove(ctx, key); err != nil {
			return fmt.Errorf("%w: remove %s: %v", domain.ErrStorageUnavailable, key, err)
		}
	}
	return nil
}
