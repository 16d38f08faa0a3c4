package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/event"
	"github.com/osse101/CookieClicker_Go/internal/identity"
	"github.com/osse101/CookieClicker_Go/internal/logger"
	"github.com/osse101/CookieClicker_Go/internal/metrics"
	"github.com/osse101/CookieClicker_Go/internal/progression"
	"github.com/osse101/CookieClicker_Go/internal/savegame"
	"github.com/osse101/CookieClicker_Go/internal/scheduler"
	"github.com/osse101/CookieClicker_Go/internal/storage"
	"github.com/osse101/CookieClicker_Go/internal/tracker"
)

// ErrAlreadyStarted is returned by a second Start
var ErrAlreadyStarted = errors.New(ErrMsgAlreadyStarted)

// Config holds the collaborators and policy knobs of a session
type Config struct {
	Catalog []domain.Producer
	User    domain.User
	Store   storage.Adapter

	// Optional
	Tracker           tracker.Tracker
	Bus               event.Bus
	Pricing           progression.Pricing
	MilestoneInterval int64
	TickInterval      time.Duration
	SaveMode          string
	SaveInterval      time.Duration
	TracerProvider    trace.TracerProvider
}

// Session runs one player's game: it gates input until the saved game is
// applied, drives production ticks and schedules saves.
type Session struct {
	engine  *progression.Engine
	saver   *savegame.Saver
	ticker  *scheduler.Ticker
	tracker tracker.Tracker
	bus     event.Bus
	user    domain.User

	gate     sync.RWMutex
	status   Status
	starting bool
}

// New wires a session. It starts in StatusLoading; call Start to load.
func New(cfg Config) (*Session, error) {
	t := cfg.Tracker
	if t == nil {
		t = tracker.Nop{}
	}

	engineOpts := []progression.Option{progression.WithTracker(t)}
	if cfg.Pricing != nil {
		engineOpts = append(engineOpts, progression.WithPricing(cfg.Pricing))
	}
	if cfg.MilestoneInterval > 0 {
		engineOpts = append(engineOpts, progression.WithMilestoneInterval(cfg.MilestoneInterval))
	}
	engine := progression.NewEngine(cfg.Catalog, engineOpts...)

	saverOpts := []savegame.Option{savegame.WithInterval(cfg.SaveInterval)}
	if cfg.SaveMode != "" {
		saverOpts = append(saverOpts, savegame.WithMode(cfg.SaveMode))
	}
	if cfg.TracerProvider != nil {
		saverOpts = append(saverOpts, savegame.WithTracerProvider(cfg.TracerProvider))
	}
	codec := savegame.NewCodec(identity.Namespace(cfg.User), engine.Catalog())
	saver, err := savegame.NewSaver(cfg.Store, codec, engine, saverOpts...)
	if err != nil {
		return nil, err
	}

	s := &Session{
		engine:  engine,
		saver:   saver,
		tracker: t,
		bus:     cfg.Bus,
		user:    cfg.User,
	}
	s.ticker = scheduler.NewTicker(cfg.TickInterval, s.tick)
	engine.Subscribe(s.onChange)
	return s, nil
}

// Start loads the saved game, applies it and opens the gate. A storage
// failure is not fatal: the game starts from defaults.
func (s *Session) Start(ctx context.Context) (savegame.LoadResult, error) {
	s.gate.Lock()
	if s.status != StatusLoading || s.starting {
		s.gate.Unlock()
		return savegame.LoadResult{}, ErrAlreadyStarted
	}
	s.starting = true
	s.gate.Unlock()

	state, result := s.saver.Load(ctx)

	s.gate.Lock()
	if s.status != StatusLoading {
		s.gate.Unlock()
		s.log(ctx).Warn(LogMsgStartAborted)
		return result, domain.ErrNotReady
	}
	s.engine.Restore(state)
	s.status = StatusReady
	s.gate.Unlock()

	snapshot := s.engine.Snapshot()
	metrics.ObserveState(snapshot)
	s.tracker.Track(domain.EventGameLoaded, map[string]any{
		domain.PropCurrency:  snapshot.Currency,
		domain.PropDefaulted: result.Defaulted(),
	})
	if snapshot.ProductionRate() > 0 {
		s.ticker.Activate()
	}

	s.log(ctx).Info(LogMsgSessionStarted,
		"found", result.Found,
		"currency", snapshot.Currency)
	return result, nil
}

// Close stops production, cancels pending saves and flushes the last
// state. Actions fail with ErrNotReady afterwards.
func (s *Session) Close(ctx context.Context) error {
	s.gate.Lock()
	if s.status == StatusClosed {
		s.gate.Unlock()
		return nil
	}
	s.status = StatusClosed
	s.gate.Unlock()

	s.ticker.Stop()
	err := s.saver.Close(ctx)
	s.log(ctx).Info(LogMsgSessionClosed)
	return err
}

func (s *Session) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(logger.WithPlayer(ctx, s.user.ID))
}

// Status returns the gate state
func (s *Session) Status() Status {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return s.status
}

// Ready reports whether the session accepts input
func (s *Session) Ready() bool {
	return s.Status() == StatusReady
}

// User returns the player the session belongs to
func (s *Session) User() domain.User {
	return s.user
}

// Catalog returns the producer line-up in display order
func (s *Session) Catalog() []domain.Producer {
	return s.engine.Catalog()
}

// Producing reports whether production ticks are running
func (s *Session) Producing() bool {
	return s.ticker.Active()
}

// State returns a snapshot of the game
func (s *Session) State() (domain.GameState, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	if s.status != StatusReady {
		return domain.GameState{}, domain.ErrNotReady
	}
	return s.engine.Snapshot(), nil
}

// Click applies one click
func (s *Session) Click(_ context.Context) (progression.ClickResult, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	if s.status != StatusReady {
		return progression.ClickResult{}, domain.ErrNotReady
	}
	return s.engine.RecordClick(), nil
}

// Purchase buys one unit of a producer. Unknown ids and insufficient
// funds are returned as sentinels and leave the game untouched.
func (s *Session) Purchase(ctx context.Context, producerID string) (domain.Producer, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	if s.status != StatusReady {
		return domain.Producer{}, domain.ErrNotReady
	}

	p, err := s.engine.PurchaseProducer(producerID)
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		metrics.PurchasesRejected.WithLabelValues(metrics.ReasonInsufficientFunds).Inc()
		s.log(ctx).Debug(progression.LogMsgPurchaseRejected, "producer", producerID, "error", err)
	case errors.Is(err, domain.ErrUnknownProducer):
		metrics.PurchasesRejected.WithLabelValues(metrics.ReasonUnknownProducer).Inc()
		s.log(ctx).Debug(progression.LogMsgPurchaseRejected, "producer", producerID, "error", err)
	}
	return p, err
}

// UpgradeClick buys the next click yield upgrade and returns the new yield
func (s *Session) UpgradeClick(ctx context.Context) (float64, error) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	if s.status != StatusReady {
		return 0, domain.ErrNotReady
	}

	yield, err := s.engine.PurchaseClickUpgrade()
	if errors.Is(err, domain.ErrInsufficientFunds) {
		metrics.PurchasesRejected.WithLabelValues(metrics.ReasonInsufficientFunds).Inc()
		s.log(ctx).Debug(progression.LogMsgPurchaseRejected, "upgrade", "click", "error", err)
	}
	return yield, err
}

// Reset wipes all progress and stops production
func (s *Session) Reset(_ context.Context) error {
	s.gate.RLock()
	if s.status != StatusReady {
		s.gate.RUnlock()
		return domain.ErrNotReady
	}
	s.engine.ResetProgress()
	s.gate.RUnlock()

	// The tick loop takes the gate, so it is stopped outside of it
	s.ticker.Deactivate()
	if s.engine.ProductionRate() > 0 {
		s.ticker.Activate()
	}
	return nil
}

// Flush saves pending changes now
func (s *Session) Flush(ctx context.Context) error {
	return s.saver.Flush(ctx)
}

func (s *Session) tick(elapsedFraction float64) {
	s.gate.RLock()
	defer s.gate.RUnlock()
	if s.status != StatusReady {
		return
	}
	s.engine.ApplyTick(elapsedFraction)
}

// onChange runs after every engine mutation outside the engine lock
func (s *Session) onChange(change progression.Change) {
	if change == progression.ChangeRestore {
		return
	}
	s.saver.MarkDirty(change.IsUserAction())

	switch change {
	case progression.ChangeClick:
		metrics.Clicks.Inc()
	case progression.ChangeTick:
		metrics.Ticks.Inc()
	}

	state := s.engine.Snapshot()
	metrics.ObserveState(state)
	if state.ProductionRate() > 0 {
		s.ticker.Activate()
	}

	if s.bus != nil {
		evt := event.NewStateChangedEvent(string(change), state)
		if err := s.bus.Publish(context.Background(), evt); err != nil {
			logger.Debug(LogMsgPublishFailed, "change", change, "error", err)
		}
	}
}
