package progression

import (
	"math"
	"sync"

	"github.com/osse101/CookieClicker_Go/internal/config"
	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/logger"
	"github.com/osse101/CookieClicker_Go/internal/tracker"
)

// Listener is notified after every successful mutation, outside the engine lock
type Listener func(change Change)

// ClickResult reports the state after a click
type ClickResult struct {
	Currency    float64 `json:"currency"`
	TotalClicks int64   `json:"total_clicks"`
	Milestone   bool    `json:"milestone"`
}

// Engine is the single authority over a GameState. Every mutation goes
// through it and runs to completion under its lock.
type Engine struct {
	mu                sync.Mutex
	state             domain.GameState
	catalog           []domain.Producer
	tracker           tracker.Tracker
	pricing           Pricing
	milestoneInterval int64

	listenersMu sync.RWMutex
	listeners   []Listener
}

// Option configures an Engine
type Option func(*Engine)

// WithTracker sets the event tracker
func WithTracker(t tracker.Tracker) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracker = t
		}
	}
}

// WithPricing sets the producer pricing policy
func WithPricing(p Pricing) Option {
	return func(e *Engine) {
		if p != nil {
			e.pricing = p
		}
	}
}

// WithMilestoneInterval sets the click count between milestone events
func WithMilestoneInterval(n int64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.milestoneInterval = n
		}
	}
}

// NewEngine creates an engine holding a fresh state built from catalog
func NewEngine(catalog []domain.Producer, opts ...Option) *Engine {
	e := &Engine{
		catalog:           append([]domain.Producer(nil), catalog...),
		tracker:           tracker.Nop{},
		pricing:           Incremental,
		milestoneInterval: config.DefaultMilestoneInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = domain.NewGameState(e.catalog)
	return e
}

// Subscribe registers a change listener
func (e *Engine) Subscribe(l Listener) {
	e.listenersMu.Lock()
	defer e.listenersMu.Unlock()
	e.listeners = append(e.listeners, l)
}

func (e *Engine) notify(change Change) {
	e.listenersMu.RLock()
	listeners := e.listeners
	e.listenersMu.RUnlock()
	for _, l := range listeners {
		l(change)
	}
}

// Catalog returns the producer line-up the engine was built from
func (e *Engine) Catalog() []domain.Producer {
	return append([]domain.Producer(nil), e.catalog...)
}

// Snapshot returns a deep copy of the current state
func (e *Engine) Snapshot() domain.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// ProductionRate returns the current currency per second
func (e *Engine) ProductionRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.ProductionRate()
}

// RecordClick grants the click yield and counts the click. A milestone event
// fires when the new click count is a multiple of the milestone interval.
func (e *Engine) RecordClick() ClickResult {
	e.mu.Lock()
	e.state.Currency += e.state.ClickYield
	e.state.TotalProduced += e.state.ClickYield
	e.state.TotalClicks++
	res := ClickResult{
		Currency:    e.state.Currency,
		TotalClicks: e.state.TotalClicks,
		Milestone:   e.state.TotalClicks%e.milestoneInterval == 0,
	}
	e.mu.Unlock()

	if res.Milestone {
		e.tracker.Track(domain.EventClickMilestone, map[string]any{
			domain.PropClicks: res.TotalClicks,
		})
	}
	e.notify(ChangeClick)
	return res
}

// ApplyTick adds passive production for elapsedFraction of a second and
// returns the amount produced. Nothing changes when the rate is zero.
func (e *Engine) ApplyTick(elapsedFraction float64) float64 {
	if elapsedFraction <= 0 || math.IsNaN(elapsedFraction) || math.IsInf(elapsedFraction, 0) {
		return 0
	}

	e.mu.Lock()
	rate := e.state.ProductionRate()
	if rate == 0 {
		e.mu.Unlock()
		return 0
	}
	produced := rate * elapsedFraction
	e.state.Currency += produced
	e.state.TotalProduced += produced
	e.mu.Unlock()

	e.notify(ChangeTick)
	return produced
}

// PurchaseProducer buys one unit of the producer with the given id.
// ErrUnknownProducer and ErrInsufficientFunds are ordinary outcomes: the
// state is left untouched and nothing is tracked.
func (e *Engine) PurchaseProducer(id string) (domain.Producer, error) {
	e.mu.Lock()
	idx := e.state.FindProducer(id)
	if idx < 0 {
		e.mu.Unlock()
		logger.Debug(LogMsgPurchaseRejected, "producer_id", id, "reason", domain.ErrMsgUnknownProducer)
		return domain.Producer{}, domain.ErrUnknownProducer
	}

	p := &e.state.Producers[idx]
	price := float64(p.CurrentCost)
	if e.state.Currency < price {
		snapshot := *p
		e.mu.Unlock()
		logger.Debug(LogMsgPurchaseRejected, "producer_id", id, "reason", domain.ErrMsgInsufficientFunds)
		return snapshot, domain.ErrInsufficientFunds
	}

	e.state.Currency -= price
	p.Owned++
	p.CurrentCost = e.pricing(PricedProducer{BaseCost: p.BaseCost, CurrentCost: p.CurrentCost, Owned: p.Owned})
	bought := *p
	e.mu.Unlock()

	e.tracker.Track(domain.EventProducerPurchased, map[string]any{
		domain.PropProducerID: bought.ID,
		domain.PropOwned:      bought.Owned,
	})
	e.notify(ChangePurchase)
	return bought, nil
}

// ClickUpgradeCost returns the price of the next click upgrade
func (e *Engine) ClickUpgradeCost() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ClickUpgradeCost(e.state.ClickYield)
}

// PurchaseClickUpgrade raises the click yield by one and returns the new yield
func (e *Engine) PurchaseClickUpgrade() (float64, error) {
	e.mu.Lock()
	cost := ClickUpgradeCost(e.state.ClickYield)
	if e.state.Currency < cost {
		yield := e.state.ClickYield
		e.mu.Unlock()
		return yield, domain.ErrInsufficientFunds
	}
	e.state.Currency -= cost
	e.state.ClickYield++
	yield := e.state.ClickYield
	e.mu.Unlock()

	e.tracker.Track(domain.EventClickUpgradePurchased, map[string]any{
		domain.PropClickYield: yield,
		domain.PropCost:       cost,
	})
	e.notify(ChangeUpgrade)
	return yield, nil
}

// ResetProgress wipes all progress. Prices go back to the stored base
// costs of each producer.
func (e *Engine) ResetProgress() {
	e.mu.Lock()
	e.state.Currency = 0
	e.state.TotalClicks = 0
	e.state.TotalProduced = 0
	e.state.ClickYield = domain.DefaultClickYield
	for i := range e.state.Producers {
		e.state.Producers[i].Owned = 0
		e.state.Producers[i].CurrentCost = e.state.Producers[i].BaseCost
	}
	e.mu.Unlock()

	logger.Info(LogMsgProgressReset)
	e.tracker.Track(domain.EventProgressReset, nil)
	e.notify(ChangeReset)
}

// Restore replaces the state wholesale, typically with a loaded save.
// Producers are matched to the catalog by id; catalog order and base
// values always win over the restored copy.
func (e *Engine) Restore(state domain.GameState) {
	fresh := domain.NewGameState(e.catalog)
	fresh.Currency = nonNegative(state.Currency)
	fresh.TotalProduced = nonNegative(state.TotalProduced)
	if state.ClickYield >= domain.DefaultClickYield {
		fresh.ClickYield = state.ClickYield
	}
	if state.TotalClicks > 0 {
		fresh.TotalClicks = state.TotalClicks
	}
	for _, saved := range state.Producers {
		idx := fresh.FindProducer(saved.ID)
		if idx < 0 {
			continue
		}
		p := &fresh.Producers[idx]
		if saved.Owned > 0 {
			p.Owned = saved.Owned
		}
		if saved.CurrentCost >= p.BaseCost {
			p.CurrentCost = saved.CurrentCost
		}
	}

	e.mu.Lock()
	e.state = fresh
	e.mu.Unlock()

	logger.Debug(LogMsgStateRestored, "currency", fresh.Currency, "total_clicks", fresh.TotalClicks)
	e.notify(ChangeRestore)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
