package handler

import (
	"context"
	"net/http"

	"golang.org/x/text/message"

	"github.com/osse101/CookieClicker_Go/internal/domain"
	"github.com/osse101/CookieClicker_Go/internal/identity"
	"github.com/osse101/CookieClicker_Go/internal/progression"
)

//go:generate mockery --name=Game --inpackage --testonly --output=. --structname=MockGame --filename=mock_game_test.go

// Game is the session surface the HTTP API drives
type Game interface {
	State() (domain.GameState, error)
	Click(ctx context.Context) (progression.ClickResult, error)
	Purchase(ctx context.Context, producerID string) (domain.Producer, error)
	UpgradeClick(ctx context.Context) (float64, error)
	Reset(ctx context.Context) error
	User() domain.User
}

// PurchaseRequest is the body of a producer purchase
type PurchaseRequest struct {
	ProducerID string `json:"producer_id" validate:"required,max=64,storagekey"`
}

// ProducerView is one producer as presented to the player
type ProducerView struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Icon        string  `json:"icon"`
	Owned       int64   `json:"owned"`
	Cost        int64   `json:"cost"`
	CostDisplay string  `json:"cost_display"`
	Rate        float64 `json:"rate"`
	Affordable  bool    `json:"affordable"`
}

// StateResponse is the full game view
type StateResponse struct {
	Player           string         `json:"player"`
	Currency         float64        `json:"currency"`
	CurrencyDisplay  string         `json:"currency_display"`
	TotalProduced    float64        `json:"total_produced"`
	ClickYield       float64        `json:"click_yield"`
	ClickUpgradeCost float64        `json:"click_upgrade_cost"`
	TotalClicks      int64          `json:"total_clicks"`
	ProductionRate   float64        `json:"production_rate"`
	RateDisplay      string         `json:"rate_display"`
	Producers        []ProducerView `json:"producers"`
}

// ClickResponse is the outcome of one click
type ClickResponse struct {
	Currency    float64 `json:"currency"`
	TotalClicks int64   `json:"total_clicks"`
	Milestone   bool    `json:"milestone"`
}

// UpgradeResponse is the outcome of a click upgrade
type UpgradeResponse struct {
	ClickYield float64 `json:"click_yield"`
}

// GameHandler serves the game API
type GameHandler struct {
	game Game
}

// NewGameHandler creates a handler for game
func NewGameHandler(game Game) *GameHandler {
	return &GameHandler{game: game}
}

// HandleGetState returns the current game view
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.game.State()
	if err != nil {
		respondServiceError(w, r, "Get state", err)
		return
	}
	respondJSON(w, http.StatusOK, buildStateResponse(printerFor(r), h.game.User(), state))
}

// HandleClick applies one click
func (h *GameHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	result, err := h.game.Click(r.Context())
	if err != nil {
		respondServiceError(w, r, "Click", err)
		return
	}
	respondJSON(w, http.StatusOK, ClickResponse{
		Currency:    result.Currency,
		TotalClicks: result.TotalClicks,
		Milestone:   result.Milestone,
	})
}

// HandlePurchase buys one unit of the requested producer
func (h *GameHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	p, err := h.game.Purchase(r.Context(), req.ProducerID)
	if err != nil {
		respondServiceError(w, r, "Purchase", err)
		return
	}

	state, err := h.game.State()
	if err != nil {
		respondServiceError(w, r, "Purchase", err)
		return
	}
	respondJSON(w, http.StatusOK, buildProducerView(printerFor(r), p, state.Currency))
}

// HandleUpgradeClick buys the next click upgrade
func (h *GameHandler) HandleUpgradeClick(w http.ResponseWriter, r *http.Request) {
	yield, err := h.game.UpgradeClick(r.Context())
	if err != nil {
		respondServiceError(w, r, "Click upgrade", err)
		return
	}
	respondJSON(w, http.StatusOK, UpgradeResponse{ClickYield: yield})
}

// HandleReset wipes all progress
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.game.Reset(r.Context()); err != nil {
		respondServiceError(w, r, "Reset", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProgressResetSuccess})
}

func buildStateResponse(p *message.Printer, user domain.User, state domain.GameState) StateResponse {
	rate := state.ProductionRate()
	resp := StateResponse{
		Player:           identity.DisplayName(user),
		Currency:         state.Currency,
		CurrencyDisplay:  formatAmount(p, state.Currency),
		TotalProduced:    state.TotalProduced,
		ClickYield:       state.ClickYield,
		ClickUpgradeCost: progression.ClickUpgradeCost(state.ClickYield),
		TotalClicks:      state.TotalClicks,
		ProductionRate:   rate,
		RateDisplay:      formatRate(p, rate),
		Producers:        make([]ProducerView, len(state.Producers)),
	}
	for i, producer := range state.Producers {
		resp.Producers[i] = buildProducerView(p, producer, state.Currency)
	}
	return resp
}

func buildProducerView(p *message.Printer, producer domain.Producer, currency float64) ProducerView {
	return ProducerView{
		ID:          producer.ID,
		DisplayName: producer.DisplayName,
		Icon:        producer.Icon,
		Owned:       producer.Owned,
		Cost:        producer.CurrentCost,
		CostDisplay: formatAmount(p, float64(producer.CurrentCost)),
		Rate:        producer.Rate(),
		Affordable:  currency >= float64(producer.CurrentCost),
	}
}
